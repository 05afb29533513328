/*
Package ot provides zero-copy views onto OpenType font tables held in blobs.
Intended audience for this package are:

▪︎ text shapers and font inspection tools which need the raw bytes of a font
table, without having the whole font decoded up front

▪︎ applications looking up localized names or PostScript glyph names of a font

Package `ot` does not decode a font into Go data structures. Instead, a Face
hands out table blobs (see package blob), which are sanitized once and
afterwards read in place. A sanitized table blob is immutable and may be shared
between goroutines. Typed views ('name', 'post') are thin wrappers around such
a blob and perform no allocation on lookup, with the exception of the lazily
built reverse index of a PostAccelerator.

Bytes in font files come from untrusted sources. Every table view is protected
by a Sanitizer, which checks the structure of the table up front:

▪︎ headers have to fit into the table

▪︎ arrays of records have to fit, computed with overflow-safe multiplication

▪︎ every offset/length pair referenced by a record has to lie inside the table

If a sanitizer rejects a table, the view is empty and every lookup reports absence.

The face type of this package reads the table directory of an SFNT font file
(TrueType or CFF flavoured OpenType, and collections thereof). Problems with the
directory are reported as FontError values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}

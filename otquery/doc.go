/*
Package otquery answers questions about a font on top of the table views of
package ot: font names, header information and glyph names.

Functions in this package accept an ot.Face and reference the tables they need
for the duration of the call only. Name strings are decoded to Go strings here,
whereas package ot hands out the raw bytes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.otquery'
func tracer() tracing.Trace {
	return tracing.Select("font.otquery")
}

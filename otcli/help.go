package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "blob", "blobs":
		pterm.Info.Println("Blobs")
		pterm.Println(`
	The font file is mapped into a blob, and every table is a sub-blob of it.
	A sub-blob pins the font blob: the file stays mapped until the last
	table blob is released. Sanitized tables are immutable.

	blob          show the font blob and the current table blob
	table:<tag>   select a table, e.g. table:post
	tables        list the table directory
	print:<n>     hex dump of the first n bytes of the current table
	`)
	case "name", "names":
		pterm.Info.Println("Naming table")
		pterm.Println(`
	+----------+----------+----------+--------+--------+--------+
	| Platform | Encoding | Language | NameID | Length | Offset |
	+----------+----------+----------+--------+--------+--------+
	Records are sorted by platform, encoding, language and name ID.

	names         list all name records with decoded strings
	name:<id>     show the decoded name with the given name ID
	`)
	case "glyph", "glyphs", "post", "lookup":
		pterm.Info.Println("Glyph names")
		pterm.Println(`
	Glyph names come from the 'post' table. Version 1.0 tables use the
	258 standard Macintosh names, version 2.0 tables add a string pool,
	version 3.0 tables carry no names.

	glyph:<gid>   show the name of a glyph
	lookup:<name> find the glyph with a given name
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	tables, table:<tag>, blob, print:<n>, names, name:<id>,
	glyph:<gid>, lookup:<name>, info, help:<topic>, quit

	Topics are: blob, names, glyphs
	`)
	}
}

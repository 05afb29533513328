package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/otblob/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func tableOp(intp *Intp, op *Op) (error, bool) {
	tag, ok := op.hasArg()
	if !ok {
		return errors.New("usage: table:<tag>"), false
	}
	t := intp.font.Face.ReferenceTable(ot.T(tag))
	if t.IsEmpty() {
		return errors.New("table not found in font"), false
	}
	intp.table.Destroy()
	intp.tag, intp.table = ot.T(tag), t
	tracer().Infof("setting table: %v", tag)
	return nil, false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Tag", "Offset", "Length"},
	}
	for _, tag := range intp.font.Face.TableTags() {
		rec, _ := intp.font.Face.Table(tag)
		data = append(data, []string{
			tag.String(),
			fmt.Sprintf("%d", rec.Offset),
			fmt.Sprintf("%d", rec.Length),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func blobOp(intp *Intp, op *Op) (error, bool) {
	pterm.Printf("font:  %s %s\n", intp.font.Filepath, intp.font.Blob)
	if !intp.table.IsEmpty() {
		pterm.Printf("table: %s %s\n", intp.tag, intp.table)
	}
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: name:<name ID>"), false
	}
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 || id > 0xffff {
		return fmt.Errorf("name ID not numeric: %v", arg), false
	}
	s, ok := otquery.Name(intp.font.Face, sfnt.NameID(id))
	if !ok {
		return fmt.Errorf("font has no name with ID %d", id), false
	}
	pterm.Printf("name %d = %q\n", id, s)
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: glyph:<glyph ID>"), false
	}
	gid, err := strconv.Atoi(arg)
	if err != nil || gid < 0 || gid > 0xffff {
		return fmt.Errorf("glyph ID not numeric: %v", arg), false
	}
	name := intp.accelerator().GlyphName(ot.GlyphIndex(gid))
	if len(name) == 0 {
		return fmt.Errorf("glyph %d has no name", gid), false
	}
	pterm.Printf("glyph %d = %s\n", gid, name)
	return nil, false
}

func lookupOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return errors.New("usage: lookup:<glyph name>"), false
	}
	gid, ok := intp.accelerator().GlyphFromName(name)
	if !ok {
		return fmt.Errorf("no glyph named %q", name), false
	}
	pterm.Printf("%s = glyph %d\n", name, gid)
	return nil, false
}

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/otblob/otquery"
	"github.com/pterm/pterm"
)

func printOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkTable(); err != nil {
		return
	}
	n := 64
	if arg, ok := op.hasArg(); ok {
		if n, err = strconv.Atoi(arg); err != nil || n <= 0 {
			return fmt.Errorf("byte count not numeric: %v", arg), false
		}
	}
	data := intp.table.Data()
	if n > len(data) {
		n = len(data)
	}
	pterm.Printf("%s: %d of %d bytes\n", intp.tag, n, len(data))
	pterm.Println(hex.Dump(data[:n]))
	return nil, false
}

func namesOp(intp *Intp, op *Op) (error, bool) {
	names := ot.NewNameTable(intp.font.Face)
	defer names.Destroy()
	if names.IsEmpty() {
		return fmt.Errorf("font has no valid 'name' table"), false
	}
	pterm.Printf("'name' table format %d with %d records\n", names.Format(), names.Count())
	data := [][]string{
		{"Platform", "Encoding", "Language", "NameID", "Length", "Value"},
	}
	for i := range names.Count() {
		rec := names.Record(i)
		data = append(data, []string{
			fmt.Sprintf("%d", rec.PlatformID),
			fmt.Sprintf("%d", rec.EncodingID),
			fmt.Sprintf("0x%04x", rec.LanguageID),
			fmt.Sprintf("%d", rec.NameID),
			fmt.Sprintf("%d", rec.Length),
			fmt.Sprintf("%q", names.RecordName(i)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func infoOp(intp *Intp, op *Op) (error, bool) {
	face := intp.font.Face
	data := [][]string{
		{"Property", "Value"},
		{"Font", intp.font.Fontname},
		{"Type", otquery.FontType(face)},
		{"Glyphs", fmt.Sprintf("%d", face.NumGlyphs())},
	}
	if h, ok := otquery.HeadInfo(face); ok {
		data = append(data, []string{"UnitsPerEm", fmt.Sprintf("%d", h.UnitsPerEm)})
	}
	if p, ok := otquery.PostInfo(face); ok {
		data = append(data,
			[]string{"post version", fmt.Sprintf("%08x", p.Version)},
			[]string{"ItalicAngle", fmt.Sprintf("%.2f", p.ItalicAngle)},
			[]string{"FixedPitch", fmt.Sprintf("%v", p.IsFixedPitch)},
		)
	}
	for key, value := range otquery.NameInfo(face) {
		data = append(data, []string{key, value})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/otblob/otquery"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	otf := mustLoadFont(args, flags)
	defer otf.Close()

	fmt.Printf("Path: %s\n", otf.Filepath)
	fmt.Printf("Type: %s\n", otquery.FontType(otf.Face))
	names := otquery.NameInfo(otf.Face)
	if family := names["family"]; family != "" {
		fmt.Printf("Family: %s\n", family)
	}
	if sub := names["subfamily"]; sub != "" {
		fmt.Printf("Subfamily: %s\n", sub)
	}
	if version := names["version"]; version != "" {
		fmt.Printf("Version: %s\n", version)
	}
	fmt.Printf("Glyphs: %d\n", otf.Face.NumGlyphs())
	if post, ok := otquery.PostInfo(otf.Face); ok {
		fmt.Printf("Post: version=%08x italic=%.2f fixed=%v\n", post.Version, post.ItalicAngle, post.IsFixedPitch)
	}

	tags := otf.Face.TableTags()
	fmt.Printf("Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Printf(" %s", tag.String())
	}
	fmt.Println()

	errs := otf.Face.Errors()
	warns := otf.Face.Warnings()
	crit := otf.Face.CriticalErrors()
	fmt.Printf("Issues: errors=%d warnings=%d critical=%d\n", len(errs), len(warns), len(crit))

	if len(args["tables"].Value) > 0 {
		printSelectedTables(otf.Face, args["tables"].Value)
	}
	if mustFlagBool(flags["errors"], "errors") {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, w := range warns {
			fmt.Printf("warning: %s\n", w.String())
		}
	}
}

func printSelectedTables(face *ot.SFNTFace, raw string) {
	for _, t := range splitCSVSpace(raw) {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		rec, ok := face.Table(ot.T(tagName))
		if !ok {
			fmt.Printf("table %s: missing\n", tagName)
			continue
		}
		table := face.ReferenceTable(rec.Tag)
		fmt.Printf("table %s: offset=%d size=%d blob=%s\n", tagName, rec.Offset, rec.Length, table)
		table.Destroy()
	}
}

func runNamesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	otf := mustLoadFont(args, flags)
	defer otf.Close()

	if mustFlagBool(flags["raw"], "raw") {
		names := ot.NewNameTable(otf.Face)
		defer names.Destroy()
		if names.IsEmpty() {
			fatalf("font has no valid 'name' table")
		}
		for i := range names.Count() {
			rec := names.Record(i)
			fmt.Printf("%d/%d/0x%04x/%d: %q\n", rec.PlatformID, rec.EncodingID,
				rec.LanguageID, rec.NameID, names.RecordName(i))
		}
		return
	}
	for id, name := range otquery.NamesRange(otf.Face) {
		fmt.Printf("%3d %-22s %s\n", id, nameIDLabel(id), name)
	}
}

var nameIDLabels = []string{
	"copyright", "family", "subfamily", "unique-id", "full", "version",
	"postscript", "trademark", "manufacturer", "designer", "description",
	"vendor-url", "designer-url", "license", "license-url", "",
	"typographic-family", "typographic-subfamily",
}

func nameIDLabel(id sfnt.NameID) string {
	if int(id) < len(nameIDLabels) {
		return nameIDLabels[id]
	}
	return ""
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/otblob"
	"github.com/npillmayer/otblob/internal/fontfile"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for OpenType font diagnostics on top of font blobs.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("font").
		SetDescription("Print diagnostics and table information for an OpenType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "OpenType font file path or system font name", "").
		AddArgument("tables...", "optional list of table tags (e.g. name,post,head)", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.
		Register("names").
		SetDescription("List the records of the 'name' table of an OpenType font.").
		SetShortDescription("name records").
		AddArgument("font", "OpenType font file path or system font name", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("raw,r", "print undecoded name bytes", commando.Bool, nil).
		SetAction(runNamesCommand)

	commando.
		Register("glyphs").
		SetDescription("List the PostScript glyph names of the 'post' table of an OpenType font.").
		SetShortDescription("glyph names").
		AddArgument("font", "OpenType font file path or system font name", "").
		AddArgument("names...", "optional glyph names to look up", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("verify", "check that every glyph name maps back to its glyph", commando.Bool, nil).
		AddFlag("workers,w", "number of concurrent lookup workers for --verify", commando.Int, 8).
		SetAction(runGlyphsCommand)

	commando.
		Register("subset-post").
		SetDescription("Write a 'post' table reduced to version 3.0 (no glyph names).").
		SetShortDescription("strip glyph names").
		AddArgument("font", "OpenType font file path or system font name", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("output,o", "output file for the subsetted table", commando.String, "post.bin").
		SetAction(runSubsetPostCommand)

	commando.
		Register("view").
		SetDescription("Render a glyph, selected by PostScript name, to a PNG image.").
		SetShortDescription("glyph to image").
		AddArgument("font", "OpenType font file path or system font name", "").
		AddArgument("glyph", "PostScript name of the glyph to render", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("output,o", "output PNG file", commando.String, "ot-tools-view.png").
		AddFlag("show-bboxes,B", "draw a red bounding-box outline around the glyph", commando.Bool, nil).
		AddFlag("ppem,p", "render scale in pixels-per-em", commando.Int, 96).
		AddFlag("width,W", "image width in pixels", commando.Int, 320).
		AddFlag("height,H", "image height in pixels", commando.Int, 240).
		SetAction(runViewCommand)

	commando.Parse(nil)
}

func splitCSVSpace(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustLoadFont(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) *otblob.ScalableFont {
	name := strings.TrimSpace(args["font"].Value)
	if name == "" {
		fatalf("font is required")
	}
	f, err := fontfile.Load(name, mustFlagInt(flags["index"], "index"))
	if err != nil {
		fatalf("cannot load font %s: %v", name, err)
	}
	if verbose, err := flags["verbose"].GetBool(); err == nil && verbose {
		fmt.Printf("Font: %s %s\n", f.Fontname, f.Blob)
	}
	return f
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}

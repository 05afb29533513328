package otblob

import (
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/otblob/otquery"
	"golang.org/x/image/font/sfnt"
)

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded by the name-table reader.
func FamilyName(f *ScalableFont) (family, subfamily string) {
	if f == nil || f.Face == nil {
		return
	}
	family, _ = otquery.Name(f.Face, sfnt.NameIDFamily)
	subfamily, _ = otquery.Name(f.Face, sfnt.NameIDSubfamily)
	return
}

// GlyphName returns the PostScript name of glyph g, or the empty string.
//
// Clients looking up many glyphs should use an ot.PostAccelerator directly.
func GlyphName(f *ScalableFont, g ot.GlyphIndex) string {
	if f == nil || f.Face == nil {
		return ""
	}
	acc := ot.NewPostAccelerator(f.Face)
	defer acc.Close()
	return string(acc.GlyphName(g))
}

// GlyphByName finds the glyph with the given PostScript name.
func GlyphByName(f *ScalableFont, name string) (ot.GlyphIndex, bool) {
	if f == nil || f.Face == nil {
		return 0, false
	}
	acc := ot.NewPostAccelerator(f.Face)
	defer acc.Close()
	return acc.GlyphFromName(name)
}

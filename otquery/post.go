package otquery

import (
	"iter"

	"github.com/npillmayer/otblob/ot"
)

// PostTableInfo is a typed query view over the header of OpenType table 'post'.
type PostTableInfo struct {
	Version            uint32
	ItalicAngle        float64 // counter-clockwise degrees from the vertical
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
	NumGlyphs          int // version 2.0 only
}

// PostInfo decodes the header of table 'post' of face.
// Returns (info, true) on success, or (zero, false) if table is missing/invalid.
func PostInfo(face ot.Face) (PostTableInfo, bool) {
	post := ot.NewPostTable(face)
	defer post.Destroy()
	if post.IsEmpty() {
		return PostTableInfo{}, false
	}
	return PostTableInfo{
		Version:            post.Version(),
		ItalicAngle:        float64(post.ItalicAngle()) / 65536,
		UnderlinePosition:  post.UnderlinePosition(),
		UnderlineThickness: post.UnderlineThickness(),
		IsFixedPitch:       post.IsFixedPitch(),
		NumGlyphs:          post.NumGlyphs(),
	}, true
}

// GlyphNames yields `(glyph, name)` pairs for all glyphs of face which have
// a PostScript name.
func GlyphNames(face ot.Face) iter.Seq2[ot.GlyphIndex, string] {
	return func(yield func(ot.GlyphIndex, string) bool) {
		acc := ot.NewPostAccelerator(face)
		defer acc.Close()
		for g := range acc.GlyphCount() {
			name := acc.GlyphName(ot.GlyphIndex(g))
			if len(name) == 0 {
				continue
			}
			if !yield(ot.GlyphIndex(g), string(name)) {
				return
			}
		}
	}
}

// FontType returns a readable name for the outline flavour of face:
// "TrueType", "CFF" or "unknown".
func FontType(face *ot.SFNTFace) string {
	if face == nil {
		return "unknown"
	}
	switch ot.Tag(face.Header.FontType) {
	case ot.T("OTTO"):
		return "CFF"
	case ot.Tag(0x00010000), ot.T("true"):
		return "TrueType"
	}
	return "unknown"
}

package ot

import (
	"bytes"
	"cmp"
	"slices"
	"sort"
	"sync/atomic"

	"github.com/npillmayer/otblob/blob"
)

// PostAccelerator answers glyph name queries for a face: glyph → name from the
// 'post' table, and name → glyph through a reverse index.
//
// The reverse index is built on first use. Lookups may run concurrently from
// any number of goroutines; Close must not run concurrently with lookups.
type PostAccelerator struct {
	blob           *blob.Blob
	version        uint32
	glyphNameIndex binarySegm // version 2: uint16 per glyph
	pool           binarySegm // version 2: Pascal string data
	indexToOffset  []uint32   // version 2: pool offset of each well-formed string
	gids           atomic.Pointer[[]uint16]
}

// NewPostAccelerator references the 'post' table of face and prepares it for
// glyph name lookups. A face without a usable 'post' table results in an
// accelerator which knows no glyph names.
func NewPostAccelerator(face Face) *PostAccelerator {
	acc := &PostAccelerator{}
	acc.blob = ReferenceTable(face, TagPost, PostSanitizer)
	data := binarySegm(acc.blob.Data())
	acc.version = data.U32(0)
	if acc.version != PostVersion2 {
		return acc
	}
	numGlyphs := int(data.U16(postHeaderSize))
	start := postHeaderSize + 2
	acc.glyphNameIndex = data[start : start+2*numGlyphs]
	acc.pool = data[start+2*numGlyphs:]
	// malformed trailing bytes truncate the index
	for off := 0; ; {
		name, ok := acc.pool.pascalString(off)
		if !ok {
			break
		}
		acc.indexToOffset = append(acc.indexToOffset, uint32(off))
		off += 1 + len(name)
	}
	tracer().Debugf("post table v2: %d glyphs, %d names in string pool", numGlyphs, len(acc.indexToOffset))
	return acc
}

// Close releases the reverse index and the 'post' table.
func (acc *PostAccelerator) Close() {
	acc.gids.Store(nil)
	acc.blob.Destroy()
	acc.blob = blob.Empty()
	acc.version = 0
	acc.glyphNameIndex, acc.pool, acc.indexToOffset = nil, nil, nil
}

// Version returns the version of the underlying 'post' table, or 0 if
// there is none.
func (acc *PostAccelerator) Version() uint32 {
	return acc.version
}

// GlyphCount returns the number of glyphs with (possible) names: 258 for
// version 1.0 tables, numGlyphs for version 2.0 tables and 0 otherwise.
func (acc *PostAccelerator) GlyphCount() int {
	switch acc.version {
	case PostVersion1:
		return NumMacGlyphNames
	case PostVersion2:
		return len(acc.glyphNameIndex) / 2
	}
	return 0
}

// GlyphName returns the name of glyph g, or nil if g has no name.
// The slice is borrowed from the table's blob or from the standard Macintosh names.
func (acc *PostAccelerator) GlyphName(g GlyphIndex) []byte {
	switch acc.version {
	case PostVersion1:
		if int(g) < NumMacGlyphNames {
			return macRomanNameBytes[g]
		}
	case PostVersion2:
		if int(g) >= acc.GlyphCount() {
			return nil
		}
		i := int(u16(acc.glyphNameIndex[2*int(g):]))
		if i < NumMacGlyphNames {
			return macRomanNameBytes[i]
		}
		i -= NumMacGlyphNames
		if i >= len(acc.indexToOffset) {
			return nil
		}
		name, _ := acc.pool.pascalString(int(acc.indexToOffset[i]))
		return name
	}
	return nil
}

// GetGlyphName copies the name of glyph g to buf and terminates it with a
// NUL byte. Names are never truncated: if buf cannot hold name and NUL,
// GetGlyphName returns false. An empty buf checks for the existence of a name.
func (acc *PostAccelerator) GetGlyphName(g GlyphIndex, buf []byte) bool {
	name := acc.GlyphName(g)
	if len(name) == 0 {
		return false
	}
	if len(buf) == 0 {
		return true
	}
	if len(buf) <= len(name) {
		return false
	}
	copy(buf, name)
	buf[len(name)] = 0
	return true
}

// GetGlyphFromName finds the glyph named by the first length bytes of name.
// A negative length has name measured up to its first NUL byte (or its end).
func (acc *PostAccelerator) GetGlyphFromName(name []byte, length int) (GlyphIndex, bool) {
	if length < 0 {
		if length = bytes.IndexByte(name, 0); length < 0 {
			length = len(name)
		}
	}
	if length == 0 || length > len(name) {
		return 0, false
	}
	if acc.GlyphCount() == 0 {
		return 0, false
	}
	key := name[:length]
	gids := acc.reverseIndex()
	i := sort.Search(len(gids), func(i int) bool {
		return compareGlyphNames(acc.GlyphName(GlyphIndex(gids[i])), key) >= 0
	})
	if i < len(gids) && bytes.Equal(acc.GlyphName(GlyphIndex(gids[i])), key) {
		return GlyphIndex(gids[i]), true
	}
	return 0, false
}

// GlyphFromName finds the glyph with the given name.
func (acc *PostAccelerator) GlyphFromName(name string) (GlyphIndex, bool) {
	return acc.GetGlyphFromName([]byte(name), len(name))
}

// reverseIndex returns all glyph IDs sorted by glyph name. The first caller
// builds it; concurrent builders race on publishing, and losers use the
// winner's index.
func (acc *PostAccelerator) reverseIndex() []uint16 {
	for {
		if gids := acc.gids.Load(); gids != nil {
			return *gids
		}
		count := acc.GlyphCount()
		gids := make([]uint16, count)
		for i := range gids {
			gids[i] = uint16(i)
		}
		slices.SortStableFunc(gids, func(a, b uint16) int {
			return compareGlyphNames(acc.GlyphName(GlyphIndex(a)), acc.GlyphName(GlyphIndex(b)))
		})
		if acc.gids.CompareAndSwap(nil, &gids) {
			tracer().Debugf("built reverse glyph name index for %d glyphs", count)
			return gids
		}
	}
}

// compareGlyphNames orders names by length first, then bytewise.
func compareGlyphNames(a, b []byte) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return bytes.Compare(a, b)
}

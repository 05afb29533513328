package ot

import "github.com/npillmayer/otblob/blob"

// The 'post' table contains information needed to use an OpenType font on a
// PostScript printer, among it the PostScript names of all glyphs.
//
// Header (32 bytes):
//
//	Version16Dot16 version
//	Fixed          italicAngle
//	FWORD          underlinePosition
//	FWORD          underlineThickness
//	uint32         isFixedPitch
//	uint32         minMemType42
//	uint32         maxMemType42
//	uint32         minMemType1
//	uint32         maxMemType1
//
// Version 2.0 continues with
//
//	uint16         numGlyphs
//	uint16         glyphNameIndex[numGlyphs]
//	uint8          stringData[variable]   Pascal strings
const (
	postHeaderSize = 32
)

// Versions of the 'post' table.
const (
	PostVersion1  uint32 = 0x00010000
	PostVersion2  uint32 = 0x00020000
	PostVersion25 uint32 = 0x00025000
	PostVersion3  uint32 = 0x00030000
)

// PostSanitizer checks a 'post' table: the header has to fit and, for
// version 2.0, the glyph name index array has to fit as well.
var PostSanitizer = SanitizerFunc(sanitizePost)

func sanitizePost(c *SanitizeContext) bool {
	if !c.CheckStruct(0, postHeaderSize) {
		return false
	}
	if c.U32(0) != PostVersion2 {
		return true
	}
	if !c.CheckStruct(postHeaderSize, 2) {
		return false
	}
	return c.CheckArray(postHeaderSize+2, 2, int(c.U16(postHeaderSize)))
}

// PostTable is a view onto the header of a sanitized 'post' table.
type PostTable struct {
	blob *blob.Blob
	data binarySegm
}

// NewPostTable references and sanitizes the 'post' table of face.
// Clients should call Destroy when done with the table.
func NewPostTable(face Face) *PostTable {
	b := ReferenceTable(face, TagPost, PostSanitizer)
	return &PostTable{blob: b, data: binarySegm(b.Data())}
}

// Destroy drops the table's reference to its blob.
func (t *PostTable) Destroy() {
	t.blob.Destroy()
	t.blob = blob.Empty()
	t.data = nil
}

// IsEmpty is true if the table is missing or failed to sanitize.
func (t *PostTable) IsEmpty() bool {
	return len(t.data) == 0
}

// Version returns the table version as a 16.16 number, e.g. 0x00020000.
func (t *PostTable) Version() uint32 {
	return t.data.U32(0)
}

// ItalicAngle returns the italic angle in counter-clockwise degrees from the
// vertical, as a 16.16 fixed point number.
func (t *PostTable) ItalicAngle() int32 {
	return t.data.I32(4)
}

// UnderlinePosition returns the suggested y-coordinate of the top of the underline.
func (t *PostTable) UnderlinePosition() int16 {
	return t.data.I16(8)
}

// UnderlineThickness returns the suggested thickness of the underline.
func (t *PostTable) UnderlineThickness() int16 {
	return t.data.I16(10)
}

// IsFixedPitch is true for monospaced fonts.
func (t *PostTable) IsFixedPitch() bool {
	return t.data.U32(12) != 0
}

// MemoryUsage returns the memory hints of the header: minimum and maximum
// memory usage when downloaded as a Type 42 font, then as a Type 1 font.
func (t *PostTable) MemoryUsage() (minType42, maxType42, minType1, maxType1 uint32) {
	return t.data.U32(16), t.data.U32(20), t.data.U32(24), t.data.U32(28)
}

// NumGlyphs returns the number of glyphs of a version 2.0 table, and 0 for
// other versions.
func (t *PostTable) NumGlyphs() int {
	if t.Version() != PostVersion2 {
		return 0
	}
	return int(t.data.U16(postHeaderSize))
}

package ot

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// GlyphIndex is a glyph index in a Font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType specification as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// Tags of tables this package knows about.
const (
	TagHead Tag = 0x68656164 // 'head'
	TagMaxp Tag = 0x6d617870 // 'maxp'
	TagName Tag = 0x6e616d65 // 'name'
	TagPost Tag = 0x706f7374 // 'post'
)

// Font types of SFNT files, as stated in the offset table or collection header.
const (
	sfntVersionTrueType  uint32 = 0x00010000
	sfntVersionCFF       uint32 = 0x4f54544f // 'OTTO'
	sfntVersionAppleTrue uint32 = 0x74727565 // 'true'
	sfntCollection       uint32 = 0x74746366 // 'ttcf'
)

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

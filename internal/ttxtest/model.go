/*
Package ttxtest reads TTX dumps of fonts for use as test fixtures.

TTX is the XML format of fontTools. Only the tables needed by tests are
covered: the glyph order, 'name' and 'post'. An ExpectedFont can be compiled
back into binary tables, so tests may check a reader against the values of
the dump it was built from.
*/
package ttxtest

// ExpectedFont is a normalized model of a TTX dump.
type ExpectedFont struct {
	GlyphOrder []string
	Names      []ExpectedName
	Post       *ExpectedPost // nil if the dump has no 'post' table
}

// ExpectedName is one record of table 'name'. Value is the decoded string.
type ExpectedName struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// ExpectedPost holds the header fields of table 'post'.
type ExpectedPost struct {
	Version            uint32 // 16.16, e.g. 0x00020000
	ItalicAngle        int32  // 16.16
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

// GlyphID returns the index of glyph name in the glyph order.
func (f *ExpectedFont) GlyphID(name string) (int, bool) {
	for i, n := range f.GlyphOrder {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

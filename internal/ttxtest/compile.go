package ttxtest

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// NameTable compiles the name records into a format 0 'name' table.
// Strings of the Unicode and Windows platforms are encoded as UTF-16BE,
// strings of the Macintosh Roman encoding as Mac Roman.
func (f *ExpectedFont) NameTable() ([]byte, error) {
	count := len(f.Names)
	stringOffset := 6 + 12*count
	header := make([]byte, stringOffset)
	binary.BigEndian.PutUint16(header[2:], uint16(count))
	binary.BigEndian.PutUint16(header[4:], uint16(stringOffset))
	var pool []byte
	for i, rec := range f.Names {
		raw, err := encodeName(rec)
		if err != nil {
			return nil, fmt.Errorf("ttx: name %d: %w", rec.NameID, err)
		}
		r := header[6+12*i:]
		binary.BigEndian.PutUint16(r[0:], rec.PlatformID)
		binary.BigEndian.PutUint16(r[2:], rec.EncodingID)
		binary.BigEndian.PutUint16(r[4:], rec.LanguageID)
		binary.BigEndian.PutUint16(r[6:], rec.NameID)
		binary.BigEndian.PutUint16(r[8:], uint16(len(raw)))
		binary.BigEndian.PutUint16(r[10:], uint16(len(pool)))
		pool = append(pool, raw...)
	}
	return append(header, pool...), nil
}

func encodeName(rec ExpectedName) ([]byte, error) {
	var enc *encoding.Encoder
	switch {
	case rec.PlatformID == 0 || rec.PlatformID == 3:
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case rec.PlatformID == 1 && rec.EncodingID == 0:
		enc = charmap.Macintosh.NewEncoder()
	default:
		return []byte(rec.Value), nil
	}
	return enc.Bytes([]byte(rec.Value))
}

// PostTable compiles the 'post' header and, for version 2.0, the glyph
// names of the glyph order. Names found in standard, the 258 standard
// Macintosh glyph names, are referenced by index. All others go to the
// string pool, each distinct name once.
func (f *ExpectedFont) PostTable(standard []string) ([]byte, error) {
	if f.Post == nil {
		return nil, fmt.Errorf("ttx: no post table")
	}
	p := f.Post
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:], p.Version)
	binary.BigEndian.PutUint32(b[4:], uint32(p.ItalicAngle))
	binary.BigEndian.PutUint16(b[8:], uint16(p.UnderlinePosition))
	binary.BigEndian.PutUint16(b[10:], uint16(p.UnderlineThickness))
	binary.BigEndian.PutUint32(b[12:], p.IsFixedPitch)
	binary.BigEndian.PutUint32(b[16:], p.MinMemType42)
	binary.BigEndian.PutUint32(b[20:], p.MaxMemType42)
	binary.BigEndian.PutUint32(b[24:], p.MinMemType1)
	binary.BigEndian.PutUint32(b[28:], p.MaxMemType1)
	switch p.Version {
	case 0x00010000, 0x00030000:
		return b, nil
	case 0x00020000:
	default:
		return nil, fmt.Errorf("ttx: cannot compile post version %08x", p.Version)
	}
	std := make(map[string]int, len(standard))
	for i, name := range standard {
		std[name] = i
	}
	extra := make(map[string]int)
	var pool []byte
	b = binary.BigEndian.AppendUint16(b, uint16(len(f.GlyphOrder)))
	for _, name := range f.GlyphOrder {
		if i, ok := std[name]; ok {
			b = binary.BigEndian.AppendUint16(b, uint16(i))
			continue
		}
		i, ok := extra[name]
		if !ok {
			if len(name) > 255 {
				return nil, fmt.Errorf("ttx: glyph name too long: %.16s...", name)
			}
			i = len(extra)
			extra[name] = i
			pool = append(pool, byte(len(name)))
			pool = append(pool, name...)
		}
		b = binary.BigEndian.AppendUint16(b, uint16(len(standard)+i))
	}
	return append(b, pool...), nil
}

package ttxtest

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ParseTTXFile parses a TTX XML dump from a file.
func ParseTTXFile(path string) (*ExpectedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTTX(data)
}

// ParseTTX parses a TTX XML dump into an ExpectedFont. Name records are
// returned sorted by platform, encoding, language and name ID.
func ParseTTX(data []byte) (*ExpectedFont, error) {
	var font ttxFont
	if err := xml.Unmarshal(data, &font); err != nil {
		return nil, err
	}
	exp := &ExpectedFont{}
	if font.GlyphOrder != nil {
		ids := font.GlyphOrder.Glyphs
		sort.SliceStable(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
		for i, g := range ids {
			if g.ID != i {
				return nil, fmt.Errorf("ttx: glyph order has gap at %d", i)
			}
			exp.GlyphOrder = append(exp.GlyphOrder, g.Name)
		}
	}
	if font.Name != nil {
		for _, rec := range font.Name.Records {
			name, err := normalizeNameRecord(rec)
			if err != nil {
				return nil, err
			}
			exp.Names = append(exp.Names, name)
		}
		sort.SliceStable(exp.Names, func(i, j int) bool {
			return nameKeyLess(exp.Names[i], exp.Names[j])
		})
	}
	if font.Post != nil {
		post, err := normalizePost(*font.Post)
		if err != nil {
			return nil, err
		}
		exp.Post = post
	}
	return exp, nil
}

func normalizeNameRecord(rec ttxNameRecord) (ExpectedName, error) {
	var ids [4]uint16
	for i, v := range []string{rec.PlatformID, rec.PlatEncID, rec.LangID, rec.NameID} {
		n, err := ttxValue{Value: v}.Int()
		if err != nil || n < 0 || n > 0xffff {
			return ExpectedName{}, fmt.Errorf("ttx: invalid namerecord attribute %q", v)
		}
		ids[i] = uint16(n)
	}
	return ExpectedName{
		PlatformID: ids[0],
		EncodingID: ids[1],
		LanguageID: ids[2],
		NameID:     ids[3],
		Value:      strings.TrimSpace(rec.Text),
	}, nil
}

func nameKeyLess(a, b ExpectedName) bool {
	if a.PlatformID != b.PlatformID {
		return a.PlatformID < b.PlatformID
	}
	if a.EncodingID != b.EncodingID {
		return a.EncodingID < b.EncodingID
	}
	if a.LanguageID != b.LanguageID {
		return a.LanguageID < b.LanguageID
	}
	return a.NameID < b.NameID
}

func normalizePost(p ttxPost) (*ExpectedPost, error) {
	post := &ExpectedPost{}
	switch p.FormatType.Value {
	case "1.0":
		post.Version = 0x00010000
	case "2.0":
		post.Version = 0x00020000
	case "2.5":
		post.Version = 0x00025000
	case "3.0":
		post.Version = 0x00030000
	default:
		return nil, fmt.Errorf("ttx: unsupported post formatType %q", p.FormatType.Value)
	}
	if p.ItalicAngle.Value != "" {
		angle, err := strconv.ParseFloat(p.ItalicAngle.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("ttx: invalid italicAngle: %w", err)
		}
		post.ItalicAngle = int32(math.Round(angle * 65536))
	}
	ints := []struct {
		v   ttxValue
		set func(int)
	}{
		{p.UnderlinePosition, func(n int) { post.UnderlinePosition = int16(n) }},
		{p.UnderlineThickness, func(n int) { post.UnderlineThickness = int16(n) }},
		{p.IsFixedPitch, func(n int) { post.IsFixedPitch = uint32(n) }},
		{p.MinMemType42, func(n int) { post.MinMemType42 = uint32(n) }},
		{p.MaxMemType42, func(n int) { post.MaxMemType42 = uint32(n) }},
		{p.MinMemType1, func(n int) { post.MinMemType1 = uint32(n) }},
		{p.MaxMemType1, func(n int) { post.MaxMemType1 = uint32(n) }},
	}
	for _, field := range ints {
		if field.v.Value == "" {
			continue
		}
		n, err := field.v.Int()
		if err != nil {
			return nil, fmt.Errorf("ttx: invalid post field: %w", err)
		}
		field.set(n)
	}
	return post, nil
}

type ttxFont struct {
	XMLName    xml.Name       `xml:"ttFont"`
	GlyphOrder *ttxGlyphOrder `xml:"GlyphOrder"`
	Name       *ttxName       `xml:"name"`
	Post       *ttxPost       `xml:"post"`
}

type ttxGlyphOrder struct {
	Glyphs []ttxGlyphID `xml:"GlyphID"`
}

type ttxGlyphID struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type ttxName struct {
	Records []ttxNameRecord `xml:"namerecord"`
}

type ttxNameRecord struct {
	NameID     string `xml:"nameID,attr"`
	PlatformID string `xml:"platformID,attr"`
	PlatEncID  string `xml:"platEncID,attr"`
	LangID     string `xml:"langID,attr"`
	Text       string `xml:",chardata"`
}

type ttxPost struct {
	FormatType         ttxValue `xml:"formatType"`
	ItalicAngle        ttxValue `xml:"italicAngle"`
	UnderlinePosition  ttxValue `xml:"underlinePosition"`
	UnderlineThickness ttxValue `xml:"underlineThickness"`
	IsFixedPitch       ttxValue `xml:"isFixedPitch"`
	MinMemType42       ttxValue `xml:"minMemType42"`
	MaxMemType42       ttxValue `xml:"maxMemType42"`
	MinMemType1        ttxValue `xml:"minMemType1"`
	MaxMemType1        ttxValue `xml:"maxMemType1"`
}

type ttxValue struct {
	Value string `xml:"value,attr"`
}

func (v ttxValue) Int() (int, error) {
	if v.Value == "" {
		return 0, fmt.Errorf("missing value")
	}
	if strings.HasPrefix(v.Value, "0x") || strings.HasPrefix(v.Value, "0X") {
		n, err := strconv.ParseInt(v.Value[2:], 16, 32)
		return int(n), err
	}
	n, err := strconv.Atoi(v.Value)
	return n, err
}

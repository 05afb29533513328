package ot

import (
	"testing"

	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/otblob/internal/ttxtest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const serifTTX = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="4.38">
  <GlyphOrder>
    <GlyphID id="0" name=".notdef"/>
    <GlyphID id="1" name="space"/>
    <GlyphID id="2" name="A"/>
    <GlyphID id="3" name="uni00C4"/>
    <GlyphID id="4" name="f_f_i"/>
    <GlyphID id="5" name="A.sc"/>
    <GlyphID id="6" name="uni00C4"/>
  </GlyphOrder>
  <name>
    <namerecord nameID="1" platformID="3" platEncID="1" langID="0x409">
      Test Serif
    </namerecord>
    <namerecord nameID="2" platformID="3" platEncID="1" langID="0x409">
      Italic
    </namerecord>
    <namerecord nameID="1" platformID="1" platEncID="0" langID="0x0">
      Test Serif
    </namerecord>
    <namerecord nameID="1" platformID="3" platEncID="1" langID="0x407">
      Test Serif Kursiv
    </namerecord>
  </name>
  <post>
    <formatType value="2.0"/>
    <italicAngle value="-11.25"/>
    <underlinePosition value="-75"/>
    <underlineThickness value="40"/>
    <isFixedPitch value="0"/>
    <minMemType42 value="0"/>
    <maxMemType42 value="0"/>
    <minMemType1 value="0"/>
    <maxMemType1 value="0"/>
  </post>
</ttFont>
`

func ttxFace(t *testing.T, dump string) (*ttxtest.ExpectedFont, *SFNTFace) {
	exp, err := ttxtest.ParseTTX([]byte(dump))
	require.NoError(t, err)
	name, err := exp.NameTable()
	require.NoError(t, err)
	post, err := exp.PostTable(macRomanNames[:])
	require.NoError(t, err)
	data := makeSFNT(map[Tag][]byte{
		TagName: name,
		TagPost: post,
		TagMaxp: makeMaxp(uint16(len(exp.GlyphOrder))),
	})
	b := blob.Create(data, blob.Readonly, nil)
	defer b.Destroy()
	face, err := NewFace(b, 0)
	require.NoError(t, err)
	t.Cleanup(face.Destroy)
	return exp, face
}

func TestTTXNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	exp, face := ttxFace(t, serifTTX)
	names := NewNameTable(face)
	defer names.Destroy()
	require.False(t, names.IsEmpty())
	require.Equal(t, len(exp.Names), names.Count())
	utf16 := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	for i, want := range exp.Names {
		rec := names.Record(i)
		assert.Equal(t, want.PlatformID, rec.PlatformID)
		assert.Equal(t, want.LanguageID, rec.LanguageID)
		assert.Equal(t, want.NameID, rec.NameID)
		raw := names.Name(rec.NameKey)
		if rec.PlatformID == 3 {
			s, err := utf16.Bytes(raw)
			require.NoError(t, err)
			assert.Equal(t, want.Value, string(s))
		} else {
			assert.Equal(t, want.Value, string(raw))
		}
	}
	// German family name is found next to the English one
	n := names.GetName(3, 1, 0x407, 1, nil)
	assert.Equal(t, 2*len("Test Serif Kursiv"), n)
}

func TestTTXGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	exp, face := ttxFace(t, serifTTX)
	post := NewPostTable(face)
	defer post.Destroy()
	require.False(t, post.IsEmpty())
	assert.Equal(t, exp.Post.ItalicAngle, post.ItalicAngle())
	assert.Equal(t, exp.Post.UnderlinePosition, post.UnderlinePosition())
	assert.Equal(t, exp.Post.UnderlineThickness, post.UnderlineThickness())
	assert.False(t, post.IsFixedPitch())

	acc := NewPostAccelerator(face)
	defer acc.Close()
	require.Equal(t, len(exp.GlyphOrder), acc.GlyphCount())
	for g, want := range exp.GlyphOrder {
		assert.Equal(t, want, string(acc.GlyphName(GlyphIndex(g))), "glyph %d", g)
		gid, ok := acc.GlyphFromName(want)
		require.True(t, ok, want)
		first, _ := exp.GlyphID(want)
		assert.Equal(t, GlyphIndex(first), gid, want)
	}
	_, ok := acc.GlyphFromName("A.swash")
	assert.False(t, ok)
}

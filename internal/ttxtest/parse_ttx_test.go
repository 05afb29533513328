package ttxtest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTTX = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="4.38">
  <GlyphOrder>
    <GlyphID id="0" name=".notdef"/>
    <GlyphID id="2" name="foo"/>
    <GlyphID id="1" name="A"/>
    <GlyphID id="3" name="foo"/>
  </GlyphOrder>
  <name>
    <namerecord nameID="1" platformID="3" platEncID="1" langID="0x409">
      Sample
    </namerecord>
    <namerecord nameID="1" platformID="1" platEncID="0" langID="0x0">
      Sample Café
    </namerecord>
  </name>
  <post>
    <formatType value="2.0"/>
    <italicAngle value="-12.5"/>
    <underlinePosition value="-100"/>
    <underlineThickness value="50"/>
    <isFixedPitch value="0"/>
    <minMemType42 value="0"/>
    <maxMemType42 value="0"/>
    <minMemType1 value="0"/>
    <maxMemType1 value="0"/>
  </post>
</ttFont>
`

func TestParseTTX(t *testing.T) {
	exp, err := ParseTTX([]byte(sampleTTX))
	require.NoError(t, err)
	assert.Equal(t, []string{".notdef", "A", "foo", "foo"}, exp.GlyphOrder)
	gid, ok := exp.GlyphID("foo")
	assert.True(t, ok)
	assert.Equal(t, 2, gid)
	require.Len(t, exp.Names, 2)
	assert.Equal(t, uint16(1), exp.Names[0].PlatformID) // sorted by platform
	assert.Equal(t, "Sample Café", exp.Names[0].Value)
	assert.Equal(t, uint16(0x409), exp.Names[1].LanguageID)
	require.NotNil(t, exp.Post)
	assert.Equal(t, uint32(0x00020000), exp.Post.Version)
	assert.Equal(t, int32(-819200), exp.Post.ItalicAngle)
	assert.Equal(t, int16(-100), exp.Post.UnderlinePosition)
}

func TestParseTTXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ttx")
	require.NoError(t, os.WriteFile(path, []byte(sampleTTX), 0644))
	exp, err := ParseTTXFile(path)
	require.NoError(t, err)
	assert.Len(t, exp.GlyphOrder, 4)
	_, err = ParseTTXFile(filepath.Join(t.TempDir(), "missing.ttx"))
	assert.Error(t, err)
}

func TestParseTTXErrors(t *testing.T) {
	_, err := ParseTTX([]byte(`<ttFont><post><formatType value="4.0"/></post></ttFont>`))
	assert.Error(t, err)
	_, err = ParseTTX([]byte(`<ttFont><GlyphOrder><GlyphID id="1" name="A"/></GlyphOrder></ttFont>`))
	assert.Error(t, err)
	_, err = ParseTTX([]byte(`<ttFont><name><namerecord nameID="x" platformID="3" platEncID="1" langID="0"/></name></ttFont>`))
	assert.Error(t, err)
	_, err = ParseTTX([]byte(`<notAFont/>`))
	assert.Error(t, err)
}

func TestCompileNameTable(t *testing.T) {
	exp, err := ParseTTX([]byte(sampleTTX))
	require.NoError(t, err)
	table, err := exp.NameTable()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(table[2:]))
	stringOffset := int(binary.BigEndian.Uint16(table[4:]))
	assert.Equal(t, 6+2*12, stringOffset)
	// Mac Roman: 'é' is a single byte 0x8e
	macLen := int(binary.BigEndian.Uint16(table[6+8:]))
	assert.Equal(t, len("Sample Caf")+1, macLen)
	assert.Equal(t, byte(0x8e), table[stringOffset+macLen-1])
	// UTF-16BE
	winLen := int(binary.BigEndian.Uint16(table[18+8:]))
	winOff := int(binary.BigEndian.Uint16(table[18+10:]))
	assert.Equal(t, 2*len("Sample"), winLen)
	assert.Equal(t, []byte{0, 'S', 0, 'a'}, table[stringOffset+winOff:stringOffset+winOff+4])
	assert.Equal(t, stringOffset+macLen+winLen, len(table))
}

func TestCompilePostTable(t *testing.T) {
	exp, err := ParseTTX([]byte(sampleTTX))
	require.NoError(t, err)
	standard := []string{".notdef", ".null", "A"}
	table, err := exp.PostTable(standard)
	require.NoError(t, err)
	require.Equal(t, 32+2+4*2+4, len(table))
	assert.Equal(t, uint16(4), binary.BigEndian.Uint16(table[32:]))
	indices := []uint16{0, 2, 3, 3} // "foo" is stored once
	for i, want := range indices {
		assert.Equal(t, want, binary.BigEndian.Uint16(table[34+2*i:]))
	}
	assert.Equal(t, []byte{3, 'f', 'o', 'o'}, table[42:])

	exp.Post.Version = 0x00030000
	table, err = exp.PostTable(standard)
	require.NoError(t, err)
	assert.Len(t, table, 32)

	exp.Post.Version = 0x00025000
	_, err = exp.PostTable(standard)
	assert.Error(t, err)
	exp.Post = nil
	_, err = exp.PostTable(standard)
	assert.Error(t, err)
}

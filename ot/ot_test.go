package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	assert.Equal(t, T("name"), TagName)
	assert.Equal(t, T("post"), TagPost)
	assert.Equal(t, T("maxp"), TagMaxp)
	assert.Equal(t, T("head"), TagHead)
	assert.Equal(t, "post", TagPost.String())
	assert.Equal(t, MakeTag([]byte("cmap")), T("cmap"))
	assert.Equal(t, "OS/2", T("OS/2").String())
	assert.Equal(t, "cvt ", T("cvt").String())
	assert.Equal(t, Tag(0x00000061), MakeTag([]byte("a")))
	assert.Equal(t, T("GSUB"), MakeTag([]byte("GSUBX")))
	assert.Equal(t, Tag(0), MakeTag(nil))
}

func TestBinarySegm(t *testing.T) {
	b := binarySegm{0x00, 0x01, 0x02, 0x03, 0x04}
	n, err := b.u16(3)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0304), n)
	_, err = b.u16(4)
	assert.ErrorIs(t, err, errBufferBounds)
	_, err = b.u32(-1)
	assert.ErrorIs(t, err, errBufferBounds)
	assert.Equal(t, uint32(0x00010203), b.U32(0))
	assert.Equal(t, uint32(0), b.U32(2))
	v, err := b.view(5, 0)
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestSignedAndPascalStrings(t *testing.T) {
	b := binarySegm{0xff, 0x9c, 0xff, 0xf4, 0x00, 0x00, 3, 'f', 'o', 'o', 0, 5, 'x'}
	assert.Equal(t, int16(-100), b.I16(0))
	assert.Equal(t, int32(-12<<16), b.I32(2))
	assert.Equal(t, int16(0), b.I16(12))
	s, ok := b.pascalString(6)
	assert.True(t, ok)
	assert.Equal(t, "foo", string(s))
	s, ok = b.pascalString(10) // empty string
	assert.True(t, ok)
	assert.Empty(t, s)
	_, ok = b.pascalString(11) // runs past the end
	assert.False(t, ok)
	_, ok = b.pascalString(13)
	assert.False(t, ok)
}

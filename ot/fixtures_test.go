package ot

import (
	"sort"
	"testing"

	"github.com/npillmayer/otblob/blob"
	"github.com/stretchr/testify/require"
)

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v >> 24)
	b[off+1] = byte(v >> 16)
	b[off+2] = byte(v >> 8)
	b[off+3] = byte(v)
}

type testName struct {
	key  NameKey
	text string
}

// makeNameTable builds a format 0 'name' table. Records are written in the
// order given.
func makeNameTable(names ...testName) []byte {
	stringOffset := nameHeaderSize + len(names)*nameRecordSize
	b := make([]byte, stringOffset)
	putU16(b, 0, 0)
	putU16(b, 2, uint16(len(names)))
	putU16(b, 4, uint16(stringOffset))
	var pool []byte
	for i, n := range names {
		r := nameHeaderSize + i*nameRecordSize
		putU16(b, r, n.key.PlatformID)
		putU16(b, r+2, n.key.EncodingID)
		putU16(b, r+4, n.key.LanguageID)
		putU16(b, r+6, n.key.NameID)
		putU16(b, r+8, uint16(len(n.text)))
		putU16(b, r+10, uint16(len(pool)))
		pool = append(pool, n.text...)
	}
	return append(b, pool...)
}

// makePostHeader builds a bare 32 byte 'post' header.
func makePostHeader(version uint32) []byte {
	b := make([]byte, postHeaderSize)
	putU32(b, 0, version)
	putU32(b, 4, 0xfff40000) // italic angle -12.0
	putU16(b, 8, 0xff9c)     // underline position -100
	putU16(b, 10, 50)
	putU32(b, 12, 1)
	return b
}

// makePostV2 builds a version 2.0 'post' table.
func makePostV2(indices []uint16, names []string) []byte {
	b := makePostHeader(PostVersion2)
	tail := make([]byte, 2+2*len(indices))
	putU16(tail, 0, uint16(len(indices)))
	for i, inx := range indices {
		putU16(tail, 2+2*i, inx)
	}
	b = append(b, tail...)
	for _, n := range names {
		b = append(b, byte(len(n)))
		b = append(b, n...)
	}
	return b
}

// makeMaxp builds a version 0.5 'maxp' table.
func makeMaxp(numGlyphs uint16) []byte {
	b := make([]byte, 6)
	putU32(b, 0, 0x00005000)
	putU16(b, 4, numGlyphs)
	return b
}

// makeSFNT builds a TrueType font file from a set of tables. Tables are
// stored in tag order and padded to four byte boundaries.
func makeSFNT(tables map[Tag][]byte) []byte {
	tags := make([]Tag, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	b := make([]byte, 12+16*len(tags))
	putU32(b, 0, sfntVersionTrueType)
	putU16(b, 4, uint16(len(tags)))
	for i, tag := range tags {
		r := 12 + 16*i
		data := tables[tag]
		putU32(b, r, uint32(tag))
		putU32(b, r+8, uint32(len(b)))
		putU32(b, r+12, uint32(len(data)))
		b = append(b, data...)
		for len(b)%4 != 0 {
			b = append(b, 0)
		}
	}
	return b
}

// makeFace creates a TableSet face holding readonly blobs over tables.
func makeFace(t *testing.T, tables map[Tag][]byte) *TableSet {
	ts := NewTableSet()
	for tag, data := range tables {
		b := blob.Create(data, blob.Readonly, nil)
		require.True(t, ts.AddTable(tag, b))
		b.Destroy()
	}
	t.Cleanup(ts.Destroy)
	return ts
}

// destroyCounter counts destroy-callback invocations.
type destroyCounter struct {
	calls int
}

func (c *destroyCounter) destroy() {
	c.calls++
}

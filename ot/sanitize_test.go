package ot

import (
	"math"
	"testing"

	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeContextChecks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := blob.Create(make([]byte, 20), blob.Readonly, nil)
	defer b.Destroy()
	var c SanitizeContext
	c.Start(b, TagName)
	assert.Equal(t, 20, c.Len())
	assert.True(t, c.CheckStruct(0, 20))
	assert.True(t, c.CheckRange(20, 0))
	assert.True(t, c.CheckRange(19, 1))
	assert.False(t, c.CheckRange(19, 2))
	assert.False(t, c.CheckRange(21, 0))
	assert.False(t, c.CheckRange(-1, 1))
	assert.False(t, c.CheckStruct(4, -1))
	assert.True(t, c.CheckArray(4, 4, 4))
	assert.False(t, c.CheckArray(4, 4, 5))
	assert.False(t, c.CheckArray(0, math.MaxInt/2, 3), "overflowing array size must fail")
	assert.False(t, c.CheckArray(0, 2, -1))
}

func TestSanitizeOpsBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := blob.Create(make([]byte, 4), blob.Readonly, nil)
	defer b.Destroy()
	var c SanitizeContext
	c.Start(b, TagPost)
	for i := 0; i < sanitizeMaxOpsMin; i++ {
		require.True(t, c.CheckRange(0, 4), "check %d", i)
	}
	assert.False(t, c.CheckRange(0, 4), "exhausted budget must fail every check")
	c.Start(b, TagPost)
	assert.True(t, c.CheckRange(0, 4), "restarting resets the budget")
}

func TestSanitizeBlob(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	accept := SanitizerFunc(func(c *SanitizeContext) bool { return c.CheckStruct(0, 4) })
	c := &destroyCounter{}
	b := blob.Create([]byte{1, 2, 3, 4}, blob.Writable, c.destroy)
	s := SanitizeBlob(b, T("test"), accept)
	require.Same(t, b, s)
	assert.True(t, s.IsImmutable(), "sanitized blob must be latched immutable")
	assert.Nil(t, s.DataWritable())
	s.Destroy()
	assert.Equal(t, 1, c.calls)

	b = blob.Create([]byte{1, 2}, blob.Readonly, c.destroy)
	s = SanitizeBlob(b, T("test"), accept)
	assert.Same(t, blob.Empty(), s)
	assert.Equal(t, 2, c.calls, "rejected blob must be destroyed")

	assert.Same(t, blob.Empty(), SanitizeBlob(blob.Empty(), T("test"), accept))
	assert.Same(t, blob.Empty(), ReferenceTable(nil, TagName, NameSanitizer))
}

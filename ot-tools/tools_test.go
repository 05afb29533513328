package main

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otblob/internal/fontfile"
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := fontfile.Load("", 0)
	require.NoError(t, err)
	defer otf.Close()
	acc := ot.NewPostAccelerator(otf.Face)
	defer acc.Close()
	require.Greater(t, acc.GlyphCount(), 0)
	checked, err := verifyGlyphNames(context.Background(), acc, 4)
	require.NoError(t, err)
	assert.Greater(t, checked, 0)
	assert.LessOrEqual(t, checked, acc.GlyphCount())
}

func TestRenderGlyphPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := fontfile.Load("", 0)
	require.NoError(t, err)
	defer otf.Close()
	acc := ot.NewPostAccelerator(otf.Face)
	defer acc.Close()
	gid, ok := acc.GlyphFromName("A")
	require.True(t, ok)
	out := filepath.Join(t.TempDir(), "img", "A.png")
	require.NoError(t, renderGlyphPNG(otf.SFNT, gid, out, 64, 64, 32, true))
	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
	assert.Error(t, renderGlyphPNG(otf.SFNT, gid, out, 0, 64, 32, false))
}

func TestDrawRectOutlineClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{255, 0, 0, 255}
	drawRectOutline(img, 12, 12, -3, -3, red)
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 5))
}

func TestSplitCSVSpace(t *testing.T) {
	assert.Equal(t, []string{"name", "post", "head"}, splitCSVSpace("name, post\thead"))
	assert.Empty(t, splitCSVSpace(" ,, "))
}

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/otblob"
	"github.com/npillmayer/otblob/ot"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	otf := mustLoadFont(args, flags)
	defer otf.Close()

	glyphName := strings.TrimSpace(args["glyph"].Value)
	gid, ok := otblob.GlyphByName(otf, glyphName)
	if !ok {
		fatalf("font has no glyph named %q", glyphName)
	}
	outPath := mustFlagString(flags["output"], "output")
	err := renderGlyphPNG(otf.SFNT, gid, outPath,
		mustFlagInt(flags["width"], "width"),
		mustFlagInt(flags["height"], "height"),
		mustFlagInt(flags["ppem"], "ppem"),
		mustFlagBool(flags["show-bboxes"], "show-bboxes"))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("rendered glyph %d (%s) to %s\n", gid, glyphName, outPath)
}

// renderGlyphPNG draws glyph gid of sf, centered, black on white, and writes
// the image to outPath.
func renderGlyphPNG(sf *sfnt.Font, gid ot.GlyphIndex, outPath string, width int, height int, ppem int, showBBoxes bool) error {
	if width <= 0 || height <= 0 || ppem <= 0 {
		return errors.New("image dimensions and ppem must be positive")
	}
	var buf sfnt.Buffer
	segs, err := sf.LoadGlyph(&buf, sfnt.GlyphIndex(gid), fixed.I(ppem), nil)
	if err != nil {
		return fmt.Errorf("cannot load glyph %d: %w", gid, err)
	}
	bounds := segs.Bounds()
	// shift which moves the center of the glyph's bounds to the image center
	shift := fixed.Point26_6{
		X: fixed.I(width)/2 - (bounds.Min.X+bounds.Max.X)/2,
		Y: fixed.I(height)/2 - (bounds.Min.Y+bounds.Max.Y)/2,
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	rasterize(img, segs, shift)
	if showBBoxes {
		box := bounds.Add(shift)
		drawRectOutline(img, box.Min.X.Floor(), box.Min.Y.Floor(), box.Max.X.Ceil(), box.Max.Y.Ceil(),
			color.RGBA{255, 0, 0, 255})
	}
	return writePNG(img, outPath)
}

// rasterize fills the outline segs, moved by shift, in black onto img.
func rasterize(img *image.RGBA, segs sfnt.Segments, shift fixed.Point26_6) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		p = p.Add(shift)
		return float32(p.X) / 64, float32(p.Y) / 64
	}
	rast := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	rast.DrawOp = draw.Over
	for _, seg := range segs {
		x0, y0 := pt(seg.Args[0])
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(x0, y0)
		case sfnt.SegmentOpLineTo:
			rast.LineTo(x0, y0)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[1])
			rast.QuadTo(x0, y0, x1, y1)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[1])
			x2, y2 := pt(seg.Args[2])
			rast.CubeTo(x0, y0, x1, y1, x2, y2)
		}
	}
	rast.Draw(img, img.Bounds(), image.Black, image.Point{})
}

func writePNG(img image.Image, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return f.Close()
}

func drawRectOutline(img *image.RGBA, minX int, minY int, maxX int, maxY int, c color.RGBA) {
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	b := img.Bounds()
	minX, minY = max(minX, b.Min.X), max(minY, b.Min.Y)
	maxX, maxY = min(maxX, b.Max.X), min(maxY, b.Max.Y)
	if minX >= maxX || minY >= maxY {
		return
	}
	// top and bottom
	for x := minX; x < maxX; x++ {
		img.SetRGBA(x, minY, c)
		img.SetRGBA(x, maxY-1, c)
	}
	// left and right
	for y := minY; y < maxY; y++ {
		img.SetRGBA(minX, y, c)
		img.SetRGBA(maxX-1, y, c)
	}
}

/*
Package otblob gives zero-copy access to OpenType fonts.

Font files are memory mapped into blobs (package blob), and tables are handed
out as sub-blobs of the font blob, which are sanitized once and read in place
afterwards (package ot). Package otquery builds queries for names, header
information and glyph names on top of this.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner. Package ot
follows the OpenType usage, where a face is one font of a font file.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otblob

import (
	"fmt"

	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'opentype'
func tracer() tracing.Trace {
	return tracing.Select("opentype")
}

// ScalableFont is an outline font of type TTF or OTF, held in a blob.
//
// Face gives access to the font's tables; SFNT is an x/image view onto the
// same bytes, for clients which want to rasterize glyphs. Both are valid until
// Close is called.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, if loaded from a file
	Blob     *blob.Blob // the font file's bytes
	Face     *ot.SFNTFace
	SFNT     *sfnt.Font // concurrent callers need an sfnt.Buffer each
}

// LoadOpenTypeFont maps an OpenType font (TTF or OTF) from a file.
// For font collections, index selects the font.
func LoadOpenTypeFont(fontfile string, index int) (*ScalableFont, error) {
	b, err := blob.CreateFromFileOrFail(fontfile)
	if err != nil {
		return nil, err
	}
	defer b.Destroy()
	f, err := newScalableFont(b, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont wraps an OpenType font (TTF or OTF) in memory. fbytes
// must not be modified while the font is in use.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	b := blob.Create(fbytes, blob.Readonly, nil)
	defer b.Destroy()
	return newScalableFont(b, 0)
}

func newScalableFont(b *blob.Blob, index int) (*ScalableFont, error) {
	face, err := ot.NewFace(b, index)
	if err != nil {
		return nil, err
	}
	f := &ScalableFont{Blob: b.Reference(), Face: face}
	c, err := sfnt.ParseCollection(b.Data())
	if err == nil {
		f.SFNT, err = c.Font(index)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// Close releases the font's face and bytes. For fonts loaded from a file,
// this unmaps the file once no table blob references it any more.
func (f *ScalableFont) Close() {
	if f == nil || f.Blob == nil {
		return
	}
	f.Face.Destroy()
	f.Blob.Destroy()
	f.Blob, f.Face, f.SFNT = nil, nil, nil
}

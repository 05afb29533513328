/*
Package fontfile locates and loads the font the command line tools work on.

A font may be given as a path to a font file or as the name of a font installed
on the system. Without a name, the Go Regular font compiled into the tools is
used.
*/
package fontfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/otblob"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'opentype'
func tracer() tracing.Trace {
	return tracing.Select("opentype")
}

// FallbackName is reported as the file path of the compiled-in font.
const FallbackName = "<Go Regular>"

// Resolve returns the path of the font file for name: name itself if such a
// file exists, otherwise the path of a matching system font.
func Resolve(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err != nil {
		return "", fmt.Errorf("font %q: %w", name, err)
	}
	if fpath == "" {
		return "", errors.New("font " + name + " not found")
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return fpath, nil
}

// Load maps the font named name (see Resolve). For font collections, index
// selects the font. An empty name loads the compiled-in Go Regular font.
func Load(name string, index int) (*otblob.ScalableFont, error) {
	if name == "" {
		f, err := otblob.ParseOpenTypeFont(goregular.TTF)
		if err != nil {
			return nil, err
		}
		f.Filepath = FallbackName
		return f, nil
	}
	fpath, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := otblob.LoadOpenTypeFont(fpath, index)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded font %s from %s", f.Fontname, fpath)
	return f, nil
}

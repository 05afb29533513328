package blob

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrEmptyFile is returned for regular files of size 0, which cannot be mapped.
	ErrEmptyFile = errors.New("blob: empty file")
	// ErrFileTooLarge is returned for files which exceed MaxLength.
	ErrFileTooLarge = errors.New("blob: file too large")
)

// CreateFromFile maps the file at path into a new blob. Where the platform
// supports memory mapping, the blob is ReadonlyMayMakeWritable and the mapping
// is released when the blob is destroyed. Otherwise the file is read into a
// Writable heap buffer.
//
// On any failure the empty blob is returned.
func CreateFromFile(path string) *Blob {
	b, err := CreateFromFileOrFail(path)
	if err != nil {
		tracer().Debugf("cannot create blob from file: %v", err)
		return Empty()
	}
	return b
}

// CreateFromFileOrFail is like CreateFromFile, but reports why the file could
// not be mapped. On error the returned blob is the empty blob.
func CreateFromFileOrFail(path string) (*Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("blob: %w", err)
	}
	defer f.Close() // the mapping holds its own reference to the file
	fi, err := f.Stat()
	if err != nil {
		return Empty(), fmt.Errorf("blob: %w", err)
	}
	if fi.Size() == 0 && fi.Mode().IsRegular() {
		return Empty(), fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if fi.Size() >= MaxLength {
		return Empty(), fmt.Errorf("%w: %s has %d bytes", ErrFileTooLarge, path, fi.Size())
	}
	mf, mode, err := mapFile(f, fi.Size())
	if err != nil {
		return Empty(), fmt.Errorf("blob: %w", err)
	}
	tracer().Debugf("mapped %d bytes of %s as %s", len(mf.contents), path, mode)
	return Create(mf.contents, mode, mf.release), nil
}

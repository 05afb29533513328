//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package blob

import (
	"io"
	"os"
)

// mappedFile is the record paired with a blob created from a file. Without
// memory mapping support the file contents are read onto the heap.
type mappedFile struct {
	contents []byte
}

func mapFile(f *os.File, size int64) (*mappedFile, MemoryMode, error) {
	contents := make([]byte, size)
	if _, err := io.ReadFull(f, contents); err != nil {
		return nil, Readonly, &os.PathError{Op: "read", Path: f.Name(), Err: err}
	}
	return &mappedFile{contents: contents}, Writable, nil
}

func (mf *mappedFile) release() {
	mf.contents = nil
}

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package blob

import (
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is the record paired with a blob created from a file.
type mappedFile struct {
	contents []byte
}

func mapFile(f *os.File, size int64) (*mappedFile, MemoryMode, error) {
	contents, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, Readonly, &os.PathError{Op: "mmap", Path: f.Name(), Err: err}
	}
	return &mappedFile{contents: contents}, ReadonlyMayMakeWritable, nil
}

func (mf *mappedFile) release() {
	if err := unix.Munmap(mf.contents); err != nil {
		tracer().Errorf("munmap: %v", err)
	}
	mf.contents = nil
}

//go:build windows

package blob

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mappedFile is the record paired with a blob created from a file.
type mappedFile struct {
	contents []byte
	mapping  windows.Handle
	addr     uintptr
}

func mapFile(f *os.File, size int64) (*mappedFile, MemoryMode, error) {
	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, Readonly, &os.PathError{Op: "CreateFileMapping", Path: f.Name(), Err: err}
	}
	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, Readonly, &os.PathError{Op: "MapViewOfFile", Path: f.Name(), Err: err}
	}
	mf := &mappedFile{
		contents: unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)),
		mapping:  mapping,
		addr:     addr,
	}
	return mf, ReadonlyMayMakeWritable, nil
}

func (mf *mappedFile) release() {
	if err := windows.UnmapViewOfFile(mf.addr); err != nil {
		tracer().Errorf("UnmapViewOfFile: %v", err)
	}
	windows.CloseHandle(mf.mapping)
	mf.contents = nil
}

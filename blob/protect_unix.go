//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package blob

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

// protectWritable requests read+write protection for the pages spanning data.
func protectWritable(data []byte) error {
	if len(data) == 0 {
		return errors.New("no data")
	}
	pagesize := unix.Getpagesize()
	if pagesize <= 0 {
		return errors.New("failed to get page size")
	}
	start := unsafe.Pointer(unsafe.SliceData(data))
	lead := int(uintptr(start) & uintptr(pagesize-1))
	length := (lead + len(data) + pagesize - 1) &^ (pagesize - 1)
	pages := unsafe.Slice((*byte)(unsafe.Add(start, -lead)), length)
	tracer().Debugf("calling mprotect on [%p..+%d] (%d bytes)", unsafe.Add(start, -lead), length, length)
	return unix.Mprotect(pages, unix.PROT_READ|unix.PROT_WRITE)
}

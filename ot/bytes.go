package ot

import "errors"

// Big-endian access to table bytes. Views read sanitized data through the
// upper-case accessors, which never fail; parsing code which runs before
// sanitization uses the error-returning ones.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])
}

func u32(b []byte) uint32 {
	_ = b[3] // bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// binarySegm is a borrowed window onto a blob's bytes.
type binarySegm []byte

// view returns the n bytes at offset as a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errBufferBounds
	}
	return b[offset : offset+n : offset+n], nil
}

func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// U16 returns the uint16 at byte index i, or 0 if out of bounds.
func (b binarySegm) U16(i int) uint16 {
	n, _ := b.u16(i)
	return n
}

// U32 returns the uint32 at byte index i, or 0 if out of bounds.
func (b binarySegm) U32(i int) uint32 {
	n, _ := b.u32(i)
	return n
}

// I16 returns the int16 (FWORD) at byte index i, or 0 if out of bounds.
func (b binarySegm) I16(i int) int16 {
	return int16(b.U16(i))
}

// I32 returns the int32 (Fixed) at byte index i, or 0 if out of bounds.
func (b binarySegm) I32(i int) int32 {
	return int32(b.U32(i))
}

// pascalString returns the length-prefixed string starting at offset, without
// its length byte. It fails if the string runs past the end of b.
func (b binarySegm) pascalString(offset int) (binarySegm, bool) {
	if offset < 0 || offset >= len(b) {
		return nil, false
	}
	s, err := b.view(offset+1, int(b[offset]))
	return s, err == nil
}

package ot

import (
	"fmt"
	"math"

	"github.com/npillmayer/otblob/blob"
)

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers
func checkedMulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d * %d", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Limits of the work a single sanitizer run may do: the budget is
// proportional to the size of the blob, but never below a floor.
const (
	sanitizeMaxOpsFactor = 8
	sanitizeMaxOpsMin    = 16384
)

// SanitizeContext checks untrusted table bytes. A Sanitizer calls the Check…
// methods for every structure it will later read without bounds checks.
// Every check consumes one unit of an operations budget; once it is exhausted
// all further checks fail.
type SanitizeContext struct {
	data    binarySegm
	table   Tag
	opsLeft int
}

// Start prepares c for checking the bytes of b, which should be a table blob
// referenced under tag.
func (c *SanitizeContext) Start(b *blob.Blob, tag Tag) {
	c.data = binarySegm(b.Data())
	c.table = tag
	c.opsLeft = max(len(c.data)*sanitizeMaxOpsFactor, sanitizeMaxOpsMin)
}

// Bytes returns the bytes under check.
func (c *SanitizeContext) Bytes() []byte {
	return c.data
}

// Len returns the number of bytes under check.
func (c *SanitizeContext) Len() int {
	return len(c.data)
}

// U16 reads a uint16 at offset. Callers have to check the range first.
func (c *SanitizeContext) U16(offset int) uint16 {
	return c.data.U16(offset)
}

// U32 reads a uint32 at offset. Callers have to check the range first.
func (c *SanitizeContext) U32(offset int) uint32 {
	return c.data.U32(offset)
}

// CheckRange checks that length bytes starting at offset lie inside the data.
func (c *SanitizeContext) CheckRange(offset, length int) bool {
	c.opsLeft--
	ok := c.opsLeft >= 0 &&
		offset >= 0 && length >= 0 &&
		offset <= len(c.data) && length <= len(c.data)-offset
	if !ok {
		tracer().Debugf("sanitize %s: range [%d+%d] outside of %d bytes (ops left %d)",
			c.table, offset, length, len(c.data), c.opsLeft)
	}
	return ok
}

// CheckStruct checks that a structure of size bytes at offset lies inside the data.
func (c *SanitizeContext) CheckStruct(offset, size int) bool {
	return c.CheckRange(offset, size)
}

// CheckArray checks that count records of recordSize bytes each, starting at
// offset, lie inside the data.
func (c *SanitizeContext) CheckArray(offset, recordSize, count int) bool {
	n, err := checkedMulInt(recordSize, count)
	if err != nil {
		tracer().Debugf("sanitize %s: array at %d: %v", c.table, offset, err)
		return false
	}
	return c.CheckRange(offset, n)
}

// Sanitizer checks the structure of a table.
type Sanitizer interface {
	Sanitize(c *SanitizeContext) bool
}

// SanitizerFunc lets ordinary functions act as Sanitizers.
type SanitizerFunc func(c *SanitizeContext) bool

// Sanitize calls f(c).
func (f SanitizerFunc) Sanitize(c *SanitizeContext) bool {
	return f(c)
}

// SanitizeBlob runs s over the bytes of b. SanitizeBlob takes over the
// caller's reference to b.
//
// If the check succeeds, b is made immutable and returned; the returned blob
// is the witness for subsequent unchecked reads. Otherwise b is destroyed and
// the empty blob is returned.
func SanitizeBlob(b *blob.Blob, tag Tag, s Sanitizer) *blob.Blob {
	if b.IsEmpty() {
		b.Destroy()
		return blob.Empty()
	}
	var c SanitizeContext
	c.Start(b, tag)
	if !s.Sanitize(&c) {
		tracer().Infof("table %s rejected by sanitizer", tag)
		b.Destroy()
		return blob.Empty()
	}
	b.MakeImmutable()
	return b
}

// rejectionReporter is implemented by faces which keep track of broken tables.
type rejectionReporter interface {
	reportRejected(tag Tag)
}

// ReferenceTable references the table with the given tag from face and
// sanitizes it. The caller owns the returned reference, which may be the
// empty blob.
func ReferenceTable(face Face, tag Tag, s Sanitizer) *blob.Blob {
	if face == nil {
		return blob.Empty()
	}
	b := face.ReferenceTable(tag)
	present := !b.IsEmpty()
	b = SanitizeBlob(b, tag, s)
	if present && b.IsEmpty() {
		if r, ok := face.(rejectionReporter); ok {
			r.reportRejected(tag)
		}
	}
	return b
}

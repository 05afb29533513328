package blob

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/otblob/internal/object"
)

// MemoryMode is the contract a producer of bytes makes about the buffer it
// hands to a blob.
type MemoryMode int

const (
	Duplicate               MemoryMode = iota // copy the bytes at creation time
	Readonly                                  // never write to the bytes
	Writable                                  // bytes are owned by the blob
	ReadonlyMayMakeWritable                   // try page-protection promotion before copying
)

func (m MemoryMode) String() string {
	switch m {
	case Duplicate:
		return "Duplicate"
	case Readonly:
		return "Readonly"
	case Writable:
		return "Writable"
	case ReadonlyMayMakeWritable:
		return "ReadonlyMayMakeWritable"
	}
	return fmt.Sprintf("MemoryMode(%d)", int(m))
}

// MaxLength is the exclusive upper bound for the length of a blob.
const MaxLength = 1 << 31

// Blob is an ownership-tracked view of a contiguous byte range.
//
// Blobs are shared by reference counting. The zero value is not usable;
// blobs are created with Create, CreateSubBlob, CreateFromFile or
// CopyWritableOrFail, and released with Destroy.
type Blob struct {
	header    object.Header
	immutable atomic.Bool
	data      []byte
	mode      MemoryMode
	destroy   func()
}

var emptyBlob = func() *Blob {
	b := &Blob{mode: Readonly}
	b.header.MakeInert()
	b.immutable.Store(true)
	return b
}()

// Empty returns the process-wide empty blob. It has length 0, is immutable,
// and ignores Reference and Destroy.
func Empty() *Blob {
	return emptyBlob
}

// Create wraps data in a new blob with the given memory mode. destroy, if not
// nil, is called exactly once when the bytes are no longer needed by the blob.
//
// If data is empty or too long, destroy is called immediately and the empty
// blob is returned. With mode Duplicate the bytes are copied before Create
// returns, and the blob is Writable.
func Create(data []byte, mode MemoryMode, destroy func()) *Blob {
	if len(data) == 0 || uint64(len(data)) >= MaxLength {
		tracer().Debugf("cannot create blob of length %d", len(data))
		if destroy != nil {
			destroy()
		}
		return Empty()
	}
	b := &Blob{
		data:    data,
		mode:    mode,
		destroy: destroy,
	}
	b.header.Init()
	if b.mode == Duplicate {
		b.mode = Readonly
		if !b.tryWritable() {
			b.Destroy()
			return Empty()
		}
	}
	return b
}

// CreateSubBlob returns a blob representing length bytes of parent, starting
// at offset. The sub-blob is Readonly and holds a reference to parent, which
// is made immutable. length is clipped to the end of parent's data.
//
// If length is not positive or offset lies outside of parent, the empty blob
// is returned.
func CreateSubBlob(parent *Blob, offset, length int) *Blob {
	if parent == nil || length <= 0 || offset < 0 || offset >= parent.Len() {
		return Empty()
	}
	parent.MakeImmutable()
	n := min(length, parent.Len()-offset)
	ref := parent.Reference()
	return Create(parent.data[offset:offset+n:offset+n], Readonly, ref.Destroy)
}

// CopyWritableOrFail returns a new writable blob holding a private copy of
// b's bytes, or nil if no copy could be made.
func CopyWritableOrFail(b *Blob) *Blob {
	if b == nil {
		return nil
	}
	c := Create(b.data, Duplicate, nil)
	if c == Empty() {
		return nil
	}
	return c
}

// Reference acquires another reference to b and returns b.
func (b *Blob) Reference() *Blob {
	if b == nil {
		return Empty()
	}
	b.header.Reference()
	return b
}

// Destroy drops a reference to b. When the last reference is gone, the
// blob's destroy callback is called.
func (b *Blob) Destroy() {
	if b == nil || !b.header.Destroy() {
		return
	}
	b.destroyUserData()
	b.data = nil
}

func (b *Blob) destroyUserData() {
	if b.destroy != nil {
		destroy := b.destroy
		b.destroy = nil
		destroy()
	}
}

// SetUserData attaches data to b under key. See object.Header.SetUserData.
func (b *Blob) SetUserData(key *object.UserDataKey, data any, destroy func(any), replace bool) bool {
	return b.header.SetUserData(key, data, destroy, replace)
}

// UserData returns the data attached to b under key, or nil.
func (b *Blob) UserData(key *object.UserDataKey) any {
	return b.header.UserData(key)
}

// MakeImmutable latches b as immutable. There is no way back.
func (b *Blob) MakeImmutable() {
	if b == nil || b.header.IsInert() {
		return
	}
	b.immutable.Store(true)
}

// IsImmutable reports whether b has been latched as immutable.
func (b *Blob) IsImmutable() bool {
	return b == nil || b.immutable.Load()
}

// IsEmpty reports whether b holds no bytes.
func (b *Blob) IsEmpty() bool {
	return b == nil || len(b.data) == 0
}

// Len returns the number of bytes in b.
func (b *Blob) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Mode returns b's current memory mode.
func (b *Blob) Mode() MemoryMode {
	if b == nil {
		return Readonly
	}
	return b.mode
}

// ReferenceCount returns the number of references held on b, or -1 for the
// empty blob.
func (b *Blob) ReferenceCount() int {
	if b == nil {
		return -1
	}
	return b.header.ReferenceCount()
}

// Data returns b's bytes. The slice is borrowed from b and must be treated as
// read-only; it stays valid as long as a reference to b is held.
func (b *Blob) Data() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// DataWritable tries to make b's bytes writable, possibly by copying them,
// and returns them. It returns nil if b is immutable or cannot be made
// writable.
func (b *Blob) DataWritable() []byte {
	if b == nil || !b.tryWritable() {
		return nil
	}
	return b.data
}

func (b *Blob) String() string {
	if b == nil {
		return "blob(nil)"
	}
	return fmt.Sprintf("blob(len=%d, mode=%s, immutable=%v, refs=%d)",
		len(b.data), b.mode, b.IsImmutable(), b.header.ReferenceCount())
}

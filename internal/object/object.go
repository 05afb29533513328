/*
Package object provides the reference-counted substrate shared by blobs and
other long-lived font objects.

An object embeds a Header. The header carries an atomic reference count, an
"inert" marker for static singletons (which ignore reference and destroy
calls), and a keyed side-table of user data.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package object

import (
	"sync"
	"sync/atomic"
)

// inertCount marks a header as static. Its reference count never changes.
const inertCount = -1

// Header is the reference counting part of an object. The zero value is not
// usable; call Init for heap objects or MakeInert for static ones.
type Header struct {
	refCount atomic.Int32
	mu       sync.Mutex // guards userData
	userData []userDataItem
}

// Init prepares h for a freshly created object, holding one reference.
func (h *Header) Init() {
	h.refCount.Store(1)
}

// MakeInert turns h into a header for a static object.
func (h *Header) MakeInert() {
	h.refCount.Store(inertCount)
}

// IsInert reports whether h belongs to a static singleton.
func (h *Header) IsInert() bool {
	return h == nil || h.refCount.Load() == inertCount
}

// IsValid reports whether h is alive, i.e. either inert or holding at least
// one reference.
func (h *Header) IsValid() bool {
	return h != nil && (h.refCount.Load() > 0 || h.refCount.Load() == inertCount)
}

// ReferenceCount returns the current number of references, or -1 for inert
// objects.
func (h *Header) ReferenceCount() int {
	if h == nil {
		return inertCount
	}
	return int(h.refCount.Load())
}

// Reference increments the reference count. It is a no-op for inert headers.
func (h *Header) Reference() {
	if h.IsInert() {
		return
	}
	if h.refCount.Add(1) <= 1 {
		panic("object: reference of a destroyed object")
	}
}

// Destroy decrements the reference count and reports whether it reached zero.
// If it did, the user data side-table has already been released and the caller
// is expected to finalise its own state. Inert headers always return false.
func (h *Header) Destroy() bool {
	if h.IsInert() {
		return false
	}
	switch n := h.refCount.Add(-1); {
	case n > 0:
		return false
	case n < 0:
		panic("object: destroy of a destroyed object")
	}
	h.fini()
	return true
}

// fini releases all user data entries.
func (h *Header) fini() {
	h.mu.Lock()
	items := h.userData
	h.userData = nil
	h.mu.Unlock()
	for _, item := range items {
		item.release()
	}
}

// --- User data -------------------------------------------------------------

// UserDataKey identifies an entry in an object's user data table. Keys compare
// by identity, so clients declare them as package level variables:
//
//	var myKey object.UserDataKey
//	blob.SetUserData(&myKey, value, nil, true)
type UserDataKey struct {
	_ byte // keys must have a non-zero size to be distinct
}

type userDataItem struct {
	key     *UserDataKey
	data    any
	destroy func(any)
}

func (item userDataItem) release() {
	if item.destroy != nil {
		item.destroy(item.data)
	}
}

// SetUserData attaches data to h under key. If an entry for key exists and
// replace is false, nothing is changed and false is returned. A replaced entry
// has its destroy callback invoked. Setting nil data removes the entry.
//
// Inert headers do not accept user data.
func (h *Header) SetUserData(key *UserDataKey, data any, destroy func(any), replace bool) bool {
	if key == nil || h.IsInert() {
		return false
	}
	var old *userDataItem
	h.mu.Lock()
	for i := range h.userData {
		if h.userData[i].key != key {
			continue
		}
		if !replace {
			h.mu.Unlock()
			return false
		}
		prev := h.userData[i]
		old = &prev
		if data == nil {
			h.userData = append(h.userData[:i], h.userData[i+1:]...)
		} else {
			h.userData[i] = userDataItem{key: key, data: data, destroy: destroy}
		}
		break
	}
	if old == nil && data != nil {
		h.userData = append(h.userData, userDataItem{key: key, data: data, destroy: destroy})
	}
	h.mu.Unlock()
	if old != nil {
		old.release()
	}
	return true
}

// UserData returns the data attached to h under key, or nil.
func (h *Header) UserData(key *UserDataKey) any {
	if key == nil || h.IsInert() {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, item := range h.userData {
		if item.key == key {
			return item.data
		}
	}
	return nil
}

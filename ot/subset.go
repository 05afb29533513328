package ot

import (
	"sort"
	"sync"

	"github.com/npillmayer/otblob/blob"
)

// TableCollector receives tables produced by subsetting.
// AddTable takes a reference of its own to b.
type TableCollector interface {
	AddTable(tag Tag, b *blob.Blob) bool
}

// TableSet is a collection of table blobs keyed by tag. It is a
// TableCollector and, as it hands out its tables by tag, a Face.
type TableSet struct {
	mu     sync.Mutex
	tables map[Tag]*blob.Blob
}

// NewTableSet creates an empty table set.
func NewTableSet() *TableSet {
	return &TableSet{tables: make(map[Tag]*blob.Blob)}
}

// AddTable stores a reference to b under tag, replacing (and releasing) a
// previous table with the same tag. Empty blobs are not stored.
func (ts *TableSet) AddTable(tag Tag, b *blob.Blob) bool {
	if b == nil || b.IsEmpty() {
		return false
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if old, ok := ts.tables[tag]; ok {
		old.Destroy()
	}
	ts.tables[tag] = b.Reference()
	return true
}

// ReferenceTable returns a new reference to the table stored under tag,
// or the empty blob.
func (ts *TableSet) ReferenceTable(tag Tag) *blob.Blob {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if b, ok := ts.tables[tag]; ok {
		return b.Reference()
	}
	return blob.Empty()
}

// Tags returns the tags of all stored tables in ascending order.
func (ts *TableSet) Tags() []Tag {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	tags := make([]Tag, 0, len(ts.tables))
	for tag := range ts.tables {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Destroy releases all stored tables.
func (ts *TableSet) Destroy() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for tag, b := range ts.tables {
		b.Destroy()
		delete(ts.tables, tag)
	}
}

// SubsetPost produces a 'post' table without glyph names for face and hands
// it to collector: a writable copy of the 32 byte header of face's 'post'
// table, with the major version set to 3. SubsetPost returns false if face
// has no usable 'post' table or if the copy cannot be made writable.
func SubsetPost(face Face, collector TableCollector) bool {
	post := ReferenceTable(face, TagPost, PostSanitizer)
	defer post.Destroy()
	if post.IsEmpty() {
		return false
	}
	header := blob.CreateSubBlob(post, 0, postHeaderSize)
	defer header.Destroy()
	w := header.DataWritable()
	if w == nil {
		tracer().Errorf("cannot make 'post' header writable")
		return false
	}
	w[0], w[1] = 0, 3 // major version
	return collector.AddTable(TagPost, header)
}

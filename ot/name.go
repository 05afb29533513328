package ot

import (
	"cmp"
	"sort"

	"github.com/npillmayer/otblob/blob"
)

// The naming table allows multilingual strings to be associated with the
// OpenType font. Strings are stored in a pool following the name records,
// and are encoded as dictated by platform and encoding IDs of their records.
// This package does not convert string encodings.
//
// Header (6 bytes):
//
//	uint16  format        0 or 1
//	uint16  count         number of name records
//	Offset16 stringOffset offset to start of string storage (from start of table)
//
// followed by count name records of 12 bytes each, sorted ascending by
// platform ID, encoding ID, language ID and name ID.
const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// NameKey identifies a name record.
type NameKey struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
}

// Compare orders keys by platform, encoding, language and name ID, which is
// the order of records in a 'name' table.
func (k NameKey) Compare(other NameKey) int {
	if c := cmp.Compare(k.PlatformID, other.PlatformID); c != 0 {
		return c
	}
	if c := cmp.Compare(k.EncodingID, other.EncodingID); c != 0 {
		return c
	}
	if c := cmp.Compare(k.LanguageID, other.LanguageID); c != 0 {
		return c
	}
	return cmp.Compare(k.NameID, other.NameID)
}

// NameRecord is a record of the 'name' table. Offset is relative to the
// start of the string storage.
type NameRecord struct {
	NameKey
	Length uint16
	Offset uint16
}

// NameTable is a view onto a sanitized 'name' table.
// A NameTable whose table failed to sanitize has no records.
type NameTable struct {
	blob *blob.Blob
	data binarySegm
}

// NameSanitizer checks a 'name' table.
var NameSanitizer = SanitizerFunc(sanitizeName)

func sanitizeName(c *SanitizeContext) bool {
	if !c.CheckStruct(0, nameHeaderSize) {
		return false
	}
	if format := c.U16(0); format > 1 {
		tracer().Debugf("name table format %d not supported", format)
		return false
	}
	count := int(c.U16(2))
	stringOffset := int(c.U16(4))
	if !c.CheckArray(nameHeaderSize, nameRecordSize, count) {
		return false
	}
	for i := 0; i < count; i++ {
		r := nameHeaderSize + i*nameRecordSize
		length, offset := int(c.U16(r+8)), int(c.U16(r+10))
		if !c.CheckRange(stringOffset+offset, length) {
			return false
		}
	}
	return true
}

// NewNameTable references and sanitizes the 'name' table of face.
// Clients should call Destroy when done with the table.
func NewNameTable(face Face) *NameTable {
	return NameTableFromBlob(ReferenceTable(face, TagName, NameSanitizer))
}

// NameTableFromBlob wraps a blob returned by SanitizeBlob with NameSanitizer.
// The table takes over the caller's reference.
func NameTableFromBlob(b *blob.Blob) *NameTable {
	return &NameTable{blob: b, data: binarySegm(b.Data())}
}

// Destroy drops the table's reference to its blob.
func (t *NameTable) Destroy() {
	t.blob.Destroy()
	t.blob = blob.Empty()
	t.data = nil
}

// Blob returns the table's blob (borrowed).
func (t *NameTable) Blob() *blob.Blob {
	return t.blob
}

// IsEmpty is true if the table is missing or failed to sanitize.
func (t *NameTable) IsEmpty() bool {
	return len(t.data) == 0
}

// Format returns the table format, 0 or 1.
func (t *NameTable) Format() uint16 {
	return t.data.U16(0)
}

// Count returns the number of name records.
func (t *NameTable) Count() int {
	return int(t.data.U16(2))
}

// StringOffset returns the offset of the string storage from the start of the table.
func (t *NameTable) StringOffset() int {
	return int(t.data.U16(4))
}

// Size returns the size of header and name records.
func (t *NameTable) Size() int {
	return nameHeaderSize + t.Count()*nameRecordSize
}

// Record returns name record number i.
func (t *NameTable) Record(i int) NameRecord {
	if i < 0 || i >= t.Count() {
		return NameRecord{}
	}
	r := t.data[nameHeaderSize+i*nameRecordSize:]
	return NameRecord{
		NameKey: NameKey{
			PlatformID: u16(r[0:]),
			EncodingID: u16(r[2:]),
			LanguageID: u16(r[4:]),
			NameID:     u16(r[6:]),
		},
		Length: u16(r[8:]),
		Offset: u16(r[10:]),
	}
}

// find binary searches the records for key.
func (t *NameTable) find(key NameKey) (NameRecord, bool) {
	n := t.Count()
	i := sort.Search(n, func(i int) bool {
		return t.Record(i).NameKey.Compare(key) >= 0
	})
	if i < n {
		if rec := t.Record(i); rec.NameKey == key {
			return rec, true
		}
	}
	return NameRecord{}, false
}

// Name returns the string bytes of the record for key, or nil if there is
// no such record. The slice is borrowed from the table's blob.
func (t *NameTable) Name(key NameKey) []byte {
	rec, ok := t.find(key)
	if !ok {
		return nil
	}
	return t.recordString(rec)
}

// RecordName returns the string bytes of name record number i, or nil if
// there is no such record. Unlike Name it does not search, so it also
// reaches records with duplicate keys and records of unsorted tables.
// The slice is borrowed from the table's blob.
func (t *NameTable) RecordName(i int) []byte {
	if i < 0 || i >= t.Count() {
		return nil
	}
	return t.recordString(t.Record(i))
}

// recordString slices the string of rec from the string pool. Sanitization
// guarantees the range lies inside the table.
func (t *NameTable) recordString(rec NameRecord) []byte {
	start := t.StringOffset() + int(rec.Offset)
	return t.data[start : start+int(rec.Length) : start+int(rec.Length)]
}

// GetName copies the string bytes of the record for
// (platform, encoding, language, nameID) to buf and returns the number of
// bytes copied. Strings longer than buf are truncated. If there is no such
// record, GetName returns 0.
//
// If buf is empty, nothing is copied and GetName returns the full length of
// the string; clients may use this to size a buffer.
func (t *NameTable) GetName(platform, encoding, language, nameID uint16, buf []byte) int {
	name := t.Name(NameKey{
		PlatformID: platform,
		EncodingID: encoding,
		LanguageID: language,
		NameID:     nameID,
	})
	if len(buf) == 0 {
		return len(name)
	}
	return copy(buf, name)
}

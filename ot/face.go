package ot

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/otblob/blob"
)

// Face supplies the tables of a single font by tag.
//
// ReferenceTable returns a new reference to the blob of the table; the caller
// has to destroy it. If the face has no such table, the empty blob is returned.
type Face interface {
	ReferenceTable(tag Tag) *blob.Blob
}

// FontHeader is the offset table at the start of the table directory of a font.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// TableRecord locates a table inside the font blob.
type TableRecord struct {
	Tag    Tag
	Offset uint32
	Length uint32
}

// SFNTFace is a Face over the blob of an SFNT font file.
// The face holds a reference to the font blob, which it makes immutable.
// Table blobs are sub-blobs of the font blob and pin it.
type SFNTFace struct {
	blob      *blob.Blob
	index     int
	Header    FontHeader
	tables    map[Tag]TableRecord
	numGlyphs struct {
		once sync.Once
		n    int
	}
	ec errorCollector
}

// NewFace reads the table directory of the font at position index of the
// font file in b. Plain font files contain a single font at index 0, font
// collections ('ttcf') may contain more.
//
// NewFace takes a reference of its own to b; the caller keeps its reference.
func NewFace(b *blob.Blob, index int) (*SFNTFace, error) {
	if b == nil || b.IsEmpty() {
		return nil, errFontFormat("empty font data")
	}
	face := &SFNTFace{index: index, tables: make(map[Tag]TableRecord)}
	src := binarySegm(b.Data())
	offset, err := face.locateFont(src, index)
	if err != nil {
		return nil, err
	}
	if err := face.readDirectory(src, offset); err != nil {
		return nil, err
	}
	b.MakeImmutable()
	face.blob = b.Reference()
	tracer().Debugf("face %d: font type %x, %d tables", index, face.Header.FontType, len(face.tables))
	if face.ec.hasWarnings() {
		tracer().Infof("face %d: table directory has %d warnings", index, len(face.ec.allWarnings()))
	}
	return face, nil
}

// locateFont returns the offset of the table directory of font number index.
func (face *SFNTFace) locateFont(src binarySegm, index int) (uint32, error) {
	fonttype, err := src.u32(0)
	if err != nil {
		return 0, face.fail(0, "Header", "font header too short", 0)
	}
	if fonttype != sfntCollection {
		if index != 0 {
			return 0, face.fail(0, "Header", fmt.Sprintf("font index %d in single font file", index), 0)
		}
		return 0, nil
	}
	// TTC header: tag, majorVersion, minorVersion, numFonts, offsets[numFonts]
	numFonts, err := src.u32(8)
	if err != nil {
		return 0, face.fail(0, "TTCHeader", "collection header too short", 0)
	}
	if index < 0 || uint32(index) >= numFonts {
		return 0, face.fail(0, "TTCHeader", fmt.Sprintf("font index %d out of range [0…%d)", index, numFonts), 8)
	}
	offset, err := src.u32(12 + 4*index)
	if err != nil {
		return 0, face.fail(0, "TTCHeader", "collection offsets truncated", 12)
	}
	return offset, nil
}

// readDirectory reads the offset table and the table records following it.
// Records are 16 bytes each: tag, checksum, offset, length.
func (face *SFNTFace) readDirectory(src binarySegm, offset uint32) error {
	if offset > uint32(len(src)) {
		return face.fail(0, "Header", "table directory outside of font data", offset)
	}
	hdr, err := src.view(int(offset), 12)
	if err != nil {
		return face.fail(0, "Header", "offset table truncated", offset)
	}
	face.Header.FontType = u32(hdr)
	face.Header.TableCount = u16(hdr[4:])
	if !(face.Header.FontType == sfntVersionCFF ||
		face.Header.FontType == sfntVersionTrueType ||
		face.Header.FontType == sfntVersionAppleTrue) {
		return face.fail(0, "Header", fmt.Sprintf("font type not supported: %x", face.Header.FontType), offset)
	}
	size, err := checkedMulInt(16, int(face.Header.TableCount))
	if err != nil {
		return face.fail(0, "TableRecords", fmt.Sprintf("table count too large: %v", err), offset+4)
	}
	buf, err := src.view(int(offset)+12, size)
	if err != nil {
		return face.fail(0, "TableRecords", "table record entries", offset+12)
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			face.ec.addWarning(tag, "table records not sorted by tag", offset+12)
		}
		prevTag = tag
		off, length := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			face.ec.addWarning(tag, "table does not start on a four byte boundary", off)
		}
		end, err := checkedAddUint32(off, length)
		if err != nil {
			return face.fail(tag, "Size", fmt.Sprintf("size calculation overflow: %v", err), off)
		}
		if end > uint32(len(src)) {
			return face.fail(tag, "Bounds", fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, end, len(src)), off)
		}
		if _, dup := face.tables[tag]; dup {
			face.ec.addWarning(tag, "duplicate table record ignored", off)
			continue
		}
		face.tables[tag] = TableRecord{Tag: tag, Offset: off, Length: length}
	}
	return nil
}

func (face *SFNTFace) fail(tag Tag, section, issue string, offset uint32) error {
	return face.ec.addError(tag, section, issue, SeverityCritical, offset)
}

// ReferenceTable returns a sub-blob of the font blob covering the table with
// the given tag, or the empty blob if there is no such table.
func (face *SFNTFace) ReferenceTable(tag Tag) *blob.Blob {
	if face == nil || face.blob == nil {
		return blob.Empty()
	}
	rec, ok := face.tables[tag]
	if !ok {
		return blob.Empty()
	}
	return blob.CreateSubBlob(face.blob, int(rec.Offset), int(rec.Length))
}

// Table returns the directory record for tag.
func (face *SFNTFace) Table(tag Tag) (TableRecord, bool) {
	rec, ok := face.tables[tag]
	return rec, ok
}

// TableTags returns the tags of all tables of the face, in ascending order.
func (face *SFNTFace) TableTags() []Tag {
	var tags = make([]Tag, 0, len(face.tables))
	for tag := range face.tables {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Index returns the position of the face within its font file.
func (face *SFNTFace) Index() int {
	return face.index
}

// NumGlyphs returns the number of glyphs as stated in the 'maxp' table,
// or 0 if the font has no usable 'maxp' table.
func (face *SFNTFace) NumGlyphs() int {
	face.numGlyphs.once.Do(func() {
		maxp := ReferenceTable(face, TagMaxp, MaxpSanitizer)
		defer maxp.Destroy()
		if !maxp.IsEmpty() {
			face.numGlyphs.n = int(u16(maxp.Data()[4:]))
		}
	})
	return face.numGlyphs.n
}

// MaxpSanitizer checks the part of a 'maxp' table common to versions 0.5 and 1.0:
// version and numGlyphs.
var MaxpSanitizer = SanitizerFunc(func(c *SanitizeContext) bool {
	if !c.CheckStruct(0, 6) {
		return false
	}
	v := c.U32(0)
	return v == 0x00005000 || v == 0x00010000
})

// Errors returns all errors encountered while reading the table directory,
// followed by the tables rejected by a sanitizer so far.
func (face *SFNTFace) Errors() []FontError {
	return face.ec.allErrors()
}

// Warnings returns all warnings encountered while reading the table directory.
func (face *SFNTFace) Warnings() []FontWarning {
	return face.ec.allWarnings()
}

// reportRejected records that the table with the given tag failed its
// sanitizer. Each table is recorded once.
func (face *SFNTFace) reportRejected(tag Tag) {
	rec := face.tables[tag]
	if face.ec.addErrorOnce(tag, "Sanitize", "table rejected by sanitizer", SeverityMajor, rec.Offset) {
		tracer().Errorf("font table %s is broken", tag)
	}
}

// CriticalErrors returns all errors with critical severity.
func (face *SFNTFace) CriticalErrors() []FontError {
	return face.ec.criticalErrors()
}

// Destroy drops the face's reference to the font blob. Table blobs handed
// out earlier stay valid.
func (face *SFNTFace) Destroy() {
	if face == nil || face.blob == nil {
		return
	}
	face.blob.Destroy()
	face.blob = nil
}

package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/otblob/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
// Its fields follow the on-disk layout, so it decodes in one step.
type HeadTableInfo struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       uint32 // 16.16
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64 // seconds since 1904-01-01
	Modified           int64
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

const headMagicNumber = 0x5F0F3CF5

// headSanitizer checks the size and magic number of a 'head' table.
var headSanitizer = ot.SanitizerFunc(func(c *ot.SanitizeContext) bool {
	return c.CheckStruct(0, binary.Size(HeadTableInfo{})) && c.U32(12) == headMagicNumber
})

// HeadInfo decodes table 'head' of face.
// Returns (info, true) on success, or (zero, false) if table is missing/invalid.
func HeadInfo(face ot.Face) (HeadTableInfo, bool) {
	var info HeadTableInfo
	table := ot.ReferenceTable(face, ot.TagHead, headSanitizer)
	defer table.Destroy()
	if table.IsEmpty() {
		return info, false
	}
	if _, err := binary.Decode(table.Data(), binary.BigEndian, &info); err != nil {
		tracer().Errorf("decoding 'head': %v", err)
		return HeadTableInfo{}, false
	}
	return info, true
}

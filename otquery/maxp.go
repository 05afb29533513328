package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/otblob/ot"
)

// MaxPTableInfo is a typed query view over OpenType table 'maxp'.
// For version 1.0 tables, the TrueType profile is decoded if present.
type MaxPTableInfo struct {
	VersionFixed       uint32
	NumGlyphs          uint16
	HasExtendedProfile bool
	MaxPProfile
}

// MaxPProfile holds the fields of a version 1.0 'maxp' table which follow
// numGlyphs, in on-disk order.
type MaxPProfile struct {
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

const maxpHeaderSize = 6

// MaxPInfo decodes table 'maxp' of face.
// Returns (info, true) on success, or (zero, false) if table is missing/invalid.
func MaxPInfo(face ot.Face) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	table := ot.ReferenceTable(face, ot.TagMaxp, ot.MaxpSanitizer)
	defer table.Destroy()
	if table.IsEmpty() {
		return info, false
	}
	b := table.Data()
	info.VersionFixed = binary.BigEndian.Uint32(b)
	info.NumGlyphs = binary.BigEndian.Uint16(b[4:])
	if info.VersionFixed != 0x00010000 {
		return info, true
	}
	// a truncated profile is tolerated; only numGlyphs is required
	if _, err := binary.Decode(b[maxpHeaderSize:], binary.BigEndian, &info.MaxPProfile); err == nil {
		info.HasExtendedProfile = true
	}
	return info, true
}

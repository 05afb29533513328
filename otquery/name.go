package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/otblob/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDUnicodeBMP    EncodingID = 3
	EncodingIDMacRoman      EncodingID = 0
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDWindowsBMP    EncodingID = 1
)

// LanguageIDWindowsEnglishUS is the Windows language ID for US English.
const LanguageIDWindowsEnglishUS uint16 = 0x409

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table, in the order of the name records. Every record is visited,
// including records with duplicate keys.
//
// Only supported encodings are yielded (Unicode BMP, Windows BMP and Macintosh
// Roman), and records which fail to decode are skipped.
func NamesRange(face ot.Face) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		names := ot.NewNameTable(face)
		defer names.Destroy()
		for i := range names.Count() {
			rec := names.Record(i)
			value, err := decodeName(rec.NameKey, names.RecordName(i))
			if err != nil || value == "" {
				continue
			}
			if !yield(sfnt.NameID(rec.NameID), value) {
				return
			}
		}
	}
}

// RawName returns a copy of the undecoded bytes of a name record, or nil if the
// font has no such record.
func RawName(face ot.Face, platform PlatformID, encoding EncodingID, language uint16, id sfnt.NameID) []byte {
	names := ot.NewNameTable(face)
	defer names.Destroy()
	n := names.GetName(uint16(platform), uint16(encoding), language, uint16(id), nil)
	if n == 0 {
		return nil
	}
	buf := make([]byte, n)
	names.GetName(uint16(platform), uint16(encoding), language, uint16(id), buf)
	return buf
}

// Name returns the decoded name with the given ID. Windows US English
// records are preferred, then Unicode and Macintosh Roman ones.
func Name(face ot.Face, id sfnt.NameID) (string, bool) {
	names := ot.NewNameTable(face)
	defer names.Destroy()
	for _, key := range preferredNameKeys(id) {
		if raw := names.Name(key); raw != nil {
			if s, err := decodeName(key, raw); err == nil {
				return s, true
			}
		}
	}
	tracer().Debugf("font has no usable name with ID %d", id)
	return "", false
}

func preferredNameKeys(id sfnt.NameID) []ot.NameKey {
	return []ot.NameKey{
		{PlatformID: uint16(PlatformIDWindows), EncodingID: uint16(EncodingIDWindowsBMP),
			LanguageID: LanguageIDWindowsEnglishUS, NameID: uint16(id)},
		{PlatformID: uint16(PlatformIDUnicode), EncodingID: uint16(EncodingIDUnicodeBMP),
			LanguageID: 0, NameID: uint16(id)},
		{PlatformID: uint16(PlatformIDMacintosh), EncodingID: uint16(EncodingIDMacRoman),
			LanguageID: 0, NameID: uint16(id)},
	}
}

// NameInfo collects the most common names of a font, keyed by
// "family", "subfamily", "full", "version" and "postscript".
func NameInfo(face ot.Face) map[string]string {
	info := make(map[string]string)
	for key, id := range map[string]sfnt.NameID{
		"family":     sfnt.NameIDFamily,
		"subfamily":  sfnt.NameIDSubfamily,
		"full":       sfnt.NameIDFull,
		"version":    sfnt.NameIDVersion,
		"postscript": sfnt.NameIDPostScript,
	} {
		if s, ok := Name(face, id); ok {
			info[key] = s
		}
	}
	return info
}

func isSupportedNameEncoding(key ot.NameKey) bool {
	p, e := PlatformID(key.PlatformID), EncodingID(key.EncodingID)
	return (p == PlatformIDUnicode && e == EncodingIDUnicodeBMP) ||
		(p == PlatformIDWindows && e == EncodingIDWindowsBMP) ||
		(p == PlatformIDMacintosh && e == EncodingIDMacRoman)
}

func decodeName(key ot.NameKey, raw []byte) (string, error) {
	if !isSupportedNameEncoding(key) {
		return "", fmt.Errorf("unsupported name encoding %d/%d", key.PlatformID, key.EncodingID)
	}
	if PlatformID(key.PlatformID) == PlatformIDMacintosh {
		s, err := charmap.Macintosh.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %v", err)
		}
		return string(s), nil
	}
	return decodeNameUTF16(raw)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

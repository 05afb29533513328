package otquery

import (
	"testing"

	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	face *ot.SFNTFace
	ref  *sfnt.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otquery")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.otquery").SetTraceLevel(tracing.LevelError)
	b := blob.Create(goregular.TTF, blob.Readonly, nil)
	defer b.Destroy()
	face, err := ot.NewFace(b, 0)
	env.Require().NoError(err)
	env.face = face
	env.ref, err = sfnt.Parse(goregular.TTF)
	env.Require().NoError(err)
	tracing.Select("font.otquery").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
	env.face.Destroy()
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	fti := FontType(env.face)
	env.Equal("TrueType", fti, "expected font type of test font to be TrueType")
	env.Equal("unknown", FontType(nil))
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.face)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font family identifier not found in font info")
	var buf sfnt.Buffer
	want, err := env.ref.Name(&buf, sfnt.NameIDFamily)
	env.Require().NoError(err)
	env.Equal(want, fam, "expected font family name %q", want)
}

func (env *InfoTestEnviron) TestNamesRange() {
	count := 0
	seenFamily := false
	for id, value := range NamesRange(env.face) {
		env.NotEmpty(value)
		if id == sfnt.NameIDFamily {
			seenFamily = true
		}
		count++
	}
	env.True(seenFamily)
	env.Positive(count)
	for range NamesRange(env.face) {
		break // early exit must not panic
	}
}

func (env *InfoTestEnviron) TestRawName() {
	fam, ok := Name(env.face, sfnt.NameIDFamily)
	env.Require().True(ok)
	raw := RawName(env.face, PlatformIDWindows, EncodingIDWindowsBMP, LanguageIDWindowsEnglishUS, sfnt.NameIDFamily)
	if raw != nil {
		env.Equal(2*len(fam), len(raw), "expected UTF-16 code units for an ASCII name")
	}
	env.Nil(RawName(env.face, PlatformIDWindows, EncodingIDWindowsBMP, 0x0001, sfnt.NameIDFamily))
}

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.face)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(uint16(env.ref.UnitsPerEm()), h.UnitsPerEm, "expected matching UnitsPerEm")
	env.Equal(uint32(0x5F0F3CF5), h.MagicNumber, "expected OpenType head magic number")
	env.Equal(uint16(1), h.MajorVersion)
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.face)
	env.Require().True(ok, "expected to decode table 'maxp'")
	env.Equal(uint16(env.ref.NumGlyphs()), m.NumGlyphs, "expected matching numGlyphs")
	env.Equal(env.face.NumGlyphs(), int(m.NumGlyphs))
	env.NotZero(m.VersionFixed, "expected maxp version to be set")
	if m.VersionFixed == 0x00010000 {
		env.True(m.HasExtendedProfile, "TrueType font carries a maxp profile")
		env.Positive(m.MaxPoints)
	}
}

func (env *InfoTestEnviron) TestPostInfo() {
	p, ok := PostInfo(env.face)
	env.Require().True(ok, "expected to decode table 'post'")
	env.NotZero(p.Version)
	env.False(p.IsFixedPitch, "Go Regular is proportional")
	env.Zero(p.ItalicAngle)
	count := 0
	for g, name := range GlyphNames(env.face) {
		env.NotEmpty(name, "glyph %d", g)
		count++
	}
	if p.Version == ot.PostVersion2 {
		env.Equal(p.NumGlyphs, env.ref.NumGlyphs())
		env.Positive(count)
	}
}

func TestMissingTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otquery")
	defer teardown()
	//
	empty := ot.NewTableSet()
	defer empty.Destroy()
	if _, ok := HeadInfo(empty); ok {
		t.Error("expected HeadInfo to fail without 'head' table")
	}
	if _, ok := MaxPInfo(empty); ok {
		t.Error("expected MaxPInfo to fail without 'maxp' table")
	}
	if _, ok := PostInfo(empty); ok {
		t.Error("expected PostInfo to fail without 'post' table")
	}
	if len(NameInfo(empty)) != 0 {
		t.Error("expected no names without 'name' table")
	}
	for range GlyphNames(empty) {
		t.Error("expected no glyph names without 'post' table")
	}
}

func TestTruncatedMaxPProfile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otquery")
	defer teardown()
	//
	tables := ot.NewTableSet()
	defer tables.Destroy()
	maxp := blob.Create([]byte{0, 1, 0, 0, 0, 5, 0, 9}, blob.Readonly, nil)
	tables.AddTable(ot.TagMaxp, maxp)
	maxp.Destroy()
	m, ok := MaxPInfo(tables)
	if !ok {
		t.Fatal("expected MaxPInfo to accept a truncated version 1.0 table")
	}
	if m.NumGlyphs != 5 || m.HasExtendedProfile || m.MaxPoints != 0 {
		t.Errorf("unexpected maxp info %+v", m)
	}
}

func TestNamesRangeUnsortedRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otquery")
	defer teardown()
	//
	data := []byte{
		0, 0, 0, 2, 0, 30, // format 0, 2 records, strings at 30
		0, 1, 0, 0, 0, 0, 0, 4, 0, 4, 0, 0, // Mac Roman, full name, "Full"
		0, 1, 0, 0, 0, 0, 0, 1, 0, 3, 0, 4, // Mac Roman, family, "Fam"
		'F', 'u', 'l', 'l', 'F', 'a', 'm',
	}
	tables := ot.NewTableSet()
	defer tables.Destroy()
	name := blob.Create(data, blob.Readonly, nil)
	tables.AddTable(ot.TagName, name)
	name.Destroy()
	got := map[sfnt.NameID]string{}
	for id, value := range NamesRange(tables) {
		got[id] = value
	}
	if len(got) != 2 || got[sfnt.NameIDFull] != "Full" || got[sfnt.NameIDFamily] != "Fam" {
		t.Errorf("expected both records of an unsorted name table, got %v", got)
	}
}

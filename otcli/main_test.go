package main

import (
	"strconv"
	"testing"

	"github.com/npillmayer/otblob/blob"
	"github.com/npillmayer/otblob/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntp(t *testing.T) *Intp {
	intp := &Intp{table: blob.Empty()}
	require.NoError(t, intp.loadFont("", 0)) // Go Regular
	t.Cleanup(intp.close)
	return intp
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := &Intp{}
	cmd, err := intp.parseCommand("table:post print:64:hex NAMES bogus quit glyph:3")
	require.NoError(t, err)
	require.Len(t, cmd, 5, "steps after quit are dropped")
	assert.Equal(t, Op{code: TABLE, arg: "post"}, cmd[0])
	assert.Equal(t, Op{code: PRINT, arg: "64", format: "hex"}, cmd[1])
	assert.Equal(t, NAMES, cmd[2].code)
	assert.Equal(t, HELP, cmd[3].code, "unknown commands show help")
	assert.Equal(t, QUIT, cmd[4].code)
	for code, name := range opNames {
		assert.Equal(t, code, opMap[name])
	}
}

func TestExecuteTableCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := newTestIntp(t)
	err, _ := intp.execute(Command{{code: PRINT}})
	assert.ErrorIs(t, err, ERR_NO_TABLE)

	cmd, err := intp.parseCommand("tables table:post blob print:16 info")
	require.NoError(t, err)
	err, stop := intp.execute(cmd)
	require.NoError(t, err)
	assert.False(t, stop)
	assert.Equal(t, ot.TagPost, intp.tag)
	assert.Equal(t, 3, intp.font.Blob.ReferenceCount(), "font blob is pinned by font, face and table")

	err, _ = intp.execute(Command{{code: TABLE, arg: "zzzz"}})
	assert.Error(t, err)
	err, _ = intp.execute(Command{{code: PRINT, arg: "x"}})
	assert.Error(t, err)
}

func TestExecuteNameAndGlyphCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := newTestIntp(t)
	cmd, err := intp.parseCommand("names name:1 lookup:A")
	require.NoError(t, err)
	err, _ = intp.execute(cmd)
	require.NoError(t, err)
	gid, ok := intp.accelerator().GlyphFromName("A")
	require.True(t, ok)
	err, _ = intp.execute(Command{{code: GLYPH, arg: strconv.Itoa(int(gid))}})
	assert.NoError(t, err)
	err, _ = intp.execute(Command{{code: NAME, arg: "999"}})
	assert.Error(t, err)
	err, _ = intp.execute(Command{{code: LOOKUP, arg: "no-such-glyph"}})
	assert.Error(t, err)
	err, stop := intp.execute(Command{{code: QUIT}, {code: NAMES}})
	assert.NoError(t, err)
	assert.True(t, stop)
}

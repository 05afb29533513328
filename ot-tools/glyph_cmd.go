package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/npillmayer/otblob/ot"
	"github.com/thatisuday/commando"
	"golang.org/x/sync/errgroup"
)

func runGlyphsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	otf := mustLoadFont(args, flags)
	defer otf.Close()

	acc := ot.NewPostAccelerator(otf.Face)
	defer acc.Close()
	if acc.GlyphCount() == 0 {
		fatalf("font has no glyph names (post version %08x)", acc.Version())
	}

	if requested := splitCSVSpace(args["names"].Value); len(requested) > 0 {
		for _, name := range requested {
			if gid, ok := acc.GlyphFromName(name); ok {
				fmt.Printf("%s = %d\n", name, gid)
			} else {
				fmt.Printf("%s: not found\n", name)
			}
		}
		return
	}

	if mustFlagBool(flags["verify"], "verify") {
		workers := mustFlagInt(flags["workers"], "workers")
		checked, err := verifyGlyphNames(context.Background(), acc, workers)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("verified %d glyph names\n", checked)
		return
	}

	var name [256]byte // pool strings are at most 255 bytes
	for g := range acc.GlyphCount() {
		if !acc.GetGlyphName(ot.GlyphIndex(g), name[:]) {
			continue
		}
		n := bytes.IndexByte(name[:], 0)
		fmt.Printf("%5d %s\n", g, name[:n])
	}
}

// verifyGlyphNames checks concurrently that every named glyph is found again
// by name. Fonts may carry duplicate names, in which case a name must map to
// a glyph carrying that same name.
func verifyGlyphNames(ctx context.Context, acc *ot.PostAccelerator, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}
	count := acc.GlyphCount()
	var checked atomic.Int64
	group, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		group.Go(func() error {
			for g := w; g < count; g += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				name := acc.GlyphName(ot.GlyphIndex(g))
				if len(name) == 0 {
					continue
				}
				found, ok := acc.GetGlyphFromName(name, len(name))
				if !ok {
					return fmt.Errorf("glyph %d: name %q not found", g, name)
				}
				if !bytes.Equal(acc.GlyphName(found), name) {
					return fmt.Errorf("glyph %d: name %q maps to glyph %d", g, name, found)
				}
				checked.Add(1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return int(checked.Load()), err
	}
	return int(checked.Load()), nil
}

func runSubsetPostCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	otf := mustLoadFont(args, flags)
	defer otf.Close()

	tables := ot.NewTableSet()
	defer tables.Destroy()
	if !ot.SubsetPost(otf.Face, tables) {
		fatalf("font has no usable 'post' table")
	}
	post := tables.ReferenceTable(ot.TagPost)
	defer post.Destroy()
	out := mustFlagString(flags["output"], "output")
	if err := os.WriteFile(out, post.Data(), 0o644); err != nil {
		fatalf("cannot write %s: %v", out, err)
	}
	fmt.Printf("wrote 'post' table %s to %s\n", post, out)
}

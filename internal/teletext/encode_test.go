package teletext

import (
	"testing"

	"github.com/voxelmon/server/internal/texture"
)

// fakeFB is a minimal Source for tests that don't need a real renderer.
type fakeFB struct {
	w, h   int
	pixels []texture.Colour
}

func newFakeFB(w, h int, fill texture.Colour) *fakeFB {
	px := make([]texture.Colour, w*h)
	for i := range px {
		px[i] = fill
	}
	return &fakeFB{w: w, h: h, pixels: px}
}

func (f *fakeFB) At(x, y int) texture.Colour {
	return f.pixels[y*f.w+x]
}

func (f *fakeFB) set(x, y int, c texture.Colour) {
	f.pixels[y*f.w+x] = c
}

func TestEncodeSize(t *testing.T) {
	fb := newFakeFB(MonWidth*2, MonHeight*3, texture.Sky)
	out := Encode(fb)
	if len(out) != FrameSize {
		t.Errorf("len(Encode()) = %d, want %d", len(out), FrameSize)
	}
}

func TestEncodeSolidColourInvariance(t *testing.T) {
	fb := newFakeFB(MonWidth*2, MonHeight*3, 7)
	out := Encode(fb)

	glyphBand := out[:MonWidth]
	fgBand := out[MonWidth : 2*MonWidth]
	bgBand := out[2*MonWidth : 3*MonWidth]
	for i := 0; i < MonWidth; i++ {
		if glyphBand[i] != glyphSpace {
			t.Fatalf("glyph[%d] = %#x, want space", i, glyphBand[i])
		}
		if fgBand[i] != '0' {
			t.Fatalf("fg[%d] = %q, want '0'", i, fgBand[i])
		}
		if bgBand[i] != texture.Colour(7).Hex() {
			t.Fatalf("bg[%d] = %q, want %q", i, bgBand[i], texture.Colour(7).Hex())
		}
	}
}

func TestEncodeEmptyWorldIsAllSky(t *testing.T) {
	fb := newFakeFB(MonWidth*2, MonHeight*3, texture.Sky)
	out := Encode(fb)
	for i := 0; i < MonWidth; i++ {
		if out[i] != glyphSpace {
			t.Fatalf("glyph[%d] not space", i)
		}
		if out[MonWidth+i] != '0' {
			t.Fatalf("fg[%d] not '0'", i)
		}
		if out[2*MonWidth+i] != '9' {
			t.Fatalf("bg[%d] not '9'", i)
		}
	}
}

func TestEncodeTileTwoColourPreservation(t *testing.T) {
	fb := newFakeFB(2, 3, 0)
	// Four cells colour A (majority, bg), two cells colour B (fg).
	fb.set(0, 0, 1)
	fb.set(1, 0, 1)
	fb.set(0, 1, 1)
	fb.set(1, 1, 1)
	fb.set(0, 2, 2)
	fb.set(1, 2, 2) // bottom-right reference corner

	glyph, fg, bg := encodeTile(fb, 0, 0)

	// The bottom-right corner holds the minority colour 2, so last == fg and
	// the emitted pair is swapped: fg=1 (majority), bg=2 (minority).
	if fg != 1 || bg != 2 {
		t.Fatalf("fg=%v bg=%v, want fg=1 bg=2 (swapped because last is the minority colour)", fg, bg)
	}
	if glyph == glyphSpace {
		t.Fatal("expected a pattern glyph, got space for a two-colour tile")
	}
	if glyph < glyphBase || glyph > glyphBase+0x3f {
		t.Fatalf("glyph %#x out of [0x80, 0xBF]", glyph)
	}

	// Decode back: bit set means "differs from last". last is whichever of
	// {bg,fg} equals the bottom-right pixel (colour 2 == fg here), so
	// last=fg=2, and the emitted pair gets swapped to (bg, fg) since
	// last != bg triggers the swap in the implementation... verify by
	// reconstructing each non-corner cell from the bit pattern.
	var last texture.Colour
	if bg == fg {
		t.Fatal("bg and fg must differ in a two-colour tile")
	}
	// last is whichever of bg/fg the emitted colours imply: if the
	// function swapped, the returned (fg,bg) pair's second element
	// corresponds to `last`'s complement. Simplify: decode using both
	// candidates and pick the one consistent with the known corner.
	for _, candidate := range []texture.Colour{bg, fg} {
		ok := true
		for dy := 0; dy < 3; dy++ {
			for dx := 0; dx < 2; dx++ {
				if dx == 1 && dy == 2 {
					continue
				}
				bit := (glyph - glyphBase) & (1 << uint(2*dy+dx))
				want := fb.At(dx, dy)
				var got texture.Colour
				if bit != 0 {
					if candidate == bg {
						got = fg
					} else {
						got = bg
					}
				} else {
					got = candidate
				}
				if got != want {
					ok = false
				}
			}
		}
		if ok {
			last = candidate
		}
	}
	if last != 1 && last != 2 {
		t.Fatal("could not reconstruct tile from glyph pattern")
	}
}

func TestRankTop2DescendingCountLowerIndexTieBreak(t *testing.T) {
	var counts [16]int
	counts[3] = 5 // red, most frequent
	counts[2] = 2 // green
	counts[1] = 1 // blue, least frequent, dropped

	bg, fg := rankTop2(counts)
	if bg != 3 || fg != 2 {
		t.Errorf("rankTop2 = (bg=%v, fg=%v), want (3, 2)", bg, fg)
	}
}

func TestRankTop2TieBreaksOnLowerIndex(t *testing.T) {
	var counts [16]int
	counts[5] = 3
	counts[1] = 3
	counts[9] = 3

	bg, fg := rankTop2(counts)
	if bg != 1 || fg != 5 {
		t.Errorf("rankTop2 tie-break = (bg=%v, fg=%v), want (1, 5)", bg, fg)
	}
}

func TestRankTop2SwapOnCountChange(t *testing.T) {
	// Scenario F: swapping red<->green counts swaps bg/fg.
	var counts [16]int
	counts[3] = 2 // red
	counts[2] = 3 // green now more frequent

	bg, fg := rankTop2(counts)
	if bg != 2 || fg != 3 {
		t.Errorf("rankTop2 after swap = (bg=%v, fg=%v), want (2, 3)", bg, fg)
	}
}

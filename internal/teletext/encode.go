// Package teletext implements the lossy 2x3-pixel-to-one-glyph encoder
// (C5, §4.5): it turns a rendered framebuffer into the compact byte stream
// a blocky teletext-style monitor decodes with simple substring
// extractions.
package teletext

import (
	"sort"

	"github.com/voxelmon/server/internal/texture"
)

// Source is anything pixel-addressable the encoder can read a frame from.
// internal/render.Framebuffer satisfies this directly; tests build small
// fakes against it instead of depending on the renderer.
type Source interface {
	At(x, y int) texture.Colour
}

// Monitor dimensions (§3): the glyph grid is one cell per 2x3 pixel tile.
const (
	MonWidth  = 162
	MonHeight = 79

	// FrameSize is the total encoded-frame length: MonWidth*MonHeight
	// bytes for each of the glyph, fg, and bg bands.
	FrameSize = MonWidth * MonHeight * 3

	glyphSpace byte = 0x20
	glyphBase  byte = 0x80
)

const hexDigits = "0123456789abcdef"

// Encode compresses fb into the monitor's byte layout: MonHeight tile-rows,
// each MonWidth glyph bytes, then MonWidth foreground hex digits, then
// MonWidth background hex digits.
func Encode(fb Source) []byte {
	out := make([]byte, FrameSize)
	bandSize := MonWidth

	for my := 0; my < MonHeight; my++ {
		rowBase := my * bandSize * 3
		glyphBand := out[rowBase : rowBase+bandSize]
		fgBand := out[rowBase+bandSize : rowBase+2*bandSize]
		bgBand := out[rowBase+2*bandSize : rowBase+3*bandSize]

		for mx := 0; mx < MonWidth; mx++ {
			glyph, fg, bg := encodeTile(fb, mx, my)
			glyphBand[mx] = glyph
			fgBand[mx] = hexDigits[fg&0x0f]
			bgBand[mx] = hexDigits[bg&0x0f]
		}
	}
	return out
}

// encodeTile computes the (glyph, fg, bg) triple for the 2x3 pixel block
// whose top-left corner is (2*mx, 3*my), per §4.5.
func encodeTile(fb Source, mx, my int) (glyph byte, fg, bg texture.Colour) {
	var p [2][3]texture.Colour
	var counts [16]int
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 2; dx++ {
			c := fb.At(2*mx+dx, 3*my+dy)
			p[dx][dy] = c
			counts[c]++
		}
	}

	distinct := 0
	for _, n := range counts {
		if n > 0 {
			distinct++
		}
	}

	if distinct <= 1 {
		return glyphSpace, 0, p[0][0]
	}

	bg, fg = rankTop2(counts)

	last := bg
	if p[1][2] == fg {
		last = fg
	}

	code := glyphBase
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 2; dx++ {
			if dx == 1 && dy == 2 {
				continue // the reference corner itself is excluded from the pattern
			}
			if p[dx][dy] != last {
				code |= 1 << uint(2*dy+dx)
			}
		}
	}

	if last == bg {
		return code, fg, bg
	}
	return code, bg, fg
}

// rankTop2 returns the two most frequent palette indices, ranked by
// descending count with ties broken toward the lower index, per §4.5's
// stable-sort rule.
func rankTop2(counts [16]int) (bg, fg texture.Colour) {
	idx := make([]int, 0, 16)
	for i, n := range counts {
		if n > 0 {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(i, j int) bool {
		if counts[idx[i]] != counts[idx[j]] {
			return counts[idx[i]] > counts[idx[j]]
		}
		return idx[i] < idx[j]
	})
	return texture.Colour(idx[0]), texture.Colour(idx[1])
}

// Package render constructs one camera ray per pixel, traces it against a
// voxel world, and writes the resulting palette colour into a framebuffer —
// in parallel across row ranges (C4, §4.4-§5).
//
// Framebuffer is grounded on the teacher's internal/engine/framebuffer
// package: the same New/Size-shaped API (there is no Clear; every frame
// overwrites every pixel), rewritten from an offscreen
// OpenGL render target (FBO + colour texture + depth renderbuffer, read
// back with gl.ReadPixels) to a single in-process slice the row workers
// write into directly — there is no GPU and no readback in this pipeline.
package render

import "github.com/voxelmon/server/internal/texture"

// BufWidth and BufHeight are the fixed framebuffer dimensions (§3):
// 2x and 3x the monitor's glyph grid, minus its border, so each 2x3 pixel
// tile maps to one teletext cell.
const (
	BufWidth  = 324
	BufHeight = 237
)

// Framebuffer is a fixed-size, row-major grid of palette colours. Allocated
// once per session and reused across frames — the teacher's framebuffer
// amortises GPU resource allocation the same way; here it amortises the
// Go slice allocation instead.
type Framebuffer struct {
	pixels [BufWidth * BufHeight]texture.Colour
}

// NewFramebuffer allocates a zeroed framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return BufWidth, BufHeight
}

// At returns the colour at (x, y).
func (fb *Framebuffer) At(x, y int) texture.Colour {
	return fb.pixels[y*BufWidth+x]
}

// Set writes the colour at (x, y). Called only by the row worker that owns
// y for the current frame — rows are disjoint, so no synchronization is
// needed between workers.
func (fb *Framebuffer) Set(x, y int, c texture.Colour) {
	fb.pixels[y*BufWidth+x] = c
}

// Row returns the mutable slice of colours for row y, letting a worker
// write its whole row without repeated index arithmetic.
func (fb *Framebuffer) Row(y int) []texture.Colour {
	return fb.pixels[y*BufWidth : (y+1)*BufWidth]
}

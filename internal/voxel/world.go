package voxel

import "fmt"

// World is an immutable 3D grid of blocks, built once when a session
// uploads its world and read concurrently by every ray trace for the
// lifetime of the session.
//
// Linearization: index = x + y*W + z*W*H (X varies fastest, then Y, then Z).
type World struct {
	W, H, D int
	blocks  []Block
}

// New allocates a World with every cell set to Air. W, H, D must all be
// positive; callers (the transport's upload handler) are expected to reject
// empty worlds before calling New, per the protocol-error rule in §7.
func New(w, h, d int) (*World, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("voxel: non-positive world dimensions %dx%dx%d", w, h, d)
	}
	return &World{
		W: w, H: h, D: d,
		blocks: make([]Block, w*h*d),
	}, nil
}

func (w *World) index(x, y, z int) int {
	return x + y*w.W + z*w.W*w.H
}

func (w *World) inBounds(x, y, z int) bool {
	return x >= 0 && x < w.W && y >= 0 && y < w.H && z >= 0 && z < w.D
}

// At returns the block at (x, y, z). Out-of-bounds coordinates are a
// programmer error: the ray tracer must guarantee in-bounds coordinates
// before calling, so this panics rather than returning a zero value that
// would silently masquerade as Air.
func (w *World) At(x, y, z int) Block {
	if !w.inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: At(%d,%d,%d) out of bounds for %dx%dx%d world", x, y, z, w.W, w.H, w.D))
	}
	return w.blocks[w.index(x, y, z)]
}

// Set assigns the block at (x, y, z). Used only during world construction
// from an upload; the World is treated as immutable once the session starts
// rendering frames.
func (w *World) Set(x, y, z int, b Block) {
	if !w.inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: Set(%d,%d,%d) out of bounds for %dx%dx%d world", x, y, z, w.W, w.H, w.D))
	}
	w.blocks[w.index(x, y, z)] = b
}

// InBounds reports whether (x, y, z) lies inside the grid. The ray tracer
// calls this on every stepped voxel before calling At, so At itself never
// has to fail softly.
func (w *World) InBounds(x, y, z int) bool {
	return w.inBounds(x, y, z)
}

package render

import vmath "github.com/voxelmon/server/pkg/math"

// Camera holds the fixed world-space anchor supplied once with a world
// upload (Offset) and the per-frame camera position streamed by the
// client (Position). Grounded on the teacher's
// internal/engine/camera.OrbitCamera: the same small-struct-plus-
// constructor shape, rewritten from spherical orbit coordinates to the
// fixed per-pixel offset/position projection in §4.4.
type Camera struct {
	Offset   vmath.Vec3
	Position vmath.Vec3
}

// NewCamera creates a camera anchored at offset, with the camera position
// initially coincident with the anchor until the first camera message
// arrives.
func NewCamera(offset vmath.Vec3) *Camera {
	return &Camera{Offset: offset, Position: offset}
}

// PixelRay builds the camera ray for framebuffer pixel (x, y), per §4.4's
// fixed orthographic-ish projection.
func (c *Camera) PixelRay(x, y int) (start, dir vmath.Vec3) {
	ox := (1 - float64(x)/float64(BufWidth)) * 8
	oy := (1 - float64(y)/float64(BufHeight)) * 6

	start = vmath.Vec3{
		X: ox + c.Offset.X,
		Y: oy + c.Offset.Y,
		Z: c.Offset.Z,
	}
	dir = vmath.Vec3{
		X: ox - c.Position.X,
		Y: oy - c.Position.Y,
		Z: -c.Position.Z,
	}
	return start, dir
}

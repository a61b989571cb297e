// Package math provides the small set of vector types the raycaster and
// camera pass between each other. Adapted from the teacher's general-purpose
// game-math package: that one carried a full algebra (Add/Sub/Scale/Dot/
// Cross/Normalize/Distance) for a scene graph with orbit cameras and mesh
// transforms. Nothing downstream of the DDA tracer needs vector algebra —
// §4.3 unpacks a ray's start/direction into per-axis float64s and steps the
// grid one axis at a time — so only construction and the per-axis view the
// tracer actually uses survive here.
package math

// Vec3 is a 3D point or direction in world-grid units. float64 throughout:
// the renderer works in world units, not pixels, and DDA accumulates
// sideDist over many steps per ray, where float32 drift would show up as
// visible seams between rows.
type Vec3 struct {
	X, Y, Z float64
}

// Array returns v's components as [X, Y, Z], the shape internal/raycast's
// DDA loop walks over one axis at a time.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

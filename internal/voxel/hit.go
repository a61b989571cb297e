package voxel

import "github.com/voxelmon/server/pkg/math"

// FaceAxis identifies which of the three cube-face pairs a ray crossed when
// entering a voxel.
type FaceAxis uint8

const (
	AxisX FaceAxis = iota
	AxisY
	AxisZ
)

// Hit is the result of a successful ray trace: the block that was struck,
// which face axis the ray entered through, and the UV offset within that
// face. Block is never Air — the tracer never returns a hit against Air.
type Hit struct {
	Block  Block
	Axis   FaceAxis
	Offset math.Vec2
}

// Package raycast implements the voxel DDA ray tracer (§4.3): given a ray
// origin and direction, it walks the world grid and returns the first
// solid block struck, which face was entered, and the UV offset on that
// face.
//
// Grounded on the teacher's internal/engine/picking ray/AABB package: same
// origin/direction inputs and the same per-axis slab-test style, generalized here from a
// single bounding-box intersection test to incremental per-cell stepping.
package raycast

import (
	"math"

	"go.uber.org/zap"

	"github.com/voxelmon/server/internal/logger"
	"github.com/voxelmon/server/internal/voxel"
	vmath "github.com/voxelmon/server/pkg/math"
)

// bigDelta is the sentinel deltaDist assigned to an axis whose direction
// component is zero, so that axis's sideDist never wins the min comparison
// and the axis is effectively frozen for the whole trace.
const bigDelta = 1e30

// Trace walks world from start along dir and returns the first non-Air
// block struck, or ok=false if the ray exits the world without hitting
// anything. start and dir are both in world-grid units; dir need not be
// normalized.
func Trace(world *voxel.World, start, dir vmath.Vec3) (hit voxel.Hit, ok bool) {
	s := start.Array()
	d := dir.Array()
	sizes := [3]int{world.W, world.H, world.D}

	var step [3]int
	var deltaDist [3]float64
	var mapCoord [3]int
	var sideDist [3]float64

	for i := 0; i < 3; i++ {
		switch {
		case d[i] > 0:
			step[i] = 1
		case d[i] < 0:
			step[i] = -1
		default:
			step[i] = 0
		}

		if d[i] == 0 {
			deltaDist[i] = bigDelta
		} else {
			deltaDist[i] = 1 / math.Abs(d[i])
		}

		floorS := math.Floor(s[i])
		mapCoord[i] = int(floorS)
		frac := s[i] - floorS
		switch {
		case d[i] > 0:
			sideDist[i] = deltaDist[i] * (1 - frac)
		case d[i] < 0:
			sideDist[i] = deltaDist[i] * frac
		default:
			sideDist[i] = bigDelta
		}
	}

	// A ray cannot usefully need more steps than the grid's own extent on
	// each axis; this bound exists only to guard the degenerate
	// all-zero-direction ray (possible when a camera sits exactly on a
	// pixel's projected ray) from looping forever, per the step-count
	// invariant in §8.7.
	maxSteps := sizes[0] + sizes[1] + sizes[2] + 4

	for i := 0; i < maxSteps; i++ {
		axis := nextAxis(sideDist)
		mapCoord[axis] += step[axis]
		sideDist[axis] += deltaDist[axis]

		if step[axis] > 0 && mapCoord[axis] >= sizes[axis] {
			return voxel.Hit{}, false
		}
		if step[axis] < 0 && mapCoord[axis] < 0 {
			return voxel.Hit{}, false
		}

		if !world.InBounds(mapCoord[0], mapCoord[1], mapCoord[2]) {
			continue
		}

		block := world.At(mapCoord[0], mapCoord[1], mapCoord[2])
		if block == voxel.Air {
			continue
		}

		return faceHit(s, d, mapCoord, step, voxel.FaceAxis(axis), block), true
	}
	return voxel.Hit{}, false
}

// nextAxis picks the axis with the smallest sideDist, using the explicit
// deterministic tie-break cascade from §4.3: compare X vs Y first, then the
// winner against Z. Every comparison is strict, so ties go to the later
// axis: Y wins an X/Y tie, and Z wins any tie against Z.
func nextAxis(sideDist [3]float64) int {
	if sideDist[0] < sideDist[1] {
		if sideDist[0] < sideDist[2] {
			return 0
		}
		return 2
	}
	if sideDist[1] < sideDist[2] {
		return 1
	}
	return 2
}

// faceHit computes the UV offset on the face normal to the just-stepped
// axis, per §4.3's plane/t derivation, and logs (without clamping) any
// offset that falls outside [0, 1].
func faceHit(s, d [3]float64, mapCoord [3]int, step [3]int, axis voxel.FaceAxis, block voxel.Block) voxel.Hit {
	ai := int(axis)
	var plane float64
	if step[ai] < 0 {
		plane = float64(mapCoord[ai] + 1)
	} else {
		plane = float64(mapCoord[ai])
	}
	t := (plane - s[ai]) / d[ai]

	hitX := s[0] + d[0]*t
	hitY := s[1] + d[1]*t
	hitZ := s[2] + d[2]*t

	var u, v float64
	switch axis {
	case voxel.AxisX:
		u = hitZ - float64(mapCoord[2])
		v = 1 - (hitY - float64(mapCoord[1]))
	case voxel.AxisY:
		u = hitX - float64(mapCoord[0])
		v = hitZ - float64(mapCoord[2])
	case voxel.AxisZ:
		u = hitX - float64(mapCoord[0])
		v = 1 - (hitY - float64(mapCoord[1]))
	}

	offset := vmath.Vec2{X: u, Y: v}
	if !offset.InUnitSquare() {
		logger.Warn("raycast: face offset out of [0,1]",
			zap.Float64s("start", s[:]),
			zap.Float64s("direction", d[:]),
			zap.Ints("map", mapCoord[:]),
			zap.Float64("t", t),
			zap.Int("side", ai),
			zap.Float64("u", u),
			zap.Float64("v", v),
		)
	}

	return voxel.Hit{
		Block:  block,
		Axis:   axis,
		Offset: offset,
	}
}

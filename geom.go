// Package intersect provides 2D static and swept collision detection for
// axis-aligned bounding boxes (AABBs) against points, segments and other
// boxes.
//
// Every test follows the same contract: it returns either a fully populated
// *Hit describing the contact, or nil when the shapes do not collide. There
// are no error returns. The swept test reduces a moving-box query to a
// segment query against a box inflated by the mover's half-extents
// (Minkowski sum reduction), so a fast mover cannot tunnel through a static
// collider in a single step.
//
// The library resolves one moving box against a static world per frame; it
// is not a physics engine. Broad-phase culling, motion integration and
// multi-body resolution are left to the caller.
//
// References:
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 5.3 - slab test
//   - Gomez: "Simple Intersection Tests for Games" (1999) - swept AABB
package intersect

import "github.com/go-gl/mathgl/mgl64"

// Normalize rescales v to unit length and returns it along with the
// pre-normalization length. A zero vector has no direction; it is returned
// unchanged with length 0.
func Normalize(v mgl64.Vec2) (mgl64.Vec2, float64) {
	length := v.Len()
	if length == 0 {
		return v, 0
	}

	return v.Mul(1 / length), length
}

// sign maps negative values to -1 and everything else, zero included, to
// +1. Normals and separation deltas on exactly-aligned centers depend on
// sign(0) = +1; a three-way sign would leave them pointing nowhere.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}

package intersect

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box defined by its center position and
// its per-axis half-extents.
type AABB struct {
	Pos  mgl64.Vec2
	Half mgl64.Vec2
}

// NewAABB creates a box from a center position and half-extents.
func NewAABB(pos, half mgl64.Vec2) *AABB {
	return &AABB{Pos: pos, Half: half}
}

// Min returns the lower-left corner of the box.
func (a *AABB) Min() mgl64.Vec2 {
	return a.Pos.Sub(a.Half)
}

// Max returns the upper-right corner of the box.
func (a *AABB) Max() mgl64.Vec2 {
	return a.Pos.Add(a.Half)
}

// IntersectPoint checks if a point lies strictly inside the box. A point
// exactly on an edge does not collide. The hit reports the axis of least
// penetration: adding Delta to the point moves it onto the nearest edge of
// the box.
func (a *AABB) IntersectPoint(point mgl64.Vec2) *Hit {
	dx := point.X() - a.Pos.X()
	px := a.Half.X() - math.Abs(dx)
	if px <= 0 {
		return nil
	}

	dy := point.Y() - a.Pos.Y()
	py := a.Half.Y() - math.Abs(dy)
	if py <= 0 {
		return nil
	}

	hit := &Hit{Collider: a}
	if px < py {
		sx := sign(dx)
		hit.Delta = mgl64.Vec2{px * sx, 0}
		hit.Normal = mgl64.Vec2{sx, 0}
		hit.Pos = mgl64.Vec2{a.Pos.X() + a.Half.X()*sx, point.Y()}
	} else {
		sy := sign(dy)
		hit.Delta = mgl64.Vec2{0, py * sy}
		hit.Normal = mgl64.Vec2{0, sy}
		hit.Pos = mgl64.Vec2{point.X(), a.Pos.Y() + a.Half.Y()*sy}
	}

	return hit
}

// IntersectSegment performs a slab test of the segment pos + t*delta,
// t in [0, 1], against the box inflated by (paddingX, paddingY).
//
// Algorithm overview:
//  1. Per axis, take the reciprocal 1/delta of the segment direction. A
//     zero component yields a signed infinity (IEEE-754), which turns the
//     degenerate axis into an unbounded slab instead of a fault. This is
//     why the crossing times multiply by a reciprocal rather than divide
//     per edge.
//  2. Compute the times at which the segment crosses the near and far edge
//     of the inflated box on each axis.
//  3. The segment hits the box iff the two per-axis time intervals overlap
//     somewhere below t = 1.
//
// Only the entry contact is reported. A segment that starts inside the box
// returns a hit with Time 0 at the start position; the exit point is not
// reported separately.
func (a *AABB) IntersectSegment(pos, delta mgl64.Vec2, paddingX, paddingY float64) *Hit {
	scaleX := 1 / delta.X()
	scaleY := 1 / delta.Y()
	signX := sign(scaleX)
	signY := sign(scaleY)
	nearTimeX := (a.Pos.X() - signX*(a.Half.X()+paddingX) - pos.X()) * scaleX
	nearTimeY := (a.Pos.Y() - signY*(a.Half.Y()+paddingY) - pos.Y()) * scaleY
	farTimeX := (a.Pos.X() + signX*(a.Half.X()+paddingX) - pos.X()) * scaleX
	farTimeY := (a.Pos.Y() + signY*(a.Half.Y()+paddingY) - pos.Y()) * scaleY

	// The axis intervals must overlap in time for the segment to cross
	// both slabs at once.
	if nearTimeX > farTimeY || nearTimeY > farTimeX {
		return nil
	}

	nearTime := math.Max(nearTimeX, nearTimeY)
	farTime := math.Min(farTimeX, farTimeY)

	// Contact beyond the end of the segment, or box entirely behind its
	// start.
	if nearTime >= 1 || (nearTime < 0 && farTime < 0) {
		return nil
	}

	hit := &Hit{Collider: a}
	if nearTime >= 0 {
		// The segment starts outside and enters the box.
		hit.Time = nearTime
	} else {
		// The segment starts inside the box.
		hit.Time = 0
	}

	if nearTimeX > nearTimeY {
		hit.Normal = mgl64.Vec2{-signX, 0}
	} else {
		hit.Normal = mgl64.Vec2{0, -signY}
	}
	hit.Delta = delta.Mul(hit.Time)
	hit.Pos = pos.Add(hit.Delta)

	return hit
}

// IntersectAABB checks if two boxes overlap, reporting the axis of least
// penetration. Delta is the minimum translation pushing box out of a. The
// result is only sound for boxes that already overlap: a box that moved
// through another in a single step needs SweepAABB instead.
func (a *AABB) IntersectAABB(box *AABB) *Hit {
	dx := box.Pos.X() - a.Pos.X()
	px := (box.Half.X() + a.Half.X()) - math.Abs(dx)
	if px <= 0 {
		return nil
	}

	dy := box.Pos.Y() - a.Pos.Y()
	py := (box.Half.Y() + a.Half.Y()) - math.Abs(dy)
	if py <= 0 {
		return nil
	}

	hit := &Hit{Collider: a}
	if px < py {
		sx := sign(dx)
		hit.Delta = mgl64.Vec2{px * sx, 0}
		hit.Normal = mgl64.Vec2{sx, 0}
		hit.Pos = mgl64.Vec2{a.Pos.X() + a.Half.X()*sx, box.Pos.Y()}
	} else {
		sy := sign(dy)
		hit.Delta = mgl64.Vec2{0, py * sy}
		hit.Normal = mgl64.Vec2{0, sy}
		hit.Pos = mgl64.Vec2{box.Pos.X(), a.Pos.Y() + a.Half.Y()*sy}
	}

	return hit
}

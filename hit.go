package intersect

import "github.com/go-gl/mathgl/mgl64"

// Hit describes a single contact produced by an intersection test.
type Hit struct {
	// Collider is the box that was hit.
	Collider *AABB
	// Pos is the world-space point of contact.
	Pos mgl64.Vec2
	// Normal is the unit normal of the surface of contact. It is always
	// axis-aligned: one component is +/-1 and the other is 0.
	Normal mgl64.Vec2
	// Delta is the minimum translation separating the shapes along the
	// axis of least penetration. For segment and sweep derived hits it is
	// the portion of the delta travelled before contact instead.
	Delta mgl64.Vec2
	// Time is the fraction along the tested line at which contact occurs,
	// in [0, 1]. Only hits produced by IntersectSegment and SweepAABB set
	// it; pure overlap tests leave it 0.
	Time float64
}

// Sweep is the result of a moving-vs-static test. It is always populated:
// when nothing is hit, Hit is nil, Pos is the unobstructed destination and
// Time is 1.
type Sweep struct {
	// Hit is the first contact along the path, nil when there is none.
	Hit *Hit
	// Pos is the furthest center position the moving box reaches before
	// contact, or its destination when the path is clear.
	Pos mgl64.Vec2
	// Time is the fraction of the delta travelled before contact, 1 when
	// the path is clear.
	Time float64
}

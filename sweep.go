package intersect

import "github.com/go-gl/mathgl/mgl64"

// SweepAABB tests a box moving along delta against this static box using
// the Minkowski sum reduction: this box is inflated by the mover's
// half-extents, and the mover collapses to the segment travelled by its
// center.
//
// On contact, Sweep.Pos is the center of the moving box at the time of
// contact, and Hit.Pos is that center pushed back onto the contact surface
// along the normal by the mover's half-extent on the normal's axis. The
// push-back uses the normal axis only, which is a known approximation for
// deltas that are not axis-aligned.
func (a *AABB) SweepAABB(box *AABB, delta mgl64.Vec2) Sweep {
	var sweep Sweep

	// A zero-length segment has no direction to test against the slabs,
	// so fall back to the static overlap test.
	if delta.X() == 0 && delta.Y() == 0 {
		sweep.Pos = box.Pos
		sweep.Hit = a.IntersectAABB(box)
		if sweep.Hit != nil {
			sweep.Hit.Time = 0
			sweep.Time = 0
		} else {
			sweep.Time = 1
		}

		return sweep
	}

	sweep.Hit = a.IntersectSegment(box.Pos, delta, box.Half.X(), box.Half.Y())
	if sweep.Hit == nil {
		sweep.Pos = box.Pos.Add(delta)
		sweep.Time = 1

		return sweep
	}

	// The segment test tracked the mover's center. Report that center as
	// the sweep position, then move the hit point from the center onto
	// the contact surface.
	sweep.Time = sweep.Hit.Time
	sweep.Pos = sweep.Hit.Pos
	sweep.Hit.Pos = sweep.Hit.Pos.Sub(mgl64.Vec2{
		sweep.Hit.Normal.X() * box.Half.X(),
		sweep.Hit.Normal.Y() * box.Half.Y(),
	})

	return sweep
}

// SweepInto sweeps this box along delta against every collider and returns
// the sweep with the earliest contact. When nothing is hit the box travels
// the full delta.
func (a *AABB) SweepInto(staticColliders []*AABB, delta mgl64.Vec2) Sweep {
	nearest := Sweep{
		Time: 1,
		Pos:  a.Pos.Add(delta),
	}

	for _, collider := range staticColliders {
		sweep := collider.SweepAABB(a, delta)
		if sweep.Time < nearest.Time {
			nearest = sweep
		}
	}

	return nearest
}

package main

import (
	"fmt"

	"github.com/akmonengine/intersect"
	"github.com/go-gl/mathgl/mgl64"
)

// Player is a moving box resolved against the static world each frame.
type Player struct {
	Box      *intersect.AABB
	Velocity mgl64.Vec2
}

// SetupScene creates a small level: a floor, two walls and a ledge.
func SetupScene() (*Player, []*intersect.AABB) {
	player := &Player{
		Box:      intersect.NewAABB(mgl64.Vec2{0, 10}, mgl64.Vec2{0.5, 0.5}),
		Velocity: mgl64.Vec2{4, 0},
	}

	world := []*intersect.AABB{
		intersect.NewAABB(mgl64.Vec2{0, -1}, mgl64.Vec2{20, 1}),  // floor
		intersect.NewAABB(mgl64.Vec2{8, 5}, mgl64.Vec2{1, 5}),    // right wall
		intersect.NewAABB(mgl64.Vec2{-8, 5}, mgl64.Vec2{1, 5}),   // left wall
		intersect.NewAABB(mgl64.Vec2{4, 3}, mgl64.Vec2{2, 0.25}), // ledge
	}

	return player, world
}

func main() {
	fmt.Println("Swept AABB platformer demo")
	fmt.Println("==========================")

	player, world := SetupScene()

	const dt = 1.0 / 60.0
	const gravity = -20.0
	const maxSteps = 240

	for step := 0; step < maxSteps; step++ {
		player.Velocity[1] += gravity * dt
		delta := player.Velocity.Mul(dt)

		sweep := player.Box.SweepInto(world, delta)
		player.Box.Pos = sweep.Pos

		if sweep.Hit != nil {
			fmt.Printf("step %3d: contact at %v, normal %v, time %.3f\n",
				step, sweep.Hit.Pos, sweep.Hit.Normal, sweep.Time)

			// Slide: cancel the velocity component along the contact
			// normal and bounce off walls
			if sweep.Hit.Normal.X() != 0 {
				player.Velocity[0] = -player.Velocity[0] * 0.5
			}
			if sweep.Hit.Normal.Y() != 0 {
				player.Velocity[1] = 0
			}
		}

		if step%60 == 0 {
			fmt.Printf("step %3d: pos %v, velocity %v\n", step, player.Box.Pos, player.Velocity)
		}
	}

	fmt.Printf("final position: %v\n", player.Box.Pos)
}

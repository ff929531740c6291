// Package object holds the entity models that live in the world:
// the player ship, enemies, bullets and particles.
package object

import (
	"math"

	"github.com/tomz197/rocket/internal/geometry"
)

// Collision radii.
const (
	PlayerRadius = 6.0
	EnemyRadius  = 10.0
	BulletRadius = 3.0
)

// Compile-time checks that every entity exposes the advance capability.
var (
	_ geometry.Collider = (*Player)(nil)
	_ geometry.Collider = (*Enemy)(nil)
	_ geometry.Collider = (*Bullet)(nil)
	_ geometry.Advance  = (*Particle)(nil)
)

// normalizeAngle maps a finite angle to [-pi, pi] in constant time.
func normalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// turnAngle returns speed*dt reduced to less than a full turn. dt is reduced
// first so the product cannot overflow; steps shorter than a full turn are unchanged.
func turnAngle(speed, dt float64) float64 {
	if speed == 0 {
		return 0
	}
	return normalizeAngle(speed * math.Mod(dt, 2*math.Pi/math.Abs(speed)))
}

// Package controller advances the world: the time controller integrates motion,
// applies input and spawns entities; the collisions pass resolves contacts.
package controller

import (
	"math"

	"github.com/tomz197/rocket/internal/geometry"
	"github.com/tomz197/rocket/internal/input"
	"github.com/tomz197/rocket/internal/object"
	"github.com/tomz197/rocket/internal/world"
)

// Rand is the random source the time controller draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// TimeController owns the random stream and the clocks that drive spawning.
type TimeController struct {
	rng    Rand
	tuning Tuning

	currentTime   float64
	lastTrailTime float64
}

// NewTimeController creates a controller drawing from rng.
func NewTimeController(rng Rand, tuning Tuning) *TimeController {
	return &TimeController{
		rng:    rng,
		tuning: tuning,
	}
}

// Tuning returns the controller's parameters.
func (tc *TimeController) Tuning() Tuning {
	return tc.tuning
}

// Elapsed returns the simulated seconds so far.
func (tc *TimeController) Elapsed() float64 {
	return tc.currentTime
}

// Update advances the state by dt seconds. A dt that is zero, negative or not
// finite leaves the state untouched and consumes no random numbers.
//
// Per call the generator is consulted in a fixed order: one spawn roll, then,
// only if it succeeds, one draw for the spawn edge and one for the offset along it.
func (tc *TimeController) Update(dt float64, actions input.Actions, state *world.GameState) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	tc.currentTime += dt

	w := &state.World
	t := &tc.tuning

	// Player
	w.Player.Steer(dt, actions.RotateLeft, actions.RotateRight, actions.Boost, t.Player)
	w.Player.Move(dt, w.Size)

	// Particles
	for i := range w.Particles {
		w.Particles[i].Update(dt)
	}
	w.Particles = world.Retain(w.Particles, func(p *object.Particle) bool { return !p.Expired() })

	if t.TrailInterval > 0 && tc.currentTime-tc.lastTrailTime >= t.TrailInterval {
		tc.lastTrailTime = tc.currentTime
		w.Particles = append(w.Particles, object.NewTrailParticle(&w.Player))
	}

	// Bullets
	for i := range w.Bullets {
		w.Bullets[i].Update(dt)
	}
	w.Bullets = world.Retain(w.Bullets, func(b *object.Bullet) bool {
		return !b.Expired() && w.Size.Contains(b.Pos)
	})

	if w.Player.TryFire(dt, actions.Shoot, t.BulletCooldown) {
		// The nose can poke past an edge the ship has not crossed yet.
		nose := w.Size.Wrap(w.Player.Nose())
		w.Bullets = append(w.Bullets, object.NewBullet(nose, w.Player.Heading, t.BulletSpeed, t.BulletTTL))
	}

	// Enemies
	target := w.Player.Pos
	for i := range w.Enemies {
		w.Enemies[i].Chase(target, t.EnemySpeed)
		w.Enemies[i].Move(dt)
	}
	w.Enemies = world.Retain(w.Enemies, func(e *object.Enemy) bool { return w.Size.Contains(e.Pos) })

	if tc.spawnRoll(dt) {
		pos := tc.spawnPosition(w.Size, target)
		w.Enemies = append(w.Enemies, object.NewEnemy(pos, target, t.EnemySpeed))
	}
}

// spawnRoll draws once and reports whether an enemy spawns this step.
// The probability 1-exp(-rate*dt) makes the spawn rate independent of the step size.
func (tc *TimeController) spawnRoll(dt float64) bool {
	p := -math.Expm1(-tc.tuning.EnemySpawnRate * dt)
	return tc.rng.Float64() < p
}

// spawnPosition picks a point on a random edge of the world. A point inside the
// player's grace area is mirrored to the opposite edge.
func (tc *TimeController) spawnPosition(size geometry.Size, player geometry.Point) geometry.Point {
	edge := int(tc.rng.Float64() * 4)
	offset := tc.rng.Float64()

	pos := edgePoint(size, edge, offset)
	if pos.DistanceTo(player) < tc.tuning.GraceRadius {
		pos = edgePoint(size, oppositeEdge(edge), offset)
	}
	return pos
}

// Edges of the world, clockwise from the top.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// edgePoint returns the point at fraction t along the given edge. Points on the
// far edges are nudged inside so they pass Size.Contains.
func edgePoint(size geometry.Size, edge int, t float64) geometry.Point {
	maxX := math.Nextafter(size.Width, 0)
	maxY := math.Nextafter(size.Height, 0)
	switch edge {
	case edgeTop:
		return geometry.Point{X: t * size.Width, Y: 0}
	case edgeRight:
		return geometry.Point{X: maxX, Y: t * size.Height}
	case edgeBottom:
		return geometry.Point{X: t * size.Width, Y: maxY}
	default: // edgeLeft
		return geometry.Point{X: 0, Y: t * size.Height}
	}
}

func oppositeEdge(edge int) int {
	return (edge + 2) % 4
}

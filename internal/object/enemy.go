package object

import "github.com/tomz197/rocket/internal/geometry"

// Enemy drifts toward the player and dies on contact with a bullet or the ship.
type Enemy struct {
	Pos geometry.Point
	Vel geometry.Point
}

// NewEnemy creates an enemy at pos already aimed at target.
func NewEnemy(pos, target geometry.Point, speed float64) Enemy {
	return Enemy{Pos: pos, Vel: pos.Toward(target, speed)}
}

// Chase re-aims the enemy at target. The velocity is kept when the
// enemy sits exactly on the target.
func (e *Enemy) Chase(target geometry.Point, speed float64) {
	if v := e.Pos.Toward(target, speed); v != (geometry.Point{}) {
		e.Vel = v
	}
}

// Move integrates the position.
func (e *Enemy) Move(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Position returns the enemy's center.
func (e *Enemy) Position() geometry.Point { return e.Pos }

// Direction returns the direction of travel.
func (e *Enemy) Direction() float64 { return e.Vel.Angle() }

// Radius returns the collision radius.
func (e *Enemy) Radius() float64 { return EnemyRadius }

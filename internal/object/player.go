package object

import (
	"math"

	"github.com/tomz197/rocket/internal/geometry"
)

// PlayerTuning holds the ship's handling parameters.
type PlayerTuning struct {
	RotationSpeed float64 // Radians per second
	CruiseSpeed   float64 // Drift speed along the heading when not boosting
	ThrustPower   float64 // Acceleration when boosting (units/s²)
	MaxSpeed      float64 // Velocity magnitude cap
	Damping       float64 // Fraction of the drift deviation kept after one second (1.0 = no damping)
}

// DefaultPlayerTuning returns the stock ship handling.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		RotationSpeed: 2 * math.Pi,
		CruiseSpeed:   200.0,
		ThrustPower:   800.0,
		MaxSpeed:      400.0,
		Damping:       0.05,
	}
}

// Player is the ship controlled by the input layer. There is exactly one per world.
type Player struct {
	Pos     geometry.Point // Center of the ship
	Vel     geometry.Point // Momentum
	Heading float64        // Radians (0 = pointing right, increases clockwise on screen)

	fireCooldown float64 // Seconds until the next shot is allowed
}

// NewPlayer creates a ship at pos pointing up and cruising.
func NewPlayer(pos geometry.Point, t PlayerTuning) Player {
	heading := -math.Pi / 2
	return Player{
		Pos:     pos,
		Vel:     geometry.FromAngle(heading).Scale(t.CruiseSpeed),
		Heading: heading,
	}
}

// Steer applies rotation and boost for dt seconds.
// Holding both rotate directions cancels out.
func (p *Player) Steer(dt float64, left, right, boost bool, t PlayerTuning) {
	var turn float64
	if left {
		turn -= turnAngle(t.RotationSpeed, dt)
	}
	if right {
		turn += turnAngle(t.RotationSpeed, dt)
	}
	p.Heading = normalizeAngle(p.Heading + turn)

	dir := geometry.FromAngle(p.Heading)
	if boost {
		dv := dir.Scale(t.ThrustPower * dt)
		if dv.IsFinite() {
			p.Vel = p.Vel.Add(dv)
		} else {
			// Unbounded thrust leaves only the heading's direction.
			p.Vel = dir.Scale(t.MaxSpeed)
		}
	} else {
		// Relax toward the cruise drift; pow keeps this independent of the step size.
		drift := dir.Scale(t.CruiseSpeed)
		p.Vel = drift.Add(p.Vel.Sub(drift).Scale(math.Pow(t.Damping, dt)))
	}
	p.Vel = p.Vel.ClampLen(t.MaxSpeed)
}

// Move integrates the position and wraps it around the world edges.
// A displacement too large to represent has no defined wrap and leaves the ship in place.
func (p *Player) Move(dt float64, bounds geometry.Size) {
	next := p.Pos.Add(p.Vel.Scale(dt))
	if !next.IsFinite() {
		return
	}
	p.Pos = bounds.Wrap(next)
}

// TryFire advances the fire cooldown by dt and reports whether a shot
// is released. A released shot restarts the cooldown.
func (p *Player) TryFire(dt float64, shoot bool, cooldown float64) bool {
	p.fireCooldown = math.Max(0, p.fireCooldown-dt)
	if !shoot || p.fireCooldown > 0 {
		return false
	}
	p.fireCooldown = cooldown
	return true
}

// Cooldown returns the seconds left before the ship may fire again.
func (p *Player) Cooldown() float64 {
	return p.fireCooldown
}

// Nose returns the tip of the ship, where bullets leave.
func (p *Player) Nose() geometry.Point {
	return p.Pos.Add(geometry.FromAngle(p.Heading).Scale(PlayerRadius))
}

// Tail returns the back of the ship, where the trail is emitted.
func (p *Player) Tail() geometry.Point {
	return p.Pos.Sub(geometry.FromAngle(p.Heading).Scale(PlayerRadius))
}

// Position returns the ship's center.
func (p *Player) Position() geometry.Point { return p.Pos }

// Direction returns the ship's heading.
func (p *Player) Direction() float64 { return p.Heading }

// Radius returns the collision radius.
func (p *Player) Radius() float64 { return PlayerRadius }

package object

import (
	"math"

	"github.com/tomz197/rocket/internal/geometry"
)

// Particle is a short-lived visual effect.
type Particle struct {
	Pos geometry.Point
	Vel geometry.Point
	TTL float64 // Seconds remaining
}

// Emission parameters for explosions and the ship trail.
const (
	ExplosionDirections = 30
	ExplosionSpeed      = 200.0 // Speed of a particle with one second to live
	TrailTTL            = 0.5
	TrailSpeed          = 50.0
)

// NewParticle creates a particle.
func NewParticle(pos, vel geometry.Point, ttl float64) Particle {
	return Particle{Pos: pos, Vel: vel, TTL: ttl}
}

// Update moves the particle and ages it by dt.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.TTL -= dt
}

// Expired reports whether the particle's lifetime is used up.
func (p *Particle) Expired() bool {
	return p.TTL <= 0
}

// Decay is the render scale derived from the remaining lifetime.
func (p *Particle) Decay() float64 {
	return 5 * p.TTL
}

// Position returns the particle's location.
func (p *Particle) Position() geometry.Point { return p.Pos }

// Direction returns the direction of travel.
func (p *Particle) Direction() float64 { return p.Vel.Angle() }

// AppendExplosion appends a burst of particles centered on at and returns the
// extended slice. Directions are spread evenly over [0, 2pi] inclusive; for each
// direction one particle is emitted per lifetime step k/10, k in [1, intensity).
// Longer-lived particles travel faster, so the burst renders as expanding rings.
func AppendExplosion(dst []Particle, at geometry.Point, intensity int) []Particle {
	for i := 0; i < ExplosionDirections; i++ {
		angle := 2 * math.Pi * float64(i) / float64(ExplosionDirections-1)
		dir := geometry.FromAngle(angle)
		for k := 1; k < intensity; k++ {
			ttl := float64(k) / 10
			dst = append(dst, NewParticle(at, dir.Scale(ExplosionSpeed*ttl), ttl))
		}
	}
	return dst
}

// ExplosionSize returns how many particles AppendExplosion emits.
func ExplosionSize(intensity int) int {
	if intensity < 2 {
		return 0
	}
	return ExplosionDirections * (intensity - 1)
}

// NewTrailParticle creates a particle left behind the ship.
func NewTrailParticle(p *Player) Particle {
	back := geometry.FromAngle(p.Heading + math.Pi)
	return NewParticle(p.Tail(), back.Scale(TrailSpeed), TrailTTL)
}

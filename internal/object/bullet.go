package object

import "github.com/tomz197/rocket/internal/geometry"

// Bullet is a shot fired by the player.
type Bullet struct {
	Pos geometry.Point
	Vel geometry.Point
	TTL float64 // Seconds remaining before removal
}

// NewBullet creates a bullet at pos traveling along heading at speed.
func NewBullet(pos geometry.Point, heading, speed, ttl float64) Bullet {
	return Bullet{
		Pos: pos,
		Vel: geometry.FromAngle(heading).Scale(speed),
		TTL: ttl,
	}
}

// Update moves the bullet and ages it by dt.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.TTL -= dt
}

// Expired reports whether the bullet's lifetime is used up.
func (b *Bullet) Expired() bool {
	return b.TTL <= 0
}

// Position returns the bullet's center.
func (b *Bullet) Position() geometry.Point { return b.Pos }

// Direction returns the direction of travel.
func (b *Bullet) Direction() float64 { return b.Vel.Angle() }

// Radius returns the collision radius.
func (b *Bullet) Radius() float64 { return BulletRadius }

// Package geometry provides the 2D math shared by every entity in the world.
package geometry

import "math"

// Point is a 2D coordinate. It doubles as a velocity or direction vector.
type Point struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at angle radians
// (0 = right, increasing clockwise in screen space).
func FromAngle(angle float64) Point {
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the magnitude of p.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the direction of p in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// SquaredDistanceTo returns the squared Euclidean distance between p and q.
// Use this when comparing distances to avoid the sqrt cost.
func (p Point) SquaredDistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// Toward returns a vector of length speed pointing from p to target.
// Returns the zero vector when p and target coincide.
func (p Point) Toward(target Point, speed float64) Point {
	d := target.Sub(p)
	l := d.Len()
	if l == 0 {
		return Point{}
	}
	return d.Scale(speed / l)
}

// ClampLen scales p down so its magnitude does not exceed max.
func (p Point) ClampLen(max float64) Point {
	l := p.Len()
	if l > max && l > 0 {
		return p.Scale(max / l)
	}
	return p
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

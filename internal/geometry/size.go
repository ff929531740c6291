package geometry

import "math"

// Size is the extent of the bounded play area, anchored at the origin.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Center returns the middle of the area.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Contains reports whether p lies within [0,Width) x [0,Height).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Wrap maps p back into the area toroidally (Asteroids-style). The result
// always satisfies Contains for finite p.
func (s Size) Wrap(p Point) Point {
	p.X = wrapAxis(p.X, s.Width)
	p.Y = wrapAxis(p.Y, s.Height)
	return p
}

func wrapAxis(v, length float64) float64 {
	if !(length > 0) {
		return v
	}
	v = math.Mod(v, length)
	if v < 0 {
		v += length
		// A tiny negative remainder rounds up to length itself.
		if v >= length {
			v = 0
		}
	}
	return v
}

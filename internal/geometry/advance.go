package geometry

// Advance is implemented by every entity that has a location and a heading.
// Renderers and collision checks only need this view of an entity.
type Advance interface {
	Position() Point
	Direction() float64
}

// Collider is an Advance with a collision radius.
type Collider interface {
	Advance
	Radius() float64
}

// Collides reports whether two colliders' circles overlap.
func Collides(a, b Collider) bool {
	r := a.Radius() + b.Radius()
	return a.Position().SquaredDistanceTo(b.Position()) < r*r
}

package draw

import (
	"math"

	"github.com/tomz197/rocket/internal/geometry"
	"github.com/tomz197/rocket/internal/object"
)

// shipShape is the ship outline in logical units, nose along +X.
var shipShape = [...]geometry.Point{
	{X: 12, Y: 0},
	{X: -8, Y: 7},
	{X: -4, Y: 0},
	{X: -8, Y: -7},
}

// particleScale converts a particle's decay into a logical radius.
const particleScale = 0.6

// Scene draws game objects onto a Canvas. It receives draw commands in the
// order the game emits them.
type Scene struct {
	canvas *Canvas
	hull   [len(shipShape)]geometry.Point
}

// NewScene creates a scene drawing onto c.
func NewScene(c *Canvas) *Scene {
	return &Scene{canvas: c}
}

// Canvas returns the canvas the scene draws on.
func (s *Scene) Canvas() *Canvas {
	return s.canvas
}

func (s *Scene) Clear() {
	s.canvas.Clear()
}

func (s *Scene) DrawParticle(x, y, decay float64) {
	s.canvas.Circle(geometry.Point{X: x, Y: y}, decay*particleScale, true)
}

func (s *Scene) DrawBullet(x, y float64) {
	s.canvas.Circle(geometry.Point{X: x, Y: y}, object.BulletRadius, true)
}

func (s *Scene) DrawEnemy(x, y float64) {
	s.canvas.Circle(geometry.Point{X: x, Y: y}, object.EnemyRadius, false)
}

func (s *Scene) DrawPlayer(x, y, heading float64) {
	sin, cos := math.Sincos(heading)
	for i, p := range shipShape {
		s.hull[i] = geometry.Point{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	s.canvas.Polygon(s.hull[:], true)
}

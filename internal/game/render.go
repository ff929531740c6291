package game

import "github.com/tomz197/rocket/internal/world"

// Renderer receives one frame of draw commands. Implementations must not call
// back into the Game.
type Renderer interface {
	Clear()
	DrawParticle(x, y, decay float64)
	DrawBullet(x, y float64)
	DrawEnemy(x, y float64)
	DrawPlayer(x, y, heading float64)
}

// ParticleDraw is the draw command for one particle.
type ParticleDraw struct {
	X, Y  float64
	Decay float64 // Size scale derived from the remaining lifetime
}

// PointDraw is the draw command for a bullet or an enemy.
type PointDraw struct {
	X, Y float64
}

// PlayerDraw is the draw command for the ship.
type PlayerDraw struct {
	X, Y    float64
	Heading float64
}

// Frame is a read-only copy of everything a renderer needs for one frame.
type Frame struct {
	Particles []ParticleDraw
	Bullets   []PointDraw
	Enemies   []PointDraw
	Player    PlayerDraw
	Score     int
}

// Snapshot copies the current world into a Frame. It does not mutate state.
func (g *Game) Snapshot() Frame {
	var f Frame
	g.withLock(func() {
		f = snapshot(g.state)
	})
	return f
}

// Draw emits the current world to r: clear, then every particle, bullet and
// enemy in collection order, and finally the player.
func (g *Game) Draw(r Renderer) {
	g.withLock(func() {
		w := &g.state.World
		r.Clear()
		for i := range w.Particles {
			p := &w.Particles[i]
			r.DrawParticle(p.Pos.X, p.Pos.Y, p.Decay())
		}
		for i := range w.Bullets {
			r.DrawBullet(w.Bullets[i].Pos.X, w.Bullets[i].Pos.Y)
		}
		for i := range w.Enemies {
			r.DrawEnemy(w.Enemies[i].Pos.X, w.Enemies[i].Pos.Y)
		}
		r.DrawPlayer(w.Player.Pos.X, w.Player.Pos.Y, w.Player.Direction())
	})
}

// Replay feeds a frame to r in the same order Draw uses.
func (f Frame) Replay(r Renderer) {
	r.Clear()
	for _, p := range f.Particles {
		r.DrawParticle(p.X, p.Y, p.Decay)
	}
	for _, b := range f.Bullets {
		r.DrawBullet(b.X, b.Y)
	}
	for _, e := range f.Enemies {
		r.DrawEnemy(e.X, e.Y)
	}
	r.DrawPlayer(f.Player.X, f.Player.Y, f.Player.Heading)
}

func snapshot(s *world.GameState) Frame {
	w := &s.World
	f := Frame{
		Particles: make([]ParticleDraw, len(w.Particles)),
		Bullets:   make([]PointDraw, len(w.Bullets)),
		Enemies:   make([]PointDraw, len(w.Enemies)),
		Player: PlayerDraw{
			X:       w.Player.Pos.X,
			Y:       w.Player.Pos.Y,
			Heading: w.Player.Direction(),
		},
		Score: s.Score,
	}
	for i := range w.Particles {
		p := &w.Particles[i]
		f.Particles[i] = ParticleDraw{X: p.Pos.X, Y: p.Pos.Y, Decay: p.Decay()}
	}
	for i, b := range w.Bullets {
		f.Bullets[i] = PointDraw{X: b.Pos.X, Y: b.Pos.Y}
	}
	for i, e := range w.Enemies {
		f.Enemies[i] = PointDraw{X: e.Pos.X, Y: e.Pos.Y}
	}
	return f
}

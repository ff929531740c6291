package controller

import (
	"github.com/tomz197/rocket/internal/geometry"
	"github.com/tomz197/rocket/internal/object"
	"github.com/tomz197/rocket/internal/physics"
	"github.com/tomz197/rocket/internal/world"
)

// collisionCellSize must be >= the largest interaction distance
// (bullet + enemy radius) so the 3x3 grid neighborhood finds every contact.
const collisionCellSize = object.BulletRadius + object.EnemyRadius

// Collisions resolves contacts between entities. It keeps its scratch buffers
// between calls; it holds no references to the state afterwards.
type Collisions struct {
	tuning Tuning

	grid       *physics.SpatialGrid
	gridSize   geometry.Size
	deadEnemy  []bool
	deadBullet []bool
}

// NewCollisions creates a collisions pass using the explosion and score parameters of tuning.
func NewCollisions(tuning Tuning) *Collisions {
	return &Collisions{tuning: tuning}
}

// Outcome summarizes what a collisions pass removed.
type Outcome struct {
	EnemiesKilled int
	BulletsUsed   int
	PlayerHit     bool
}

// Handle detects every contact first and resolves them afterwards, so the result
// does not depend on the order entities are stored in:
//   - bullet x enemy: both are removed, an explosion is spawned at the enemy and
//     the score increases. A bullet overlapping several enemies destroys all of them.
//   - player x enemy: an explosion is spawned at the player and the game is reset,
//     which removes every enemy.
func (c *Collisions) Handle(state *world.GameState) Outcome {
	w := &state.World

	c.ensureGrid(w)
	c.deadEnemy = resize(c.deadEnemy, len(w.Enemies))
	c.deadBullet = resize(c.deadBullet, len(w.Bullets))

	// Detection
	c.grid.Clear()
	for i := range w.Enemies {
		c.grid.Insert(w.Enemies[i].Pos, i)
	}

	for bi := range w.Bullets {
		b := &w.Bullets[bi]
		c.grid.QueryAround(b.Pos, func(ei int) bool {
			if geometry.Collides(b, &w.Enemies[ei]) {
				c.deadBullet[bi] = true
				c.deadEnemy[ei] = true
			}
			return false
		})
	}

	var out Outcome
	for i := range w.Enemies {
		if geometry.Collides(&w.Player, &w.Enemies[i]) {
			out.PlayerHit = true
			break
		}
	}

	// Resolution
	enemies := w.Enemies[:0]
	for i, e := range w.Enemies {
		if c.deadEnemy[i] {
			out.EnemiesKilled++
			w.Particles = object.AppendExplosion(w.Particles, e.Pos, c.tuning.EnemyExplosion)
			continue
		}
		enemies = append(enemies, e)
	}
	w.Enemies = enemies

	bullets := w.Bullets[:0]
	for i, b := range w.Bullets {
		if c.deadBullet[i] {
			out.BulletsUsed++
			continue
		}
		bullets = append(bullets, b)
	}
	w.Bullets = bullets

	state.Score += out.EnemiesKilled * c.tuning.ScorePerKill

	if out.PlayerHit {
		w.Particles = object.AppendExplosion(w.Particles, w.Player.Pos, c.tuning.PlayerExplosion)
		state.Reset()
	}

	return out
}

// HandleCollisions runs a single collisions pass with the default tuning.
func HandleCollisions(state *world.GameState) Outcome {
	return NewCollisions(DefaultTuning()).Handle(state)
}

// ensureGrid (re)builds the broad-phase grid when the world size changes.
func (c *Collisions) ensureGrid(w *world.World) {
	if c.grid == nil || c.gridSize != w.Size {
		c.grid = physics.NewSpatialGrid(w.Size, collisionCellSize)
		c.gridSize = w.Size
	}
}

// resize returns a zeroed slice of length n, reusing buf when possible.
func resize(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

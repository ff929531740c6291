// Package game wraps the world, the action state and the update engine behind a
// single lock. It is the only object external collaborators talk to.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocket/internal/controller"
	"github.com/tomz197/rocket/internal/geometry"
	"github.com/tomz197/rocket/internal/input"
	"github.com/tomz197/rocket/internal/world"
)

// ErrPoisoned is the panic value of every operation on a Game whose lock was
// held by an operation that panicked. The world may be inconsistent, so the
// game refuses to continue.
var ErrPoisoned = errors.New("game: world is poisoned by an earlier panic")

// Config is fixed for the lifetime of a Game.
type Config struct {
	Size   geometry.Size
	Seed   uint64
	Tuning controller.Tuning
}

// DefaultConfig returns a 1024x600 play area with seed 42.
func DefaultConfig() Config {
	return Config{
		Size:   geometry.NewSize(1024, 600),
		Seed:   42,
		Tuning: controller.DefaultTuning(),
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRand replaces the seeded generator, e.g. with a fixed sequence in tests.
func WithRand(r controller.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// Game is one simulated world. All methods are safe for concurrent use; they are
// serialized by one lock and applied in call order.
type Game struct {
	mu       sync.Mutex
	poisoned bool

	state      *world.GameState
	actions    input.Actions
	clock      *controller.TimeController
	collisions *controller.Collisions
	rng        controller.Rand
	logger     *log.Logger
}

// New creates a game from cfg.
func New(cfg Config, opts ...Option) *Game {
	g := &Game{
		state:  world.NewGameState(cfg.Size, cfg.Tuning.Player),
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.clock = controller.NewTimeController(g.rng, cfg.Tuning)
	g.collisions = controller.NewCollisions(cfg.Tuning)
	return g
}

// withLock runs fn holding the lock. A panic inside fn poisons the game and is re-raised.
func (g *Game) withLock(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		panic(ErrPoisoned)
	}
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			g.logger.Error("game poisoned", "panic", r)
			panic(r)
		}
	}()

	fn()
}

// SetAction switches one input intent on or off.
func (g *Game) SetAction(action input.Action, on bool) {
	g.withLock(func() {
		g.actions.Set(action, on)
	})
}

// SetActionByName is SetAction for a named action ("shoot", "boost",
// "rotate_left", "rotate_right"). Unknown names change nothing.
func (g *Game) SetActionByName(name string, on bool) error {
	action, err := input.ParseAction(name)
	if err != nil {
		return fmt.Errorf("game: set action: %w", err)
	}
	g.SetAction(action, on)
	return nil
}

// SetActions replaces the whole action state.
func (g *Game) SetActions(actions input.Actions) {
	g.withLock(func() {
		g.actions = actions
	})
}

// Actions returns the current action state.
func (g *Game) Actions() input.Actions {
	var a input.Actions
	g.withLock(func() {
		a = g.actions
	})
	return a
}

// Update runs one simulation step of elapsed seconds: the time controller and
// then the collisions pass. Zero, negative or non-finite steps do nothing.
func (g *Game) Update(elapsed float64) {
	g.withLock(func() {
		g.clock.Update(elapsed, g.actions, g.state)
		out := g.collisions.Handle(g.state)
		if out.EnemiesKilled > 0 {
			g.logger.Debug("enemies destroyed", "count", out.EnemiesKilled, "score", g.state.Score)
		}
		if out.PlayerHit {
			g.logger.Debug("player destroyed, world reset", "elapsed", g.clock.Elapsed())
		}
	})
}

// Score returns the current score.
func (g *Game) Score() int {
	var s int
	g.withLock(func() {
		s = g.state.Score
	})
	return s
}

// Size returns the play area.
func (g *Game) Size() geometry.Size {
	var s geometry.Size
	g.withLock(func() {
		s = g.state.World.Size
	})
	return s
}

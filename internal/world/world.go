// Package world holds the authoritative game state: the bounded play area
// and the ordered collections of every entity category.
package world

import (
	"github.com/tomz197/rocket/internal/geometry"
	"github.com/tomz197/rocket/internal/object"
)

// World is the bounded play area plus its entities.
// The player is a value, so a world always has exactly one.
type World struct {
	Size      geometry.Size
	Player    object.Player
	Enemies   []object.Enemy
	Bullets   []object.Bullet
	Particles []object.Particle
}

// NewWorld creates a world with the player at the center and no other entities.
func NewWorld(size geometry.Size, tuning object.PlayerTuning) World {
	return World{
		Size:   size,
		Player: object.NewPlayer(size.Center(), tuning),
	}
}

// GameState is the world plus the session score.
type GameState struct {
	World World
	Score int

	tuning object.PlayerTuning // Used to respawn the player on Reset
}

// NewGameState creates a fresh game on a play area of the given size.
func NewGameState(size geometry.Size, tuning object.PlayerTuning) *GameState {
	return &GameState{
		World:  NewWorld(size, tuning),
		tuning: tuning,
	}
}

// Reset puts the player back at the center and clears enemies, bullets and
// the score. Particles are kept so effects spawned this frame still render.
func (s *GameState) Reset() {
	s.World.Player = object.NewPlayer(s.World.Size.Center(), s.tuning)
	s.World.Enemies = s.World.Enemies[:0]
	s.World.Bullets = s.World.Bullets[:0]
	s.Score = 0
}

// Retain keeps the elements for which keep returns true, preserving order.
// The backing array is reused.
func Retain[T any](items []T, keep func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if keep(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	return kept
}

package controller

import "github.com/tomz197/rocket/internal/object"

// Tuning holds every parameter of the update engine.
type Tuning struct {
	Player object.PlayerTuning

	BulletSpeed    float64 // Units per second
	BulletTTL      float64 // Seconds
	BulletCooldown float64 // Minimum seconds between shots

	EnemySpeed     float64 // Units per second
	EnemySpawnRate float64 // Expected spawns per second
	GraceRadius    float64 // Enemies never spawn this close to the player

	TrailInterval float64 // Seconds between trail particles (0 disables the trail)

	EnemyExplosion  int // Explosion intensity when a bullet kills an enemy
	PlayerExplosion int // Explosion intensity when the player is hit
	ScorePerKill    int
}

// DefaultTuning returns the stock game parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Player:          object.DefaultPlayerTuning(),
		BulletSpeed:     500.0,
		BulletTTL:       1.0,
		BulletCooldown:  0.1,
		EnemySpeed:      100.0,
		EnemySpawnRate:  1.0,
		GraceRadius:     200.0,
		TrailInterval:   1.0 / 20,
		EnemyExplosion:  10,
		PlayerExplosion: 8,
		ScorePerKill:    10,
	}
}

package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocket/internal/game"
	"github.com/tomz197/rocket/internal/geometry"
)

// Environment variable names.
const (
	EnvWidth          = "ROCKET_WIDTH"
	EnvHeight         = "ROCKET_HEIGHT"
	EnvSeed           = "ROCKET_SEED"
	EnvLogLevel       = "ROCKET_LOG_LEVEL"
	EnvBulletCooldown = "ROCKET_BULLET_COOLDOWN"
	EnvSpawnRate      = "ROCKET_ENEMY_SPAWN_RATE"
	EnvSSHHost        = "SSH_HOST"
	EnvSSHPort        = "SSH_PORT"
	EnvSSHHostKey     = "SSH_HOST_KEY"
)

// Settings is everything a command needs to build and serve a game.
type Settings struct {
	Width, Height  float64
	Seed           uint64
	LogLevel       log.Level
	BulletCooldown float64
	EnemySpawnRate float64

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Defaults returns the settings used when nothing is set.
func Defaults() Settings {
	def := game.DefaultConfig()
	return Settings{
		Width:          def.Size.Width,
		Height:         def.Size.Height,
		Seed:           def.Seed,
		LogLevel:       log.InfoLevel,
		BulletCooldown: def.Tuning.BulletCooldown,
		EnemySpawnRate: def.Tuning.EnemySpawnRate,
		SSHHost:        "::",
		SSHPort:        "2222",
		SSHHostKey:     ".ssh/rocket_ed25519",
	}
}

// Load reads settings from the environment on top of Defaults. Every malformed
// variable is reported, joined into one error.
func Load() (Settings, error) {
	s := Defaults()

	var errs []error
	float := func(key string, dst *float64) {
		v, err := GetEnvFloat(key, *dst)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}

	float(EnvWidth, &s.Width)
	float(EnvHeight, &s.Height)
	float(EnvBulletCooldown, &s.BulletCooldown)
	float(EnvSpawnRate, &s.EnemySpawnRate)

	if seed, err := GetEnvUint64(EnvSeed, s.Seed); err != nil {
		errs = append(errs, err)
	} else {
		s.Seed = seed
	}

	if lvl := GetEnv(EnvLogLevel, ""); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvLogLevel, err))
		} else {
			s.LogLevel = parsed
		}
	}

	s.SSHHost = GetEnv(EnvSSHHost, s.SSHHost)
	s.SSHPort = GetEnv(EnvSSHPort, s.SSHPort)
	s.SSHHostKey = GetEnv(EnvSSHHostKey, s.SSHHostKey)

	if err := s.validate(); err != nil {
		errs = append(errs, err)
	}
	return s, errors.Join(errs...)
}

func (s Settings) validate() error {
	if !(s.Width > 0) || !(s.Height > 0) || math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		return fmt.Errorf("config: play area must be positive and finite, got %vx%v", s.Width, s.Height)
	}
	if s.BulletCooldown < 0 || math.IsNaN(s.BulletCooldown) {
		return fmt.Errorf("config: bullet cooldown must not be negative, got %v", s.BulletCooldown)
	}
	if s.EnemySpawnRate < 0 || math.IsNaN(s.EnemySpawnRate) {
		return fmt.Errorf("config: enemy spawn rate must not be negative, got %v", s.EnemySpawnRate)
	}
	return nil
}

// GameConfig converts the settings into a game configuration.
func (s Settings) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Size = geometry.NewSize(s.Width, s.Height)
	cfg.Seed = s.Seed
	cfg.Tuning.BulletCooldown = s.BulletCooldown
	cfg.Tuning.EnemySpawnRate = s.EnemySpawnRate
	return cfg
}

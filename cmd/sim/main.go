// Command sim runs games headless with a scripted pilot and prints a digest
// of each final world. Equal seeds must print equal lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/rocket/internal/config"
	"github.com/tomz197/rocket/internal/game"
	"github.com/tomz197/rocket/internal/input"
)

type result struct {
	seed  uint64
	frame game.Frame
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	settings, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	ticks := flag.Int("ticks", 3600, "number of updates per run")
	dt := flag.Float64("dt", 1.0/60, "seconds per update")
	seed := flag.Uint64("seed", settings.Seed, "seed of the first run")
	runs := flag.Int("runs", 1, "number of runs, seeded seed, seed+1, ...")
	prof := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	logger := settings.NewLogger(os.Stderr, "sim")

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		logger.Fatal("unknown profile mode", "profile", *prof)
	}

	results := make([]result, max(*runs, 0))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		runSeed := *seed + uint64(i)
		eg.Go(func() error {
			cfg := settings.GameConfig()
			cfg.Seed = runSeed
			g := game.New(cfg, game.WithLogger(logger.With("seed", runSeed)))
			results[i] = result{seed: runSeed, frame: simulate(g, *ticks, *dt)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Fatal("simulation failed", "err", err)
	}

	for _, r := range results {
		f := r.frame
		fmt.Printf("seed=%d ticks=%d score=%d enemies=%d bullets=%d particles=%d digest=%016x\n",
			r.seed, *ticks, f.Score, len(f.Enemies), len(f.Bullets), len(f.Particles), f.Digest())
	}
}

// simulate flies a fixed pattern: always shooting, sweeping left, with
// periodic boosts.
func simulate(g *game.Game, ticks int, dt float64) game.Frame {
	for tick := 0; tick < ticks; tick++ {
		g.SetActions(input.Actions{
			Shoot:      true,
			RotateLeft: tick%240 < 90,
			Boost:      tick%120 < 20,
		})
		g.Update(dt)
	}
	return g.Snapshot()
}

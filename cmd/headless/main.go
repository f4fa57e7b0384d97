// Headless runs the simulation with the autopilot at a fixed step and
// logs a summary. With -profile it writes a CPU or memory profile:
//
//	go run ./cmd/headless -seconds 600 -profile cpu
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"flag"
	"fmt"
	"os"

	"go-point-defense/internal/app"
	"go-point-defense/internal/component"
	"go-point-defense/internal/config"
	"go-point-defense/internal/defs"
	"go-point-defense/internal/logging"
	"go-point-defense/internal/metrics"

	"github.com/pkg/profile"
)

type options struct {
	configPath string
	seconds    float64
	step       float64
	epoch      float64
	profile    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a config file (json, yaml or toml)")
	flag.Float64Var(&opts.seconds, "seconds", 120, "simulated time to run")
	flag.Float64Var(&opts.step, "step", 1.0/60, "fixed tick length in seconds")
	flag.Float64Var(&opts.epoch, "epoch", 0, "start the next wave every N simulated seconds (0 = never)")
	flag.StringVar(&opts.profile, "profile", "", "profile mode: cpu or mem")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "headless: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogConsole)

	switch opts.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	rec, err := metrics.New()
	if err != nil {
		logger.Warn().Err(err).Msg("metrics disabled")
	}
	world, err := app.FromConfig(cfg, logger, rec)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	waves := defs.DefaultWaves()
	var tally app.Tally
	sinceEpoch := 0.0
	for elapsed := 0.0; elapsed < opts.seconds; elapsed += opts.step {
		if err := app.Autopilot(world, opts.step); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		tally.Add(world.DrainEvents())

		sinceEpoch += opts.step
		if opts.epoch > 0 && sinceEpoch >= opts.epoch {
			wave, _ := defs.Wave(waves, world.SpawnSystem.Epoch()+1)
			if err := world.StartWave(wave); err != nil {
				return err
			}
			sinceEpoch = 0
		}
	}

	logger.Info().
		Float64("simulated", world.ECS.GameTime).
		Int("spawned", tally.Spawned).
		Int("fired", tally.Fired).
		Int("deaths", tally.Deaths).
		Int("removed", tally.Removed).
		Int("hits", tally.Outcomes[component.OutcomeHit]).
		Int("expired", tally.Outcomes[component.OutcomeExpired]).
		Int("out_of_range", tally.Outcomes[component.OutcomeOutOfRange]).
		Int("alive", world.ECS.EnemyCount()).
		Msg("run complete")
	return nil
}

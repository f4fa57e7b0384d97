package main

import (
	"flag"
	"os"
	"time"

	"go-point-defense/internal/app"
	"go-point-defense/internal/audio"
	"go-point-defense/internal/config"
	"go-point-defense/internal/logging"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/render"
	"go-point-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a config file (json, yaml or toml)")
	sound := flag.Bool("sound", true, "play sound cues")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogConsole)

	rec, err := metrics.New()
	if err != nil {
		logger.Warn().Err(err).Msg("metrics disabled")
	}

	world, err := app.FromConfig(cfg, logger, rec)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build world")
	}

	if *sound {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			player.Attach(world)
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, world, render.NewRenderer(), logger))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Point Defense")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game loop stopped")
	}
}

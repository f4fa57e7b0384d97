// internal/app/build.go
package app

import (
	"fmt"

	"go-point-defense/internal/component"
	"go-point-defense/internal/config"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/system"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/rs/zerolog"
)

// FromConfig builds a ready-to-run world: target set, turret mounted and
// spawner configured with the configured roster.
func FromConfig(cfg *config.Config, logger zerolog.Logger, rec *metrics.Recorder) (*World, error) {
	lib, err := cfg.Library()
	if err != nil {
		return nil, fmt.Errorf("enemy roster: %w", err)
	}

	w := NewWorld(
		WithLogger(logger),
		WithMetrics(rec),
		WithRNG(utils.NewPRNGService(cfg.Seed)),
		WithTarget(pkgutils.V(cfg.Target.X, cfg.Target.Y)),
		WithTurret(component.Turret{
			FacingOffset: cfg.Turret.FacingOffset,
			Muzzle:       pkgutils.V(cfg.Turret.Muzzle.X, cfg.Turret.Muzzle.Y),
			FireRate:     cfg.Turret.FireRate,
			BulletSpeed:  cfg.Turret.BulletSpeed,
			Lifetime:     cfg.Turret.Lifetime,
			MaxRange:     cfg.Turret.MaxRange,
			Damage:       cfg.Turret.Damage,
		}),
		WithProjectileDamage(cfg.Turret.Damage),
	)

	err = w.ConfigureSpawner(system.SpawnConfig{
		Interval: cfg.Spawner.Interval,
		Capacity: cfg.Spawner.Capacity,
		Radius:   cfg.Spawner.Radius,
		Types:    lib.List(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Float64("interval", cfg.Spawner.Interval).
		Int("capacity", cfg.Spawner.Capacity).
		Int("types", len(lib)).
		Msg("world ready")
	return w, nil
}

// internal/system/projectile.go
package system

import (
	"fmt"

	"go-point-defense/internal/component"
	"go-point-defense/internal/config"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/event"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/types"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/rs/zerolog"
)

// ProjectileSystem moves projectiles, expires them and resolves contacts.
// Every projectile resolves exactly once: by a hit, by running out of
// lifetime, or by leaving its range.
type ProjectileSystem struct {
	ecs     *entity.ECS
	health  *HealthSystem
	events  *event.Queue
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

func NewProjectileSystem(ecs *entity.ECS, health *HealthSystem, events *event.Queue, logger zerolog.Logger, rec *metrics.Recorder) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		health:  health,
		events:  events,
		logger:  logger.With().Str("system", "projectile").Logger(),
		metrics: rec,
	}
}

// Shot describes a projectile to create.
type Shot struct {
	Owner    types.EntityID
	Origin   pkgutils.Vec2
	Aim      pkgutils.Vec2
	Speed    float64
	Lifetime float64
	MaxRange float64
	Damage   int
}

// Fire creates a projectile at Origin heading for Aim at a fixed speed.
func (s *ProjectileSystem) Fire(shot Shot) (types.EntityID, error) {
	if !(shot.Speed > 0) || !(shot.Lifetime > 0) || !(shot.MaxRange > 0) || shot.Damage < 0 {
		return types.NoEntity, fmt.Errorf("speed %.2f lifetime %.2f range %.2f damage %d: %w",
			shot.Speed, shot.Lifetime, shot.MaxRange, shot.Damage, ErrInvalidProjectile)
	}
	dir, ok := shot.Aim.Sub(shot.Origin).Normalized()
	if !ok {
		return types.NoEntity, fmt.Errorf("aim point equals origin: %w", ErrInvalidProjectile)
	}

	proj := component.Projectile{
		OwnerID:           shot.Owner,
		Origin:            shot.Origin,
		Speed:             shot.Speed,
		Damage:            shot.Damage,
		RemainingLifetime: shot.Lifetime,
		MaxRange:          shot.MaxRange,
		Orientation:       dir.Angle(),
	}
	look := component.Renderable{Color: config.ProjectileColor, Radius: config.ProjectileRadius}
	id := s.ecs.CreateProjectile(proj, shot.Origin, dir.Scale(shot.Speed), look)

	s.events.Push(event.Event{Type: event.ProjectileFired, ID: id})
	s.metrics.Fired()
	return id, nil
}

// Update restores each projectile's speed and moves it.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, _ := s.ecs.Projectile(id)
		if proj.Resolved {
			continue
		}
		pos, vel := s.ecs.Position(id), s.ecs.Velocity(id)
		if pos == nil || vel == nil {
			continue
		}

		// external forces may have changed the speed; the direction is kept
		if dir, ok := vel.Vec().Normalized(); ok {
			vel.Set(dir.Scale(proj.Speed))
			proj.Orientation = dir.Angle()
		}
		pos.Set(pos.Vec().Add(vel.Vec().Scale(deltaTime)))
	}
}

// Expire counts down lifetimes and retires projectiles past their range.
func (s *ProjectileSystem) Expire(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, _ := s.ecs.Projectile(id)
		if proj.Resolved {
			continue
		}

		proj.RemainingLifetime -= deltaTime
		if proj.RemainingLifetime <= 0 {
			s.resolve(id, proj, component.OutcomeExpired)
			continue
		}
		if pos := s.ecs.Position(id); pos != nil && pos.Vec().Dist(proj.Origin) > proj.MaxRange {
			s.resolve(id, proj, component.OutcomeOutOfRange)
		}
	}
}

// Resolve handles one reported contact between a projectile and an enemy.
// Only the first contact of a projectile does anything; later ones are
// dropped. It reports whether the contact consumed the projectile.
func (s *ProjectileSystem) Resolve(projectileID, enemyID types.EntityID) bool {
	proj, ok := s.ecs.Projectile(projectileID)
	if !ok {
		s.logger.Debug().Uint64("projectile", uint64(projectileID)).Msg("contact for unknown projectile")
		s.metrics.Ignored("unknown_projectile")
		return false
	}
	if proj.Resolved {
		s.logger.Debug().Uint64("projectile", uint64(projectileID)).Uint64("entity", uint64(enemyID)).
			Str("outcome", string(proj.Outcome)).Msg("contact for resolved projectile")
		s.metrics.Ignored("resolved_projectile")
		return false
	}

	enemy, ok := s.ecs.Enemy(enemyID)
	if !ok || enemy.State == component.Dead {
		// the projectile keeps flying
		s.logger.Debug().Uint64("projectile", uint64(projectileID)).Uint64("entity", uint64(enemyID)).
			Msg("contact with missing or dead entity")
		s.metrics.Ignored("dead_target")
		return false
	}

	s.resolve(projectileID, proj, component.OutcomeHit)
	if _, err := s.health.ApplyDamage(enemyID, proj.Damage); err != nil {
		s.logger.Warn().Err(err).Uint64("projectile", uint64(projectileID)).Msg("damage rejected")
	}
	return true
}

func (s *ProjectileSystem) resolve(id types.EntityID, proj *component.Projectile, outcome component.Outcome) {
	proj.Resolved = true
	proj.Outcome = outcome
	if vel := s.ecs.Velocity(id); vel != nil {
		vel.X, vel.Y = 0, 0
	}
	s.ecs.MarkForRemoval(id)
	s.metrics.Resolved(string(outcome))
}

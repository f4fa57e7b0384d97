// internal/system/turret.go
package system

import (
	"go-point-defense/internal/entity"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/rs/zerolog"
)

// TurretSystem turns the turret toward its aim point and fires while the
// trigger is held, limited by the fire rate.
type TurretSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
	logger      zerolog.Logger
}

func NewTurretSystem(ecs *entity.ECS, projectiles *ProjectileSystem, logger zerolog.Logger) *TurretSystem {
	return &TurretSystem{
		ecs:         ecs,
		projectiles: projectiles,
		logger:      logger.With().Str("system", "turret").Logger(),
	}
}

// Aim points the turret mounted at base toward point.
func (s *TurretSystem) Aim(base, point pkgutils.Vec2) {
	t := s.ecs.Turret
	if t == nil {
		return
	}
	t.Aim = point
	if d := point.Sub(base); !d.IsZero() {
		t.Orientation = utils.NormalizeAngle(d.Angle() + t.FacingOffset)
	}
}

// Trigger aims at point and requests a shot on the next update.
func (s *TurretSystem) Trigger(base, point pkgutils.Vec2) {
	if s.ecs.Turret == nil {
		return
	}
	s.Aim(base, point)
	s.ecs.Turret.Triggered = true
}

// Muzzle returns the barrel tip in world space for a turret at base.
func (s *TurretSystem) Muzzle(base pkgutils.Vec2) pkgutils.Vec2 {
	t := s.ecs.Turret
	if t == nil {
		return base
	}
	return base.Add(t.Muzzle.Rotate(t.Aim.Sub(base).Angle()))
}

// Update runs the cooldown and fires a pending shot when allowed.
func (s *TurretSystem) Update(deltaTime float64, base pkgutils.Vec2) {
	t := s.ecs.Turret
	if t == nil {
		return
	}
	if t.Cooldown > 0 {
		t.Cooldown -= deltaTime
	}
	if !t.Triggered {
		return
	}
	t.Triggered = false
	if t.Cooldown > 0 {
		return
	}

	_, err := s.projectiles.Fire(Shot{
		Owner:    s.ecs.TurretID,
		Origin:   s.Muzzle(base),
		Aim:      t.Aim,
		Speed:    t.BulletSpeed,
		Lifetime: t.Lifetime,
		MaxRange: t.MaxRange,
		Damage:   t.Damage,
	})
	if err != nil {
		s.logger.Debug().Err(err).Msg("shot rejected")
		return
	}
	t.Cooldown = t.FireRate
}

// internal/system/health.go
package system

import (
	"fmt"

	"go-point-defense/internal/component"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/event"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/types"

	"github.com/rs/zerolog"
)

// HealthSystem applies damage and drives the Alive -> Dying -> Dead life cycle.
type HealthSystem struct {
	ecs     *entity.ECS
	events  *event.Queue
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

func NewHealthSystem(ecs *entity.ECS, events *event.Queue, logger zerolog.Logger, rec *metrics.Recorder) *HealthSystem {
	return &HealthSystem{
		ecs:     ecs,
		events:  events,
		logger:  logger.With().Str("system", "health").Logger(),
		metrics: rec,
	}
}

// ApplyDamage subtracts amount from the enemy's health, clamping at zero.
// Reaching zero moves the enemy to Dying exactly once, stops it and queues
// DeathBegan. Damage to a Dying or Dead enemy changes nothing.
func (s *HealthSystem) ApplyDamage(id types.EntityID, amount int) (component.LifeState, error) {
	if amount < 0 {
		return component.Alive, fmt.Errorf("damage %d: %w", amount, ErrNegativeDamage)
	}

	enemy, ok := s.ecs.Enemy(id)
	health := s.ecs.Health(id)
	if !ok || health == nil {
		return component.Dead, fmt.Errorf("entity %d: %w", id, ErrUnknownEntity)
	}

	if enemy.State != component.Alive {
		s.logger.Debug().Uint64("entity", uint64(id)).Stringer("state", enemy.State).
			Int("amount", amount).Msg("damage ignored")
		s.metrics.Ignored("damage_not_alive")
		return enemy.State, nil
	}

	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	if health.Current > 0 {
		return component.Alive, nil
	}

	enemy.State = component.Dying
	enemy.ExitTimer = enemy.ExitDuration
	if vel := s.ecs.Velocity(id); vel != nil {
		vel.X, vel.Y = 0, 0
	}
	s.events.Push(event.Event{Type: event.DeathBegan, ID: id})
	s.metrics.DeathBegan(enemy.DefID)
	return component.Dying, nil
}

// CompleteDeath moves a Dying enemy to Dead and schedules its removal.
// It reports whether the transition happened.
func (s *HealthSystem) CompleteDeath(id types.EntityID) bool {
	enemy, ok := s.ecs.Enemy(id)
	if !ok {
		s.logger.Debug().Uint64("entity", uint64(id)).Msg("complete death for unknown entity")
		s.metrics.Ignored("complete_unknown")
		return false
	}
	if enemy.State != component.Dying {
		s.logger.Debug().Uint64("entity", uint64(id)).Stringer("state", enemy.State).
			Msg("complete death ignored")
		s.metrics.Ignored("complete_not_dying")
		return false
	}

	enemy.State = component.Dead
	s.ecs.MarkForRemoval(id)
	return true
}

// Update counts down exit sequences of enemies whose type finishes dying
// on its own.
func (s *HealthSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, _ := s.ecs.Enemy(id)
		if enemy.State != component.Dying || enemy.ExitDuration <= 0 {
			continue
		}
		enemy.ExitTimer -= deltaTime
		if enemy.ExitTimer <= 0 {
			s.CompleteDeath(id)
		}
	}
}

// internal/system/spawn.go
package system

import (
	"fmt"
	"math"

	"go-point-defense/internal/defs"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/event"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/types"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/rs/zerolog"
)

// SpawnConfig drives the spawner.
type SpawnConfig struct {
	Interval float64 // seconds between spawn attempts
	Capacity int     // enemies per epoch
	Radius   float64 // spawn distance from the target point
	Types    []defs.EnemyDefinition
}

// Validate reports the first configuration problem, if any.
func (c SpawnConfig) Validate() error {
	switch {
	case !(c.Interval > 0) || math.IsInf(c.Interval, 1):
		return fmt.Errorf("interval %.3f: %w", c.Interval, ErrInvalidInterval)
	case c.Capacity < 0:
		return fmt.Errorf("capacity %d: %w", c.Capacity, ErrInvalidCapacity)
	case !(c.Radius >= 0) || math.IsInf(c.Radius, 1):
		return fmt.Errorf("radius %.2f: %w", c.Radius, ErrInvalidRadius)
	case len(c.Types) == 0:
		return ErrNoEnemyTypes
	}

	total := 0.0
	for _, def := range c.Types {
		if err := def.Validate(); err != nil {
			return err
		}
		total += def.Weight
	}
	if !(total > 0) || math.IsInf(total, 1) {
		return ErrInvalidWeights
	}
	return nil
}

// SpawnSystem creates enemies around the target point on a countdown, at
// most Capacity per epoch. Once the capacity is reached the countdown keeps
// running and attempts do nothing until ResetCounter starts a new epoch.
type SpawnSystem struct {
	ecs     *entity.ECS
	rng     *utils.PRNGService
	events  *event.Queue
	logger  zerolog.Logger
	metrics *metrics.Recorder

	config    SpawnConfig
	weights   []float64
	enabled   bool
	countdown float64
	spawned   int
	epoch     int
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, events *event.Queue, logger zerolog.Logger, rec *metrics.Recorder) *SpawnSystem {
	return &SpawnSystem{
		ecs:     ecs,
		rng:     rng,
		events:  events,
		logger:  logger.With().Str("system", "spawn").Logger(),
		metrics: rec,
	}
}

// Configure installs cfg and restarts the countdown. An invalid config
// disables the spawner until a valid one is installed but keeps the last
// valid one in Config; the spawned count of the current epoch is kept
// either way.
func (s *SpawnSystem) Configure(cfg SpawnConfig) error {
	if err := cfg.Validate(); err != nil {
		s.enabled = false
		s.logger.Warn().Err(err).Msg("spawner disabled")
		return err
	}

	s.config = cfg
	s.config.Types = append([]defs.EnemyDefinition(nil), cfg.Types...)
	s.weights = make([]float64, len(cfg.Types))
	for i, def := range cfg.Types {
		s.weights[i] = def.Weight
	}
	s.countdown = cfg.Interval
	s.enabled = true
	return nil
}

// Update advances the countdown. When it runs out it is reset to the
// interval and one spawn is attempted; the new enemy's id is returned.
func (s *SpawnSystem) Update(deltaTime float64, target pkgutils.Vec2) (types.EntityID, bool) {
	if !s.enabled {
		return types.NoEntity, false
	}

	s.countdown -= deltaTime
	if s.countdown > 0 {
		return types.NoEntity, false
	}
	s.countdown = s.config.Interval

	if s.spawned >= s.config.Capacity {
		return types.NoEntity, false
	}

	idx := s.rng.ChooseWeighted(s.weights)
	if idx < 0 {
		return types.NoEntity, false
	}
	def := s.config.Types[idx]
	theta := s.rng.Angle()
	at := target.Add(pkgutils.FromAngle(theta).Scale(s.config.Radius))

	id := s.ecs.CreateEnemy(def, at)
	s.spawned++

	s.events.Push(event.Event{Type: event.EntitySpawned, ID: id, Data: def.ID})
	s.metrics.Spawned(def.ID)
	s.logger.Debug().Uint64("entity", uint64(id)).Str("type", def.ID).
		Int("spawned", s.spawned).Int("epoch", s.epoch).Msg("enemy spawned")
	return id, true
}

// ResetCounter starts a new epoch. Live enemies are untouched.
func (s *SpawnSystem) ResetCounter() {
	s.spawned = 0
	s.epoch++
}

func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

func (s *SpawnSystem) Epoch() int {
	return s.epoch
}

func (s *SpawnSystem) Enabled() bool {
	return s.enabled
}

// Config returns the last valid configuration, zero if none was installed.
func (s *SpawnSystem) Config() SpawnConfig {
	return s.config
}

// Countdown is the time left until the next attempt.
func (s *SpawnSystem) Countdown() float64 {
	return s.countdown
}

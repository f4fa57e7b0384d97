// internal/app/world.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-point-defense/internal/component"
	"go-point-defense/internal/config"
	"go-point-defense/internal/defs"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/event"
	"go-point-defense/internal/metrics"
	"go-point-defense/internal/system"
	"go-point-defense/internal/types"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/rs/zerolog"
)

var (
	ErrNoTargetPoint    = errors.New("world has no target point")
	ErrTargetAlreadySet = errors.New("target point already set")
	ErrInvalidDelta     = errors.New("tick delta must be a non-negative number")
)

// maxRetainedEvents bounds the backlog kept for DrainEvents.
const maxRetainedEvents = 4096

// World owns the registry and runs one simulation tick at a time.
// It is not safe for concurrent use: the host drives it from its game loop.
type World struct {
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	HealthSystem     *system.HealthSystem
	ProjectileSystem *system.ProjectileSystem
	SpawnSystem      *system.SpawnSystem
	TurretSystem     *system.TurretSystem
	ContactSystem    *system.ContactSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	logger  zerolog.Logger
	metrics *metrics.Recorder
	events  *event.Queue
	outbox  []event.Event

	target    pkgutils.Vec2
	hasTarget bool

	turret           *component.Turret
	projectileDamage int

	// inbound requests made between ticks, consumed by the next Tick
	collisions  []system.Contact
	completions []types.EntityID
}

// Option customises a World at construction.
type Option func(*World)

func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) { w.logger = logger }
}

// WithRNG injects the random source used for spawn draws.
func WithRNG(rng *utils.PRNGService) Option {
	return func(w *World) { w.Rng = rng }
}

func WithMetrics(rec *metrics.Recorder) Option {
	return func(w *World) { w.metrics = rec }
}

// WithTarget sets the target point at construction.
func WithTarget(p pkgutils.Vec2) Option {
	return func(w *World) {
		w.target = p
		w.hasTarget = true
	}
}

func WithTurret(t component.Turret) Option {
	return func(w *World) { w.turret = &t }
}

// WithProjectileDamage sets the damage dealt by FireProjectile shots.
func WithProjectileDamage(damage int) Option {
	return func(w *World) { w.projectileDamage = damage }
}

// DefaultTurret returns a turret built from the config constants.
func DefaultTurret() component.Turret {
	return component.Turret{
		FacingOffset: config.TurretFacingOffset,
		Muzzle:       pkgutils.V(config.TurretMuzzleX, config.TurretMuzzleY),
		FireRate:     config.TurretFireRate,
		BulletSpeed:  config.TurretBulletSpeed,
		Lifetime:     config.TurretLifetime,
		MaxRange:     config.TurretMaxRange,
		Damage:       config.TurretDamage,
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		logger:           zerolog.Nop(),
		projectileDamage: config.TurretDamage,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.Rng == nil {
		w.Rng = utils.NewPRNGService(0)
	}
	if w.turret == nil {
		t := DefaultTurret()
		w.turret = &t
	}

	ecs := entity.NewECS()
	ecs.Turret = w.turret
	ecs.TurretID = ecs.NewEntity()

	w.ECS = ecs
	w.events = &event.Queue{}
	w.EventDispatcher = event.NewDispatcher()
	w.MovementSystem = system.NewMovementSystem(ecs)
	w.HealthSystem = system.NewHealthSystem(ecs, w.events, w.logger, w.metrics)
	w.ProjectileSystem = system.NewProjectileSystem(ecs, w.HealthSystem, w.events, w.logger, w.metrics)
	w.SpawnSystem = system.NewSpawnSystem(ecs, w.Rng, w.events, w.logger, w.metrics)
	w.TurretSystem = system.NewTurretSystem(ecs, w.ProjectileSystem, w.logger)
	w.ContactSystem = system.NewContactSystem(ecs)
	return w
}

// SetTargetPoint fixes the point every enemy steers toward. It can be set
// only once per world.
func (w *World) SetTargetPoint(p pkgutils.Vec2) error {
	if w.hasTarget {
		return ErrTargetAlreadySet
	}
	w.target = p
	w.hasTarget = true
	return nil
}

func (w *World) TargetPoint() (pkgutils.Vec2, bool) {
	return w.target, w.hasTarget
}

// ConfigureSpawner installs a spawn configuration. On error the spawner
// stops spawning until a valid configuration arrives.
func (w *World) ConfigureSpawner(cfg system.SpawnConfig) error {
	if err := w.SpawnSystem.Configure(cfg); err != nil {
		return fmt.Errorf("configure spawner: %w", err)
	}
	return nil
}

// FireProjectile creates a projectile right away; it is moved, expired and
// resolved by the following ticks.
func (w *World) FireProjectile(origin, aim pkgutils.Vec2, speed, lifetime, maxRange float64) (types.EntityID, error) {
	return w.ProjectileSystem.Fire(system.Shot{
		Origin:   origin,
		Aim:      aim,
		Speed:    speed,
		Lifetime: lifetime,
		MaxRange: maxRange,
		Damage:   w.projectileDamage,
	})
}

// ReportCollision queues a contact for the next tick.
func (w *World) ReportCollision(projectileID, entityID types.EntityID) {
	w.collisions = append(w.collisions, system.Contact{ProjectileID: projectileID, EntityID: entityID})
}

// CompleteDeath queues the end of an enemy's exit sequence for the next tick.
func (w *World) CompleteDeath(id types.EntityID) {
	w.completions = append(w.completions, id)
}

// ResetCounter starts a new spawn epoch.
func (w *World) ResetCounter() {
	w.SpawnSystem.ResetCounter()
}

// StartWave opens a new epoch tuned by wave, keeping the current roster
// and spawn radius. A rejected wave leaves the epoch and spawner untouched.
func (w *World) StartWave(wave defs.WaveDefinition) error {
	cfg := w.SpawnSystem.Config()
	cfg.Capacity = wave.Capacity
	cfg.Interval = wave.Interval
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("start wave: %w", err)
	}
	w.ResetCounter()
	return w.ConfigureSpawner(cfg)
}

func (w *World) AimTurret(p pkgutils.Vec2) {
	if w.hasTarget {
		w.TurretSystem.Aim(w.target, p)
	}
}

// TriggerTurret aims and requests a shot; the fire rate decides whether
// the next tick actually fires.
func (w *World) TriggerTurret(p pkgutils.Vec2) {
	if w.hasTarget {
		w.TurretSystem.Trigger(w.target, p)
	}
}

// DetectContacts runs the built-in overlap test, for hosts with no
// physics engine of their own.
func (w *World) DetectContacts() []system.Contact {
	return w.ContactSystem.Detect()
}

// Subscribe registers a listener for notifications. Listeners run after the
// tick's sweep and may call back into the World.
func (w *World) Subscribe(eventType event.EventType, listener event.Listener) {
	w.EventDispatcher.Subscribe(eventType, listener)
}

// DrainEvents returns the notifications dispatched since the last call.
func (w *World) DrainEvents() []event.Event {
	out := w.outbox
	w.outbox = nil
	return out
}

// Tick advances the simulation by deltaTime seconds:
//  1. spawn
//  2. turret, enemy movement, projectile motion
//  3. queued collisions
//  4. death completions and exit countdowns, projectile expiry
//  5. sweep of everything marked for removal
//
// Without a target point only projectiles advance and ErrNoTargetPoint is
// returned.
func (w *World) Tick(deltaTime float64) error {
	if deltaTime < 0 || math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		return fmt.Errorf("dt %v: %w", deltaTime, ErrInvalidDelta)
	}
	w.ECS.GameTime += deltaTime

	var err error
	if w.hasTarget {
		w.SpawnSystem.Update(deltaTime, w.target)
		w.TurretSystem.Update(deltaTime, w.target)
		w.MovementSystem.Update(deltaTime, w.target)
	} else {
		err = ErrNoTargetPoint
	}
	w.ProjectileSystem.Update(deltaTime)

	collisions := w.collisions
	w.collisions = nil
	for _, c := range collisions {
		w.ProjectileSystem.Resolve(c.ProjectileID, c.EntityID)
	}

	completions := w.completions
	w.completions = nil
	for _, id := range completions {
		w.HealthSystem.CompleteDeath(id)
	}
	w.HealthSystem.Update(deltaTime)
	w.ProjectileSystem.Expire(deltaTime)

	for _, r := range w.ECS.Sweep() {
		if r.Projectile {
			w.events.Push(event.Event{Type: event.ProjectileRemoved, ID: r.ID, Data: r.Outcome})
		} else {
			w.events.Push(event.Event{Type: event.EntityRemoved, ID: r.ID})
		}
	}

	w.flush()
	return err
}

func (w *World) flush() {
	for _, e := range w.events.Drain() {
		w.EventDispatcher.Dispatch(e)
		w.outbox = append(w.outbox, e)
	}
	if n := len(w.outbox) - maxRetainedEvents; n > 0 {
		w.logger.Debug().Int("dropped", n).Msg("event backlog trimmed")
		w.outbox = append([]event.Event(nil), w.outbox[n:]...)
	}
}

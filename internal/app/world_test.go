package app

import (
	"math"
	"testing"

	"go-point-defense/internal/component"
	"go-point-defense/internal/defs"
	"go-point-defense/internal/event"
	"go-point-defense/internal/system"
	"go-point-defense/internal/types"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drone(health int, exit float64) defs.EnemyDefinition {
	return defs.EnemyDefinition{
		ID:           "DRONE",
		MaxHealth:    health,
		Speed:        60,
		Weight:       1,
		ExitDuration: exit,
		Visuals:      defs.Visuals{Radius: 10},
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(WithRNG(utils.NewPRNGService(7)))
	require.NoError(t, w.SetTargetPoint(pkgutils.V(0, 0)))
	return w
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func TestSpawnScenario(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1.0,
		Capacity: 1,
		Radius:   600,
		Types:    []defs.EnemyDefinition{drone(3, 0)},
	}))

	require.NoError(t, w.Tick(0.9))
	assert.Empty(t, w.Snapshot().Entities)

	require.NoError(t, w.Tick(0.2))
	snap := w.Snapshot()
	require.Len(t, snap.Entities, 1)
	assert.InDelta(t, 600.0, snap.Entities[0].Position.Len(), 1e-6)
	assert.Equal(t, component.Alive, snap.Entities[0].State)
	assert.Equal(t, 1, snap.Spawned)

	require.NoError(t, w.Tick(5.0))
	assert.Len(t, w.Snapshot().Entities, 1)
	assert.Equal(t, 1, w.SpawnSystem.Spawned())
}

func TestResetCounterStartsNewEpoch(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1.0, Capacity: 1, Radius: 600, Types: []defs.EnemyDefinition{drone(3, 0)},
	}))

	require.NoError(t, w.Tick(1.0))
	require.NoError(t, w.Tick(1.0))
	assert.Equal(t, 1, w.ECS.EnemyCount())

	w.ResetCounter()
	assert.Equal(t, 1, w.Snapshot().Epoch)
	require.NoError(t, w.Tick(1.0))
	assert.Equal(t, 2, w.ECS.EnemyCount())
	assert.Equal(t, 1, w.SpawnSystem.Spawned())
}

func TestMovementScenario(t *testing.T) {
	w := NewWorld(WithTarget(pkgutils.V(100, 0)))
	def := drone(3, 0)
	def.OrientationOffset = math.Pi / 2
	id := w.ECS.CreateEnemy(def, pkgutils.V(0, 0))
	enemy, _ := w.ECS.Enemy(id)
	enemy.JustSpawned = false

	require.NoError(t, w.Tick(0.5))

	snap := w.Snapshot()
	require.Len(t, snap.Entities, 1)
	assert.InDelta(t, 30.0, snap.Entities[0].Position.X, 1e-9)
	assert.InDelta(t, 0.0, snap.Entities[0].Position.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, snap.Entities[0].Orientation, 1e-9)
}

func TestDamageScenario(t *testing.T) {
	w := newTestWorld(t)
	id := w.ECS.CreateEnemy(drone(10, 0), pkgutils.V(300, 0))

	state, err := w.HealthSystem.ApplyDamage(id, 4)
	require.NoError(t, err)
	assert.Equal(t, component.Alive, state)
	assert.Equal(t, 6, w.ECS.Health(id).Current)

	state, err = w.HealthSystem.ApplyDamage(id, 10)
	require.NoError(t, err)
	assert.Equal(t, component.Dying, state)
	assert.Equal(t, 0, w.ECS.Health(id).Current)

	rec := &recorder{}
	w.Subscribe(event.DeathBegan, rec)
	require.NoError(t, w.Tick(0.1))
	assert.Len(t, rec.events, 1)
}

func TestProjectileResolvesOnceAcrossContacts(t *testing.T) {
	w := newTestWorld(t)
	a := w.ECS.CreateEnemy(drone(10, 0), pkgutils.V(100, 0))
	b := w.ECS.CreateEnemy(drone(10, 0), pkgutils.V(100, 5))

	pid, err := w.FireProjectile(pkgutils.V(90, 0), pkgutils.V(200, 0), 800, 5, 3000)
	require.NoError(t, err)

	w.ReportCollision(pid, a)
	w.ReportCollision(pid, a)
	w.ReportCollision(pid, b)
	require.NoError(t, w.Tick(0.01))

	assert.Equal(t, 9, w.ECS.Health(a).Current)
	assert.Equal(t, 10, w.ECS.Health(b).Current)
	_, ok := w.ECS.Projectile(pid)
	assert.False(t, ok)

	var removed []event.Event
	for _, e := range w.DrainEvents() {
		if e.Type == event.ProjectileRemoved {
			removed = append(removed, e)
		}
	}
	require.Len(t, removed, 1)
	assert.Equal(t, component.OutcomeHit, removed[0].Data)
}

func TestContactWithDeadEntityKeepsProjectile(t *testing.T) {
	w := newTestWorld(t)
	pid, err := w.FireProjectile(pkgutils.V(10, 0), pkgutils.V(20, 0), 800, 5, 3000)
	require.NoError(t, err)

	w.ReportCollision(pid, types.EntityID(999))
	require.NoError(t, w.Tick(0.01))

	proj, ok := w.ECS.Projectile(pid)
	require.True(t, ok)
	assert.False(t, proj.Resolved)
}

func TestProjectileExpiry(t *testing.T) {
	w := newTestWorld(t)
	short, err := w.FireProjectile(pkgutils.V(0, 0), pkgutils.V(1, 0), 100, 0.5, 3000)
	require.NoError(t, err)
	far, err := w.FireProjectile(pkgutils.V(0, 0), pkgutils.V(0, 1), 100, 10, 50)
	require.NoError(t, err)

	require.NoError(t, w.Tick(0.6))

	outcomes := map[types.EntityID]interface{}{}
	for _, e := range w.DrainEvents() {
		if e.Type == event.ProjectileRemoved {
			outcomes[e.ID] = e.Data
		}
	}
	assert.Equal(t, component.OutcomeExpired, outcomes[short])
	assert.Equal(t, component.OutcomeOutOfRange, outcomes[far])
	assert.Equal(t, 0, w.ECS.ProjectileCount())
}

func TestFireProjectileRejectsBadInput(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.FireProjectile(pkgutils.V(0, 0), pkgutils.V(0, 0), 100, 1, 100)
	assert.ErrorIs(t, err, system.ErrInvalidProjectile)
	_, err = w.FireProjectile(pkgutils.V(0, 0), pkgutils.V(1, 0), 0, 1, 100)
	assert.ErrorIs(t, err, system.ErrInvalidProjectile)
	assert.Equal(t, 0, w.ECS.ProjectileCount())
}

func TestDeathNotificationOrder(t *testing.T) {
	w := newTestWorld(t)
	id := w.ECS.CreateEnemy(drone(1, 0), pkgutils.V(300, 0))
	pid, err := w.FireProjectile(pkgutils.V(290, 0), pkgutils.V(300, 0), 800, 5, 3000)
	require.NoError(t, err)

	rec := &recorder{}
	for _, et := range []event.EventType{event.ProjectileFired, event.DeathBegan, event.EntityRemoved, event.ProjectileRemoved} {
		w.Subscribe(et, rec)
	}

	w.ReportCollision(pid, id)
	require.NoError(t, w.Tick(0.01))
	assert.Equal(t, []event.EventType{event.ProjectileFired, event.DeathBegan, event.ProjectileRemoved}, rec.types())

	enemy, ok := w.ECS.Enemy(id)
	require.True(t, ok, "dying enemy waits for CompleteDeath")
	assert.Equal(t, component.Dying, enemy.State)

	w.CompleteDeath(id)
	require.NoError(t, w.Tick(0.01))
	_, ok = w.ECS.Enemy(id)
	assert.False(t, ok)
	assert.Equal(t, event.EntityRemoved, rec.events[len(rec.events)-1].Type)
}

func TestExitDurationCompletesDeath(t *testing.T) {
	w := newTestWorld(t)
	id := w.ECS.CreateEnemy(drone(1, 0.3), pkgutils.V(300, 0))
	_, err := w.HealthSystem.ApplyDamage(id, 1)
	require.NoError(t, err)

	require.NoError(t, w.Tick(0.2))
	_, ok := w.ECS.Enemy(id)
	assert.True(t, ok)

	require.NoError(t, w.Tick(0.2))
	_, ok = w.ECS.Enemy(id)
	assert.False(t, ok)
}

func TestCompleteDeathOnAliveIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	id := w.ECS.CreateEnemy(drone(5, 0), pkgutils.V(300, 0))
	w.CompleteDeath(id)
	require.NoError(t, w.Tick(0.1))

	enemy, ok := w.ECS.Enemy(id)
	require.True(t, ok)
	assert.Equal(t, component.Alive, enemy.State)
}

func TestTickErrors(t *testing.T) {
	w := NewWorld()
	assert.ErrorIs(t, w.Tick(-1), ErrInvalidDelta)
	assert.ErrorIs(t, w.Tick(math.NaN()), ErrInvalidDelta)

	pid, err := w.FireProjectile(pkgutils.V(0, 0), pkgutils.V(1, 0), 100, 5, 3000)
	require.NoError(t, err)
	assert.ErrorIs(t, w.Tick(0.1), ErrNoTargetPoint)
	assert.InDelta(t, 10.0, w.ECS.Position(pid).X, 1e-9)

	require.NoError(t, w.SetTargetPoint(pkgutils.V(1, 1)))
	assert.ErrorIs(t, w.SetTargetPoint(pkgutils.V(2, 2)), ErrTargetAlreadySet)
	assert.NoError(t, w.Tick(0.1))
}

func TestInvalidSpawnerConfigDisablesSpawning(t *testing.T) {
	w := newTestWorld(t)
	err := w.ConfigureSpawner(system.SpawnConfig{Interval: 0, Capacity: 3, Radius: 600, Types: []defs.EnemyDefinition{drone(3, 0)}})
	assert.ErrorIs(t, err, system.ErrInvalidInterval)

	err = w.ConfigureSpawner(system.SpawnConfig{Interval: 1, Capacity: 3, Radius: 600})
	assert.ErrorIs(t, err, system.ErrNoEnemyTypes)

	require.NoError(t, w.Tick(10))
	assert.Equal(t, 0, w.ECS.EnemyCount())
}

func TestTurretFiresFromMuzzle(t *testing.T) {
	w := newTestWorld(t)
	w.TriggerTurret(pkgutils.V(0, 100))
	require.NoError(t, w.Tick(0.01))

	snap := w.Snapshot()
	require.Len(t, snap.Projectiles, 1)
	// muzzle (30,0) rotated to face +Y
	assert.InDelta(t, 0.0, snap.Projectiles[0].Position.X, 1e-6)
	assert.InDelta(t, 30.0+800*0.01, snap.Projectiles[0].Position.Y, 1e-6)

	// fire rate holds the next shot back
	w.TriggerTurret(pkgutils.V(0, 100))
	require.NoError(t, w.Tick(0.01))
	assert.Len(t, w.Snapshot().Projectiles, 1)
}

func TestStartWave(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1, Capacity: 1, Radius: 600, Types: []defs.EnemyDefinition{drone(3, 0)},
	}))
	require.NoError(t, w.Tick(1))
	require.NoError(t, w.StartWave(defs.WaveDefinition{Capacity: 2, Interval: 0.5}))

	assert.Equal(t, 1, w.SpawnSystem.Epoch())
	assert.Equal(t, 0, w.SpawnSystem.Spawned())
	for i := 0; i < 4; i++ {
		require.NoError(t, w.Tick(0.5))
	}
	assert.Equal(t, 3, w.ECS.EnemyCount())

	w2 := newTestWorld(t)
	assert.ErrorIs(t, w2.StartWave(defs.WaveDefinition{Capacity: 2, Interval: 0.5}), system.ErrNoEnemyTypes)
}

func TestRejectedWaveKeepsEpochAndRoster(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1, Capacity: 1, Radius: 600, Types: []defs.EnemyDefinition{drone(3, 0)},
	}))
	require.NoError(t, w.Tick(1))
	require.Equal(t, 1, w.SpawnSystem.Spawned())

	err := w.StartWave(defs.WaveDefinition{Capacity: 3, Interval: 0})
	assert.ErrorIs(t, err, system.ErrInvalidInterval)
	assert.Equal(t, 0, w.SpawnSystem.Epoch())
	assert.Equal(t, 1, w.SpawnSystem.Spawned())
	assert.True(t, w.SpawnSystem.Enabled())

	require.NoError(t, w.StartWave(defs.WaveDefinition{Capacity: 3, Interval: 1}))
	assert.Equal(t, 1, w.SpawnSystem.Epoch())
	assert.Equal(t, 0, w.SpawnSystem.Spawned())
	require.NoError(t, w.Tick(1))
	assert.Equal(t, 2, w.ECS.EnemyCount())
}

func TestRejectedConfigThenWaveRecovers(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1, Capacity: 1, Radius: 600, Types: []defs.EnemyDefinition{drone(3, 0)},
	}))
	require.Error(t, w.ConfigureSpawner(system.SpawnConfig{
		Interval: 1, Capacity: 1, Radius: math.NaN(), Types: []defs.EnemyDefinition{drone(3, 0)},
	}))
	require.NoError(t, w.Tick(5))
	assert.Equal(t, 0, w.ECS.EnemyCount())

	require.NoError(t, w.StartWave(defs.WaveDefinition{Capacity: 1, Interval: 1}))
	require.NoError(t, w.Tick(1))
	snap := w.Snapshot()
	require.Len(t, snap.Entities, 1)
	assert.InDelta(t, 600.0, snap.Entities[0].Position.Len(), 1e-6)
}

func TestTurretSnapshotHeading(t *testing.T) {
	turret := DefaultTurret()
	turret.FacingOffset = 0.3
	w := NewWorld(WithTarget(pkgutils.V(0, 0)), WithTurret(turret))
	w.AimTurret(pkgutils.V(100, 0))

	snap := w.Snapshot()
	require.NotNil(t, snap.Turret)
	assert.InDelta(t, 0.3, snap.Turret.FacingOffset, 1e-9)
	assert.InDelta(t, 0.0, snap.Turret.Heading(), 1e-9)
}

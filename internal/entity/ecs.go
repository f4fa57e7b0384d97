// internal/entity/ecs.go
package entity

import (
	"go-point-defense/internal/component"
	"go-point-defense/internal/defs"
	"go-point-defense/internal/types"
	"go-point-defense/pkg/utils"

	"github.com/kamstrup/intmap"
)

const initialCapacity = 64

// ECS is the registry: the only owner of live enemies and projectiles.
// Removal is deferred: systems mark ids during a tick and Sweep deletes
// them afterwards, so nothing is freed while it is being iterated.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   *intmap.Map[types.EntityID, *component.Position]
	Velocities  *intmap.Map[types.EntityID, *component.Velocity]
	Healths     *intmap.Map[types.EntityID, *component.Health]
	Renderables *intmap.Map[types.EntityID, *component.Renderable]
	Enemies     *intmap.Map[types.EntityID, *component.Enemy]
	Projectiles *intmap.Map[types.EntityID, *component.Projectile]
	Turret      *component.Turret
	TurretID    types.EntityID

	// live ids in creation order, for stable iteration and snapshots
	order    []types.EntityID
	marked   *intmap.Map[types.EntityID, struct{}]
	removals []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   intmap.New[types.EntityID, *component.Position](initialCapacity),
		Velocities:  intmap.New[types.EntityID, *component.Velocity](initialCapacity),
		Healths:     intmap.New[types.EntityID, *component.Health](initialCapacity),
		Renderables: intmap.New[types.EntityID, *component.Renderable](initialCapacity),
		Enemies:     intmap.New[types.EntityID, *component.Enemy](initialCapacity),
		Projectiles: intmap.New[types.EntityID, *component.Projectile](initialCapacity),
		marked:      intmap.New[types.EntityID, struct{}](initialCapacity),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CreateEnemy adds an Alive enemy of the given type at full health.
func (ecs *ECS) CreateEnemy(def defs.EnemyDefinition, at utils.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions.Put(id, &component.Position{X: at.X, Y: at.Y})
	ecs.Velocities.Put(id, &component.Velocity{})
	ecs.Healths.Put(id, &component.Health{Current: def.MaxHealth, Max: def.MaxHealth})
	ecs.Renderables.Put(id, &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Visuals.Radius),
	})
	ecs.Enemies.Put(id, &component.Enemy{
		DefID:             def.ID,
		Speed:             def.Speed,
		OrientationOffset: def.OrientationOffset,
		State:             component.Alive,
		ExitDuration:      def.ExitDuration,
		JustSpawned:       true,
	})
	ecs.order = append(ecs.order, id)
	return id
}

// CreateProjectile adds a projectile at pos moving with vel.
func (ecs *ECS) CreateProjectile(proj component.Projectile, pos, vel utils.Vec2, look component.Renderable) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions.Put(id, &component.Position{X: pos.X, Y: pos.Y})
	ecs.Velocities.Put(id, &component.Velocity{X: vel.X, Y: vel.Y})
	ecs.Renderables.Put(id, &look)
	ecs.Projectiles.Put(id, &proj)
	ecs.order = append(ecs.order, id)
	return id
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return ecs.Enemies.Get(id)
}

func (ecs *ECS) Projectile(id types.EntityID) (*component.Projectile, bool) {
	return ecs.Projectiles.Get(id)
}

func (ecs *ECS) Position(id types.EntityID) *component.Position {
	p, _ := ecs.Positions.Get(id)
	return p
}

func (ecs *ECS) Velocity(id types.EntityID) *component.Velocity {
	v, _ := ecs.Velocities.Get(id)
	return v
}

func (ecs *ECS) Health(id types.EntityID) *component.Health {
	h, _ := ecs.Healths.Get(id)
	return h
}

func (ecs *ECS) Renderable(id types.EntityID) *component.Renderable {
	r, _ := ecs.Renderables.Get(id)
	return r
}

// EnemyIDs returns live enemy ids in creation order. The slice is a copy,
// safe to hold while the registry changes.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	out := make([]types.EntityID, 0, ecs.Enemies.Len())
	for _, id := range ecs.order {
		if _, ok := ecs.Enemies.Get(id); ok {
			out = append(out, id)
		}
	}
	return out
}

// ProjectileIDs returns live projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	out := make([]types.EntityID, 0, ecs.Projectiles.Len())
	for _, id := range ecs.order {
		if _, ok := ecs.Projectiles.Get(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (ecs *ECS) EnemyCount() int {
	return ecs.Enemies.Len()
}

func (ecs *ECS) ProjectileCount() int {
	return ecs.Projectiles.Len()
}

// MarkForRemoval schedules id for the next Sweep. Marking twice is a no-op.
// It reports whether this call did the marking.
func (ecs *ECS) MarkForRemoval(id types.EntityID) bool {
	if _, ok := ecs.marked.Get(id); ok {
		return false
	}
	ecs.marked.Put(id, struct{}{})
	ecs.removals = append(ecs.removals, id)
	return true
}

func (ecs *ECS) IsMarked(id types.EntityID) bool {
	_, ok := ecs.marked.Get(id)
	return ok
}

// Removal describes one id deleted by Sweep.
type Removal struct {
	ID         types.EntityID
	Projectile bool
	Outcome    component.Outcome
}

// Sweep deletes every marked id from all stores and returns what was
// removed, in marking order.
func (ecs *ECS) Sweep() []Removal {
	if len(ecs.removals) == 0 {
		return nil
	}

	removed := make([]Removal, 0, len(ecs.removals))
	for _, id := range ecs.removals {
		r := Removal{ID: id}
		if proj, ok := ecs.Projectiles.Get(id); ok {
			r.Projectile = true
			r.Outcome = proj.Outcome
		} else if _, ok := ecs.Enemies.Get(id); !ok {
			continue
		}
		ecs.Positions.Del(id)
		ecs.Velocities.Del(id)
		ecs.Healths.Del(id)
		ecs.Renderables.Del(id)
		ecs.Enemies.Del(id)
		ecs.Projectiles.Del(id)
		removed = append(removed, r)
	}

	live := ecs.order[:0]
	for _, id := range ecs.order {
		if _, gone := ecs.marked.Get(id); !gone {
			live = append(live, id)
		}
	}
	ecs.order = live

	ecs.marked = intmap.New[types.EntityID, struct{}](initialCapacity)
	ecs.removals = ecs.removals[:0]
	return removed
}

// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-point-defense/internal/component"
	"go-point-defense/internal/types"
	pkgutils "go-point-defense/pkg/utils"
)

// EntitySnapshot is the read-only view of one enemy.
type EntitySnapshot struct {
	ID             types.EntityID
	DefID          string
	Position       pkgutils.Vec2
	Orientation    float64
	HealthFraction float64
	Band           component.HealthBand
	State          component.LifeState
	Radius         float64
	Color          color.RGBA
}

type ProjectileSnapshot struct {
	ID          types.EntityID
	Position    pkgutils.Vec2
	Orientation float64
	Radius      float64
}

type TurretSnapshot struct {
	Position     pkgutils.Vec2
	Orientation  float64
	FacingOffset float64
	Cooldown     float64
}

// Heading is the raw aim angle, with the sprite facing offset removed.
func (t TurretSnapshot) Heading() float64 {
	return t.Orientation - t.FacingOffset
}

// Snapshot is what a presentation layer needs to draw one frame.
type Snapshot struct {
	Time        float64
	Target      pkgutils.Vec2
	HasTarget   bool
	Entities    []EntitySnapshot
	Projectiles []ProjectileSnapshot
	Turret      *TurretSnapshot
	Spawned     int
	Epoch       int
}

// Snapshot copies the current state; later ticks do not change it.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Time:      w.ECS.GameTime,
		Target:    w.target,
		HasTarget: w.hasTarget,
		Spawned:   w.SpawnSystem.Spawned(),
		Epoch:     w.SpawnSystem.Epoch(),
	}

	for _, id := range w.ECS.EnemyIDs() {
		enemy, _ := w.ECS.Enemy(id)
		pos := w.ECS.Position(id)
		if pos == nil {
			continue
		}
		es := EntitySnapshot{
			ID:          id,
			DefID:       enemy.DefID,
			Position:    pos.Vec(),
			Orientation: enemy.Orientation,
			State:       enemy.State,
		}
		if h := w.ECS.Health(id); h != nil {
			es.HealthFraction = h.Fraction()
			es.Band = component.BandOf(es.HealthFraction)
		}
		if r := w.ECS.Renderable(id); r != nil {
			es.Radius = float64(r.Radius)
			es.Color = r.Color
		}
		snap.Entities = append(snap.Entities, es)
	}

	for _, id := range w.ECS.ProjectileIDs() {
		proj, _ := w.ECS.Projectile(id)
		pos := w.ECS.Position(id)
		if pos == nil || proj.Resolved {
			continue
		}
		ps := ProjectileSnapshot{ID: id, Position: pos.Vec(), Orientation: proj.Orientation}
		if r := w.ECS.Renderable(id); r != nil {
			ps.Radius = float64(r.Radius)
		}
		snap.Projectiles = append(snap.Projectiles, ps)
	}

	if t := w.ECS.Turret; t != nil && w.hasTarget {
		snap.Turret = &TurretSnapshot{
			Position:     w.target,
			Orientation:  t.Orientation,
			FacingOffset: t.FacingOffset,
			Cooldown:     t.Cooldown,
		}
	}
	return snap
}

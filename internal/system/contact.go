// internal/system/contact.go
package system

import (
	"go-point-defense/internal/component"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/types"
)

// Contact is one overlap between a projectile and an enemy.
type Contact struct {
	ProjectileID types.EntityID
	EntityID     types.EntityID
}

// ContactSystem stands in for a physics engine: it reports every
// projectile/enemy circle overlap. A projectile touching two enemies yields
// two contacts; deciding which one counts is the projectile system's job.
type ContactSystem struct {
	ecs *entity.ECS
}

func NewContactSystem(ecs *entity.ECS) *ContactSystem {
	return &ContactSystem{ecs: ecs}
}

// Detect returns the current overlaps, projectiles and enemies in creation order.
func (s *ContactSystem) Detect() []Contact {
	var contacts []Contact
	enemies := s.ecs.EnemyIDs()
	for _, pid := range s.ecs.ProjectileIDs() {
		proj, _ := s.ecs.Projectile(pid)
		ppos, plook := s.ecs.Position(pid), s.ecs.Renderable(pid)
		if proj.Resolved || ppos == nil || plook == nil {
			continue
		}
		for _, eid := range enemies {
			enemy, _ := s.ecs.Enemy(eid)
			epos, elook := s.ecs.Position(eid), s.ecs.Renderable(eid)
			if enemy.State == component.Dead || epos == nil || elook == nil {
				continue
			}
			if ppos.Vec().Dist(epos.Vec()) <= float64(plook.Radius+elook.Radius) {
				contacts = append(contacts, Contact{ProjectileID: pid, EntityID: eid})
			}
		}
	}
	return contacts
}

// internal/system/movement.go
package system

import (
	"go-point-defense/internal/component"
	"go-point-defense/internal/entity"
	"go-point-defense/internal/utils"
	pkgutils "go-point-defense/pkg/utils"
)

// MovementSystem steers every living enemy straight at the target point.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Advance moves one enemy toward target for deltaTime seconds and updates
// its heading. When the enemy already sits on the target nothing changes.
func Advance(enemy *component.Enemy, pos *component.Position, vel *component.Velocity, target pkgutils.Vec2, deltaTime float64) {
	dir, ok := target.Sub(pos.Vec()).Normalized()
	if !ok || enemy.Speed <= 0 {
		vel.X, vel.Y = 0, 0
		return
	}

	v := dir.Scale(enemy.Speed)
	vel.Set(v)
	if pos.Vec().Dist(target) <= enemy.Speed*deltaTime {
		// no overshoot: park on the target
		pos.Set(target)
	} else {
		pos.Set(pos.Vec().Add(v.Scale(deltaTime)))
	}
	enemy.Orientation = utils.NormalizeAngle(dir.Angle() + enemy.OrientationOffset)
}

func (s *MovementSystem) Update(deltaTime float64, target pkgutils.Vec2) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, _ := s.ecs.Enemy(id)
		if enemy.State != component.Alive {
			continue
		}
		if enemy.JustSpawned {
			enemy.JustSpawned = false
			continue
		}
		pos, vel := s.ecs.Position(id), s.ecs.Velocity(id)
		if pos == nil || vel == nil {
			continue
		}
		Advance(enemy, pos, vel, target, deltaTime)
	}
}

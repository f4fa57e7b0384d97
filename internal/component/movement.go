// internal/component/movement.go
package component

import "go-point-defense/pkg/utils"

// Position is a world position in pixels.
type Position struct {
	X, Y float64
}

func (p *Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

func (p *Position) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity is a displacement per second.
type Velocity struct {
	X, Y float64
}

func (v *Velocity) Vec() utils.Vec2 {
	return utils.Vec2{X: v.X, Y: v.Y}
}

func (v *Velocity) Set(u utils.Vec2) {
	v.X, v.Y = u.X, u.Y
}

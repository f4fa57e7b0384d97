// internal/defs/types.go
package defs

import "image/color"

// AttackType defines the type of damage dealt.
type AttackType string

const (
	AttackPhysical AttackType = "PHYSICAL"
	AttackMagical  AttackType = "MAGICAL"
	AttackPure     AttackType = "PURE"
)

// Visuals contains parameters for drawing an entity.
type Visuals struct {
	Color  color.RGBA `json:"color" mapstructure:"color"`
	Radius float64    `json:"radius" mapstructure:"radius"`
}

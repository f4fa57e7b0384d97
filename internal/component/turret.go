// internal/component/turret.go
package component

import "go-point-defense/pkg/utils"

// Turret is the gun mounted on the defended point.
type Turret struct {
	// FacingOffset is added to the aim angle for sprites drawn facing up.
	FacingOffset float64
	// Muzzle is the barrel tip relative to the turret, before rotation.
	Muzzle      utils.Vec2
	FireRate    float64 // seconds between shots
	Cooldown    float64 // seconds until the next shot is allowed
	BulletSpeed float64
	Lifetime    float64
	MaxRange    float64
	Damage      int
	Orientation float64
	// Aim is the last point the turret was aimed at.
	Aim utils.Vec2
	// Triggered requests a shot at Aim on the next tick.
	Triggered bool
}

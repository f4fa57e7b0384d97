// internal/component/projectile.go
package component

import (
	"go-point-defense/internal/types"
	"go-point-defense/pkg/utils"
)

// Outcome records why a projectile was resolved.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeHit        Outcome = "hit"
	OutcomeExpired    Outcome = "expired"
	OutcomeOutOfRange Outcome = "out_of_range"
)

// Projectile is a fixed-speed shot that resolves exactly once.
type Projectile struct {
	OwnerID           types.EntityID
	Origin            utils.Vec2
	Speed             float64
	Damage            int
	RemainingLifetime float64
	MaxRange          float64
	Orientation       float64
	// Resolved is set the moment a hit or expiry is processed; nothing
	// touches the projectile's effects after that.
	Resolved bool
	Outcome  Outcome
}

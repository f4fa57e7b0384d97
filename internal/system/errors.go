package system

import (
	"errors"

	"go-point-defense/internal/defs"
)

// Configuration errors leave the affected system as a no-op.
var (
	ErrNoEnemyTypes    = errors.New("spawner has no enemy types")
	ErrInvalidInterval = errors.New("spawn interval must be positive and finite")
	ErrInvalidCapacity = errors.New("spawn capacity must not be negative")
	ErrInvalidRadius   = errors.New("spawn radius must be finite and not negative")
	ErrInvalidWeights  = errors.New("enemy type weights must sum to a positive value")
	ErrInvalidSpeed    = defs.ErrInvalidSpeed
)

// Rejected inputs: the call fails without touching state.
var (
	ErrNegativeDamage    = errors.New("damage must not be negative")
	ErrInvalidProjectile = errors.New("invalid projectile parameters")
	ErrUnknownEntity     = errors.New("unknown entity")
)

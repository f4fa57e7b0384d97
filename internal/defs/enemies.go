// internal/defs/enemies.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

var (
	ErrMissingID     = errors.New("enemy definition has no id")
	ErrInvalidSpeed  = errors.New("enemy speed must be positive")
	ErrInvalidHealth = errors.New("enemy max health must be positive")
	ErrInvalidWeight = errors.New("enemy weight must be finite and not negative")
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Adding an enemy type is a data change: nothing else needs to know about it.
type EnemyDefinition struct {
	ID        string  `json:"id" mapstructure:"id"`
	Name      string  `json:"name" mapstructure:"name"`
	MaxHealth int     `json:"max_health" mapstructure:"max_health"`
	Speed     float64 `json:"speed" mapstructure:"speed"`
	// Weight is the relative chance of this type in a spawn draw.
	Weight float64 `json:"weight" mapstructure:"weight"`
	// OrientationOffset is added to the heading so sprites drawn facing
	// another axis line up with the direction of travel.
	OrientationOffset float64    `json:"orientation_offset" mapstructure:"orientation_offset"`
	DamageType        AttackType `json:"damage_type" mapstructure:"damage_type"`
	// ExitDuration is how long a dying enemy lingers before it is marked dead.
	// Zero waits for an explicit CompleteDeath from the host.
	ExitDuration float64 `json:"exit_duration" mapstructure:"exit_duration"`
	Visuals      Visuals `json:"visuals" mapstructure:"visuals"`
}

// Validate checks the numeric fields the simulation relies on.
func (d EnemyDefinition) Validate() error {
	switch {
	case d.ID == "":
		return ErrMissingID
	case !(d.Speed > 0) || math.IsInf(d.Speed, 0):
		return fmt.Errorf("%s: %w", d.ID, ErrInvalidSpeed)
	case d.MaxHealth <= 0:
		return fmt.Errorf("%s: %w", d.ID, ErrInvalidHealth)
	case !(d.Weight >= 0) || math.IsInf(d.Weight, 1):
		return fmt.Errorf("%s: %w", d.ID, ErrInvalidWeight)
	}
	return nil
}

// Library maps enemy definitions by their ID.
type Library map[string]EnemyDefinition

// List returns the definitions sorted by ID so weighted draws are stable
// for a given seed.
func (l Library) List() []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(l))
	for _, def := range l {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DefaultLibrary returns the stock enemy roster.
func DefaultLibrary() Library {
	return Library{
		"ENEMY_GRUNT": {
			ID:                "ENEMY_GRUNT",
			Name:              "Grunt",
			MaxHealth:         3,
			Speed:             60,
			Weight:            0.6,
			OrientationOffset: math.Pi / 2,
			DamageType:        AttackPhysical,
			ExitDuration:      0.4,
			Visuals:           Visuals{Color: color.RGBA{200, 60, 60, 255}, Radius: 14},
		},
		"ENEMY_CLANK": {
			ID:                "ENEMY_CLANK",
			Name:              "Clank",
			MaxHealth:         10,
			Speed:             45,
			Weight:            0.4,
			OrientationOffset: math.Pi / 2,
			DamageType:        AttackPhysical,
			ExitDuration:      0.6,
			Visuals:           Visuals{Color: color.RGBA{150, 150, 170, 255}, Radius: 20},
		},
	}
}

// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 960
	MaxDeltaTime = 0.06

	// spawner defaults
	SpawnInterval = 2.0
	SpawnCapacity = 10
	SpawnRadius   = 600.0

	// turret defaults
	TurretFireRate     = 0.5 // seconds between shots
	TurretBulletSpeed  = 800.0
	TurretLifetime     = 5.0
	TurretMaxRange     = 3000.0
	TurretDamage       = 1
	TurretMuzzleX      = 30.0
	TurretMuzzleY      = 0.0
	TurretFacingOffset = -math.Pi / 2
	TurretRadius       = 24.0

	ProjectileRadius = 5.0

	TextCharWidth = 7
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TurretColor     = color.RGBA{50, 205, 50, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthHighColor = color.RGBA{60, 200, 60, 255}
	HealthMidColor  = color.RGBA{230, 210, 40, 255}
	HealthLowColor  = color.RGBA{220, 50, 50, 255}
	DyingColor      = color.RGBA{90, 90, 90, 160}
)

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, float64(ScreenWidth/2), cfg.Target.X)
	assert.Equal(t, float64(ScreenHeight/2), cfg.Target.Y)
	assert.Equal(t, SpawnInterval, cfg.Spawner.Interval)
	assert.Equal(t, SpawnCapacity, cfg.Spawner.Capacity)
	assert.Equal(t, SpawnRadius, cfg.Spawner.Radius)
	assert.Equal(t, TurretFireRate, cfg.Turret.FireRate)
	assert.Equal(t, TurretBulletSpeed, cfg.Turret.BulletSpeed)
	assert.Equal(t, TurretMaxRange, cfg.Turret.MaxRange)
	assert.Equal(t, TurretDamage, cfg.Turret.Damage)
	assert.Equal(t, TurretMuzzleX, cfg.Turret.Muzzle.X)
	assert.Empty(t, cfg.Enemies)

	lib, err := cfg.Library()
	require.NoError(t, err)
	assert.Contains(t, lib, "ENEMY_GRUNT")
	assert.Contains(t, lib, "ENEMY_CLANK")
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pointdefense.json")
	cfg := `{
		"logLevel": "debug",
		"seed": 1234,
		"target": {"x": 10, "y": -20},
		"spawner": {"interval": 1.5, "capacity": 3, "radius": 250},
		"turret": {"fireRate": 0.25, "damage": 2},
		"enemies": [
			{"id": "DRONE", "max_health": 4, "speed": 75, "weight": 1}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, int64(1234), got.Seed)
	assert.Equal(t, PointConfig{X: 10, Y: -20}, got.Target)
	assert.Equal(t, SpawnerConfig{Interval: 1.5, Capacity: 3, Radius: 250}, got.Spawner)
	assert.Equal(t, 0.25, got.Turret.FireRate)
	assert.Equal(t, 2, got.Turret.Damage)
	assert.Equal(t, TurretBulletSpeed, got.Turret.BulletSpeed)

	lib, err := got.Library()
	require.NoError(t, err)
	require.Len(t, lib, 1)
	assert.Equal(t, 75.0, lib["DRONE"].Speed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PD_SPAWNER_CAPACITY", "42")
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Spawner.Capacity)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/pointdefense.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestDefaultMatchesLoad(t *testing.T) {
	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, loaded, Default())
}

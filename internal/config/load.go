package config

import (
	"fmt"
	"strings"

	"go-point-defense/internal/defs"

	"github.com/spf13/viper"
)

// Config is everything a host needs to build a world.
type Config struct {
	LogLevel   string        `mapstructure:"logLevel"`
	LogConsole bool          `mapstructure:"logConsole"`
	Seed       int64         `mapstructure:"seed"`
	Target     PointConfig   `mapstructure:"target"`
	Spawner    SpawnerConfig `mapstructure:"spawner"`
	Turret     TurretConfig  `mapstructure:"turret"`
	// Enemies overrides the stock roster when non-empty.
	Enemies []defs.EnemyDefinition `mapstructure:"enemies"`
}

type PointConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type SpawnerConfig struct {
	Interval float64 `mapstructure:"interval"`
	Capacity int     `mapstructure:"capacity"`
	Radius   float64 `mapstructure:"radius"`
}

type TurretConfig struct {
	FireRate     float64     `mapstructure:"fireRate"`
	BulletSpeed  float64     `mapstructure:"bulletSpeed"`
	Lifetime     float64     `mapstructure:"lifetime"`
	MaxRange     float64     `mapstructure:"maxRange"`
	Damage       int         `mapstructure:"damage"`
	FacingOffset float64     `mapstructure:"facingOffset"`
	Muzzle       PointConfig `mapstructure:"muzzle"`
}

// Library returns the configured enemy roster, or the stock one.
func (c *Config) Library() (defs.Library, error) {
	if len(c.Enemies) == 0 {
		return defs.DefaultLibrary(), nil
	}
	return defs.NewLibrary(c.Enemies)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logConsole", true)
	v.SetDefault("seed", 0)

	v.SetDefault("target.x", ScreenWidth/2)
	v.SetDefault("target.y", ScreenHeight/2)

	v.SetDefault("spawner.interval", SpawnInterval)
	v.SetDefault("spawner.capacity", SpawnCapacity)
	v.SetDefault("spawner.radius", SpawnRadius)

	v.SetDefault("turret.fireRate", TurretFireRate)
	v.SetDefault("turret.bulletSpeed", TurretBulletSpeed)
	v.SetDefault("turret.lifetime", TurretLifetime)
	v.SetDefault("turret.maxRange", TurretMaxRange)
	v.SetDefault("turret.damage", TurretDamage)
	v.SetDefault("turret.facingOffset", TurretFacingOffset)
	v.SetDefault("turret.muzzle.x", TurretMuzzleX)
	v.SetDefault("turret.muzzle.y", TurretMuzzleY)
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// defaults alone always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads a config file over the defaults. The format follows the file
// extension (json, yaml, toml). An empty path returns the defaults.
// Environment variables prefixed PD_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/toiletrun.yaml
var defaultYAML []byte

// Default returns the built-in tuning, matching defaults/toiletrun.yaml.
// Used as the last-resort fallback when even the embedded YAML fails to
// parse, so the game always has a playable configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:        480,
			Height:       640,
			GroundHeight: 80,
		},
		Physics: PhysicsConfig{
			Gravity:     0.4,
			FlapImpulse: -7.5,
			MaxVelocity: 10.0,
		},
		Player: PlayerConfig{
			X:      80,
			Width:  44,
			Height: 34,
		},
		Obstacles: ObstaclesConfig{
			Width:           64,
			MinTopMargin:    40,
			MinBottomMargin: 40,
		},
		Leveling: LevelingConfig{
			BaseGap:           210,
			MinGap:            140,
			GapDecrement:      8,
			BaseSpeed:         3.0,
			MaxSpeed:          6.5,
			SpeedIncrement:    0.25,
			BaseSpawnInterval: 90,
			MinSpawnInterval:  48,
			SpawnDecrement:    4,
			PipesPerLevel:     5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}

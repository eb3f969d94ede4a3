// Package config provides YAML-based tuning for the toiletrun simulation
// and difficulty preset handling.
package config

// Config contains the full tuning for the game. All simulation quantities
// are in abstract world units; the renderer scales them to screen cells.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Leveling  LevelingConfig  `yaml:"leveling"`
}

// WorldConfig defines the fixed world coordinate space.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FloorY returns the y-coordinate of the top of the ground strip.
func (w WorldConfig) FloorY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines gravity integration parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
	MaxVelocity float64 `yaml:"max_velocity"` // Terminal fall speed (no upward clamp)
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"` // Fixed horizontal position
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines obstacle geometry constraints.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	MinTopMargin    float64 `yaml:"min_top_margin"`    // Minimum top barrier height
	MinBottomMargin float64 `yaml:"min_bottom_margin"` // Minimum bottom barrier height
}

// LevelingConfig defines the difficulty curve: linear ramps clamped at a
// floor or ceiling, all pure functions of the current level.
type LevelingConfig struct {
	BaseGap      float64 `yaml:"base_gap"`
	MinGap       float64 `yaml:"min_gap"`
	GapDecrement float64 `yaml:"gap_decrement"`

	BaseSpeed      float64 `yaml:"base_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`

	BaseSpawnInterval int `yaml:"base_spawn_interval"` // Ticks between spawns
	MinSpawnInterval  int `yaml:"min_spawn_interval"`
	SpawnDecrement    int `yaml:"spawn_decrement"`

	// PipesPerLevel is how many passed obstacles advance the level by one.
	// Zero or negative freezes the level at 1.
	PipesPerLevel int `yaml:"pipes_per_level"`
}

// DifficultyPreset represents a named difficulty transform applied on top
// of the loaded config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config for a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Leveling.BaseGap *= 1.15
		cfg.Leveling.MinGap *= 1.15
		cfg.Leveling.BaseSpeed *= 0.85
		cfg.Leveling.PipesPerLevel += 2
	case DifficultyNormal:
		// Loaded config is the normal baseline.
	case DifficultyHard:
		cfg.Leveling.BaseGap *= 0.9
		cfg.Leveling.BaseSpeed *= 1.15
		if cfg.Leveling.PipesPerLevel > 2 {
			cfg.Leveling.PipesPerLevel -= 2
		}
	case DifficultyFixed:
		cfg.Leveling.PipesPerLevel = 0 // Level stays at 1
	}
}

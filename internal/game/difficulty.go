package game

import "github.com/toiletrun/toiletrun/internal/config"

// Curve derives per-level simulation parameters from the leveling rules.
// All outputs are pure functions of the level: linear ramps clamped at a
// floor or ceiling, monotonic in the harder direction. Levels beyond the
// clamp point produce no further change.
type Curve struct {
	rules config.LevelingConfig
}

// NewCurve creates a difficulty curve for the given rules.
func NewCurve(rules config.LevelingConfig) Curve {
	return Curve{rules: rules}
}

// Gap returns the vertical obstacle clearance for a level (1-indexed).
func (c Curve) Gap(level int) float64 {
	gap := c.rules.BaseGap - float64(level-1)*c.rules.GapDecrement
	if gap < c.rules.MinGap {
		gap = c.rules.MinGap
	}
	return gap
}

// Speed returns the horizontal obstacle speed for a level.
func (c Curve) Speed(level int) float64 {
	speed := c.rules.BaseSpeed + float64(level-1)*c.rules.SpeedIncrement
	if speed > c.rules.MaxSpeed {
		speed = c.rules.MaxSpeed
	}
	return speed
}

// SpawnInterval returns the number of ticks between obstacle spawns for a
// level.
func (c Curve) SpawnInterval(level int) int {
	interval := c.rules.BaseSpawnInterval - (level-1)*c.rules.SpawnDecrement
	if interval < c.rules.MinSpawnInterval {
		interval = c.rules.MinSpawnInterval
	}
	return interval
}

// LevelFor returns the level implied by the cumulative obstacle-pass count.
// With pipes_per_level <= 0 the level is frozen at 1.
func (c Curve) LevelFor(pipesPassed int) int {
	if c.rules.PipesPerLevel <= 0 {
		return 1
	}
	return pipesPassed/c.rules.PipesPerLevel + 1
}

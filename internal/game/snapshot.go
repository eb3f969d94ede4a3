package game

import "github.com/toiletrun/toiletrun/internal/core"

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Mode        core.Mode
	Frame       int
	Score       int
	Level       int
	PipesPassed int
	HighScore   int
	BestLevel   int
	PlayerY     float64
	PlayerVel   float64
	Obstacles   []Obstacle
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.field.Obstacles()))
	copy(obstacles, g.field.Obstacles())

	return Snapshot{
		Mode:        g.mode,
		Frame:       g.frame,
		Score:       g.keeper.Score,
		Level:       g.keeper.Level,
		PipesPassed: g.keeper.PipesPassed,
		HighScore:   g.keeper.HighScore,
		BestLevel:   g.keeper.BestLevel,
		PlayerY:     g.player.Y,
		PlayerVel:   g.player.Vel,
		Obstacles:   obstacles,
	}
}

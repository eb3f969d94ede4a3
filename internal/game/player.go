package game

import (
	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
)

// Player is the player-controlled flying body. Horizontal position is
// fixed; only the vertical position and velocity change.
type Player struct {
	X   float64 // Fixed horizontal position (left edge)
	Y   float64 // Vertical position (top of hitbox)
	Vel float64 // Vertical velocity (negative = up)
	W   float64
	H   float64
}

// newPlayer creates a player from tuning, vertically centered in the
// playable space above the ground.
func newPlayer(cfg config.PlayerConfig, world config.WorldConfig) Player {
	return Player{
		X: cfg.X,
		Y: (world.FloorY() - cfg.Height) / 2,
		W: cfg.Width,
		H: cfg.Height,
	}
}

// Flap replaces the current velocity with the flap impulse.
// Mode gating (no-op outside Start/Playing) lives in Game.Step.
func (p *Player) Flap(impulse float64) {
	p.Vel = impulse
}

// Integrate advances the body one tick: applies gravity, clamps the fall
// speed (upward speed from flapping stays unclamped), moves, then clamps
// the position to [0, floorY-height]. Any position clamp zeroes the
// velocity and reports a boundary collision.
func (p *Player) Integrate(phys config.PhysicsConfig, floorY float64) bool {
	p.Vel += phys.Gravity
	if p.Vel > phys.MaxVelocity {
		p.Vel = phys.MaxVelocity
	}
	p.Y += p.Vel

	maxY := floorY - p.H
	if p.Y < 0 {
		p.Y = 0
		p.Vel = 0
		return true
	}
	if p.Y > maxY {
		p.Y = maxY
		p.Vel = 0
		return true
	}
	return false
}

// Bounds returns the player's collision box.
func (p Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

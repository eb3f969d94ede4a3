package game

import (
	"math"
	"testing"

	"github.com/toiletrun/toiletrun/internal/config"
)

func testPhysics() config.PhysicsConfig {
	return config.PhysicsConfig{
		Gravity:     0.3,
		FlapImpulse: -7.5,
		MaxVelocity: 10.0,
	}
}

func TestPlayerGravityIntegration(t *testing.T) {
	phys := testPhysics()
	p := Player{X: 80, Y: 100, W: 44, H: 34}

	// Tick 1: vel 0 -> 0.3, y 100 -> 100.3
	if hit := p.Integrate(phys, 560); hit {
		t.Fatal("mid-air integration should not report a collision")
	}
	if math.Abs(p.Vel-0.3) > 1e-9 || math.Abs(p.Y-100.3) > 1e-9 {
		t.Fatalf("after tick 1: vel=%v y=%v, expected 0.3 and 100.3", p.Vel, p.Y)
	}

	// Tick 2: vel -> 0.6, y -> 100.9
	p.Integrate(phys, 560)
	if math.Abs(p.Vel-0.6) > 1e-9 || math.Abs(p.Y-100.9) > 1e-9 {
		t.Fatalf("after tick 2: vel=%v y=%v, expected 0.6 and 100.9", p.Vel, p.Y)
	}
}

func TestPlayerFallSpeedClamped(t *testing.T) {
	phys := testPhysics()
	p := Player{X: 80, Y: 0, W: 44, H: 34}

	floorY := 1e9 // far away so the clamp, not the floor, bounds the fall
	for i := 0; i < 200; i++ {
		p.Integrate(phys, floorY)
		if p.Vel > phys.MaxVelocity {
			t.Fatalf("tick %d: vel %v exceeds max %v", i, p.Vel, phys.MaxVelocity)
		}
	}
	if p.Vel != phys.MaxVelocity {
		t.Errorf("terminal velocity = %v, expected %v", p.Vel, phys.MaxVelocity)
	}
}

func TestPlayerUpwardSpeedUnclamped(t *testing.T) {
	phys := testPhysics()
	phys.FlapImpulse = -50 // far beyond the fall clamp magnitude
	p := Player{X: 80, Y: 300, W: 44, H: 34}

	p.Flap(phys.FlapImpulse)
	p.Integrate(phys, 560)
	if math.Abs(p.Vel-(-49.7)) > 1e-9 {
		t.Errorf("vel = %v, expected -49.7 (upward speed is never clamped)", p.Vel)
	}
}

func TestPlayerFloorClamp(t *testing.T) {
	phys := testPhysics()
	floorY := 560.0
	p := Player{X: 80, Y: floorY - 34 - 0.1, Vel: 5, W: 44, H: 34}

	if hit := p.Integrate(phys, floorY); !hit {
		t.Fatal("crossing the floor should report a collision")
	}
	if p.Y != floorY-34 {
		t.Errorf("y = %v, expected pinned to %v", p.Y, floorY-34)
	}
	if p.Vel != 0 {
		t.Errorf("vel = %v, expected zeroed after clamp", p.Vel)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	phys := testPhysics()
	p := Player{X: 80, Y: 2, Vel: -8, W: 44, H: 34}

	if hit := p.Integrate(phys, 560); !hit {
		t.Fatal("crossing the ceiling should report a collision")
	}
	if p.Y != 0 {
		t.Errorf("y = %v, expected pinned to 0", p.Y)
	}
	if p.Vel != 0 {
		t.Errorf("vel = %v, expected zeroed after clamp", p.Vel)
	}
}

func TestPlayerFlapReplacesVelocity(t *testing.T) {
	p := Player{Vel: 9.5}
	p.Flap(-7.5)
	if p.Vel != -7.5 {
		t.Errorf("vel = %v, expected flap to replace the velocity, not add", p.Vel)
	}
}

package game

import (
	"testing"

	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
)

func testWorld() config.WorldConfig {
	return config.WorldConfig{Width: 480, Height: 640, GroundHeight: 80}
}

func testObstacles() config.ObstaclesConfig {
	return config.ObstaclesConfig{Width: 64, MinTopMargin: 40, MinBottomMargin: 40}
}

// farAway is a player box that never touches or passes any obstacle.
func farAway() core.Box {
	return core.NewBox(-1000, 100, 44, 34)
}

func TestFieldFirstTickSpawns(t *testing.T) {
	f := NewField(1, NewCurve(testRules()), testObstacles(), testWorld())

	f.Advance(1, farAway())
	if n := len(f.Obstacles()); n != 1 {
		t.Fatalf("after first tick: %d obstacles, expected 1", n)
	}
}

func TestFieldSpawnInterval(t *testing.T) {
	rules := testRules()
	rules.BaseSpawnInterval = 10
	f := NewField(1, NewCurve(rules), testObstacles(), testWorld())

	// Spawns on ticks 1, 11, 21 with interval 10.
	for i := 0; i < 21; i++ {
		f.Advance(1, farAway())
	}
	if n := len(f.Obstacles()); n != 3 {
		t.Fatalf("after 21 ticks: %d obstacles, expected 3", n)
	}
}

func TestFieldSpawnGeometry(t *testing.T) {
	world := testWorld()
	cfg := testObstacles()
	curve := NewCurve(testRules())
	floorY := world.FloorY()

	for seed := int64(0); seed < 50; seed++ {
		f := NewField(seed, curve, cfg, world)
		f.Advance(1, farAway())

		o := f.Obstacles()[0]
		gap := o.BottomY - o.TopHeight
		if gap != curve.Gap(1) {
			t.Fatalf("seed %d: gap = %v, expected %v", seed, gap, curve.Gap(1))
		}
		if o.TopHeight < cfg.MinTopMargin {
			t.Fatalf("seed %d: top barrier %v below minimum %v", seed, o.TopHeight, cfg.MinTopMargin)
		}
		if floorY-o.BottomY < cfg.MinBottomMargin {
			t.Fatalf("seed %d: bottom barrier %v below minimum %v", seed, floorY-o.BottomY, cfg.MinBottomMargin)
		}
	}
}

func TestFieldGapFrozenAfterSpawn(t *testing.T) {
	rules := testRules()
	rules.BaseSpawnInterval = 1000 // only the first obstacle spawns
	curve := NewCurve(rules)
	f := NewField(7, curve, testObstacles(), testWorld())

	f.Advance(1, farAway())
	spawned := f.Obstacles()[0]
	gapAtSpawn := spawned.BottomY - spawned.TopHeight

	// Later ticks run at a much harder level; the live obstacle keeps its gap.
	for i := 0; i < 10; i++ {
		f.Advance(20, farAway())
	}
	o := f.Obstacles()[0]
	if got := o.BottomY - o.TopHeight; got != gapAtSpawn {
		t.Errorf("gap changed after spawn: %v, expected %v", got, gapAtSpawn)
	}
	if o.TopHeight != spawned.TopHeight {
		t.Errorf("top barrier changed after spawn: %v, expected %v", o.TopHeight, spawned.TopHeight)
	}
}

func TestFieldMovesLeft(t *testing.T) {
	curve := NewCurve(testRules())
	f := NewField(3, curve, testObstacles(), testWorld())

	f.Advance(1, farAway())
	x0 := f.Obstacles()[0].X
	f.Advance(1, farAway())
	x1 := f.Obstacles()[0].X
	if want := x0 - curve.Speed(1); x1 != want {
		t.Errorf("x after one tick = %v, expected %v", x1, want)
	}
}

func TestFieldScoresOnce(t *testing.T) {
	rules := testRules()
	rules.BaseSpawnInterval = 100000
	f := NewField(3, NewCurve(rules), testObstacles(), testWorld())

	f.Advance(1, farAway()) // spawn at X = world width
	o := f.Obstacles()[0]

	// Player box tucked inside the gap so the obstacle sweeps past without
	// colliding, far enough right that the obstacle stays live after passing.
	player := core.NewBox(380, o.TopHeight+1, 44, o.BottomY-o.TopHeight-2)

	total := 0
	for i := 0; i < 150 && len(f.Obstacles()) > 0; i++ {
		res := f.Advance(1, player)
		if res.Hit {
			t.Fatal("unexpected collision")
		}
		total += res.Passed
	}
	if total != 1 {
		t.Errorf("total passes = %d, expected exactly 1", total)
	}
}

func TestFieldCompactsExpired(t *testing.T) {
	rules := testRules()
	rules.BaseSpawnInterval = 100000
	f := NewField(3, NewCurve(rules), testObstacles(), testWorld())

	f.Advance(1, farAway())
	// World width 480 plus obstacle width 64 at speed 2 clears in 272 ticks.
	for i := 0; i < 300; i++ {
		f.Advance(1, farAway())
	}
	if n := len(f.Obstacles()); n != 0 {
		t.Errorf("%d obstacles still live, expected expiry off the left edge", n)
	}
}

func TestFieldCollision(t *testing.T) {
	rules := testRules()
	rules.BaseSpawnInterval = 100000
	f := NewField(3, NewCurve(rules), testObstacles(), testWorld())
	f.Advance(1, farAway())

	o := f.Obstacles()[0]
	// A box overlapping the top barrier.
	hitBox := core.NewBox(o.X-10, 0, 44, o.TopHeight)
	res := f.Advance(1, hitBox)
	if !res.Hit {
		t.Error("expected collision with the top barrier")
	}

	// A box fully inside the gap does not collide.
	o = f.Obstacles()[0]
	gapBox := core.NewBox(o.X+10, o.TopHeight+5, 10, o.BottomY-o.TopHeight-12)
	res = f.Advance(1, gapBox)
	if res.Hit {
		t.Error("box inside the gap should not collide")
	}
}

func TestFieldResetClears(t *testing.T) {
	f := NewField(3, NewCurve(testRules()), testObstacles(), testWorld())
	for i := 0; i < 5; i++ {
		f.Advance(1, farAway())
	}

	f.Reset(3)
	if n := len(f.Obstacles()); n != 0 {
		t.Fatalf("%d obstacles after reset, expected 0", n)
	}
	// The countdown is re-armed: the next tick spawns immediately.
	f.Advance(1, farAway())
	if n := len(f.Obstacles()); n != 1 {
		t.Errorf("after reset and one tick: %d obstacles, expected 1", n)
	}
}

func TestFieldDeterministicBySeed(t *testing.T) {
	mk := func(seed int64) []Obstacle {
		f := NewField(seed, NewCurve(testRules()), testObstacles(), testWorld())
		for i := 0; i < 200; i++ {
			f.Advance(1+i/50, farAway())
		}
		out := make([]Obstacle, len(f.Obstacles()))
		copy(out, f.Obstacles())
		return out
	}

	a, b := mk(42), mk(42)
	if len(a) != len(b) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := mk(43)
	same := len(a) == len(c)
	if same {
		for i := range a {
			if a[i] != c[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

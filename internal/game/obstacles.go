package game

import (
	"math/rand"

	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
)

// Obstacle is a paired top+bottom barrier with a vertical gap between them.
// The gap is fixed at spawn time: later difficulty shifts never change an
// obstacle that is already live.
type Obstacle struct {
	X         float64 // World-space horizontal position (left edge)
	TopHeight float64 // Height of the top barrier
	BottomY   float64 // Top of the bottom barrier (TopHeight + gap at spawn)
	Scored    bool    // Whether the player has passed this obstacle
}

// TopBox returns the collision box for the top barrier.
func (o Obstacle) TopBox(width float64) core.Box {
	return core.NewBox(o.X, 0, width, o.TopHeight)
}

// BottomBox returns the collision box for the bottom barrier.
func (o Obstacle) BottomBox(width, floorY float64) core.Box {
	return core.NewBox(o.X, o.BottomY, width, floorY-o.BottomY)
}

// Collides tests the player box against both barriers. Broad-phase AABB
// only; a box that sits entirely inside the gap never collides.
func (o Obstacle) Collides(player core.Box, width, floorY float64) bool {
	return player.Overlaps(o.TopBox(width)) || player.Overlaps(o.BottomBox(width, floorY))
}

// Field owns the live obstacles: spawning, movement, expiry, collision and
// pass detection. Obstacles always spawn at the right edge and move left at
// a shared per-tick speed, so insertion order is also left-to-right world
// order and a single forward sweep visits them near-to-far.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	curve     Curve
	cfg       config.ObstaclesConfig
	world     config.WorldConfig

	// untilSpawn counts down the ticks to the next spawn and is reloaded
	// from the curve at each spawn, so an interval change takes effect at
	// the next reload rather than realigning the current gap.
	untilSpawn int
}

// FieldResult reports what happened during one field tick.
type FieldResult struct {
	Passed int  // Obstacles whose right edge crossed the player this tick
	Hit    bool // At least one obstacle collided with the player
}

// NewField creates an obstacle field with the given RNG seed.
func NewField(seed int64, curve Curve, cfg config.ObstaclesConfig, world config.WorldConfig) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 8),
		curve:     curve,
		cfg:       cfg,
		world:     world,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles, reseeds the RNG, and arms the spawn countdown
// so the first Playing tick spawns immediately.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.untilSpawn = 0
}

// Advance runs one tick: spawn if due, move everything left, drop expired
// obstacles, and detect collisions and passes against the player box.
// A collision does not stop the sweep; every obstacle still advances and
// later obstacles can still be scored on the same tick.
func (f *Field) Advance(level int, player core.Box) FieldResult {
	if f.untilSpawn <= 0 {
		f.spawn(level)
		f.untilSpawn = f.curve.SpawnInterval(level)
	}
	f.untilSpawn--

	speed := f.curve.Speed(level)
	floorY := f.world.FloorY()

	var res FieldResult
	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= speed
		if o.X+f.cfg.Width < 0 {
			continue // off the left edge, compacted away
		}
		if o.Collides(player, f.cfg.Width, floorY) {
			res.Hit = true
		} else if !o.Scored && o.X+f.cfg.Width < player.X {
			o.Scored = true
			res.Passed++
		}
		live = append(live, o)
	}
	f.obstacles = live
	return res
}

// spawn appends a new obstacle at the right edge. The top barrier height is
// uniform within the range that leaves both barriers their minimum
// clearance; the gap is the curve's output for the current level, frozen
// into the obstacle.
func (f *Field) spawn(level int) {
	gap := f.curve.Gap(level)

	minTop := f.cfg.MinTopMargin
	maxTop := f.world.FloorY() - gap - f.cfg.MinBottomMargin
	if maxTop < minTop {
		maxTop = minTop // degenerate tuning, pin to the top margin
	}

	top := minTop + f.rng.Float64()*(maxTop-minTop)

	f.obstacles = append(f.obstacles, Obstacle{
		X:         f.world.Width,
		TopHeight: top,
		BottomY:   top + gap,
	})
}

// Obstacles returns the live obstacles in left-to-right order.
// The slice is owned by the field and valid until the next Advance.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Width returns the obstacle width in world units.
func (f *Field) Width() float64 {
	return f.cfg.Width
}

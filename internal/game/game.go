// Package game implements the toiletrun simulation: a player-controlled
// toilet flies through an endless stream of gap-obstacles, scoring one
// point per obstacle passed, with difficulty that escalates by level.
//
// The simulation runs in a fixed float64 world coordinate space and is
// advanced one fixed tick at a time by the platform. Each Game value is an
// independent simulation context; there is no package-level state.
package game

import (
	"time"

	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
)

// Game holds one simulation instance: the state machine mode, the frame
// counter, and the player/obstacle/score components. It implements
// core.Game.
type Game struct {
	tuning config.Config
	curve  Curve
	rtc    core.RuntimeConfig

	mode   core.Mode
	frame  int // Playing ticks this round; halts in Paused, resets on restart
	seed   int64
	rounds int // Completed restarts, salts the per-round field seed

	player Player
	field  *Field
	keeper ScoreKeeper

	events []core.Event // Raised this tick, reused between Steps
}

// New creates a game with the given tuning. Reset must be called before
// the first Step.
func New(tuning config.Config) *Game {
	return &Game{
		tuning: tuning,
		curve:  NewCurve(tuning.Leveling),
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "toiletrun"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Toilet Run"
}

// Tuning returns the simulation tuning in effect.
func (g *Game) Tuning() config.Config {
	return g.tuning
}

// Records returns the best-ever score and level across rounds.
func (g *Game) Records() (highScore, bestLevel int) {
	return g.keeper.HighScore, g.keeper.BestLevel
}

// SetRecords seeds the best-ever records, typically from persistence.
func (g *Game) SetRecords(highScore, bestLevel int) {
	g.keeper.SetRecords(highScore, bestLevel)
}

// Reset initializes the game to the Start screen. Best-ever records are
// preserved; everything else returns to initial values.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rtc = cfg
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rounds = 0
	g.mode = core.ModeStart
	g.startRound()
}

// startRound resets the per-round state: player pose, obstacles, frame
// counter, and the round score.
func (g *Game) startRound() {
	g.frame = 0
	g.player = newPlayer(g.tuning.Player, g.tuning.World)
	roundSeed := g.seed + int64(g.rounds)
	if g.field == nil {
		g.field = NewField(roundSeed, g.curve, g.tuning.Obstacles, g.tuning.World)
	} else {
		g.field.Reset(roundSeed)
	}
	g.keeper.StartRound()
}

// Step advances the simulation by one tick. Inputs that are illegal in the
// current mode are silently ignored; the returned events are valid until
// the next Step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.mode {
	case core.ModeStart:
		// The first flap starts the round and counts as a flap.
		if in.Has(core.ActionFlap) || in.Has(core.ActionConfirm) {
			g.mode = core.ModePlaying
			g.flap()
			g.advance()
		}

	case core.ModePlaying:
		if in.Has(core.ActionPause) {
			g.mode = core.ModePaused
			break
		}
		if in.Has(core.ActionFlap) {
			g.flap()
		}
		g.advance()

	case core.ModePaused:
		// Frozen: no physics, no spawning, no frame advance.
		if in.Has(core.ActionPause) {
			g.mode = core.ModePlaying
		}

	case core.ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// flap applies the upward impulse and raises the flap event.
func (g *Game) flap() {
	g.player.Flap(g.tuning.Physics.FlapImpulse)
	g.events = append(g.events, core.EventFlap)
}

// advance runs one Playing tick: player integration first, then the
// obstacle sweep. A boundary collision ends the round before the field
// updates, matching the component order of the frame data flow.
func (g *Game) advance() {
	if g.player.Integrate(g.tuning.Physics, g.tuning.World.FloorY()) {
		g.endRound()
		g.frame++
		return
	}

	res := g.field.Advance(g.keeper.Level, g.player.Bounds())
	if res.Passed > 0 {
		g.keeper.ObstaclesPassed(res.Passed, g.curve)
		g.events = append(g.events, core.EventScore)
	}
	if res.Hit {
		g.endRound()
	}
	g.frame++
}

// endRound enters GameOver. The mode check makes a second collision in the
// same frame (ceiling+floor, multiple obstacles) a no-op, so the terminal
// side effects fire at most once per round.
func (g *Game) endRound() {
	if g.mode == core.ModeGameOver {
		return
	}
	g.mode = core.ModeGameOver
	g.keeper.RoundEnded()
	g.events = append(g.events, core.EventHit)
}

// restart begins a new round directly in Playing. Round state resets to
// initial values; best-ever records are preserved.
func (g *Game) restart() {
	g.rounds++
	g.startRound()
	g.mode = core.ModePlaying
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:        g.mode,
		Score:       g.keeper.Score,
		Level:       g.keeper.Level,
		PipesPassed: g.keeper.PipesPassed,
		Frame:       g.frame,
	}
}

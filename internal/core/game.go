package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt rendering to screen size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay (0 = time-based)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Mode is the current screen/state of the game's state machine.
// It gates which inputs are legal and whether the simulation advances.
type Mode int

const (
	ModeStart    Mode = iota // Waiting for the first flap
	ModePlaying              // Simulation advancing each tick
	ModePaused               // Frozen, exact-resume; Playing only
	ModeGameOver             // Round ended; waiting for restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "Start"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete simulation notification consumed by reactive
// collaborators (audio, persistence). Events never feed back into the
// simulation.
type Event int

const (
	EventFlap  Event = iota // Player flapped
	EventScore              // An obstacle was passed
	EventHit                // Boundary or obstacle collision ended the round
)

// GameState represents the externally visible state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode        Mode
	Score       int // Obstacles passed this round
	Level       int // Current difficulty level (1-indexed)
	PipesPassed int // Cumulative obstacles passed this round
	Frame       int // Monotonic tick counter, reset on restart
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Events raised this tick, in occurrence order
}

// Game is the interface between the simulation and the platform.
// The implementation contains pure logic with no external dependencies;
// the platform handles input mapping, timing, rendering, and persistence.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state to the Start screen.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current externally visible game state.
	State() GameState

	// Records returns the best-ever score and level across rounds.
	Records() (highScore, bestLevel int)

	// SetRecords seeds the best-ever records, typically from persistence
	// at startup.
	SetRecords(highScore, bestLevel int)
}

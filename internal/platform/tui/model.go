package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toiletrun/toiletrun/internal/audio"
	"github.com/toiletrun/toiletrun/internal/core"
	"github.com/toiletrun/toiletrun/internal/storage"
)

// Model is the Bubble Tea model that drives one game session.
// It owns the frame loop, maps keys to actions, forwards simulation events
// to audio, and persists round records on game over.
type Model struct {
	game        core.Game
	screen      *core.Screen
	store       *storage.Store // May be nil; the game runs without persistence
	sound       *audio.Manager // May be nil (e.g. SSH sessions)
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	recordSaved bool // Round record saved for the current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input between ticks. Actions accumulate in
// the input frame and reach the simulation atomically on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionMute:
		// Mute never touches the simulation: audio + persistence only.
		m.toggleMute()
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// toggleMute flips the audio mute flag and persists it best-effort.
func (m *Model) toggleMute() {
	if m.sound == nil {
		return
	}
	muted := m.sound.Toggle()
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SetMuted(muted)
	}
}

// handleResize adapts the screen buffer to the new terminal size.
// The simulation runs in world units, so it survives resizes untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, ev := range result.Events {
			m.sound.Play(ev)
		}
	}

	if m.gameState.Mode == core.ModeGameOver {
		m.saveRecord()
	} else {
		m.recordSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRecord persists the finished round once per game over.
func (m *Model) saveRecord() {
	if m.recordSaved {
		return
	}
	m.recordSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(m.gameState.Score, m.gameState.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".toiletrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game core.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

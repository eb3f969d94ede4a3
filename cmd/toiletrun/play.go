package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toiletrun/toiletrun/internal/audio"
	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
	"github.com/toiletrun/toiletrun/internal/game"
	"github.com/toiletrun/toiletrun/internal/platform/tui"
	"github.com/toiletrun/toiletrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Mute toggle
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, slower pipes, slower leveling
  normal - The config's baseline tuning
  hard   - Narrower gaps, faster pipes, faster leveling
  fixed  - Level never rises; tuning stays at level 1

Examples:
  toiletrun play
  toiletrun play --difficulty easy
  toiletrun play --config ./my-tuning.yaml
  toiletrun play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "toiletrun"})

	// Load tuning
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&tuning, config.DifficultyPreset(flagDifficulty))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(tuning)

	// Open score storage; the game runs without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	// Audio collaborator; the game runs without it
	var sound *audio.Manager
	if !flagNoSound {
		sound = audio.NewManager()
		if initErr := sound.Initialize(); initErr != nil {
			logger.Warn("audio unavailable", "error", initErr)
			sound = nil
		}
	}

	// Seed records and mute flag from persistence; failures default
	if store != nil {
		rec, recErr := store.LoadRecords()
		if recErr != nil {
			logger.Warn("could not load records", "error", recErr)
		}
		g.SetRecords(rec.HighScore, rec.BestLevel)
		if sound != nil {
			sound.SetMuted(rec.Muted)
		}
	}

	runErr := tui.Run(g, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

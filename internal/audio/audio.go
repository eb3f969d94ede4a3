// Package audio plays synthesized feedback tones for simulation events.
// It is purely reactive: events flow in, nothing flows back into the
// simulation. With audio uninitialized or muted every call is a no-op, so
// the game runs identically without a sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/toiletrun/toiletrun/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes event tones.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewManager creates a manager. Initialize must be called before tones are
// audible; until then Play silently drops events.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences and releases the mixer.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetMuted sets the mute flag.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted returns the current mute flag.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Toggle flips the mute flag and returns the new value.
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

// Play queues the tone for a simulation event. No-op when muted or
// uninitialized.
func (m *Manager) Play(ev core.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	var tone beep.Streamer
	switch ev {
	case core.EventFlap:
		tone = NewSweep(300, 620, 80*time.Millisecond, WaveSine, sampleRate)
	case core.EventScore:
		tone = NewTone(880, 90*time.Millisecond, WaveSine, sampleRate)
	case core.EventHit:
		tone = NewSweep(220, 90, 220*time.Millisecond, WaveSquare, sampleRate)
	default:
		return
	}

	speaker.Lock()
	m.mixer.Add(tone)
	speaker.Unlock()
}

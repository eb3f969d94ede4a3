package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a short tone with an optional linear frequency sweep
// and a fade-out envelope to avoid clicks.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int // Total samples
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewTone creates a fixed-frequency tone streamer.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone whose frequency moves linearly from startFreq to
// endFreq over the duration.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		// Fade out over the final quarter of the tone
		progress := float64(o.position) / float64(o.duration)
		gain := 0.4
		if progress > 0.75 {
			gain *= (1.0 - progress) / 0.25
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Package sound synthesizes the game's sound cues and plays them through
// Ebitengine's audio context.
package sound

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Wave is an oscillator wave shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

var waveNames = map[string]Wave{
	"sine":   WaveSine,
	"square": WaveSquare,
	"saw":    WaveSaw,
	"noise":  WaveNoise,
}

// ParseWave returns the wave for a config name
func ParseWave(name string) (Wave, error) {
	w, ok := waveNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown wave %q", name)
	}
	return w, nil
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing one tone for the given duration
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewCue builds a cue: its frequencies play in sequence, splitting the
// duration evenly, under one envelope
func NewCue(cfg config.CueConfig, master float64, rate beep.SampleRate) (beep.Streamer, error) {
	wave, err := ParseWave(cfg.Wave)
	if err != nil {
		return nil, err
	}
	if len(cfg.Freqs) == 0 {
		return nil, fmt.Errorf("no frequencies")
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", cfg.Duration)
	}

	total := time.Duration(cfg.Duration) * time.Millisecond
	step := total / time.Duration(len(cfg.Freqs))

	notes := make([]beep.Streamer, 0, len(cfg.Freqs))
	for _, f := range cfg.Freqs {
		notes = append(notes, NewOscillator(f, step, wave, rate))
	}

	shaped := NewEnvelope(beep.Seq(notes...), total,
		time.Duration(cfg.Attack)*time.Millisecond,
		time.Duration(cfg.Release)*time.Millisecond, rate)

	return newVolume(shaped, cfg.Volume*master), nil
}

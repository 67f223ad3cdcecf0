package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starfall/internal/infrastructure/config"
)

const rate = beep.SampleRate(48000)

func laserCue() config.CueConfig {
	return config.CueConfig{
		Wave:     "square",
		Freqs:    []float64{880, 440, 220},
		Duration: 180,
		Attack:   5,
		Release:  120,
		Volume:   0.5,
	}
}

func TestParseWave(t *testing.T) {
	tests := []struct {
		name    string
		want    Wave
		wantErr bool
	}{
		{"sine", WaveSine, false},
		{"square", WaveSquare, false},
		{"saw", WaveSaw, false},
		{"noise", WaveNoise, false},
		{"triangle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWave(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	require.True(t, ok)
	require.Equal(t, 100, n)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{-1, 1}, samples[i][0])
		assert.Equal(t, samples[i][0], samples[i][1])
	}
}

func TestOscillatorDrains(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)
	total := rate.N(10 * time.Millisecond)

	samples := make([][2]float64, total+50)
	n, ok := osc.Stream(samples)
	assert.Equal(t, total, n)
	assert.True(t, ok)

	n, ok = osc.Stream(samples)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
	assert.NoError(t, osc.Err())
}

func TestEnvelope(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant 1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)
	require.Equal(t, len(samples), n)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[rate.N(50*time.Millisecond)][0], "sustain at full level")
	assert.Less(t, samples[n-1][0], 0.01, "release ends near silence")
}

func TestNewCue(t *testing.T) {
	s, err := NewCue(laserCue(), 1, rate)
	require.NoError(t, err)

	pcm := Render(s)
	assert.Equal(t, rate.N(180*time.Millisecond)*bytesPerFrame, len(pcm))
}

func TestNewCue_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.CueConfig)
	}{
		{"unknown wave", func(c *config.CueConfig) { c.Wave = "pulse" }},
		{"no frequencies", func(c *config.CueConfig) { c.Freqs = nil }},
		{"zero duration", func(c *config.CueConfig) { c.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := laserCue()
			tt.modify(&cfg)
			_, err := NewCue(cfg, 1, rate)
			assert.Error(t, err)
		})
	}
}

func TestRender_Clamps(t *testing.T) {
	loud := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples[:4] {
			samples[i] = [2]float64{3, -3}
		}
		return 4, false
	})

	pcm := Render(loud)

	require.Len(t, pcm, 16)
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(pcm[2:])))
}

func TestBank(t *testing.T) {
	cfg := config.AudioConfig{
		SampleRate: 48000,
		Volume:     0.6,
		Cues:       map[string]config.CueConfig{"laser": laserCue()},
	}

	b, err := NewBank(nil, cfg)
	require.NoError(t, err)

	assert.True(t, b.Has("laser"))
	assert.False(t, b.Has("boom"))
	assert.Equal(t, []string{"laser"}, b.Cues())
	assert.Positive(t, b.Len("laser"))

	assert.NotPanics(t, func() {
		b.Play("laser")
		b.Play("boom")
	})

	var nilBank *Bank
	assert.NotPanics(t, func() { nilBank.Play("laser") })
	assert.False(t, nilBank.Has("laser"))
}

func TestNewBank_InvalidCue(t *testing.T) {
	cfg := config.AudioConfig{
		SampleRate: 48000,
		Cues:       map[string]config.CueConfig{"bad": {Wave: "pulse"}},
	}

	_, err := NewBank(nil, cfg)
	assert.ErrorContains(t, err, "cue bad")
}

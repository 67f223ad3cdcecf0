package sound

import (
	"fmt"
	"sort"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Bank holds pre-rendered cues and plays them on demand
type Bank struct {
	ctx *audio.Context
	pcm map[string][]byte
}

// NewBank renders every configured cue.
// ctx may be nil, in which case Play is a no-op.
func NewBank(ctx *audio.Context, cfg config.AudioConfig) (*Bank, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	b := &Bank{ctx: ctx, pcm: make(map[string][]byte, len(cfg.Cues))}

	for name, cue := range cfg.Cues {
		s, err := NewCue(cue, cfg.Volume, rate)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", name, err)
		}
		b.pcm[name] = Render(s)
	}

	return b, nil
}

// Play starts a cue and returns immediately.
// Unknown cues and a bank without a context are ignored.
func (b *Bank) Play(cue string) {
	if b == nil || b.ctx == nil {
		return
	}
	pcm, ok := b.pcm[cue]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// Has reports whether a cue was rendered
func (b *Bank) Has(cue string) bool {
	if b == nil {
		return false
	}
	_, ok := b.pcm[cue]
	return ok
}

// Cues returns the rendered cue names, sorted
func (b *Bank) Cues() []string {
	names := make([]string, 0, len(b.pcm))
	for name := range b.pcm {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the PCM length of a cue in bytes
func (b *Bank) Len(cue string) int {
	return len(b.pcm[cue])
}

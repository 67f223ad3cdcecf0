package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// SoundPlayer plays a named cue without blocking
type SoundPlayer interface {
	Play(cue string)
}

// Env holds the collaborators every scene shares
type Env struct {
	Config  *config.GameConfig
	Rules   system.Rules
	Catalog *assets.Catalog
	Font    *text.GoTextFaceSource
	Input   InputSource
	Sounds  SoundPlayer

	Explosion system.EmitterSpec
	Starfield []system.EmitterSpec

	Background color.RGBA
	Label      color.RGBA
	Warning    color.RGBA
}

// NewEnv resolves the emitters and rules shared by the scenes.
// font and sounds may be nil.
func NewEnv(cfg *config.GameConfig, catalog *assets.Catalog, font *text.GoTextFaceSource, input InputSource, sounds SoundPlayer) (*Env, error) {
	env := &Env{
		Config:  cfg,
		Rules:   system.NewRules(cfg),
		Catalog: catalog,
		Font:    font,
		Input:   input,
		Sounds:  sounds,
	}

	d := cfg.Game.Display
	for _, c := range []struct {
		dst   *color.RGBA
		field string
		value string
	}{
		{&env.Background, "background", d.Background},
		{&env.Label, "labelColor", d.LabelColor},
		{&env.Warning, "warningColor", d.WarningColor},
	} {
		parsed, err := assets.ParseColor(c.value)
		if err != nil {
			return nil, fmt.Errorf("display.%s: %w", c.field, err)
		}
		*c.dst = parsed
	}

	var err error
	env.Explosion, err = system.NewEmitterSpec(cfg.Entities.Effects.Explosion)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve explosion: %w", err)
	}
	for _, ec := range cfg.Entities.Effects.Starfield {
		spec, err := system.NewEmitterSpec(ec)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve starfield: %w", err)
		}
		env.Starfield = append(env.Starfield, spec)
	}

	return env, nil
}

// PlaySound plays a cue if a sound player is set
func (e *Env) PlaySound(cue string) {
	if e.Sounds != nil {
		e.Sounds.Play(cue)
	}
}

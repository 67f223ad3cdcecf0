package system

import (
	"github.com/younwookim/starfall/internal/domain/difficulty"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Sound cue names
const (
	CueLaser = "laser"
)

// Rules is the read-only tuning the frame step consults
type Rules struct {
	config.RulesConfig
	Curve difficulty.Curve

	SceneW, SceneH float64

	ExplosionScale    float64
	ExplosionDuration float64
}

// NewRules builds the frame step's rules from loaded configuration
func NewRules(cfg *config.GameConfig) Rules {
	r := cfg.Game.Rules
	return Rules{
		RulesConfig:       r,
		Curve:             r.Difficulty.Curve(),
		SceneW:            float64(cfg.Game.Display.SceneWidth),
		SceneH:            float64(cfg.Game.Display.SceneHeight),
		ExplosionScale:    cfg.Entities.Effects.Explosion.Scale,
		ExplosionDuration: cfg.Entities.Effects.Explosion.Duration,
	}
}

// View returns the visible scene rectangle
func (r Rules) View() entity.Rect {
	return entity.SceneBounds(r.SceneW, r.SceneH)
}

// StartPos returns where the player appears at the start of a round
func (r Rules) StartPos() entity.Vec {
	return entity.Vec{X: r.PlayerStart.X, Y: r.PlayerStart.Y}
}

package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid value")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", field, ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the values the game loop relies on.
// Templates are not required: a missing template only disables its spawns.
func (c *GameConfig) Validate() error {
	if c.Game == nil || c.Entities == nil {
		return fmt.Errorf("config: %w: game and entities must both be loaded", ErrInvalid)
	}

	d := c.Game.Display
	if d.SceneWidth <= 0 || d.SceneHeight <= 0 {
		return invalid("display.sceneWidth/sceneHeight", "got %dx%d", d.SceneWidth, d.SceneHeight)
	}
	if d.Framerate <= 0 {
		return invalid("display.framerate", "got %d", d.Framerate)
	}

	r := c.Game.Rules
	if r.LaserFireInterval <= 0 {
		return invalid("rules.laserFireInterval", "got %v", r.LaserFireInterval)
	}
	if r.Difficulty.BaseEnemyInterval <= 0 {
		return invalid("rules.difficulty.baseEnemyInterval", "got %v", r.Difficulty.BaseEnemyInterval)
	}
	if r.Difficulty.IntervalDecay <= 1 {
		return invalid("rules.difficulty.intervalDecay", "must be > 1, got %v", r.Difficulty.IntervalDecay)
	}
	if r.Difficulty.DecayDivisor <= 0 {
		return invalid("rules.difficulty.decayDivisor", "got %v", r.Difficulty.DecayDivisor)
	}
	prev := r.Difficulty.BaseSideSpeed
	for i, s := range r.Difficulty.SideSpeedSteps {
		if s.Cap < prev {
			return invalid(fmt.Sprintf("rules.difficulty.sideSpeedSteps[%d]", i), "cap %d below previous %d", s.Cap, prev)
		}
		if i > 0 && s.MinScore <= r.Difficulty.SideSpeedSteps[i-1].MinScore {
			return invalid(fmt.Sprintf("rules.difficulty.sideSpeedSteps[%d]", i), "minScore must ascend")
		}
		prev = s.Cap
	}

	e := r.Enemy
	if e.WidenScore <= 0 {
		return invalid("rules.enemy.widenScore", "got %d", e.WidenScore)
	}
	if e.FastSpeed > e.SlowSpeed {
		return invalid("rules.enemy.fastSpeed", "%d is slower than slowSpeed %d", e.FastSpeed, e.SlowSpeed)
	}
	if e.Dive.RollMax < 1 || e.Dive.RollDivisor <= 0 {
		return invalid("rules.enemy.dive", "rollMax %d, rollDivisor %d", e.Dive.RollMax, e.Dive.RollDivisor)
	}
	if e.SideRollMax < 1 {
		return invalid("rules.enemy.sideRollMax", "got %d", e.SideRollMax)
	}
	if 2*e.SpawnMargin >= d.SceneWidth {
		return invalid("rules.enemy.spawnMargin", "%d leaves no spawn room", e.SpawnMargin)
	}

	p := r.PowerUp
	if p.MinInterval <= 0 || p.MaxInterval < p.MinInterval {
		return invalid("rules.powerUp", "interval range [%v, %v]", p.MinInterval, p.MaxInterval)
	}
	if p.MinY > d.SceneHeight/2-p.TopMargin {
		return invalid("rules.powerUp.minY", "%d above spawn ceiling", p.MinY)
	}

	return nil
}

// Package difficulty maps the current score to gameplay parameters.
package difficulty

import "math"

// Step raises the horizontal speed cap once the score reaches MinScore
type Step struct {
	MinScore int
	Cap      int
}

// Curve holds the tunable constants of the difficulty curve
type Curve struct {
	BaseEnemyInterval float64 // seconds between enemy spawns at score 0
	IntervalDecay     float64 // base of the exponential decay (>1)
	DecayDivisor      float64 // score units per decay step
	BaseSideSpeed     int     // horizontal speed cap below the first step
	SideSpeedSteps    []Step  // ascending by MinScore
	WarningScore      int     // score at which the label switches color
}

// DefaultCurve returns the curve the game ships with
func DefaultCurve() Curve {
	return Curve{
		BaseEnemyInterval: 0.65,
		IntervalDecay:     1.058,
		DecayDivisor:      10,
		BaseSideSpeed:     75,
		SideSpeedSteps: []Step{
			{MinScore: 175, Cap: 125},
			{MinScore: 280, Cap: 200},
		},
		WarningScore: 250,
	}
}

// EnemyInterval returns the seconds between enemy spawns at the given score.
// interval = base * decay^(-score/divisor)
func (c Curve) EnemyInterval(score int) float64 {
	return c.BaseEnemyInterval * math.Pow(c.IntervalDecay, -float64(score)/c.DecayDivisor)
}

// MaxSideSpeed returns the horizontal speed cap for enemies at the given score
func (c Curve) MaxSideSpeed(score int) int {
	speed := c.BaseSideSpeed
	for _, s := range c.SideSpeedSteps {
		if score >= s.MinScore {
			speed = s.Cap
		}
	}
	return speed
}

// Warning reports whether the score label uses the warning color
func (c Curve) Warning(score int) bool {
	return score >= c.WarningScore
}

// Params is the set of derived parameters for one score value
type Params struct {
	EnemyInterval float64
	MaxSideSpeed  int
	Warning       bool
}

// At evaluates every derived parameter for the given score
func (c Curve) At(score int) Params {
	return Params{
		EnemyInterval: c.EnemyInterval(score),
		MaxSideSpeed:  c.MaxSideSpeed(score),
		Warning:       c.Warning(score),
	}
}

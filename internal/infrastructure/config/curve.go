package config

import "github.com/younwookim/starfall/internal/domain/difficulty"

// Curve converts the difficulty rules into a difficulty.Curve
func (d DifficultyRules) Curve() difficulty.Curve {
	steps := make([]difficulty.Step, len(d.SideSpeedSteps))
	for i, s := range d.SideSpeedSteps {
		steps[i] = difficulty.Step{MinScore: s.MinScore, Cap: s.Cap}
	}
	return difficulty.Curve{
		BaseEnemyInterval: d.BaseEnemyInterval,
		IntervalDecay:     d.IntervalDecay,
		DecayDivisor:      d.DecayDivisor,
		BaseSideSpeed:     d.BaseSideSpeed,
		SideSpeedSteps:    steps,
		WarningScore:      d.WarningScore,
	}
}

package replay

import (
	"math"
	"math/rand"

	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

// Autopilot steers the player headlessly: it lines up under the nearest
// enemy to shoot it and sidesteps enemies that get too close.
type Autopilot struct {
	MaxStep    float64 // scene units per frame
	DodgeRange float64 // vertical distance at which an enemy is a threat
	DodgeWidth float64 // horizontal half-width of the danger lane
	Margin     float64 // distance kept from the side edges
}

// DefaultAutopilot returns a moderately careful pilot
func DefaultAutopilot() Autopilot {
	return Autopilot{
		MaxStep:    14,
		DodgeRange: 260,
		DodgeWidth: 90,
		Margin:     50,
	}
}

// Steer returns the touch for this frame, or nil once the player is gone
func (a Autopilot) Steer(s *system.Session, sceneW float64) []entity.Vec {
	w := s.World
	if !w.HasPlayer() {
		return nil
	}
	pos := w.Position[w.PlayerID]

	target := pos.X
	nearest := math.Inf(1)
	dodging := false
	for _, id := range w.Entities() {
		if w.Kind[id] != entity.KindEnemy {
			continue
		}
		e := w.Position[id]
		dy := e.Y - pos.Y
		if dy < 0 {
			continue
		}
		if dy < a.DodgeRange && math.Abs(e.X-pos.X) < a.DodgeWidth {
			dodging = true
			if e.X >= pos.X {
				target = pos.X - a.MaxStep
			} else {
				target = pos.X + a.MaxStep
			}
			continue
		}
		if !dodging && dy < nearest {
			nearest = dy
			target = e.X
		}
	}

	dx := math.Max(-a.MaxStep, math.Min(a.MaxStep, target-pos.X))
	half := sceneW/2 - a.Margin
	x := math.Max(-half, math.Min(half, pos.X+dx))

	return []entity.Vec{{X: x, Y: pos.Y}}
}

// Play runs an autopilot round for at most frames frames and returns its
// recorded input together with the outcome
func Play(rules system.Rules, catalog *assets.Catalog, pilot Autopilot, seed int64, frames int, dt float64) (ReplayData, Outcome) {
	s := system.NewSession(rules, catalog, rand.New(rand.NewSource(seed)), dt, nil)
	rec := NewRecorder(seed)

	for i := 0; i < frames && !s.Ended(); i++ {
		touches := pilot.Steer(s, rules.SceneW)
		rec.RecordFrame(touches)
		s.Step(touches)
	}
	rec.Stop()

	return rec.Data(), outcomeOf(s)
}

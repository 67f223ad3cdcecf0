package replay

import (
	"math/rand"

	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

// Outcome summarizes a finished headless round
type Outcome struct {
	Frames   int        // frames stepped
	Score    int        // final score
	Ended    bool       // the player died
	Player   entity.Vec // last known player position
	Entities int        // entities alive at the end, player included
}

func outcomeOf(s *system.Session) Outcome {
	return Outcome{
		Frames:   s.Frame(),
		Score:    s.State.Score,
		Ended:    s.Ended(),
		Player:   s.State.Player.Pos,
		Entities: len(s.World.Entities()),
	}
}

// Simulate replays recorded touches against a fresh round seeded from the
// replay. It stops when the frames run out or the player dies.
func Simulate(rules system.Rules, catalog *assets.Catalog, data ReplayData, dt float64) Outcome {
	s := system.NewSession(rules, catalog, rand.New(rand.NewSource(data.Seed)), dt, nil)
	r := NewReplayer(data)

	for !s.Ended() {
		touches, ok := r.GetInput()
		if !ok {
			break
		}
		s.Step(touches)
	}

	return outcomeOf(s)
}

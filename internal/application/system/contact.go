package system

import (
	"github.com/younwookim/starfall/internal/application/state"
	"github.com/younwookim/starfall/internal/domain/entity"
)

// pairing is the gameplay meaning of a contact between two kinds
type pairing int

const (
	pairIgnored pairing = iota
	pairPlayerEnemy
	pairPlayerPowerUp
	pairLaserEnemy
)

// classify maps an unordered kind pair to its pairing
func classify(a, b entity.Kind) pairing {
	switch {
	case is(a, b, entity.KindPlayer, entity.KindEnemy):
		return pairPlayerEnemy
	case is(a, b, entity.KindPlayer, entity.KindPowerUp):
		return pairPlayerPowerUp
	case is(a, b, entity.KindLaser, entity.KindEnemy):
		return pairLaserEnemy
	default:
		return pairIgnored
	}
}

func is(a, b, x, y entity.Kind) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// other returns the side of the contact that is not of kind k
func other(c ContactEvent, k entity.Kind) entity.Ref {
	if c.A.Kind == k {
		return c.B
	}
	return c.A
}

// ResolveContact applies one contact to the state and returns its commands.
// Contacts touching a body that is dead or already consumed this frame are
// skipped. Every body a contact removes is added to consumed.
func ResolveContact(s *state.GameState, c ContactEvent, rules Rules, consumed map[entity.ID]bool) []Command {
	if !c.A.Alive || !c.B.Alive || consumed[c.A.ID] || consumed[c.B.ID] {
		return nil
	}

	switch classify(c.A.Kind, c.B.Kind) {
	case pairPlayerEnemy:
		if !s.Player.Alive {
			return nil
		}
		enemy, player := other(c, entity.KindPlayer), other(c, entity.KindEnemy)
		consumed[enemy.ID] = true
		consumed[player.ID] = true
		s.KillPlayer()
		return []Command{
			RemoveCommand{ID: enemy.ID},
			RemoveCommand{ID: player.ID},
			EndGameCommand{Delay: rules.Transitions.Death},
		}

	case pairPlayerPowerUp:
		if !s.Player.Alive {
			return nil
		}
		powerUp := other(c, entity.KindPlayer)
		consumed[powerUp.ID] = true
		s.AddScore(rules.PowerUp.Bonus, rules.Curve)
		return []Command{
			RemoveCommand{ID: powerUp.ID},
			ScoreChangedCommand{Score: s.Score, Warning: s.Warning},
		}

	case pairLaserEnemy:
		consumed[c.A.ID] = true
		consumed[c.B.ID] = true
		s.AddScore(rules.LaserHitScore, rules.Curve)
		return []Command{
			ExplodeCommand{At: c.A.Pos, Scale: rules.ExplosionScale, Duration: rules.ExplosionDuration},
			PlaySoundCommand{Cue: CueLaser},
			RemoveCommand{ID: c.A.ID},
			RemoveCommand{ID: c.B.ID},
			ScoreChangedCommand{Score: s.Score, Warning: s.Warning},
		}

	case pairIgnored:
		return nil
	}
	return nil
}

package system

import (
	"github.com/younwookim/starfall/internal/application/state"
	"github.com/younwookim/starfall/internal/domain/entity"
)

// Advance runs one frame of the game loop.
// now is the absolute scene clock in seconds. Touches are applied first, then
// contacts in the order given, then the spawn timers with the time elapsed
// since the previous frame. The returned commands are in execution order.
func Advance(s state.GameState, now float64, events []Event, rules Rules, rng Rand) (state.GameState, []Command) {
	var cmds []Command

	moved := false
	for _, ev := range events {
		if t, ok := ev.(TouchEvent); ok && s.Player.Alive {
			s.Player.Pos = t.Pos
			moved = true
		}
	}
	if moved {
		cmds = append(cmds, MovePlayerCommand{Pos: s.Player.Pos})
	}

	consumed := make(map[entity.ID]bool)
	for _, ev := range events {
		if c, ok := ev.(ContactEvent); ok {
			cmds = append(cmds, ResolveContact(&s, c, rules, consumed)...)
		}
	}

	elapsed := now - s.LastFrameTime

	if s.Laser.Tick(elapsed) {
		cmds = append(cmds, SpawnLaserCommand{Pos: s.Player.Pos})
	}
	if s.Enemy.Tick(elapsed) {
		cmds = append(cmds, EnemySpawn(rules, s.Score, s.MaxSideSpeed, rng))
	}
	if s.PowerUp.Tick(elapsed) {
		cmds = append(cmds, PowerUpSpawn(rules, rng))
		s.PowerUp.Interval = NextPowerUpInterval(rules, rng)
	}

	s.LastFrameTime = now
	return s, cmds
}

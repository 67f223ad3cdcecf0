package state

import (
	"math"

	"github.com/younwookim/starfall/internal/domain/difficulty"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Timer accumulates elapsed seconds until it reaches Interval
type Timer struct {
	Interval float64
	Elapsed  float64
}

// Tick fires when the accumulated time has reached the interval, resetting it.
// Otherwise it adds dt and reports false. Elapsed time is checked before it is
// added, so a timer fires on the frame after it becomes due.
func (t *Timer) Tick(dt float64) bool {
	if t.Elapsed >= t.Interval {
		t.Elapsed = 0
		return true
	}
	t.Elapsed += dt
	return false
}

// Disable makes the timer unreachable
func (t *Timer) Disable() {
	t.Interval = math.Inf(1)
}

// Disabled reports whether the timer can never fire
func (t Timer) Disabled() bool {
	return math.IsInf(t.Interval, 1)
}

// PlayerState is the core's view of the player
type PlayerState struct {
	Pos   entity.Vec
	Alive bool
}

// GameState is everything the frame step reads and writes.
// It is a value type: Advance returns an updated copy.
type GameState struct {
	Phase Phase
	Score int

	Laser   Timer
	Enemy   Timer
	PowerUp Timer

	MaxSideSpeed int
	Warning      bool

	Player        PlayerState
	LastFrameTime float64
}

// New returns the state at the start of a round
func New(rules config.RulesConfig, curve difficulty.Curve, playerPos entity.Vec) GameState {
	p := curve.At(0)
	return GameState{
		Phase:        PhasePlaying,
		Laser:        Timer{Interval: rules.LaserFireInterval},
		Enemy:        Timer{Interval: p.EnemyInterval},
		PowerUp:      Timer{Interval: rules.PowerUp.InitialInterval, Elapsed: rules.PowerUp.InitialElapsed},
		MaxSideSpeed: p.MaxSideSpeed,
		Warning:      p.Warning,
		Player:       PlayerState{Pos: playerPos, Alive: true},
	}
}

// AddScore increases the score and recomputes the derived difficulty parameters.
// Non-positive amounts are ignored so the score never decreases.
func (s *GameState) AddScore(amount int, curve difficulty.Curve) {
	if amount <= 0 {
		return
	}
	s.Score += amount

	p := curve.At(s.Score)
	s.Enemy.Interval = p.EnemyInterval
	s.MaxSideSpeed = p.MaxSideSpeed
	if p.Warning {
		s.Warning = true
	}
}

// KillPlayer marks the player dead and stops laser fire for good
func (s *GameState) KillPlayer() {
	s.Player.Alive = false
	s.Laser.Disable()
	s.Phase = PhaseGameOver
}

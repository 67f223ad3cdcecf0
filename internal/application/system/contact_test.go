package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/starfall/internal/application/state"
	"github.com/younwookim/starfall/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b entity.Kind
		want pairing
	}{
		{entity.KindPlayer, entity.KindEnemy, pairPlayerEnemy},
		{entity.KindEnemy, entity.KindPlayer, pairPlayerEnemy},
		{entity.KindPlayer, entity.KindPowerUp, pairPlayerPowerUp},
		{entity.KindPowerUp, entity.KindPlayer, pairPlayerPowerUp},
		{entity.KindLaser, entity.KindEnemy, pairLaserEnemy},
		{entity.KindEnemy, entity.KindLaser, pairLaserEnemy},
		{entity.KindLaser, entity.KindPowerUp, pairIgnored},
		{entity.KindEnemy, entity.KindEnemy, pairIgnored},
		{entity.KindPlayer, entity.KindLaser, pairIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.a, tt.b))
		})
	}
}

func TestResolveContact_PlayerEnemy(t *testing.T) {
	rules := loadRules(t)
	s := newState(rules)
	consumed := map[entity.ID]bool{}

	cmds := ResolveContact(&s, ContactEvent{
		A: ref(1, entity.KindPlayer, 0, -400),
		B: ref(7, entity.KindEnemy, 0, -390),
	}, rules, consumed)

	assert.Equal(t, []Command{
		RemoveCommand{ID: 7},
		RemoveCommand{ID: 1},
		EndGameCommand{Delay: 2.0},
	}, cmds)
	assert.False(t, s.Player.Alive)
	assert.True(t, math.IsInf(s.Laser.Interval, 1))
	assert.Equal(t, state.PhaseGameOver, s.Phase)
	assert.True(t, consumed[1])
	assert.True(t, consumed[7])
}

func TestResolveContact_PlayerPowerUp(t *testing.T) {
	rules := loadRules(t)
	s := newState(rules)

	cmds := ResolveContact(&s, ContactEvent{
		A: ref(4, entity.KindPowerUp, 10, -400),
		B: ref(1, entity.KindPlayer, 0, -400),
	}, rules, map[entity.ID]bool{})

	assert.Equal(t, []Command{
		RemoveCommand{ID: 4},
		ScoreChangedCommand{Score: 5},
	}, cmds)
	assert.Equal(t, 5, s.Score)
	assert.True(t, s.Player.Alive)
	assert.Equal(t, state.PhasePlaying, s.Phase)
}

func TestResolveContact_LaserEnemy(t *testing.T) {
	rules := loadRules(t)
	s := newState(rules)

	cmds := ResolveContact(&s, ContactEvent{
		A: ref(3, entity.KindEnemy, 20, 100),
		B: ref(5, entity.KindLaser, 22, 90),
	}, rules, map[entity.ID]bool{})

	assert.Equal(t, []Command{
		ExplodeCommand{At: entity.Vec{X: 20, Y: 100}, Scale: 0.5, Duration: 2.0},
		PlaySoundCommand{Cue: CueLaser},
		RemoveCommand{ID: 3},
		RemoveCommand{ID: 5},
		ScoreChangedCommand{Score: 1},
	}, cmds)
	assert.Equal(t, 1, s.Score)
	assert.Less(t, s.Enemy.Interval, 0.65)
}

func TestResolveContact_Guards(t *testing.T) {
	rules := loadRules(t)

	t.Run("dead body", func(t *testing.T) {
		s := newState(rules)
		dead := ref(3, entity.KindEnemy, 0, 0)
		dead.Alive = false

		cmds := ResolveContact(&s, ContactEvent{A: dead, B: ref(5, entity.KindLaser, 0, 0)}, rules, map[entity.ID]bool{})

		assert.Empty(t, cmds)
		assert.Equal(t, 0, s.Score)
	})

	t.Run("consumed this frame", func(t *testing.T) {
		s := newState(rules)
		consumed := map[entity.ID]bool{}
		enemy := ref(3, entity.KindEnemy, 0, 0)

		first := ResolveContact(&s, ContactEvent{A: enemy, B: ref(5, entity.KindLaser, 0, 0)}, rules, consumed)
		second := ResolveContact(&s, ContactEvent{A: enemy, B: ref(6, entity.KindLaser, 0, 0)}, rules, consumed)

		assert.NotEmpty(t, first)
		assert.Empty(t, second)
		assert.Equal(t, 1, s.Score)
		assert.False(t, consumed[6])
	})

	t.Run("player already dead", func(t *testing.T) {
		s := newState(rules)
		s.KillPlayer()

		cmds := ResolveContact(&s, ContactEvent{A: ref(1, entity.KindPlayer, 0, 0), B: ref(4, entity.KindPowerUp, 0, 0)}, rules, map[entity.ID]bool{})

		assert.Empty(t, cmds)
		assert.Equal(t, 0, s.Score)
	})

	t.Run("ignored pairing", func(t *testing.T) {
		s := newState(rules)

		cmds := ResolveContact(&s, ContactEvent{A: ref(2, entity.KindLaser, 0, 0), B: ref(4, entity.KindPowerUp, 0, 0)}, rules, map[entity.ID]bool{})

		assert.Empty(t, cmds)
	})
}

func TestResolveContact_WarningAndCap(t *testing.T) {
	rules := loadRules(t)
	s := newState(rules)
	s.AddScore(299, rules.Curve)

	cmds := ResolveContact(&s, ContactEvent{
		A: ref(3, entity.KindEnemy, 0, 0),
		B: ref(5, entity.KindLaser, 0, 0),
	}, rules, map[entity.ID]bool{})

	assert.Contains(t, cmds, Command(ScoreChangedCommand{Score: 300, Warning: true}))
	assert.Equal(t, 200, s.MaxSideSpeed)
	assert.True(t, s.Warning)
}

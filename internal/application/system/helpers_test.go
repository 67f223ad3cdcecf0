package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/starfall/internal/application/state"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// scriptRand returns queued values and records the bound of every Intn call
type scriptRand struct {
	ints   []int
	floats []float64
	calls  []int
}

func (r *scriptRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func loadRules(t *testing.T) Rules {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return NewRules(cfg)
}

func newState(rules Rules) state.GameState {
	return state.New(rules.RulesConfig, rules.Curve, entity.Vec{Y: -400})
}

func ref(id entity.ID, kind entity.Kind, x, y float64) entity.Ref {
	return entity.Ref{ID: id, Kind: kind, Pos: entity.Vec{X: x, Y: y}, Alive: true}
}

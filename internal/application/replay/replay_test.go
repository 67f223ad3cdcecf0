package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

const dt = 1.0 / 60.0

func loadGame(t *testing.T) (system.Rules, *assets.Catalog) {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	catalog, err := assets.NewCatalog(cfg.Entities.Templates)
	require.NoError(t, err)
	return system.NewRules(cfg), catalog
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(7)
	rec.RecordFrame([]entity.Vec{{X: 1, Y: 2}})
	rec.RecordFrame(nil)
	rec.Stop()
	rec.RecordFrame([]entity.Vec{{X: 3}})

	data := rec.Data()
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, FrameInput{F: 0, T: []TouchPoint{{X: 1, Y: 2}}}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1}, data.Frames[1])
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, T: []TouchPoint{{X: 100, Y: 100}}},
			{F: 1},
			{F: 2, T: []TouchPoint{{X: 1}, {X: 2}}},
		},
	}

	replayer := NewReplayer(data)

	touches, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, []entity.Vec{{X: 100, Y: 100}}, touches)

	touches, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Empty(t, touches)

	touches, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, []entity.Vec{{X: 1}, {X: 2}}, touches)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 10, -400))

	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	assert.Equal(t, 3, replayer.CurrentFrame())
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())

	touches, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, []entity.Vec{{X: 10, Y: -400}}, touches)
}

func TestEncodeDecode(t *testing.T) {
	data := CreateTestReplayData(2, 5, 6)

	var buf bytes.Buffer
	require.NoError(t, data.Encode(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, *decoded)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"))
	assert.ErrorContains(t, err, "failed to decode replay")

	_, err = Decode(strings.NewReader(`{"version":"0.1","seed":1,"frames":[]}`))
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestSimulate_StopsAtEndOfInput(t *testing.T) {
	rules, catalog := loadGame(t)

	out := Simulate(rules, catalog, CreateTestReplayData(30, 0, -400), dt)

	assert.Equal(t, 30, out.Frames)
	assert.False(t, out.Ended)
	assert.Equal(t, entity.Vec{Y: -400}, out.Player)
}

func TestSimulate_Deterministic(t *testing.T) {
	rules, catalog := loadGame(t)
	data := CreateTestReplayData(1800, -200, -400)

	a := Simulate(rules, catalog, data, dt)
	b := Simulate(rules, catalog, data, dt)

	assert.Equal(t, a, b)
}

func TestPlay_ReplayReproducesOutcome(t *testing.T) {
	rules, catalog := loadGame(t)

	for _, seed := range []int64{1, 2, 3} {
		data, played := Play(rules, catalog, DefaultAutopilot(), seed, 3600, dt)
		replayed := Simulate(rules, catalog, data, dt)

		assert.Equal(t, played, replayed, "seed %d", seed)
		assert.Equal(t, played.Frames, len(data.Frames))
	}
}

func TestAutopilot_StaysInBounds(t *testing.T) {
	rules, catalog := loadGame(t)
	s := system.NewSession(rules, catalog, nil, dt, nil)
	w := s.World
	w.Position[w.PlayerID] = ecs.Position{X: 330, Y: -400}
	w.Spawn(entity.KindEnemy, ecs.Position{X: 600, Y: 500}, ecs.Velocity{}, ecs.Body{}, ecs.Sprite{})

	touches := DefaultAutopilot().Steer(s, rules.SceneW)

	require.Len(t, touches, 1)
	assert.LessOrEqual(t, touches[0].X, 325.0)
}

func TestAutopilot_Dodges(t *testing.T) {
	rules, catalog := loadGame(t)
	s := system.NewSession(rules, catalog, nil, dt, nil)
	w := s.World
	w.Spawn(entity.KindEnemy, ecs.Position{X: 10, Y: -250}, ecs.Velocity{}, ecs.Body{}, ecs.Sprite{})

	touches := DefaultAutopilot().Steer(s, rules.SceneW)

	require.Len(t, touches, 1)
	assert.Equal(t, entity.Vec{X: -14, Y: -400}, touches[0])
}

func TestAutopilot_NoPlayer(t *testing.T) {
	rules, catalog := loadGame(t)
	s := system.NewSession(rules, catalog, nil, dt, nil)
	s.World.DestroyEntity(s.World.PlayerID)

	assert.Nil(t, DefaultAutopilot().Steer(s, rules.SceneW))
}

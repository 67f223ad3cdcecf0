package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
)

func TestSweep(t *testing.T) {
	w := ecs.NewWorld()
	box := ecs.Body{Width: 20, Height: 20}
	view := entity.SceneBounds(750, 1334)

	player := w.Spawn(entity.KindPlayer, ecs.Position{X: 2000}, ecs.Velocity{}, box, ecs.Sprite{})
	inside := w.Spawn(entity.KindEnemy, ecs.Position{}, ecs.Velocity{}, box, ecs.Sprite{})
	edge := w.Spawn(entity.KindPowerUp, ecs.Position{X: -375, Y: 100}, ecs.Velocity{}, box, ecs.Sprite{})
	below := w.Spawn(entity.KindEnemy, ecs.Position{Y: -700}, ecs.Velocity{}, box, ecs.Sprite{})
	above := w.Spawn(entity.KindLaser, ecs.Position{Y: 700}, ecs.Velocity{}, box, ecs.Sprite{})

	removed := Sweep(w, view)

	assert.Equal(t, []entity.ID{below, above}, removed)
	assert.True(t, w.Exists(player))
	assert.True(t, w.Exists(inside))
	assert.True(t, w.Exists(edge))
	assert.False(t, w.Exists(below))
	assert.False(t, w.Exists(above))
}

func TestSweep_Empty(t *testing.T) {
	w := ecs.NewWorld()
	assert.Empty(t, Sweep(w, entity.SceneBounds(100, 100)))
}

package ecs

import (
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

// Position is an entity's center in scene coordinates
type Position = entity.Vec

// Velocity is scene units per second
type Velocity = entity.Vec

// Body is a contact-only bounding box centered on Position
type Body struct {
	Width, Height float64
}

// Bounds returns the body's rectangle at the given center
func (b Body) Bounds(center Position) entity.Rect {
	return entity.RectAround(center, b.Width, b.Height)
}

// Sprite is the render data copied from the spawn template
type Sprite struct {
	Template string
	Shape    assets.Shape
	Tint     [4]uint8
	Scale    float64
}

// SpriteFrom builds a sprite from a resolved template
func SpriteFrom(t assets.Template) Sprite {
	return Sprite{
		Template: t.Name,
		Shape:    t.Shape,
		Tint:     [4]uint8{t.Color.R, t.Color.G, t.Color.B, t.Color.A},
		Scale:    1,
	}
}

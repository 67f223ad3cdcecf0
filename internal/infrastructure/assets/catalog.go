// Package assets resolves named spawn templates declared in entities.json.
package assets

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Template names looked up by the game
const (
	TemplateLaser      = "Laser"
	TemplateEnemy      = "Enemy"
	TemplatePowerUp    = "PowerUp"
	TemplatePlayer     = "Player"
	TemplateExplosion  = "Explosion"
	TemplateStartScene = "StartScene"
)

// Child node names expected inside spawn templates
const (
	ChildLaser   = "laser"
	ChildEnemy   = "enemy"
	ChildPowerUp = "powerUp"
	ChildPlayer  = "player1"
)

// Shape selects how a template is drawn
type Shape int

const (
	ShapeRect Shape = iota
	ShapeTriangle
	ShapeCircle
	ShapeShip
	ShapeEmitter
	ShapeScene
)

var shapeNames = map[string]Shape{
	"":         ShapeRect,
	"rect":     ShapeRect,
	"triangle": ShapeTriangle,
	"circle":   ShapeCircle,
	"ship":     ShapeShip,
	"emitter":  ShapeEmitter,
	"scene":    ShapeScene,
}

// Template is a resolved spawn template
type Template struct {
	Name     string
	Child    string
	Shape    Shape
	W, H     float64
	Color    color.RGBA
	Velocity entity.Vec
}

// Catalog holds resolved templates by name
type Catalog struct {
	templates map[string]Template
}

// NewCatalog resolves every template, failing on unknown shapes or colors
func NewCatalog(cfgs map[string]config.TemplateConfig) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]Template, len(cfgs))}

	for name, tc := range cfgs {
		shape, ok := shapeNames[tc.Shape]
		if !ok {
			return nil, fmt.Errorf("template %s: unknown shape %q", name, tc.Shape)
		}

		col := color.RGBA{0xff, 0xff, 0xff, 0xff}
		if tc.Color != "" {
			parsed, err := ParseColor(tc.Color)
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", name, err)
			}
			col = parsed
		}

		c.templates[name] = Template{
			Name:     name,
			Child:    tc.Child,
			Shape:    shape,
			W:        tc.Width,
			H:        tc.Height,
			Color:    col,
			Velocity: entity.Vec{X: tc.Velocity.X, Y: tc.Velocity.Y},
		}
	}

	return c, nil
}

// Template returns a standalone template (effects, scenes) by name
func (c *Catalog) Template(name string) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	t, ok := c.templates[name]
	return t, ok
}

// Lookup returns the template's named child node.
// Both the template and its child must exist.
func (c *Catalog) Lookup(name, child string) (Template, bool) {
	t, ok := c.Template(name)
	if !ok || t.Child != child {
		return Template{}, false
	}
	return t, true
}

// Missing returns the names from want that the catalog lacks, sorted
func (c *Catalog) Missing(want ...string) []string {
	var missing []string
	for _, name := range want {
		if _, ok := c.Template(name); !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

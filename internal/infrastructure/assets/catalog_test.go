package assets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

func testTemplates() map[string]config.TemplateConfig {
	return map[string]config.TemplateConfig{
		"Laser": {
			Child:    "laser",
			Shape:    "rect",
			Width:    8,
			Height:   40,
			Color:    "lime",
			Velocity: config.VecConfig{Y: 1000},
		},
		"Explosion": {Shape: "emitter", Color: "#ff8000"},
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(testTemplates())
	require.NoError(t, err)

	laser, ok := c.Lookup(TemplateLaser, ChildLaser)
	require.True(t, ok)
	assert.Equal(t, ShapeRect, laser.Shape)
	assert.Equal(t, 8.0, laser.W)
	assert.Equal(t, entity.Vec{Y: 1000}, laser.Velocity)
	assert.Equal(t, color.RGBA{0x00, 0xff, 0x00, 0xff}, laser.Color)

	explosion, ok := c.Template(TemplateExplosion)
	require.True(t, ok)
	assert.Equal(t, ShapeEmitter, explosion.Shape)
	assert.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, explosion.Color)
}

func TestCatalog_LookupMissing(t *testing.T) {
	c, err := NewCatalog(testTemplates())
	require.NoError(t, err)

	_, ok := c.Lookup(TemplateEnemy, ChildEnemy)
	assert.False(t, ok, "absent template")

	_, ok = c.Lookup(TemplateLaser, "beam")
	assert.False(t, ok, "wrong child name")

	var nilCatalog *Catalog
	_, ok = nilCatalog.Lookup(TemplateLaser, ChildLaser)
	assert.False(t, ok, "nil catalog")
}

func TestCatalog_Missing(t *testing.T) {
	c, err := NewCatalog(testTemplates())
	require.NoError(t, err)

	assert.Equal(t, []string{"Enemy", "PowerUp"}, c.Missing(TemplatePowerUp, TemplateLaser, TemplateEnemy))
	assert.Empty(t, c.Missing(TemplateLaser))
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := NewCatalog(map[string]config.TemplateConfig{"X": {Shape: "hexagon"}})
	assert.Error(t, err)

	_, err = NewCatalog(map[string]config.TemplateConfig{"X": {Color: "notacolor"}})
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"red", color.RGBA{0xff, 0x00, 0x00, 0xff}, true},
		{" White ", color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 0xff}, true},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, true},
		{"#12", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"blurple", color.RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Package title provides the start scene.
package title

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/starfall/internal/application/scene"
	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

const (
	titleFontSize  = 56
	promptFontSize = 24
)

// Title shows the start scene until the first touch
type Title struct {
	env  *scene.Env
	next func() scene.Scene
	view scene.Viewport

	background color.RGBA
	label      color.RGBA
	stars      system.ParticleSystem

	started bool
}

// New creates the title scene. next builds the scene a touch starts.
func New(env *scene.Env, next func() scene.Scene) *Title {
	t := &Title{
		env:        env,
		next:       next,
		view:       scene.Viewport{W: env.Rules.SceneW, H: env.Rules.SceneH},
		background: env.Background,
		label:      env.Label,
	}
	if tpl, ok := env.Catalog.Template(assets.TemplateStartScene); ok {
		t.background = tpl.Color
	}

	rng := rand.New(rand.NewSource(1))
	for _, spec := range env.Starfield {
		t.stars.Add(system.NewStarfield(spec, env.Rules.SceneW, env.Rules.SceneH, rng))
	}
	return t
}

// Update waits for a touch, then opens the doors onto the next scene
func (t *Title) Update(dt float64) (scene.Scene, error) {
	t.stars.Update(dt)

	if t.started || !t.env.Input.GetInput().Tapped {
		return nil, nil
	}
	t.started = true

	log.Printf("Starting game")
	return scene.NewTransition(t, t.next(), scene.DoorsOpenVertical, t.env.Rules.Transitions.Start), nil
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(t.background)
	t.view.DrawParticles(screen, t.stars.Emitters())

	cx := t.view.W / 2
	scene.DrawText(screen, t.env.Font, t.env.Config.Game.Display.Title, titleFontSize,
		cx, t.view.H/3, t.label, text.AlignCenter)
	scene.DrawText(screen, t.env.Font, "TAP TO START", promptFontSize,
		cx, t.view.H/2, t.label, text.AlignCenter)
}

// OnEnter implements scene.Scene
func (t *Title) OnEnter() {
	t.started = false
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}

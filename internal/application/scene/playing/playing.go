// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"log"
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/starfall/internal/application/scene"
	"github.com/younwookim/starfall/internal/application/system"
)

const (
	scoreFontSize = 48
	scoreMarginY  = 60
)

// Playing is the main gameplay scene.
// It feeds input into a system.Session and renders the result.
type Playing struct {
	env     *scene.Env
	session *system.Session
	title   func() scene.Scene
	view    scene.Viewport

	// Effects run on their own RNG so they never shift gameplay draws
	fxRng     *rand.Rand
	particles system.ParticleSystem

	background color.RGBA
	label      color.RGBA
	warning    color.RGBA

	seed  int64
	ended bool
}

// New creates a round seeded with seed. title builds the scene shown after death.
func New(env *scene.Env, seed int64, title func() scene.Scene) *Playing {
	p := &Playing{
		env:        env,
		title:      title,
		view:       scene.Viewport{W: env.Rules.SceneW, H: env.Rules.SceneH},
		fxRng:      rand.New(rand.NewSource(seed ^ 0x5eed)),
		background: env.Background,
		label:      env.Label,
		warning:    env.Warning,
		seed:       seed,
	}

	dt := 1.0 / float64(env.Config.Game.Display.Framerate)
	p.session = system.NewSession(env.Rules, env.Catalog, rand.New(rand.NewSource(seed)), dt, p)

	for _, spec := range env.Starfield {
		p.particles.Add(system.NewStarfield(spec, env.Rules.SceneW, env.Rules.SceneH, p.fxRng))
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.ended {
		return nil, nil
	}

	input := p.env.Input.GetInput()
	p.session.Step(input.Touches)
	p.particles.Update(dt)

	if p.session.Ended() {
		p.ended = true
		log.Printf("Game over: score %d after %d frames (seed: %d)",
			p.session.State.Score, p.session.Frame(), p.seed)
		return scene.NewTransition(p, p.title(), scene.DoorsCloseHorizontal, p.session.EndDelay()), nil
	}

	return nil, nil // nil = stay on this scene
}

// Explode starts an explosion emitter (implements system.Effects)
func (p *Playing) Explode(cmd system.ExplodeCommand) {
	p.particles.Add(system.NewBurst(p.env.Explosion, cmd.At, cmd.Scale, cmd.Duration, p.fxRng))
}

// PlaySound plays a cue (implements system.Effects)
func (p *Playing) PlaySound(cue string) {
	p.env.PlaySound(cue)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	p.view.DrawParticles(screen, p.particles.Emitters())

	w := p.session.World
	for _, id := range w.Entities() {
		p.view.DrawSprite(screen, w.Sprite[id], w.Body[id], w.Position[id])
	}

	p.drawScore(screen)
}

func (p *Playing) drawScore(screen *ebiten.Image) {
	c := p.label
	if p.session.State.Warning {
		c = p.warning
	}
	scene.DrawText(screen, p.env.Font, strconv.Itoa(p.session.State.Score), scoreFontSize,
		p.view.W/2, scoreMarginY, c, text.AlignCenter)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	log.Printf("Round started (seed: %d)", p.seed)
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {}

// Session returns the running round
func (p *Playing) Session() *system.Session {
	return p.session
}

// Particles returns the active emitters
func (p *Playing) Particles() []*system.Emitter {
	return p.particles.Emitters()
}

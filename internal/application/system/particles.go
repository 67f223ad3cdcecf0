package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// prewarmStep is the simulation step used when pre-warming an emitter
const prewarmStep = 1.0 / 30.0

// Particle is a short-lived visual effect
type Particle struct {
	Pos, Vel entity.Vec
	Life     float64 // seconds remaining
	MaxLife  float64
	Size     float64
	Color    color.RGBA
}

// Fade returns the remaining life as a fraction in [0, 1]
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// EmitterSpec is a resolved emitter configuration
type EmitterSpec struct {
	Name      string
	Particles int
	BirthRate float64
	Lifetime  float64
	Speed     float64
	SpeedVar  float64
	Size      float64
	Colors    []color.RGBA
	Prewarm   float64
}

// NewEmitterSpec resolves an emitter's colors
func NewEmitterSpec(cfg config.EmitterConfig) (EmitterSpec, error) {
	spec := EmitterSpec{
		Name:      cfg.Name,
		Particles: cfg.Particles,
		BirthRate: cfg.BirthRate,
		Lifetime:  cfg.Lifetime,
		Speed:     cfg.Speed,
		SpeedVar:  cfg.SpeedVar,
		Size:      cfg.Size,
		Prewarm:   cfg.Prewarm,
	}
	for _, name := range cfg.Colors {
		c, err := assets.ParseColor(name)
		if err != nil {
			return EmitterSpec{}, fmt.Errorf("emitter %s: %w", cfg.Name, err)
		}
		spec.Colors = append(spec.Colors, c)
	}
	if len(spec.Colors) == 0 {
		spec.Colors = []color.RGBA{{0xff, 0xff, 0xff, 0xff}}
	}
	return spec, nil
}

// Emitter owns a set of particles.
// A burst emitter releases all its particles at once and is done after its
// duration; a continuous emitter spawns along a horizontal line forever.
type Emitter struct {
	spec  EmitterSpec
	rng   Rand
	scale float64

	// Spawn line for continuous emitters
	origin entity.Vec
	width  float64

	burst    bool
	duration float64
	age      float64
	pending  float64

	particles []Particle
}

// NewBurst creates an explosion-style emitter at a point
func NewBurst(spec EmitterSpec, at entity.Vec, scale, duration float64, rng Rand) *Emitter {
	e := &Emitter{
		spec:     spec,
		rng:      rng,
		scale:    scale,
		origin:   at,
		burst:    true,
		duration: duration,
	}
	for i := 0; i < spec.Particles; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := (spec.Speed + (rng.Float64()*2-1)*spec.SpeedVar) * scale
		e.emit(at, entity.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed})
	}
	return e
}

// NewStarfield creates a continuous emitter along the top edge of the scene,
// falling downward, and runs it for the spec's prewarm time
func NewStarfield(spec EmitterSpec, sceneW, sceneH float64, rng Rand) *Emitter {
	e := &Emitter{
		spec:   spec,
		rng:    rng,
		scale:  1,
		origin: entity.Vec{X: -sceneW / 2, Y: sceneH / 2},
		width:  sceneW,
	}
	for t := 0.0; t < spec.Prewarm; t += prewarmStep {
		e.Update(prewarmStep)
	}
	return e
}

func (e *Emitter) emit(pos, vel entity.Vec) {
	life := e.spec.Lifetime * (0.5 + e.rng.Float64()*0.5)
	e.particles = append(e.particles, Particle{
		Pos:     pos,
		Vel:     vel,
		Life:    life,
		MaxLife: life,
		Size:    e.spec.Size * e.scale,
		Color:   e.spec.Colors[e.rng.Intn(len(e.spec.Colors))],
	})
}

// Update ages particles, drops expired ones and spawns new ones
func (e *Emitter) Update(dt float64) {
	e.age += dt

	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	e.particles = alive

	if e.burst || e.spec.BirthRate <= 0 {
		return
	}
	e.pending += e.spec.BirthRate * dt
	for e.pending >= 1 {
		e.pending--
		pos := entity.Vec{X: e.origin.X + e.rng.Float64()*e.width, Y: e.origin.Y}
		speed := e.spec.Speed + (e.rng.Float64()*2-1)*e.spec.SpeedVar
		e.emit(pos, entity.Vec{Y: -speed})
	}
}

// Done reports whether a burst emitter has outlived its duration
func (e *Emitter) Done() bool {
	return e.burst && e.age >= e.duration
}

// Particles returns the live particles
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Name returns the emitter's configured name
func (e *Emitter) Name() string {
	return e.spec.Name
}

// ParticleSystem updates a set of emitters and removes finished ones
type ParticleSystem struct {
	emitters []*Emitter
}

// Add registers an emitter
func (s *ParticleSystem) Add(e *Emitter) {
	s.emitters = append(s.emitters, e)
}

// Update advances every emitter and drops the ones that are done
func (s *ParticleSystem) Update(dt float64) {
	kept := s.emitters[:0]
	for _, e := range s.emitters {
		e.Update(dt)
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	s.emitters = kept
}

// Emitters returns the active emitters in the order they were added
func (s *ParticleSystem) Emitters() []*Emitter {
	return s.emitters
}

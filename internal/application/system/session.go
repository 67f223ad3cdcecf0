package system

import (
	"github.com/younwookim/starfall/internal/application/state"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

// Effects receives the commands that have no effect on the world
type Effects interface {
	Explode(cmd ExplodeCommand)
	PlaySound(cue string)
}

// NoEffects discards every effect
type NoEffects struct{}

func (NoEffects) Explode(ExplodeCommand) {}
func (NoEffects) PlaySound(string)       {}

// Session runs one round: the world, the frame step and command execution.
// It does not read input or draw; callers pass the frame's touches in.
type Session struct {
	World *ecs.World
	State state.GameState

	rules   Rules
	catalog *assets.Catalog
	rng     Rand
	effects Effects

	dt    float64
	clock float64
	frame int

	ended    bool
	endDelay float64
}

// NewSession creates a round with the player at its start position.
// If the player template is missing the player still exists with an empty body.
func NewSession(rules Rules, catalog *assets.Catalog, rng Rand, dt float64, effects Effects) *Session {
	if effects == nil {
		effects = NoEffects{}
	}
	s := &Session{
		World:   ecs.NewWorld(),
		State:   state.New(rules.RulesConfig, rules.Curve, rules.StartPos()),
		rules:   rules,
		catalog: catalog,
		rng:     rng,
		effects: effects,
		dt:      dt,
	}

	var body ecs.Body
	var sprite ecs.Sprite
	if t, ok := catalog.Lookup(assets.TemplatePlayer, assets.ChildPlayer); ok {
		body = ecs.Body{Width: t.W, Height: t.H}
		sprite = ecs.SpriteFrom(t)
	}
	s.World.Spawn(entity.KindPlayer, rules.StartPos(), ecs.Velocity{}, body, sprite)

	return s
}

// Step runs one frame and returns the commands it executed.
// Motion and contact detection run before the frame step, and the
// off-screen sweep runs after its commands.
func (s *Session) Step(touches []entity.Vec) []Command {
	s.World.Integrate(s.dt)
	contacts := s.World.DetectContacts()

	events := make([]Event, 0, len(touches)+len(contacts))
	for _, t := range touches {
		events = append(events, TouchEvent{Pos: t})
	}
	events = append(events, ContactEvents(contacts)...)

	s.clock += s.dt
	s.frame++

	var cmds []Command
	s.State, cmds = Advance(s.State, s.clock, events, s.rules, s.rng)
	for _, cmd := range cmds {
		s.execute(cmd)
	}

	Sweep(s.World, s.rules.View())
	return cmds
}

func (s *Session) execute(cmd Command) {
	switch c := cmd.(type) {
	case MovePlayerCommand:
		s.World.MovePlayer(c.Pos)
	case SpawnLaserCommand:
		s.spawn(entity.KindLaser, assets.TemplateLaser, assets.ChildLaser, c.Pos, nil)
	case SpawnEnemyCommand:
		s.spawn(entity.KindEnemy, assets.TemplateEnemy, assets.ChildEnemy, c.Pos, &c.Vel)
	case SpawnPowerUpCommand:
		var vel *entity.Vec
		if !c.TemplateVelocity {
			vel = &c.Vel
		}
		s.spawn(entity.KindPowerUp, assets.TemplatePowerUp, assets.ChildPowerUp, c.Pos, vel)
	case RemoveCommand:
		s.World.DestroyEntity(c.ID)
	case ExplodeCommand:
		if _, ok := s.catalog.Template(assets.TemplateExplosion); ok {
			s.effects.Explode(c)
		}
	case PlaySoundCommand:
		s.effects.PlaySound(c.Cue)
	case ScoreChangedCommand:
		// score lives in State
	case EndGameCommand:
		s.ended = true
		s.endDelay = c.Delay
	}
}

// spawn creates an entity from a template; vel overrides the template velocity.
// A missing template or child is a silent no-op.
func (s *Session) spawn(kind entity.Kind, template, child string, pos entity.Vec, vel *entity.Vec) {
	t, ok := s.catalog.Lookup(template, child)
	if !ok {
		return
	}
	v := t.Velocity
	if vel != nil {
		v = *vel
	}
	s.World.Spawn(kind, pos, v, ecs.Body{Width: t.W, Height: t.H}, ecs.SpriteFrom(t))
}

// Ended reports whether the player died
func (s *Session) Ended() bool { return s.ended }

// EndDelay returns the requested transition duration after death
func (s *Session) EndDelay() float64 { return s.endDelay }

// Frame returns the number of steps run so far
func (s *Session) Frame() int { return s.frame }

// Clock returns the scene clock in seconds
func (s *Session) Clock() float64 { return s.clock }

package system

import "github.com/younwookim/starfall/internal/domain/entity"

// Command is a side effect the frame step asks the scene to perform
type Command interface {
	isCommand()
}

// MovePlayerCommand places the player at an absolute position
type MovePlayerCommand struct {
	Pos entity.Vec
}

func (MovePlayerCommand) isCommand() {}

// SpawnLaserCommand creates a laser at the player's position
type SpawnLaserCommand struct {
	Pos entity.Vec
}

func (SpawnLaserCommand) isCommand() {}

// SpawnEnemyCommand creates an enemy with an already randomized velocity
type SpawnEnemyCommand struct {
	Pos entity.Vec
	Vel entity.Vec
}

func (SpawnEnemyCommand) isCommand() {}

// SpawnPowerUpCommand creates a power-up on a side edge.
// When TemplateVelocity is set the template's own velocity is kept and Vel is ignored.
type SpawnPowerUpCommand struct {
	Pos              entity.Vec
	Vel              entity.Vec
	TemplateVelocity bool
}

func (SpawnPowerUpCommand) isCommand() {}

// RemoveCommand detaches an entity from the scene
type RemoveCommand struct {
	ID entity.ID
}

func (RemoveCommand) isCommand() {}

// ExplodeCommand plays the explosion effect at a point
type ExplodeCommand struct {
	At       entity.Vec
	Scale    float64
	Duration float64
}

func (ExplodeCommand) isCommand() {}

// PlaySoundCommand plays a fire-and-forget sound cue
type PlaySoundCommand struct {
	Cue string
}

func (PlaySoundCommand) isCommand() {}

// ScoreChangedCommand refreshes the score label
type ScoreChangedCommand struct {
	Score   int
	Warning bool
}

func (ScoreChangedCommand) isCommand() {}

// EndGameCommand tears the scene down and returns to the title
type EndGameCommand struct {
	Delay float64
}

func (EndGameCommand) isCommand() {}

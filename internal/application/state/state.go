package state

// Phase is the lifecycle phase of the game loop
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/starfall/internal/domain/entity"
)

// InputSystem reads touches and the left mouse button
type InputSystem struct {
	sceneW, sceneH float64

	touchIDs []ebiten.TouchID
}

// NewInputSystem creates an input system for a scene of the given logical size
func NewInputSystem(sceneW, sceneH float64) *InputSystem {
	return &InputSystem{sceneW: sceneW, sceneH: sceneH}
}

// InputState holds the current input state
type InputState struct {
	// Touches are the pressed touch points in scene coordinates.
	// The mouse, while its left button is held, counts as one more touch.
	Touches []entity.Vec
	// Tapped is set on the frame a touch or click begins
	Tapped bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var in InputState

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, s.ToScene(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Touches = append(in.Touches, s.ToScene(x, y))
	}

	in.Tapped = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	return in
}

// ToScene converts a logical screen point (origin top-left, y down) to
// scene coordinates (origin at the center, y up)
func (s *InputSystem) ToScene(x, y int) entity.Vec {
	return entity.Vec{
		X: float64(x) - s.sceneW/2,
		Y: s.sceneH/2 - float64(y),
	}
}

// ToScreen is the inverse of ToScene
func (s *InputSystem) ToScreen(p entity.Vec) (float64, float64) {
	return p.X + s.sceneW/2, s.sceneH/2 - p.Y
}

// Events converts the touches into frame events, in the order they were read
func (in InputState) Events() []Event {
	events := make([]Event, 0, len(in.Touches))
	for _, t := range in.Touches {
		events = append(events, TouchEvent{Pos: t})
	}
	return events
}

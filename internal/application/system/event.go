package system

import (
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
)

// Event is an input to the frame step
type Event interface {
	isEvent()
}

// TouchEvent is a touch that began or moved this frame, in scene coordinates
type TouchEvent struct {
	Pos entity.Vec
}

func (TouchEvent) isEvent() {}

// ContactEvent reports that two bodies overlapped this frame
type ContactEvent struct {
	A, B entity.Ref
}

func (ContactEvent) isEvent() {}

// ContactEvents converts detected contacts into frame events
func ContactEvents(contacts []ecs.Contact) []Event {
	events := make([]Event, 0, len(contacts))
	for _, c := range contacts {
		events = append(events, ContactEvent{A: c.A, B: c.B})
	}
	return events
}

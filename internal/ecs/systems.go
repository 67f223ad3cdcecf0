package ecs

import (
	"github.com/younwookim/starfall/internal/domain/entity"
)

// Contact is an overlap between two bodies whose masks request a callback.
// A is always the earlier-created entity.
type Contact struct {
	A, B entity.Ref
}

// Integrate moves every live entity by its velocity over dt seconds
func (w *World) Integrate(dt float64) {
	for _, id := range w.order {
		if !w.Alive[id] {
			continue
		}
		w.Position[id] = w.Position[id].Add(w.Velocity[id].Scale(dt))
	}
}

// DetectContacts reports every overlapping pair whose kinds raise a contact.
// Bodies never push each other apart; overlap is only reported.
func (w *World) DetectContacts() []Contact {
	ids := w.Entities()
	var contacts []Contact

	for i := 0; i < len(ids); i++ {
		a := ids[i]
		ka := w.Kind[a]
		ba := w.Bounds(a)
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			if !entity.Contacts(ka, w.Kind[b]) {
				continue
			}
			if ba.Intersects(w.Bounds(b)) {
				contacts = append(contacts, Contact{A: w.Ref(a), B: w.Ref(b)})
			}
		}
	}

	return contacts
}

// MovePlayer sets the player position directly
func (w *World) MovePlayer(pos Position) {
	if !w.HasPlayer() {
		return
	}
	w.Position[w.PlayerID] = pos
}

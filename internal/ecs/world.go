package ecs

import (
	"github.com/younwookim/starfall/internal/domain/entity"
)

// World holds all component maps and the next entity ID
type World struct {
	nextID entity.ID
	order  []entity.ID // creation order, for deterministic iteration

	// Components
	Position map[entity.ID]Position
	Velocity map[entity.ID]Velocity
	Body     map[entity.ID]Body
	Sprite   map[entity.ID]Sprite

	// Tags
	Kind  map[entity.ID]entity.Kind
	Alive map[entity.ID]bool

	// Singleton references
	PlayerID entity.ID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Position: make(map[entity.ID]Position),
		Velocity: make(map[entity.ID]Velocity),
		Body:     make(map[entity.ID]Body),
		Sprite:   make(map[entity.ID]Sprite),
		Kind:     make(map[entity.ID]entity.Kind),
		Alive:    make(map[entity.ID]bool),
	}
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() entity.ID {
	id := w.nextID
	w.nextID++
	w.order = append(w.order, id)
	return id
}

// Spawn creates a live entity of the given kind
func (w *World) Spawn(kind entity.Kind, pos Position, vel Velocity, body Body, sprite Sprite) entity.ID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Velocity[id] = vel
	w.Body[id] = body
	w.Sprite[id] = sprite
	w.Kind[id] = kind
	w.Alive[id] = true

	if kind == entity.KindPlayer {
		w.PlayerID = id
	}
	return id
}

// DestroyEntity detaches an entity from the world.
// Destroying an unknown or already destroyed entity is a no-op.
func (w *World) DestroyEntity(id entity.ID) {
	if !w.Exists(id) {
		return
	}
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Body, id)
	delete(w.Sprite, id)
	delete(w.Kind, id)
	delete(w.Alive, id)

	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	if id == w.PlayerID {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id entity.ID) bool {
	_, ok := w.Position[id]
	return ok
}

// IsAlive reports whether the entity exists and has not been detached
func (w *World) IsAlive(id entity.ID) bool {
	return w.Alive[id]
}

// Entities returns live entity IDs in creation order
func (w *World) Entities() []entity.ID {
	ids := make([]entity.ID, 0, len(w.order))
	for _, id := range w.order {
		if w.Alive[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Ref snapshots an entity for a contact event
func (w *World) Ref(id entity.ID) entity.Ref {
	return entity.Ref{
		ID:    id,
		Kind:  w.Kind[id],
		Pos:   w.Position[id],
		Alive: w.Alive[id],
	}
}

// Bounds returns the entity's rectangle in scene coordinates
func (w *World) Bounds(id entity.ID) entity.Rect {
	return w.Body[id].Bounds(w.Position[id])
}

// HasPlayer reports whether the player entity is present
func (w *World) HasPlayer() bool {
	return w.PlayerID != 0 && w.Alive[w.PlayerID]
}

// Count returns the number of live entities of the given kind
func (w *World) Count(kind entity.Kind) int {
	n := 0
	for _, id := range w.order {
		if w.Alive[id] && w.Kind[id] == kind {
			n++
		}
	}
	return n
}

package system

import (
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
)

// Sweep destroys every non-player entity whose bounds lie entirely outside
// view and returns the removed IDs in creation order.
func Sweep(w *ecs.World, view entity.Rect) []entity.ID {
	var removed []entity.ID
	for _, id := range w.Entities() {
		if w.Kind[id] == entity.KindPlayer {
			continue
		}
		if !w.Bounds(id).Intersects(view) {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		w.DestroyEntity(id)
	}
	return removed
}

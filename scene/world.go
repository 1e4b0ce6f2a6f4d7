package scene

import "iter"

// EntityID is the stable index of an entity inside its World.
type EntityID int

// World owns the entities and world-anchored texts of a scene.
// Entities keep their index for the World's lifetime; there is no removal.
type World struct {
	entities []*Entity
	floating []*FloatingText
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddEntity stores a copy of e and returns its id.
func (w *World) AddEntity(e Entity) EntityID {
	stored := e
	w.entities = append(w.entities, &stored)
	return EntityID(len(w.entities) - 1)
}

// Entity returns the entity with the given id, or nil if the id is unknown.
// The pointer stays valid for the World's lifetime.
func (w *World) Entity(id EntityID) *Entity {
	if id < 0 || int(id) >= len(w.entities) {
		return nil
	}
	return w.entities[id]
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Entities iterates entities in insertion order.
func (w *World) Entities() iter.Seq2[EntityID, *Entity] {
	return func(yield func(EntityID, *Entity) bool) {
		for i, e := range w.entities {
			if !yield(EntityID(i), e) {
				return
			}
		}
	}
}

// AddFloatingText stores a world-anchored text and returns it for in-place
// updates.
func (w *World) AddFloatingText(ft FloatingText) *FloatingText {
	stored := ft
	w.floating = append(w.floating, &stored)
	return &stored
}

// FloatingTexts returns the world-anchored texts in insertion order.
func (w *World) FloatingTexts() []*FloatingText {
	return w.floating
}

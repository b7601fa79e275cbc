package engine

import (
	"slices"

	"github.com/lixenwraith/ecs-snake/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
// Not safe for concurrent use; the world is owned by a single goroutine
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // Dense array of entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Add inserts or updates a component for an entity
func (s *Store[T]) Add(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes the component of an entity, no-op if absent
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of all entities with this component, ascending by id
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	slices.Sort(result)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Max returns the highest entity id in the store
func (s *Store[T]) Max() (core.Entity, bool) {
	if len(s.entities) == 0 {
		return core.NoEntity, false
	}
	return slices.Max(s.entities), true
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}

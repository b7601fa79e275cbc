package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
)

// World contains all entities, their component stores and the field dimensions
// A single World is owned by the game driver and passed by pointer into every system
type World struct {
	// Field dimensions; logical coordinates are 0..Width-1 x 0..Height-1
	Width, Height int

	nextEntityID core.Entity
	entities     map[core.Entity]struct{}
	rng          *rand.Rand

	// Component Stores (Public for direct system access)
	Positions   *Store[components.PositionComponent]
	Velocities  *Store[components.VelocityComponent]
	Colliders   *Store[components.ColliderComponent]
	Renderables *Store[components.RenderableComponent]
	Follows     *Store[components.FollowsComponent]

	// Tag stores (sets)
	Controllables *Store[components.ControllableComponent]
	Growing       *Store[components.GrowingComponent]
	Edibles       *Store[components.EdibleComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// WorldOption configures a World at construction
type WorldOption func(*World)

// WithSeed makes food placement deterministic
func WithSeed(seed uint64) WorldOption {
	return func(w *World) {
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand overrides the random source used for food placement
func WithRand(rng *rand.Rand) WorldOption {
	return func(w *World) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// NewWorld creates a world for a width x height field with all component stores initialized
func NewWorld(width, height int, opts ...WorldOption) *World {
	w := &World{
		Width:         width,
		Height:        height,
		nextEntityID:  1,
		entities:      make(map[core.Entity]struct{}),
		Positions:     NewStore[components.PositionComponent](),
		Velocities:    NewStore[components.VelocityComponent](),
		Colliders:     NewStore[components.ColliderComponent](),
		Renderables:   NewStore[components.RenderableComponent](),
		Follows:       NewStore[components.FollowsComponent](),
		Controllables: NewStore[components.ControllableComponent](),
		Growing:       NewStore[components.GrowingComponent](),
		Edibles:       NewStore[components.EdibleComponent](),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Velocities,
		w.Colliders,
		w.Renderables,
		w.Follows,
		w.Controllables,
		w.Growing,
		w.Edibles,
	}

	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return w
}

// CreateEntity allocates a fresh identifier and adds it to the live set without components
// Identifiers are monotonic and never reused within the lifetime of the world
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = struct{}{}
	return id
}

// RemoveEntity purges an entity from the live set and every store
// Idempotent: removing an absent entity is a no-op
func (w *World) RemoveEntity(e core.Entity) {
	delete(w.entities, e)
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// HasEntity reports whether the entity is live
func (w *World) HasEntity(e core.Entity) bool {
	_, ok := w.entities[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Entities returns the live entities, ascending by id
func (w *World) Entities() []core.Entity {
	result := make([]core.Entity, 0, len(w.entities))
	for e := range w.entities {
		result = append(result, e)
	}
	slices.Sort(result)
	return result
}

// Clear removes all entities and components. Identifiers keep increasing.
func (w *World) Clear() {
	w.entities = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.Clear()
	}
}

// Head returns the controllable entity
func (w *World) Head() (core.Entity, bool) {
	heads := w.Controllables.All()
	if len(heads) == 0 {
		return core.NoEntity, false
	}
	return heads[0], true
}

// Occupied returns the cells taken by the head and its body segments
func (w *World) Occupied() map[core.Point]struct{} {
	occupied := make(map[core.Point]struct{}, w.Follows.Count()+1)
	for _, e := range w.Positions.All() {
		if !w.Controllables.Has(e) && !w.Follows.Has(e) {
			continue
		}
		pos, _ := w.Positions.Get(e)
		occupied[pos.Point()] = struct{}{}
	}
	return occupied
}

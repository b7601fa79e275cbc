package systems

import (
	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
)

type followUpdate struct {
	entity core.Entity
	pos    components.PositionComponent
}

// MovementSystem advances the body and then the head
type MovementSystem struct {
	updates []followUpdate // Reused snapshot buffer
}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{
		updates: make([]followUpdate, 0, 64),
	}
}

// Update runs follow propagation before head movement
func (s *MovementSystem) Update(world *engine.World) {
	s.followSegments(world)
	s.moveHeads(world)
}

// followSegments moves every segment onto its leader's position from the start of the tick
// All leader positions are snapshotted before any write so the chain shifts link by link
func (s *MovementSystem) followSegments(world *engine.World) {
	s.updates = s.updates[:0]

	for _, e := range world.Follows.All() {
		follows, _ := world.Follows.Get(e)
		if pos, ok := world.Positions.Get(follows.Leader); ok {
			s.updates = append(s.updates, followUpdate{entity: e, pos: pos})
		}
	}

	for _, u := range s.updates {
		world.Positions.Add(u.entity, u.pos)
	}
}

// moveHeads applies velocity; the result may leave the field until collision wraps it
func (s *MovementSystem) moveHeads(world *engine.World) {
	heads := world.Query().
		With(world.Controllables).
		With(world.Positions).
		With(world.Velocities).
		Execute()

	for _, e := range heads {
		pos, _ := world.Positions.Get(e)
		vel, _ := world.Velocities.Get(e)
		pos.X += vel.DX
		pos.Y += vel.DY
		world.Positions.Add(e, pos)
	}
}

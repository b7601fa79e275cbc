package systems

import (
	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
)

// CollisionSystem detects self-intersection and wraps entities at the walls
// It keeps no state between ticks beyond a reused scratch set
type CollisionSystem struct {
	seen map[core.Point]struct{}
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		seen: make(map[core.Point]struct{}, 64),
	}
}

// Update returns PhaseGameOver on self-collision, otherwise wraps and returns PhasePlaying
// Self-collision takes priority: when detected, no wrapping happens this tick
func (s *CollisionSystem) Update(world *engine.World) engine.Phase {
	if s.detectSegmentCollision(world) {
		return engine.PhaseGameOver
	}

	for _, e := range world.Positions.All() {
		pos, _ := world.Positions.Get(e)
		if pos.InBounds(world.Width, world.Height) {
			continue
		}
		world.Positions.Add(e, wrapPosition(pos, world.Width, world.Height))
	}
	return engine.PhasePlaying
}

// detectSegmentCollision reports whether two body segments share a cell
func (s *CollisionSystem) detectSegmentCollision(world *engine.World) bool {
	clear(s.seen)
	segments := 0
	for _, e := range world.Follows.All() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}
		segments++
		s.seen[pos.Point()] = struct{}{}
	}
	return segments != len(s.seen)
}

// wrapPosition moves an out-of-field coordinate to the opposite edge, per axis
func wrapPosition(pos components.PositionComponent, width, height int) components.PositionComponent {
	if pos.X < 0 {
		pos.X = width - 1
	} else if pos.X >= width {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = height - 1
	} else if pos.Y >= height {
		pos.Y = 0
	}
	return pos
}

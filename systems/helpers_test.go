package systems

import (
	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
	"github.com/lixenwraith/ecs-snake/input"
)

// scriptedSource replays a fixed key sequence, one key per Poll
type scriptedSource struct {
	keys []input.Key
}

func (s *scriptedSource) Poll() (input.Key, bool) {
	if len(s.keys) == 0 {
		return input.KeyNone, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

type countingSounds struct {
	eats int
}

func (c *countingSounds) PlayEat() { c.eats++ }

// placeSegment creates a follower of leader at an explicit cell
func placeSegment(w *engine.World, leader core.Entity, x, y int) core.Entity {
	e := w.CreateEntity()
	w.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	w.Follows.Add(e, components.FollowsComponent{Leader: leader})
	return e
}

func positionOf(w *engine.World, e core.Entity) core.Point {
	pos, _ := w.Positions.Get(e)
	return pos.Point()
}

package engine

import (
	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/constants"
	"github.com/lixenwraith/ecs-snake/core"
)

// SpawnHead creates the player-controlled head drifting downward from the start cell
func (w *World) SpawnHead() core.Entity {
	head := w.CreateEntity()
	w.Velocities.Add(head, components.VelocityComponent{DX: constants.HeadStartDX, DY: constants.HeadStartDY})
	w.Controllables.Add(head, components.ControllableComponent{})
	w.Positions.Add(head, components.PositionComponent{X: constants.HeadStartX, Y: constants.HeadStartY})
	w.Colliders.Add(head, components.ColliderComponent{Width: constants.EntityWidth, Height: constants.EntityHeight})
	w.Renderables.Add(head, components.RenderableComponent{
		Width:  constants.EntityWidth,
		Height: constants.EntityHeight,
		Symbol: constants.HeadSymbol,
		Color:  constants.ColorHead,
	})
	return head
}

// SpawnFollower attaches a new body segment at the tail
// The leader is the most recently added segment, or the head when there are none.
// Returns false without creating an entity when no leader exists.
func (w *World) SpawnFollower() (core.Entity, bool) {
	leader, ok := w.Follows.Max()
	if !ok {
		leader, ok = w.Head()
		if !ok {
			return core.NoEntity, false
		}
	}

	e := w.CreateEntity()
	w.Follows.Add(e, components.FollowsComponent{Leader: leader})
	w.Colliders.Add(e, components.ColliderComponent{Width: constants.EntityWidth, Height: constants.EntityHeight})
	w.Renderables.Add(e, components.RenderableComponent{
		Width:  constants.EntityWidth,
		Height: constants.EntityHeight,
		Symbol: constants.FollowerSymbol,
		Color:  constants.ColorFollower,
	})

	// Diagonal offset keeps the new segment visible until movement snaps it onto the trail
	if pos, ok := w.Positions.Get(leader); ok {
		p := pos.Point().Add(core.Point{X: constants.FollowerOffsetX, Y: constants.FollowerOffsetY})
		w.Positions.Add(e, components.PositionComponent{X: p.X, Y: p.Y})
	}
	return e, true
}

// SpawnFood places one food entity on a random free interior cell
// Returns false without creating an entity when every interior cell is occupied
func (w *World) SpawnFood() (core.Entity, bool) {
	minX, maxX := constants.FoodMargin, w.Width-1-constants.FoodMargin
	minY, maxY := constants.FoodMargin, w.Height-1-constants.FoodMargin
	if maxX < minX || maxY < minY {
		return core.NoEntity, false
	}

	occupied := w.Occupied()
	free := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if _, taken := occupied[core.Point{X: x, Y: y}]; !taken {
				free++
			}
		}
	}
	if free == 0 {
		return core.NoEntity, false
	}

	// Rejection sampling; at least one free cell exists so this terminates
	for {
		p := core.Point{
			X: minX + w.rng.IntN(maxX-minX+1),
			Y: minY + w.rng.IntN(maxY-minY+1),
		}
		if _, taken := occupied[p]; !taken {
			return w.SpawnFoodAt(p), true
		}
	}
}

// SpawnFoodAt places a food entity at an explicit cell
func (w *World) SpawnFoodAt(p core.Point) core.Entity {
	food := w.CreateEntity()
	w.Positions.Add(food, components.PositionComponent{X: p.X, Y: p.Y})
	w.Edibles.Add(food, components.EdibleComponent{})
	w.Renderables.Add(food, components.RenderableComponent{
		Width:  constants.EntityWidth,
		Height: constants.EntityHeight,
		Symbol: constants.FoodSymbol,
		Color:  constants.ColorFood,
	})
	return food
}

package systems

import (
	"testing"

	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
)

func TestMovementFollowPropagation(t *testing.T) {
	w := engine.NewWorld(20, 20, engine.WithSeed(1))
	head := w.SpawnHead()
	w.Positions.Add(head, components.PositionComponent{X: 5, Y: 5})
	w.Velocities.Add(head, components.VelocityComponent{DX: 1, DY: 0})

	f1 := placeSegment(w, head, 4, 5)
	f2 := placeSegment(w, f1, 3, 5)

	NewMovementSystem().Update(w)

	checks := []struct {
		name string
		e    core.Entity
		want core.Point
	}{
		{"head", head, core.Point{X: 6, Y: 5}},
		{"f1", f1, core.Point{X: 5, Y: 5}},
		{"f2", f2, core.Point{X: 4, Y: 5}},
	}
	for _, c := range checks {
		if got := positionOf(w, c.e); got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestMovementSnapshotIgnoresCreationOrder(t *testing.T) {
	w := engine.NewWorld(20, 20, engine.WithSeed(1))
	head := w.SpawnHead()
	w.Positions.Add(head, components.PositionComponent{X: 5, Y: 5})
	w.Velocities.Add(head, components.VelocityComponent{DX: 0, DY: 1})

	// Tail created before its leader; its lower id is iterated first
	tail := w.CreateEntity()
	mid := placeSegment(w, head, 5, 4)
	w.Positions.Add(tail, components.PositionComponent{X: 5, Y: 3})
	w.Follows.Add(tail, components.FollowsComponent{Leader: mid})

	NewMovementSystem().Update(w)

	if got := positionOf(w, tail); got != (core.Point{X: 5, Y: 4}) {
		t.Errorf("Expected tail at mid's old cell (5,4), got %v", got)
	}
	if got := positionOf(w, mid); got != (core.Point{X: 5, Y: 5}) {
		t.Errorf("Expected mid at head's old cell (5,5), got %v", got)
	}
}

func TestMovementLeavesFieldUnwrapped(t *testing.T) {
	w := engine.NewWorld(5, 5, engine.WithSeed(1))
	head := w.SpawnHead()
	w.Positions.Add(head, components.PositionComponent{X: 4, Y: 2})
	w.Velocities.Add(head, components.VelocityComponent{DX: 1, DY: 0})

	NewMovementSystem().Update(w)

	if got := positionOf(w, head); got != (core.Point{X: 5, Y: 2}) {
		t.Errorf("Expected head at (5,2) before wrapping, got %v", got)
	}
}

func TestMovementIgnoresNonControllable(t *testing.T) {
	w := engine.NewWorld(10, 10, engine.WithSeed(1))
	e := w.CreateEntity()
	w.Positions.Add(e, components.PositionComponent{X: 1, Y: 1})
	w.Velocities.Add(e, components.VelocityComponent{DX: 1, DY: 1})

	NewMovementSystem().Update(w)

	if got := positionOf(w, e); got != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Expected uncontrolled entity to stay, got %v", got)
	}
}

package systems

import (
	"testing"

	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
)

func TestEatingGrowsAndRespawns(t *testing.T) {
	w := engine.NewWorld(10, 10, engine.WithSeed(7))
	state := engine.NewGameState()
	head := w.SpawnHead()
	w.SpawnFollower()
	pos, _ := w.Positions.Get(head)
	food := w.SpawnFoodAt(pos.Point())

	sounds := &countingSounds{}
	grown := NewEatingSystem(sounds).Update(w, state)

	if grown != 1 {
		t.Errorf("Expected 1 growth event, got %d", grown)
	}
	if state.Score != 1 {
		t.Errorf("Expected score 1, got %d", state.Score)
	}
	if w.HasEntity(food) || w.Positions.Has(food) || w.Edibles.Has(food) {
		t.Error("Expected eaten food to be purged from every store")
	}
	if n := w.Edibles.Count(); n != 1 {
		t.Errorf("Expected exactly one food, got %d", n)
	}
	if n := w.Follows.Count(); n != 2 {
		t.Errorf("Expected 2 followers after growth, got %d", n)
	}
	if w.Growing.Count() != 0 {
		t.Error("Expected growing tag to be cleared")
	}
	if sounds.eats != 1 {
		t.Errorf("Expected one eat sound, got %d", sounds.eats)
	}

	// Replacement food avoids the snake
	newFood := w.Edibles.All()[0]
	if _, hit := w.Occupied()[positionOf(w, newFood)]; hit {
		t.Error("Expected replacement food on a free cell")
	}
}

func TestEatingNoContact(t *testing.T) {
	w := engine.NewWorld(10, 10, engine.WithSeed(7))
	state := engine.NewGameState()
	w.SpawnHead()
	food := w.SpawnFoodAt(core.Point{X: 8, Y: 8})

	if grown := NewEatingSystem(nil).Update(w, state); grown != 0 {
		t.Errorf("Expected no growth, got %d", grown)
	}
	if !w.HasEntity(food) || state.Score != 0 {
		t.Error("Expected food and score untouched")
	}
}

func TestEatingBoardFull(t *testing.T) {
	// 3x3 field has a single interior cell at (1,1)
	w := engine.NewWorld(3, 3, engine.WithSeed(1))
	state := engine.NewGameState()
	head := w.CreateEntity()
	w.Positions.Add(head, components.PositionComponent{X: 1, Y: 1})
	w.Velocities.Add(head, components.VelocityComponent{DX: 0, DY: 1})
	w.Controllables.Add(head, components.ControllableComponent{})
	w.SpawnFoodAt(core.Point{X: 1, Y: 1})

	grown := NewEatingSystem(nil).Update(w, state)

	if grown != 1 || state.Score != 1 {
		t.Errorf("Expected growth and score despite full board, got grown=%d score=%d", grown, state.Score)
	}
	if n := w.Edibles.Count(); n != 0 {
		t.Errorf("Expected no replacement food, got %d", n)
	}
}

func TestEatingTwoEatersOneFood(t *testing.T) {
	w := engine.NewWorld(10, 10, engine.WithSeed(3))
	state := engine.NewGameState()
	for i := 0; i < 2; i++ {
		e := w.CreateEntity()
		w.Positions.Add(e, components.PositionComponent{X: 4, Y: 4})
		w.Controllables.Add(e, components.ControllableComponent{})
	}
	w.SpawnFoodAt(core.Point{X: 4, Y: 4})

	grown := NewEatingSystem(nil).Update(w, state)

	if grown != 2 || state.Score != 2 {
		t.Errorf("Expected both eaters to grow, got grown=%d score=%d", grown, state.Score)
	}
	if n := w.Edibles.Count(); n != 1 {
		t.Errorf("Expected one replacement food, got %d", n)
	}
}

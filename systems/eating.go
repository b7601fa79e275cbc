package systems

import (
	"log"

	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
)

// Sounds receives audible feedback cues; implementations must tolerate calls at any time
type Sounds interface {
	PlayEat()
}

type contact struct {
	eater core.Entity
	food  core.Entity
}

// EatingSystem resolves head/food contacts and applies deferred growth
type EatingSystem struct {
	sounds   Sounds
	contacts []contact // Reused per tick
}

// NewEatingSystem creates an eating system; sounds may be nil
func NewEatingSystem(sounds Sounds) *EatingSystem {
	return &EatingSystem{
		sounds:   sounds,
		contacts: make([]contact, 0, 4),
	}
}

// Update consumes touched food, respawns it and grows every eater by one segment
// Returns the number of growth events applied
func (s *EatingSystem) Update(world *engine.World, state *engine.GameState) int {
	s.detectContacts(world)

	for _, c := range s.contacts {
		world.Growing.Add(c.eater, components.GrowingComponent{})

		// Two eaters on one food consume it once
		if !world.HasEntity(c.food) {
			continue
		}
		world.RemoveEntity(c.food)
		if _, ok := world.SpawnFood(); !ok {
			log.Printf("eating: board full, no replacement food spawned")
		}
	}

	return s.processGrowth(world, state)
}

// detectContacts records every (controllable, edible) pair sharing a cell
func (s *EatingSystem) detectContacts(world *engine.World) {
	s.contacts = s.contacts[:0]

	eaters := world.Query().With(world.Controllables).With(world.Positions).Execute()
	foods := world.Query().With(world.Edibles).With(world.Positions).Execute()

	for _, eater := range eaters {
		eaterPos, _ := world.Positions.Get(eater)
		for _, food := range foods {
			foodPos, _ := world.Positions.Get(food)
			if eaterPos == foodPos {
				s.contacts = append(s.contacts, contact{eater: eater, food: food})
			}
		}
	}
}

// processGrowth attaches one tail segment per growing entity and scores it
func (s *EatingSystem) processGrowth(world *engine.World, state *engine.GameState) int {
	grown := 0
	for _, e := range world.Growing.All() {
		if _, ok := world.SpawnFollower(); !ok {
			log.Printf("eating: entity %d could not grow, no leader", e)
		}
		world.Growing.Remove(e)
		state.AddScore(1)
		grown++
	}

	if grown > 0 {
		log.Printf("eating: score %d", state.Score)
		if s.sounds != nil {
			s.sounds.PlayEat()
		}
	}
	return grown
}

package systems

import (
	"log"

	"github.com/lixenwraith/ecs-snake/engine"
	"github.com/lixenwraith/ecs-snake/input"
)

// Outcome reports the result of one simulation step
type Outcome struct {
	Phase engine.Phase
	Quit  bool // The player asked to halt; the driver owns shutdown
	Grown int  // Growth events applied this step
}

// Pipeline runs the systems in their fixed order: input, movement, collision, eating
type Pipeline struct {
	Input     *InputSystem
	Movement  *MovementSystem
	Collision *CollisionSystem
	Eating    *EatingSystem
}

// NewPipeline wires the systems; source and sounds may be nil
func NewPipeline(source input.Source, sounds Sounds) *Pipeline {
	return &Pipeline{
		Input:     NewInputSystem(source),
		Movement:  NewMovementSystem(),
		Collision: NewCollisionSystem(),
		Eating:    NewEatingSystem(sounds),
	}
}

// Step executes one atomic simulation step and records the phase in state
// A finished game is not advanced further
func (p *Pipeline) Step(world *engine.World, state *engine.GameState) Outcome {
	if state.IsOver() {
		return Outcome{Phase: state.Phase}
	}

	if p.Input.Update(world) {
		return Outcome{Phase: state.Phase, Quit: true}
	}

	p.Movement.Update(world)

	state.Ticks++
	if phase := p.Collision.Update(world); phase == engine.PhaseGameOver {
		state.Phase = phase
		log.Printf("collision: game over at tick %d, score %d", state.Ticks, state.Score)
		return Outcome{Phase: phase}
	}

	grown := p.Eating.Update(world, state)
	return Outcome{Phase: engine.PhasePlaying, Grown: grown}
}

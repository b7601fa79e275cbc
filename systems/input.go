package systems

import (
	"github.com/lixenwraith/ecs-snake/components"
	"github.com/lixenwraith/ecs-snake/engine"
	"github.com/lixenwraith/ecs-snake/input"
)

// directionVelocity maps steering keys to unit steps; both axes are always overwritten
var directionVelocity = map[input.Key]components.VelocityComponent{
	input.KeyUp:    {DX: 0, DY: -1},
	input.KeyDown:  {DX: 0, DY: 1},
	input.KeyLeft:  {DX: -1, DY: 0},
	input.KeyRight: {DX: 1, DY: 0},
}

// InputSystem applies at most one pending key per tick to every controllable entity
// Reversal into the body is not filtered; collision catches it on a later tick
type InputSystem struct {
	source input.Source
}

// NewInputSystem creates an input system reading from source (nil means no input)
func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

// Update polls once and returns true when the player asked to quit
func (s *InputSystem) Update(world *engine.World) bool {
	if s.source == nil {
		return false
	}

	key, ok := s.source.Poll()
	if !ok {
		return false
	}

	if key == input.KeyQuit {
		return true
	}

	if !key.IsDirection() {
		return false
	}

	vel := directionVelocity[key]
	for _, e := range world.Query().With(world.Controllables).With(world.Velocities).Execute() {
		world.Velocities.Add(e, vel)
	}
	return false
}

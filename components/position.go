package components

import "github.com/lixenwraith/ecs-snake/core"

// PositionComponent is a signed grid coordinate in field space
// Values may leave the field between movement and collision resolution in the same tick
type PositionComponent struct {
	X, Y int
}

// Point converts the position to a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// InBounds reports whether the position lies inside a width x height field
func (p PositionComponent) InBounds(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

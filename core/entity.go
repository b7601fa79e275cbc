package core

// Entity is an opaque identifier for a game object
// Zero is reserved as the null entity and is never allocated
type Entity uint64

// NoEntity is the null entity reference
const NoEntity Entity = 0

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

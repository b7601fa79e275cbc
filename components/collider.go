package components

// ColliderComponent declares the collision footprint of an entity
// Currently always 1x1; reserved for collision geometry
type ColliderComponent struct {
	Width, Height int
}

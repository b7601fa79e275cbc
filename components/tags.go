package components

// ControllableComponent tags the player-controlled head (exactly one per game)
type ControllableComponent struct{}

// GrowingComponent tags an entity that ate this tick and has a pending growth event
type GrowingComponent struct{}

// EdibleComponent tags a food entity
type EdibleComponent struct{}

package constants

// Head Spawn Constants
const (
	// HeadStartX is the column the head spawns at
	HeadStartX = 2

	// HeadStartY is the row the head spawns at
	HeadStartY = 3

	// HeadStartDX is the initial horizontal velocity
	HeadStartDX = 0

	// HeadStartDY is the initial vertical velocity (downward drift)
	HeadStartDY = 1
)

// Follower Spawn Constants
const (
	// FollowerOffsetX places a new segment one column left of its leader
	FollowerOffsetX = -1

	// FollowerOffsetY places a new segment one row above its leader
	FollowerOffsetY = -1
)

// Entity Glyphs
const (
	HeadSymbol     = '%'
	FollowerSymbol = '+'
	FoodSymbol     = '@'
	WallSymbol     = '#'
	BlankSymbol    = ' '
)

// Entity Footprint (all entities occupy a single cell)
const (
	EntityWidth  = 1
	EntityHeight = 1
)

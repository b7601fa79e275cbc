package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetFPS is the fixed simulation and render rate
	TargetFPS = 8

	// TickInterval is the duration of one simulation step plus render
	TickInterval = time.Second / TargetFPS

	// InputQueueSize is the buffered capacity between the terminal reader and the input system
	InputQueueSize = 64
)

// Field Constants
const (
	// DefaultFieldWidth is the playable field width in cells (excluding border)
	DefaultFieldWidth = 30

	// DefaultFieldHeight is the playable field height in cells (excluding border and score row)
	DefaultFieldHeight = 20

	// MinFieldWidth is the smallest field that still has an interior for food placement
	MinFieldWidth = 3

	// MinFieldHeight is the smallest field that still has an interior for food placement
	MinFieldHeight = 3

	// MaxFieldWidth bounds the field to sane terminal sizes
	MaxFieldWidth = 500

	// MaxFieldHeight bounds the field to sane terminal sizes
	MaxFieldHeight = 200

	// FoodMargin is the number of edge cells excluded from food placement on each side
	FoodMargin = 1
)

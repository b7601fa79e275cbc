package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ecs-snake/constants"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the per-run settings resolved from flags and environment
type Config struct {
	Width  int    // Field columns
	Height int    // Field rows
	Seed   uint64 // Food placement seed; 0 picks a random one
	Sound  bool   // Audible feedback on eat and game over
}

// DefaultConfig returns the stock 30x20 field with random food and sound off
func DefaultConfig() Config {
	return Config{
		Width:  constants.DefaultFieldWidth,
		Height: constants.DefaultFieldHeight,
	}
}

// Validate checks the field is large enough to hold an interior and the starting head
func (c Config) Validate() error {
	if c.Width < constants.MinFieldWidth || c.Width > constants.MaxFieldWidth {
		return fmt.Errorf("%w: width %d outside [%d, %d]",
			ErrInvalidConfig, c.Width, constants.MinFieldWidth, constants.MaxFieldWidth)
	}
	if c.Height < constants.MinFieldHeight || c.Height > constants.MaxFieldHeight {
		return fmt.Errorf("%w: height %d outside [%d, %d]",
			ErrInvalidConfig, c.Height, constants.MinFieldHeight, constants.MaxFieldHeight)
	}
	if constants.HeadStartX >= c.Width || constants.HeadStartY >= c.Height {
		return fmt.Errorf("%w: head start (%d,%d) outside %dx%d field",
			ErrInvalidConfig, constants.HeadStartX, constants.HeadStartY, c.Width, c.Height)
	}
	return nil
}

package constants

import "github.com/gdamore/tcell/v2"

// Palette is the closed set of colors the game draws with
const (
	ColorHead     = tcell.ColorDarkGreen
	ColorFollower = tcell.ColorGreen
	ColorFood     = tcell.ColorRed
	ColorWall     = tcell.ColorWhite
	ColorScore    = tcell.ColorYellow
	ColorBlank    = tcell.ColorReset
)

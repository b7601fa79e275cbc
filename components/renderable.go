package components

import "github.com/gdamore/tcell/v2"

// RenderableComponent describes how an entity is drawn
// Width and Height draw a horizontal and a vertical run of Symbol from the anchor cell
type RenderableComponent struct {
	Width, Height int
	Symbol        rune
	Color         tcell.Color
}

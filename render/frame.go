package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ecs-snake/constants"
)

// Cell is one terminal character with its foreground color
type Cell struct {
	Symbol rune
	Color  tcell.Color
}

// blankCell is the empty cell every frame starts from
var blankCell = Cell{Symbol: constants.BlankSymbol, Color: constants.ColorBlank}

// Frame is a fixed-size cell arena covering the score line, border and field
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a blank frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

// Width returns the frame width in columns
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in rows
func (f *Frame) Height() int { return f.height }

// Clear resets all cells to blank using exponential copy
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = blankCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Set writes a cell, ignoring coordinates outside the frame
func (f *Frame) Set(col, row int, c Cell) {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return
	}
	f.cells[row*f.width+col] = c
}

// Get returns the cell at col,row; out-of-frame reads are blank
func (f *Frame) Get(col, row int) Cell {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return blankCell
	}
	return f.cells[row*f.width+col]
}

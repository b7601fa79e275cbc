package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/ecs-snake/constants"
	"github.com/lixenwraith/ecs-snake/engine"
)

// ErrNotInitialized is returned when rendering before Initialize or after Shutdown
var ErrNotInitialized = errors.New("renderer not initialized")

// Renderer composes the world into a frame and emits only the cells that changed
type Renderer struct {
	surface  Surface
	messages io.Writer

	fieldWidth  int
	fieldHeight int

	current  *Frame
	previous *Frame

	initialized bool
	drawn       int
}

// NewRenderer creates a renderer for a fieldWidth x fieldHeight field
// Messages written after shutdown (final score) go to messages
func NewRenderer(surface Surface, fieldWidth, fieldHeight int, messages io.Writer) *Renderer {
	cols := fieldWidth + constants.FrameExtraColumns
	rows := fieldHeight + constants.FrameExtraRows
	return &Renderer{
		surface:     surface,
		messages:    messages,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
		current:     NewFrame(cols, rows),
		previous:    NewFrame(cols, rows),
	}
}

// Initialize prepares the surface; calling it twice is a no-op
func (r *Renderer) Initialize() error {
	if r.initialized {
		return nil
	}
	if err := r.surface.Init(); err != nil {
		return fmt.Errorf("init surface: %w", err)
	}

	// The surface starts cleared, so both frames start blank
	r.current.Clear()
	r.previous.Clear()
	r.initialized = true
	return nil
}

// Shutdown restores the terminal; safe to call repeatedly
func (r *Renderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	r.initialized = false
	if err := r.surface.Fini(); err != nil {
		return fmt.Errorf("fini surface: %w", err)
	}
	return nil
}

// Render draws one frame: diffed border and field, then the score line, then flush
func (r *Renderer) Render(world *engine.World, state *engine.GameState) error {
	if !r.initialized {
		return ErrNotInitialized
	}

	r.previous, r.current = r.current, r.previous
	r.current.Clear()
	r.composeBorder()
	r.composeEntities(world)

	r.drawn = r.emitDiff()
	r.drawScore(state.Score)

	if err := r.surface.Flush(); err != nil {
		return fmt.Errorf("flush surface: %w", err)
	}
	return nil
}

// DrawnCells returns the number of cells emitted by the last Render
func (r *Renderer) DrawnCells() int {
	return r.drawn
}

// GameOver prints the final score; call after Shutdown so it lands on the restored terminal
func (r *Renderer) GameOver(score int) error {
	if r.messages == nil {
		return nil
	}
	if _, err := fmt.Fprintf(r.messages, constants.GameOverFormat, score); err != nil {
		return fmt.Errorf("write final score: %w", err)
	}
	return nil
}

// composeBorder frames the field with wall cells, leaving the score row untouched
func (r *Renderer) composeBorder() {
	wall := Cell{Symbol: constants.WallSymbol, Color: constants.ColorWall}
	top := constants.ScoreRows
	bottom := r.current.Height() - 1
	right := r.current.Width() - 1

	for col := 0; col <= right; col++ {
		r.current.Set(col, top, wall)
		r.current.Set(col, bottom, wall)
	}
	for row := top + 1; row < bottom; row++ {
		r.current.Set(0, row, wall)
		r.current.Set(right, row, wall)
	}
}

// composeEntities blits every positioned renderable, clipped to the field area
func (r *Renderer) composeEntities(world *engine.World) {
	for _, e := range world.Query().With(world.Positions).With(world.Renderables).Execute() {
		pos, _ := world.Positions.Get(e)
		ren, _ := world.Renderables.Get(e)
		cell := Cell{Symbol: ren.Symbol, Color: ren.Color}

		for dx := 0; dx < ren.Width; dx++ {
			r.setFieldCell(pos.X+dx, pos.Y, cell)
		}
		for dy := 1; dy < ren.Height; dy++ {
			r.setFieldCell(pos.X, pos.Y+dy, cell)
		}
	}
}

// setFieldCell writes a cell given in field coordinates
func (r *Renderer) setFieldCell(x, y int, c Cell) {
	if x < 0 || x >= r.fieldWidth || y < 0 || y >= r.fieldHeight {
		return
	}
	r.current.Set(x+constants.FieldOffsetX, y+constants.FieldOffsetY, c)
}

// emitDiff writes every cell that differs from the previous frame, score row excluded
func (r *Renderer) emitDiff() int {
	drawn := 0
	for row := constants.ScoreRows; row < r.current.Height(); row++ {
		for col := 0; col < r.current.Width(); col++ {
			c := r.current.Get(col, row)
			if c == r.previous.Get(col, row) {
				continue
			}
			r.surface.MoveTo(col, row)
			r.surface.SetForeground(c.Color)
			r.surface.Print(string(c.Symbol))
			drawn++
		}
	}
	return drawn
}

// drawScore rewrites the score line every frame
func (r *Renderer) drawScore(score int) {
	r.surface.MoveTo(constants.ScoreColumn, constants.ScoreRow)
	r.surface.SetForeground(constants.ColorScore)
	r.surface.Print(fmt.Sprintf(constants.ScoreFormat, score))
}

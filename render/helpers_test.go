package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

type drawCall struct {
	col, row int
	color    tcell.Color
	text     string
}

// recordingSurface captures every Print with the cursor and color in effect
type recordingSurface struct {
	col, row int
	color    tcell.Color
	calls    []drawCall
	inits    int
	finis    int
	flushes  int
	initErr  error
	flushErr error
}

func (s *recordingSurface) Init() error {
	s.inits++
	return s.initErr
}

func (s *recordingSurface) Fini() error {
	s.finis++
	return nil
}

func (s *recordingSurface) MoveTo(col, row int)             { s.col, s.row = col, row }
func (s *recordingSurface) SetForeground(color tcell.Color) { s.color = color }

func (s *recordingSurface) Print(text string) {
	s.calls = append(s.calls, drawCall{col: s.col, row: s.row, color: s.color, text: text})
}

func (s *recordingSurface) Flush() error {
	s.flushes++
	return s.flushErr
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}

// at returns the last text printed at col,row
func (s *recordingSurface) at(col, row int) (drawCall, bool) {
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].col == col && s.calls[i].row == row {
			return s.calls[i], true
		}
	}
	return drawCall{}, false
}

var errBrokenPipe = errors.New("broken pipe")

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing target the renderer emits cell updates to
type Surface interface {
	Init() error
	Fini() error
	MoveTo(col, row int)
	SetForeground(color tcell.Color)
	Print(s string)
	Flush() error
}

// ScreenSurface draws onto a tcell screen
// Init switches the terminal to the alternate screen in raw mode; Fini restores it
type ScreenSurface struct {
	screen tcell.Screen
	col    int
	row    int
	style  tcell.Style
}

// NewScreenSurface wraps a screen; the screen is not initialized until Init
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Screen returns the wrapped screen, used as the keyboard event source
func (s *ScreenSurface) Screen() tcell.Screen {
	return s.screen
}

func (s *ScreenSurface) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.screen.Show()
	return nil
}

func (s *ScreenSurface) Fini() error {
	s.screen.Fini()
	return nil
}

func (s *ScreenSurface) MoveTo(col, row int) {
	s.col, s.row = col, row
}

func (s *ScreenSurface) SetForeground(color tcell.Color) {
	s.style = tcell.StyleDefault.Foreground(color)
}

// Print writes s left to right from the cursor and advances it
func (s *ScreenSurface) Print(str string) {
	for _, r := range str {
		s.screen.SetContent(s.col, s.row, r, nil, s.style)
		s.col++
	}
}

func (s *ScreenSurface) Flush() error {
	s.screen.Show()
	return nil
}

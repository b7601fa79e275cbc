package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ecs-snake/constants"
	"github.com/lixenwraith/ecs-snake/core"
)

// Source yields at most one pending key per call
// Poll must return immediately whether or not a key is pending
type Source interface {
	Poll() (Key, bool)
}

// ScreenSource adapts a tcell screen to a non-blocking Source
// A reader goroutine drains PollEvent into a bounded queue; it never touches game state
type ScreenSource struct {
	keys chan Key
	done chan struct{}
}

// NewScreenSource starts reading key events from an initialized screen
// The reader exits when the screen is finalized
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	s := &ScreenSource{
		keys: make(chan Key, constants.InputQueueSize),
		done: make(chan struct{}),
	}
	core.Go(func() { s.read(screen) })
	return s
}

func (s *ScreenSource) read(screen tcell.Screen) {
	defer close(s.done)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			// Resize and mouse events are irrelevant on a fixed field
			continue
		}
		select {
		case s.keys <- Decode(key):
		default:
			// Queue full, drop the key rather than stall the reader
		}
	}
}

// Poll returns the oldest pending key without waiting
func (s *ScreenSource) Poll() (Key, bool) {
	select {
	case k := <-s.keys:
		return k, true
	default:
		return KeyNone, false
	}
}

// Done is closed when the reader goroutine has exited
func (s *ScreenSource) Done() <-chan struct{} {
	return s.done
}

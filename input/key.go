package input

import "github.com/gdamore/tcell/v2"

// Key is the decoded identity of a key event, from a closed set
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyOther
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyQuit:  "quit",
	KeyOther: "other",
}

// String returns the key name
func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// IsDirection reports whether the key steers the head
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// Decode maps a terminal key event to a Key
// WASD in either case and the arrow keys steer; Esc, Ctrl-C and Ctrl-Q quit
func Decode(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return KeyUp
		case 'a', 'A':
			return KeyLeft
		case 's', 'S':
			return KeyDown
		case 'd', 'D':
			return KeyRight
		}
	}
	return KeyOther
}

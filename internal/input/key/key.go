package key

import (
	"fmt"
	"strings"
)

// Key identifies which case of Event is set.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackTab
	KeyEscape
	KeyNull

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyF is a function key; the number is stored in Event.F.
	KeyF

	// KeyChar is a plain character stored in Event.Rune.
	KeyChar

	// KeyAlt is a character typed with Alt held.
	KeyAlt

	// KeyCtrl is a character typed with Ctrl held. The rune is lower case.
	KeyCtrl
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyBackTab:   "BackTab",
	KeyEscape:    "Escape",
	KeyNull:      "Null",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF:         "F",
	KeyChar:      "Char",
	KeyAlt:       "Alt",
	KeyCtrl:      "Ctrl",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if the key carries no payload.
func (k Key) IsSpecial() bool {
	switch k {
	case KeyNone, KeyF, KeyChar, KeyAlt, KeyCtrl:
		return false
	default:
		return true
	}
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// KeyFromName returns the special key for a name, or KeyNone if not found.
// Names are case insensitive.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "bs", "backspace":
		return KeyBackspace
	case "del", "delete":
		return KeyDelete
	case "ins", "insert":
		return KeyInsert
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	case "pageup", "pgup":
		return KeyPageUp
	case "pagedown", "pgdn":
		return KeyPageDown
	case "backtab":
		return KeyBackTab
	case "esc", "escape":
		return KeyEscape
	case "null", "nul":
		return KeyNull
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyNone
	}
}

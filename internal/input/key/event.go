package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the case.
	Key Key

	// Rune is the character for KeyChar, KeyAlt and KeyCtrl events.
	Rune rune

	// F is the function key number for KeyF events.
	F uint8
}

// Char creates a plain character event.
func Char(r rune) Event {
	return Event{Key: KeyChar, Rune: r}
}

// Ctrl creates a Ctrl+character event. Letters are stored in lower case.
func Ctrl(r rune) Event {
	return Event{Key: KeyCtrl, Rune: unicode.ToLower(r)}
}

// Alt creates an Alt+character event.
func Alt(r rune) Event {
	return Event{Key: KeyAlt, Rune: r}
}

// F creates a function key event.
func F(n uint8) Event {
	return Event{Key: KeyF, F: n}
}

// Special creates an event for a key without payload.
func Special(k Key) Event {
	return Event{Key: k}
}

// Common events.
var (
	Enter     = Char('\n')
	Tab       = Char('\t')
	Backspace = Special(KeyBackspace)
	Delete    = Special(KeyDelete)
	Escape    = Special(KeyEscape)
	Up        = Special(KeyUp)
	Down      = Special(KeyDown)
	Left      = Special(KeyLeft)
	Right     = Special(KeyRight)
	Home      = Special(KeyHome)
	End       = Special(KeyEnd)
	PageUp    = Special(KeyPageUp)
	PageDown  = Special(KeyPageDown)
)

// IsChar returns true if this is a plain character event.
func (e Event) IsChar() bool {
	return e.Key == KeyChar
}

// IsPrintable returns true for plain character events that are not
// control characters.
func (e Event) IsPrintable() bool {
	return e.Key == KeyChar && !unicode.IsControl(e.Rune)
}

// Chars converts a string to one Char event per rune.
func Chars(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, Char(r))
	}
	return events
}

// String returns a canonical string representation that Parse accepts.
// Examples: "a", "Enter", "C-q", "A-x", "F5", "Esc".
func (e Event) String() string {
	switch e.Key {
	case KeyChar:
		return runeName(e.Rune)
	case KeyCtrl:
		return "C-" + runeName(e.Rune)
	case KeyAlt:
		return "A-" + runeName(e.Rune)
	case KeyF:
		return fmt.Sprintf("F%d", e.F)
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyInsert:
		return "Ins"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	default:
		return e.Key.String()
	}
}

// runeName names characters that have no visible glyph.
func runeName(r rune) string {
	switch r {
	case '\n':
		return "Enter"
	case '\t':
		return "Tab"
	case ' ':
		return "Space"
	default:
		return string(r)
	}
}

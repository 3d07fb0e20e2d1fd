// Package backend provides the terminal driver the editor draws through.
//
// The editor core depends only on the Backend interface. Terminal drives a
// real terminal with tcell, ANSI writes escape sequences directly over a
// raw-mode tty, and NullBackend records calls and replays scripted keys for
// tests.
//
// Drawing uses a pen: Print writes at the pen position and advances it,
// Println additionally moves the pen to column 0 of the next row, and
// MoveCursor places both the pen and the visible cursor. Nothing reaches the
// screen until Flush.
package backend

import (
	"errors"
	"fmt"

	"github.com/dshills/hecto/internal/input/key"
)

// ReservedRows is the number of screen rows below the text area: the status
// bar and the message bar.
const ReservedRows = 2

// Backend errors.
var (
	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrNotTerminal indicates stdin is not a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed indicates the backend was shut down while reading keys.
	ErrClosed = errors.New("backend closed")
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns the color in #rrggbb form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init acquires the terminal (raw mode, alternate screen).
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal. Safe to call more than once.
	Shutdown()

	// Size returns the width and the height of the text area, which is the
	// terminal height minus ReservedRows.
	Size() (width, height int)

	// ClearScreen clears the whole screen and homes the pen.
	ClearScreen()

	// ClearCurrentLine clears the row under the pen.
	ClearCurrentLine()

	// Flush pushes everything drawn since the last Flush to the terminal.
	Flush() error

	// HideCursor hides the cursor.
	HideCursor()

	// ShowCursor shows the cursor.
	ShowCursor()

	// MoveCursor moves the pen and the cursor to the 0-based cell (x, y).
	MoveCursor(x, y int)

	// SetForeground sets the text color for subsequent writes.
	SetForeground(c Color)

	// SetBackground sets the background color for subsequent writes.
	SetBackground(c Color)

	// ResetForeground restores the default text color.
	ResetForeground()

	// ResetBackground restores the default background color.
	ResetBackground()

	// Print writes s at the pen position.
	Print(s string)

	// Println writes s and moves the pen to the start of the next row.
	Println(s string)

	// ReadKey blocks until a key is pressed.
	ReadKey() (key.Event, error)
}

// Names of the available backends.
const (
	NameTcell = "tcell"
	NameANSI  = "ansi"
)

// New creates the backend registered under name.
func New(name string) (Backend, error) {
	switch name {
	case NameTcell, "":
		t, err := NewTerminal()
		if err != nil {
			return nil, err
		}
		return t, nil
	case NameANSI:
		return NewANSI(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// textHeight converts a terminal height into the text area height.
func textHeight(rows int) int {
	return max(rows-ReservedRows, 0)
}

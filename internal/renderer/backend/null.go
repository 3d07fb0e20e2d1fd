package backend

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/hecto/internal/input/key"
)

// ErrNoMoreKeys is returned by NullBackend.ReadKey once the scripted keys
// are used up.
var ErrNoMoreKeys = errors.New("no more scripted keys")

// NullBackend is an in-memory backend for testing. It paints into a
// ScreenBuffer, records every call, and replays keys queued with PushKeys.
// Each grapheme cluster takes exactly one cell.
type NullBackend struct {
	screen *ScreenBuffer

	penX, penY       int
	cursorX, cursorY int
	cursorVisible    bool

	fg, bg       Color
	hasFg, hasBg bool

	keys    []key.Event
	calls   []string
	flushes int

	readErr  error
	flushErr error
}

// NewNullBackend creates a null backend for a terminal of width columns and
// rows rows. Size reports rows minus ReservedRows as the text height.
func NewNullBackend(width, rows int) *NullBackend {
	return &NullBackend{screen: NewScreenBuffer(width, rows)}
}

func (b *NullBackend) record(format string, args ...any) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

func (b *NullBackend) Init() error {
	b.record("Init")
	return nil
}

func (b *NullBackend) Shutdown() {
	b.record("Shutdown")
}

func (b *NullBackend) Size() (int, int) {
	w, h := b.screen.Size()
	return w, textHeight(h)
}

func (b *NullBackend) ClearScreen() {
	b.record("ClearScreen")
	b.screen.Clear()
	b.penX, b.penY = 0, 0
}

func (b *NullBackend) ClearCurrentLine() {
	b.record("ClearCurrentLine")
	b.screen.ClearLine(b.penY)
}

func (b *NullBackend) Flush() error {
	b.record("Flush")
	b.flushes++
	return b.flushErr
}

func (b *NullBackend) HideCursor() {
	b.record("HideCursor")
	b.cursorVisible = false
}

func (b *NullBackend) ShowCursor() {
	b.record("ShowCursor")
	b.cursorVisible = true
}

func (b *NullBackend) MoveCursor(x, y int) {
	b.record("MoveCursor(%d,%d)", x, y)
	b.penX, b.penY = x, y
	b.cursorX, b.cursorY = x, y
}

func (b *NullBackend) SetForeground(c Color) {
	b.record("SetForeground(%s)", c)
	b.fg, b.hasFg = c, true
}

func (b *NullBackend) SetBackground(c Color) {
	b.record("SetBackground(%s)", c)
	b.bg, b.hasBg = c, true
}

func (b *NullBackend) ResetForeground() {
	b.record("ResetForeground")
	b.hasFg = false
}

func (b *NullBackend) ResetBackground() {
	b.record("ResetBackground")
	b.hasBg = false
}

func (b *NullBackend) Print(s string) {
	b.record("Print(%q)", s)
	b.paint(s)
}

func (b *NullBackend) Println(s string) {
	b.record("Println(%q)", s)
	b.paint(s)
	b.penX = 0
	b.penY++
}

func (b *NullBackend) paint(s string) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		b.screen.SetCell(b.penX, b.penY, Cell{
			Text:          g.Str(),
			Foreground:    b.fg,
			Background:    b.bg,
			HasForeground: b.hasFg,
			HasBackground: b.hasBg,
		})
		b.penX++
	}
}

func (b *NullBackend) ReadKey() (key.Event, error) {
	b.record("ReadKey")
	if b.readErr != nil {
		return key.Event{}, b.readErr
	}
	if len(b.keys) == 0 {
		return key.Event{}, ErrNoMoreKeys
	}
	ev := b.keys[0]
	b.keys = b.keys[1:]
	return ev, nil
}

// PushKeys appends keys to the scripted input.
func (b *NullBackend) PushKeys(events ...key.Event) {
	b.keys = append(b.keys, events...)
}

// PendingKeys returns the number of scripted keys not yet read.
func (b *NullBackend) PendingKeys() int {
	return len(b.keys)
}

// FailReads makes every following ReadKey return err.
func (b *NullBackend) FailReads(err error) {
	b.readErr = err
}

// FailFlush makes every following Flush return err.
func (b *NullBackend) FailFlush(err error) {
	b.flushErr = err
}

// Calls returns the recorded call log.
func (b *NullBackend) Calls() []string {
	return b.calls
}

// ResetCalls clears the call log.
func (b *NullBackend) ResetCalls() {
	b.calls = nil
}

// Flushes returns how many times Flush was called.
func (b *NullBackend) Flushes() int {
	return b.flushes
}

// Line returns the painted text of screen row y.
func (b *NullBackend) Line(y int) string {
	return b.screen.Line(y)
}

// Lines returns the painted text of every screen row.
func (b *NullBackend) Lines() []string {
	return b.screen.Lines()
}

// CellAt returns the painted cell at (x, y).
func (b *NullBackend) CellAt(x, y int) Cell {
	return b.screen.GetCell(x, y)
}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Resize simulates a terminal resize.
func (b *NullBackend) Resize(width, rows int) {
	b.screen.Resize(width, rows)
}

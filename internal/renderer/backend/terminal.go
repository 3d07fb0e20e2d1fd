package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/hecto/internal/input/key"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	active bool

	// Pen position for Print/Println
	penX, penY int

	// Cursor state, applied on Flush
	cursorX, cursorY int
	cursorVisible    bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.active = true
	return nil
}

func (t *Terminal) Shutdown() {
	if !t.active {
		return
	}
	t.active = false
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	w, h := t.screen.Size()
	return w, textHeight(h)
}

func (t *Terminal) ClearScreen() {
	t.screen.Clear()
	t.penX, t.penY = 0, 0
}

func (t *Terminal) ClearCurrentLine() {
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, t.penY, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) Flush() error {
	if t.cursorVisible {
		t.screen.ShowCursor(t.cursorX, t.cursorY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) HideCursor() {
	t.cursorVisible = false
}

func (t *Terminal) ShowCursor() {
	t.cursorVisible = true
}

func (t *Terminal) MoveCursor(x, y int) {
	t.penX, t.penY = x, y
	t.cursorX, t.cursorY = x, y
}

func (t *Terminal) SetForeground(c Color) {
	t.style = t.style.Foreground(convertColor(c))
}

func (t *Terminal) SetBackground(c Color) {
	t.style = t.style.Background(convertColor(c))
}

func (t *Terminal) ResetForeground() {
	t.style = t.style.Foreground(tcell.ColorDefault)
}

func (t *Terminal) ResetBackground() {
	t.style = t.style.Background(tcell.ColorDefault)
}

// Print places one grapheme cluster per cell group, advancing the pen by the
// cluster's display width. Text past the right edge is dropped.
func (t *Terminal) Print(s string) {
	w, _ := t.screen.Size()
	g := uniseg.NewGraphemes(s)
	for g.Next() && t.penX < w {
		runes := g.Runes()
		t.screen.SetContent(t.penX, t.penY, runes[0], runes[1:], t.style)
		t.penX += max(runewidth.StringWidth(g.Str()), 1)
	}
}

func (t *Terminal) Println(s string) {
	t.Print(s)
	t.penX = 0
	t.penY++
}

// ReadKey blocks for the next key event. Resize events resynchronise the
// screen and are otherwise absorbed; the next frame reads the new size.
func (t *Terminal) ReadKey() (key.Event, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return key.Event{}, ErrClosed
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if k, ok := convertKey(ev); ok {
				return k, nil
			}
		}
	}
}

// convertColor converts our Color to tcell.Color.
func convertColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKey converts a tcell key event to our key.Event. It reports false
// for keys the editor has no representation for.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := ev.Modifiers()

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case mods&tcell.ModAlt != 0:
			return key.Alt(r), true
		case mods&tcell.ModCtrl != 0:
			return key.Ctrl(r), true
		default:
			return key.Char(r), true
		}
	case tcell.KeyEnter:
		return key.Enter, true
	case tcell.KeyTab:
		return key.Tab, true
	case tcell.KeyBacktab:
		return key.Special(key.KeyBackTab), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace, true
	case tcell.KeyEscape:
		return key.Escape, true
	case tcell.KeyNUL:
		return key.Special(key.KeyNull), true
	case tcell.KeyDelete:
		return key.Delete, true
	case tcell.KeyInsert:
		return key.Special(key.KeyInsert), true
	case tcell.KeyHome:
		return key.Home, true
	case tcell.KeyEnd:
		return key.End, true
	case tcell.KeyPgUp:
		return key.PageUp, true
	case tcell.KeyPgDn:
		return key.PageDown, true
	case tcell.KeyUp:
		return key.Up, true
	case tcell.KeyDown:
		return key.Down, true
	case tcell.KeyLeft:
		return key.Left, true
	case tcell.KeyRight:
		return key.Right, true
	}

	k := ev.Key()
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.F(uint8(k-tcell.KeyF1) + 1), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA))), true
	}
	return key.Event{}, false
}

package backend

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/hecto/internal/input/key"
)

// Escape sequences written by the ANSI backend.
const (
	seqClearScreen     = "\x1b[2J"
	seqClearLine       = "\x1b[2K"
	seqHideCursor      = "\x1b[?25l"
	seqShowCursor      = "\x1b[?25h"
	seqResetForeground = "\x1b[39m"
	seqResetBackground = "\x1b[49m"
	seqAltScreenOn     = "\x1b[?1049h"
	seqAltScreenOff    = "\x1b[?1049l"
)

// Fallback size when the terminal size cannot be queried.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ANSI implements Backend by writing escape sequences to a raw-mode
// terminal. Output is buffered and written once per Flush.
type ANSI struct {
	in    *bufio.Reader
	out   *bufio.Writer
	inFd  int
	outFd int

	oldState *term.State
}

// NewANSI creates an ANSI backend on stdin and stdout.
func NewANSI() *ANSI {
	return newANSI(os.Stdin, os.Stdout, int(os.Stdin.Fd()), int(os.Stdout.Fd()))
}

func newANSI(in io.Reader, out io.Writer, inFd, outFd int) *ANSI {
	return &ANSI{
		in:    bufio.NewReader(in),
		out:   bufio.NewWriter(out),
		inFd:  inFd,
		outFd: outFd,
	}
}

func (a *ANSI) Init() error {
	if !term.IsTerminal(a.inFd) {
		return ErrNotTerminal
	}
	old, err := term.MakeRaw(a.inFd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	a.oldState = old

	a.out.WriteString(seqAltScreenOn)
	return a.out.Flush()
}

func (a *ANSI) Shutdown() {
	if a.oldState == nil {
		return
	}
	a.out.WriteString(seqResetForeground + seqResetBackground + seqShowCursor + seqAltScreenOff)
	_ = a.out.Flush() // best-effort; the tty may already be gone
	_ = term.Restore(a.inFd, a.oldState)
	a.oldState = nil
}

func (a *ANSI) Size() (int, int) {
	w, h, err := term.GetSize(a.outFd)
	if err != nil {
		w, h = fallbackWidth, fallbackHeight
	}
	return w, textHeight(h)
}

func (a *ANSI) ClearScreen() {
	a.out.WriteString(seqClearScreen)
	a.MoveCursor(0, 0)
}

func (a *ANSI) ClearCurrentLine() {
	a.out.WriteString(seqClearLine)
}

func (a *ANSI) Flush() error {
	return a.out.Flush()
}

func (a *ANSI) HideCursor() {
	a.out.WriteString(seqHideCursor)
}

func (a *ANSI) ShowCursor() {
	a.out.WriteString(seqShowCursor)
}

// MoveCursor translates the 0-based cell to the terminal's 1-based CUP.
func (a *ANSI) MoveCursor(x, y int) {
	fmt.Fprintf(a.out, "\x1b[%d;%dH", y+1, x+1)
}

func (a *ANSI) SetForeground(c Color) {
	fmt.Fprintf(a.out, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (a *ANSI) SetBackground(c Color) {
	fmt.Fprintf(a.out, "\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (a *ANSI) ResetForeground() {
	a.out.WriteString(seqResetForeground)
}

func (a *ANSI) ResetBackground() {
	a.out.WriteString(seqResetBackground)
}

func (a *ANSI) Print(s string) {
	a.out.WriteString(s)
}

func (a *ANSI) Println(s string) {
	a.out.WriteString(s)
	a.out.WriteString("\r\n")
}

func (a *ANSI) ReadKey() (key.Event, error) {
	for {
		ev, err := decodeKey(a.in)
		if err != nil {
			if err == io.EOF {
				return key.Event{}, ErrClosed
			}
			return key.Event{}, err
		}
		if ev.Key != key.KeyNone {
			return ev, nil
		}
	}
}

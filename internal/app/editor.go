package app

import (
	"time"

	"github.com/dshills/hecto/internal/engine/document"
	"github.com/dshills/hecto/internal/input"
	"github.com/dshills/hecto/internal/input/key"
	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/renderer/statusline"
	"github.com/dshills/hecto/internal/renderer/viewport"
)

// Status messages.
const (
	StatusSaveAborted = "Save aborted"
	StatusSaved       = "File saved successfully"
	StatusSaveFailed  = "Error saving file"
	StatusOpenFailed  = "Error opening file: "
	PromptSaveAs      = "Save as: "
)

// Default status bar colors.
var (
	DefaultStatusForeground = backend.RGB(63, 63, 63)
	DefaultStatusBackground = backend.RGB(239, 239, 239)
)

// Options configures an Editor.
type Options struct {
	// Filename is opened at startup. Empty starts with an empty document.
	Filename string

	// Version is shown in the welcome banner.
	Version string

	// Mapper translates keys to commands. Defaults to input.DefaultMapper.
	Mapper *input.Mapper

	// Logger receives session events. Defaults to NullLogger.
	Logger *Logger

	// StatusTimeout is how long a status message stays visible.
	// Defaults to statusline.DefaultTimeout.
	StatusTimeout time.Duration

	// StatusForeground and StatusBackground color the status bar. The zero
	// value of both selects the defaults.
	StatusForeground backend.Color
	StatusBackground backend.Color

	// Now is the clock used for status message ages. Defaults to time.Now.
	Now func() time.Time
}

// Editor is a single-document terminal text editor.
//
// Run is strictly serial: draw a frame, read one key, dispatch it, scroll,
// and repeat until quit. The editor owns its document exclusively.
type Editor struct {
	backend backend.Backend
	mapper  *input.Mapper
	doc     *document.Document
	cursor  document.Position
	view    *viewport.Viewport
	status  statusline.Message

	shouldQuit bool

	version          string
	statusTimeout    time.Duration
	statusForeground backend.Color
	statusBackground backend.Color

	logger  *Logger
	metrics *Metrics
	now     func() time.Time
}

// New creates an editor drawing through b. If opts.Filename cannot be
// opened, the editor starts with an empty document and a status message
// naming the file.
func New(b backend.Backend, opts Options) *Editor {
	e := &Editor{
		backend:          b,
		mapper:           opts.Mapper,
		version:          opts.Version,
		statusTimeout:    opts.StatusTimeout,
		statusForeground: opts.StatusForeground,
		statusBackground: opts.StatusBackground,
		logger:           opts.Logger,
		metrics:          NewMetrics(),
		now:              opts.Now,
	}
	if e.mapper == nil {
		e.mapper = input.DefaultMapper()
	}
	if e.logger == nil {
		e.logger = NullLogger
	}
	e.logger = e.logger.WithComponent("editor")
	if e.now == nil {
		e.now = time.Now
	}
	if e.statusTimeout <= 0 {
		e.statusTimeout = statusline.DefaultTimeout
	}
	if e.statusForeground == (backend.Color{}) && e.statusBackground == (backend.Color{}) {
		e.statusForeground = DefaultStatusForeground
		e.statusBackground = DefaultStatusBackground
	}

	w, h := b.Size()
	e.view = viewport.New(w, h)

	e.doc = document.New()
	initial := e.mapper.Help()
	if opts.Filename != "" {
		doc, err := document.Open(opts.Filename)
		if err != nil {
			e.logger.Warn("open failed: %v", err)
			initial = StatusOpenFailed + opts.Filename
		} else {
			e.doc = doc
			e.logger.Info("opened %s (%d lines)", opts.Filename, doc.Len())
		}
	}
	e.setStatus(initial)

	return e
}

// Run runs the editor until the user quits. It returns a *TerminalError
// when drawing or reading a key fails; the screen has been cleared by then.
func (e *Editor) Run() error {
	defer e.logShutdown()

	for {
		if err := e.refreshScreen(); err != nil {
			return e.fail("draw", err)
		}
		if e.shouldQuit {
			return nil
		}
		if err := e.processKeypress(); err != nil {
			return err
		}
	}
}

// processKeypress reads one key, dispatches it and scrolls.
func (e *Editor) processKeypress() error {
	ev, err := e.readKey()
	if err != nil {
		return err
	}

	cmd := e.mapper.Map(ev)
	e.logger.Debug("key %s -> %s", ev, cmd.Kind)

	switch cmd.Kind {
	case input.CommandQuit:
		e.shouldQuit = true
	case input.CommandSave:
		if err := e.save(); err != nil {
			return err
		}
	case input.CommandInsert:
		e.doc.Insert(e.cursor, cmd.Rune)
		e.moveCursor(input.MotionRight)
	case input.CommandDelete:
		e.doc.Delete(e.cursor)
	case input.CommandBackspace:
		if !e.cursor.IsOrigin() {
			e.moveCursor(input.MotionLeft)
			e.doc.Delete(e.cursor)
		}
	case input.CommandMove:
		e.moveCursor(cmd.Motion)
	}

	e.scroll()
	return nil
}

// readKey reads one key from the backend.
func (e *Editor) readKey() (key.Event, error) {
	ev, err := e.backend.ReadKey()
	if err != nil {
		return key.Event{}, e.fail("read key", err)
	}
	e.metrics.RecordKey()
	return ev, nil
}

// moveCursor applies a motion and clamps the result. The cursor may rest on
// the row just past the last one, at column 0, so text can be appended.
func (e *Editor) moveCursor(m input.Motion) {
	x, y := e.cursor.X, e.cursor.Y
	height := e.doc.Len()
	width := e.doc.RowLen(y)
	page := e.view.Height() - 1

	switch m {
	case input.MotionUp:
		y = max(y-1, 0)
	case input.MotionDown:
		if y < height {
			y++
		}
	case input.MotionLeft:
		if x == 0 && y > 0 {
			y--
			x = e.doc.RowLen(y)
		} else {
			x = max(x-1, 0)
		}
	case input.MotionRight:
		if x == width {
			x = 0
			y++
		} else {
			x++
		}
	case input.MotionPageUp:
		y = max(y-page, 0)
	case input.MotionPageDown:
		y += page
	case input.MotionHome:
		x = 0
	case input.MotionEnd:
		x = width
	}

	x = min(x, e.doc.RowLen(y))
	y = min(y, height)
	e.cursor = document.Position{X: x, Y: y}
}

// scroll moves the viewport so the cursor is visible. The terminal size is
// read again so a resize takes effect on the next frame.
func (e *Editor) scroll() {
	w, h := e.backend.Size()
	e.view.Resize(w, h)
	e.view.Scroll(e.cursor.X, e.cursor.Y)
}

// fail clears the screen after a terminal failure and wraps err.
func (e *Editor) fail(op string, err error) error {
	e.backend.ClearScreen()
	_ = e.backend.Flush() // best-effort; the terminal already failed
	e.logger.Error("terminal %s failed: %v", op, err)
	return NewTerminalError(op, err)
}

func (e *Editor) setStatus(text string) {
	e.status = statusline.NewMessage(text, e.now())
}

func (e *Editor) logShutdown() {
	e.logger.WithFields(e.metrics.Snapshot().Fields()).Info("session ended")
}

// Document returns the edited document.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Cursor returns the cursor position in document coordinates.
func (e *Editor) Cursor() document.Position {
	return e.cursor
}

// SetCursor moves the cursor, clamped like any motion.
func (e *Editor) SetCursor(pos document.Position) {
	e.cursor = document.Position{X: max(pos.X, 0), Y: max(pos.Y, 0)}
	e.moveCursor(input.MotionNone)
	e.scroll()
}

// Offset returns the top-left document position on screen.
func (e *Editor) Offset() document.Position {
	x, y := e.view.Offset()
	return document.Position{X: x, Y: y}
}

// Status returns the current status message.
func (e *Editor) Status() statusline.Message {
	return e.status
}

// ShouldQuit reports whether the user asked to quit.
func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// Metrics returns the session metrics.
func (e *Editor) Metrics() MetricsSnapshot {
	return e.metrics.Snapshot()
}

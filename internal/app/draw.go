package app

import (
	"github.com/dshills/hecto/internal/renderer/statusline"
)

const goodbye = "Goodbye."

// refreshScreen draws one frame and flushes it. Once quit was requested the
// frame is a cleared screen with a goodbye line.
func (e *Editor) refreshScreen() error {
	timer := StartTimer()
	b := e.backend

	b.HideCursor()
	b.ClearScreen()
	b.MoveCursor(0, 0)

	if e.shouldQuit {
		b.ClearScreen()
		b.Println(goodbye)
	} else {
		e.drawRows()
		e.drawStatusBar()
		e.drawMessageBar()
		b.MoveCursor(e.view.ScreenPosition(e.cursor.X, e.cursor.Y))
	}

	b.ShowCursor()
	err := b.Flush()
	e.metrics.RecordFrame(timer.Elapsed())
	return err
}

// drawRows draws the text area: document rows, the welcome banner on an
// empty document, and "~" past the end.
func (e *Editor) drawRows() {
	b := e.backend
	width, height := b.Size()
	offX, offY := e.view.Offset()

	for r := 0; r < height; r++ {
		b.ClearCurrentLine()
		switch row := e.doc.Row(r + offY); {
		case row != nil:
			b.Println(row.Render(offX, offX+width))
		case e.doc.IsEmpty() && r == height/3:
			b.Println(statusline.Welcome(e.version, width))
		default:
			b.Println("~")
		}
	}
}

func (e *Editor) drawStatusBar() {
	b := e.backend
	width, _ := b.Size()

	bar := statusline.StatusBar(statusline.Info{
		Filename:   e.doc.Filename(),
		Lines:      e.doc.Len(),
		Modified:   e.doc.IsDirty(),
		CursorLine: e.cursor.Y,
	}, width)

	b.SetBackground(e.statusBackground)
	b.SetForeground(e.statusForeground)
	b.Println(bar)
	b.ResetBackground()
	b.ResetForeground()
}

func (e *Editor) drawMessageBar() {
	b := e.backend
	width, _ := b.Size()

	b.ClearCurrentLine()
	if text := statusline.MessageBar(e.status, e.now(), e.statusTimeout, width); text != "" {
		b.Print(text)
	}
}

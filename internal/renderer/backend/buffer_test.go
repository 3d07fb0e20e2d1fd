package backend

import "testing"

func TestNewScreenBuffer(t *testing.T) {
	sb := NewScreenBuffer(80, 24)

	w, h := sb.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestScreenBufferSetGetCell(t *testing.T) {
	sb := NewScreenBuffer(10, 5)

	cell := Cell{Text: "X", Foreground: Color{R: 255}, HasForeground: true}
	sb.SetCell(3, 2, cell)

	if got := sb.GetCell(3, 2); got != cell {
		t.Errorf("GetCell(3, 2) = %+v, want %+v", got, cell)
	}

	// Out of bounds should be ignored/return empty
	sb.SetCell(-1, 0, cell)
	sb.SetCell(10, 0, cell)
	sb.SetCell(0, 5, cell)

	if got := sb.GetCell(-1, 0); got != (Cell{}) {
		t.Errorf("GetCell(-1, 0) = %+v, want empty", got)
	}
	if got := sb.GetCell(10, 0); got != (Cell{}) {
		t.Errorf("GetCell(10, 0) = %+v, want empty", got)
	}
}

func TestScreenBufferClear(t *testing.T) {
	sb := NewScreenBuffer(10, 5)
	sb.SetCell(1, 1, Cell{Text: "X"})
	sb.SetCell(4, 3, Cell{Text: "Y"})

	sb.Clear()

	for y, line := range sb.Lines() {
		if line != "" {
			t.Errorf("Line(%d) = %q after Clear, want empty", y, line)
		}
	}
}

func TestScreenBufferClearLine(t *testing.T) {
	sb := NewScreenBuffer(10, 3)
	sb.SetCell(0, 0, Cell{Text: "a"})
	sb.SetCell(0, 1, Cell{Text: "b"})

	sb.ClearLine(1)
	sb.ClearLine(-1)
	sb.ClearLine(3)

	if got := sb.Line(0); got != "a" {
		t.Errorf("Line(0) = %q, want %q", got, "a")
	}
	if got := sb.Line(1); got != "" {
		t.Errorf("Line(1) = %q, want empty", got)
	}
}

func TestScreenBufferLine(t *testing.T) {
	sb := NewScreenBuffer(10, 1)
	sb.SetCell(0, 0, Cell{Text: "a"})
	sb.SetCell(2, 0, Cell{Text: "é"})

	if got, want := sb.Line(0), "a é"; got != want {
		t.Errorf("Line(0) = %q, want %q", got, want)
	}
	if got := sb.Line(5); got != "" {
		t.Errorf("Line(5) = %q, want empty", got)
	}
}

func TestScreenBufferResize(t *testing.T) {
	sb := NewScreenBuffer(10, 5)
	sb.SetCell(1, 1, Cell{Text: "X"})
	sb.SetCell(8, 4, Cell{Text: "Y"})

	sb.Resize(5, 3)

	w, h := sb.Size()
	if w != 5 || h != 3 {
		t.Errorf("expected size (5, 3), got (%d, %d)", w, h)
	}
	if got := sb.GetCell(1, 1).Text; got != "X" {
		t.Errorf("content at (1, 1) = %q, want preserved %q", got, "X")
	}

	sb.Resize(10, 5)
	if got := sb.GetCell(8, 4).Text; got != "" {
		t.Errorf("content at (8, 4) = %q, want dropped", got)
	}
}

package backend

import "strings"

// Cell is one screen cell of a ScreenBuffer.
type Cell struct {
	// Text is the grapheme cluster shown in the cell; empty means blank.
	Text string

	// Foreground and Background are only meaningful when the matching
	// Has flag is set; otherwise the terminal default applies.
	Foreground    Color
	Background    Color
	HasForeground bool
	HasBackground bool
}

// ScreenBuffer is an in-memory grid of cells.
type ScreenBuffer struct {
	width, height int
	cells         [][]Cell
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{
		width:  width,
		height: height,
	}
	sb.allocate()
	return sb
}

// allocate creates the internal grid.
func (sb *ScreenBuffer) allocate() {
	sb.cells = make([][]Cell, sb.height)
	for y := range sb.cells {
		sb.cells[y] = make([]Cell, sb.width)
	}
}

// Resize resizes the buffer, preserving content where possible.
func (sb *ScreenBuffer) Resize(width, height int) {
	if width == sb.width && height == sb.height {
		return
	}

	old := sb.cells
	sb.width = width
	sb.height = height
	sb.allocate()

	for y := 0; y < min(len(old), height); y++ {
		copy(sb.cells[y], old[y])
	}
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets a cell. Positions outside the buffer are ignored.
func (sb *ScreenBuffer) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.cells[y][x] = cell
}

// GetCell returns a cell, or an empty cell outside the buffer.
func (sb *ScreenBuffer) GetCell(x, y int) Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return Cell{}
	}
	return sb.cells[y][x]
}

// ClearLine blanks row y.
func (sb *ScreenBuffer) ClearLine(y int) {
	if y < 0 || y >= sb.height {
		return
	}
	clear(sb.cells[y])
}

// Clear blanks every cell.
func (sb *ScreenBuffer) Clear() {
	for y := range sb.cells {
		clear(sb.cells[y])
	}
}

// Line returns the text of row y with blank cells as spaces and trailing
// blanks removed.
func (sb *ScreenBuffer) Line(y int) string {
	if y < 0 || y >= sb.height {
		return ""
	}
	var b strings.Builder
	for _, c := range sb.cells[y] {
		if c.Text == "" {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(c.Text)
	}
	return strings.TrimRight(b.String(), " ")
}

// Lines returns every row as produced by Line.
func (sb *ScreenBuffer) Lines() []string {
	out := make([]string, sb.height)
	for y := range out {
		out[y] = sb.Line(y)
	}
	return out
}

// Package viewport provides viewport management for the renderer.
package viewport

// Viewport is the visible window onto the document: a scroll offset in
// document coordinates plus the size of the text area in cells.
type Viewport struct {
	// First visible column and row
	offsetX int
	offsetY int

	// Size in screen cells
	width  int
	height int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 so Scroll always has a
// non-empty rectangle to place the cursor in.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// Offset returns the document position shown at the top-left cell.
func (v *Viewport) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// SetOffset moves the viewport. Negative values are clamped to 0.
func (v *Viewport) SetOffset(x, y int) {
	v.offsetX = max(x, 0)
	v.offsetY = max(y, 0)
}

// Resize updates the viewport size. The offset is left as is; the next
// Scroll brings the cursor back into view.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Scroll adjusts the offset so that (x, y) lies inside the visible
// rectangle, moving by the smallest amount on each axis.
func (v *Viewport) Scroll(x, y int) {
	if y < v.offsetY {
		v.offsetY = y
	} else if y >= v.offsetY+v.height {
		v.offsetY = saturatingSub(y, v.height) + 1
	}

	if x < v.offsetX {
		v.offsetX = x
	} else if x >= v.offsetX+v.width {
		v.offsetX = saturatingSub(x, v.width) + 1
	}
}

// Contains reports whether the document position (x, y) is visible.
func (v *Viewport) Contains(x, y int) bool {
	return y >= v.offsetY && y < v.offsetY+v.height &&
		x >= v.offsetX && x < v.offsetX+v.width
}

// ScreenPosition converts a document position to a screen cell, flooring
// each axis at 0.
func (v *Viewport) ScreenPosition(x, y int) (int, int) {
	return saturatingSub(x, v.offsetX), saturatingSub(y, v.offsetY)
}

// saturatingSub returns a-b, or 0 when b > a.
func saturatingSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}

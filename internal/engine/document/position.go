package document

import "fmt"

// Position addresses a grapheme in the document.
// Y is the row index and X the grapheme index within that row. Y may equal
// Len(), which is the virtual line just past the last row; X is then 0.
type Position struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsOrigin returns true if this is the top-left position (0,0).
func (p Position) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

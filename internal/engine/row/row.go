// Package row provides a single logical line of text addressed by grapheme
// cluster index.
//
// All indices accepted by Row methods are grapheme indices in the half-open
// range [0, Len()]. Segmentation follows Unicode UAX #29 and is recomputed on
// every call; rows are short and edits are driven by human keystrokes, so no
// index cache is kept.
package row

import (
	"strings"

	"github.com/rivo/uniseg"
)

// tabExpansion is what a tab grapheme renders as.
const tabExpansion = "  "

// Row is one line of a document, stored without a line terminator.
type Row struct {
	text string
}

// New creates a row from a line of text. The text must not contain a
// line terminator.
func New(text string) *Row {
	return &Row{text: text}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return uniseg.GraphemeClusterCount(r.text)
}

// IsEmpty reports whether the row holds no text at all.
func (r *Row) IsEmpty() bool {
	return r.text == ""
}

// String returns the row text.
func (r *Row) String() string {
	return r.text
}

// Bytes returns the raw UTF-8 bytes of the row.
func (r *Row) Bytes() []byte {
	return []byte(r.text)
}

// Render returns graphemes [start, end) ready for display. end is clamped to
// Len() and start to end. Tabs expand to two spaces; every other grapheme is
// emitted verbatim.
func (r *Row) Render(start, end int) string {
	g := uniseg.NewGraphemes(r.text)
	var sb strings.Builder
	idx := 0
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			if cluster := g.Str(); cluster == "\t" {
				sb.WriteString(tabExpansion)
			} else {
				sb.WriteString(cluster)
			}
		}
		idx++
	}
	return sb.String()
}

// Insert places c before the grapheme at index at. When at is Len() (or
// beyond) the character is appended. The inserted rune is not merged with
// its neighbours here; the next segmentation pass decides the clusters.
func (r *Row) Insert(at int, c rune) {
	if at >= r.Len() {
		r.text += string(c)
		return
	}
	head, tail := r.splitAt(at)
	r.text = head + string(c) + tail
}

// Delete removes the grapheme at index at. It reports whether anything was
// removed; indices at or past Len() are a no-op.
func (r *Row) Delete(at int) bool {
	if at < 0 || at >= r.Len() {
		return false
	}
	head, tail := r.splitAt(at)
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(tail, -1)
	r.text = head + rest
	return true
}

// Append concatenates the text of other onto r.
func (r *Row) Append(other *Row) {
	r.text += other.text
}

// Split truncates r to graphemes [0, at) and returns a new row holding the
// remaining graphemes.
func (r *Row) Split(at int) *Row {
	head, tail := r.splitAt(at)
	r.text = head
	return New(tail)
}

// splitAt returns the text before and after grapheme index at.
func (r *Row) splitAt(at int) (string, string) {
	if at <= 0 {
		return "", r.text
	}
	g := uniseg.NewGraphemes(r.text)
	idx := 0
	for g.Next() {
		if idx == at {
			from, _ := g.Positions()
			return r.text[:from], r.text[from:]
		}
		idx++
	}
	return r.text, ""
}

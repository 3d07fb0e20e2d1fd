// Package statusline provides the status bar, message bar and welcome banner
// text shown around the document.
//
// Widths are measured in bytes, not display cells. Filenames with wide or
// combining characters therefore mis-align the right-hand line indicator;
// only ASCII names are laid out exactly.
package statusline

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// NoName is shown in the status bar for documents without a filename.
const NoName = "[No Name]"

// DefaultTimeout is how long a status message stays on screen.
const DefaultTimeout = 5 * time.Second

// Message is a status message with its creation time.
type Message struct {
	Text string
	Time time.Time
}

// NewMessage creates a message stamped with now.
func NewMessage(text string, now time.Time) Message {
	return Message{Text: text, Time: now}
}

// Visible reports whether the message is younger than timeout at now.
func (m Message) Visible(now time.Time, timeout time.Duration) bool {
	return now.Sub(m.Time) < timeout
}

// Info is the document state summarised by the status bar.
type Info struct {
	Filename string
	Lines    int
	Modified bool
	// CursorLine is the 0-based cursor row.
	CursorLine int
}

// StatusBar formats the status bar: filename, line count and modified flag
// on the left, "<line>/<lines>" on the right, padded with spaces to exactly
// width bytes and truncated to width.
func StatusBar(info Info, width int) string {
	name := info.Filename
	if name == "" {
		name = NoName
	}
	modified := ""
	if info.Modified {
		modified = "(modified)"
	}

	left := fmt.Sprintf("%s - %d lines %s", name, info.Lines, modified)
	right := fmt.Sprintf("%d/%d", info.CursorLine+1, info.Lines)

	var sb strings.Builder
	sb.WriteString(left)
	if used := len(left) + len(right); width > used {
		sb.WriteString(strings.Repeat(" ", width-used))
	}
	sb.WriteString(right)
	return Truncate(sb.String(), width)
}

// MessageBar returns the message text truncated to width, or "" once the
// message has expired.
func MessageBar(m Message, now time.Time, timeout time.Duration, width int) string {
	if !m.Visible(now, timeout) {
		return ""
	}
	return Truncate(m.Text, width)
}

// Welcome formats the banner drawn a third of the way down an empty
// document: a tilde followed by the centred title.
func Welcome(version string, width int) string {
	title := "Hecto editor -- version " + version
	padding := saturatingSub(width, len(title)) / 2
	spaces := strings.Repeat(" ", saturatingSub(padding, 1))
	return Truncate("~"+spaces+title, width)
}

// Truncate shortens s to at most width bytes without splitting a UTF-8
// sequence.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	cut := width
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func saturatingSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}

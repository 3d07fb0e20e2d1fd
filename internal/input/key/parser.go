package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Tab", "Space", "Esc", "Backspace", "F5"
//   - With a modifier: "Ctrl+S", "Alt+x"
//   - Vim-style: "<C-s>", "<A-x>", "<CR>", "<BS>", "C-q"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		spec = spec[1 : len(spec)-1]
	}

	// Modifier prefix: "C-x", "Ctrl+x", "A-x", "Alt+x". A lone "-" or "+"
	// is a character.
	if len(spec) > 2 {
		if idx := strings.IndexAny(spec, "-+"); idx > 0 && idx < len(spec)-1 {
			return parseModified(spec[:idx], spec[idx+1:])
		}
	}

	return parseSingle(spec)
}

// parseModified builds a Ctrl or Alt event from a modifier name and a single
// character.
func parseModified(mod, keyPart string) (Event, error) {
	r, err := singleRune(keyPart)
	if err != nil {
		return Event{}, err
	}

	switch strings.ToLower(mod) {
	case "c", "ctrl", "control":
		return Ctrl(r), nil
	case "a", "alt", "m", "meta":
		return Alt(r), nil
	case "s", "shift":
		if strings.EqualFold(keyPart, "tab") {
			return Special(KeyBackTab), nil
		}
		return Event{}, fmt.Errorf("%w: shift is only valid with tab", ErrInvalidSpec)
	default:
		return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, mod)
	}
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	if k := KeyFromName(spec); k != KeyNone {
		return Special(k), nil
	}

	lower := strings.ToLower(spec)
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil {
			if n < 1 || n > 12 {
				return Event{}, fmt.Errorf("%w: function key %q out of range", ErrInvalidSpec, spec)
			}
			return F(uint8(n)), nil
		}
	}

	r, err := singleRune(spec)
	if err != nil {
		return Event{}, err
	}
	return Char(r), nil
}

// singleRune resolves a character name or a one-rune string.
func singleRune(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "cr", "return", "enter":
		return '\n', nil
	case "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	case "lt":
		return '<', nil
	case "gt":
		return '>', nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, s)
	}
	return runes[0], nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/hecto/internal/input/key"
)

// ErrDuplicateBinding is returned when two bindings use the same key.
var ErrDuplicateBinding = errors.New("duplicate key binding")

// Binding represents a single key-to-command mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "C-s", "<C-q>", "Ctrl+S"
	Keys string

	// Command is the command the key produces.
	Command Command

	// Description is shown in the help line.
	Description string
}

// DefaultBindings returns the control bindings of the editor. Edits and
// motions are not bindable and are handled by Mapper directly.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: "C-s", Command: Command{Kind: CommandSave}, Description: "save"},
		{Keys: "C-q", Command: Command{Kind: CommandQuit}, Description: "quit"},
	}
}

// motions maps the navigation keys to motions.
var motions = map[key.Key]Motion{
	key.KeyUp:       MotionUp,
	key.KeyDown:     MotionDown,
	key.KeyLeft:     MotionLeft,
	key.KeyRight:    MotionRight,
	key.KeyPageUp:   MotionPageUp,
	key.KeyPageDown: MotionPageDown,
	key.KeyHome:     MotionHome,
	key.KeyEnd:      MotionEnd,
}

// Mapper translates key events into editor commands.
type Mapper struct {
	bindings []Binding
	lookup   map[key.Event]Command
}

// NewMapper creates a mapper from bindings. Later bindings for the same key
// replace earlier ones.
func NewMapper(bindings []Binding) (*Mapper, error) {
	m := &Mapper{
		bindings: make([]Binding, 0, len(bindings)),
		lookup:   make(map[key.Event]Command, len(bindings)),
	}
	for i, b := range bindings {
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		if _, dup := m.lookup[ev]; dup {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, ErrDuplicateBinding)
		}
		m.bindings = append(m.bindings, b)
		m.lookup[ev] = b.Command
	}
	return m, nil
}

// DefaultMapper returns a mapper with DefaultBindings.
func DefaultMapper() *Mapper {
	m, err := NewMapper(DefaultBindings())
	if err != nil {
		panic(err)
	}
	return m
}

// Map returns the command for ev. Unknown keys map to CommandNone.
func (m *Mapper) Map(ev key.Event) Command {
	if cmd, ok := m.lookup[ev]; ok {
		return cmd
	}

	switch ev.Key {
	case key.KeyChar:
		if insertable(ev.Rune) {
			return Insert(ev.Rune)
		}
		return Command{}
	case key.KeyDelete:
		return Command{Kind: CommandDelete}
	case key.KeyBackspace:
		return Command{Kind: CommandBackspace}
	}

	if motion, ok := motions[ev.Key]; ok {
		return Move(motion)
	}
	return Command{}
}

// Help returns the help line listing the bindings, such as
// "HELP: Ctrl-s = save | Ctrl-q = quit".
func (m *Mapper) Help() string {
	parts := make([]string, 0, len(m.bindings))
	for _, b := range m.bindings {
		ev, err := key.Parse(b.Keys)
		if err != nil || b.Description == "" {
			continue
		}
		parts = append(parts, helpName(ev)+" = "+b.Description)
	}
	return "HELP: " + strings.Join(parts, " | ")
}

// helpName spells a key the way the help line shows it.
func helpName(ev key.Event) string {
	if ev.Key == key.KeyCtrl {
		return "Ctrl-" + string(ev.Rune)
	}
	return ev.String()
}

// insertable reports whether a typed character goes into the document.
// Enter and Tab arrive as '\n' and '\t' and are inserted; other control
// characters are ignored.
func insertable(r rune) bool {
	return r == '\n' || r == '\t' || !unicode.IsControl(r)
}

// MapPrompt returns the prompt command for ev.
func MapPrompt(ev key.Event) PromptCommand {
	switch {
	case ev.Key == key.KeyBackspace:
		return PromptCommand{Kind: PromptPop}
	case ev.Key == key.KeyEscape:
		return PromptCommand{Kind: PromptCancel}
	case ev.Key == key.KeyChar && ev.Rune == '\n':
		return PromptCommand{Kind: PromptCommit}
	case ev.Key == key.KeyChar && !unicode.IsControl(ev.Rune):
		return PromptCommand{Kind: PromptPush, Rune: ev.Rune}
	default:
		return PromptCommand{}
	}
}

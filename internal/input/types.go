package input

// Motion is a cursor movement.
type Motion uint8

const (
	// MotionNone indicates no movement.
	MotionNone Motion = iota
	// MotionUp moves one row up.
	MotionUp
	// MotionDown moves one row down.
	MotionDown
	// MotionLeft moves one grapheme left, wrapping to the previous row.
	MotionLeft
	// MotionRight moves one grapheme right, wrapping to the next row.
	MotionRight
	// MotionPageUp moves one screen up.
	MotionPageUp
	// MotionPageDown moves one screen down.
	MotionPageDown
	// MotionHome moves to the start of the row.
	MotionHome
	// MotionEnd moves to the end of the row.
	MotionEnd
)

// String returns a string representation of the motion.
func (m Motion) String() string {
	switch m {
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionPageUp:
		return "pageUp"
	case MotionPageDown:
		return "pageDown"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	default:
		return "none"
	}
}

// CommandKind identifies what a Command does.
type CommandKind uint8

const (
	// CommandNone means the key is ignored.
	CommandNone CommandKind = iota
	// CommandQuit ends the session.
	CommandQuit
	// CommandSave runs the save flow.
	CommandSave
	// CommandInsert inserts Command.Rune at the cursor.
	CommandInsert
	// CommandDelete deletes the grapheme at the cursor.
	CommandDelete
	// CommandBackspace deletes the grapheme before the cursor.
	CommandBackspace
	// CommandMove moves the cursor by Command.Motion.
	CommandMove
)

// String returns a string representation of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandQuit:
		return "quit"
	case CommandSave:
		return "save"
	case CommandInsert:
		return "insert"
	case CommandDelete:
		return "delete"
	case CommandBackspace:
		return "backspace"
	case CommandMove:
		return "move"
	default:
		return "none"
	}
}

// Command is the editor action a key maps to.
type Command struct {
	Kind CommandKind

	// Rune is set for CommandInsert.
	Rune rune

	// Motion is set for CommandMove.
	Motion Motion
}

// Insert returns an insert command for r.
func Insert(r rune) Command {
	return Command{Kind: CommandInsert, Rune: r}
}

// Move returns a move command.
func Move(m Motion) Command {
	return Command{Kind: CommandMove, Motion: m}
}

// PromptKind identifies what a key does inside the prompt.
type PromptKind uint8

const (
	// PromptNone means the key is ignored.
	PromptNone PromptKind = iota
	// PromptCommit ends the prompt with the current input.
	PromptCommit
	// PromptCancel clears the input and ends the prompt.
	PromptCancel
	// PromptPop removes the last character of the input.
	PromptPop
	// PromptPush appends PromptCommand.Rune to the input.
	PromptPush
)

// PromptCommand is the prompt action a key maps to.
type PromptCommand struct {
	Kind PromptKind
	Rune rune
}

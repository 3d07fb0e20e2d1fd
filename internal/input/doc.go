// Package input turns key events into editor commands.
//
// A Mapper holds the control bindings (Ctrl-s to save, Ctrl-q to quit) and
// classifies every other key as an edit, a cursor motion, or nothing:
//
//	m := input.DefaultMapper()
//	cmd := m.Map(key.Char('a'))   // CommandInsert with Rune 'a'
//	cmd = m.Map(key.Left)         // CommandMove with MotionLeft
//	cmd = m.Map(key.Ctrl('q'))    // CommandQuit
//
// MapPrompt does the same for the single-line prompt used to ask for a file
// name.
//
// Key events and the key specification syntax used by bindings live in the
// key subpackage.
package input

// Package key provides the key event type consumed by the editor.
//
// An Event is a tagged variant: Key names the case and, depending on the
// case, Rune or F carries the payload.
//
//   - Special keys: Backspace, arrows, Home/End, PageUp/PageDown, Delete,
//     Insert, BackTab, Null, Esc
//   - F(n): function key n (1..12)
//   - Char(c): a character; Enter arrives as Char('\n'), Tab as Char('\t')
//   - Alt(c), Ctrl(c): a character with a modifier held
//
// # Key Specifications
//
// Events can be written as strings for bindings and tests:
//
//   - Simple keys: "a", "A", "1", "Enter", "Esc", "F5"
//   - With modifiers: "Ctrl+S", "Alt+x"
//   - Vim-style: "<C-s>", "<A-x>", "<CR>", "<BS>"
package key

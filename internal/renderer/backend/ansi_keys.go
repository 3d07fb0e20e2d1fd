package backend

import (
	"bufio"
	"strconv"

	"github.com/dshills/hecto/internal/input/key"
)

const esc = 0x1b

// decodeKey reads one key from a raw-mode byte stream.
//
// A lone ESC is told apart from the start of an escape sequence by whether
// more bytes arrived in the same read: terminals emit a sequence in a single
// write. Sequences the editor does not know decode to KeyNone.
func decodeKey(r *bufio.Reader) (key.Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return key.Event{}, err
	}

	switch {
	case b == esc:
		return decodeEscape(r)
	case b == '\r' || b == '\n':
		return key.Enter, nil
	case b == '\t':
		return key.Tab, nil
	case b == 0x7f || b == 0x08:
		return key.Backspace, nil
	case b == 0:
		return key.Special(key.KeyNull), nil
	case b <= 0x1a:
		return key.Ctrl(rune('a' + b - 1)), nil
	case b < 0x20:
		// 0x1c..0x1f are Ctrl with \ ] ^ _
		return key.Ctrl(rune(b + 0x40)), nil
	}

	if err := r.UnreadByte(); err != nil {
		return key.Event{}, err
	}
	c, _, err := r.ReadRune()
	if err != nil {
		return key.Event{}, err
	}
	return key.Char(c), nil
}

// decodeEscape decodes what follows an ESC byte.
func decodeEscape(r *bufio.Reader) (key.Event, error) {
	if r.Buffered() == 0 {
		return key.Escape, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return key.Event{}, err
	}

	switch b {
	case '[':
		return decodeCSI(r)
	case 'O':
		return decodeSS3(r)
	case esc:
		if err := r.UnreadByte(); err != nil {
			return key.Event{}, err
		}
		return key.Escape, nil
	}

	if err := r.UnreadByte(); err != nil {
		return key.Event{}, err
	}
	c, _, err := r.ReadRune()
	if err != nil {
		return key.Event{}, err
	}
	return key.Alt(c), nil
}

// decodeCSI decodes "ESC [ params final".
func decodeCSI(r *bufio.Reader) (key.Event, error) {
	if r.Buffered() == 0 {
		return key.Alt('['), nil
	}

	var params []byte
	for {
		if r.Buffered() == 0 {
			return key.Event{}, nil
		}
		b, err := r.ReadByte()
		if err != nil {
			return key.Event{}, err
		}
		if (b >= '0' && b <= '9') || b == ';' {
			params = append(params, b)
			continue
		}
		return csiKey(params, b), nil
	}
}

// csiKey maps a CSI final byte and its parameters to a key.
func csiKey(params []byte, final byte) key.Event {
	switch final {
	case 'A':
		return key.Up
	case 'B':
		return key.Down
	case 'C':
		return key.Right
	case 'D':
		return key.Left
	case 'H':
		return key.Home
	case 'F':
		return key.End
	case 'Z':
		return key.Special(key.KeyBackTab)
	case '~':
		return tildeKey(params)
	default:
		return key.Event{}
	}
}

// tildeKey maps "ESC [ n ~" sequences. Modifier parameters after ';' are
// ignored.
func tildeKey(params []byte) key.Event {
	for i, b := range params {
		if b == ';' {
			params = params[:i]
			break
		}
	}
	n, err := strconv.Atoi(string(params))
	if err != nil {
		return key.Event{}
	}

	switch n {
	case 1, 7:
		return key.Home
	case 2:
		return key.Special(key.KeyInsert)
	case 3:
		return key.Delete
	case 4, 8:
		return key.End
	case 5:
		return key.PageUp
	case 6:
		return key.PageDown
	case 11, 12, 13, 14, 15:
		return key.F(uint8(n - 10))
	case 17, 18, 19, 20, 21:
		return key.F(uint8(n - 11))
	case 23, 24:
		return key.F(uint8(n - 12))
	default:
		return key.Event{}
	}
}

// decodeSS3 decodes "ESC O final", used for F1-F4 and by some terminals for
// arrows and Home/End.
func decodeSS3(r *bufio.Reader) (key.Event, error) {
	if r.Buffered() == 0 {
		return key.Alt('O'), nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return key.Event{}, err
	}

	switch b {
	case 'P', 'Q', 'R', 'S':
		return key.F(b - 'P' + 1), nil
	default:
		return csiKey(nil, b), nil
	}
}

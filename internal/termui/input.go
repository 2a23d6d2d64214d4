package termui

import (
	"time"
)

// escSequenceWait bounds the secondary read that distinguishes a lone
// escape keypress from the first byte of a multi-byte sequence.
const escSequenceWait = 100 * time.Millisecond

// Key identifies a decoded keypress.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyCancel
	KeyRune
)

// KeyEvent is one decoded keypress; Rune is set for KeyRune only.
type KeyEvent struct {
	Key  Key
	Rune byte
}

// byteSource yields single input bytes with a bounded wait: ok is false
// when no byte arrived within the window.
type byteSource interface {
	readByte(wait time.Duration) (b byte, ok bool, err error)
}

// keyDecoder turns raw terminal bytes into key events. Recognized escape
// sequences:
//
//	ESC [ A / B        up / down arrow
//	ESC [ H / F        home / end
//	ESC [ 1 ~ / 4 ~    home / end (VT variants)
//	ESC [ 5 ~ / 6 ~    page up / page down
//
// An escape byte with no continuation inside escSequenceWait is a cancel
// keypress; unrecognized continuations decode to KeyNone.
type keyDecoder struct {
	src byteSource
}

func newKeyDecoder(src byteSource) *keyDecoder {
	return &keyDecoder{src: src}
}

// next waits up to the given duration for a keypress. A quiet window
// returns KeyNone so the caller can poll its shutdown flag.
func (d *keyDecoder) next(wait time.Duration) (KeyEvent, error) {
	b, ok, err := d.src.readByte(wait)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok {
		return KeyEvent{Key: KeyNone}, nil
	}
	switch b {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case 'q', 'Q', 0x03: // 0x03 is Ctrl-C, delivered as a byte in raw mode
		return KeyEvent{Key: KeyCancel}, nil
	case 0x1b:
		return d.escape()
	default:
		return KeyEvent{Key: KeyRune, Rune: b}, nil
	}
}

func (d *keyDecoder) escape() (KeyEvent, error) {
	b, ok, err := d.src.readByte(escSequenceWait)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok {
		return KeyEvent{Key: KeyCancel}, nil
	}
	if b != '[' {
		return KeyEvent{Key: KeyNone}, nil
	}
	b, ok, err = d.src.readByte(escSequenceWait)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok {
		return KeyEvent{Key: KeyNone}, nil
	}
	switch b {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'H':
		return KeyEvent{Key: KeyHome}, nil
	case 'F':
		return KeyEvent{Key: KeyEnd}, nil
	case '1', '4', '5', '6':
		return d.tilde(b)
	default:
		return KeyEvent{Key: KeyNone}, nil
	}
}

func (d *keyDecoder) tilde(kind byte) (KeyEvent, error) {
	b, ok, err := d.src.readByte(escSequenceWait)
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok || b != '~' {
		return KeyEvent{Key: KeyNone}, nil
	}
	switch kind {
	case '1':
		return KeyEvent{Key: KeyHome}, nil
	case '4':
		return KeyEvent{Key: KeyEnd}, nil
	case '5':
		return KeyEvent{Key: KeyPageUp}, nil
	default:
		return KeyEvent{Key: KeyPageDown}, nil
	}
}

package execute

import (
	"errors"
	"fmt"
)

const (
	// baselineCapacity is the initial allocation of a capture buffer.
	baselineCapacity = 4096
	// defaultCeiling bounds how much captured child output is retained.
	defaultCeiling = 256 << 20
)

// ErrCaptureOverflow is returned when captured output would exceed the
// buffer ceiling or wrap the size arithmetic.
var ErrCaptureOverflow = errors.New("captured output exceeds buffer limit")

// captureBuffer accumulates child stdout. It keeps a logical length separate
// from capacity and grows geometrically, never shrinking. The spare byte
// (capacity >= length+1) is maintained so a terminator could always be
// placed without reallocation.
type captureBuffer struct {
	data    []byte
	length  int
	ceiling int
}

func newCaptureBuffer() *captureBuffer {
	return &captureBuffer{
		data:    make([]byte, baselineCapacity),
		ceiling: defaultCeiling,
	}
}

func (b *captureBuffer) capacity() int { return len(b.data) }

// append copies p into the buffer, growing it as needed. Bytes are copied
// exactly; a failed growth leaves the buffer unchanged.
func (b *captureBuffer) append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if b.length > b.ceiling-len(p)-1 {
		return fmt.Errorf("%w: need %d more bytes over %d", ErrCaptureOverflow, len(p), b.length)
	}
	required := b.length + len(p) + 1
	if required > len(b.data) {
		newCap := len(b.data) * 2
		if newCap < required {
			newCap = required
		}
		if newCap > b.ceiling {
			newCap = b.ceiling
			if newCap < required {
				return fmt.Errorf("%w: required capacity %d over ceiling %d", ErrCaptureOverflow, required, b.ceiling)
			}
		}
		grown := make([]byte, newCap)
		copy(grown, b.data[:b.length])
		b.data = grown
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	return nil
}

// bytes returns the accumulated output. The result aliases the buffer's
// storage; callers own the buffer by then.
func (b *captureBuffer) bytes() []byte {
	return b.data[:b.length]
}

package message

import (
	"errors"
	"io"
)

var errNegativePosition = errors.New("seek to a negative position")

// writeBuffer is an in-memory io.WriteSeeker. Writing past the end grows the
// buffer, filling any gap with zeros.
type writeBuffer struct {
	buf []byte
	pos int64
}

func (b *writeBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.buf)) {
		b.buf = append(b.buf, make([]byte, end-int64(len(b.buf)))...)
	}
	copy(b.buf[b.pos:], p)
	b.pos = end
	return len(p), nil
}

func (b *writeBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if pos < 0 {
		return 0, errNegativePosition
	}
	b.pos = pos
	return pos, nil
}

// Bytes returns the buffer contents
func (b *writeBuffer) Bytes() []byte {
	return b.buf
}

package message

import (
	"errors"
	"fmt"
	"math"
)

// Errors
var (
	ErrOverflow  = errors.New("message file too big: offset does not fit in 32 bits")
	ErrTruncated = errors.New("unexpected end of message data")

	// ErrNullCharacter is returned by Write for text that encodes to a zero
	// code unit, which is reserved as the string terminator.
	ErrNullCharacter = errors.New("text contains a null character")
)

// DecodeTextError is returned by Load when the code table rejects a string.
type DecodeTextError struct {
	Raw string // String as plain UTF-16, before code table conversion
	Err error
}

func (e *DecodeTextError) Error() string {
	return fmt.Sprintf("can't decode the string %q: %v", e.Raw, e.Err)
}

func (e *DecodeTextError) Unwrap() error {
	return e.Err
}

// EncodeTextError is returned by Write when the code table rejects a text.
type EncodeTextError struct {
	Hash uint32
	Text string
	Err  error
}

func (e *EncodeTextError) Error() string {
	return fmt.Sprintf("can't encode the text of message 0x%08X %q: %v", e.Hash, e.Text, e.Err)
}

func (e *EncodeTextError) Unwrap() error {
	return e.Err
}

func addU32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func mulU32(a, b uint32) (uint32, error) {
	if a != 0 && b > math.MaxUint32/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

func toU32(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, ErrOverflow
	}
	return uint32(v), nil
}

package keyword

import (
	"errors"
	"fmt"
)

// Encode error kinds. Match them with errors.Is.
var (
	ErrNoCharAfterEscape = errors.New("text ends with an escape character ('\\'); write \\\\ for a literal \\")
	ErrUselessEscape     = errors.New("only '\\' and '[' may be escaped; write \\\\ for a literal \\")
	ErrNoCharInBracket   = errors.New("text ends inside a bracket; close it with ']' or write \\[ for a literal [")
	ErrUnknownEscape     = errors.New("unknown keyword; write \\[ for a literal [")
)

// EncodeError is returned by Keywords.Encode.
type EncodeError struct {
	Kind error  // One of the Err* kinds above
	Char rune   // Escaped character, for ErrUselessEscape
	Name string // Bracketed name, for ErrUnknownEscape
}

func (e *EncodeError) Error() string {
	switch e.Kind {
	case ErrUselessEscape:
		return fmt.Sprintf("escaped character %q: %v", e.Char, e.Kind)
	case ErrUnknownEscape:
		return fmt.Sprintf("keyword %q: %v", e.Name, e.Kind)
	default:
		return e.Kind.Error()
	}
}

func (e *EncodeError) Unwrap() error {
	return e.Kind
}

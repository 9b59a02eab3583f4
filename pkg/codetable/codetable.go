// Package codetable translates between raw 16-bit engine character codes and
// text.
//
// The message codec only depends on the Decoder and Encoder interfaces; Table
// is the implementation backed by a YAML code table file.
package codetable

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Decoder turns a raw code unit sequence read from a message file into text.
type Decoder interface {
	Decode(raw []uint16) (string, error)
}

// Encoder turns text into the raw code unit sequence to store in a message
// file.
type Encoder interface {
	Encode(text string) ([]uint16, error)
}

// Errors
var (
	ErrDuplicateCode     = errors.New("duplicate code in code table")
	ErrEmptyText         = errors.New("empty text in code table")
	ErrUnpairedSurrogate = errors.New("unpaired surrogate code unit")
	ErrUnencodable       = errors.New("text is not valid UTF-8")
)

// ConvertError reports the code unit or text that failed to convert.
type ConvertError struct {
	Kind error
	Code uint16 // Offending code unit, for decoding
	Text string // Offending character, for encoding
}

func (e *ConvertError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("%v: 0x%04X", e.Kind, e.Code)
}

func (e *ConvertError) Unwrap() error {
	return e.Kind
}

// Entry binds one raw code to the text it stands for
type Entry struct {
	Code uint16 `yaml:"code"`
	Text string `yaml:"text"`
}

// Table is an immutable code table. It implements both Decoder and Encoder.
type Table struct {
	entries    []Entry
	textByCode map[uint16]string
	codeByText map[string]uint16
	maxTextLen int // Longest entry text in bytes
}

// New builds a table from entries. When two entries share a text, encoding
// that text yields the later code.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries:    make([]Entry, 0, len(entries)),
		textByCode: make(map[uint16]string, len(entries)),
		codeByText: make(map[string]uint16, len(entries)),
	}

	for _, e := range entries {
		if e.Text == "" {
			return nil, fmt.Errorf("%w: code 0x%04X", ErrEmptyText, e.Code)
		}
		if _, exists := t.textByCode[e.Code]; exists {
			return nil, fmt.Errorf("%w: 0x%04X", ErrDuplicateCode, e.Code)
		}
		t.entries = append(t.entries, e)
		t.textByCode[e.Code] = e.Text
		t.codeByText[e.Text] = e.Code
		if len(e.Text) > t.maxTextLen {
			t.maxTextLen = len(e.Text)
		}
	}

	return t, nil
}

// Entries returns a copy of the table entries in definition order
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Decode replaces mapped codes with their text. Other code units are read as
// UTF-16; an unpaired surrogate fails.
func (t *Table) Decode(raw []uint16) (string, error) {
	buf := make([]byte, 0, len(raw)*2)

	for i := 0; i < len(raw); i++ {
		code := raw[i]
		if text, ok := t.textByCode[code]; ok {
			buf = append(buf, text...)
			continue
		}

		r := rune(code)
		if utf16.IsSurrogate(r) {
			if i+1 >= len(raw) {
				return "", &ConvertError{Kind: ErrUnpairedSurrogate, Code: code}
			}
			r = utf16.DecodeRune(r, rune(raw[i+1]))
			if r == utf8.RuneError {
				return "", &ConvertError{Kind: ErrUnpairedSurrogate, Code: code}
			}
			i++
		}
		buf = utf8.AppendRune(buf, r)
	}

	return string(buf), nil
}

// Encode replaces the longest entry text found at each position with its
// code. Other characters are stored as UTF-16, so characters outside the
// Basic Multilingual Plane take a surrogate pair. Invalid UTF-8 fails.
func (t *Table) Encode(text string) ([]uint16, error) {
	out := make([]uint16, 0, len(text))

	for i := 0; i < len(text); {
		if code, n, ok := t.match(text[i:]); ok {
			out = append(out, code)
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, &ConvertError{Kind: ErrUnencodable, Text: text[i : i+size]}
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			out = append(out, uint16(hi), uint16(lo))
		} else {
			out = append(out, uint16(r))
		}
		i += size
	}

	return out, nil
}

// match finds the longest entry text prefixing s.
func (t *Table) match(s string) (uint16, int, bool) {
	n := t.maxTextLen
	if len(s) < n {
		n = len(s)
	}
	for ; n > 0; n-- {
		if code, ok := t.codeByText[s[:n]]; ok {
			return code, n, true
		}
	}
	return 0, 0, false
}

// Package keyword converts special control characters of message text into
// bracketed names such as [RED] and back.
//
// Decoded text uses a small escape grammar: "\[" stands for a literal '[',
// "\\" for a literal '\', and "[NAME]" for the control character registered
// under NAME.
package keyword

import (
	"sort"
	"strings"
)

// defaultKeywords is registered in order, so a name bound twice resolves to
// its last code point.
var defaultKeywords = []struct {
	code rune
	name string
}{
	{'\uC101', "ORANGE"},
	{'\uC102', "PINK"},
	{'\uC103', "RED"},
	{'\uC104', "GREEN"},
	{'\uC105', "LIGHTBLUE"},
	{'\uC106', "YELLOW"},
	{'\uC107', "WHITE"},
	{'\uC108', "GRAY"},
	{'\uC109', "PINK"},
	{'\uC10A', "RED"},
	{'\uC10B', "BLACK"},
	{'\uC10C', "DARKGRAY"},
	{'\uC10D', "DARKGREEN"},
	{'\uC10E', "BLUE"},
	{'\uC10F', "COLOREND"},
	{'\uC200', "CENTER"},
	{'\uD100', "PLAYERNAME"},
	{'\uD200', "PARTNERNAME"},
	{'\uD301', "PLAYERPOKEMON"},
	{'\uD302', "PARTNERPOKEMON"},
	{'\uA072', "POKE"},
	{'\uA09B', "BUTTONA"},
	{'\uA09C', "BUTTONB"},
	{'\uA09D', "BUTTONX"},
	{'\uA09E', "BUTTONY"},
	{'\uA09F', "BUTTONL"},
	{'\uA0A0', "BUTTONR"},
	{'\uB200', "SPEAKERNORMAL"},
	{'\uB201', "SPEAKERHAPPY"},
	{'\uB202', "SPEAKERPAINED"},
	{'\uEB00', "PAUSE"},
}

// Keywords is a bidirectional table between control characters and names.
// It must not be modified while Decode or Encode run.
type Keywords struct {
	codeByName map[string]rune
	nameByCode map[rune]string
}

// New creates an empty keyword table
func New() *Keywords {
	return &Keywords{
		codeByName: make(map[string]rune),
		nameByCode: make(map[rune]string),
	}
}

// NewDefault creates a keyword table holding the built-in keywords
func NewDefault() *Keywords {
	k := New()
	for _, kw := range defaultKeywords {
		k.Add(kw.code, kw.name)
	}
	return k
}

// Add registers name for code. Decoding code yields name, and encoding name
// yields code unless a later Add binds name to another code point.
func (k *Keywords) Add(code rune, name string) {
	k.nameByCode[code] = name
	k.codeByName[name] = code
}

// Name returns the name bound to code
func (k *Keywords) Name(code rune) (string, bool) {
	name, ok := k.nameByCode[code]
	return name, ok
}

// Code returns the code point that name encodes to
func (k *Keywords) Code(name string) (rune, bool) {
	code, ok := k.codeByName[name]
	return code, ok
}

// Names returns all registered names, sorted.
func (k *Keywords) Names() []string {
	names := make([]string, 0, len(k.codeByName))
	for name := range k.codeByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered code points
func (k *Keywords) Len() int {
	return len(k.nameByCode)
}

// Decode replaces every registered control character with its bracketed
// name and escapes literal '[' and '\'. It never fails.
func (k *Keywords) Decode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 30)

	for _, r := range raw {
		if name, ok := k.nameByCode[r]; ok {
			b.WriteByte('[')
			b.WriteString(name)
			b.WriteByte(']')
			continue
		}
		switch r {
		case '[':
			b.WriteString(`\[`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Encode reverses Decode. It returns an *EncodeError on malformed escapes or
// unknown names.
func (k *Keywords) Encode(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\':
			i++
			if i >= len(runes) {
				return "", &EncodeError{Kind: ErrNoCharAfterEscape}
			}
			escaped := runes[i]
			if escaped != '\\' && escaped != '[' {
				return "", &EncodeError{Kind: ErrUselessEscape, Char: escaped}
			}
			b.WriteRune(escaped)
		case '[':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				return "", &EncodeError{Kind: ErrNoCharInBracket}
			}
			name := string(runes[i+1 : end])
			code, ok := k.codeByName[name]
			if !ok {
				return "", &EncodeError{Kind: ErrUnknownEscape, Name: name}
			}
			b.WriteRune(code)
			i = end
		default:
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

package model

import (
	"strconv"
	"strings"
)

// A Segment is one contiguous piece of a template line, either fixed text
// (*Static) or an editable field (*Input).
type Segment interface {
	// Text returns the current logical text of the segment.
	Text() string

	segment()
}

// Static is immutable text between placeholders.
type Static struct {
	value string
}

// NewStatic returns a new static segment holding the given text.
func NewStatic(value string) *Static { return &Static{value: value} }

// Text returns the static text.
func (s *Static) Text() string { return s.value }

func (s *Static) segment() {}

// Input is an editable field created from a '{placeholder}'.
//
// The cursor is a rune offset into the value, 0 <= cursor <= len(value).
// An input is "touched" once the first printable rune or paste has been
// applied to it; until then the first such edit may discard the placeholder
// text.
type Input struct {
	original string
	value    []rune
	cursor   int
	touched  bool
}

// NewInput returns a new, untouched input whose value is the placeholder
// label, with the cursor at the beginning.
func NewInput(label string) *Input {
	return &Input{
		original: label,
		value:    []rune(label),
	}
}

// Text returns the current value of the input.
func (in *Input) Text() string { return string(in.value) }

func (in *Input) segment() {}

// Original returns the placeholder label the input was created from.
func (in *Input) Original() string { return in.original }

// Cursor returns the cursor position as a rune offset into the value.
func (in *Input) Cursor() int { return in.cursor }

// Touched reports whether the first-touch edit has been consumed.
func (in *Input) Touched() bool { return in.touched }

// Display returns the text that should be drawn for the input: the value, or
// the placeholder label if the value is empty or only whitespace.
func (in *Input) Display() string {
	if strings.TrimSpace(string(in.value)) == "" {
		return in.original
	}
	return string(in.value)
}

// BeforeCursor returns the part of the value left of the cursor.
func (in *Input) BeforeCursor() string { return string(in.value[:in.cursor]) }

// MoveCursorLeft moves the cursor one rune to the left, stopping at 0.
func (in *Input) MoveCursorLeft() {
	if in.cursor > 0 {
		in.cursor--
	}
}

// MoveCursorRight moves the cursor one rune to the right, stopping at the end
// of the value.
func (in *Input) MoveCursorRight() {
	if in.cursor < len(in.value) {
		in.cursor++
	}
}

// BackspaceRune deletes the rune before the cursor position.
func (in *Input) BackspaceRune() {
	if in.cursor > 0 {
		preCursor := in.value[:in.cursor-1]
		postCursor := in.value[in.cursor:]

		in.value = append(append([]rune{}, preCursor...), postCursor...)
		in.cursor--
	}
}

// AddRune inserts a printable rune at the cursor position and advances the
// cursor. Non-printable runes are ignored.
//
// On first touch the placeholder text is dropped, but only if the cursor has
// not left position 0.
func (in *Input) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}

	if !in.touched {
		in.touched = true
		if in.cursor == 0 {
			in.value = nil
		}
	}

	tmp := make([]rune, 0, len(in.value)+1)
	tmp = append(tmp, in.value[:in.cursor]...)
	tmp = append(tmp, newRune)
	tmp = append(tmp, in.value[in.cursor:]...)
	in.value = tmp
	in.cursor++
}

// Paste inserts text at the cursor position and moves the cursor to the end
// of the value. On first touch the value is replaced entirely, regardless of
// the cursor position.
//
// Line breaks and tabs are pasted as a single space each, any other
// non-printable runes are dropped.
func (in *Input) Paste(text string) {
	if !in.touched {
		in.touched = true
		in.value = nil
		in.cursor = 0
	}

	pasted := printableLine(text)
	tmp := make([]rune, 0, len(in.value)+len(pasted))
	tmp = append(tmp, in.value[:in.cursor]...)
	tmp = append(tmp, pasted...)
	tmp = append(tmp, in.value[in.cursor:]...)
	in.value = tmp
	in.cursor = len(in.value)
}

func printableLine(text string) []rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	result := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result = append(result, ' ')
		case strconv.IsPrint(r):
			result = append(result, r)
		}
	}
	return result
}

// Flatten concatenates the logical text of all segments.
func Flatten(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text())
	}
	return b.String()
}

// Inputs returns the positions of all input segments within segments, in
// order.
func Inputs(segments []Segment) []int {
	var result []int
	for i, s := range segments {
		if _, ok := s.(*Input); ok {
			result = append(result, i)
		}
	}
	return result
}

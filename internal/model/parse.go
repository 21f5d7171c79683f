package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTemplate is matched (via errors.Is) by every
// *MalformedTemplateError.
var ErrMalformedTemplate = errors.New("malformed template")

// EOF is the Found value of a MalformedTemplateError caused by the template
// ending inside a placeholder.
const EOF rune = -1

// MalformedTemplateError describes an unexpected or missing placeholder
// delimiter.
type MalformedTemplateError struct {
	// Offset is the byte offset in the template at which the problem was found.
	Offset int
	// Found is the offending character, or EOF.
	Found rune
	// Expected is the delimiter that was being looked for.
	Expected rune
}

func (e *MalformedTemplateError) Error() string {
	if e.Found == EOF {
		return fmt.Sprintf("unexpected EOF looking for '%c'", e.Expected)
	}
	return fmt.Sprintf("unexpected '%c' at offset %d looking for '%c'", e.Found, e.Offset, e.Expected)
}

// Is allows errors.Is(err, ErrMalformedTemplate).
func (e *MalformedTemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

// Parse splits a template into static text and input fields.
// Placeholders are delimited by '{' and '}' and may not nest; the label
// between the delimiters becomes the input's initial value.
//
// The result always ends with a (possibly empty) static segment.
// On error no segments are returned.
func Parse(text string) ([]Segment, error) {
	var segments []Segment
	var buffer strings.Builder
	inPlaceholder := false

	for pos, c := range text {
		switch c {

		case '{':
			if inPlaceholder {
				return nil, &MalformedTemplateError{Offset: pos, Found: c, Expected: '}'}
			}
			if buffer.Len() > 0 {
				segments = append(segments, NewStatic(buffer.String()))
				buffer.Reset()
			}
			inPlaceholder = true

		case '}':
			if !inPlaceholder {
				return nil, &MalformedTemplateError{Offset: pos, Found: c, Expected: '{'}
			}
			segments = append(segments, NewInput(buffer.String()))
			buffer.Reset()
			inPlaceholder = false

		default:
			buffer.WriteRune(c)

		}
	}

	if inPlaceholder {
		return nil, &MalformedTemplateError{Offset: len(text), Found: EOF, Expected: '}'}
	}

	segments = append(segments, NewStatic(buffer.String()))
	return segments, nil
}

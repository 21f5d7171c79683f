package edit

import (
	"fmt"

	"github.com/ja-he/snippet/internal/input"
	"github.com/ja-he/snippet/internal/ui"
)

// Terminal is what the editor draws to and reads keys from.
// It is expected to already be prepared for raw input.
type Terminal interface {
	// Write draws the line at the current caret position.
	Write(line ui.Line) error
	// MoveCursor moves the caret to the given (0-based) column and row.
	MoveCursor(col, row int) error
	// ReadKey blocks until the next key press.
	ReadKey() (input.Key, error)
	// CursorRow returns the (0-based) row the caret is currently on.
	CursorRow() (int, error)
}

// PasteSource provides the text for the paste action, usually the system
// clipboard.
type PasteSource interface {
	Read() (string, error)
}

// Outcome is how an editing session ended.
type Outcome int

const (
	_ Outcome = iota
	// Confirmed sessions produce the filled-in text.
	Confirmed
	// Cancelled sessions produce no text.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the result of an editing session.
type Result struct {
	Outcome Outcome
	// Text is the flattened text of all segments; empty unless confirmed.
	Text string
}

// CollaboratorError wraps a failure of the terminal, the clipboard, or
// another external collaborator.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("could not %s: %s", e.Op, e.Err.Error())
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

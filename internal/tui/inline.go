package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ja-he/snippet/internal/input"
	"github.com/ja-he/snippet/internal/ui"
)

// Inline is a terminal that edits on the current line of the terminal,
// leaving the surrounding scrollback alone.
// It speaks ANSI escape sequences and expects the input to be in raw mode
// (see MakeRaw).
type Inline struct {
	in      io.Reader
	out     io.Writer
	decoder *input.ANSIDecoder
}

// NewInline returns an inline terminal reading keys from in and writing to
// out.
func NewInline(in io.Reader, out io.Writer) *Inline {
	return &Inline{
		in:      in,
		out:     out,
		decoder: input.NewANSIDecoder(in),
	}
}

// MakeRaw puts the terminal behind f into raw mode.
// The returned function restores the previous mode and moves output to a
// fresh line.
func MakeRaw(f *os.File, out io.Writer) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("'%s' is not a terminal", f.Name())
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("could not enter raw mode (%w)", err)
	}
	return func() error {
		fmt.Fprint(out, "\r\n")
		return term.Restore(fd, oldState)
	}, nil
}

// Write writes the line at the current cursor position.
func (t *Inline) Write(line ui.Line) error {
	_, err := io.WriteString(t.out, line.ANSI())
	return err
}

// MoveCursor moves the cursor to the zero-based column and row.
func (t *Inline) MoveCursor(col, row int) error {
	_, err := fmt.Fprintf(t.out, "\x1b[%d;%dH", row+1, col+1)
	return err
}

// ReadKey blocks until a key is pressed.
func (t *Inline) ReadKey() (input.Key, error) {
	return t.decoder.ReadKey()
}

// CursorRow asks the terminal for the zero-based row the cursor is on.
// It has to be called before any keys are read.
func (t *Inline) CursorRow() (int, error) {
	if _, err := io.WriteString(t.out, "\x1b[6n"); err != nil {
		return 0, err
	}

	var reply []byte
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(t.in, b); err != nil {
			return 0, fmt.Errorf("could not read cursor position report (%w)", err)
		}
		reply = append(reply, b[0])
		if b[0] == 'R' {
			break
		}
	}

	// anything typed before the report is dropped
	start := bytes.LastIndex(reply, []byte("\x1b["))
	if start < 0 {
		return 0, fmt.Errorf("malformed cursor position report %q", reply)
	}
	var row, col int
	if _, err := fmt.Sscanf(string(reply[start:]), "\x1b[%d;%dR", &row, &col); err != nil {
		return 0, fmt.Errorf("malformed cursor position report %q (%w)", reply[start:], err)
	}
	return row - 1, nil
}

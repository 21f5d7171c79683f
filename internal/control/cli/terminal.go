package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ja-he/snippet/internal/control/edit"
	"github.com/ja-he/snippet/internal/styling"
	"github.com/ja-he/snippet/internal/tui"
)

// A SessionTerminal is a terminal the editor runs on, which is only taken
// over for the duration of the session.
type SessionTerminal interface {
	edit.Terminal

	// Begin shows the help line and takes over the terminal.
	Begin(help string) error
	// End gives the terminal back.
	End() error
}

// inlineTerminal edits on the current line of the process' terminal.
type inlineTerminal struct {
	*tui.Inline

	in      *os.File
	out     io.Writer
	restore func() error
}

func newInlineTerminal(in *os.File, out io.Writer) *inlineTerminal {
	return &inlineTerminal{
		Inline: tui.NewInline(in, out),
		in:     in,
		out:    out,
	}
}

func (t *inlineTerminal) Begin(help string) error {
	fmt.Fprintln(t.out, help)
	restore, err := tui.MakeRaw(t.in, t.out)
	if err != nil {
		return err
	}
	t.restore = restore
	return nil
}

func (t *inlineTerminal) End() error {
	if t.restore == nil {
		return nil
	}
	restore := t.restore
	t.restore = nil
	return restore()
}

// screenTerminal edits on a full-screen terminal, which is only initialized
// once the session begins.
type screenTerminal struct {
	*tui.ScreenHandler

	headerStyle styling.DrawStyling
}

func (t *screenTerminal) Begin(help string) error {
	screen, err := tui.NewTUIScreenHandler(t.headerStyle, "snippet", help)
	if err != nil {
		return err
	}
	t.ScreenHandler = screen
	return nil
}

func (t *screenTerminal) End() error {
	if t.ScreenHandler == nil {
		return nil
	}
	t.ScreenHandler.Fini()
	t.ScreenHandler = nil
	return nil
}

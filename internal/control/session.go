package control

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/clipboard"
	"github.com/ja-he/snippet/internal/control/edit"
	"github.com/ja-he/snippet/internal/model"
)

// Session fills in a single template and copies the result to the
// clipboard.
type Session struct {
	editor    *edit.Editor
	clipboard clipboard.Clipboard
}

// NewSession parses the template and prepares an editor for it.
// A malformed template fails here, before anything is drawn.
func NewSession(template string, term edit.Terminal, clip clipboard.Clipboard, opts ...edit.Option) (*Session, error) {
	segments, err := model.Parse(template)
	if err != nil {
		return nil, err
	}

	editor, err := edit.New(segments, term, clip, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{editor: editor, clipboard: clip}, nil
}

// HelpLine describes the keys available during the session.
func (s *Session) HelpLine() string {
	return s.editor.HelpLine()
}

// Run runs the editor and, only if the user confirmed, writes the text to the
// clipboard exactly once.
func (s *Session) Run() (edit.Result, error) {
	result, err := s.editor.Run()
	if err != nil {
		return edit.Result{}, err
	}
	if result.Outcome != edit.Confirmed {
		return result, nil
	}

	if err := s.clipboard.Write(result.Text); err != nil {
		return edit.Result{}, &edit.CollaboratorError{Op: "write clipboard", Err: err}
	}
	log.Debug().Int("length", len(result.Text)).Msg("wrote snippet to clipboard")

	return result, nil
}

// Fill is NewSession followed by Run.
func Fill(template string, term edit.Terminal, clip clipboard.Clipboard, opts ...edit.Option) (edit.Result, error) {
	session, err := NewSession(template, term, clip, opts...)
	if err != nil {
		return edit.Result{}, err
	}
	return session.Run()
}

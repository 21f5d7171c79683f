package edit

import (
	"github.com/ja-he/snippet/internal/model"
	"github.com/ja-he/snippet/internal/ui"
)

// Line returns the segments as they should be drawn and the column the caret
// should be placed at.
//
// Inputs display their placeholder when blank, so the caret column is
// computed from the displayed text of every segment before the focused one.
func (e *Editor) Line() (ui.Line, int) {
	line := ui.Line{}
	col := 0
	if e.prompt != "" {
		line = append(line, ui.Span{Text: e.prompt, Style: e.styles.Static})
		col = ui.TextWidth(e.prompt)
	}
	caret := col

	focused := -1
	if e.focus >= 0 {
		focused = e.inputs[e.focus]
	}

	for i, segment := range e.segments {
		switch s := segment.(type) {
		case *model.Static:
			if s.Text() == "" {
				continue
			}
			line = append(line, ui.Span{Text: s.Text(), Style: e.styles.Static})
			col += ui.TextWidth(s.Text())
		case *model.Input:
			style := e.styles.Field
			if i == focused {
				style = e.styles.FocusedField
				offset := ui.TextWidth(s.BeforeCursor())
				if s.Display() != s.Text() {
					// blank values draw the placeholder, keep the caret within it
					offset = min(offset, ui.TextWidth(s.Display()))
				}
				caret = col + offset
			}
			line = append(line, ui.Span{Text: s.Display(), Style: style})
			col += ui.TextWidth(s.Display())
		}
	}

	return line, caret
}

// render redraws the line on the session's row, padding it to cover anything
// left over from a previous, wider render, and places the caret.
func (e *Editor) render() error {
	line, caret := e.Line()
	line = line.PaddedTo(e.lastWidth)

	if err := e.term.MoveCursor(0, e.row); err != nil {
		return &CollaboratorError{Op: "move cursor", Err: err}
	}
	if err := e.term.Write(line); err != nil {
		return &CollaboratorError{Op: "write line", Err: err}
	}
	if err := e.term.MoveCursor(caret, e.row); err != nil {
		return &CollaboratorError{Op: "move cursor", Err: err}
	}

	e.lastWidth = line.Width()
	return nil
}

package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/snippet/internal/styling"
)

// A Span is a run of text drawn in one styling.
type Span struct {
	Text  string
	Style styling.DrawStyling
}

// A Line is a sequence of spans drawn one after the other on a single
// terminal row.
type Line []Span

// Width returns the number of terminal columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// Plain returns the line's text without any styling.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PaddedTo returns the line, extended by an unstyled span of spaces if it is
// narrower than width.
func (l Line) PaddedTo(width int) Line {
	w := l.Width()
	if w >= width {
		return l
	}
	padded := make(Line, len(l), len(l)+1)
	copy(padded, l)
	return append(padded, Span{Text: strings.Repeat(" ", width-w)})
}

// ANSI returns the line's text with the spans' stylings encoded as SGR escape
// sequences.
func (l Line) ANSI() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Style.ANSIPrefix())
		b.WriteString(s.Text)
		b.WriteString(s.Style.ANSISuffix())
	}
	return b.String()
}

// TextWidth returns the number of terminal columns the given text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

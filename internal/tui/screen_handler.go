package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/snippet/internal/input"
	"github.com/ja-he/snippet/internal/styling"
	"github.com/ja-he/snippet/internal/ui"
)

// ErrScreenFinalized is returned when reading keys from a screen that has
// been finalized.
var ErrScreenFinalized = errors.New("screen finalized")

// ScreenHandler is a full-screen terminal (via tcell.Screen).
// It draws a header of fixed lines at the top and leaves the row below it to
// the editor.
// It also handles synchronization on resize.
type ScreenHandler struct {
	screen tcell.Screen

	header      []string
	headerStyle styling.DrawStyling

	// where the next Write starts
	x, y int
}

// NewTUIScreenHandler initializes and returns a ScreenHandler on the process'
// terminal.
func NewTUIScreenHandler(headerStyle styling.DrawStyling, header ...string) (*ScreenHandler, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	return NewScreenHandler(screen, headerStyle, header...)
}

// NewScreenHandler initializes the given screen and returns a ScreenHandler
// for it.
func NewScreenHandler(screen tcell.Screen, headerStyle styling.DrawStyling, header ...string) (*ScreenHandler, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	screen.SetStyle(defStyle)
	screen.Clear()

	s := &ScreenHandler{
		screen:      screen,
		header:      header,
		headerStyle: headerStyle,
	}
	s.drawHeader()
	screen.Show()

	return s, nil
}

// Fini finalizes the screen, e.g., for clean program shutdown.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// CursorRow returns the first row below the header.
func (s *ScreenHandler) CursorRow() (int, error) {
	return len(s.header) + 1, nil
}

// MoveCursor sets the position of the text cursor and where the next Write
// starts.
func (s *ScreenHandler) MoveCursor(col, row int) error {
	s.x, s.y = col, row
	s.screen.ShowCursor(col, row)
	s.screen.Show()
	return nil
}

// Write draws the line starting at the cursor position.
func (s *ScreenHandler) Write(line ui.Line) error {
	for _, span := range line {
		style := span.Style.AsTcell()
		for _, r := range span.Text {
			s.screen.SetContent(s.x, s.y, r, nil, style)
			s.x += runewidth.RuneWidth(r)
		}
	}
	s.screen.Show()
	return nil
}

// ReadKey blocks until a key is pressed.
// Resizes are handled while waiting.
func (s *ScreenHandler) ReadKey() (input.Key, error) {
	for {
		switch e := s.screen.PollEvent().(type) {
		case nil:
			return input.Key{}, ErrScreenFinalized
		case *tcell.EventKey:
			return input.KeyFromTcellEvent(e), nil
		case *tcell.EventResize:
			s.drawHeader()
			s.screen.Sync()
		}
	}
}

func (s *ScreenHandler) drawHeader() {
	style := s.headerStyle.AsTcell()
	for row, text := range s.header {
		col := 0
		for _, r := range text {
			s.screen.SetContent(col, row, r, nil, style)
			col += runewidth.RuneWidth(r)
		}
	}
}

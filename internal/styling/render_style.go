package styling

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const csi = "\x1b["

// DrawStyling is style information used for rendering text.
// It holds optional foreground and background colors (nil meaning the
// terminal's default) and the font attributes, and can be converted to the
// styling a renderer needs, e.g. a tcell.Style via AsTcell or ANSI SGR
// sequences via ANSIPrefix and ANSISuffix.
type DrawStyling struct {
	fg *colorful.Color
	bg *colorful.Color

	bold, italic, underlined, reversed bool
}

// StyleFromColors constructs a style by the given colors.
func StyleFromColors(fg, bg colorful.Color) DrawStyling {
	return DrawStyling{fg: &fg, bg: &bg}
}

// AsTcell returns this styling as a tcell.Style.
func (s DrawStyling) AsTcell() tcell.Style {
	style := tcell.StyleDefault
	if s.fg != nil {
		style = style.Foreground(colorfulColorToTcellColor(*s.fg))
	}
	if s.bg != nil {
		style = style.Background(colorfulColorToTcellColor(*s.bg))
	}

	return style.Bold(s.bold).Italic(s.italic).Underline(s.underlined).Reverse(s.reversed)
}

// ANSIPrefix returns the SGR sequences that switch a terminal to this
// styling.
func (s DrawStyling) ANSIPrefix() string {
	var b strings.Builder
	if s.reversed {
		b.WriteString(csi + "7m")
	}
	if s.underlined {
		b.WriteString(csi + "4m")
	}
	if s.bold {
		b.WriteString(csi + "1m")
	}
	if s.italic {
		b.WriteString(csi + "3m")
	}
	if s.fg != nil {
		r, g, bl := s.fg.RGB255()
		fmt.Fprintf(&b, csi+"38;2;%d;%d;%dm", r, g, bl)
	}
	if s.bg != nil {
		r, g, bl := s.bg.RGB255()
		fmt.Fprintf(&b, csi+"48;2;%d;%d;%dm", r, g, bl)
	}
	return b.String()
}

// ANSISuffix returns the SGR sequences that undo ANSIPrefix, attribute by
// attribute in reverse order.
func (s DrawStyling) ANSISuffix() string {
	var b strings.Builder
	if s.bg != nil {
		b.WriteString(csi + "49m")
	}
	if s.fg != nil {
		b.WriteString(csi + "39m")
	}
	if s.italic {
		b.WriteString(csi + "23m")
	}
	if s.bold {
		b.WriteString(csi + "22m")
	}
	if s.underlined {
		b.WriteString(csi + "24m")
	}
	if s.reversed {
		b.WriteString(csi + "27m")
	}
	return b.String()
}

// Underlined returns a copy of this styling which is guaranteed to be
// underlined.
func (s DrawStyling) Underlined() DrawStyling {
	s.underlined = true
	return s
}

// Reversed returns a copy of this styling which is guaranteed to have fore-
// and background swapped.
func (s DrawStyling) Reversed() DrawStyling {
	s.reversed = true
	return s
}

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s DrawStyling) Bolded() DrawStyling {
	s.bold = true
	return s
}

// Italicized returns a copy of this styling which is guaranteed to be
// italicized.
func (s DrawStyling) Italicized() DrawStyling {
	s.italic = true
	return s
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s DrawStyling) ToString() string {
	hex := func(c *colorful.Color) string {
		if c == nil {
			return "default"
		}
		return c.Hex()
	}
	return fmt.Sprintf(
		"[fg:'%s' bg:'%s' (b:%t i:%t u:%t r:%t)]",
		hex(s.fg),
		hex(s.bg),
		s.bold,
		s.italic,
		s.underlined,
		s.reversed,
	)
}

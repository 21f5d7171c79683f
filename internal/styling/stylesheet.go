package styling

import (
	"fmt"

	"github.com/ja-he/snippet/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Header       DrawStyling
	Static       DrawStyling
	Field        DrawStyling
	FocusedField DrawStyling
}

// DefaultStylesheet returns the stylesheet for the default configuration:
// fields underlined, the focused field additionally reversed.
func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		Header:       DrawStyling{}.Bolded(),
		Static:       DrawStyling{},
		Field:        DrawStyling{}.Underlined(),
		FocusedField: DrawStyling{}.Underlined().Reversed(),
	}
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"header", &stylesheet.Header, cfg.Header},
		{"static", &stylesheet.Static, cfg.Static},
		{"field", &stylesheet.Field, cfg.Field},
		{"focused-field", &stylesheet.FocusedField, cfg.FocusedField},
	} {
		style, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s': %w", entry.name, err)
		}
		*entry.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a styling from its config definition.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	result := DrawStyling{}

	if cfg.Fg != "" {
		fg, err := colorfulColorFromHexString(cfg.Fg)
		if err != nil {
			return DrawStyling{}, err
		}
		result.fg = &fg
	}
	if cfg.Bg != "" {
		bg, err := colorfulColorFromHexString(cfg.Bg)
		if err != nil {
			return DrawStyling{}, err
		}
		result.bg = &bg
	}

	if cfg.Style != nil {
		result.bold = cfg.Style.Bold
		result.italic = cfg.Style.Italic
		result.underlined = cfg.Style.Underlined
		result.reversed = cfg.Style.Reverse
	}

	return result, nil
}

package config

import "github.com/ja-he/snippet/internal/input"

// DefaultPrompt is shown in front of the edited snippet unless configured
// otherwise.
const DefaultPrompt = " > "

// Default returns the default configuration.
func Default() Config {
	prompt := DefaultPrompt
	trim := true
	return Config{
		Prompt:     &prompt,
		Trim:       &trim,
		Stylesheet: defaultStylesheet(),
		Keys:       DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings of the field editor.
func DefaultKeys() input.Bindings {
	return input.Bindings{
		"<esc>":   "cancel",
		"<cr>":    "confirm",
		"<tab>":   "next-field",
		"<s-tab>": "prev-field",
		"<bs>":    "backspace",
		"<c-bs>":  "backspace",
		"<left>":  "move-cursor-rune-left",
		"<right>": "move-cursor-rune-right",
		"<c-v>":   "paste",
	}
}

func defaultStylesheet() Stylesheet {
	return Stylesheet{
		Header:       Styling{Style: &FontStyle{Bold: true}},
		Static:       Styling{Style: &FontStyle{}},
		Field:        Styling{Style: &FontStyle{Underlined: true}},
		FocusedField: Styling{Style: &FontStyle{Underlined: true, Reverse: true}},
	}
}

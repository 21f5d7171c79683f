package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/snippet/internal/input"
)

// Config is the configuration data as present in a config file at
// '${SNIPPET_HOME}/config.yaml'.
type Config struct {
	// Catalog is the path of the snippet catalog file. If empty, the catalog
	// is looked up in the snippet home directory.
	Catalog string `yaml:"catalog"`
	// Prompt is shown in front of the edited snippet.
	Prompt *string `yaml:"prompt"`
	// Trim controls whether leading and trailing whitespace is removed from
	// snippet text before editing.
	Trim       *bool          `yaml:"trim"`
	Stylesheet Stylesheet     `yaml:"stylesheet"`
	Keys       input.Bindings `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Header       Styling `yaml:"header"`
	Static       Styling `yaml:"static"`
	Field        Styling `yaml:"field"`
	FocusedField Styling `yaml:"focused-field"`
}

// A Styling is a styling as defined in a config file.
// Colors are optional (the terminal's defaults are used when empty) and have
// to be in hexadecimal notation, e.g. '#ff0000'.
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, underlined and reversed.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
	Reverse    bool `yaml:"reverse,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

// PromptOrEmpty returns the configured prompt, or "" if none is set.
func (c Config) PromptOrEmpty() string {
	if c.Prompt == nil {
		return ""
	}
	return *c.Prompt
}

// TrimEnabled reports whether snippet text should be trimmed.
func (c Config) TrimEnabled() bool {
	return c.Trim == nil || *c.Trim
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Catalog != "" {
		result.Catalog = augment.Catalog
	}
	if augment.Prompt != nil {
		result.Prompt = augment.Prompt
	}
	if augment.Trim != nil {
		result.Trim = augment.Trim
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	// an empty action unbinds a default key
	result.Keys = input.Bindings{}
	for k, a := range base.Keys {
		result.Keys[k] = a
	}
	for k, a := range augment.Keys {
		if a == "" {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Header.overwriteIfDefined(augment.Header)
	result.Static.overwriteIfDefined(augment.Static)
	result.Field.overwriteIfDefined(augment.Field)
	result.FocusedField.overwriteIfDefined(augment.FocusedField)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" {
		s.Fg = augment.Fg
	}
	if augment.Bg != "" {
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// Package edit implements the interactive field editor that fills in the
// placeholders of a parsed snippet template on a single terminal row.
package edit

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/config"
	"github.com/ja-he/snippet/internal/control/action"
	"github.com/ja-he/snippet/internal/input"
	"github.com/ja-he/snippet/internal/model"
	"github.com/ja-he/snippet/internal/styling"
)

var (
	// ErrSessionOver is returned by Run if the editor's session already ended.
	ErrSessionOver = errors.New("editing session is already over")
	// ErrUnboundExit is returned by New if the bindings leave no key to
	// confirm or to cancel with.
	ErrUnboundExit = errors.New("no key bound to end the session with")
)

// Editor is a multi-field line editor over a template's segments.
//
// It owns the segments for the duration of its session, which is driven by
// Run and ends exactly once, by confirmation, cancellation, or a failing
// collaborator.
type Editor struct {
	segments []model.Segment
	// positions of the inputs within segments
	inputs []int
	// index into inputs, -1 if there are none
	focus int

	row       int
	lastWidth int

	prompt string
	styles styling.Stylesheet

	bindings  input.Bindings
	keymap    map[input.Key]action.Action
	boundKeys map[input.Actionspec][]string

	term      Terminal
	clipboard PasteSource

	result *Result
	err    error
	over   bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithPrompt sets text that is drawn in front of the segments.
func WithPrompt(prompt string) Option {
	return func(e *Editor) { e.prompt = prompt }
}

// WithStylesheet sets the stylings segments are drawn in.
func WithStylesheet(stylesheet styling.Stylesheet) Option {
	return func(e *Editor) { e.styles = stylesheet }
}

// WithBindings replaces the default key bindings.
func WithBindings(bindings input.Bindings) Option {
	return func(e *Editor) { e.bindings = bindings }
}

// New creates an editor for the given segments.
// The first input segment (if any) is focused initially.
func New(segments []model.Segment, term Terminal, clipboard PasteSource, opts ...Option) (*Editor, error) {
	e := &Editor{
		segments:  segments,
		inputs:    model.Inputs(segments),
		focus:     -1,
		styles:    styling.DefaultStylesheet(),
		bindings:  config.DefaultKeys(),
		term:      term,
		clipboard: clipboard,
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.inputs) > 0 {
		e.focus = 0
	}

	if err := e.createKeymap(); err != nil {
		return nil, err
	}

	return e, nil
}

// actionOrder lists all actions that can be bound, in the order they are
// explained in help texts.
var actionOrder = []input.Actionspec{
	"next-field",
	"prev-field",
	"move-cursor-rune-left",
	"move-cursor-rune-right",
	"backspace",
	"paste",
	"confirm",
	"cancel",
}

func (e *Editor) actions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"next-field":             action.Explained("next field", e.FocusNext),
		"prev-field":             action.Explained("previous field", e.FocusPrev),
		"move-cursor-rune-left":  action.Explained("cursor left", e.onFocused((*model.Input).MoveCursorLeft)),
		"move-cursor-rune-right": action.Explained("cursor right", e.onFocused((*model.Input).MoveCursorRight)),
		"backspace":              action.Explained("delete left of cursor", e.onFocused((*model.Input).BackspaceRune)),
		"paste":                  action.Explained("paste", e.paste),
		"confirm":                action.Explained("copy to clipboard", e.confirm),
		"cancel":                 action.Explained("exit", e.cancel),
	}
}

func (e *Editor) createKeymap() error {
	actions := e.actions()
	e.keymap = map[input.Key]action.Action{}
	e.boundKeys = map[input.Actionspec][]string{}
	boundBy := map[input.Key]input.Keyspec{}
	for keyspec, actionspec := range e.bindings {
		a, ok := actions[actionspec]
		if !ok {
			return fmt.Errorf("unknown action '%s' bound to '%s'", actionspec, keyspec)
		}
		key, err := input.ConfigKeyspecToKey(keyspec)
		if err != nil {
			return fmt.Errorf("invalid key binding for '%s': %w", actionspec, err)
		}
		if other, ok := boundBy[key]; ok {
			if e.bindings[other] != actionspec {
				return fmt.Errorf("'%s' and '%s' are the same key but bound to '%s' and '%s'", other, keyspec, e.bindings[other], actionspec)
			}
			continue
		}
		boundBy[key] = keyspec
		e.keymap[key] = a
		e.boundKeys[actionspec] = append(e.boundKeys[actionspec], input.ToConfigIdentifierString(key))
	}
	for _, keys := range e.boundKeys {
		sort.Strings(keys)
	}

	// without these the session could never end
	for _, required := range []input.Actionspec{"confirm", "cancel"} {
		if len(e.boundKeys[required]) == 0 {
			return fmt.Errorf("%w: '%s'", ErrUnboundExit, required)
		}
	}
	return nil
}

// HelpLine describes the bound keys, e.g. "<tab> next field, <esc> exit".
func (e *Editor) HelpLine() string {
	actions := e.actions()
	var parts []string
	for _, spec := range actionOrder {
		keys := e.boundKeys[spec]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", strings.Join(keys, "/"), actions[spec].Explain()))
	}
	return strings.Join(parts, ", ")
}

// Run drives the editing session until the user confirms or cancels, or the
// terminal or clipboard fail.
//
// Cancellation is not an error; it is reported as a Result with Outcome
// Cancelled.
func (e *Editor) Run() (Result, error) {
	if e.over {
		return Result{}, ErrSessionOver
	}
	defer func() { e.over = true }()

	row, err := e.term.CursorRow()
	if err != nil {
		return Result{}, &CollaboratorError{Op: "query cursor row", Err: err}
	}
	e.row = row
	log.Debug().Int("row", row).Int("inputs", len(e.inputs)).Msg("starting editing session")

	for {
		if err := e.render(); err != nil {
			return Result{}, err
		}

		key, err := e.term.ReadKey()
		if err != nil {
			return Result{}, &CollaboratorError{Op: "read key", Err: err}
		}
		e.ProcessKey(key)

		if e.err != nil {
			return Result{}, e.err
		}
		if e.result != nil {
			log.Debug().Str("outcome", e.result.Outcome.String()).Msg("editing session ended")
			return *e.result, nil
		}
	}
}

// ProcessKey applies a single key to the editor's state.
// Bound keys trigger their action; other keys producing a character insert it
// into the focused field, unless typed with alt.
func (e *Editor) ProcessKey(key input.Key) {
	if a, ok := e.keymap[key]; ok {
		log.Trace().Str("key", key.ToDebugString()).Str("action", a.Explain()).Msg("processing bound key")
		a.Do()
		return
	}
	if key.IsRune() && key.Mod == 0 {
		if in := e.Focused(); in != nil {
			in.AddRune(key.Ch)
		}
		return
	}
	log.Trace().Str("key", key.ToDebugString()).Msg("ignoring unbound key")
}

// Focused returns the focused input, or nil if there are no inputs.
func (e *Editor) Focused() *model.Input {
	if e.focus < 0 {
		return nil
	}
	return e.segments[e.inputs[e.focus]].(*model.Input)
}

// FocusNext moves the focus to the next input, wrapping from the last to the
// first.
func (e *Editor) FocusNext() {
	if len(e.inputs) == 0 {
		return
	}
	e.focus = (e.focus + 1) % len(e.inputs)
}

// FocusPrev moves the focus to the previous input, wrapping from the first to
// the last.
func (e *Editor) FocusPrev() {
	if len(e.inputs) == 0 {
		return
	}
	e.focus--
	if e.focus < 0 {
		e.focus = len(e.inputs) - 1
	}
}

func (e *Editor) onFocused(f func(*model.Input)) func() {
	return func() {
		if in := e.Focused(); in != nil {
			f(in)
		}
	}
}

func (e *Editor) paste() {
	in := e.Focused()
	if in == nil {
		return
	}
	text, err := e.clipboard.Read()
	if err != nil {
		e.err = &CollaboratorError{Op: "read clipboard", Err: err}
		return
	}
	in.Paste(text)
}

func (e *Editor) confirm() {
	e.result = &Result{Outcome: Confirmed, Text: model.Flatten(e.segments)}
}

func (e *Editor) cancel() {
	e.result = &Result{Outcome: Cancelled}
}

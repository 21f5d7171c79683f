package edit_test

import (
	"errors"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/snippet/internal/control/edit"
	"github.com/ja-he/snippet/internal/input"
	"github.com/ja-he/snippet/internal/model"
	"github.com/ja-he/snippet/internal/ui"
)

// recordingTerminal replays keys and records everything drawn.
type recordingTerminal struct {
	row    int
	keys   []input.Key
	writes []ui.Line
	moves  [][2]int
}

func (t *recordingTerminal) Write(line ui.Line) error {
	t.writes = append(t.writes, line)
	return nil
}

func (t *recordingTerminal) MoveCursor(col, row int) error {
	t.moves = append(t.moves, [2]int{col, row})
	return nil
}

func (t *recordingTerminal) ReadKey() (input.Key, error) {
	if len(t.keys) == 0 {
		return input.Key{}, io.EOF
	}
	k := t.keys[0]
	t.keys = t.keys[1:]
	return k, nil
}

func (t *recordingTerminal) CursorRow() (int, error) { return t.row, nil }

// lastCaret returns the most recent caret column.
func (t *recordingTerminal) lastCaret() int {
	return t.moves[len(t.moves)-1][0]
}

type stubClipboard struct {
	text  string
	err   error
	reads int
}

func (c *stubClipboard) Read() (string, error) {
	c.reads++
	return c.text, c.err
}

func key(k tcell.Key) input.Key { return input.Key{Key: k} }

func runes(s string) []input.Key {
	var keys []input.Key
	for _, r := range s {
		keys = append(keys, input.Key{Key: tcell.KeyRune, Ch: r})
	}
	return keys
}

func keys(groups ...[]input.Key) []input.Key {
	var result []input.Key
	for _, g := range groups {
		result = append(result, g...)
	}
	return result
}

func one(k tcell.Key) []input.Key { return []input.Key{key(k)} }

func newEditor(t *testing.T, template string, term edit.Terminal, clip edit.PasteSource, opts ...edit.Option) *edit.Editor {
	t.Helper()
	segments, err := model.Parse(template)
	require.NoError(t, err)
	e, err := edit.New(segments, term, clip, opts...)
	require.NoError(t, err)
	return e
}

func run(t *testing.T, template string, k []input.Key, opts ...edit.Option) (edit.Result, *recordingTerminal) {
	t.Helper()
	term := &recordingTerminal{keys: k}
	e := newEditor(t, template, term, &stubClipboard{text: "pasted"}, opts...)
	result, err := e.Run()
	require.NoError(t, err)
	return result, term
}

func TestFocus(t *testing.T) {
	t.Run("tab cycles and wraps", func(t *testing.T) {
		e := newEditor(t, "{x}{y}", &recordingTerminal{}, &stubClipboard{})
		assert.Equal(t, "x", e.Focused().Original())
		e.ProcessKey(key(tcell.KeyTab))
		assert.Equal(t, "y", e.Focused().Original())
		e.ProcessKey(key(tcell.KeyTab))
		assert.Equal(t, "x", e.Focused().Original())
	})

	t.Run("shift+tab wraps backwards", func(t *testing.T) {
		e := newEditor(t, "{a} {b} {c}", &recordingTerminal{}, &stubClipboard{})
		e.ProcessKey(key(tcell.KeyBacktab))
		assert.Equal(t, "c", e.Focused().Original())
		e.ProcessKey(key(tcell.KeyBacktab))
		assert.Equal(t, "b", e.Focused().Original())
	})

	t.Run("no inputs", func(t *testing.T) {
		e := newEditor(t, "just text", &recordingTerminal{}, &stubClipboard{})
		assert.Nil(t, e.Focused())
		for _, k := range keys(one(tcell.KeyTab), one(tcell.KeyBacktab), one(tcell.KeyBackspace2), one(tcell.KeyLeft), one(tcell.KeyCtrlV), runes("x")) {
			e.ProcessKey(k)
		}
		assert.Nil(t, e.Focused())
	})
}

func TestRun(t *testing.T) {
	t.Run("first touch overwrites placeholder", func(t *testing.T) {
		result, _ := run(t, "hello {name}!", keys(runes("J"), one(tcell.KeyEnter)))
		assert.Equal(t, edit.Result{Outcome: edit.Confirmed, Text: "hello J!"}, result)
	})

	t.Run("moving right first preserves placeholder", func(t *testing.T) {
		result, _ := run(t, "{name}", keys(one(tcell.KeyRight), runes("J"), one(tcell.KeyEnter)))
		assert.Equal(t, "nJame", result.Text)
	})

	t.Run("two fields keep their positions", func(t *testing.T) {
		result, _ := run(t, "git commit -m '{message}' --author={author}",
			keys(runes("fix it"), one(tcell.KeyTab), runes("me"), one(tcell.KeyEnter)))
		assert.Equal(t, "git commit -m 'fix it' --author=me", result.Text)
	})

	t.Run("backspace at cursor 0 is a no-op", func(t *testing.T) {
		result, _ := run(t, "[{ab}]", keys(
			one(tcell.KeyBackspace2), one(tcell.KeyBackspace2),
			one(tcell.KeyEnter),
		))
		assert.Equal(t, "[ab]", result.Text)
	})

	t.Run("backspace cannot go past the start", func(t *testing.T) {
		result, _ := run(t, "[{ab}]", keys(
			one(tcell.KeyRight), one(tcell.KeyRight), one(tcell.KeyRight),
			one(tcell.KeyBackspace2), one(tcell.KeyBackspace2), one(tcell.KeyBackspace2),
			runes("z"),
			one(tcell.KeyEnter),
		))
		assert.Equal(t, "[z]", result.Text)
	})

	t.Run("escape cancels", func(t *testing.T) {
		result, _ := run(t, "{x}", keys(runes("abc"), one(tcell.KeyESC)))
		assert.Equal(t, edit.Result{Outcome: edit.Cancelled}, result)
	})

	t.Run("enter without inputs", func(t *testing.T) {
		result, _ := run(t, "ls -la", keys(runes("x"), one(tcell.KeyEnter)))
		assert.Equal(t, "ls -la", result.Text)
	})

	t.Run("unbound non-rune keys are ignored", func(t *testing.T) {
		result, _ := run(t, "{x}", keys(one(tcell.KeyF5), one(tcell.KeyCtrlA), one(tcell.KeyEnter)))
		assert.Equal(t, "x", result.Text)
	})

	t.Run("alt+rune is not typed", func(t *testing.T) {
		result, _ := run(t, "{x}", keys(
			[]input.Key{{Mod: tcell.ModAlt, Key: tcell.KeyRune, Ch: 'b'}},
			runes("y"),
			one(tcell.KeyEnter),
		))
		assert.Equal(t, "y", result.Text)
	})

	t.Run("paste replaces on first touch then inserts", func(t *testing.T) {
		term := &recordingTerminal{keys: keys(
			one(tcell.KeyRight), one(tcell.KeyCtrlV),
			one(tcell.KeyLeft), one(tcell.KeyLeft), one(tcell.KeyCtrlV),
			one(tcell.KeyEnter),
		)}
		clip := &stubClipboard{text: "ab"}
		e := newEditor(t, "<{placeholder}>", term, clip)
		result, err := e.Run()
		require.NoError(t, err)
		assert.Equal(t, "<abab>", result.Text)
		assert.Equal(t, 2, clip.reads)
	})

	t.Run("session ends once", func(t *testing.T) {
		term := &recordingTerminal{keys: one(tcell.KeyEnter)}
		e := newEditor(t, "{x}", term, &stubClipboard{})
		_, err := e.Run()
		require.NoError(t, err)
		_, err = e.Run()
		assert.ErrorIs(t, err, edit.ErrSessionOver)
	})
}

func TestRunFailures(t *testing.T) {
	t.Run("clipboard read failure", func(t *testing.T) {
		clipErr := errors.New("no clipboard")
		term := &recordingTerminal{keys: keys(one(tcell.KeyCtrlV), one(tcell.KeyEnter))}
		e := newEditor(t, "{x}", term, &stubClipboard{err: clipErr})
		_, err := e.Run()

		var collaboratorErr *edit.CollaboratorError
		require.ErrorAs(t, err, &collaboratorErr)
		assert.Equal(t, "read clipboard", collaboratorErr.Op)
		assert.ErrorIs(t, err, clipErr)
		assert.Len(t, term.keys, 1, "session ends at the failing key")
	})

	t.Run("terminal read failure", func(t *testing.T) {
		term := &recordingTerminal{keys: runes("ab")}
		e := newEditor(t, "{x}", term, &stubClipboard{})
		_, err := e.Run()

		var collaboratorErr *edit.CollaboratorError
		require.ErrorAs(t, err, &collaboratorErr)
		assert.Equal(t, "read key", collaboratorErr.Op)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestRender(t *testing.T) {
	t.Run("pinned row", func(t *testing.T) {
		term := &recordingTerminal{row: 7, keys: keys(runes("a"), one(tcell.KeyEnter))}
		e := newEditor(t, "{x}", term, &stubClipboard{})
		_, err := e.Run()
		require.NoError(t, err)
		require.NotEmpty(t, term.moves)
		for _, m := range term.moves {
			assert.Equal(t, 7, m[1])
		}
	})

	t.Run("shrinking render is padded", func(t *testing.T) {
		_, term := run(t, "say {a long placeholder}", keys(runes("x"), one(tcell.KeyEnter)))
		require.Len(t, term.writes, 2)
		assert.Equal(t, "say a long placeholder", term.writes[0].Plain())
		assert.Equal(t, "say x                 ", term.writes[1].Plain())
		assert.GreaterOrEqual(t, term.writes[1].Width(), term.writes[0].Width())
	})

	t.Run("caret follows cursor", func(t *testing.T) {
		term := &recordingTerminal{}
		e := newEditor(t, "ab {cd} ef {gh}", term, &stubClipboard{}, edit.WithPrompt(" > "))

		_, caret := e.Line()
		assert.Equal(t, 6, caret, "prompt plus 'ab '")

		e.ProcessKey(key(tcell.KeyRight))
		_, caret = e.Line()
		assert.Equal(t, 7, caret)

		e.ProcessKey(key(tcell.KeyTab))
		_, caret = e.Line()
		assert.Equal(t, 12, caret, "prompt plus 'ab cd ef '")
	})

	t.Run("blank input shows placeholder", func(t *testing.T) {
		term := &recordingTerminal{}
		e := newEditor(t, "{host}", term, &stubClipboard{})
		e.ProcessKey(runes(" ")[0])

		line, caret := e.Line()
		assert.Equal(t, "host", line.Plain())
		assert.Equal(t, 1, caret)
		assert.Equal(t, " ", e.Focused().Text())
	})

	t.Run("caret stays within placeholder of blank value", func(t *testing.T) {
		e := newEditor(t, "{ab}c", &recordingTerminal{}, &stubClipboard{})
		for _, k := range runes("   ") {
			e.ProcessKey(k)
		}

		line, caret := e.Line()
		assert.Equal(t, "abc", line.Plain())
		assert.Equal(t, 2, caret)
	})

	t.Run("pasted text stays on the row", func(t *testing.T) {
		term := &recordingTerminal{keys: keys(one(tcell.KeyCtrlV), one(tcell.KeyEnter))}
		e := newEditor(t, "a{x}b", term, &stubClipboard{text: "l1\nl2\x1b[2J"})
		result, err := e.Run()
		require.NoError(t, err)

		assert.Equal(t, "al1 l2[2Jb", result.Text)
		require.Len(t, term.writes, 2)
		assert.Equal(t, "a\x1b[7m\x1b[4ml1 l2[2J\x1b[24m\x1b[27mb", term.writes[1].ANSI())
		assert.Equal(t, 9, term.lastCaret())
	})

	t.Run("focus styling", func(t *testing.T) {
		_, term := run(t, "{a}-{b}", keys(one(tcell.KeyEnter)))
		require.Len(t, term.writes, 1)
		assert.Equal(t, "\x1b[7m\x1b[4ma\x1b[24m\x1b[27m-\x1b[4mb\x1b[24m", term.writes[0].ANSI())
	})
}

func TestBindings(t *testing.T) {
	t.Run("custom bindings", func(t *testing.T) {
		result, _ := run(t, "{x}{y}", keys(runes("1"), one(tcell.KeyCtrlN), runes("2"), one(tcell.KeyCtrlS)),
			edit.WithBindings(input.Bindings{
				"<c-n>": "next-field",
				"<c-s>": "confirm",
				"<c-q>": "cancel",
			}))
		assert.Equal(t, "12", result.Text)
	})

	t.Run("unknown action", func(t *testing.T) {
		segments, err := model.Parse("{x}")
		require.NoError(t, err)
		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{"<c-n>": "teleport"}))
		assert.ErrorContains(t, err, "teleport")
	})

	t.Run("invalid keyspec", func(t *testing.T) {
		segments, err := model.Parse("{x}")
		require.NoError(t, err)
		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{"ab": "confirm"}))
		assert.Error(t, err)
	})

	t.Run("confirm and cancel must stay bound", func(t *testing.T) {
		segments, err := model.Parse("{x}")
		require.NoError(t, err)

		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{"<tab>": "next-field"}))
		assert.ErrorIs(t, err, edit.ErrUnboundExit)

		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{
			"<cr>":  "confirm",
			"<esc>": "next-field",
		}))
		assert.ErrorIs(t, err, edit.ErrUnboundExit)
		assert.ErrorContains(t, err, "cancel")

		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{
			"<c-s>": "confirm",
			"<c-q>": "cancel",
		}))
		assert.NoError(t, err)
	})

	t.Run("one key bound to two actions", func(t *testing.T) {
		segments, err := model.Parse("{x}")
		require.NoError(t, err)

		// tab and ctrl+i are the same key
		_, err = edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{
			"<tab>": "next-field",
			"<c-i>": "confirm",
			"<esc>": "cancel",
		}))
		assert.ErrorContains(t, err, "same key")

		e, err := edit.New(segments, &recordingTerminal{}, &stubClipboard{}, edit.WithBindings(input.Bindings{
			"<tab>": "confirm",
			"<c-i>": "confirm",
			"<esc>": "cancel",
		}))
		require.NoError(t, err)
		assert.Equal(t, "<tab> copy to clipboard, <esc> exit", e.HelpLine())
	})

	t.Run("help line", func(t *testing.T) {
		e := newEditor(t, "{x}", &recordingTerminal{}, &stubClipboard{})
		assert.Equal(t,
			"<tab> next field, <s-tab> previous field, <left> cursor left, <right> cursor right, <bs>/<c-bs> delete left of cursor, <c-v> paste, <cr> copy to clipboard, <esc> exit",
			e.HelpLine(),
		)
	})
}

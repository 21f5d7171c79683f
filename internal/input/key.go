package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press, identified by tcell's key codes.
// For printable input Key is tcell.KeyRune and Ch holds the rune.
// Mod only ever holds tcell.ModAlt; the other modifiers are already part of
// the key code (e.g. tcell.KeyCtrlV, tcell.KeyBacktab) or not reported.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// IsRune reports whether the key produced a character.
func (k Key) IsRune() bool {
	return k.Key == tcell.KeyRune
}

// ToDebugString returns a representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%d+%s (%d),'%s'(%d))",
		int(k.Mod),
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

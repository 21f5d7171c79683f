package input

import "github.com/gdamore/tcell/v2"

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	mod := e.Modifiers() & tcell.ModAlt
	if e.Key() == tcell.KeyRune {
		return Key{Mod: mod, Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Mod: mod, Key: e.Key()}
}

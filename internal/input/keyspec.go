package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos := range specR {
		switch specR[pos] {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{specR[pos]})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])

		default:
			if specialContext {
				if !unicode.IsLetter(specR[pos]) && specR[pos] != '-' {
					return nil,
						fmt.Errorf("illegal character '%c' in special context (pos %d)", specR[pos], pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])
			} else {
				keys = append(keys, []rune{specR[pos]})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context in '%s'", spec)
	}

	result := make([]Key, 0)
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %s", string(keyIdentifier), err.Error())
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// ConfigKeyspecToKey is ConfigKeyspecToKeys for specs that must describe
// exactly one key.
func ConfigKeyspecToKey(spec Keyspec) (Key, error) {
	keys, err := ConfigKeyspecToKeys(spec)
	if err != nil {
		return Key{}, err
	}
	if len(keys) != 1 {
		return Key{}, fmt.Errorf("keyspec '%s' describes %d keys, expected exactly one", spec, len(keys))
	}
	return keys[0], nil
}

// identifiers in the order they are preferred when converting a key back to
// its identifier (several identifiers share key codes, e.g. <tab> and <c-i>).
var identifiers = []struct {
	name string
	key  Key
}{
	{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
	{"cr", Key{Key: tcell.KeyEnter}},
	{"esc", Key{Key: tcell.KeyESC}},
	{"tab", Key{Key: tcell.KeyTab}},
	{"s-tab", Key{Key: tcell.KeyBacktab}},
	{"del", Key{Key: tcell.KeyDelete}},
	{"bs", Key{Key: tcell.KeyBackspace2}},
	{"left", Key{Key: tcell.KeyLeft}},
	{"right", Key{Key: tcell.KeyRight}},
	{"up", Key{Key: tcell.KeyUp}},
	{"down", Key{Key: tcell.KeyDown}},
	{"home", Key{Key: tcell.KeyHome}},
	{"end", Key{Key: tcell.KeyEnd}},

	{"c-space", Key{Key: tcell.KeyCtrlSpace}},
	{"c-bs", Key{Key: tcell.KeyBackspace}},

	{"c-a", Key{Key: tcell.KeyCtrlA}},
	{"c-b", Key{Key: tcell.KeyCtrlB}},
	{"c-c", Key{Key: tcell.KeyCtrlC}},
	{"c-d", Key{Key: tcell.KeyCtrlD}},
	{"c-e", Key{Key: tcell.KeyCtrlE}},
	{"c-f", Key{Key: tcell.KeyCtrlF}},
	{"c-g", Key{Key: tcell.KeyCtrlG}},
	{"c-h", Key{Key: tcell.KeyCtrlH}},
	{"c-i", Key{Key: tcell.KeyCtrlI}},
	{"c-j", Key{Key: tcell.KeyCtrlJ}},
	{"c-k", Key{Key: tcell.KeyCtrlK}},
	{"c-l", Key{Key: tcell.KeyCtrlL}},
	{"c-m", Key{Key: tcell.KeyCtrlM}},
	{"c-n", Key{Key: tcell.KeyCtrlN}},
	{"c-o", Key{Key: tcell.KeyCtrlO}},
	{"c-p", Key{Key: tcell.KeyCtrlP}},
	{"c-q", Key{Key: tcell.KeyCtrlQ}},
	{"c-r", Key{Key: tcell.KeyCtrlR}},
	{"c-s", Key{Key: tcell.KeyCtrlS}},
	{"c-t", Key{Key: tcell.KeyCtrlT}},
	{"c-u", Key{Key: tcell.KeyCtrlU}},
	{"c-v", Key{Key: tcell.KeyCtrlV}},
	{"c-w", Key{Key: tcell.KeyCtrlW}},
	{"c-x", Key{Key: tcell.KeyCtrlX}},
	{"c-y", Key{Key: tcell.KeyCtrlY}},
	{"c-z", Key{Key: tcell.KeyCtrlZ}},
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	identifier = strings.ToLower(identifier)
	for _, id := range identifiers {
		if id.name == identifier {
			return id.key, nil
		}
	}
	return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, e.g. "<tab>" or "x".
func ToConfigIdentifierString(k Key) string {
	for _, id := range identifiers {
		if id.key == k {
			return "<" + id.name + ">"
		}
	}
	if k.IsRune() {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", strings.ToLower(tcell.KeyNames[k.Key]))
}

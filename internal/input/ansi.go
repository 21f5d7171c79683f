package input

import (
	"io"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// csiFinals maps the final byte of parameterless CSI and SS3 sequences to
// keys.
var csiFinals = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
	'Z': tcell.KeyBacktab,
	'P': tcell.KeyF1,
	'Q': tcell.KeyF2,
	'R': tcell.KeyF3,
	'S': tcell.KeyF4,
}

// tildeParams maps the first parameter of "CSI <n> ~" sequences to keys.
var tildeParams = map[string]tcell.Key{
	"1": tcell.KeyHome,
	"2": tcell.KeyInsert,
	"3": tcell.KeyDelete,
	"4": tcell.KeyEnd,
	"5": tcell.KeyPgUp,
	"6": tcell.KeyPgDn,
	"7": tcell.KeyHome,
	"8": tcell.KeyEnd,
}

// DecodeANSI decodes bytes read from a terminal in raw mode into keys.
//
// Bytes at the end of data that might be the beginning of an incomplete
// sequence (a partial UTF-8 rune or escape sequence) are returned as rest and
// should be prepended to the next read. A lone ESC at the end of data is
// treated as the escape key, ESC directly followed by a character as that
// character with tcell.ModAlt.
// Unknown escape sequences are dropped.
func DecodeANSI(data []byte) (keys []Key, rest []byte) {
	i := 0
	for i < len(data) {
		b := data[i]
		switch {

		case b == 0x1b:
			if i+1 == len(data) {
				keys = append(keys, Key{Key: tcell.KeyESC})
				i++
				continue
			}
			switch data[i+1] {
			case '[':
				key, n, complete := decodeCSI(data[i+2:])
				if !complete {
					return keys, data[i:]
				}
				if key.Key != tcell.KeyNUL {
					keys = append(keys, key)
				}
				i += 2 + n
			case 'O':
				if i+2 == len(data) {
					return keys, data[i:]
				}
				if k, ok := csiFinals[data[i+2]]; ok {
					keys = append(keys, Key{Key: k})
				}
				i += 3
			default:
				// ESC before a character is how terminals send alt+<char>
				next := data[i+1]
				if next < 0x20 || next == 0x7f {
					keys = append(keys, Key{Key: tcell.KeyESC})
					i++
					continue
				}
				if !utf8.FullRune(data[i+1:]) {
					return keys, data[i:]
				}
				r, size := utf8.DecodeRune(data[i+1:])
				if r != utf8.RuneError {
					keys = append(keys, Key{Mod: tcell.ModAlt, Key: tcell.KeyRune, Ch: r})
				}
				i += 1 + size
			}

		case b == '\r' || b == '\n':
			keys = append(keys, Key{Key: tcell.KeyEnter})
			i++

		case b == 0x7f:
			keys = append(keys, Key{Key: tcell.KeyBackspace2})
			i++

		case b < 0x20:
			// control keys share their codes with tcell's (tab, ctrl+a..z, ...)
			keys = append(keys, Key{Key: tcell.Key(b)})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return keys, data[i:]
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				keys = append(keys, Key{Key: tcell.KeyRune, Ch: r})
			}
			i += size

		}
	}
	return keys, nil
}

// decodeCSI decodes the part of a CSI sequence following "ESC [".
// It returns the key (KeyNUL if unknown), the number of bytes consumed, and
// whether the sequence was complete.
func decodeCSI(data []byte) (Key, int, bool) {
	paramEnd := 0
	for paramEnd < len(data) && data[paramEnd] >= 0x20 && data[paramEnd] <= 0x3f {
		paramEnd++
	}
	if paramEnd == len(data) {
		return Key{}, 0, false
	}
	final := data[paramEnd]
	consumed := paramEnd + 1
	if final < 0x40 || final > 0x7e {
		return Key{}, consumed, true
	}

	params := data[:paramEnd]
	if final == '~' {
		first := params
		for j, c := range params {
			if c == ';' {
				first = params[:j]
				break
			}
		}
		if k, ok := tildeParams[string(first)]; ok {
			return Key{Key: k}, consumed, true
		}
		return Key{}, consumed, true
	}

	if k, ok := csiFinals[final]; ok {
		return Key{Key: k}, consumed, true
	}
	return Key{}, consumed, true
}

// ANSIDecoder reads keys from a terminal input stream in raw mode.
type ANSIDecoder struct {
	r       io.Reader
	buf     []byte
	rest    []byte
	pending []Key
}

// NewANSIDecoder returns a decoder reading from r.
func NewANSIDecoder(r io.Reader) *ANSIDecoder {
	return &ANSIDecoder{r: r, buf: make([]byte, 256)}
}

// ReadKey blocks until the next key is available.
func (d *ANSIDecoder) ReadKey() (Key, error) {
	for len(d.pending) == 0 {
		n, err := d.r.Read(d.buf)
		if n > 0 {
			data := append(append([]byte{}, d.rest...), d.buf[:n]...)
			d.pending, d.rest = DecodeANSI(data)
		}
		if err != nil && len(d.pending) == 0 {
			return Key{}, err
		}
	}

	key := d.pending[0]
	d.pending = d.pending[1:]
	return key, nil
}

// Package encode implements the STFU-8 encoders: two width-specific walkers
// sharing one escape policy and one visibility classifier.
package encode

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/stfu8/internal/escape"
	"github.com/wippyai/stfu8/internal/printable"
)

// Options control whether tab, line feed and carriage return are written as
// named escapes or kept literal. Either choice round-trips; keeping them
// literal preserves the layout of encoded text.
type Options struct {
	EscapeTab            bool
	EscapeLineFeed       bool
	EscapeCarriageReturn bool
}

func (o Options) escaped(v uint32) bool {
	switch v {
	case escape.Tab:
		return o.EscapeTab
	case escape.LineFeed:
		return o.EscapeLineFeed
	case escape.CarriageReturn:
		return o.EscapeCarriageReturn
	}
	return false
}

func appendNamed(out []byte, v uint32) []byte {
	switch v {
	case escape.Tab:
		return append(out, escape.Backslash, 't')
	case escape.LineFeed:
		return append(out, escape.Backslash, 'n')
	default:
		return append(out, escape.Backslash, 'r')
	}
}

// Bytes encodes 8-bit elements as STFU-8 text. Runs of well-formed UTF-8 that
// the classifier deems visible pass through literally; every other byte
// becomes a `\xXX` escape. Escapes always cover exactly one byte, so
// multi-byte UTF-8 never appears in escaped form.
func Bytes(v []byte, opt Options, cls printable.Classifier) string {
	return string(AppendBytes(make([]byte, 0, len(v)+len(v)/8), v, opt, cls))
}

// AppendBytes appends the encoding of v to dst and returns the extended
// buffer.
func AppendBytes(dst []byte, v []byte, opt Options, cls printable.Classifier) []byte {
	out := dst
	for i := 0; i < len(v); {
		b := v[i]
		if b < utf8.RuneSelf {
			switch {
			case b == escape.Backslash:
				out = append(out, escape.Backslash, escape.Backslash)
			case b == escape.Tab || b == escape.LineFeed || b == escape.CarriageReturn:
				if opt.escaped(uint32(b)) {
					out = appendNamed(out, uint32(b))
				} else {
					out = append(out, b)
				}
			case cls.Visible(rune(b)):
				out = append(out, b)
			default:
				out = escape.AppendByteEscape(out, b)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(v[i:])
		if r != utf8.RuneError || size > 1 {
			if cls.Visible(r) {
				out = append(out, v[i:i+size]...)
				i += size
				continue
			}
		}
		out = escape.AppendByteEscape(out, b)
		i++
	}
	return out
}

// Units encodes 16-bit elements as STFU-8 text. A well-formed surrogate pair
// is treated as its single scalar value; everything the classifier rejects,
// along with unpaired surrogates, becomes a `\uXXXXXX` escape covering
// exactly one unit. Output is UTF-8 text regardless of input width.
func Units(v []uint16, opt Options, cls printable.Classifier) string {
	return string(AppendUnits(make([]byte, 0, len(v)+len(v)/2), v, opt, cls))
}

// AppendUnits appends the encoding of v to dst and returns the extended
// buffer.
func AppendUnits(dst []byte, v []uint16, opt Options, cls printable.Classifier) []byte {
	out := dst
	for i := 0; i < len(v); {
		u := v[i]
		switch {
		case u == escape.Backslash:
			out = append(out, escape.Backslash, escape.Backslash)
		case u == escape.Tab || u == escape.LineFeed || u == escape.CarriageReturn:
			if opt.escaped(uint32(u)) {
				out = appendNamed(out, uint32(u))
			} else {
				out = append(out, byte(u))
			}
		case utf16.IsSurrogate(rune(u)):
			if r := pairAt(v, i); r >= 0 && cls.Visible(r) {
				out = utf8.AppendRune(out, r)
				i += 2
				continue
			}
			out = escape.AppendUnitEscape(out, uint32(u))
		case cls.Visible(rune(u)):
			out = utf8.AppendRune(out, rune(u))
		default:
			out = escape.AppendUnitEscape(out, uint32(u))
		}
		i++
	}
	return out
}

// pairAt decodes the surrogate pair starting at v[i], or returns -1 when
// v[i] does not begin a well-formed pair.
func pairAt(v []uint16, i int) rune {
	if i+1 >= len(v) {
		return -1
	}
	r := utf16.DecodeRune(rune(v[i]), rune(v[i+1]))
	if r == utf8.RuneError {
		return -1
	}
	return r
}

// Package escape defines the STFU-8 escape grammar: the token model and the
// incremental tokenizer shared by the whole-input and streaming decoders.
package escape

import (
	"unicode/utf8"

	"github.com/wippyai/stfu8/errors"
)

// Reserved byte values of the grammar.
const (
	Backslash      = 0x5C
	Tab            = 0x09
	LineFeed       = 0x0A
	CarriageReturn = 0x0D
)

// MaxTokenLen is the longest token in bytes: `\uXXXXXX`.
const MaxTokenLen = 8

type Kind int

const (
	Literal Kind = iota // unescaped scalar value
	Named               // \\ \t \n \r
	ByteLit             // \xXX
	WideLit             // \uXXXXXX
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Named:
		return "named escape"
	case ByteLit:
		return `\x escape`
	case WideLit:
		return `\u escape`
	}
	return "unknown"
}

// Token is one parsed unit of encoded text. Value holds the scalar value for
// Literal, the fixed element for Named, and the parsed number for
// ByteLit/WideLit.
type Token struct {
	Value uint32
	Kind  Kind
}

// Next parses the token starting at data[0] and returns it with the number of
// input bytes it occupies. A (zero, 0, nil) return means data ends inside a
// possibly-valid token and more input is required; callers at end of input
// pass atEOF true to turn that case into the appropriate error. Error offsets
// are relative to data[0]; callers rebase them.
func Next(data []byte, atEOF bool) (Token, int, *errors.DecodeError) {
	if len(data) == 0 {
		return Token{}, 0, nil
	}

	if data[0] != Backslash {
		if !utf8.FullRune(data) {
			if atEOF {
				return Token{}, 0, errors.InvalidUTF8(0, data)
			}
			return Token{}, 0, nil
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return Token{}, 0, errors.InvalidUTF8(0, data)
		}
		return Token{Kind: Literal, Value: uint32(r)}, size, nil
	}

	if len(data) < 2 {
		if atEOF {
			return Token{}, 0, errors.TrailingBackslash(0)
		}
		return Token{}, 0, nil
	}

	switch data[1] {
	case Backslash:
		return Token{Kind: Named, Value: Backslash}, 2, nil
	case 't':
		return Token{Kind: Named, Value: Tab}, 2, nil
	case 'n':
		return Token{Kind: Named, Value: LineFeed}, 2, nil
	case 'r':
		return Token{Kind: Named, Value: CarriageReturn}, 2, nil
	case 'x':
		return hexToken(data, atEOF, ByteLit, 2)
	case 'u':
		return hexToken(data, atEOF, WideLit, 6)
	default:
		_, size := utf8.DecodeRune(data[1:])
		return Token{}, 0, errors.UnrecognizedEscape(0, string(data[:1+size]))
	}
}

// ValidScalar reports whether v is a Unicode scalar value: at most 0x10FFFF
// and not in the surrogate range 0xD800-0xDFFF.
func ValidScalar(v uint32) bool {
	return v < 0xD800 || (v >= 0xE000 && v <= 0x10FFFF)
}

// hexToken parses the fixed-length hex body of a `\x` or `\u` escape. A bad
// digit fails immediately; running out of digits is malformed only at EOF.
func hexToken(data []byte, atEOF bool, kind Kind, digits int) (Token, int, *errors.DecodeError) {
	total := 2 + digits
	n := len(data)
	if n > total {
		n = total
	}

	var v uint32
	for i := 2; i < n; i++ {
		if !isHexDigit(data[i]) {
			return Token{}, 0, errors.MalformedHex(0, string(data[:i+1]))
		}
		v = v<<4 | uint32(hexValue(data[i]))
	}

	if n < total {
		if atEOF {
			return Token{}, 0, errors.MalformedHex(0, string(data[:n]))
		}
		return Token{}, 0, nil
	}
	return Token{Kind: kind, Value: v}, total, nil
}

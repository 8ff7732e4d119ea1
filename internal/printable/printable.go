// Package printable decides whether a Unicode scalar value may appear
// literally in encoded output or must be escaped.
package printable

import "unicode"

// Classifier reports whether a scalar value is safe to emit literally.
// Encoders accept one so the decision table can be swapped out in tests.
type Classifier interface {
	Visible(r rune) bool
}

// Standard classifies against the Unicode general category tables. Letters,
// marks, numbers, punctuation, symbols and space separators are visible;
// control, format, surrogate, private-use, unassigned and line/paragraph
// separator characters are not.
var Standard Classifier = standard{}

type standard struct{}

var visible = []*unicode.RangeTable{
	unicode.L,
	unicode.M,
	unicode.N,
	unicode.P,
	unicode.S,
	unicode.Zs,
}

func (standard) Visible(r rune) bool {
	return unicode.In(r, visible...)
}

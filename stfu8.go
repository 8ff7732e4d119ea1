package stfu8

import (
	"github.com/wippyai/stfu8/internal/decode"
	"github.com/wippyai/stfu8/internal/encode"
	"github.com/wippyai/stfu8/internal/printable"
)

// Encoder holds the formatting choices for encoding. The zero value escapes
// nothing beyond what reversibility requires; NewEncoder returns the default
// used by EncodeU8 and EncodeU16.
type Encoder struct {
	// EncodeTab escapes tab as `\t` instead of keeping it literal.
	EncodeTab bool
	// EncodeLineFeed escapes line feed as `\n` instead of keeping it literal.
	EncodeLineFeed bool
	// EncodeCarriageReturn escapes carriage return as `\r` instead of
	// keeping it literal.
	EncodeCarriageReturn bool
}

// NewEncoder returns the default encoder: tab, line feed and carriage return
// are escaped, so encoded text never spans lines.
func NewEncoder() *Encoder {
	return &Encoder{
		EncodeTab:            true,
		EncodeLineFeed:       true,
		EncodeCarriageReturn: true,
	}
}

// NewPrettyEncoder returns an encoder that keeps tab, line feed and carriage
// return literal, preserving the layout of mostly-text data.
func NewPrettyEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) options() encode.Options {
	return encode.Options{
		EscapeTab:            e.EncodeTab,
		EscapeLineFeed:       e.EncodeLineFeed,
		EscapeCarriageReturn: e.EncodeCarriageReturn,
	}
}

// EncodeU8 encodes 8-bit elements as STFU-8 text under this encoder's
// formatting choices.
func (e *Encoder) EncodeU8(v []byte) string {
	return encode.Bytes(v, e.options(), printable.Standard)
}

// EncodeU16 encodes 16-bit elements as STFU-8 text under this encoder's
// formatting choices.
func (e *Encoder) EncodeU16(v []uint16) string {
	return encode.Units(v, e.options(), printable.Standard)
}

// EncodeU8 encodes 8-bit elements as STFU-8 text. Visible, well-formed UTF-8
// passes through literally; every other byte becomes an escape. Encoding
// never fails.
func EncodeU8(v []byte) string {
	return NewEncoder().EncodeU8(v)
}

// EncodeU8Pretty is EncodeU8 with tab, line feed and carriage return kept
// literal.
func EncodeU8Pretty(v []byte) string {
	return NewPrettyEncoder().EncodeU8(v)
}

// DecodeU8 decodes STFU-8 text into the 8-bit elements it represents. The
// error is a *errors.DecodeError reporting what was violated and where.
func DecodeU8(s string) ([]byte, error) {
	return decode.Bytes(s)
}

// EncodeU16 encodes 16-bit elements as STFU-8 text. Well-formed surrogate
// pairs become their scalar value; unpaired surrogates and invisible units
// become escapes. Encoding never fails.
func EncodeU16(v []uint16) string {
	return NewEncoder().EncodeU16(v)
}

// EncodeU16Pretty is EncodeU16 with tab, line feed and carriage return kept
// literal.
func EncodeU16Pretty(v []uint16) string {
	return NewPrettyEncoder().EncodeU16(v)
}

// DecodeU16 decodes STFU-8 text into the 16-bit elements it represents. The
// error is a *errors.DecodeError reporting what was violated and where.
func DecodeU16(s string) ([]uint16, error) {
	return decode.Units(s)
}

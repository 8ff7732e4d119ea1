package decode

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/stfu8/errors"
)

// Sink receives decoded elements for one target width. The engine is width
// agnostic; the sink carries the width policy: the largest verbatim element
// value and how a scalar value expands into elements.
type Sink interface {
	Width() errors.Width
	// Max is the largest value an element of this width can hold.
	Max() uint32
	// PutScalar appends the width-native encoding of a scalar value.
	PutScalar(r rune)
	// PutRaw appends a single element verbatim.
	PutRaw(v uint32)
	// Len is the number of elements accumulated.
	Len() int
}

// ByteSink accumulates 8-bit elements. Scalar values expand to their UTF-8
// bytes; raw values land as single bytes.
type ByteSink struct {
	buf []byte
}

// NewByteSink returns a sink with capacity for sizeHint elements.
func NewByteSink(sizeHint int) *ByteSink {
	return &ByteSink{buf: make([]byte, 0, sizeHint)}
}

func (s *ByteSink) Width() errors.Width { return errors.WidthU8 }
func (s *ByteSink) Max() uint32         { return 0xFF }

func (s *ByteSink) PutScalar(r rune) { s.buf = utf8.AppendRune(s.buf, r) }
func (s *ByteSink) PutRaw(v uint32)  { s.buf = append(s.buf, byte(v)) }

func (s *ByteSink) Len() int { return len(s.buf) }

// Bytes returns the elements decoded so far.
func (s *ByteSink) Bytes() []byte { return s.buf }

// Reset discards accumulated elements, keeping capacity.
func (s *ByteSink) Reset() { s.buf = s.buf[:0] }

// UnitSink accumulates 16-bit elements. Scalar values above the basic plane
// expand to a surrogate pair; raw values land as single units.
type UnitSink struct {
	buf []uint16
}

// NewUnitSink returns a sink with capacity for sizeHint elements.
func NewUnitSink(sizeHint int) *UnitSink {
	return &UnitSink{buf: make([]uint16, 0, sizeHint)}
}

func (s *UnitSink) Width() errors.Width { return errors.WidthU16 }
func (s *UnitSink) Max() uint32         { return 0xFFFF }

func (s *UnitSink) PutScalar(r rune) {
	if r <= 0xFFFF {
		s.buf = append(s.buf, uint16(r))
		return
	}
	hi, lo := utf16.EncodeRune(r)
	s.buf = append(s.buf, uint16(hi), uint16(lo))
}

func (s *UnitSink) PutRaw(v uint32) { s.buf = append(s.buf, uint16(v)) }

func (s *UnitSink) Len() int { return len(s.buf) }

// Units returns the elements decoded so far.
func (s *UnitSink) Units() []uint16 { return s.buf }

// Reset discards accumulated elements, keeping capacity.
func (s *UnitSink) Reset() { s.buf = s.buf[:0] }

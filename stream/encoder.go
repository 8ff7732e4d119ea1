package stream

import (
	"errors"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/stfu8/internal/encode"
	"github.com/wippyai/stfu8/internal/printable"
)

// ErrClosed is returned by writes to an encoder after Close.
var ErrClosed = errors.New("stfu8 stream: encoder is closed")

func defaultOptions() encode.Options {
	return encode.Options{
		EscapeTab:            true,
		EscapeLineFeed:       true,
		EscapeCarriageReturn: true,
	}
}

// ByteEncoder encodes a stream of 8-bit elements as STFU-8 text written to
// an underlying writer. A UTF-8 sequence split across writes is held until
// its remaining bytes arrive, so chunking never changes the output.
type ByteEncoder struct {
	w      io.Writer
	opt    encode.Options
	rest   [utf8.UTFMax]byte
	nrest  int
	out    []byte
	err    error
	closed bool
}

// NewByteEncoder returns a ByteEncoder writing to w with the default
// formatting: tab, line feed and carriage return escaped.
func NewByteEncoder(w io.Writer) *ByteEncoder {
	return &ByteEncoder{w: w, opt: defaultOptions()}
}

// NewPrettyByteEncoder returns a ByteEncoder that keeps tab, line feed and
// carriage return literal.
func NewPrettyByteEncoder(w io.Writer) *ByteEncoder {
	return &ByteEncoder{w: w}
}

// Write encodes p and writes the text to the underlying writer. It always
// consumes all of p; a trailing partial UTF-8 sequence is held for the next
// write.
func (e *ByteEncoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}
	total := len(p)
	e.out = e.out[:0]

	// Feed continuation bytes to the sequence held from the previous
	// write. Only continuation bytes can extend it; a rune-start byte
	// means the fragment is dead, so it is flushed as escapes and the
	// byte stays in p for the main walk.
	for e.nrest > 0 && len(p) > 0 {
		if utf8.RuneStart(p[0]) {
			e.out = encode.AppendBytes(e.out, e.rest[:e.nrest], e.opt, printable.Standard)
			e.nrest = 0
			break
		}
		e.rest[e.nrest] = p[0]
		e.nrest++
		p = p[1:]
		if utf8.FullRune(e.rest[:e.nrest]) {
			e.out = encode.AppendBytes(e.out, e.rest[:e.nrest], e.opt, printable.Standard)
			e.nrest = 0
		}
	}

	cut := len(p) - incompleteTail(p)
	e.out = encode.AppendBytes(e.out, p[:cut], e.opt, printable.Standard)
	e.nrest += copy(e.rest[e.nrest:], p[cut:])

	if err := e.flush(); err != nil {
		return 0, err
	}
	return total, nil
}

// Close flushes any held partial sequence in escaped form. Further writes
// fail with ErrClosed. Close is idempotent.
func (e *ByteEncoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return nil
	}
	e.closed = true
	if e.nrest == 0 {
		return nil
	}
	Logger().Debug("flushing unfinished sequence at close",
		zap.Int("held_bytes", e.nrest))
	e.out = encode.AppendBytes(e.out[:0], e.rest[:e.nrest], e.opt, printable.Standard)
	e.nrest = 0
	return e.flush()
}

func (e *ByteEncoder) flush() error {
	if len(e.out) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.out); err != nil {
		e.err = err
		return err
	}
	return nil
}

// incompleteTail is the length of the partial UTF-8 sequence ending p, or
// zero when p ends on a sequence boundary or on bytes that can never extend
// into a rune.
func incompleteTail(p []byte) int {
	end := len(p)
	lim := end - utf8.UTFMax
	if lim < 0 {
		lim = 0
	}
	start := end - 1
	for start >= lim && start >= 0 && !utf8.RuneStart(p[start]) {
		start--
	}
	if start < lim || start < 0 {
		return 0
	}
	if utf8.FullRune(p[start:]) {
		return 0
	}
	return end - start
}

// UnitEncoder encodes a stream of 16-bit elements as STFU-8 text written to
// an underlying writer. A lead surrogate at the end of a chunk is held so a
// pair split across writes still combines.
type UnitEncoder struct {
	w       io.Writer
	opt     encode.Options
	lead    uint16
	hasLead bool
	out     []byte
	err     error
	closed  bool
}

// NewUnitEncoder returns a UnitEncoder writing to w with the default
// formatting: tab, line feed and carriage return escaped.
func NewUnitEncoder(w io.Writer) *UnitEncoder {
	return &UnitEncoder{w: w, opt: defaultOptions()}
}

// NewPrettyUnitEncoder returns a UnitEncoder that keeps tab, line feed and
// carriage return literal.
func NewPrettyUnitEncoder(w io.Writer) *UnitEncoder {
	return &UnitEncoder{w: w}
}

// WriteUnits encodes p and writes the text to the underlying writer. It
// always consumes all of p; a trailing lead surrogate is held for the next
// write.
func (e *UnitEncoder) WriteUnits(p []uint16) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}
	total := len(p)
	e.out = e.out[:0]

	if e.hasLead && len(p) > 0 {
		if trailSurrogate(p[0]) {
			e.out = encode.AppendUnits(e.out, []uint16{e.lead, p[0]}, e.opt, printable.Standard)
			p = p[1:]
		} else {
			e.out = encode.AppendUnits(e.out, []uint16{e.lead}, e.opt, printable.Standard)
		}
		e.hasLead = false
	}

	cut := len(p)
	if cut > 0 && leadSurrogate(p[cut-1]) {
		cut--
		e.lead = p[cut]
		e.hasLead = true
	}
	e.out = encode.AppendUnits(e.out, p[:cut], e.opt, printable.Standard)

	if err := e.flush(); err != nil {
		return 0, err
	}
	return total, nil
}

// Close flushes a held lead surrogate in escaped form. Further writes fail
// with ErrClosed. Close is idempotent.
func (e *UnitEncoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return nil
	}
	e.closed = true
	if !e.hasLead {
		return nil
	}
	Logger().Debug("flushing dangling lead surrogate at close",
		zap.Uint16("unit", e.lead))
	e.out = encode.AppendUnits(e.out[:0], []uint16{e.lead}, e.opt, printable.Standard)
	e.hasLead = false
	return e.flush()
}

func (e *UnitEncoder) flush() error {
	if len(e.out) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.out); err != nil {
		e.err = err
		return err
	}
	return nil
}

func leadSurrogate(u uint16) bool  { return u >= 0xD800 && u <= 0xDBFF }
func trailSurrogate(u uint16) bool { return u >= 0xDC00 && u <= 0xDFFF }

package stream

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/stfu8/errors"
	"github.com/wippyai/stfu8/internal/decode"
	"github.com/wippyai/stfu8/internal/escape"
)

const chunkSize = 4096

// scanner drives one decode engine over a reader of encoded text. It buffers
// raw input, feeds complete tokens to the sink, and carries at most one
// partial token across refills.
type scanner struct {
	r       io.Reader
	sink    decode.Sink
	buf     []byte
	start   int
	end     int
	pos     int // absolute offset of buf[start] in the encoded text
	srcEOF  bool
	readErr error // reader failure, surfaced after buffered tokens drain
	err     error
}

func newScanner(r io.Reader, sk decode.Sink) *scanner {
	// The carried partial token is at most escape.MaxTokenLen-1 bytes, so
	// the buffer keeps room for a full refill beside it.
	return &scanner{r: r, sink: sk, buf: make([]byte, chunkSize+escape.MaxTokenLen)}
}

// advance grows the sink or sets s.err. It decodes every complete token in
// the buffer, then refills from the reader when more output is still needed.
func (s *scanner) advance() {
	for {
		for s.start < s.end {
			tok, size, derr := escape.Next(s.buf[s.start:s.end], s.srcEOF)
			if derr != nil {
				s.fail(derr)
				return
			}
			if size == 0 {
				break
			}
			if aerr := decode.Apply(tok, s.sink); aerr != nil {
				aerr.Token = string(s.buf[s.start : s.start+size])
				s.fail(aerr)
				return
			}
			s.start += size
			s.pos += size
		}
		if s.sink.Len() > 0 {
			return
		}
		if s.readErr != nil {
			s.err = s.readErr
			return
		}
		if s.srcEOF {
			s.err = io.EOF
			return
		}

		// Move the partial token to the front and refill.
		copy(s.buf, s.buf[s.start:s.end])
		s.end -= s.start
		s.start = 0
		n, err := s.r.Read(s.buf[s.end:])
		s.end += n
		switch {
		case err == io.EOF:
			s.srcEOF = true
		case err != nil:
			s.readErr = err
		}
	}
}

func (s *scanner) fail(derr *errors.DecodeError) {
	s.err = derr.Rebase(s.pos).WithWidth(s.sink.Width())
	Logger().Debug("stream decode failed",
		zap.String("kind", string(derr.Kind)),
		zap.Int("offset", derr.Offset))
}

// ByteDecoder decodes STFU-8 text read from an underlying reader into the
// 8-bit elements it represents. It implements io.Reader over the decoded
// elements; elements decoded before a violation are delivered before its
// error.
type ByteDecoder struct {
	sc   *scanner
	sink *decode.ByteSink
	off  int
}

// NewByteDecoder returns a ByteDecoder reading encoded text from r.
func NewByteDecoder(r io.Reader) *ByteDecoder {
	sink := decode.NewByteSink(chunkSize)
	return &ByteDecoder{sc: newScanner(r, sink), sink: sink}
}

func (d *ByteDecoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if out := d.sink.Bytes(); d.off < len(out) {
			n := copy(p, out[d.off:])
			d.off += n
			if d.off == len(out) {
				d.sink.Reset()
				d.off = 0
			}
			return n, nil
		}
		if d.sc.err != nil {
			return 0, d.sc.err
		}
		d.sc.advance()
	}
}

// UnitDecoder decodes STFU-8 text read from an underlying reader into the
// 16-bit elements it represents. Elements decoded before a violation are
// delivered before its error.
type UnitDecoder struct {
	sc   *scanner
	sink *decode.UnitSink
	off  int
}

// NewUnitDecoder returns a UnitDecoder reading encoded text from r.
func NewUnitDecoder(r io.Reader) *UnitDecoder {
	sink := decode.NewUnitSink(chunkSize / 2)
	return &UnitDecoder{sc: newScanner(r, sink), sink: sink}
}

// ReadUnits fills p with decoded elements, returning the count filled. At
// end of input it returns 0, io.EOF.
func (d *UnitDecoder) ReadUnits(p []uint16) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if out := d.sink.Units(); d.off < len(out) {
			n := copy(p, out[d.off:])
			d.off += n
			if d.off == len(out) {
				d.sink.Reset()
				d.off = 0
			}
			return n, nil
		}
		if d.sc.err != nil {
			return 0, d.sc.err
		}
		d.sc.advance()
	}
}

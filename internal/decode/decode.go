// Package decode implements the STFU-8 decoder: a single tokenizing engine
// feeding width-specific sinks.
package decode

import (
	"github.com/wippyai/stfu8/errors"
	"github.com/wippyai/stfu8/internal/escape"
)

// Apply dispatches one token to the sink. Literal scalars and named or `\xXX`
// escapes always apply; a `\uXXXXXX` value must either be a Unicode scalar
// value or fit in one element of the sink's width.
func Apply(tok escape.Token, sk Sink) *errors.DecodeError {
	switch tok.Kind {
	case escape.Literal:
		sk.PutScalar(rune(tok.Value))
	case escape.Named, escape.ByteLit:
		sk.PutRaw(tok.Value)
	case escape.WideLit:
		switch {
		case escape.ValidScalar(tok.Value):
			sk.PutScalar(rune(tok.Value))
		case tok.Value <= sk.Max():
			sk.PutRaw(tok.Value)
		default:
			return errors.OutOfRange(0, "", tok.Value)
		}
	}
	return nil
}

// Run decodes all of data into sk, failing fast on the first violation.
func Run(data []byte, sk Sink) *errors.DecodeError {
	for i := 0; i < len(data); {
		tok, size, err := escape.Next(data[i:], true)
		if err != nil {
			return err.Rebase(i).WithWidth(sk.Width())
		}
		if err := Apply(tok, sk); err != nil {
			err.Token = string(data[i : i+size])
			return err.Rebase(i).WithWidth(sk.Width())
		}
		i += size
	}
	return nil
}

// Bytes decodes encoded text into the 8-bit element sequence it represents.
func Bytes(s string) ([]byte, error) {
	sk := NewByteSink(len(s))
	if err := Run([]byte(s), sk); err != nil {
		return nil, err
	}
	return sk.Bytes(), nil
}

// Units decodes encoded text into the 16-bit element sequence it represents.
func Units(s string) ([]uint16, error) {
	sk := NewUnitSink(len(s))
	if err := Run([]byte(s), sk); err != nil {
		return nil, err
	}
	return sk.Units(), nil
}

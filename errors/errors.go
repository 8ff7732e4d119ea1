package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Width indicates which element width a decode was targeting
type Width string

const (
	WidthU8  Width = "u8"  // 8-bit byte elements
	WidthU16 Width = "u16" // 16-bit code-unit elements
)

// Kind categorizes the decode failure
type Kind string

const (
	KindTrailingBackslash  Kind = "trailing_backslash"  // input ends inside an escape
	KindUnrecognizedEscape Kind = "unrecognized_escape" // `\` followed by none of `\ t n r x u`
	KindMalformedHex       Kind = "malformed_hex"       // wrong digit count or non-hex digit
	KindOutOfRange         Kind = "out_of_range"        // escape value unrepresentable in the width
	KindInvalidUTF8        Kind = "invalid_utf8"        // encoded text is not well-formed UTF-8
)

// DecodeError is the structured error type returned by every decode surface
type DecodeError struct {
	Cause  error
	Kind   Kind
	Width  Width
	Token  string // offending escape text, when one was parsed
	Detail string
	Value  uint32 // parsed numeric value, for out_of_range
	Offset int    // byte offset of the violation in the encoded text
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	var b strings.Builder

	b.WriteString("[decode")
	if e.Width != "" {
		b.WriteByte('/')
		b.WriteString(string(e.Width))
	}
	b.WriteString("] ")
	b.WriteString(string(e.Kind))
	b.WriteString(" at offset ")
	b.WriteString(strconv.Itoa(e.Offset))

	if e.Token != "" {
		b.WriteString(": ")
		b.WriteString(strconv.Quote(e.Token))
	}

	if e.Detail != "" {
		if e.Token != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty Width
// matches either width; a target with an empty Kind matches any kind.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Width != "" && t.Width != e.Width {
		return false
	}
	return true
}

// WithWidth stamps the decode width onto the error and returns it
func (e *DecodeError) WithWidth(w Width) *DecodeError {
	e.Width = w
	return e
}

// Rebase shifts the error offset by base, converting a token-relative offset
// into an absolute position in the full input
func (e *DecodeError) Rebase(base int) *DecodeError {
	e.Offset += base
	return e
}

// Convenience constructors for the decode failure modes

// TrailingBackslash creates an unterminated-escape error
func TrailingBackslash(offset int) *DecodeError {
	return &DecodeError{
		Kind:   KindTrailingBackslash,
		Offset: offset,
		Detail: "input ends inside an escape",
	}
}

// UnrecognizedEscape creates an error for `\` followed by an unknown character
func UnrecognizedEscape(offset int, token string) *DecodeError {
	return &DecodeError{
		Kind:   KindUnrecognizedEscape,
		Offset: offset,
		Token:  token,
		Detail: `escape must be one of \\ \t \n \r \xXX \uXXXXXX`,
	}
}

// MalformedHex creates an error for a `\x`/`\u` body with a bad digit
func MalformedHex(offset int, token string) *DecodeError {
	return &DecodeError{
		Kind:   KindMalformedHex,
		Offset: offset,
		Token:  token,
		Detail: "expected fixed-length hexadecimal digits",
	}
}

// OutOfRange creates an error for an escape value that is neither a valid
// Unicode scalar value nor representable in the target element width
func OutOfRange(offset int, token string, value uint32) *DecodeError {
	return &DecodeError{
		Kind:   KindOutOfRange,
		Offset: offset,
		Token:  token,
		Value:  value,
		Detail: fmt.Sprintf("value 0x%X is not a scalar value and does not fit the element width", value),
	}
}

// InvalidUTF8 creates an error for ill-formed UTF-8 in the encoded text
func InvalidUTF8(offset int, data []byte) *DecodeError {
	preview := data
	if len(preview) > 8 {
		preview = preview[:8]
	}
	return &DecodeError{
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: % x", preview),
	}
}

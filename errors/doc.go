// Package errors provides the structured error type for STFU-8 decoding.
//
// Every decode failure is a *DecodeError categorized by Kind (what rule was
// violated) and stamped with the Width of the decode that failed and the byte
// Offset of the violation in the encoded text.
//
// Use the convenience constructors:
//
//	err := errors.UnrecognizedEscape(5, `\b`)
//	err := errors.OutOfRange(0, "\\u00DEED", 0xDEED)
//
// Engines decorate errors with the width they were decoding for:
//
//	return errors.TrailingBackslash(off).WithWidth(errors.WidthU8)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

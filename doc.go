// Package stfu8 implements Sorta Text Format in UTF-8, a reversible text
// encoding for arbitrary 8-bit and 16-bit element sequences.
//
// STFU-8 renders almost-text data as readable UTF-8. Visible characters pass
// through literally; everything else (control characters, invalid bytes,
// unpaired surrogates) is written as a backslash escape. Decoding restores
// the original elements exactly, or fails fast with a structured error.
//
// # Architecture Overview
//
// The library is organized into a small facade over width-agnostic internals:
//
//	stfu8/                  Root package with the encode/decode API
//	├── stream/             Incremental encoders and decoders over io interfaces
//	├── errors/             Structured decode error types
//	├── cmd/stfu8/          Command line encoder/decoder and escape inspector
//	└── internal/
//	    ├── escape/         Escape grammar: tokens and the incremental tokenizer
//	    ├── decode/         One decode engine feeding width-specific sinks
//	    ├── encode/         Two encode walkers sharing one escape policy
//	    └── printable/      Visibility classification of scalar values
//
// # Quick Start
//
// Encode a byte sequence and get it back:
//
//	text := stfu8.EncodeU8([]byte{0x66, 0x6F, 0x6F, 0x00, 0xFF})
//	fmt.Println(text) // foo\x00\xFF
//
//	raw, err := stfu8.DecodeU8(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// raw == []byte{0x66, 0x6F, 0x6F, 0x00, 0xFF}
//
// # Escape Forms
//
// Five escape forms cover everything a backslash can introduce:
//
//	\\        the backslash itself (element 0x5C)
//	\t \n \r  tab, line feed, carriage return
//	\xXX      one element, two hex digits, at most 0xFF
//	\uXXXXXX  six hex digits: a Unicode scalar value, or one element
//	          that fits the target width
//
// Hex digits are emitted uppercase and accepted in either case. An escape
// always covers exactly one element of the original sequence, except that a
// `\uXXXXXX` carrying a scalar value decodes to that scalar's native
// encoding: UTF-8 bytes for u8, a surrogate pair for u16 when above the
// basic plane.
//
// # Widths
//
// The u8 functions treat data as 8-bit elements and pass well-formed,
// visible UTF-8 through literally. The u16 functions treat data as 16-bit
// elements, combining well-formed surrogate pairs into their scalar value.
// Both encoders are total: any input sequence encodes. Both decoders are
// strict: ill-formed text is an error, never a silent substitution.
//
// The widths are distinct formats. Text encoded from bytes generally does
// not decode to the equivalent units: "é" decodes to two u8 elements but a
// single u16 element.
//
// # Pretty Encoding
//
// By default tab, line feed and carriage return are escaped, making the
// encoded text single-line safe. The pretty variants keep those three
// literal so multi-line data stays multi-line:
//
//	stfu8.EncodeU8Pretty([]byte("a\tb\nc"))  // "a\tb\nc" unchanged
//
// Either choice round-trips; decoding accepts both forms.
//
// # Streaming
//
// The stream package provides the same codec incrementally: encoders that
// wrap an io.Writer and decoders that wrap an io.Reader, holding only the
// bytes of one unfinished token between calls. Escapes split across chunk
// boundaries are handled transparently.
package stfu8

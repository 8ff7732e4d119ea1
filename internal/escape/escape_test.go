package escape

import (
	"errors"
	"testing"

	stfu8errors "github.com/wippyai/stfu8/errors"
)

func TestNextTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		value uint32
		size  int
	}{
		{"ascii literal", "a", Literal, 'a', 1},
		{"two byte literal", "é", Literal, 0xE9, 2},
		{"three byte literal", "中", Literal, 0x4E2D, 3},
		{"four byte literal", "𠜎", Literal, 0x2070E, 4},
		{"backslash escape", `\\`, Named, 0x5C, 2},
		{"tab escape", `\t`, Named, 0x09, 2},
		{"newline escape", `\n`, Named, 0x0A, 2},
		{"carriage return escape", `\r`, Named, 0x0D, 2},
		{"hex byte", `\x7F`, ByteLit, 0x7F, 4},
		{"hex byte lowercase", `\xff`, ByteLit, 0xFF, 4},
		{"hex byte mixed case", `\xaB`, ByteLit, 0xAB, 4},
		{"hex byte zero", `\x00`, ByteLit, 0x00, 4},
		{"wide value", "\\u00DEED", WideLit, 0xDEED, 8},
		{"wide value lowercase", "\\u02070e", WideLit, 0x2070E, 8},
		{"wide value max", "\\uFFFFFF", WideLit, 0xFFFFFF, 8},
		{"token then more input", `\x01\x02`, ByteLit, 0x01, 4},
		{"literal then escape", `a\n`, Literal, 'a', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, size, err := Next([]byte(tt.input), true)
			if err != nil {
				t.Fatalf("Next(%q) error: %v", tt.input, err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Value != tt.value {
				t.Errorf("Value = 0x%X, want 0x%X", tok.Value, tt.value)
			}
			if size != tt.size {
				t.Errorf("size = %d, want %d", size, tt.size)
			}
		})
	}
}

func TestNextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  stfu8errors.Kind
	}{
		{"lone backslash", `\`, stfu8errors.KindTrailingBackslash},
		{"unrecognized b", `\b`, stfu8errors.KindUnrecognizedEscape},
		{"unrecognized f", `\foo`, stfu8errors.KindUnrecognizedEscape},
		{"unrecognized uppercase X", `\X41`, stfu8errors.KindUnrecognizedEscape},
		{"unrecognized multibyte", `\é`, stfu8errors.KindUnrecognizedEscape},
		{"hex byte short", `\x4`, stfu8errors.KindMalformedHex},
		{"hex byte empty", `\x`, stfu8errors.KindMalformedHex},
		{"hex byte bad digit", `\xZ1`, stfu8errors.KindMalformedHex},
		{"hex byte bad second digit", `\x4G`, stfu8errors.KindMalformedHex},
		{"wide short", "\\u00DEE", stfu8errors.KindMalformedHex},
		{"wide bad digit", "\\u00DEEZ", stfu8errors.KindMalformedHex},
		{"stray continuation byte", "\x80", stfu8errors.KindInvalidUTF8},
		{"truncated sequence at eof", "\xE2\x80", stfu8errors.KindInvalidUTF8},
		{"overlong encoding", "\xC0\xAF", stfu8errors.KindInvalidUTF8},
		{"surrogate encoding", "\xED\xA0\x80", stfu8errors.KindInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Next([]byte(tt.input), true)
			if err == nil {
				t.Fatalf("Next(%q) succeeded, want %s", tt.input, tt.kind)
			}
			if !errors.Is(err, &stfu8errors.DecodeError{Kind: tt.kind}) {
				t.Errorf("Next(%q) kind = %s, want %s", tt.input, err.Kind, tt.kind)
			}
		})
	}
}

// A chunk ending inside a possibly-valid token must request more input
// rather than fail, so streaming decoders can refill.
func TestNextNeedsMoreInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"lone backslash", `\`},
		{"hex prefix", `\x`},
		{"hex one digit", `\x4`},
		{"wide prefix", `\u`},
		{"wide five digits", "\\u00DEE"},
		{"utf8 lead only", "\xE2"},
		{"utf8 two of three", "\xE2\x80"},
		{"utf8 three of four", "\xF0\xA0\x9C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, size, err := Next([]byte(tt.input), false)
			if err != nil {
				t.Fatalf("Next(%q, atEOF=false) error: %v", tt.input, err)
			}
			if size != 0 {
				t.Errorf("size = %d, want 0 (request more input)", size)
			}
			if tok.Kind != Literal || tok.Value != 0 {
				t.Errorf("token = %+v, want zero token", tok)
			}
		})
	}

	// A bad hex digit is final even when more input could follow.
	if _, _, err := Next([]byte(`\xZ`), false); err == nil {
		t.Error("bad hex digit should fail fast mid-stream")
	}
	// So is an unrecognized escape character.
	if _, _, err := Next([]byte(`\q`), false); err == nil {
		t.Error("unrecognized escape should fail fast mid-stream")
	}
}

func TestAppendEscapes(t *testing.T) {
	if got := string(AppendByteEscape(nil, 0x0D)); got != `\x0D` {
		t.Errorf("AppendByteEscape(0x0D) = %q, want %q", got, `\x0D`)
	}
	if got := string(AppendByteEscape(nil, 0xFE)); got != `\xFE` {
		t.Errorf("AppendByteEscape(0xFE) = %q, want %q", got, `\xFE`)
	}
	if got := string(AppendUnitEscape(nil, 0xDEED)); got != "\\u00DEED" {
		t.Errorf("AppendUnitEscape(0xDEED) = %q, want %q", got, "\\u00DEED")
	}
	if got := string(AppendUnitEscape(nil, 0x7)); got != "\\u000007" {
		t.Errorf("AppendUnitEscape(0x7) = %q, want %q", got, "\\u000007")
	}

	// Appends extend, not replace.
	buf := []byte("x")
	buf = AppendByteEscape(buf, 0x01)
	if string(buf) != `x\x01` {
		t.Errorf("append chain = %q, want %q", buf, `x\x01`)
	}
}

func TestValidScalar(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		valid bool
	}{
		{"zero", 0, true},
		{"ascii", 0x41, true},
		{"just before surrogates", 0xD7FF, true},
		{"first lead surrogate", 0xD800, false},
		{"mid surrogate", 0xDEED, false},
		{"last trail surrogate", 0xDFFF, false},
		{"just after surrogates", 0xE000, true},
		{"max scalar", 0x10FFFF, true},
		{"beyond unicode", 0x110000, false},
		{"max wide escape", 0xFFFFFF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidScalar(tt.v); got != tt.valid {
				t.Errorf("ValidScalar(0x%X) = %v, want %v", tt.v, got, tt.valid)
			}
		})
	}
}

package printable

import "testing"

func TestStandardVisible(t *testing.T) {
	tests := []struct {
		name    string
		r       rune
		visible bool
	}{
		{"lowercase letter", 'a', true},
		{"uppercase letter", 'Z', true},
		{"digit", '7', true},
		{"ASCII space", ' ', true},
		{"period", '.', true},
		{"backslash is punctuation", '\\', true},
		{"currency symbol", '¤', true},
		{"combining mark", 0x0300, true},
		{"no-break space", 0x00A0, true},
		{"greek letter", 'α', true},
		{"CJK ideograph", '中', true},
		{"emoji", '😀', true},
		{"replacement char", 0xFFFD, true},
		{"astral ideograph", 0x2070E, true},

		{"NUL", 0x00, false},
		{"BEL", 0x07, false},
		{"tab", '\t', false},
		{"line feed", '\n', false},
		{"carriage return", '\r', false},
		{"DEL", 0x7F, false},
		{"NEL control", 0x85, false},
		{"soft hyphen format", 0x00AD, false},
		{"zero width space format", 0x200B, false},
		{"line separator", 0x2028, false},
		{"paragraph separator", 0x2029, false},
		{"private use", 0xE000, false},
		{"unassigned", 0x0378, false},
		{"surrogate", 0xD800, false},
		{"max code point unassigned", 0x10FFFF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Standard.Visible(tt.r); got != tt.visible {
				t.Errorf("Visible(0x%X) = %v, want %v", tt.r, got, tt.visible)
			}
		})
	}
}

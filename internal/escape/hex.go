package escape

const hexUpper = "0123456789ABCDEF"

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// AppendByteEscape appends the `\xXX` form of b to dst.
func AppendByteEscape(dst []byte, b byte) []byte {
	return append(dst, Backslash, 'x', hexUpper[b>>4], hexUpper[b&0xF])
}

// AppendUnitEscape appends the `\uXXXXXX` form of the low 24 bits of v to dst.
func AppendUnitEscape(dst []byte, v uint32) []byte {
	return append(dst, Backslash, 'u',
		hexUpper[v>>20&0xF], hexUpper[v>>16&0xF],
		hexUpper[v>>12&0xF], hexUpper[v>>8&0xF],
		hexUpper[v>>4&0xF], hexUpper[v&0xF])
}

package ldif

// LineWidth is the maximum column count per physical output line
// before Encode starts a continuation line.
const LineWidth = 76

// continuationMarker is the legacy in-band byte the historical line
// joiner used to mark former physical line breaks. Decode removes
// every occurrence before interpreting the value.
const continuationMarker = 0x01

// base64Alphabet maps 6-bit groups to their base64 symbol.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// invalidSymbol marks non-alphabet entries in base64Inverse.
const invalidSymbol = 0xff

// base64Inverse maps an ASCII byte to its 6-bit value, or
// invalidSymbol for bytes outside the alphabet. Indexed with the low
// seven bits only; callers must reject bytes with the high bit set.
var base64Inverse = [128]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0x3e, 0xff, 0xff, 0xff, 0x3f,
	0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x3b,
	0x3c, 0x3d, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
	0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16,
	0x17, 0x18, 0x19, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30,
	0x31, 0x32, 0x33, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// isSpace reports whether b is ASCII whitespace, matching C isspace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isPrint reports whether b is a printable ASCII byte.
func isPrint(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

package fonts

import (
	"fmt"
	"unicode/utf8"
)

// All text in the library is single-byte WinAnsiEncoding. Codepoints up to
// U+00FF pass through as their low byte; beyond that only the handful of
// codepoints below have WinAnsi slots, everything else is unsupported.
var winAnsiOverrides = map[rune]byte{
	'Š': 0x8A,
	'š': 0x9A,
	'Ž': 0x8E,
	'ž': 0x9E,
	'€': 0x80,
}

// EncodeNext decodes the first UTF-8 sequence of s and maps it to its
// WinAnsi byte. It returns the byte, the number of input bytes consumed,
// and an error for malformed UTF-8 or an unrepresentable codepoint.
func EncodeNext(s string) (byte, int, error) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0, fmt.Errorf("invalid UTF-8 sequence at %q", head(s))
	}
	if r <= 0xFF {
		return byte(r), n, nil
	}
	if b, ok := winAnsiOverrides[r]; ok {
		return b, n, nil
	}
	return 0, 0, fmt.Errorf("codepoint U+%04X has no WinAnsi encoding", r)
}

func head(s string) string {
	if len(s) > 4 {
		return s[:4]
	}
	return s
}

package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var doubleUnescape = map[rune]rune{
	'\a': 'a', '\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r',
	'\t': 't', '\v': 'v', '\\': '\\', '"': '"',
}

// Quote returns s enclosed in double quotes. Quotes, backslashes and control
// characters are escaped; other printable characters are kept as is.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for s != "" {
		r, w := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && w == 1 {
			// Invalid UTF-8; encode the byte as a hex escape.
			sb.WriteString(`\x`)
			writeHex(&sb, rune(s[0]), 2)
		} else if e, ok := doubleUnescape[r]; ok {
			sb.WriteByte('\\')
			sb.WriteRune(e)
		} else if unicode.IsPrint(r) && r != utf8.RuneError {
			sb.WriteRune(r)
		} else if r <= 0x7f {
			sb.WriteString(`\x`)
			writeHex(&sb, r, 2)
		} else if r <= 0xffff {
			sb.WriteString(`\u`)
			writeHex(&sb, r, 4)
		} else {
			sb.WriteString(`\U`)
			writeHex(&sb, r, 8)
		}
		s = s[w:]
	}
	sb.WriteByte('"')
	return sb.String()
}

const hexDigits = "0123456789abcdef"

func writeHex(sb *strings.Builder, r rune, n int) {
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(hexDigits[(r>>(4*i))&0xf])
	}
}

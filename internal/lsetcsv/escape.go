package lsetcsv

import (
	"strconv"
	"strings"
)

// escapeSentinel introduces an escaped character: the sentinel byte followed
// by the character's decimal code. Lsetwatch uses ASCII BEL.
const escapeSentinel = '\a'

// reservedChars are the only characters the format ever escapes: the column
// delimiter, the quote character, and the list separator.
const reservedChars = `;"|`

// Escape replaces every reserved character in s with the sentinel followed by
// the character's decimal code. All other text, including non-ASCII, passes
// through untouched. Unescape(Escape(s)) == s for any s free of sentinel
// bytes.
func Escape(s string) string {
	if !strings.ContainsAny(s, reservedChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ';', '"', '|':
			b.WriteByte(escapeSentinel)
			b.WriteString(strconv.Itoa(int(c)))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape: every sentinel followed by a decimal digit run is
// replaced with the character at that code point.
//
// The digit run has no terminator, so a decoded escape immediately followed
// by a literal digit is ambiguous. The policy, matching Lsetwatch itself, is
// to consume up to three digits greedily and map the whole run: "\a599"
// decodes to U+0257, not to ';' + "9". A sentinel not followed by a digit
// passes through unchanged.
func Unescape(s string) string {
	if !strings.ContainsRune(s, escapeSentinel) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == escapeSentinel {
			j := i + 1
			for j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j > i+1 {
				code, _ := strconv.Atoi(s[i+1 : j])
				b.WriteRune(rune(code))
				i = j
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

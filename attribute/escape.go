package attribute

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// Escape renders one attribute field. The field is NFC-normalized, then the
// characters the grammar reserves — the backslash, the block and group
// delimiters, the field separator — as well as control characters and
// everything outside printable ASCII are replaced with \uXXXX escapes
// (UTF-16 code units, so a character outside the basic multilingual plane
// escapes as a surrogate pair). The result is always printable ASCII.
func Escape(field string) string {
	var b strings.Builder
	for _, r := range norm.NFC.String(field) {
		switch {
		case r == '\\' || r == '%' || r == '*' || r == ',':
			escapeRune(&b, r)
		case r < 0x20 || r > 0x7e:
			escapeRune(&b, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeRune(b *strings.Builder, r rune) {
	if r1, r2 := utf16.EncodeRune(r); r1 != 0xfffd {
		fmt.Fprintf(b, `\u%04X\u%04X`, r1, r2)
		return
	}
	fmt.Fprintf(b, `\u%04X`, r)
}

package xml

import (
	"strings"
)

// EscapeText returns s with the characters that are significant in XML
// character data replaced by entities: '&', '<' and '>'. Any other
// character, quotes and whitespace included, is left untouched.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escapeString(&b, s, false)
	return b.String()
}

// EscapeAttr returns s escaped for use inside a double quoted attribute
// value. In addition to the EscapeText replacements '"' becomes &quot;.
func EscapeAttr(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escapeString(&b, s, true)
	return b.String()
}

// escapeString writes s to w with XML entities substituted. Every byte is
// inspected exactly once, so entities written for '&' are never escaped a
// second time.
func escapeString(w writer, s string, escapeQuote bool) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '"':
			if !escapeQuote {
				continue
			}
			esc = escQuot
		default:
			continue
		}
		w.WriteString(s[last:i])
		w.WriteString(esc)
		last = i + 1
	}
	w.WriteString(s[last:])
}

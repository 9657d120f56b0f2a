package answer

import "strings"

// Escape prepares s for embedding in a double-quoted DSL string literal.
// Backslashes are escaped before quotes; the reverse order would re-escape
// the backslashes introduced by quote escaping. Apostrophes pass through,
// since emitted strings are always double-quoted.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Quote returns s as a double-quoted DSL string literal.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// Unescape reverses Escape: \\ becomes a backslash and \" a quote.
// An unrecognized escape keeps both characters, matching how the DSL's
// host language leaves unknown escapes alone.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\', '"', '\'':
				sb.WriteByte(s[i+1])
				i++
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

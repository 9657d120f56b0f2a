package parser

import "strings"

// Low-level text helpers for the line-oriented scanner. All of them treat
// single- and double-quoted string literals as opaque: brackets and
// separators inside quotes never count.

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentOf measures leading whitespace; a tab counts as four columns.
func indentOf(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

// walkTopLevel calls visit for every byte of s outside string literals,
// with the current bracket depth. Returns the net bracket delta.
func walkTopLevel(s string, visit func(i int, ch byte, depth int) bool) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		if visit != nil && !visit(i, ch, depth) {
			return depth
		}
	}
	return depth
}

// bracketDelta returns opened-minus-closed brackets outside string literals.
// A positive delta means the statement continues on the next line.
func bracketDelta(s string) int {
	return walkTopLevel(s, nil)
}

// splitAssign splits s at the first top-level '=' that is an assignment, not
// part of a comparison operator.
func splitAssign(s string) (before, after string, found bool) {
	pos := -1
	walkTopLevel(s, func(i int, ch byte, depth int) bool {
		if depth != 0 || ch != '=' {
			return true
		}
		if i+1 < len(s) && s[i+1] == '=' {
			return true
		}
		if i > 0 && strings.IndexByte("=!<>", s[i-1]) >= 0 {
			return true
		}
		pos = i
		return false
	})
	if pos < 0 {
		return s, "", false
	}
	return s[:pos], s[pos+1:], true
}

// splitTopLevel splits s at the first top-level occurrence of sep.
func splitTopLevel(s string, sep byte) (before, after string, found bool) {
	pos := -1
	walkTopLevel(s, func(i int, ch byte, depth int) bool {
		if depth == 0 && ch == sep {
			pos = i
			return false
		}
		return true
	})
	if pos < 0 {
		return s, "", false
	}
	return s[:pos], s[pos+1:], true
}

// splitArgs splits s on top-level commas. Empty segments are dropped so a
// trailing comma does not produce a phantom argument.
func splitArgs(s string) []string {
	var parts []string
	start := 0
	walkTopLevel(s, func(i int, ch byte, depth int) bool {
		if depth == 0 && ch == ',' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		return true
	})
	parts = append(parts, s[start:])

	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// scanIdent returns the leading identifier of s and the remainder.
func scanIdent(s string) (ident, rest string) {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || i > 0 && ch >= '0' && ch <= '9' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// scanDottedName returns a possibly dotted name (pkg.Base) and the remainder.
func scanDottedName(s string) (name, rest string) {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '_' || ch == '.' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || i > 0 && ch >= '0' && ch <= '9' {
			i++
			continue
		}
		break
	}
	name = s[:i]
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return "", s
	}
	return name, s[i:]
}

// unwrapBracket strips a wrapper like "Optional[" ... "]" and returns the
// interior. The closing bracket must be the wrapper's own.
func unwrapBracket(s, prefix string) (inner string, ok bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, "]") {
		return "", false
	}
	inner = s[len(prefix) : len(s)-1]
	if bracketDelta(inner) != 0 {
		return "", false
	}
	return inner, true
}

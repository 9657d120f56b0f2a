package parser

import (
	"strconv"
	"strings"
)

// Best-effort reader for the literal expressions a set_correct body assigns:
// booleans, integers, floats, quoted strings, lists of those, and one level
// of dict keyed by quoted strings. Anything else is reported as not-a-literal
// and left to the verbatim method text.

type dictEntry struct {
	key   string
	value any
}

// parseValue reads a scalar or list literal occupying the whole string.
func parseValue(s string) (any, bool) {
	v, rest, ok := consumeValue(s)
	if !ok || strings.TrimSpace(rest) != "" {
		return nil, false
	}
	return v, true
}

// parseString reads a quoted string occupying the whole string.
func parseString(s string) (string, bool) {
	v, rest, ok := consumeString(strings.TrimSpace(s))
	if !ok || strings.TrimSpace(rest) != "" {
		return "", false
	}
	return v, true
}

// parseDict reads a {"key": value, ...} literal occupying the whole string.
// Entries come back in source order; map iteration order never leaks into
// the model.
func parseDict(s string) ([]dictEntry, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' || bracketDelta(s) != 0 {
		return nil, false
	}
	inner := s[1 : len(s)-1]
	var entries []dictEntry
	for _, part := range splitArgs(inner) {
		keyText, valText, found := splitTopLevel(part, ':')
		if !found {
			return nil, false
		}
		key, ok := parseString(keyText)
		if !ok {
			return nil, false
		}
		val, ok := parseValue(valText)
		if !ok {
			return nil, false
		}
		entries = append(entries, dictEntry{key: key, value: val})
	}
	return entries, true
}

func consumeValue(s string) (any, string, bool) {
	s = strings.TrimLeft(s, " \t")
	switch {
	case s == "":
		return nil, "", false
	case strings.HasPrefix(s, "True"):
		return true, s[len("True"):], true
	case strings.HasPrefix(s, "False"):
		return false, s[len("False"):], true
	case strings.HasPrefix(s, "None"):
		return nil, s[len("None"):], true
	case s[0] == '"' || s[0] == '\'':
		return consumeString(s)
	case s[0] == '[':
		return consumeList(s)
	}
	return consumeNumber(s)
}

// consumeString reads a leading quoted string, unescaping \\, \" and \'.
// Unknown escapes keep both characters.
func consumeString(s string) (string, string, bool) {
	if s == "" || s[0] != '"' && s[0] != '\'' {
		return "", s, false
	}
	quote := s[0]
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if ch == '\\' && i+1 < len(s) {
			next := s[i+1]
			if next == '\\' || next == '"' || next == '\'' {
				sb.WriteByte(next)
				i++
				continue
			}
			sb.WriteByte(ch)
			continue
		}
		if ch == quote {
			return sb.String(), s[i+1:], true
		}
		sb.WriteByte(ch)
	}
	return "", s, false
}

func consumeList(s string) (any, string, bool) {
	rest := s[1:]
	var items []any
	for {
		rest = strings.TrimLeft(rest, " \t,")
		if rest == "" {
			return nil, s, false
		}
		if rest[0] == ']' {
			return items, rest[1:], true
		}
		v, r, ok := consumeValue(rest)
		if !ok {
			return nil, s, false
		}
		items = append(items, v)
		rest = r
	}
}

func consumeNumber(s string) (any, string, bool) {
	end := len(s)
	walkTopLevel(s, func(i int, ch byte, depth int) bool {
		if ch == ',' || ch == ']' || ch == '}' || ch == ')' || ch == ' ' || ch == '\t' {
			end = i
			return false
		}
		return true
	})
	token := s[:end]
	if n, err := strconv.Atoi(token); err == nil {
		return n, s[end:], true
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, s[end:], true
	}
	return nil, s, false
}

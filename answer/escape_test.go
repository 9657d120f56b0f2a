package answer

import "testing"

func TestEscapeQuotes(t *testing.T) {
	if got := Escape(`say "hi"`); got != `say \"hi\"` {
		t.Errorf("expected %q, got %q", `say \"hi\"`, got)
	}
}

func TestEscapeBackslashBeforeQuote(t *testing.T) {
	// Escaping quotes first would turn `\"` into `\\\\"` instead.
	if got := Escape(`\"`); got != `\\\"` {
		t.Errorf("expected %q, got %q", `\\\"`, got)
	}
}

func TestEscapeLeavesApostrophes(t *testing.T) {
	in := "Number of Crohn's cases"
	if got := Escape(in); got != in {
		t.Errorf("apostrophe must pass through, got %q", got)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote(`a"b`); got != `"a\"b"` {
		t.Errorf("expected %q, got %q", `"a\"b"`, got)
	}
}

func TestUnescapeReversesEscape(t *testing.T) {
	inputs := []string{
		``,
		`plain`,
		`say "hi"`,
		`back\slash`,
		`mixed \" and \\ sequences`,
		`Crohn's disease`,
		`ünïcode — ok`,
		`trailing backslash \`,
	}
	for _, in := range inputs {
		if got := Unescape(Escape(in)); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestUnescapeKeepsUnknownEscapes(t *testing.T) {
	if got := Unescape(`a\nb`); got != `a\nb` {
		t.Errorf("expected %q, got %q", `a\nb`, got)
	}
}

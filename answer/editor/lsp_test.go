package editor

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseParseFailure(t *testing.T) {
	diagnostics := Diagnose("not a valid class")
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diagnostics))
	}
	d := diagnostics[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Error("parse failure must be an error")
	}
	if d.Message != "Could not find class definition" {
		t.Errorf("unexpected message %q", d.Message)
	}
}

func TestDiagnoseValidatorFindings(t *testing.T) {
	source := `class Answer(BaseAnswer):
    choice: Literal[]

    def set_correct(self):
        self.correct = "a"

    def verify(self):
        return True
`
	diagnostics := Diagnose(source)
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diagnostics)
	}
	d := diagnostics[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityWarning {
		t.Error("validator findings must be warnings")
	}
	if d.Message != "Literal field choice must have at least one value" {
		t.Errorf("unexpected message %q", d.Message)
	}
	if d.Range.Start.Line != 1 {
		t.Errorf("diagnostic must anchor to the field line, got line %d", d.Range.Start.Line)
	}
}

func TestDiagnoseCleanDocument(t *testing.T) {
	source := `class Answer(BaseAnswer):
    answer: bool

    def set_correct(self):
        self.correct = True

    def verify(self):
        return bool(self.answer) is bool(self.correct)
`
	if diagnostics := Diagnose(source); len(diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", diagnostics)
	}
}

func TestDocuments(t *testing.T) {
	docs := NewDocuments()
	docs.Set("file:///a.py", "one")
	if text, ok := docs.Get("file:///a.py"); !ok || text != "one" {
		t.Errorf("got %q, %v", text, ok)
	}
	docs.Delete("file:///a.py")
	if _, ok := docs.Get("file:///a.py"); ok {
		t.Error("document survived Delete")
	}
}

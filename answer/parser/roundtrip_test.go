package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/anskit/answer"
)

// checkFieldEquiv compares the field attributes the model promises to
// round-trip. PythonType is excluded: the parser always records the emitted
// annotation text, which is absent on hand-built definitions.
func checkFieldEquiv(t *testing.T, want, got *answer.FieldDefinition) {
	t.Helper()
	if got.Name != want.Name {
		t.Errorf("name: expected %q, got %q", want.Name, got.Name)
	}
	if got.Type != want.Type {
		t.Errorf("%s: type expected %q, got %q", want.Name, want.Type, got.Type)
	}
	if (got.Description == nil) != (want.Description == nil) {
		t.Errorf("%s: description presence changed", want.Name)
	} else if want.Description != nil && *got.Description != *want.Description {
		t.Errorf("%s: description expected %q, got %q", want.Name, *want.Description, *got.Description)
	}
	if got.Required != want.Required {
		t.Errorf("%s: required expected %v, got %v", want.Name, want.Required, got.Required)
	}
	if !reflect.DeepEqual(got.LiteralValues, want.LiteralValues) {
		t.Errorf("%s: literal values expected %v, got %v", want.Name, want.LiteralValues, got.LiteralValues)
	}
	if got.ListItemType != want.ListItemType {
		t.Errorf("%s: list item type expected %q, got %q", want.Name, want.ListItemType, got.ListItemType)
	}
	if (got.Default == nil) != (want.Default == nil) {
		t.Errorf("%s: default presence changed", want.Name)
	} else if want.Default != nil && *got.Default != *want.Default {
		t.Errorf("%s: default expected %q, got %q", want.Name, *want.Default, *got.Default)
	}
	if !reflect.DeepEqual(got.CorrectValue, want.CorrectValue) {
		t.Errorf("%s: correct value expected %#v, got %#v", want.Name, want.CorrectValue, got.CorrectValue)
	}
}

func roundTrip(t *testing.T, def *answer.ClassDefinition) *answer.ClassDefinition {
	t.Helper()
	text := answer.Generate(def)
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("generated text did not re-parse: %v\n%s", err, text)
	}
	return parsed
}

func strPtr(s string) *string {
	return &s
}

func TestRoundTripFields(t *testing.T) {
	def := &answer.ClassDefinition{
		ClassName: "Answer",
		BaseClass: "BaseAnswer",
		Imports:   []string{"from pydantic import Field", "from typing import Literal, Optional, List"},
		Fields: []answer.FieldDefinition{
			{Name: "flag", Type: answer.TypeBool, Description: strPtr("A flag"), Required: true, CorrectValue: true},
			{Name: "count", Type: answer.TypeInt, Required: true, CorrectValue: 42},
			{Name: "ratio", Type: answer.TypeFloat, Required: true, CorrectValue: 2.5},
			{Name: "city", Type: answer.TypeStr, Description: strPtr(`the "capital"`), Required: true, CorrectValue: "Paris"},
			{Name: "choice", Type: answer.TypeLiteral, LiteralValues: []string{"b", "a", "c"}, Required: true, CorrectValue: "a"},
			{Name: "scores", Type: answer.TypeList, ListItemType: answer.TypeInt, Required: true, CorrectValue: []any{1, 2, 3}},
			{Name: "note", Type: answer.TypeStr, Required: false, Default: strPtr("None")},
		},
		Methods: []answer.MethodDefinition{
			{Name: "verify", Code: "    def verify(self):\n        return True"},
			{Name: "verify_granular", Code: "    def verify_granular(self):\n        return 0.5"},
		},
	}

	parsed := roundTrip(t, def)

	if parsed.ClassName != def.ClassName || parsed.BaseClass != def.BaseClass {
		t.Errorf("class identity changed: %s(%s)", parsed.ClassName, parsed.BaseClass)
	}
	if !reflect.DeepEqual(parsed.Imports, def.Imports) {
		t.Errorf("imports changed: %v", parsed.Imports)
	}
	if len(parsed.Fields) != len(def.Fields) {
		t.Fatalf("expected %d fields, got %d", len(def.Fields), len(parsed.Fields))
	}
	for i := range def.Fields {
		checkFieldEquiv(t, &def.Fields[i], &parsed.Fields[i])
	}

	for _, m := range def.Methods {
		got := parsed.Method(m.Name)
		if got == nil {
			t.Fatalf("method %s lost", m.Name)
		}
		if got.Code != m.Code {
			t.Errorf("method %s body changed:\n%q", m.Name, got.Code)
		}
	}
}

func TestRoundTripIsStable(t *testing.T) {
	first, err := Parse(booleanSource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := answer.Generate(first)
	second, err := Parse(text)
	if err != nil {
		t.Fatalf("generated text did not re-parse: %v\n%s", err, text)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse/generate/parse is not a fixed point:\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if again := answer.Generate(second); again != text {
		t.Errorf("generate is not stable:\n%q\nvs\n%q", text, again)
	}
}

func TestRoundTripDescriptionEscaping(t *testing.T) {
	descriptions := []string{
		`plain`,
		`say "hi"`,
		`back\slash`,
		`mixed \" sequences and trailing \`,
		`Number of Crohn's cases in the study`,
		`ünïcode — and more`,
		``,
	}
	for _, desc := range descriptions {
		def := &answer.ClassDefinition{
			ClassName: "Answer",
			BaseClass: "BaseAnswer",
			Fields: []answer.FieldDefinition{
				{Name: "answer", Type: answer.TypeStr, Description: strPtr(desc), Required: true},
			},
		}
		parsed := roundTrip(t, def)
		got := parsed.Fields[0].Description
		if got == nil || *got != desc {
			t.Errorf("description %q came back as %v", desc, got)
		}
	}
}

func TestRoundTripApostropheStaysUnescaped(t *testing.T) {
	desc := "Number of Crohn's cases"
	def := &answer.ClassDefinition{
		ClassName: "Answer",
		BaseClass: "BaseAnswer",
		Fields: []answer.FieldDefinition{
			{Name: "answer", Type: answer.TypeStr, Description: strPtr(desc), Required: true},
		},
	}
	text := answer.Generate(def)
	if !strings.Contains(text, "Crohn's") {
		t.Errorf("apostrophe was escaped in:\n%s", text)
	}
	parsed := roundTrip(t, def)
	if got := parsed.Fields[0].Description; got == nil || *got != desc {
		t.Errorf("description came back as %v", got)
	}
}

func TestRoundTripLiteralMembersWithSpecials(t *testing.T) {
	def := &answer.ClassDefinition{
		ClassName: "Answer",
		BaseClass: "BaseAnswer",
		Fields: []answer.FieldDefinition{
			{Name: "choice", Type: answer.TypeLiteral, Required: true,
				LiteralValues: []string{`a"b`, `c\d`, `it's fine`, `comma, inside`}},
		},
	}
	parsed := roundTrip(t, def)
	checkFieldEquiv(t, &def.Fields[0], &parsed.Fields[0])
}

func TestRoundTripDictCorrect(t *testing.T) {
	def := &answer.ClassDefinition{
		ClassName: "Answer",
		BaseClass: "BaseAnswer",
		Fields: []answer.FieldDefinition{
			{Name: "city", Type: answer.TypeStr, Required: true, CorrectValue: "Paris"},
			{Name: "population", Type: answer.TypeInt, Required: true, CorrectValue: 2100000},
		},
		Methods: []answer.MethodDefinition{
			{Name: "verify", Code: "    def verify(self):\n        return True"},
			{Name: "verify_granular", Code: "    def verify_granular(self):\n        return 0.5"},
		},
	}
	parsed := roundTrip(t, def)
	for i := range def.Fields {
		checkFieldEquiv(t, &def.Fields[i], &parsed.Fields[i])
	}
}

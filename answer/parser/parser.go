// Package parser extracts the structured model from verification-class
// source text. The DSL grammar is intentionally narrow, so this is a
// hand-written scanner with named recognition stages (class header, field
// lines, method blocks, correct-value assignment) rather than a grammar-
// driven parser.
package parser

import (
	"strings"

	"github.com/dhamidi/anskit/answer"
)

// ParseError reports why source text could not be recognized as a class.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// python statement keywords that must not be mistaken for field names.
var statementKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"return": true, "pass": true, "class": true, "def": true,
	"import": true, "from": true, "raise": true, "assert": true,
	"lambda": true, "global": true, "del": true, "yield": true,
}

// Parse extracts a ClassDefinition from source text.
//
// The only hard failure is the absence of a class header; everything inside
// a recognized class is scanned tolerantly. Field annotations outside the
// closed tag set degrade to the str tag with the raw annotation preserved,
// and statements that are neither fields nor methods are skipped.
func Parse(source string) (*answer.ClassDefinition, error) {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	var def answer.ClassDefinition
	headerIdx := -1
	for i, line := range lines {
		if name, base, ok := matchClassHeader(line); ok {
			def.ClassName = name
			def.BaseClass = base
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, &ParseError{Message: "Could not find class definition"}
	}

	for _, line := range lines[:headerIdx] {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "import ") || strings.HasPrefix(t, "from ") {
			def.Imports = append(def.Imports, t)
		}
	}

	headerIndent := indentOf(lines[headerIdx])
	body := lines[headerIdx+1:]

	bodyIndent := -1
	for _, line := range body {
		if isBlank(line) {
			continue
		}
		if indentOf(line) <= headerIndent {
			break
		}
		bodyIndent = indentOf(line)
		break
	}
	if bodyIndent > headerIndent {
		scanBody(&def, body, bodyIndent)
	}

	extractCorrect(&def)
	return &def, nil
}

// matchClassHeader recognizes "class <Name>(<Base>):".
func matchClassHeader(line string) (name, base string, ok bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "class ") {
		return "", "", false
	}
	s = strings.TrimSpace(s[len("class "):])
	name, s = scanIdent(s)
	if name == "" {
		return "", "", false
	}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return "", "", false
	}
	base, s = scanDottedName(strings.TrimSpace(s[1:]))
	if base == "" {
		return "", "", false
	}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, ")") {
		return "", "", false
	}
	if !strings.HasPrefix(strings.TrimSpace(s[1:]), ":") {
		return "", "", false
	}
	return name, base, true
}

// scanBody walks class-body lines, dispatching top-level statements to the
// field and method stages. Lines at body indentation that are neither
// (docstrings, pass, comments) are skipped.
func scanBody(def *answer.ClassDefinition, body []string, bodyIndent int) {
	for i := 0; i < len(body); i++ {
		line := body[i]
		if isBlank(line) {
			continue
		}
		ind := indentOf(line)
		if ind < bodyIndent {
			break
		}
		if ind > bodyIndent {
			continue
		}
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "#") {
			continue
		}
		if strings.HasPrefix(t, "def ") {
			method, next := captureMethod(body, i, bodyIndent)
			def.Methods = append(def.Methods, method)
			i = next - 1
			continue
		}
		stmt, next := joinStatement(body, i)
		if field, ok := parseFieldStatement(stmt); ok {
			def.Fields = append(def.Fields, field)
		}
		i = next - 1
	}
}

// joinStatement merges bracket-continuation lines into one logical
// statement, returning the index of the first line past it.
func joinStatement(body []string, start int) (string, int) {
	stmt := strings.TrimSpace(body[start])
	delta := bracketDelta(stmt)
	next := start + 1
	for delta > 0 && next < len(body) {
		cont := strings.TrimSpace(body[next])
		stmt += " " + cont
		delta += bracketDelta(cont)
		next++
	}
	return stmt, next
}

// captureMethod grabs a def block verbatim, from its def line to the last
// line indented past the class body, trailing blank lines excluded.
func captureMethod(body []string, start, bodyIndent int) (answer.MethodDefinition, int) {
	t := strings.TrimSpace(body[start])
	name, _ := scanIdent(t[len("def "):])

	last := start
	end := start + 1
	for end < len(body) {
		if isBlank(body[end]) {
			end++
			continue
		}
		if indentOf(body[end]) <= bodyIndent {
			break
		}
		last = end
		end++
	}

	return answer.MethodDefinition{
		Name: name,
		Code: strings.Join(body[start:last+1], "\n"),
	}, end
}

// parseFieldStatement recognizes "name: annotation", optionally followed by
// "= default" or "= Field(...)".
func parseFieldStatement(stmt string) (answer.FieldDefinition, bool) {
	var field answer.FieldDefinition

	name, rest := scanIdent(stmt)
	if name == "" || statementKeywords[name] {
		return field, false
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ":") {
		return field, false
	}

	annText, defText, hasDefault := splitAssign(rest[1:])
	ann := strings.TrimSpace(annText)
	if ann == "" {
		return field, false
	}

	field.Name = name
	field.PythonType = ann
	field.Required = true

	inner := ann
	if unwrapped, ok := unwrapBracket(ann, "Optional["); ok {
		field.Required = false
		inner = strings.TrimSpace(unwrapped)
	}
	classifyAnnotation(inner, &field)

	if hasDefault {
		applyDefault(strings.TrimSpace(defText), &field)
	}
	return field, true
}

// classifyAnnotation maps an (already Optional-unwrapped) annotation onto
// the closed tag set. Unrecognized annotations fall back to str; the raw
// text survives in PythonType, so the fallback loses no source fidelity.
func classifyAnnotation(ann string, field *answer.FieldDefinition) {
	switch ann {
	case "bool":
		field.Type = answer.TypeBool
		return
	case "int":
		field.Type = answer.TypeInt
		return
	case "float":
		field.Type = answer.TypeFloat
		return
	case "str":
		field.Type = answer.TypeStr
		return
	}
	if inner, ok := unwrapBracket(ann, "Literal["); ok {
		field.Type = answer.TypeLiteral
		field.LiteralValues = literalMembers(inner)
		return
	}
	for _, prefix := range []string{"List[", "list["} {
		if inner, ok := unwrapBracket(ann, prefix); ok {
			field.Type = answer.TypeList
			field.ListItemType = itemTag(strings.TrimSpace(inner))
			return
		}
	}
	field.Type = answer.TypeStr
}

// literalMembers extracts Literal[...] members in declaration order,
// whichever quote style each member uses.
func literalMembers(inner string) []string {
	var values []string
	for _, part := range splitArgs(inner) {
		if v, ok := parseString(part); ok {
			values = append(values, v)
		} else {
			values = append(values, strings.TrimSpace(part))
		}
	}
	return values
}

func itemTag(ann string) answer.FieldType {
	switch ann {
	case "bool":
		return answer.TypeBool
	case "int":
		return answer.TypeInt
	case "float":
		return answer.TypeFloat
	}
	return answer.TypeStr
}

// applyDefault interprets the right-hand side of a field assignment: a
// Field(...) call carrying description and default keywords, or a bare
// default expression kept verbatim.
func applyDefault(rhs string, field *answer.FieldDefinition) {
	if inner, ok := unwrapCall(rhs, "Field("); ok {
		for _, arg := range splitArgs(inner) {
			key, val, found := splitAssign(arg)
			if !found {
				continue
			}
			switch strings.TrimSpace(key) {
			case "description":
				if s, ok := parseString(val); ok {
					field.Description = &s
				}
			case "default":
				d := strings.TrimSpace(val)
				field.Default = &d
				field.Required = false
			}
		}
		return
	}
	d := rhs
	field.Default = &d
	field.Required = false
}

// unwrapCall strips a call wrapper like "Field(" ... ")".
func unwrapCall(s, prefix string) (inner string, ok bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return "", false
	}
	inner = s[len(prefix) : len(s)-1]
	if bracketDelta(inner) != 0 {
		return "", false
	}
	return inner, true
}

// extractCorrect locates "self.correct = <expr>" inside set_correct and
// distributes the value onto the fields: dict literals per entry by field
// name, scalars onto the first field. A right-hand side that is not a
// recognizable literal leaves every CorrectValue unset and the method body
// untouched.
func extractCorrect(def *answer.ClassDefinition) {
	method := def.Method(answer.MethodSetCorrect)
	if method == nil {
		return
	}
	rhs, ok := correctAssignment(method.Code)
	if !ok {
		return
	}

	if entries, ok := parseDict(rhs); ok {
		for _, e := range entries {
			if f := def.Field(e.key); f != nil && e.value != nil {
				f.CorrectValue = e.value
			}
		}
		return
	}
	if v, ok := parseValue(rhs); ok && v != nil && len(def.Fields) > 0 {
		def.Fields[0].CorrectValue = v
	}
}

func correctAssignment(code string) (string, bool) {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		pos := strings.Index(line, "self.correct")
		if pos < 0 {
			continue
		}
		rest := strings.TrimSpace(line[pos+len("self.correct"):])
		if !strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, "==") {
			continue
		}
		rhs := strings.TrimSpace(rest[1:])
		delta := bracketDelta(rhs)
		for j := i + 1; delta > 0 && j < len(lines); j++ {
			cont := strings.TrimSpace(lines[j])
			rhs += " " + cont
			delta += bracketDelta(cont)
		}
		return rhs, true
	}
	return "", false
}

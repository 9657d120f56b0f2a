package answer

import "strings"

// Generate serializes a ClassDefinition back into DSL source text. It is
// total: any structurally valid definition produces text, in a fixed layout
// of imports, class header, fields in order, then methods in order.
//
// Method bodies are emitted verbatim. The one exception is set_correct: when
// any field carries a CorrectValue, its body is synthesized from those values
// so edits to correct values survive regeneration. A single carrier produces
// a scalar assignment; several produce a dict keyed by field name in
// declaration order.
func Generate(def *ClassDefinition) string {
	var sb strings.Builder

	for _, imp := range def.Imports {
		sb.WriteString(imp)
		sb.WriteByte('\n')
	}
	if len(def.Imports) > 0 {
		sb.WriteByte('\n')
	}

	sb.WriteString("class ")
	sb.WriteString(def.ClassName)
	sb.WriteByte('(')
	sb.WriteString(def.BaseClass)
	sb.WriteString("):\n")

	var blocks []string

	if len(def.Fields) > 0 {
		lines := make([]string, len(def.Fields))
		for i := range def.Fields {
			lines[i] = "    " + fieldLine(&def.Fields[i])
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	synthesize := len(def.CorrectFields()) > 0
	var methodBlocks []string
	emittedSetCorrect := false
	for i := range def.Methods {
		m := &def.Methods[i]
		if m.Name == MethodSetCorrect && synthesize {
			methodBlocks = append(methodBlocks, setCorrectCode(def))
			emittedSetCorrect = true
			continue
		}
		methodBlocks = append(methodBlocks, m.Code)
	}
	if synthesize && !emittedSetCorrect {
		methodBlocks = append([]string{setCorrectCode(def)}, methodBlocks...)
	}
	blocks = append(blocks, methodBlocks...)

	if len(blocks) == 0 {
		blocks = append(blocks, "    pass")
	}

	sb.WriteString(strings.Join(blocks, "\n\n"))
	sb.WriteByte('\n')
	return sb.String()
}

func fieldLine(f *FieldDefinition) string {
	line := f.Name + ": " + annotationText(f)
	switch {
	case f.Description != nil && f.Default != nil:
		line += " = Field(description=" + Quote(*f.Description) + ", default=" + *f.Default + ")"
	case f.Description != nil:
		line += " = Field(description=" + Quote(*f.Description) + ")"
	case f.Default != nil:
		line += " = " + *f.Default
	}
	return line
}

// annotationText rebuilds a field's type annotation. The raw source
// annotation wins when the parser recorded one; otherwise the annotation is
// reconstructed from the tag, with an Optional wrapper for non-required
// fields that have no explicit non-null default.
func annotationText(f *FieldDefinition) string {
	if f.PythonType != "" {
		return f.PythonType
	}

	var base string
	switch f.Type {
	case TypeLiteral:
		parts := make([]string, len(f.LiteralValues))
		for i, v := range f.LiteralValues {
			parts[i] = Quote(v)
		}
		base = "Literal[" + strings.Join(parts, ", ") + "]"
	case TypeList:
		item := string(f.ListItemType)
		if item == "" {
			item = string(TypeStr)
		}
		base = "List[" + item + "]"
	case "":
		base = string(TypeStr)
	default:
		base = string(f.Type)
	}

	if !f.Required && !(f.Default != nil && *f.Default != "None") {
		base = "Optional[" + base + "]"
	}
	return base
}

func setCorrectCode(def *ClassDefinition) string {
	carriers := def.CorrectFields()
	var expr string
	if len(carriers) == 1 {
		expr = renderCorrectValue(carriers[0])
	} else {
		parts := make([]string, len(carriers))
		for i, f := range carriers {
			parts[i] = Quote(f.Name) + ": " + renderCorrectValue(f)
		}
		expr = "{" + strings.Join(parts, ", ") + "}"
	}
	return "    def " + MethodSetCorrect + "(self):\n        self.correct = " + expr
}

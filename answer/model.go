// Package answer models verification-class snippets: one class with typed
// fields, a set_correct initializer and verify methods. The model is produced
// by answer/parser, edited in place, and serialized back to source text by
// Generate.
package answer

// FieldType is the closed set of tags a field annotation classifies into.
type FieldType string

const (
	TypeBool    FieldType = "bool"
	TypeInt     FieldType = "int"
	TypeFloat   FieldType = "float"
	TypeStr     FieldType = "str"
	TypeLiteral FieldType = "literal"
	TypeList    FieldType = "list"
)

// Well-known method names.
const (
	MethodSetCorrect     = "set_correct"
	MethodVerify         = "verify"
	MethodVerifyGranular = "verify_granular"
)

// MethodRole classifies a method by its well-known name.
type MethodRole string

const (
	RoleSetCorrect     MethodRole = "set_correct"
	RoleVerify         MethodRole = "verify"
	RoleVerifyGranular MethodRole = "verify_granular"
	RoleOther          MethodRole = "other"
)

// RoleOf returns the role a method name carries.
func RoleOf(name string) MethodRole {
	switch name {
	case MethodSetCorrect:
		return RoleSetCorrect
	case MethodVerify:
		return RoleVerify
	case MethodVerifyGranular:
		return RoleVerifyGranular
	}
	return RoleOther
}

type ClassDefinition struct {
	ClassName string             `json:"className"`
	BaseClass string             `json:"baseClass"`
	Imports   []string           `json:"imports,omitempty"`
	Fields    []FieldDefinition  `json:"fields"`
	Methods   []MethodDefinition `json:"methods"`
}

type FieldDefinition struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`

	// PythonType is the annotation exactly as written in the source,
	// including any Optional wrapper. When set, Generate emits it verbatim
	// so annotations outside the closed tag set survive a round trip.
	PythonType string `json:"pythonType,omitempty"`

	// Description is nil when the field carries no Field(description=...)
	// call. An empty string is a present, empty description.
	Description *string `json:"description,omitempty"`

	Required      bool      `json:"required"`
	LiteralValues []string  `json:"literalValues,omitempty"`
	ListItemType  FieldType `json:"listItemType,omitempty"`

	// Default is the raw default expression. nil means no default;
	// "None" is an explicit null default.
	Default *string `json:"defaultValue,omitempty"`

	// CorrectValue is the ground-truth value set_correct assigns to this
	// field: bool, int, float64, string or []any. nil means unset.
	CorrectValue any `json:"correctValue,omitempty"`
}

type MethodDefinition struct {
	Name string `json:"name"`

	// Code is the full method source, def line included, byte-for-byte as
	// it appeared. Generate repositions methods but never rewrites Code,
	// with the single exception of set_correct (see Generate).
	Code string `json:"code"`
}

// Field returns the field with the given name, or nil.
func (c *ClassDefinition) Field(name string) *FieldDefinition {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// Method returns the method with the given name, or nil.
func (c *ClassDefinition) Method(name string) *MethodDefinition {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	return nil
}

// HasMethod reports whether a method with the given name is declared.
func (c *ClassDefinition) HasMethod(name string) bool {
	return c.Method(name) != nil
}

// CorrectFields returns the fields carrying a CorrectValue, in declaration
// order.
func (c *ClassDefinition) CorrectFields() []*FieldDefinition {
	var carriers []*FieldDefinition
	for i := range c.Fields {
		if c.Fields[i].CorrectValue != nil {
			carriers = append(carriers, &c.Fields[i])
		}
	}
	return carriers
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

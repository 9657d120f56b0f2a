package answer

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderValue serializes a correct value back into DSL literal syntax.
// Strings are double-quoted with Escape; floats keep a fractional part so
// they re-parse as floats.
func RenderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		s := strconv.FormatFloat(val, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case string:
		return Quote(val)
	case []string:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Quote(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = RenderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

// renderCorrectValue renders a field's correct value, coercing whole floats
// to integers for int fields. JSON decoding turns every number into a
// float64, so a model loaded from JSON would otherwise emit "3.0" for an
// int field.
func renderCorrectValue(f *FieldDefinition) string {
	if f.Type == TypeInt {
		if fv, ok := f.CorrectValue.(float64); ok && fv == float64(int64(fv)) {
			return strconv.FormatInt(int64(fv), 10)
		}
	}
	return RenderValue(f.CorrectValue)
}

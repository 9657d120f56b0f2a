package answer

import "fmt"

// Validate checks a ClassDefinition for structural problems and returns one
// human-readable message per violation. It never mutates the definition and
// never re-parses text; an empty result means the class is well-formed.
//
// All rules are evaluated; the checker does not stop at the first violation.
func Validate(def *ClassDefinition) []string {
	var problems []string

	seen := make(map[string]bool)
	for i := range def.Fields {
		f := &def.Fields[i]
		if !IsIdentifier(f.Name) {
			problems = append(problems, fmt.Sprintf("Invalid field name: %s", f.Name))
		}
		if seen[f.Name] {
			problems = append(problems, fmt.Sprintf("Duplicate field name: %s", f.Name))
		}
		seen[f.Name] = true
		if f.Type == TypeLiteral && len(f.LiteralValues) == 0 {
			problems = append(problems, fmt.Sprintf("Literal field %s must have at least one value", f.Name))
		}
	}

	roles := make(map[MethodRole]bool)
	for i := range def.Methods {
		roles[RoleOf(def.Methods[i].Name)] = true
	}
	if !roles[RoleSetCorrect] {
		problems = append(problems, fmt.Sprintf("%s method is required", MethodSetCorrect))
	}
	if !roles[RoleVerify] {
		problems = append(problems, fmt.Sprintf("%s method is required", MethodVerify))
	}
	if len(def.Fields) > 1 && !roles[RoleVerifyGranular] {
		problems = append(problems, "verify_granular method is required when there are multiple fields")
	}

	return problems
}

package validator

import (
	"fmt"
	"strings"
)

// OneOf validates that a value is a member of a fixed closed set.
// The comparison is exact; for strings that means case-sensitive.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", joinAllowed(allowed)),
			Kind:    "enum",
			Value:   value,
		},
	}
}

func joinAllowed[T any](allowed []T) string {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}

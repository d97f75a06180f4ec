package validator

import "fmt"

// MinItems validates that a slice has at least min elements.
func MinItems[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at least %d items", min),
			Kind:    "too_short",
			Value:   len(value),
		},
	}
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d items", max),
			Kind:    "too_long",
			Value:   len(value),
		},
	}
}

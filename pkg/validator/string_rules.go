package validator

import (
	"fmt"
	"regexp"
)

// MinLen validates that a string is at least min bytes long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Kind:    "string_too_short",
			Value:   value,
		},
	}
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Kind:    "string_too_long",
			Value:   value,
		},
	}
}

// Matches validates that a string matches the given pattern.
// The pattern is expected to be pre-compiled and anchored; builders that
// construct rules from user-supplied patterns must anchor them.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match pattern %q", pattern.String()),
			Kind:    "string_pattern_mismatch",
			Value:   value,
		},
	}
}

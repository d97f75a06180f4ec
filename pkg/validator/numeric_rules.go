package validator

import "fmt"

// Gt validates that a numeric value is strictly greater than the bound.
func Gt[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value > bound
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater than %v", bound),
			Kind:    "greater_than",
			Value:   value,
		},
	}
}

// Ge validates that a numeric value is greater than or equal to the bound.
func Ge[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value >= bound
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater than or equal to %v", bound),
			Kind:    "greater_than_equal",
			Value:   value,
		},
	}
}

// Lt validates that a numeric value is strictly less than the bound.
func Lt[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value < bound
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than %v", bound),
			Kind:    "less_than",
			Value:   value,
		},
	}
}

// Le validates that a numeric value is less than or equal to the bound.
func Le[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value <= bound
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than or equal to %v", bound),
			Kind:    "less_than_equal",
			Value:   value,
		},
	}
}

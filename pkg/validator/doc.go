// Package validator provides small, composable validation rules for scalar
// and collection values.
//
// Every exported constructor returns a Rule: a boolean Check paired with the
// ValidationError reported when the check fails. Rules are evaluated with
// Apply, which runs every rule and aggregates all failures into a
// ValidationErrors slice implementing the error interface. Nothing
// short-circuits, so a single Apply call reports every problem with a value
// at once.
//
// The package holds no state and is safe for concurrent use.
//
// Usage:
//
//	err := validator.Apply(
//	    validator.Ge("item_id", id, 10),
//	    validator.Lt("item_id", id, 1000),
//	    validator.MinLen("q", q, 2),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect per-field failures
//	}
//
// Each ValidationError carries a stable Kind token ("greater_than",
// "string_too_short", "enum", ...) intended for machine-readable error
// payloads, plus the offending input value.
package validator

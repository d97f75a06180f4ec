package binder

import (
	"errors"
	"fmt"
	"strings"
)

// Declaration errors surface when routes are registered, never per request.
var (
	ErrBadDeclaration = errors.New("invalid field declaration")
	ErrCyclicType     = errors.New("cyclic structured type")
	ErrBadDefault     = errors.New("default value violates field constraints")
)

// Error type tokens carried in FieldError.Type. Stable machine-readable
// identifiers, safe to match on in clients.
const (
	TypeMissing         = "missing"
	TypeIntParsing      = "int_parsing"
	TypeFloatParsing    = "float_parsing"
	TypeBoolParsing     = "bool_parsing"
	TypeUUIDParsing     = "uuid_parsing"
	TypeDateTimeParsing = "datetime_parsing"
	TypeDateParsing     = "date_parsing"
	TypeTimeParsing     = "time_parsing"
	TypeDurationParsing = "duration_parsing"
	TypeModelParsing    = "model_parsing"
	TypeJSONInvalid     = "json_invalid"
)

// FieldError is a single binding failure, located by its source and field
// path. Location segments are field names except for list positions, which
// are integer indexes so they serialize as JSON numbers. Input echoes the
// raw value that failed.
type FieldError struct {
	Loc   []any  `json:"loc"`
	Msg   string `json:"msg"`
	Type  string `json:"type"`
	Input any    `json:"input,omitempty"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", locString(e.Loc), e.Msg)
}

// locString renders a location as a dotted path (body.items.2.price).
func locString(loc []any) string {
	parts := make([]string, len(loc))
	for i, seg := range loc {
		parts[i] = fmt.Sprint(seg)
	}
	return strings.Join(parts, ".")
}

// ValidationError aggregates every FieldError collected while binding one
// request. Binding never stops at the first failing field, so the slice
// holds one or more entries per failing field, in declaration order.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "request validation failed"
	}

	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any entry's location ends with the given field name.
func (e ValidationError) Has(field string) bool {
	for _, fe := range e {
		if len(fe.Loc) > 0 && fe.Loc[len(fe.Loc)-1] == field {
			return true
		}
	}
	return false
}

package binder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock is a time-of-day value without a date, as carried by fields of the
// TimeOfDay kind.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// MarshalJSON renders the clock as an "HH:MM:SS" string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseClock parses "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (Clock, error) {
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

const (
	dateTimeLayout      = time.RFC3339
	dateTimeNaiveLayout = "2006-01-02T15:04:05"
	dateLayout          = "2006-01-02"
)

// coerceString parses a raw textual value into the scalar kind.
// A parse failure yields a single FieldError and no further constraint
// checks run for that value.
func coerceString(loc []any, kind Kind, raw string) (any, *FieldError) {
	switch kind {
	case KindString:
		return raw, nil

	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid integer", TypeIntParsing, raw)
		}
		return n, nil

	case KindFloat:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid number", TypeFloatParsing, raw)
		}
		return n, nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			switch strings.ToLower(raw) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return nil, fieldErr(loc, "value is not a valid boolean", TypeBoolParsing, raw)
			}
		}
		return b, nil

	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid UUID", TypeUUIDParsing, raw)
		}
		return id, nil

	case KindDateTime:
		if t, err := time.Parse(dateTimeLayout, raw); err == nil {
			return t, nil
		}
		if t, err := time.Parse(dateTimeNaiveLayout, raw); err == nil {
			return t, nil
		}
		return nil, fieldErr(loc, "value is not a valid datetime", TypeDateTimeParsing, raw)

	case KindDate:
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid date", TypeDateParsing, raw)
		}
		return t, nil

	case KindTimeOfDay:
		c, err := ParseClock(raw)
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid time of day", TypeTimeParsing, raw)
		}
		return c, nil

	case KindDuration:
		if d, err := time.ParseDuration(raw); err == nil {
			return d, nil
		}
		// Bare numbers are taken as seconds.
		if secs, err := strconv.ParseFloat(raw, 64); err == nil {
			return time.Duration(secs * float64(time.Second)), nil
		}
		return nil, fieldErr(loc, "value is not a valid duration", TypeDurationParsing, raw)

	default:
		return nil, fieldErr(loc, fmt.Sprintf("cannot coerce to %s from text", kind), TypeModelParsing, raw)
	}
}

// coerceJSON converts an already-decoded JSON value into the scalar kind.
// JSON numbers arrive as json.Number so integers survive undamaged.
func coerceJSON(loc []any, kind Kind, v any) (any, *FieldError) {
	if v == nil {
		return nil, fieldErr(loc, "value must not be null", TypeMissing, nil)
	}

	switch kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fieldErr(loc, "value is not a valid string", TypeModelParsing, v)
		}
		return s, nil

	case KindInt:
		num, ok := v.(json.Number)
		if !ok {
			return nil, fieldErr(loc, "value is not a valid integer", TypeIntParsing, v)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid integer", TypeIntParsing, v)
		}
		return int(n), nil

	case KindFloat:
		num, ok := v.(json.Number)
		if !ok {
			return nil, fieldErr(loc, "value is not a valid number", TypeFloatParsing, v)
		}
		n, err := num.Float64()
		if err != nil {
			return nil, fieldErr(loc, "value is not a valid number", TypeFloatParsing, v)
		}
		return n, nil

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fieldErr(loc, "value is not a valid boolean", TypeBoolParsing, v)
		}
		return b, nil

	case KindUUID, KindDateTime, KindDate, KindTimeOfDay, KindDuration:
		// These kinds travel as strings inside JSON.
		s, ok := v.(string)
		if !ok {
			return nil, fieldErr(loc, fmt.Sprintf("value is not a valid %s", kind), parsingType(kind), v)
		}
		return coerceString(loc, kind, s)

	default:
		return nil, fieldErr(loc, fmt.Sprintf("cannot coerce to %s", kind), TypeModelParsing, v)
	}
}

func parsingType(kind Kind) string {
	switch kind {
	case KindUUID:
		return TypeUUIDParsing
	case KindDateTime:
		return TypeDateTimeParsing
	case KindDate:
		return TypeDateParsing
	case KindTimeOfDay:
		return TypeTimeParsing
	case KindDuration:
		return TypeDurationParsing
	default:
		return TypeModelParsing
	}
}

func fieldErr(loc []any, msg, typ string, input any) *FieldError {
	// Copy so later appends by the caller cannot alias into this error.
	l := make([]any, len(loc))
	copy(l, loc)
	return &FieldError{Loc: l, Msg: msg, Type: typ, Input: input}
}

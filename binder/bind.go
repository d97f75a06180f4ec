package binder

import (
	"net/http"

	"github.com/yegordb/bindkit/pkg/validator"
)

// Bind extracts, coerces and validates every declared field of a handler
// against one request, producing a fully populated BoundCall or a
// ValidationError listing every failing field.
//
// Fields are processed independently: no field's failure affects another
// field's outcome, and nothing short-circuits. Bind is a pure function of
// the request plus the declarations; it keeps no state between calls, and
// the request body is restored after reading so the same request binds to
// the same result every time.
//
// pathParam resolves matched route segments (pass chi.URLParam when routing
// with chi); it may be nil when no field reads from the path.
func Bind(r *http.Request, fields []Field, pathParam PathParamFunc) (*BoundCall, error) {
	ex := newExtractor(r, pathParam, fields)

	call := &BoundCall{values: make(map[string]any, len(fields))}
	var failures ValidationError
	payloadFailed := make(map[string]bool)

	for _, f := range fields {
		loc := []any{string(f.Source), f.Name}
		if f.Source == SourceBody && !ex.embedBody {
			// A single non-embedded body field IS the body; its failures
			// locate at ["body", ...] without the declared name.
			loc = []any{"body"}
		}

		raw, fe := ex.extract(f)
		if fe != nil {
			// An unreadable payload (body or form) fails every field
			// reading from it; report it once.
			if len(fe.Loc) == 1 {
				if src, ok := fe.Loc[0].(string); ok {
					if payloadFailed[src] {
						continue
					}
					payloadFailed[src] = true
				}
			}
			failures = append(failures, *fe)
			continue
		}

		if !raw.present {
			switch {
			case f.Required:
				failures = append(failures, *fieldErr(loc, "field required", TypeMissing, nil))
			case f.Nullable:
				call.set(f.Name, nil)
			default:
				// Constraints run against the default too, so a
				// misconfigured default that slipped past registration
				// still cannot bind silently.
				if ferrs := checkValue(f, loc, f.Default); len(ferrs) > 0 {
					failures = append(failures, ferrs...)
					continue
				}
				call.set(f.Name, f.Default)
			}
			continue
		}

		value, ferrs := coerceRaw(f, loc, raw)
		if len(ferrs) > 0 {
			failures = append(failures, ferrs...)
			continue
		}

		if ferrs := checkValue(f, loc, value); len(ferrs) > 0 {
			failures = append(failures, ferrs...)
			continue
		}

		call.set(f.Name, value)
	}

	if len(failures) > 0 {
		return nil, failures
	}
	return call, nil
}

// coerceRaw turns an extracted raw value into the field's target type.
// Coercion failures short-circuit constraint checks for that field only.
func coerceRaw(f Field, loc []any, raw rawValue) (any, []FieldError) {
	switch {
	case raw.isJSON:
		return coerceJSONValue(f.Type, loc, raw.jsonVal)

	case raw.files != nil:
		if f.Type.IsList {
			items := make([]any, len(raw.files))
			for i, u := range raw.files {
				items[i] = u
			}
			return items, nil
		}
		return raw.files[0], nil

	default:
		if f.Type.IsList {
			items := make([]any, 0, len(raw.strings))
			var ferrs []FieldError
			for i, s := range raw.strings {
				v, fe := coerceString(append(loc, i), f.Type.Kind, s)
				if fe != nil {
					ferrs = append(ferrs, *fe)
					continue
				}
				items = append(items, v)
			}
			if len(ferrs) > 0 {
				return nil, ferrs
			}
			return items, nil
		}

		v, fe := coerceString(loc, f.Type.Kind, raw.strings[0])
		if fe != nil {
			return nil, []FieldError{*fe}
		}
		return v, nil
	}
}

// coerceJSONValue converts a decoded JSON value into the target type,
// recursing into lists and nested structured types. Failure locations carry
// list indexes (body.items.2.price).
func coerceJSONValue(t Type, loc []any, v any) (any, []FieldError) {
	if t.IsList {
		items, ok := v.([]any)
		if !ok {
			return nil, []FieldError{*fieldErr(loc, "value is not a valid list", TypeModelParsing, v)}
		}

		out := make([]any, 0, len(items))
		var ferrs []FieldError
		elem := Type{Kind: t.Kind, Object: t.Object}
		if t.Elem != nil {
			elem = *t.Elem
		}
		for i, item := range items {
			cv, efs := coerceJSONValue(elem, append(loc, i), item)
			if len(efs) > 0 {
				ferrs = append(ferrs, efs...)
				continue
			}
			out = append(out, cv)
		}
		if len(ferrs) > 0 {
			return nil, ferrs
		}
		return out, nil
	}

	if t.Kind == KindObject {
		return bindObject(t.Object, loc, v)
	}

	cv, fe := coerceJSON(loc, t.Kind, v)
	if fe != nil {
		return nil, []FieldError{*fe}
	}
	return cv, nil
}

// bindObject binds a nested structured type from a JSON value. Its fields
// follow the same extract-coerce-validate cycle as top-level ones, with
// failure locations prefixed by the parent path.
func bindObject(obj *Object, loc []any, v any) (map[string]any, []FieldError) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, []FieldError{*fieldErr(loc, "value is not a valid object", TypeModelParsing, v)}
	}

	out := make(map[string]any, len(obj.Fields))
	var ferrs []FieldError

	for _, f := range obj.Fields {
		floc := append(append([]any{}, loc...), f.Name)
		raw, present := m[f.lookupName()]

		if !present || raw == nil {
			switch {
			case f.Required:
				ferrs = append(ferrs, *fieldErr(floc, "field required", TypeMissing, nil))
			case f.Nullable:
				out[f.Name] = nil
			default:
				if dfs := checkValue(f, floc, f.Default); len(dfs) > 0 {
					ferrs = append(ferrs, dfs...)
					continue
				}
				out[f.Name] = f.Default
			}
			continue
		}

		value, efs := coerceJSONValue(f.Type, floc, raw)
		if len(efs) > 0 {
			ferrs = append(ferrs, efs...)
			continue
		}

		if efs := checkValue(f, floc, value); len(efs) > 0 {
			ferrs = append(ferrs, efs...)
			continue
		}

		out[f.Name] = value
	}

	if len(ferrs) > 0 {
		return nil, ferrs
	}
	return out, nil
}

// checkValue applies a field's constraints to a coerced value. Scalar
// constraints run per element for list-typed fields; list-size constraints
// run against the list itself. Every failing constraint yields its own
// FieldError.
func checkValue(f Field, loc []any, v any) []FieldError {
	if v == nil || len(f.Constraints) == 0 {
		return nil
	}

	var ferrs []FieldError

	if items, ok := v.([]any); ok && f.Type.IsList {
		for i, item := range items {
			eloc := append(append([]any{}, loc...), i)
			for _, c := range f.Constraints {
				if c.list() {
					continue
				}
				ferrs = append(ferrs, runRules(eloc, c.rules(locString(eloc), item))...)
			}
		}
		for _, c := range f.Constraints {
			if !c.list() {
				continue
			}
			ferrs = append(ferrs, runRules(loc, c.rules(locString(loc), items))...)
		}
		return ferrs
	}

	for _, c := range f.Constraints {
		if c.list() {
			continue
		}
		ferrs = append(ferrs, runRules(loc, c.rules(locString(loc), v))...)
	}
	return ferrs
}

func runRules(loc []any, rules []validator.Rule) []FieldError {
	if len(rules) == 0 {
		return nil
	}

	err := validator.Apply(rules...)
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return nil
	}

	ferrs := make([]FieldError, 0, len(verrs))
	for _, ve := range verrs {
		ferrs = append(ferrs, *fieldErr(loc, ve.Message, ve.Kind, ve.Value))
	}
	return ferrs
}

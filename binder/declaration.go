package binder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yegordb/bindkit/pkg/validator"
)

// Source identifies where a field's raw value comes from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
	SourceBody   Source = "body"
	SourceForm   Source = "form"
	SourceFile   Source = "file"
)

// Kind enumerates the scalar and composite target kinds a field can coerce to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindUUID
	KindDateTime
	KindDate
	KindTimeOfDay
	KindDuration
	KindObject
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindUUID:
		return "uuid"
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTimeOfDay:
		return "time"
	case KindDuration:
		return "duration"
	case KindObject:
		return "object"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Type describes a field's target type: a scalar kind, a list over an
// element type, or a nested structured object.
type Type struct {
	Kind   Kind
	IsList bool
	Elem   *Type
	Object *Object
}

// Scalar type constructors.
func String() Type    { return Type{Kind: KindString} }
func Int() Type       { return Type{Kind: KindInt} }
func Float() Type     { return Type{Kind: KindFloat} }
func Bool() Type      { return Type{Kind: KindBool} }
func UUID() Type      { return Type{Kind: KindUUID} }
func DateTime() Type  { return Type{Kind: KindDateTime} }
func Date() Type      { return Type{Kind: KindDate} }
func TimeOfDay() Type { return Type{Kind: KindTimeOfDay} }
func Duration() Type  { return Type{Kind: KindDuration} }
func File() Type      { return Type{Kind: KindFile} }

// List wraps an element type into a collection type.
func List(elem Type) Type {
	return Type{Kind: elem.Kind, IsList: true, Elem: &elem, Object: elem.Object}
}

// Nested declares a field typed as a structured object.
func Nested(o *Object) Type {
	return Type{Kind: KindObject, Object: o}
}

// Object is a named record of field declarations. Objects may nest other
// objects but must stay acyclic; cycles are rejected when routes are
// registered.
type Object struct {
	Name   string
	Fields []Field
}

// NewObject creates a structured type from its field declarations.
func NewObject(name string, fields ...Field) *Object {
	return &Object{Name: name, Fields: fields}
}

// Extend builds a new object from a shared base field set plus additional
// fields. The base is copied, not referenced, so extending never mutates it.
func (o *Object) Extend(name string, extra ...Field) *Object {
	fields := make([]Field, 0, len(o.Fields)+len(extra))
	fields = append(fields, o.Fields...)
	fields = append(fields, extra...)
	return &Object{Name: name, Fields: fields}
}

// Field is an immutable declaration of one expected input: where it comes
// from, what type it coerces to, whether it is required, and which
// constraints its value must satisfy.
//
// Fields are required unless WithDefault or Optional is applied, so an
// optional field always carries a default value or is nullable.
type Field struct {
	Name        string
	Source      Source
	Type        Type
	Alias       string
	Required    bool
	Default     any
	Nullable    bool
	Embed       bool
	Constraints []Constraint
}

// FieldOption configures a field declaration.
type FieldOption func(*Field)

// NewField declares a field. Without options the field is required.
func NewField(name string, src Source, t Type, opts ...FieldOption) Field {
	f := Field{
		Name:     name,
		Source:   src,
		Type:     t,
		Required: true,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithAlias binds the field to a differently named parameter, e.g. a query
// parameter whose literal name is not a valid Go identifier.
func WithAlias(alias string) FieldOption {
	return func(f *Field) { f.Alias = alias }
}

// WithDefault makes the field optional with the given fallback value.
// The default must satisfy the field's constraints; a violating default is
// rejected at route registration.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.Required = false
		f.Default = v
	}
}

// Optional makes the field nullable: when absent it binds to nil and
// BoundCall.Has reports false.
func Optional() FieldOption {
	return func(f *Field) {
		f.Required = false
		f.Nullable = true
	}
}

// WithEmbed forces embedded body lookup for this field even when it is the
// only body-sourced field: the body is parsed as an object and the value is
// read under the field's own key.
func WithEmbed() FieldOption {
	return func(f *Field) { f.Embed = true }
}

// Constraint is one declared restriction on a field's coerced value.
// Scalar constraints apply per element when the field is a list; list-size
// constraints apply to the list itself.
type Constraint interface {
	// rules builds validation rules for a coerced value. path is the dotted
	// field path used in error messages.
	rules(path string, v any) []validator.Rule
	// list reports whether the constraint targets the list, not its elements.
	list() bool
}

// WithGt requires value > bound.
func WithGt(bound float64) FieldOption { return withConstraint(gtConstraint{bound}) }

// WithGe requires value >= bound.
func WithGe(bound float64) FieldOption { return withConstraint(geConstraint{bound}) }

// WithLt requires value < bound.
func WithLt(bound float64) FieldOption { return withConstraint(ltConstraint{bound}) }

// WithLe requires value <= bound.
func WithLe(bound float64) FieldOption { return withConstraint(leConstraint{bound}) }

// WithMinLen requires a string of at least n bytes.
func WithMinLen(n int) FieldOption { return withConstraint(minLenConstraint{n}) }

// WithMaxLen requires a string of at most n bytes.
func WithMaxLen(n int) FieldOption { return withConstraint(maxLenConstraint{n}) }

// WithPattern requires the string to match the anchored pattern.
// Panics on an invalid pattern; declarations are built at startup and a bad
// pattern must prevent the process from serving.
func WithPattern(pattern string) FieldOption {
	re := regexp.MustCompile(anchor(pattern))
	return withConstraint(patternConstraint{re})
}

// WithEnum restricts the value to a fixed closed set of string tokens.
func WithEnum(tokens ...string) FieldOption { return withConstraint(enumConstraint{tokens}) }

// WithMinItems requires the list to have at least n elements.
func WithMinItems(n int) FieldOption { return withConstraint(minItemsConstraint{n}) }

// WithMaxItems requires the list to have at most n elements.
func WithMaxItems(n int) FieldOption { return withConstraint(maxItemsConstraint{n}) }

func withConstraint(c Constraint) FieldOption {
	return func(f *Field) { f.Constraints = append(f.Constraints, c) }
}

func anchor(pattern string) string {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern = pattern + "$"
	}
	return pattern
}

type gtConstraint struct{ bound float64 }

func (c gtConstraint) list() bool { return false }
func (c gtConstraint) rules(path string, v any) []validator.Rule {
	if n, ok := asFloat(v); ok {
		r := validator.Gt(path, n, c.bound)
		r.Error.Value = v
		return []validator.Rule{r}
	}
	return nil
}

type geConstraint struct{ bound float64 }

func (c geConstraint) list() bool { return false }
func (c geConstraint) rules(path string, v any) []validator.Rule {
	if n, ok := asFloat(v); ok {
		r := validator.Ge(path, n, c.bound)
		r.Error.Value = v
		return []validator.Rule{r}
	}
	return nil
}

type ltConstraint struct{ bound float64 }

func (c ltConstraint) list() bool { return false }
func (c ltConstraint) rules(path string, v any) []validator.Rule {
	if n, ok := asFloat(v); ok {
		r := validator.Lt(path, n, c.bound)
		r.Error.Value = v
		return []validator.Rule{r}
	}
	return nil
}

type leConstraint struct{ bound float64 }

func (c leConstraint) list() bool { return false }
func (c leConstraint) rules(path string, v any) []validator.Rule {
	if n, ok := asFloat(v); ok {
		r := validator.Le(path, n, c.bound)
		r.Error.Value = v
		return []validator.Rule{r}
	}
	return nil
}

type minLenConstraint struct{ n int }

func (c minLenConstraint) list() bool { return false }
func (c minLenConstraint) rules(path string, v any) []validator.Rule {
	if s, ok := v.(string); ok {
		return []validator.Rule{validator.MinLen(path, s, c.n)}
	}
	return nil
}

type maxLenConstraint struct{ n int }

func (c maxLenConstraint) list() bool { return false }
func (c maxLenConstraint) rules(path string, v any) []validator.Rule {
	if s, ok := v.(string); ok {
		return []validator.Rule{validator.MaxLen(path, s, c.n)}
	}
	return nil
}

type patternConstraint struct{ re *regexp.Regexp }

func (c patternConstraint) list() bool { return false }
func (c patternConstraint) rules(path string, v any) []validator.Rule {
	if s, ok := v.(string); ok {
		return []validator.Rule{validator.Matches(path, s, c.re)}
	}
	return nil
}

type enumConstraint struct{ tokens []string }

func (c enumConstraint) list() bool { return false }
func (c enumConstraint) rules(path string, v any) []validator.Rule {
	if s, ok := v.(string); ok {
		return []validator.Rule{validator.OneOf(path, s, c.tokens)}
	}
	return nil
}

type minItemsConstraint struct{ n int }

func (c minItemsConstraint) list() bool { return true }
func (c minItemsConstraint) rules(path string, v any) []validator.Rule {
	if items, ok := v.([]any); ok {
		return []validator.Rule{validator.MinItems(path, items, c.n)}
	}
	return nil
}

type maxItemsConstraint struct{ n int }

func (c maxItemsConstraint) list() bool { return true }
func (c maxItemsConstraint) rules(path string, v any) []validator.Rule {
	if items, ok := v.([]any); ok {
		return []validator.Rule{validator.MaxItems(path, items, c.n)}
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// CheckFields validates a declaration set at registration time: structured
// types must be acyclic and declared defaults must satisfy their own field
// constraints. Misconfiguration surfaces here, never per request.
func CheckFields(fields []Field) error {
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field with empty name", ErrBadDeclaration)
		}
		if f.Type.Object != nil {
			if err := f.Type.Object.checkAcyclic(nil); err != nil {
				return err
			}
		}
		if f.Default != nil {
			if ferrs := checkValue(f, []any{string(f.Source), f.Name}, f.Default); len(ferrs) > 0 {
				return fmt.Errorf("%w: field %q: %s", ErrBadDefault, f.Name, ferrs[0].Msg)
			}
		}
	}
	return nil
}

func (o *Object) checkAcyclic(stack []*Object) error {
	for _, seen := range stack {
		if seen == o {
			return fmt.Errorf("%w: %s nests itself", ErrCyclicType, o.Name)
		}
	}
	stack = append(stack, o)
	for _, f := range o.Fields {
		if f.Type.Object != nil {
			if err := f.Type.Object.checkAcyclic(stack); err != nil {
				return err
			}
		}
	}
	return nil
}

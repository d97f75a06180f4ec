package binder

import (
	"time"

	"github.com/google/uuid"
)

// BoundCall is the result of successful binding: one validated, type-coerced
// value per declared field. It is created fresh per request and holds no
// reference to the request it was bound from.
type BoundCall struct {
	values map[string]any
	names  []string
}

func (c *BoundCall) set(name string, v any) {
	if _, exists := c.values[name]; !exists {
		c.names = append(c.names, name)
	}
	c.values[name] = v
}

// Names returns the bound field names in declaration order.
func (c *BoundCall) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Get returns the raw bound value and whether the field was declared.
// Nullable fields that were absent are present with a nil value.
func (c *BoundCall) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Has reports whether the field carries a non-nil value.
func (c *BoundCall) Has(name string) bool {
	v, ok := c.values[name]
	return ok && v != nil
}

func (c *BoundCall) String(name string) string {
	v, _ := c.values[name].(string)
	return v
}

func (c *BoundCall) Int(name string) int {
	v, _ := c.values[name].(int)
	return v
}

func (c *BoundCall) Float(name string) float64 {
	v, _ := c.values[name].(float64)
	return v
}

func (c *BoundCall) Bool(name string) bool {
	v, _ := c.values[name].(bool)
	return v
}

func (c *BoundCall) UUID(name string) uuid.UUID {
	v, _ := c.values[name].(uuid.UUID)
	return v
}

func (c *BoundCall) Time(name string) time.Time {
	v, _ := c.values[name].(time.Time)
	return v
}

func (c *BoundCall) Clock(name string) Clock {
	v, _ := c.values[name].(Clock)
	return v
}

func (c *BoundCall) Duration(name string) time.Duration {
	v, _ := c.values[name].(time.Duration)
	return v
}

// Strings returns a list-typed field's elements as strings.
func (c *BoundCall) Strings(name string) []string {
	items, _ := c.values[name].([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Object returns a nested structured field as a name-to-value map.
func (c *BoundCall) Object(name string) map[string]any {
	v, _ := c.values[name].(map[string]any)
	return v
}

// Objects returns a list of nested structured values.
func (c *BoundCall) Objects(name string) []map[string]any {
	items, _ := c.values[name].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// File returns a single bound upload, or nil when the field is absent.
func (c *BoundCall) File(name string) *Upload {
	v, _ := c.values[name].(*Upload)
	return v
}

// Files returns every upload bound to a list-of-file field, in submission order.
func (c *BoundCall) Files(name string) []*Upload {
	items, _ := c.values[name].([]any)
	out := make([]*Upload, 0, len(items))
	for _, it := range items {
		if u, ok := it.(*Upload); ok {
			out = append(out, u)
		}
	}
	return out
}

package scriba

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

// Document is a loaded instance of a schema: a map of internal-form values
// keyed by storage key. Values enter a document only through the schema's
// validation pipeline, so a document is well-typed by construction.
//
// A field on a document is in one of three states: absent, explicitly null,
// or present with a value. Get distinguishes them: an absent field yields a
// NotSetError, a null field yields (nil, nil).
type Document struct {
	schema *Schema
	values map[string]any
}

func newDocument(s *Schema) *Document {
	return &Document{schema: s, values: make(map[string]any)}
}

// Schema returns the schema the document was loaded with.
func (d *Document) Schema() *Schema { return d.schema }

// Has reports if the named field has a value, including an explicit null.
func (d *Document) Has(name string) bool {
	f, ok := d.schema.byName[name]
	if !ok {
		return false
	}
	_, ok = d.values[f.key]
	return ok
}

// Get returns the internal-form value of the named field. An unknown name
// is an UnknownFieldError; an absent field is a NotSetError; an explicit
// null is (nil, nil).
func (d *Document) Get(name string) (any, error) {
	f, ok := d.schema.byName[name]
	if !ok {
		return nil, &UnknownFieldError{Schema: d.schema.name, Field: name}
	}
	v, ok := d.values[f.key]
	if !ok {
		return nil, &NotSetError{Schema: d.schema.name, Field: name}
	}
	return v, nil
}

// MustGet is like Get but panics on error.
func (d *Document) MustGet(name string) any {
	v, err := d.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set validates v through the field's pipeline and stores it.
func (d *Document) Set(name string, v any) error {
	f, ok := d.schema.byName[name]
	if !ok {
		return &UnknownFieldError{Schema: d.schema.name, Field: name}
	}
	loaded, err := f.load(f.key, v, true)
	if err != nil {
		return err
	}
	d.values[f.key] = loaded
	return nil
}

// Unset removes the named field's value. Unsetting an absent field is a
// NotSetError.
func (d *Document) Unset(name string) error {
	f, ok := d.schema.byName[name]
	if !ok {
		return &UnknownFieldError{Schema: d.schema.name, Field: name}
	}
	if _, ok := d.values[f.key]; !ok {
		return &NotSetError{Schema: d.schema.name, Field: name}
	}
	delete(d.values, f.key)
	return nil
}

// Keys returns the storage keys that currently hold a value, sorted.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fields holding a value.
func (d *Document) Len() int { return len(d.values) }

// Equal reports if two documents share a schema and hold the same values.
// An absent field and an explicit null are not equal.
func (d *Document) Equal(other *Document) bool {
	if other == nil || d.schema != other.schema || len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		ov, ok := other.values[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch a := a.(type) {
	case *Document:
		b, ok := b.(*Document)
		return ok && a.Equal(b)
	case []any:
		b, ok := b.([]any)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !valueEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case time.Time:
		// Compare instants. DeepEqual would distinguish times by monotonic
		// reading and location, so a dumped and reloaded time would never
		// compare equal to its source.
		b, ok := b.(time.Time)
		return ok && a.Equal(b)
	case decimal.Decimal:
		// Compare numerically. Decimals carry an exponent, so "12.50" and
		// "12.5" are distinct representations of one value.
		b, ok := b.(decimal.Decimal)
		return ok && a.Equal(b)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Dump returns the document in its JSON-safe external form: temporal,
// binary, identifier and arbitrary-precision values become strings and
// embedded documents become maps. Absent fields are absent from the result.
func (d *Document) Dump() (map[string]any, error) {
	if d.schema.abstract {
		return nil, &AbstractError{Schema: d.schema.name}
	}
	out := make(map[string]any, len(d.values))
	for _, f := range d.schema.fields {
		v, ok := d.values[f.key]
		if !ok {
			continue
		}
		dumped, err := f.dump(f.key, v)
		if err != nil {
			return nil, err
		}
		out[f.key] = dumped
	}
	return out, nil
}

// ToStorage returns the document in the store's wire form, with native
// temporal, binary and arbitrary-precision values. Absent fields are absent
// from the result.
func (d *Document) ToStorage() (bson.M, error) {
	if d.schema.abstract {
		return nil, &AbstractError{Schema: d.schema.name}
	}
	out := make(bson.M, len(d.values))
	for _, f := range d.schema.fields {
		v, ok := d.values[f.key]
		if !ok {
			continue
		}
		stored, err := f.toStorage(f.key, v)
		if err != nil {
			return nil, err
		}
		out[f.key] = stored
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler over the dumped form.
func (d *Document) MarshalJSON() ([]byte, error) {
	m, err := d.Dump()
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// String returns a compact debug form of the document.
func (d *Document) String() string {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%s(<invalid: %v>)", d.schema.name, err)
	}
	return fmt.Sprintf("%s(%s)", d.schema.name, data)
}

package scriba

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba/schema/field"
)

// FieldInfo is a resolved field of a schema. It owns the field's value
// pipeline: load (external to internal), dump (internal to JSON-safe) and
// storage (internal to wire) transforms, plus the default and nullability
// policy. FieldInfos are built during schema resolution and immutable
// afterwards.
type FieldInfo struct {
	name     string
	key      string
	typ      field.Type
	def      func() any
	optional bool
	nillable bool

	schema     *Schema           // embedded: referenced schema
	elem       *FieldInfo        // list: element field
	candidates []*FieldInfo      // union: ordered candidates
	values     []field.EnumValue // enum/literal: closed value set

	owner *Schema
}

// Name returns the declared field name.
func (f *FieldInfo) Name() string { return f.name }

// Key returns the storage key of the field.
func (f *FieldInfo) Key() string { return f.key }

// Type returns the field type.
func (f *FieldInfo) Type() field.Type { return f.typ }

// Optional reports if the field may be absent on full loads.
func (f *FieldInfo) Optional() bool { return f.optional }

// Nillable reports if the field accepts an explicit null.
func (f *FieldInfo) Nillable() bool { return f.nillable }

// HasDefault reports if the field declares a default.
func (f *FieldInfo) HasDefault() bool { return f.def != nil }

// Schema returns the referenced schema of an embedded field, or nil.
func (f *FieldInfo) Schema() *Schema { return f.schema }

// Elem returns the element field of a list field, or nil.
func (f *FieldInfo) Elem() *FieldInfo { return f.elem }

// Candidates returns the ordered candidate fields of a union field.
func (f *FieldInfo) Candidates() []*FieldInfo { return f.candidates }

// Values returns the closed value set of an enum or literal field.
func (f *FieldInfo) Values() []field.EnumValue { return f.values }

// Owner returns the schema that declared the field.
func (f *FieldInfo) Owner() *Schema { return f.owner }

// newFieldInfo resolves a descriptor into a runtime field. Schema references
// are bound against the registry's shells, so the referenced schemas need
// not be resolved yet.
func newFieldInfo(d *field.Descriptor, reg *Registry, schemaName string) (*FieldInfo, error) {
	if d.Err != nil {
		return nil, defErr(schemaName, "%v", d.Err)
	}
	if !d.Type.Valid() {
		return nil, defErr(schemaName, "field %q has invalid type", d.Name)
	}
	key := d.Key
	if key == "" {
		key = d.Name
	}
	if d.Name != "" && strings.Contains(key, ".") {
		return nil, defErr(schemaName, "field %q: storage key %q contains the path separator '.'", d.Name, key)
	}
	f := &FieldInfo{
		name:     d.Name,
		key:      key,
		typ:      d.Type,
		def:      d.Default,
		optional: d.Optional,
		nillable: d.Nillable,
	}
	switch d.Type {
	case field.TypeEmbedded:
		ref, ok := reg.lookup(d.SchemaRef)
		if !ok {
			return nil, defErr(schemaName, "field %q references unknown schema %q", d.Name, d.SchemaRef)
		}
		f.schema = ref
	case field.TypeList:
		if d.Elem == nil {
			return nil, defErr(schemaName, "field %q: list element is nil", d.Name)
		}
		elem, err := newFieldInfo(d.Elem, reg, schemaName)
		if err != nil {
			return nil, err
		}
		f.elem = elem
	case field.TypeUnion:
		if len(d.Candidates) < 2 {
			return nil, defErr(schemaName, "field %q: union needs at least two candidates", d.Name)
		}
		for _, cd := range d.Candidates {
			if cd.Type == field.TypeUnion {
				return nil, defErr(schemaName, "field %q: union candidates cannot be unions", d.Name)
			}
			c, err := newFieldInfo(cd, reg, schemaName)
			if err != nil {
				return nil, err
			}
			f.candidates = append(f.candidates, c)
		}
	case field.TypeEnum, field.TypeLiteral:
		if len(d.Values) == 0 {
			return nil, defErr(schemaName, "field %q has an empty value set", d.Name)
		}
		f.values = d.Values
	}
	return f, nil
}

// defaultValue produces the field's default. Producer defaults are invoked
// per call so documents never share a mutable default value.
func (f *FieldInfo) defaultValue() any { return f.def() }

// load validates and coerces an external value into internal form. path is
// the dotted storage path used in error reports.
func (f *FieldInfo) load(path string, v any, partial bool) (any, error) {
	if v == nil {
		if f.nillable {
			return nil, nil
		}
		return nil, invalid(path, "null is not allowed")
	}
	switch f.typ {
	case field.TypeString:
		if s, ok := coerceString(v); ok {
			return s, nil
		}
	case field.TypeInt:
		if n, ok := coerceInt(v); ok {
			return n, nil
		}
	case field.TypeFloat:
		if x, ok := coerceFloat(v); ok {
			return x, nil
		}
	case field.TypeBool:
		if b, ok := coerceBool(v); ok {
			return b, nil
		}
	case field.TypeTime:
		if t, ok := coerceTime(v); ok {
			return t, nil
		}
	case field.TypeBytes:
		if b, ok := coerceBytes(v); ok {
			return b, nil
		}
	case field.TypeObjectID:
		if id, ok := coerceObjectID(v); ok {
			return id, nil
		}
	case field.TypeUUID:
		if id, ok := coerceUUID(v); ok {
			return id, nil
		}
	case field.TypeDecimal:
		if d, ok := coerceDecimal(v); ok {
			return d, nil
		}
	case field.TypeMap:
		if m, ok := coerceMap(v); ok {
			return m, nil
		}
	case field.TypeEnum, field.TypeLiteral:
		for _, member := range f.values {
			if memberEqual(member.Value, v) {
				return member.Value, nil
			}
		}
		return nil, invalid(path, "%v is not a member of the %s value set", v, f.typ)
	case field.TypeList:
		return f.loadList(path, v, partial)
	case field.TypeEmbedded:
		return f.loadEmbedded(path, v, partial)
	case field.TypeUnion:
		return f.loadUnion(path, v, partial)
	}
	return nil, invalid(path, "expected %s, got %T", f.typ, v)
}

func (f *FieldInfo) loadList(path string, v any, partial bool) (any, error) {
	items, ok := coerceSlice(v)
	if !ok {
		return nil, invalid(path, "expected list, got %T", v)
	}
	out := make([]any, len(items))
	var errs []error
	for i, item := range items {
		loaded, err := f.elem.load(path+"."+strconv.Itoa(i), item, partial)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[i] = loaded
	}
	if err := NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *FieldInfo) loadEmbedded(path string, v any, partial bool) (any, error) {
	m, ok := coerceMap(v)
	if !ok {
		return nil, invalid(path, "expected document, got %T", v)
	}
	return f.schema.loadAt(path+".", m, partial)
}

// loadUnion dispatches by the exact runtime type of the input when it
// matches a single candidate; otherwise the candidates are tried in
// declaration order and all failures are aggregated.
func (f *FieldInfo) loadUnion(path string, v any, partial bool) (any, error) {
	if c := f.candidateByType(nativeType(v)); c != nil {
		return c.load(path, v, partial)
	}
	var errs []error
	for _, c := range f.candidates {
		loaded, err := c.load(path, v, partial)
		if err == nil {
			return loaded, nil
		}
		errs = append(errs, err)
	}
	return nil, &ValidationError{Path: path, Err: NewAggregateError(errs...)}
}

// candidateByType returns the sole candidate of the given type, or nil when
// none or several match.
func (f *FieldInfo) candidateByType(t field.Type) *FieldInfo {
	if t == field.TypeInvalid {
		return nil
	}
	var found *FieldInfo
	for _, c := range f.candidates {
		if c.typ == t {
			if found != nil {
				return nil
			}
			found = c
		}
	}
	return found
}

// nativeType maps a runtime value to the scalar field type it natively
// belongs to. Maps and slices return TypeInvalid: their dispatch is
// structural, through the ordered candidate fallback.
func nativeType(v any) field.Type {
	switch v.(type) {
	case string:
		return field.TypeString
	case int, int32, int64:
		return field.TypeInt
	case float64, float32:
		return field.TypeFloat
	case bool:
		return field.TypeBool
	case time.Time:
		return field.TypeTime
	case []byte:
		return field.TypeBytes
	case primitive.ObjectID:
		return field.TypeObjectID
	case uuid.UUID:
		return field.TypeUUID
	case decimal.Decimal:
		return field.TypeDecimal
	default:
		return field.TypeInvalid
	}
}

// memberEqual compares a declared enum/literal member value with an input,
// normalizing across numeric representations.
func memberEqual(member, input any) bool {
	if mi, ok := coerceInt(member); ok {
		if ii, ok := coerceInt(input); ok {
			return mi == ii
		}
	}
	if mf, ok := coerceFloat(member); ok {
		if inf, ok := coerceFloat(input); ok {
			return mf == inf
		}
	}
	return reflect.DeepEqual(member, input)
}

// dump produces a JSON-safe external representation of an internal value.
func (f *FieldInfo) dump(path string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch f.typ {
	case field.TypeTime:
		t, ok := v.(time.Time)
		if !ok {
			return nil, invalid(path, "expected time.Time, got %T", v)
		}
		return t.Format(time.RFC3339Nano), nil
	case field.TypeBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, invalid(path, "expected []byte, got %T", v)
		}
		return base64.StdEncoding.EncodeToString(b), nil
	case field.TypeObjectID:
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return nil, invalid(path, "expected ObjectID, got %T", v)
		}
		return id.Hex(), nil
	case field.TypeUUID:
		id, ok := v.(uuid.UUID)
		if !ok {
			return nil, invalid(path, "expected UUID, got %T", v)
		}
		return id.String(), nil
	case field.TypeDecimal:
		d, ok := v.(decimal.Decimal)
		if !ok {
			return nil, invalid(path, "expected decimal, got %T", v)
		}
		return d.String(), nil
	case field.TypeList:
		items, ok := v.([]any)
		if !ok {
			return nil, invalid(path, "expected list, got %T", v)
		}
		out := make([]any, len(items))
		for i, item := range items {
			dumped, err := f.elem.dump(path+"."+strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			out[i] = dumped
		}
		return out, nil
	case field.TypeEmbedded:
		doc, ok := v.(*Document)
		if !ok {
			return nil, invalid(path, "expected document, got %T", v)
		}
		return doc.Dump()
	case field.TypeUnion:
		c, err := f.dispatch(path, v)
		if err != nil {
			return nil, err
		}
		return c.dump(path, v)
	default:
		// Scalar internal forms (string, int64, float64, bool, map,
		// enum/literal members) are JSON-safe as stored.
		return v, nil
	}
}

// toStorage produces the value exactly as the storage engine expects it.
// Unlike dump, native temporal, binary and arbitrary-precision forms are
// preserved.
func (f *FieldInfo) toStorage(path string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch f.typ {
	case field.TypeUUID:
		id, ok := v.(uuid.UUID)
		if !ok {
			return nil, invalid(path, "expected UUID, got %T", v)
		}
		return id.String(), nil
	case field.TypeDecimal:
		d, ok := v.(decimal.Decimal)
		if !ok {
			return nil, invalid(path, "expected decimal, got %T", v)
		}
		d128, err := primitive.ParseDecimal128(d.String())
		if err != nil {
			return nil, fmt.Errorf("scriba: field %q: %w", path, err)
		}
		return d128, nil
	case field.TypeMap:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, invalid(path, "expected map, got %T", v)
		}
		return bson.M(m), nil
	case field.TypeList:
		items, ok := v.([]any)
		if !ok {
			return nil, invalid(path, "expected list, got %T", v)
		}
		out := make(bson.A, len(items))
		for i, item := range items {
			stored, err := f.elem.toStorage(path+"."+strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			out[i] = stored
		}
		return out, nil
	case field.TypeEmbedded:
		doc, ok := v.(*Document)
		if !ok {
			return nil, invalid(path, "expected document, got %T", v)
		}
		return doc.ToStorage()
	case field.TypeUnion:
		c, err := f.dispatch(path, v)
		if err != nil {
			return nil, err
		}
		return c.toStorage(path, v)
	default:
		// time.Time, ObjectID, []byte and plain scalars are stored
		// natively.
		return v, nil
	}
}

// dispatch selects the union candidate matching a stored value by its
// native or schema type.
func (f *FieldInfo) dispatch(path string, v any) (*FieldInfo, error) {
	if doc, ok := v.(*Document); ok {
		for _, c := range f.candidates {
			if c.typ == field.TypeEmbedded && c.schema == doc.schema {
				return c, nil
			}
		}
		return nil, &DispatchError{Path: path, Value: v}
	}
	if c := f.candidateByType(nativeType(v)); c != nil {
		return c, nil
	}
	// Stored scalars of enum/literal/map candidates have no unique native
	// type; fall back to the first candidate that accepts the value.
	for _, c := range f.candidates {
		if _, err := c.load(path, v, true); err == nil {
			return c, nil
		}
	}
	return nil, &DispatchError{Path: path, Value: v}
}

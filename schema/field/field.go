package field

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A Descriptor for a declared field. Builders in this package configure a
// Descriptor; the registry consumes it when the owning schema is resolved.
// Descriptors are write-once: after the owning schema resolves, they are
// never mutated again.
type Descriptor struct {
	Name     string     // declared field name
	Type     Type       // field type
	Key      string     // storage key; defaults to Name
	Default  func() any // default producer; nil when the field has no default
	Optional bool       // may be absent on full loads
	Nillable bool       // accepts explicit null
	Comment  string     // optional comment

	SchemaRef  string        // embedded: referenced schema name
	Elem       *Descriptor   // list: element descriptor
	Candidates []*Descriptor // union: ordered candidate descriptors
	Values     []EnumValue   // enum/literal: closed value set

	Err error // first builder error, reported at resolve time
}

// EnumValue is a single member of an enum's closed value set. Name is the
// symbolic name; Value is the underlying scalar that is stored and matched.
type EnumValue struct {
	Name  string
	Value any
}

func (d *Descriptor) err(format string, args ...any) {
	if d.Err == nil {
		d.Err = fmt.Errorf(format, args...)
	}
}

// constDefault wraps a constant value as a producer.
func constDefault(v any) func() any {
	return func() any { return v }
}

// StringBuilder is the builder for string fields.
type StringBuilder struct {
	desc *Descriptor
}

// String returns a new string field builder with the given name.
func String(name string) *StringBuilder {
	return &StringBuilder{&Descriptor{Name: name, Type: TypeString}}
}

// Default sets the default value of the field.
func (b *StringBuilder) Default(v string) *StringBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// DefaultFunc sets a producer invoked whenever the default is needed.
func (b *StringBuilder) DefaultFunc(fn func() string) *StringBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *StringBuilder) StorageKey(key string) *StringBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *StringBuilder) Optional() *StringBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *StringBuilder) Nillable() *StringBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *StringBuilder) Comment(c string) *StringBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *StringBuilder) Descriptor() *Descriptor { return b.desc }

// IntBuilder is the builder for integer fields. Values are held as int64
// internally.
type IntBuilder struct {
	desc *Descriptor
}

// Int returns a new integer field builder with the given name.
func Int(name string) *IntBuilder {
	return &IntBuilder{&Descriptor{Name: name, Type: TypeInt}}
}

// Default sets the default value of the field.
func (b *IntBuilder) Default(v int64) *IntBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// DefaultFunc sets a producer invoked whenever the default is needed.
func (b *IntBuilder) DefaultFunc(fn func() int64) *IntBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *IntBuilder) StorageKey(key string) *IntBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *IntBuilder) Optional() *IntBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *IntBuilder) Nillable() *IntBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *IntBuilder) Comment(c string) *IntBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *IntBuilder) Descriptor() *Descriptor { return b.desc }

// FloatBuilder is the builder for float64 fields.
type FloatBuilder struct {
	desc *Descriptor
}

// Float returns a new float field builder with the given name.
func Float(name string) *FloatBuilder {
	return &FloatBuilder{&Descriptor{Name: name, Type: TypeFloat}}
}

// Default sets the default value of the field.
func (b *FloatBuilder) Default(v float64) *FloatBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *FloatBuilder) StorageKey(key string) *FloatBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *FloatBuilder) Optional() *FloatBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *FloatBuilder) Nillable() *FloatBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *FloatBuilder) Comment(c string) *FloatBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *FloatBuilder) Descriptor() *Descriptor { return b.desc }

// BoolBuilder is the builder for bool fields.
type BoolBuilder struct {
	desc *Descriptor
}

// Bool returns a new bool field builder with the given name.
func Bool(name string) *BoolBuilder {
	return &BoolBuilder{&Descriptor{Name: name, Type: TypeBool}}
}

// Default sets the default value of the field.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *BoolBuilder) StorageKey(key string) *BoolBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *BoolBuilder) Optional() *BoolBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *BoolBuilder) Nillable() *BoolBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *BoolBuilder) Comment(c string) *BoolBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *BoolBuilder) Descriptor() *Descriptor { return b.desc }

// TimeBuilder is the builder for time.Time fields.
type TimeBuilder struct {
	desc *Descriptor
}

// Time returns a new time field builder with the given name.
func Time(name string) *TimeBuilder {
	return &TimeBuilder{&Descriptor{Name: name, Type: TypeTime}}
}

// Default sets a producer for the default value of the field, commonly
// time.Now.
func (b *TimeBuilder) Default(fn func() time.Time) *TimeBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *TimeBuilder) StorageKey(key string) *TimeBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *TimeBuilder) Optional() *TimeBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *TimeBuilder) Nillable() *TimeBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *TimeBuilder) Comment(c string) *TimeBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *TimeBuilder) Descriptor() *Descriptor { return b.desc }

// BytesBuilder is the builder for []byte fields.
type BytesBuilder struct {
	desc *Descriptor
}

// Bytes returns a new bytes field builder with the given name.
func Bytes(name string) *BytesBuilder {
	return &BytesBuilder{&Descriptor{Name: name, Type: TypeBytes}}
}

// StorageKey overrides the key under which the field is stored.
func (b *BytesBuilder) StorageKey(key string) *BytesBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *BytesBuilder) Optional() *BytesBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *BytesBuilder) Nillable() *BytesBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *BytesBuilder) Comment(c string) *BytesBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *BytesBuilder) Descriptor() *Descriptor { return b.desc }

// ObjectIDBuilder is the builder for primitive.ObjectID fields.
type ObjectIDBuilder struct {
	desc *Descriptor
}

// ObjectID returns a new ObjectID field builder with the given name.
func ObjectID(name string) *ObjectIDBuilder {
	return &ObjectIDBuilder{&Descriptor{Name: name, Type: TypeObjectID}}
}

// Default sets a producer for the default value of the field, commonly
// primitive.NewObjectID.
func (b *ObjectIDBuilder) Default(fn func() primitive.ObjectID) *ObjectIDBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *ObjectIDBuilder) StorageKey(key string) *ObjectIDBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *ObjectIDBuilder) Optional() *ObjectIDBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *ObjectIDBuilder) Nillable() *ObjectIDBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *ObjectIDBuilder) Comment(c string) *ObjectIDBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *ObjectIDBuilder) Descriptor() *Descriptor { return b.desc }

// UUIDBuilder is the builder for uuid.UUID fields.
type UUIDBuilder struct {
	desc *Descriptor
}

// UUID returns a new UUID field builder with the given name.
func UUID(name string) *UUIDBuilder {
	return &UUIDBuilder{&Descriptor{Name: name, Type: TypeUUID}}
}

// Default sets a producer for the default value of the field, commonly
// uuid.New.
func (b *UUIDBuilder) Default(fn func() uuid.UUID) *UUIDBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *UUIDBuilder) StorageKey(key string) *UUIDBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *UUIDBuilder) Optional() *UUIDBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *UUIDBuilder) Nillable() *UUIDBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *UUIDBuilder) Comment(c string) *UUIDBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *UUIDBuilder) Descriptor() *Descriptor { return b.desc }

// DecimalBuilder is the builder for arbitrary-precision decimal fields.
type DecimalBuilder struct {
	desc *Descriptor
}

// Decimal returns a new decimal field builder with the given name.
func Decimal(name string) *DecimalBuilder {
	return &DecimalBuilder{&Descriptor{Name: name, Type: TypeDecimal}}
}

// Default sets the default value of the field.
func (b *DecimalBuilder) Default(v decimal.Decimal) *DecimalBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *DecimalBuilder) StorageKey(key string) *DecimalBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *DecimalBuilder) Optional() *DecimalBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *DecimalBuilder) Nillable() *DecimalBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *DecimalBuilder) Comment(c string) *DecimalBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *DecimalBuilder) Descriptor() *Descriptor { return b.desc }

// MapBuilder is the builder for free-form map[string]any fields.
type MapBuilder struct {
	desc *Descriptor
}

// Map returns a new map field builder with the given name.
func Map(name string) *MapBuilder {
	return &MapBuilder{&Descriptor{Name: name, Type: TypeMap}}
}

// Default sets a producer for the default value of the field. The producer is
// invoked per use so documents never share one map value.
func (b *MapBuilder) Default(fn func() map[string]any) *MapBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *MapBuilder) StorageKey(key string) *MapBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *MapBuilder) Optional() *MapBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *MapBuilder) Nillable() *MapBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *MapBuilder) Comment(c string) *MapBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *MapBuilder) Descriptor() *Descriptor { return b.desc }

package field

// Of-helpers build anonymous element descriptors for List and Union fields.
// They carry no name; the owning field supplies the storage path.

// OfString returns a string element descriptor.
func OfString() *Descriptor { return &Descriptor{Type: TypeString} }

// OfInt returns an integer element descriptor.
func OfInt() *Descriptor { return &Descriptor{Type: TypeInt} }

// OfFloat returns a float element descriptor.
func OfFloat() *Descriptor { return &Descriptor{Type: TypeFloat} }

// OfBool returns a bool element descriptor.
func OfBool() *Descriptor { return &Descriptor{Type: TypeBool} }

// OfTime returns a time element descriptor.
func OfTime() *Descriptor { return &Descriptor{Type: TypeTime} }

// OfObjectID returns an ObjectID element descriptor.
func OfObjectID() *Descriptor { return &Descriptor{Type: TypeObjectID} }

// OfUUID returns a UUID element descriptor.
func OfUUID() *Descriptor { return &Descriptor{Type: TypeUUID} }

// OfDecimal returns a decimal element descriptor.
func OfDecimal() *Descriptor { return &Descriptor{Type: TypeDecimal} }

// OfMap returns a free-form map element descriptor.
func OfMap() *Descriptor { return &Descriptor{Type: TypeMap} }

// OfSchema returns an embedded-document element descriptor referencing the
// named schema. The name is a handle; it is bound against the registry when
// the owning schema resolves, so forward and self references are legal.
func OfSchema(name string) *Descriptor {
	return &Descriptor{Type: TypeEmbedded, SchemaRef: name}
}

// OfList returns a list element descriptor with the given inner element.
func OfList(elem *Descriptor) *Descriptor {
	return &Descriptor{Type: TypeList, Elem: elem}
}

// OfUnion returns a union element descriptor over the given candidates, tried
// in declaration order.
func OfUnion(candidates ...*Descriptor) *Descriptor {
	return &Descriptor{Type: TypeUnion, Candidates: candidates}
}

// OfLiteral returns a literal element descriptor over the given closed value
// set.
func OfLiteral(values ...any) *Descriptor {
	d := &Descriptor{Type: TypeLiteral}
	for _, v := range values {
		d.Values = append(d.Values, EnumValue{Value: v})
	}
	return d
}

// EmbeddedBuilder is the builder for embedded-document fields.
type EmbeddedBuilder struct {
	desc *Descriptor
}

// Embedded returns a new embedded field builder referencing the named schema.
func Embedded(name, schema string) *EmbeddedBuilder {
	d := &Descriptor{Name: name, Type: TypeEmbedded, SchemaRef: schema}
	if schema == "" {
		d.err("field %q: embedded schema name is empty", name)
	}
	return &EmbeddedBuilder{d}
}

// StorageKey overrides the key under which the field is stored.
func (b *EmbeddedBuilder) StorageKey(key string) *EmbeddedBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *EmbeddedBuilder) Optional() *EmbeddedBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *EmbeddedBuilder) Nillable() *EmbeddedBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *EmbeddedBuilder) Comment(c string) *EmbeddedBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *EmbeddedBuilder) Descriptor() *Descriptor { return b.desc }

// ListBuilder is the builder for homogeneous list fields.
type ListBuilder struct {
	desc *Descriptor
}

// List returns a new list field builder with the given element descriptor.
// The element may itself be composite:
//
//	field.List("tags", field.OfString())
//	field.List("children", field.OfSchema("User"))
//	field.List("mixed", field.OfUnion(field.OfInt(), field.OfString()))
func List(name string, elem *Descriptor) *ListBuilder {
	d := &Descriptor{Name: name, Type: TypeList, Elem: elem}
	if elem == nil {
		d.err("field %q: list element is nil", name)
	}
	return &ListBuilder{d}
}

// Default sets a producer for the default value of the field. The producer is
// invoked per use so documents never share one slice value.
func (b *ListBuilder) Default(fn func() []any) *ListBuilder {
	b.desc.Default = func() any { return fn() }
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *ListBuilder) StorageKey(key string) *ListBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *ListBuilder) Optional() *ListBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *ListBuilder) Nillable() *ListBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *ListBuilder) Comment(c string) *ListBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *ListBuilder) Descriptor() *Descriptor { return b.desc }

// UnionBuilder is the builder for tagged-union fields whose value may be one
// of several candidate shapes, dispatched structurally on load.
type UnionBuilder struct {
	desc *Descriptor
}

// Union returns a new union field builder over the given candidates. Load
// dispatches by exact runtime type when possible and otherwise tries the
// candidates in declaration order.
func Union(name string, candidates ...*Descriptor) *UnionBuilder {
	d := &Descriptor{Name: name, Type: TypeUnion, Candidates: candidates}
	if len(candidates) < 2 {
		d.err("field %q: union needs at least two candidates", name)
	}
	return &UnionBuilder{d}
}

// StorageKey overrides the key under which the field is stored.
func (b *UnionBuilder) StorageKey(key string) *UnionBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *UnionBuilder) Optional() *UnionBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *UnionBuilder) Nillable() *UnionBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *UnionBuilder) Comment(c string) *UnionBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *UnionBuilder) Descriptor() *Descriptor { return b.desc }

// EnumBuilder is the builder for enum fields. An enum stores the member's
// underlying scalar value, never its symbolic name.
type EnumBuilder struct {
	desc *Descriptor
}

// Enum returns a new enum field builder with the given name. The value set is
// supplied with Values or NamedValues.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{&Descriptor{Name: name, Type: TypeEnum}}
}

// Values sets the members of the enum; each name doubles as its underlying
// value.
func (b *EnumBuilder) Values(values ...string) *EnumBuilder {
	for _, v := range values {
		b.desc.Values = append(b.desc.Values, EnumValue{Name: v, Value: v})
	}
	return b
}

// NamedValues sets the members of the enum from (name, value) pairs, e.g.
//
//	field.Enum("place").NamedValues("one", 1, "two", 2)
func (b *EnumBuilder) NamedValues(pairs ...any) *EnumBuilder {
	if len(pairs)%2 != 0 {
		b.desc.err("field %q: NamedValues requires name/value pairs", b.desc.Name)
		return b
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			b.desc.err("field %q: NamedValues name %v is not a string", b.desc.Name, pairs[i])
			return b
		}
		b.desc.Values = append(b.desc.Values, EnumValue{Name: name, Value: pairs[i+1]})
	}
	return b
}

// Default sets the default value of the field; it must be the underlying
// value of a member.
func (b *EnumBuilder) Default(v any) *EnumBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *EnumBuilder) StorageKey(key string) *EnumBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *EnumBuilder) Optional() *EnumBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *EnumBuilder) Nillable() *EnumBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *EnumBuilder) Comment(c string) *EnumBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *EnumBuilder) Descriptor() *Descriptor {
	if len(b.desc.Values) == 0 {
		b.desc.err("field %q: enum has no values", b.desc.Name)
	}
	return b.desc
}

// LiteralBuilder is the builder for literal fields, a closed set of plain
// values (typically strings) without symbolic names.
type LiteralBuilder struct {
	desc *Descriptor
}

// Literal returns a new literal field builder over the given value set.
//
//	field.Literal("gender", "m", "f")
func Literal(name string, values ...any) *LiteralBuilder {
	d := &Descriptor{Name: name, Type: TypeLiteral}
	if len(values) == 0 {
		d.err("field %q: literal has no values", name)
	}
	for _, v := range values {
		d.Values = append(d.Values, EnumValue{Value: v})
	}
	return &LiteralBuilder{d}
}

// Default sets the default value of the field; it must be a member of the
// value set.
func (b *LiteralBuilder) Default(v any) *LiteralBuilder {
	b.desc.Default = constDefault(v)
	return b
}

// StorageKey overrides the key under which the field is stored.
func (b *LiteralBuilder) StorageKey(key string) *LiteralBuilder {
	b.desc.Key = key
	return b
}

// Optional marks the field as allowed to be absent on full loads.
func (b *LiteralBuilder) Optional() *LiteralBuilder {
	b.desc.Optional = true
	return b
}

// Nillable marks the field as accepting an explicit null value.
func (b *LiteralBuilder) Nillable() *LiteralBuilder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *LiteralBuilder) Comment(c string) *LiteralBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the scriba.Field interface.
func (b *LiteralBuilder) Descriptor() *Descriptor { return b.desc }

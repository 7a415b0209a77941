// Package field provides the builders used to declare document fields in a
// scriba schema definition.
//
// Each builder configures an immutable Descriptor that the registry turns
// into a runtime field when the owning schema is resolved:
//
//	func (User) Fields() []scriba.Field {
//	    return []scriba.Field{
//	        field.String("name"),
//	        field.Int("age"),
//	        field.Time("created_at").Default(time.Now),
//	        field.List("tags", field.OfString()),
//	        field.Embedded("wallet", "Wallet"),
//	        field.List("children", field.OfSchema("User")),
//	    }
//	}
//
// Composite builders reference other schemas by name rather than by value, so
// self-referential and forward-referenced declarations are legal; the
// references are bound when the registry resolves the schema.
//
// Builder mistakes (an enum with no values, a list without an element) are
// recorded on Descriptor.Err and surface as definition errors at resolve
// time, never as panics inside the builder chain.
package field

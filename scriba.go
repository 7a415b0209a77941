// Package scriba is a typed document-schema layer for MongoDB-shaped stores.
//
// A schema is declared once, as a Go type embedding Base and enumerating its
// fields, and from that single declaration the package derives a validation
// and coercion pipeline, a recursive storage encoding, and statically-checked
// dotted field paths for building query filters:
//
//	type Wallet struct{ scriba.Base }
//
//	func (Wallet) Fields() []scriba.Field {
//	    return []scriba.Field{
//	        field.Decimal("balance"),
//	    }
//	}
//
//	type User struct{ scriba.Base }
//
//	func (User) Fields() []scriba.Field {
//	    return []scriba.Field{
//	        field.String("name"),
//	        field.Int("age"),
//	        field.List("tags", field.OfString()),
//	        field.Embedded("wallet", "Wallet"),
//	        field.List("children", field.OfSchema("User")),
//	    }
//	}
//
//	reg := scriba.NewRegistry()
//	reg.MustRegister(Wallet{}, User{})
//	users := reg.MustSchema("User")
//	users.MustResolve()
//
//	doc, err := users.Load(data)
//	filter := mongo.And(
//	    users.F("name").EQ("Aber"),
//	    users.F("wallet").Dot("balance").GT(100),
//	)
//
// Composite fields reference other schemas by name, so declarations may be
// self-referential or refer to schemas registered later; the references are
// bound during resolution. Resolution is lazy, idempotent and safe for
// concurrent first use.
package scriba

import (
	"github.com/syssam/scriba/dialect/mongo"
	"github.com/syssam/scriba/schema/field"
)

// A Definition declares a document schema. The schema's name is the Go type
// name of the definition; its fields are enumerated by the Fields method.
//
// Definitions may additionally implement the Extender, Abstracter,
// CollectionNamer and Indexer interfaces to customize the schema.
type Definition interface {
	Fields() []Field
	// definition is implemented by Base to keep the set of schema
	// definitions closed over types that embed it.
	definition()
}

// A Field is one declared field of a schema, typically built with the
// schema/field package.
type Field interface {
	Descriptor() *field.Descriptor
}

// Base is the embeddable default implementation of Definition.
type Base struct{}

// Fields of the schema. The default is no fields.
func (Base) Fields() []Field { return nil }

func (Base) definition() {}

// A Mixin is a reusable set of field declarations composed into schemas.
type Mixin interface {
	Fields() []Field
}

// Mixer is implemented by definitions that compose mixins. Mixin fields are
// prepended to the definition's own fields in declaration order.
type Mixer interface {
	Mixin() []Mixin
}

// Extender is implemented by definitions that inherit another schema's
// fields. Parent fields come first in the merged field table; a redeclared
// name overrides the parent's field in place, preserving the parent's
// ordering.
type Extender interface {
	Extends() Definition
}

// Abstracter is implemented by definitions that cannot be instantiated,
// loaded or dumped themselves and exist only to be extended.
type Abstracter interface {
	Abstract() bool
}

// CollectionNamer is implemented by definitions that override the derived
// (snake_case) collection name.
type CollectionNamer interface {
	CollectionName() string
}

// Indexer is implemented by definitions that declare collection indexes.
// Index descriptors are pure data; creating them belongs to the driver
// layer.
type Indexer interface {
	Indexes() []mongo.Index
}

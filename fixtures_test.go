package scriba_test

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba"
	"github.com/syssam/scriba/dialect/mongo"
	"github.com/syssam/scriba/schema/field"
)

// Wallet is an embedded-only schema.
type Wallet struct{ scriba.Base }

func (Wallet) Fields() []scriba.Field {
	return []scriba.Field{
		field.Float("balance").Default(0),
	}
}

// User exercises most field kinds, including a self-referential list.
type User struct{ scriba.Base }

func (User) Fields() []scriba.Field {
	return []scriba.Field{
		field.ObjectID("id").StorageKey("_id").Default(primitive.NewObjectID),
		field.String("name"),
		field.Int("age").Default(0),
		field.List("tags", field.OfString()).Optional(),
		field.Embedded("wallet", "Wallet").Optional(),
		field.List("children", field.OfSchema("User")).Optional(),
		field.Literal("gender", "m", "f").Optional(),
		field.Enum("state").Values("active", "banned").Default("active"),
		field.Union("contact", field.OfInt(), field.OfString()).Optional(),
		field.Time("last_seen").Optional().Nillable(),
	}
}

func (User) Indexes() []mongo.Index {
	return []mongo.Index{
		{Keys: []mongo.Order{mongo.Asc("name")}, Unique: true},
	}
}

// Animal is an abstract base schema.
type Animal struct{ scriba.Base }

func (Animal) Abstract() bool { return true }

func (Animal) Fields() []scriba.Field {
	return []scriba.Field{
		field.String("name"),
		field.Int("legs").Default(4),
	}
}

// Dog extends Animal and overrides one inherited field in place.
type Dog struct{ scriba.Base }

func (Dog) Extends() scriba.Definition { return Animal{} }

func (Dog) Fields() []scriba.Field {
	return []scriba.Field{
		field.String("name").Default("rex"),
		field.String("breed"),
	}
}

// HouseCat overrides the derived collection name.
type HouseCat struct{ scriba.Base }

func (HouseCat) CollectionName() string { return "cats" }

func (HouseCat) Fields() []scriba.Field {
	return []scriba.Field{
		field.String("name"),
	}
}

// Ouro and Boros extend each other.
type Ouro struct{ scriba.Base }

func (Ouro) Extends() scriba.Definition { return Boros{} }

type Boros struct{ scriba.Base }

func (Boros) Extends() scriba.Definition { return Ouro{} }

func newTestRegistry() *scriba.Registry {
	reg := scriba.NewRegistry()
	reg.MustRegister(Wallet{}, User{}, Animal{}, Dog{}, HouseCat{})
	return reg
}

func mustLoad(reg *scriba.Registry, schema string, data map[string]any) *scriba.Document {
	doc, err := reg.MustSchema(schema).Load(data)
	if err != nil {
		panic(err)
	}
	return doc
}

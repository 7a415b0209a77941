package scriba_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba/dialect/mongo"
	"github.com/syssam/scriba/schema/field"
)

func TestPathComposition(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")
	users.MustResolve()

	assert.Equal(t, "name", users.F("name").String())
	assert.Equal(t, "_id", users.F("id").String())
	assert.Equal(t, "wallet.balance", users.F("wallet").Dot("balance").String())
	assert.Equal(t, "children.0.name", users.F("children").At(0).Dot("name").String())

	// Descending into a list of documents without an index matches any
	// element.
	assert.Equal(t, "children.age", users.F("children").Any().Dot("age").String())
	assert.Equal(t, "children.age", users.F("children").Dot("age").String())
	assert.Equal(t, "tags", users.F("tags").Any().String())
	assert.Equal(t, field.TypeString, users.F("tags").Any().Field().Type())
	assert.Equal(t, "children.wallet.balance", users.F("children").Dot("wallet").Dot("balance").String())

	assert.Equal(t, field.TypeFloat, users.F("wallet").Dot("balance").Field().Type())
}

func TestPathFilters(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")
	users.MustResolve()

	got := mongo.MustCompile(users.F("age").GTE(18))
	assert.Equal(t, bson.M{"age": bson.M{"$gte": 18}}, got)

	got = mongo.MustCompile(mongo.And(
		users.F("name").EQ("Aber"),
		users.F("age").LT(35),
	))
	assert.Equal(t, bson.M{"$and": bson.A{
		bson.M{"name": "Aber"},
		bson.M{"age": bson.M{"$lt": 35}},
	}}, got)

	got = mongo.MustCompile(mongo.Not(users.F("age").GT(18)))
	assert.Equal(t, bson.M{"age": bson.M{"$not": bson.M{"$gt": 18}}}, got)

	got = mongo.MustCompile(users.F("tags").In("a", "b"))
	assert.Equal(t, bson.M{"tags": bson.M{"$in": []any{"a", "b"}}}, got)

	got = mongo.MustCompile(users.F("wallet").NotExists())
	assert.Equal(t, bson.M{"wallet": bson.M{"$exists": false}}, got)
}

func TestPathRegexShortcuts(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")
	users.MustResolve()

	got := mongo.MustCompile(users.F("name").Contains("a.b", true))
	assert.Equal(t, bson.M{"name": bson.M{"$regex": `a\.b`}}, got)

	got = mongo.MustCompile(users.F("name").StartsWith("Ab", false))
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "^Ab", "$options": "i"}}, got)

	got = mongo.MustCompile(users.F("children").Dot("name").EndsWith("er", true))
	assert.Equal(t, bson.M{"children.name": bson.M{"$regex": "er$"}}, got)
}

func TestPathSort(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")
	users.MustResolve()

	sort := mongo.CompileSort(
		users.F("age").Desc(),
		users.F("name").Asc(),
	)
	assert.Equal(t, bson.D{
		{Key: "age", Value: int32(-1)},
		{Key: "name", Value: int32(1)},
	}, sort)
}

func TestPathOperandNormalization(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")
	users.MustResolve()

	d128, err := primitive.ParseDecimal128("1.5")
	require.NoError(t, err)
	got := mongo.MustCompile(users.F("wallet").Dot("balance").GT(decimal.RequireFromString("1.5")))
	assert.Equal(t, bson.M{"wallet.balance": bson.M{"$gt": d128}}, got)
}

func TestPathPanics(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")

	// Building paths on an unresolved schema is a programmer error.
	assert.Panics(t, func() { users.F("name") })

	users.MustResolve()
	assert.Panics(t, func() { users.F("passport") })
	assert.Panics(t, func() { users.F("name").Dot("anything") })
	assert.Panics(t, func() { users.F("wallet").Dot("missing") })
	assert.Panics(t, func() { users.F("name").At(0) })
	assert.Panics(t, func() { users.F("children").At(-1) })
	assert.Panics(t, func() { users.F("tags").Dot("anything") })
}

func TestSchemaIndexes(t *testing.T) {
	reg := newTestRegistry()
	users := reg.MustSchema("User")

	ixs := users.Indexes()
	require.Len(t, ixs, 1)
	keys, options, err := ixs[0].Compile()
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "name", Value: int32(1)}}, keys)
	assert.Equal(t, bson.M{"unique": true}, options)
}

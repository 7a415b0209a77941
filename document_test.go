package scriba_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba"
)

func TestDocumentAccessors(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{"name": "Aber"})

	v, err := doc.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Aber", v)
	assert.Equal(t, "Aber", doc.MustGet("name"))
	assert.True(t, doc.Has("name"))

	// Absent field.
	_, err = doc.Get("tags")
	require.Error(t, err)
	assert.True(t, scriba.IsNotSet(err))
	assert.False(t, doc.Has("tags"))

	// Unknown field.
	_, err = doc.Get("passport")
	require.Error(t, err)
	assert.True(t, scriba.IsUnknownField(err))
	assert.Panics(t, func() { doc.MustGet("passport") })
}

func TestDocumentSet(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{"name": "Aber"})

	require.NoError(t, doc.Set("age", 30))
	assert.Equal(t, int64(30), doc.MustGet("age"))

	// Set runs the same validation as load.
	err := doc.Set("age", "old")
	require.Error(t, err)
	assert.True(t, scriba.IsValidationError(err))

	err = doc.Set("passport", "x")
	require.Error(t, err)
	assert.True(t, scriba.IsUnknownField(err))
}

func TestDocumentUnset(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{"name": "Aber"})

	require.NoError(t, doc.Unset("name"))
	assert.False(t, doc.Has("name"))

	err := doc.Unset("name")
	require.Error(t, err)
	assert.True(t, scriba.IsNotSet(err))
}

func TestDocumentNullVsAbsent(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{"name": "Aber", "last_seen": nil})

	assert.True(t, doc.Has("last_seen"))
	v, err := doc.Get("last_seen")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, doc.Unset("last_seen"))
	_, err = doc.Get("last_seen")
	assert.True(t, scriba.IsNotSet(err))
}

func TestDocumentEqual(t *testing.T) {
	reg := newTestRegistry()
	id := primitive.NewObjectID()
	data := map[string]any{"_id": id, "name": "Aber", "wallet": map[string]any{"balance": 5.0}}

	a := mustLoad(reg, "User", data)
	b := mustLoad(reg, "User", data)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set("name", "Barn"))
	assert.False(t, a.Equal(b))

	// An explicit null and an absent field differ.
	c := mustLoad(reg, "User", map[string]any{"_id": id, "name": "Aber", "wallet": map[string]any{"balance": 5.0}, "last_seen": nil})
	assert.False(t, a.Equal(c))

	// Different schemas never compare equal.
	d := mustLoad(reg, "Wallet", map[string]any{"balance": 5.0})
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestDocumentEqualCanonicalValues(t *testing.T) {
	reg := newTestRegistry()
	reg.MustRegister(Vault{})
	vaults := reg.MustSchema("Vault")

	// Decimals compare numerically, not by representation: loading "12.50"
	// keeps exponent -2 while "12.5" keeps -1.
	a, err := vaults.Load(map[string]any{"amount": "12.50"})
	require.NoError(t, err)
	b, err := vaults.Load(map[string]any{"amount": "12.5"})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := vaults.Load(map[string]any{"amount": "12.51"})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	// Times compare as instants: a wall clock reading carries a monotonic
	// component and the local location, both of which a dump drops.
	now := time.Now()
	x := mustLoad(reg, "User", map[string]any{"name": "Aber", "last_seen": now})
	y := mustLoad(reg, "User", map[string]any{"name": "Aber", "last_seen": now.Round(0).UTC().Format(time.RFC3339Nano)})
	require.NoError(t, y.Set("id", x.MustGet("id")))
	assert.True(t, x.Equal(y))
}

func TestDocumentDump(t *testing.T) {
	reg := newTestRegistry()
	id := primitive.NewObjectID()
	seen := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	doc := mustLoad(reg, "User", map[string]any{
		"_id":       id,
		"name":      "Aber",
		"age":       18,
		"tags":      []any{"a"},
		"wallet":    map[string]any{"balance": 5.0},
		"last_seen": seen,
	})

	m, err := doc.Dump()
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), m["_id"])
	assert.Equal(t, "Aber", m["name"])
	assert.Equal(t, int64(18), m["age"])
	assert.Equal(t, []any{"a"}, m["tags"])
	assert.Equal(t, map[string]any{"balance": 5.0}, m["wallet"])
	assert.Equal(t, "2026-08-25T10:30:00Z", m["last_seen"])
	assert.NotContains(t, m, "children")
}

func TestDocumentDumpRoundTrip(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{
		"name":   "Aber",
		"wallet": map[string]any{"balance": 5.0},
	})

	m, err := doc.Dump()
	require.NoError(t, err)
	again, err := reg.MustSchema("User").Load(m)
	require.NoError(t, err)
	assert.Equal(t, doc.MustGet("id"), again.MustGet("id"))
	assert.True(t, doc.MustGet("wallet").(*scriba.Document).Equal(again.MustGet("wallet").(*scriba.Document)))
}

func TestDocumentToStorage(t *testing.T) {
	reg := newTestRegistry()
	id := primitive.NewObjectID()
	seen := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	doc := mustLoad(reg, "User", map[string]any{
		"_id":       id,
		"name":      "Aber",
		"wallet":    map[string]any{"balance": 5.0},
		"last_seen": seen,
	})

	m, err := doc.ToStorage()
	require.NoError(t, err)
	// Native wire forms, unlike Dump.
	assert.Equal(t, id, m["_id"])
	assert.Equal(t, seen, m["last_seen"])
	assert.Equal(t, bson.M{"balance": 5.0}, m["wallet"])
}

func TestDocumentMarshalJSON(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "Wallet", map[string]any{"balance": 5.0})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance": 5}`, string(data))

	assert.Contains(t, doc.String(), "Wallet(")
}

func TestAbstractDocumentDump(t *testing.T) {
	reg := newTestRegistry()
	doc, err := reg.MustSchema("Dog").Load(map[string]any{"breed": "akita"})
	require.NoError(t, err)
	_, err = doc.Dump()
	require.NoError(t, err)
}

func TestDocumentKeys(t *testing.T) {
	reg := newTestRegistry()
	doc := mustLoad(reg, "User", map[string]any{"name": "Aber"})
	// name plus the defaulted _id, age and state.
	assert.Equal(t, []string{"_id", "age", "name", "state"}, doc.Keys())
	assert.Equal(t, 4, doc.Len())
}

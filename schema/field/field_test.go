package field_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba/schema/field"
)

func TestString(t *testing.T) {
	fd := field.String("name").
		Comment("comment").
		Descriptor()
	assert.Equal(t, "name", fd.Name)
	assert.Equal(t, field.TypeString, fd.Type)
	assert.Equal(t, "comment", fd.Comment)
	assert.Nil(t, fd.Default)
	assert.NoError(t, fd.Err)

	fd = field.String("name").
		Default("unknown").
		StorageKey("display_name").
		Descriptor()
	require.NotNil(t, fd.Default)
	assert.Equal(t, "unknown", fd.Default())
	assert.Equal(t, "display_name", fd.Key)

	calls := 0
	fd = field.String("name").
		DefaultFunc(func() string { calls++; return "generated" }).
		Descriptor()
	assert.Equal(t, "generated", fd.Default())
	assert.Equal(t, "generated", fd.Default())
	assert.Equal(t, 2, calls)
}

func TestInt(t *testing.T) {
	fd := field.Int("age").
		Default(10).
		Optional().
		Descriptor()
	assert.Equal(t, "age", fd.Name)
	assert.Equal(t, field.TypeInt, fd.Type)
	assert.True(t, fd.Optional)
	assert.False(t, fd.Nillable)
	require.NotNil(t, fd.Default)
	assert.Equal(t, int64(10), fd.Default())

	fd = field.Int("age").
		Nillable().
		Descriptor()
	assert.Nil(t, fd.Default)
	assert.True(t, fd.Nillable)
}

func TestFloat(t *testing.T) {
	fd := field.Float("score").Default(0.5).Descriptor()
	assert.Equal(t, field.TypeFloat, fd.Type)
	assert.Equal(t, 0.5, fd.Default())
}

func TestBool(t *testing.T) {
	fd := field.Bool("active").Default(true).Descriptor()
	assert.Equal(t, field.TypeBool, fd.Type)
	assert.Equal(t, true, fd.Default())
}

func TestTime(t *testing.T) {
	fd := field.Time("created_at").
		Default(time.Now).
		Descriptor()
	assert.Equal(t, field.TypeTime, fd.Type)
	require.NotNil(t, fd.Default)
	_, ok := fd.Default().(time.Time)
	assert.True(t, ok)
}

func TestObjectID(t *testing.T) {
	fd := field.ObjectID("_id").
		Default(primitive.NewObjectID).
		StorageKey("_id").
		Descriptor()
	assert.Equal(t, field.TypeObjectID, fd.Type)
	first, ok := fd.Default().(primitive.ObjectID)
	require.True(t, ok)
	second := fd.Default().(primitive.ObjectID)
	assert.NotEqual(t, first, second)
}

func TestUUID(t *testing.T) {
	fd := field.UUID("id").Default(uuid.New).Descriptor()
	assert.Equal(t, field.TypeUUID, fd.Type)
	_, ok := fd.Default().(uuid.UUID)
	assert.True(t, ok)
}

func TestDecimal(t *testing.T) {
	fd := field.Decimal("balance").
		Default(decimal.NewFromInt(0)).
		Descriptor()
	assert.Equal(t, field.TypeDecimal, fd.Type)
	assert.True(t, fd.Default().(decimal.Decimal).IsZero())
}

func TestMap(t *testing.T) {
	fd := field.Map("extra").
		Default(func() map[string]any { return map[string]any{} }).
		Descriptor()
	assert.Equal(t, field.TypeMap, fd.Type)
	first := fd.Default().(map[string]any)
	second := fd.Default().(map[string]any)
	first["k"] = 1
	assert.Empty(t, second)
}

func TestEmbedded(t *testing.T) {
	fd := field.Embedded("wallet", "Wallet").Descriptor()
	assert.Equal(t, field.TypeEmbedded, fd.Type)
	assert.Equal(t, "Wallet", fd.SchemaRef)
	assert.NoError(t, fd.Err)

	fd = field.Embedded("wallet", "").Descriptor()
	assert.Error(t, fd.Err)
}

func TestList(t *testing.T) {
	fd := field.List("tags", field.OfString()).Descriptor()
	assert.Equal(t, field.TypeList, fd.Type)
	require.NotNil(t, fd.Elem)
	assert.Equal(t, field.TypeString, fd.Elem.Type)
	assert.Empty(t, fd.Elem.Name)

	fd = field.List("children", field.OfSchema("User")).Descriptor()
	assert.Equal(t, field.TypeEmbedded, fd.Elem.Type)
	assert.Equal(t, "User", fd.Elem.SchemaRef)

	fd = field.List("matrix", field.OfList(field.OfInt())).Descriptor()
	assert.Equal(t, field.TypeList, fd.Elem.Type)
	assert.Equal(t, field.TypeInt, fd.Elem.Elem.Type)

	fd = field.List("broken", nil).Descriptor()
	assert.Error(t, fd.Err)

	called := false
	fd = field.List("tags", field.OfString()).
		Default(func() []any { called = true; return []any{"a"} }).
		Descriptor()
	assert.Equal(t, []any{"a"}, fd.Default())
	assert.True(t, called)
}

func TestUnion(t *testing.T) {
	fd := field.Union("value", field.OfInt(), field.OfString()).Descriptor()
	assert.Equal(t, field.TypeUnion, fd.Type)
	require.Len(t, fd.Candidates, 2)
	assert.Equal(t, field.TypeInt, fd.Candidates[0].Type)
	assert.Equal(t, field.TypeString, fd.Candidates[1].Type)
	assert.NoError(t, fd.Err)

	fd = field.Union("value", field.OfInt()).Descriptor()
	assert.Error(t, fd.Err)
}

func TestEnum(t *testing.T) {
	fd := field.Enum("state").
		Values("active", "inactive").
		Default("active").
		Descriptor()
	assert.Equal(t, field.TypeEnum, fd.Type)
	require.Len(t, fd.Values, 2)
	assert.Equal(t, "active", fd.Values[0].Name)
	assert.Equal(t, "active", fd.Values[0].Value)
	assert.Equal(t, "active", fd.Default())

	fd = field.Enum("place").
		NamedValues("first", 1, "second", 2).
		Descriptor()
	require.Len(t, fd.Values, 2)
	assert.Equal(t, "first", fd.Values[0].Name)
	assert.Equal(t, 1, fd.Values[0].Value)

	fd = field.Enum("place").NamedValues("first", 1, "second").Descriptor()
	assert.Error(t, fd.Err)

	fd = field.Enum("place").NamedValues(1, "first").Descriptor()
	assert.Error(t, fd.Err)

	fd = field.Enum("empty").Descriptor()
	assert.Error(t, fd.Err)
}

func TestLiteral(t *testing.T) {
	fd := field.Literal("gender", "m", "f").Descriptor()
	assert.Equal(t, field.TypeLiteral, fd.Type)
	require.Len(t, fd.Values, 2)
	assert.Equal(t, "m", fd.Values[0].Value)
	assert.Empty(t, fd.Values[0].Name)

	fd = field.Literal("empty").Descriptor()
	assert.Error(t, fd.Err)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "string", field.TypeString.String())
	assert.Equal(t, "objectid", field.TypeObjectID.String())
	assert.True(t, field.TypeList.Composite())
	assert.False(t, field.TypeList.Scalar())
	assert.True(t, field.TypeInt.Scalar())
	assert.False(t, field.Type(200).Valid())
}

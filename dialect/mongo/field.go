package mongo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Typed field wrappers give generated (or hand-written) query code
// statically-checked comparisons over a storage path:
//
//	var Age = mongo.IntField("age")
//	filter := mongo.And(Age.GTE(18), Age.LT(35))
//
// The string value of a wrapper is the dotted storage path it refers to.

// StringField is a string-typed storage path.
type StringField string

// Path returns the dotted storage path.
func (f StringField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f StringField) EQ(v string) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f StringField) NEQ(v string) *Compare { return NEQ(string(f), v) }

// GT returns a field > value comparison.
func (f StringField) GT(v string) *Compare { return GT(string(f), v) }

// GTE returns a field >= value comparison.
func (f StringField) GTE(v string) *Compare { return GTE(string(f), v) }

// LT returns a field < value comparison.
func (f StringField) LT(v string) *Compare { return LT(string(f), v) }

// LTE returns a field <= value comparison.
func (f StringField) LTE(v string) *Compare { return LTE(string(f), v) }

// In returns a comparison matching any of the given values.
func (f StringField) In(vs ...string) *Compare { return In(string(f), anySlice(vs)...) }

// NotIn returns a comparison matching none of the given values.
func (f StringField) NotIn(vs ...string) *Compare { return NotIn(string(f), anySlice(vs)...) }

// Contains returns a filter matching values containing v as a literal
// substring.
func (f StringField) Contains(v string, caseSensitive bool) *Raw {
	return Contains(string(f), v, caseSensitive)
}

// StartsWith returns a filter matching values starting with v.
func (f StringField) StartsWith(v string, caseSensitive bool) *Raw {
	return StartsWith(string(f), v, caseSensitive)
}

// EndsWith returns a filter matching values ending with v.
func (f StringField) EndsWith(v string, caseSensitive bool) *Raw {
	return EndsWith(string(f), v, caseSensitive)
}

// Exists returns a comparison on field presence.
func (f StringField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f StringField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f StringField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f StringField) Desc() Order { return Desc(string(f)) }

// IntField is an integer-typed storage path.
type IntField string

// Path returns the dotted storage path.
func (f IntField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f IntField) EQ(v int64) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f IntField) NEQ(v int64) *Compare { return NEQ(string(f), v) }

// GT returns a field > value comparison.
func (f IntField) GT(v int64) *Compare { return GT(string(f), v) }

// GTE returns a field >= value comparison.
func (f IntField) GTE(v int64) *Compare { return GTE(string(f), v) }

// LT returns a field < value comparison.
func (f IntField) LT(v int64) *Compare { return LT(string(f), v) }

// LTE returns a field <= value comparison.
func (f IntField) LTE(v int64) *Compare { return LTE(string(f), v) }

// In returns a comparison matching any of the given values.
func (f IntField) In(vs ...int64) *Compare { return In(string(f), anySlice(vs)...) }

// NotIn returns a comparison matching none of the given values.
func (f IntField) NotIn(vs ...int64) *Compare { return NotIn(string(f), anySlice(vs)...) }

// Exists returns a comparison on field presence.
func (f IntField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f IntField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f IntField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f IntField) Desc() Order { return Desc(string(f)) }

// FloatField is a float-typed storage path.
type FloatField string

// Path returns the dotted storage path.
func (f FloatField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f FloatField) EQ(v float64) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f FloatField) NEQ(v float64) *Compare { return NEQ(string(f), v) }

// GT returns a field > value comparison.
func (f FloatField) GT(v float64) *Compare { return GT(string(f), v) }

// GTE returns a field >= value comparison.
func (f FloatField) GTE(v float64) *Compare { return GTE(string(f), v) }

// LT returns a field < value comparison.
func (f FloatField) LT(v float64) *Compare { return LT(string(f), v) }

// LTE returns a field <= value comparison.
func (f FloatField) LTE(v float64) *Compare { return LTE(string(f), v) }

// In returns a comparison matching any of the given values.
func (f FloatField) In(vs ...float64) *Compare { return In(string(f), anySlice(vs)...) }

// NotIn returns a comparison matching none of the given values.
func (f FloatField) NotIn(vs ...float64) *Compare { return NotIn(string(f), anySlice(vs)...) }

// Exists returns a comparison on field presence.
func (f FloatField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f FloatField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f FloatField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f FloatField) Desc() Order { return Desc(string(f)) }

// BoolField is a bool-typed storage path.
type BoolField string

// Path returns the dotted storage path.
func (f BoolField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f BoolField) EQ(v bool) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f BoolField) NEQ(v bool) *Compare { return NEQ(string(f), v) }

// Exists returns a comparison on field presence.
func (f BoolField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f BoolField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f BoolField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f BoolField) Desc() Order { return Desc(string(f)) }

// TimeField is a time-typed storage path.
type TimeField string

// Path returns the dotted storage path.
func (f TimeField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f TimeField) EQ(v time.Time) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f TimeField) NEQ(v time.Time) *Compare { return NEQ(string(f), v) }

// GT returns a field > value comparison.
func (f TimeField) GT(v time.Time) *Compare { return GT(string(f), v) }

// GTE returns a field >= value comparison.
func (f TimeField) GTE(v time.Time) *Compare { return GTE(string(f), v) }

// LT returns a field < value comparison.
func (f TimeField) LT(v time.Time) *Compare { return LT(string(f), v) }

// LTE returns a field <= value comparison.
func (f TimeField) LTE(v time.Time) *Compare { return LTE(string(f), v) }

// Exists returns a comparison on field presence.
func (f TimeField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f TimeField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f TimeField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f TimeField) Desc() Order { return Desc(string(f)) }

// ObjectIDField is an ObjectID-typed storage path.
type ObjectIDField string

// Path returns the dotted storage path.
func (f ObjectIDField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f ObjectIDField) EQ(v primitive.ObjectID) *Compare { return EQ(string(f), v) }

// NEQ returns a field != value comparison.
func (f ObjectIDField) NEQ(v primitive.ObjectID) *Compare { return NEQ(string(f), v) }

// In returns a comparison matching any of the given values.
func (f ObjectIDField) In(vs ...primitive.ObjectID) *Compare { return In(string(f), anySlice(vs)...) }

// NotIn returns a comparison matching none of the given values.
func (f ObjectIDField) NotIn(vs ...primitive.ObjectID) *Compare {
	return NotIn(string(f), anySlice(vs)...)
}

// Exists returns a comparison on field presence.
func (f ObjectIDField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f ObjectIDField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f ObjectIDField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f ObjectIDField) Desc() Order { return Desc(string(f)) }

// UUIDField is a UUID-typed storage path.
type UUIDField string

// Path returns the dotted storage path.
func (f UUIDField) Path() string { return string(f) }

// EQ returns a field == value comparison. UUIDs are stored in their text
// form.
func (f UUIDField) EQ(v uuid.UUID) *Compare { return EQ(string(f), v.String()) }

// NEQ returns a field != value comparison.
func (f UUIDField) NEQ(v uuid.UUID) *Compare { return NEQ(string(f), v.String()) }

// In returns a comparison matching any of the given values.
func (f UUIDField) In(vs ...uuid.UUID) *Compare {
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v.String()
	}
	return In(string(f), args...)
}

// Exists returns a comparison on field presence.
func (f UUIDField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f UUIDField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f UUIDField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f UUIDField) Desc() Order { return Desc(string(f)) }

// DecimalField is a decimal-typed storage path. Comparisons carry the
// store's native decimal form.
type DecimalField string

// Path returns the dotted storage path.
func (f DecimalField) Path() string { return string(f) }

// EQ returns a field == value comparison.
func (f DecimalField) EQ(v decimal.Decimal) *Compare { return EQ(string(f), decimal128(v)) }

// NEQ returns a field != value comparison.
func (f DecimalField) NEQ(v decimal.Decimal) *Compare { return NEQ(string(f), decimal128(v)) }

// GT returns a field > value comparison.
func (f DecimalField) GT(v decimal.Decimal) *Compare { return GT(string(f), decimal128(v)) }

// GTE returns a field >= value comparison.
func (f DecimalField) GTE(v decimal.Decimal) *Compare { return GTE(string(f), decimal128(v)) }

// LT returns a field < value comparison.
func (f DecimalField) LT(v decimal.Decimal) *Compare { return LT(string(f), decimal128(v)) }

// LTE returns a field <= value comparison.
func (f DecimalField) LTE(v decimal.Decimal) *Compare { return LTE(string(f), decimal128(v)) }

// Exists returns a comparison on field presence.
func (f DecimalField) Exists() *Compare { return Exists(string(f), true) }

// NotExists returns a comparison on field absence.
func (f DecimalField) NotExists() *Compare { return Exists(string(f), false) }

// Asc returns an ascending order on the field.
func (f DecimalField) Asc() Order { return Asc(string(f)) }

// Desc returns a descending order on the field.
func (f DecimalField) Desc() Order { return Desc(string(f)) }

func anySlice[T any](vs []T) []any {
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v
	}
	return args
}

// decimal128 converts a decimal to the store's native form. The text form of
// a decimal.Decimal always parses, so conversion cannot fail.
func decimal128(v decimal.Decimal) primitive.Decimal128 {
	d, _ := primitive.ParseDecimal128(v.String())
	return d
}

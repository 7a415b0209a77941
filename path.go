package scriba

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba/dialect/mongo"
	"github.com/syssam/scriba/schema/field"
)

// Path is a statically-checked dotted field path rooted at a schema field,
// obtained from Schema.F. Descending into an unknown field or past a
// non-composite field panics: path construction mistakes are programmer
// errors, caught where the path is written rather than where the filter
// runs.
type Path struct {
	field *FieldInfo
	path  string
}

// String returns the dotted storage path.
func (p *Path) String() string { return p.path }

// Field returns the field the path currently points at.
func (p *Path) Field() *FieldInfo { return p.field }

// Dot descends into a field of an embedded schema. On a list of embedded
// documents it descends into the element schema without an index, matching
// the store's any-element semantics.
func (p *Path) Dot(name string) *Path {
	target := p.field
	if target.typ == field.TypeList {
		target = target.elem
	}
	if target.typ != field.TypeEmbedded {
		panic(fmt.Sprintf("scriba: cannot descend into %s field %q", p.field.typ, p.path))
	}
	child, err := target.schema.Field(name)
	if err != nil {
		panic(err)
	}
	return &Path{field: child, path: p.path + "." + child.key}
}

// Any descends into the element of a list field without an index, the
// store's any-element form. The rendered path is unchanged.
func (p *Path) Any() *Path {
	if p.field.typ != field.TypeList {
		panic(fmt.Sprintf("scriba: cannot descend into %s field %q", p.field.typ, p.path))
	}
	return &Path{field: p.field.elem, path: p.path}
}

// At descends into one element of a list field by index.
func (p *Path) At(i int) *Path {
	if p.field.typ != field.TypeList {
		panic(fmt.Sprintf("scriba: cannot index into %s field %q", p.field.typ, p.path))
	}
	if i < 0 {
		panic(fmt.Sprintf("scriba: negative index into field %q", p.path))
	}
	return &Path{field: p.field.elem, path: p.path + "." + strconv.Itoa(i)}
}

// EQ returns a filter matching documents whose field equals v.
func (p *Path) EQ(v any) mongo.Expr { return mongo.EQ(p.path, storeValue(v)) }

// NEQ returns a filter matching documents whose field differs from v.
func (p *Path) NEQ(v any) mongo.Expr { return mongo.NEQ(p.path, storeValue(v)) }

// GT returns a filter matching documents whose field is greater than v.
func (p *Path) GT(v any) mongo.Expr { return mongo.GT(p.path, storeValue(v)) }

// GTE returns a filter matching documents whose field is at least v.
func (p *Path) GTE(v any) mongo.Expr { return mongo.GTE(p.path, storeValue(v)) }

// LT returns a filter matching documents whose field is less than v.
func (p *Path) LT(v any) mongo.Expr { return mongo.LT(p.path, storeValue(v)) }

// LTE returns a filter matching documents whose field is at most v.
func (p *Path) LTE(v any) mongo.Expr { return mongo.LTE(p.path, storeValue(v)) }

// In returns a filter matching documents whose field is any of vs.
func (p *Path) In(vs ...any) mongo.Expr {
	return mongo.In(p.path, storeValues(vs)...)
}

// NotIn returns a filter matching documents whose field is none of vs.
func (p *Path) NotIn(vs ...any) mongo.Expr {
	return mongo.NotIn(p.path, storeValues(vs)...)
}

// Contains returns a filter matching fields containing v as a literal
// substring.
func (p *Path) Contains(v string, caseSensitive bool) mongo.Expr {
	return mongo.Contains(p.path, v, caseSensitive)
}

// StartsWith returns a filter matching fields starting with v.
func (p *Path) StartsWith(v string, caseSensitive bool) mongo.Expr {
	return mongo.StartsWith(p.path, v, caseSensitive)
}

// EndsWith returns a filter matching fields ending with v.
func (p *Path) EndsWith(v string, caseSensitive bool) mongo.Expr {
	return mongo.EndsWith(p.path, v, caseSensitive)
}

// Exists returns a filter on the field being present.
func (p *Path) Exists() mongo.Expr { return mongo.Exists(p.path, true) }

// NotExists returns a filter on the field being absent.
func (p *Path) NotExists() mongo.Expr { return mongo.Exists(p.path, false) }

// Asc returns an ascending sort order on the field.
func (p *Path) Asc() mongo.Order { return mongo.Asc(p.path) }

// Desc returns a descending sort order on the field.
func (p *Path) Desc() mongo.Order { return mongo.Desc(p.path) }

// storeValue normalizes comparison operands that have no native store form.
func storeValue(v any) any {
	switch v := v.(type) {
	case decimal.Decimal:
		if d, err := primitive.ParseDecimal128(v.String()); err == nil {
			return d
		}
		return v.String()
	case uuid.UUID:
		return v.String()
	default:
		return v
	}
}

func storeValues(vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = storeValue(v)
	}
	return out
}

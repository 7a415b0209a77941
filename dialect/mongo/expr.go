// Package mongo provides the query-expression algebra for document filters
// and its compiler to the store's nested filter representation (bson.M).
//
// Expressions are immutable trees built from named constructors rather than
// operators:
//
//	mongo.And(
//	    mongo.EQ("name", "Aber"),
//	    mongo.Not(mongo.GT("age", 35)),
//	)
//
// Negation is simplified structurally at construction time: it distributes
// over And/Or via De Morgan's laws and cancels on double negation.
package mongo

import "go.mongodb.org/mongo-driver/bson"

// Op is a comparison operator token.
type Op string

// Comparison operators.
const (
	OpEQ     Op = "=="
	OpNEQ    Op = "!="
	OpGT     Op = ">"
	OpGTE    Op = ">="
	OpLT     Op = "<"
	OpLTE    Op = "<="
	OpIn     Op = "in"
	OpNotIn  Op = "not in"
	OpExists Op = "exists"
)

// opTokens maps every non-equality operator to its filter-grammar token.
// Equality compiles to the plain {path: value} form and is absent here.
var opTokens = map[Op]string{
	OpNEQ:    "$ne",
	OpGT:     "$gt",
	OpGTE:    "$gte",
	OpLT:     "$lt",
	OpLTE:    "$lte",
	OpIn:     "$in",
	OpNotIn:  "$nin",
	OpExists: "$exists",
}

// Logic is a boolean combination operator.
type Logic string

// Boolean combination operators.
const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
)

var logicTokens = map[Logic]string{
	LogicAnd: "$and",
	LogicOr:  "$or",
}

// An Expr is a node of an immutable query-expression tree. The concrete
// node types are Compare, Combine, Negation and Raw.
type Expr interface {
	expr()
}

// Compare is a single field comparison: path <op> value.
type Compare struct {
	Path  string
	Op    Op
	Value any
}

func (*Compare) expr() {}

// Combine is a boolean combination of two expressions.
type Combine struct {
	Op    Logic
	Left  Expr
	Right Expr
}

func (*Combine) expr() {}

// Negation marks its inner expression as negated. Negation of combinations
// is pushed down at construction time, so a Negation produced by Not always
// wraps a leaf node.
type Negation struct {
	X Expr
}

func (*Negation) expr() {}

// Raw is an opaque filter fragment passed through compilation unchanged.
type Raw struct {
	Filter bson.M
}

func (*Raw) expr() {}

// EQ returns a path == value comparison.
func EQ(path string, v any) *Compare { return &Compare{Path: path, Op: OpEQ, Value: v} }

// NEQ returns a path != value comparison.
func NEQ(path string, v any) *Compare { return &Compare{Path: path, Op: OpNEQ, Value: v} }

// GT returns a path > value comparison.
func GT(path string, v any) *Compare { return &Compare{Path: path, Op: OpGT, Value: v} }

// GTE returns a path >= value comparison.
func GTE(path string, v any) *Compare { return &Compare{Path: path, Op: OpGTE, Value: v} }

// LT returns a path < value comparison.
func LT(path string, v any) *Compare { return &Compare{Path: path, Op: OpLT, Value: v} }

// LTE returns a path <= value comparison.
func LTE(path string, v any) *Compare { return &Compare{Path: path, Op: OpLTE, Value: v} }

// In returns a comparison matching any of the given values.
func In(path string, vs ...any) *Compare { return &Compare{Path: path, Op: OpIn, Value: vs} }

// NotIn returns a comparison matching none of the given values.
func NotIn(path string, vs ...any) *Compare { return &Compare{Path: path, Op: OpNotIn, Value: vs} }

// Exists returns a comparison on field presence.
func Exists(path string, present bool) *Compare {
	return &Compare{Path: path, Op: OpExists, Value: present}
}

// And combines the given expressions conjunctively. A nil operand is the
// identity: And(nil, e) is e, so optional filters chain without
// special-casing. More than two operands fold left into binary nodes.
func And(exprs ...Expr) Expr { return combine(LogicAnd, exprs) }

// Or combines the given expressions disjunctively, with the same identity
// and folding rules as And.
func Or(exprs ...Expr) Expr { return combine(LogicOr, exprs) }

func combine(op Logic, exprs []Expr) Expr {
	var acc Expr
	for _, e := range exprs {
		switch {
		case e == nil:
		case acc == nil:
			acc = e
		default:
			acc = &Combine{Op: op, Left: acc, Right: e}
		}
	}
	return acc
}

// Not negates an expression. Negation distributes over combinations via
// De Morgan's laws and wraps leaves in a Negation marker; negating a
// Negation returns the exact inner node, so double negation cancels.
func Not(e Expr) Expr {
	switch e := e.(type) {
	case nil:
		return nil
	case *Negation:
		return e.X
	case *Combine:
		op := LogicOr
		if e.Op == LogicOr {
			op = LogicAnd
		}
		return &Combine{Op: op, Left: Not(e.Left), Right: Not(e.Right)}
	default:
		return &Negation{X: e}
	}
}

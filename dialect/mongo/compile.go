package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnsupported is returned by Compile for expression shapes the filter
// grammar cannot represent.
var ErrUnsupported = errors.New("mongo: unsupported expression")

// Compile transforms an expression tree into the store's nested filter
// representation. A nil expression compiles to the empty filter.
//
//	Compile(mongo.GTE("age", 18))  // bson.M{"age": bson.M{"$gte": 18}}
func Compile(e Expr) (bson.M, error) {
	if e == nil {
		return bson.M{}, nil
	}
	switch e := e.(type) {
	case *Raw:
		return e.Filter, nil
	case *Compare:
		return compileCompare(e), nil
	case *Combine:
		token, ok := logicTokens[e.Op]
		if !ok {
			return nil, fmt.Errorf("%w: combine operator %q", ErrUnsupported, e.Op)
		}
		left, err := Compile(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(e.Right)
		if err != nil {
			return nil, err
		}
		return bson.M{token: bson.A{left, right}}, nil
	case *Negation:
		cmp, ok := e.X.(*Compare)
		if !ok {
			return nil, fmt.Errorf("%w: negation of %T", ErrUnsupported, e.X)
		}
		return bson.M{cmp.Path: bson.M{"$not": operatorPayload(cmp)}}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, e)
	}
}

// MustCompile is like Compile but panics on unsupported expressions. It is
// intended for filters built entirely from this package's constructors.
func MustCompile(e Expr) bson.M {
	m, err := Compile(e)
	if err != nil {
		panic(err)
	}
	return m
}

func compileCompare(c *Compare) bson.M {
	if c.Op == OpEQ {
		return bson.M{c.Path: c.Value}
	}
	return bson.M{c.Path: operatorPayload(c)}
}

// operatorPayload returns the comparison's operator document without its
// path, the form the $not wrapper expects. Equality has no bare token in the
// plain form, so it is spelled $eq here.
func operatorPayload(c *Compare) bson.M {
	if c.Op == OpEQ {
		return bson.M{"$eq": c.Value}
	}
	return bson.M{opTokens[c.Op]: c.Value}
}

package mongo

import "go.mongodb.org/mongo-driver/bson"

// Direction is a sort direction.
type Direction int8

// Sort directions, in the store's numeric convention.
const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Order is one (path, direction) pair of a sort specification.
type Order struct {
	Path      string
	Direction Direction
}

// Asc returns an ascending order on the given path.
func Asc(path string) Order { return Order{Path: path, Direction: Ascending} }

// Desc returns a descending order on the given path.
func Desc(path string) Order { return Order{Path: path, Direction: Descending} }

// CompileSort turns an ordered sequence of orders into the store's sort
// document. Order matters, so the result is a bson.D.
func CompileSort(orders ...Order) bson.D {
	d := make(bson.D, 0, len(orders))
	for _, o := range orders {
		d = append(d, bson.E{Key: o.Path, Value: int32(o.Direction)})
	}
	return d
}

// Include returns an inclusion projection over the given paths, preserving
// their order.
func Include(paths ...string) bson.D {
	d := make(bson.D, 0, len(paths))
	for _, p := range paths {
		d = append(d, bson.E{Key: p, Value: 1})
	}
	return d
}

// Project returns a projection from a path to include/exclude mapping.
func Project(spec map[string]bool) bson.M {
	m := make(bson.M, len(spec))
	for p, include := range spec {
		if include {
			m[p] = 1
		} else {
			m[p] = 0
		}
	}
	return m
}

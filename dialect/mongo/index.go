package mongo

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Index describes a collection index as pure data. Compiling an index yields
// the key document and option document the store expects; creating the index
// belongs to the driver layer, not to this package.
type Index struct {
	Keys          []Order // ordered (path, direction) pairs
	Name          string  // optional explicit name
	Unique        bool
	Sparse        bool
	Background    bool
	ExpireAfter   time.Duration // TTL; zero means no expiry
	PartialFilter Expr          // optional partial-index filter
}

// ErrNoKeys is returned when an index declares no key.
var ErrNoKeys = errors.New("mongo: index has no keys")

// Compile returns the index key document and its options document.
func (ix Index) Compile() (keys bson.D, options bson.M, err error) {
	if len(ix.Keys) == 0 {
		return nil, nil, ErrNoKeys
	}
	keys = CompileSort(ix.Keys...)
	options = bson.M{}
	if ix.Name != "" {
		options["name"] = ix.Name
	}
	if ix.Unique {
		options["unique"] = true
	}
	if ix.Sparse {
		options["sparse"] = true
	}
	if ix.Background {
		options["background"] = true
	}
	if ix.ExpireAfter > 0 {
		options["expireAfterSeconds"] = int32(ix.ExpireAfter / time.Second)
	}
	if ix.PartialFilter != nil {
		filter, err := Compile(ix.PartialFilter)
		if err != nil {
			return nil, nil, err
		}
		options["partialFilterExpression"] = filter
	}
	return keys, options, nil
}

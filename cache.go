package scriba

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/syssam/scriba/dialect/mongo"
)

// Cache is a byte store for encoded documents, keyed by CacheKey strings.
// Implementations bring their own backend (Redis, Memcached, process
// memory); payloads come from EncodeDocument and read back through
// Schema.DecodeDocument.
type Cache interface {
	// Get reads a cached value. A missing key is (nil, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes a value. A zero ttl means the value does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key with the given prefix. CacheKey strings
	// start with "collection:", so a prefix invalidates one collection's
	// entries.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear empties the cache.
	Clear(ctx context.Context) error
}

// CacheKey identifies a query for caching.
type CacheKey struct {
	Collection string
	Operation  string
	Filter     bson.M
	Sort       bson.D
	Limit      int64
	Skip       int64
}

// NewCacheKey builds a cache key from a compiled filter and sort.
func NewCacheKey(collection, operation string, filter mongo.Expr, sort []mongo.Order) (CacheKey, error) {
	compiled, err := mongo.Compile(filter)
	if err != nil {
		return CacheKey{}, err
	}
	return CacheKey{
		Collection: collection,
		Operation:  operation,
		Filter:     compiled,
		Sort:       mongo.CompileSort(sort...),
	}, nil
}

// String returns the string representation of the cache key. JSON encoding
// writes map keys in sorted order, so equal filters yield equal keys.
func (k CacheKey) String() string {
	filter, _ := json.Marshal(k.Filter)
	sorting, _ := json.Marshal(k.Sort)
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d", k.Collection, k.Operation, filter, sorting, k.Limit, k.Skip)
}

// EncodeDocument serializes a document's dumped form for cache storage.
func EncodeDocument(doc *Document) ([]byte, error) {
	m, err := doc.Dump()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(m)
}

// DecodeDocument deserializes a cached document back through the schema's
// load pipeline. Decoding is partial: a projection may have dropped required
// fields before the document was cached.
func (s *Schema) DecodeDocument(data []byte) (*Document, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("scriba: schema %s: %w", s.name, err)
	}
	return s.LoadPartial(m)
}

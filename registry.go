package scriba

import (
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"
)

// Registry is an arena of schemas. Definitions register under their Go type
// name and reference each other by that name, so mutually recursive and
// self-referential schemas need no forward declarations; the name handles
// are bound when each schema resolves.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds definitions to the registry as unresolved schema shells.
// A schema name must start with an uppercase letter and must not contain an
// underscore; registering the same name twice is an error.
func (r *Registry) Register(defs ...Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, def := range defs {
		name := definitionName(def)
		if err := validateSchemaName(name); err != nil {
			return err
		}
		if _, ok := r.schemas[name]; ok {
			return defErr(name, "registered twice")
		}
		abstract := false
		if a, ok := def.(Abstracter); ok {
			abstract = a.Abstract()
		}
		r.schemas[name] = &Schema{
			reg:      r,
			def:      def,
			name:     name,
			abstract: abstract,
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(defs ...Definition) {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
}

// Schema returns the registered schema with the given name.
func (r *Registry) Schema(name string) (*Schema, error) {
	s, ok := r.lookup(name)
	if !ok {
		return nil, defErr(name, "not registered")
	}
	return s, nil
}

// MustSchema is like Schema but panics on error.
func (r *Registry) MustSchema(name string) *Schema {
	s, err := r.Schema(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Schemas returns all registered schemas sorted by name.
func (r *Registry) Schemas() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// ResolveAll resolves every registered schema concurrently and returns the
// first resolution error.
func (r *Registry) ResolveAll() error {
	var g errgroup.Group
	for _, s := range r.Schemas() {
		g.Go(s.Resolve)
	}
	return g.Wait()
}

func (r *Registry) lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// definitionName returns the Go type name of a definition, dereferencing a
// pointer definition if needed.
func definitionName(def Definition) string {
	t := reflect.TypeOf(def)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func validateSchemaName(name string) error {
	if name == "" {
		return defErr("", "definition has no type name")
	}
	if strings.Contains(name, "_") {
		return defErr(name, "schema name contains an underscore")
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return defErr(name, "schema name must start with an uppercase letter")
	}
	return nil
}

// snakeCase derives the default collection name from a schema name.
func snakeCase(name string) string {
	return inflect.Underscore(name)
}

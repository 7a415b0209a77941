package scriba

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/syssam/scriba/dialect/mongo"
)

// Schema is the resolved runtime form of a Definition: an ordered field
// table, a collection name and the inheritance link. Schemas are created as
// unresolved shells at registration; field descriptors are evaluated and
// schema references bound on first use or by an explicit Resolve.
type Schema struct {
	reg      *Registry
	def      Definition
	name     string
	abstract bool

	mu     sync.Mutex
	loaded atomic.Bool
	parent *Schema
	fields []*FieldInfo
	byName map[string]*FieldInfo
	byKey  map[string]*FieldInfo
}

// Name returns the schema name, the Go type name of its definition.
func (s *Schema) Name() string { return s.name }

// Abstract reports if the schema exists only to be extended.
func (s *Schema) Abstract() bool { return s.abstract }

// Collection returns the collection name: the definition's CollectionName
// when it implements CollectionNamer, otherwise the snake_case schema name.
func (s *Schema) Collection() string {
	if n, ok := s.def.(CollectionNamer); ok {
		return n.CollectionName()
	}
	return snakeCase(s.name)
}

// Indexes returns the index declarations of the definition, or nil.
func (s *Schema) Indexes() []mongo.Index {
	if ix, ok := s.def.(Indexer); ok {
		return ix.Indexes()
	}
	return nil
}

// Parent returns the extended schema, or nil. The schema must be resolved.
func (s *Schema) Parent() *Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parent
}

// Resolved reports if the schema's field table has been built.
func (s *Schema) Resolved() bool { return s.loaded.Load() }

// Fields returns the ordered resolved fields, parent fields first.
func (s *Schema) Fields() ([]*FieldInfo, error) {
	if err := s.ensureResolved(); err != nil {
		return nil, err
	}
	out := make([]*FieldInfo, len(s.fields))
	copy(out, s.fields)
	return out, nil
}

// Field returns the resolved field with the given name.
func (s *Schema) Field(name string) (*FieldInfo, error) {
	if err := s.ensureResolved(); err != nil {
		return nil, err
	}
	f, ok := s.byName[name]
	if !ok {
		return nil, &UnknownFieldError{Schema: s.name, Field: name}
	}
	return f, nil
}

// Resolve builds the schema's field table, including the tables of all
// schemas it extends. Resolution is idempotent and safe for concurrent use;
// a failed resolution is retried on the next call.
func (s *Schema) Resolve() error {
	if s.loaded.Load() {
		return nil
	}
	chain, err := s.chain()
	if err != nil {
		return err
	}
	for _, sc := range chain {
		if err := sc.resolveSelf(); err != nil {
			return err
		}
	}
	return nil
}

// MustResolve is like Resolve but panics on error.
func (s *Schema) MustResolve() {
	if err := s.Resolve(); err != nil {
		panic(err)
	}
}

func (s *Schema) ensureResolved() error {
	if s.loaded.Load() {
		return nil
	}
	return s.Resolve()
}

// chain returns the inheritance chain root-first, ending at s. Cycles in the
// Extends links are definition errors.
func (s *Schema) chain() ([]*Schema, error) {
	var chain []*Schema
	seen := make(map[*Schema]bool)
	for cur := s; ; {
		if seen[cur] {
			return nil, defErr(s.name, "inheritance cycle through %s", cur.name)
		}
		seen[cur] = true
		chain = append([]*Schema{cur}, chain...)
		ext, ok := cur.def.(Extender)
		if !ok {
			break
		}
		parentDef := ext.Extends()
		if parentDef == nil {
			break
		}
		pname := definitionName(parentDef)
		p, ok := cur.reg.lookup(pname)
		if !ok {
			return nil, defErr(cur.name, "extends unregistered schema %q", pname)
		}
		cur = p
	}
	return chain, nil
}

// resolveSelf builds this schema's own field table. Its parent, if any, must
// already be resolved; Resolve guarantees that by walking the chain
// root-first.
func (s *Schema) resolveSelf() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded.Load() {
		return nil
	}

	var parent *Schema
	if ext, ok := s.def.(Extender); ok {
		if parentDef := ext.Extends(); parentDef != nil {
			p, ok := s.reg.lookup(definitionName(parentDef))
			if !ok {
				return defErr(s.name, "extends unregistered schema %q", definitionName(parentDef))
			}
			if !p.loaded.Load() {
				return defErr(s.name, "parent %s is not resolved", p.name)
			}
			parent = p
		}
	}

	var fields []*FieldInfo
	byName := make(map[string]*FieldInfo)
	byKey := make(map[string]*FieldInfo)
	if parent != nil {
		fields = append(fields, parent.fields...)
		for _, f := range fields {
			byName[f.name] = f
			byKey[f.key] = f
		}
	}

	var decls []Field
	if mx, ok := s.def.(Mixer); ok {
		for _, m := range mx.Mixin() {
			decls = append(decls, m.Fields()...)
		}
	}
	decls = append(decls, s.def.Fields()...)

	for _, decl := range decls {
		d := decl.Descriptor()
		if d.Name == "" {
			return defErr(s.name, "field declared without a name")
		}
		f, err := newFieldInfo(d, s.reg, s.name)
		if err != nil {
			return err
		}
		f.owner = s
		if prev, ok := byName[f.name]; ok {
			if prev.owner == s {
				return defErr(s.name, "field %q declared twice", f.name)
			}
			// Redeclaring an inherited name overrides the parent's field
			// in place, keeping the parent's ordering.
			for i, pf := range fields {
				if pf == prev {
					fields[i] = f
					break
				}
			}
			delete(byKey, prev.key)
		} else {
			fields = append(fields, f)
		}
		if clash, ok := byKey[f.key]; ok && clash.name != f.name {
			return defErr(s.name, "fields %q and %q share storage key %q", clash.name, f.name, f.key)
		}
		byName[f.name] = f
		byKey[f.key] = f
	}

	s.parent = parent
	s.fields = fields
	s.byName = byName
	s.byKey = byKey
	s.loaded.Store(true)
	return nil
}

// F returns the typed path of a field for building filters and sort orders.
// It panics on an unresolved schema or an unknown field name; both are
// programmer errors, not data errors.
func (s *Schema) F(name string) *Path {
	if !s.loaded.Load() {
		panic(fmt.Sprintf("scriba: schema %s must be resolved before building field paths", s.name))
	}
	f, ok := s.byName[name]
	if !ok {
		panic(&UnknownFieldError{Schema: s.name, Field: name})
	}
	return &Path{field: f, path: f.key}
}

// Load validates external data against the schema and returns a document.
// Unknown keys are ignored. Missing fields take their declared default;
// without one, a missing non-optional field is a validation error. All field
// failures are collected before returning.
func (s *Schema) Load(data map[string]any) (*Document, error) {
	return s.loadAt("", data, false)
}

// LoadPartial is like Load but tolerates missing required fields, for data
// fetched with a projection. Declared defaults still fill absent fields.
func (s *Schema) LoadPartial(data map[string]any) (*Document, error) {
	return s.loadAt("", data, true)
}

// LoadJSON decodes a JSON object and loads it.
func (s *Schema) LoadJSON(data []byte) (*Document, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("scriba: schema %s: %w", s.name, err)
	}
	return s.Load(m)
}

// New builds a document from field values keyed by storage key. Unlike Load,
// unknown keys are rejected.
func (s *Schema) New(values map[string]any) (*Document, error) {
	if err := s.ensureResolved(); err != nil {
		return nil, err
	}
	var errs []error
	for k := range values {
		if _, ok := s.byKey[k]; !ok {
			errs = append(errs, &UnknownFieldError{Schema: s.name, Field: k})
		}
	}
	if err := NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return s.loadAt("", values, false)
}

func (s *Schema) loadAt(prefix string, data map[string]any, partial bool) (*Document, error) {
	if err := s.ensureResolved(); err != nil {
		return nil, err
	}
	if s.abstract {
		return nil, &AbstractError{Schema: s.name}
	}
	doc := newDocument(s)
	var errs []error
	for _, f := range s.fields {
		path := prefix + f.key
		raw, present := data[f.key]
		if !present {
			if f.def != nil {
				doc.values[f.key] = f.defaultValue()
				continue
			}
			if partial || f.optional {
				continue
			}
			errs = append(errs, invalid(path, "required field is missing"))
			continue
		}
		v, err := f.load(path, raw, partial)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		doc.values[f.key] = v
	}
	if err := NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return doc, nil
}

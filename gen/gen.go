// Package gen generates typed query-path packages from resolved schemas.
// For every schema it emits a Go file with the collection name and one
// typed path variable per reachable scalar field, so filters are written
// against compile-time checked identifiers instead of string paths:
//
//	user.WalletBalance.GT(decimal.NewFromInt(100))
package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/scriba"
	"github.com/syssam/scriba/schema/field"
)

const mongoPkg = "github.com/syssam/scriba/dialect/mongo"

// Config controls the generated output.
type Config struct {
	// Package is the target package name. Defaults to the lowercased
	// schema name.
	Package string
}

// Generate builds the typed path file for a schema. The schema is resolved
// if it is not already.
func Generate(s *scriba.Schema, cfg Config) (*jen.File, error) {
	if err := s.Resolve(); err != nil {
		return nil, err
	}
	pkg := cfg.Package
	if pkg == "" {
		pkg = strings.ToLower(s.Name())
	}
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by scriba-gen. DO NOT EDIT.")
	f.ImportName(mongoPkg, "mongo")

	f.Commentf("Collection is the collection name of the %s schema.", s.Name())
	f.Const().Id("Collection").Op("=").Lit(s.Collection())

	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	var defs []jen.Code
	if err := collect(&defs, fields, "", "", 0); err != nil {
		return nil, err
	}
	if len(defs) > 0 {
		f.Comment("Typed query paths, one per reachable scalar field.")
		f.Var().Defs(defs...)
	}
	return f, nil
}

// Write renders the generated file for a schema to w.
func Write(s *scriba.Schema, cfg Config, w io.Writer) error {
	f, err := Generate(s, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// maxDepth bounds descent into embedded schemas so self-referential
// declarations terminate.
const maxDepth = 1

func collect(defs *[]jen.Code, fields []*scriba.FieldInfo, identPrefix, pathPrefix string, depth int) error {
	for _, f := range fields {
		ident := identPrefix + pascal(f.Name())
		path := pathPrefix + f.Key()
		typ, elem := f.Type(), f.Elem()
		if typ == field.TypeList && elem != nil {
			// The store matches list paths against any element, so a
			// list of scalars gets the element's typed path and a list
			// of documents descends without an index.
			typ, f = elem.Type(), elem
		}
		switch typ {
		case field.TypeEmbedded:
			if depth >= maxDepth {
				continue
			}
			nested, err := f.Schema().Fields()
			if err != nil {
				return err
			}
			if err := collect(defs, nested, ident, path+".", depth+1); err != nil {
				return err
			}
		case field.TypeEnum, field.TypeLiteral:
			wrapper, ok := memberWrapper(f.Values())
			if !ok {
				continue
			}
			*defs = append(*defs, jen.Id(ident).Op("=").Qual(mongoPkg, wrapper).Call(jen.Lit(path)))
		default:
			wrapper, ok := scalarWrapper(typ)
			if !ok {
				continue
			}
			*defs = append(*defs, jen.Id(ident).Op("=").Qual(mongoPkg, wrapper).Call(jen.Lit(path)))
		}
	}
	return nil
}

// scalarWrapper maps a scalar field type to its typed path wrapper in
// dialect/mongo. Types without a wrapper (maps, unions, bytes) report false
// and are skipped.
func scalarWrapper(t field.Type) (string, bool) {
	switch t {
	case field.TypeString:
		return "StringField", true
	case field.TypeInt:
		return "IntField", true
	case field.TypeFloat:
		return "FloatField", true
	case field.TypeBool:
		return "BoolField", true
	case field.TypeTime:
		return "TimeField", true
	case field.TypeObjectID:
		return "ObjectIDField", true
	case field.TypeUUID:
		return "UUIDField", true
	case field.TypeDecimal:
		return "DecimalField", true
	default:
		return "", false
	}
}

// memberWrapper picks the wrapper for an enum or literal field from its
// member values, which must share one scalar kind.
func memberWrapper(values []field.EnumValue) (string, bool) {
	kind := ""
	for _, v := range values {
		k := ""
		switch v.Value.(type) {
		case string:
			k = "StringField"
		case int, int32, int64:
			k = "IntField"
		case float32, float64:
			k = "FloatField"
		default:
			return "", false
		}
		if kind == "" {
			kind = k
		} else if kind != k {
			return "", false
		}
	}
	return kind, kind != ""
}

var titleCaser = cases.Title(language.English)

// pascal converts a snake_case field name to an exported identifier.
func pascal(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		sb.WriteString(titleCaser.String(p))
	}
	if sb.Len() == 0 {
		return fmt.Sprintf("Field%s", name)
	}
	return sb.String()
}

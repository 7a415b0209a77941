// Package mixin provides the embeddable base for schema mixins.
package mixin

import "github.com/syssam/scriba"

// Schema is the embeddable default implementation of scriba.Mixin.
type Schema struct{}

// Fields of the mixin. The default is no fields.
func (Schema) Fields() []scriba.Field { return nil }

// Package mixin provides common mixin implementations for scriba schemas.
//
// These mixins are OPTIONAL and provided as convenient starting points.
// Users are encouraged to create their own mixins tailored to their needs.
//
// Available mixins:
//   - CreateTime: Adds created_at timestamp field
//   - UpdateTime: Adds updated_at timestamp field
//   - Time: Combines CreateTime and UpdateTime
//   - ID: Adds ObjectID primary key with auto-generation
//   - UUID: Adds UUID primary key with auto-generation
//   - SoftDelete: Adds deleted_at field for soft deletion
//   - TenantID: Adds tenant_id field for multi-tenancy
//
// Usage:
//
//	import "github.com/syssam/scriba/contrib/mixin"
//
//	func (User) Mixin() []scriba.Mixin {
//	    return []scriba.Mixin{
//	        mixin.ID{},
//	        mixin.Time{},
//	    }
//	}
//
// Custom mixins:
//
// For project-specific needs, define your own mixins:
//
//	type AuditMixin struct {
//	    mixin.Schema
//	}
//
//	func (AuditMixin) Fields() []scriba.Field {
//	    return []scriba.Field{
//	        field.String("created_by"),
//	        field.String("updated_by").Optional(),
//	    }
//	}
package mixin

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba"
	"github.com/syssam/scriba/schema/field"
	"github.com/syssam/scriba/schema/mixin"
)

// CreateTime adds a created_at time field defaulting to time.Now.
type CreateTime struct{ mixin.Schema }

// Fields of the create time mixin.
func (CreateTime) Fields() []scriba.Field {
	return []scriba.Field{
		field.Time("created_at").
			Default(time.Now),
	}
}

// create time mixin must implement `Mixin` interface.
var _ scriba.Mixin = (*CreateTime)(nil)

// UpdateTime adds an updated_at time field defaulting to time.Now. Callers
// refresh it on mutation.
type UpdateTime struct{ mixin.Schema }

// Fields of the update time mixin.
func (UpdateTime) Fields() []scriba.Field {
	return []scriba.Field{
		field.Time("updated_at").
			Default(time.Now),
	}
}

var _ scriba.Mixin = (*UpdateTime)(nil)

// Time composes the CreateTime and UpdateTime mixins.
type Time struct{ mixin.Schema }

// Fields of the time mixin.
func (Time) Fields() []scriba.Field {
	return append(
		CreateTime{}.Fields(),
		UpdateTime{}.Fields()...,
	)
}

var _ scriba.Mixin = (*Time)(nil)

// ID adds an auto-generated ObjectID primary key stored under _id.
type ID struct{ mixin.Schema }

// Fields of the id mixin.
func (ID) Fields() []scriba.Field {
	return []scriba.Field{
		field.ObjectID("id").
			StorageKey("_id").
			Default(primitive.NewObjectID),
	}
}

var _ scriba.Mixin = (*ID)(nil)

// UUID adds an auto-generated UUID primary key.
type UUID struct{ mixin.Schema }

// Fields of the uuid mixin.
func (UUID) Fields() []scriba.Field {
	return []scriba.Field{
		field.UUID("id").
			Default(uuid.New),
	}
}

var _ scriba.Mixin = (*UUID)(nil)

// SoftDelete adds a nullable deleted_at field for soft deletion.
type SoftDelete struct{ mixin.Schema }

// Fields of the soft delete mixin.
func (SoftDelete) Fields() []scriba.Field {
	return []scriba.Field{
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

var _ scriba.Mixin = (*SoftDelete)(nil)

// TenantID adds a tenant_id field for multi-tenancy.
type TenantID struct{ mixin.Schema }

// Fields of the tenant id mixin.
func (TenantID) Fields() []scriba.Field {
	return []scriba.Field{
		field.String("tenant_id"),
	}
}

var _ scriba.Mixin = (*TenantID)(nil)

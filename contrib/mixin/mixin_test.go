package mixin_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syssam/scriba"
	"github.com/syssam/scriba/contrib/mixin"
	"github.com/syssam/scriba/schema/field"
)

type Article struct{ scriba.Base }

func (Article) Mixin() []scriba.Mixin {
	return []scriba.Mixin{
		mixin.ID{},
		mixin.Time{},
		mixin.SoftDelete{},
	}
}

func (Article) Fields() []scriba.Field {
	return []scriba.Field{
		field.String("title"),
	}
}

func TestMixinFieldsComposed(t *testing.T) {
	reg := scriba.NewRegistry()
	reg.MustRegister(Article{})
	s := reg.MustSchema("Article")
	require.NoError(t, s.Resolve())

	fields, err := s.Fields()
	require.NoError(t, err)
	var names []string
	for _, f := range fields {
		names = append(names, f.Name())
	}
	// Mixin fields come first, own fields last.
	assert.Equal(t, []string{"id", "created_at", "updated_at", "deleted_at", "title"}, names)

	id, err := s.Field("id")
	require.NoError(t, err)
	assert.Equal(t, "_id", id.Key())
}

func TestMixinDefaults(t *testing.T) {
	reg := scriba.NewRegistry()
	reg.MustRegister(Article{})

	doc, err := reg.MustSchema("Article").Load(map[string]any{"title": "hello"})
	require.NoError(t, err)

	_, ok := doc.MustGet("id").(primitive.ObjectID)
	assert.True(t, ok)
	_, ok = doc.MustGet("created_at").(time.Time)
	assert.True(t, ok)
	assert.False(t, doc.Has("deleted_at"))
}

func TestMixinFieldSets(t *testing.T) {
	assert.Len(t, mixin.Time{}.Fields(), 2)
	assert.Len(t, mixin.UUID{}.Fields(), 1)
	assert.Equal(t, "tenant_id", mixin.TenantID{}.Fields()[0].Descriptor().Name)

	deleted := mixin.SoftDelete{}.Fields()[0].Descriptor()
	assert.True(t, deleted.Optional)
	assert.True(t, deleted.Nillable)
}

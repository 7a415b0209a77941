package mongo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/syssam/scriba/dialect/mongo"
)

func TestCompileSort(t *testing.T) {
	got := mongo.CompileSort(mongo.Asc("age"), mongo.Desc("created_at"))
	assert.Equal(t, bson.D{
		{Key: "age", Value: int32(1)},
		{Key: "created_at", Value: int32(-1)},
	}, got)

	assert.Empty(t, mongo.CompileSort())
}

func TestInclude(t *testing.T) {
	got := mongo.Include("name", "wallet.balance")
	assert.Equal(t, bson.D{
		{Key: "name", Value: 1},
		{Key: "wallet.balance", Value: 1},
	}, got)
}

func TestProject(t *testing.T) {
	got := mongo.Project(map[string]bool{"name": true, "extra": false})
	assert.Equal(t, bson.M{"name": 1, "extra": 0}, got)
}

package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestObjectID(t *testing.T) {
	oid, err := objectID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
}

func TestObjectID_Malformed(t *testing.T) {
	_, err := objectID("not-a-hex-id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "a malformed id is not a soft not-found")
}

func TestSanitizeUpdate(t *testing.T) {
	update := sanitizeUpdate(bson.M{
		"name":       "Press Line A",
		"_id":        "attacker-controlled",
		"id":         "attacker-controlled",
		"created_at": time.Time{},
	})

	assert.Equal(t, "Press Line A", update["name"])
	assert.NotContains(t, update, "_id")
	assert.NotContains(t, update, "id")
	assert.NotContains(t, update, "created_at")
	assert.Contains(t, update, "updated_at")
}

func TestSanitizeUpdate_EmptyPartial(t *testing.T) {
	// An empty partial update still refreshes updated_at and nothing else.
	update := sanitizeUpdate(bson.M{})
	assert.Len(t, update, 1)
	assert.Contains(t, update, "updated_at")
}

func TestSanitizeUpdate_Nil(t *testing.T) {
	update := sanitizeUpdate(nil)
	require.NotNil(t, update)
	assert.Contains(t, update, "updated_at")
}

package db

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectID parses the external hex form of a document id. A malformed id is
// not a soft not-found; it surfaces as a plain error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

// sanitizeUpdate prepares a partial update for $set: the identifier and the
// creation timestamp can never be overwritten, and updated_at always
// refreshes.
func sanitizeUpdate(update bson.M) bson.M {
	if update == nil {
		update = bson.M{}
	}
	delete(update, "_id")
	delete(update, "id")
	delete(update, "created_at")
	update["updated_at"] = time.Now().UTC()
	return update
}

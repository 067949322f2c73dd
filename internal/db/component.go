package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// ComponentStore wraps the components collection.
type ComponentStore struct {
	coll *mongo.Collection
}

// NewComponentStore creates a component store backed by the given database.
func NewComponentStore(database *mongo.Database) *ComponentStore {
	return &ComponentStore{coll: database.Collection(CollComponents)}
}

// Create inserts a new component and returns its id in hex form.
func (s *ComponentStore) Create(ctx context.Context, component models.Component) (string, error) {
	now := time.Now().UTC()
	if component.Condition == "" {
		component.Condition = "good"
	}
	if component.Status == "" {
		component.Status = "active"
	}
	if component.InstallationDate.IsZero() {
		component.InstallationDate = now
	}
	if component.Specifications == nil {
		component.Specifications = map[string]any{}
	}
	if component.ConditionHistory == nil {
		component.ConditionHistory = []models.ConditionEntry{}
	}
	component.ID = primitive.NilObjectID
	component.LastInspection = nil
	component.NextInspection = nil
	component.CreatedAt = now
	component.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, component)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// ListByMachine returns every component installed on the given machine.
func (s *ComponentStore) ListByMachine(ctx context.Context, machineID string) ([]models.Component, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"machine_id": machineID})
	if err != nil {
		return nil, err
	}
	components := []models.Component{}
	if err := cursor.All(ctx, &components); err != nil {
		return nil, err
	}
	return components, nil
}

// Get returns one component by id, or ErrNotFound.
func (s *ComponentStore) Get(ctx context.Context, id string) (*models.Component, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var component models.Component
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&component); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &component, nil
}

// Update merges the given partial document into the component.
func (s *ComponentStore) Update(ctx context.Context, id string, update bson.M) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": sanitizeUpdate(update)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCondition sets the component's condition, stamps the inspection time
// and appends an entry to the condition history log.
func (s *ComponentStore) UpdateCondition(ctx context.Context, id, condition, notes string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"condition":       condition,
			"last_inspection": now,
			"updated_at":      now,
		},
		"$push": bson.M{
			"condition_history": models.ConditionEntry{
				Condition: condition,
				Notes:     notes,
				Timestamp: now,
			},
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a component by id.
func (s *ComponentStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// ComplianceStore wraps the compliance collection.
type ComplianceStore struct {
	coll *mongo.Collection
}

// NewComplianceStore creates a compliance store backed by the given database.
func NewComplianceStore(database *mongo.Database) *ComplianceStore {
	return &ComplianceStore{coll: database.Collection(CollCompliance)}
}

// Create inserts a new compliance record and returns its id in hex form.
func (s *ComplianceStore) Create(ctx context.Context, record models.Compliance) (string, error) {
	now := time.Now().UTC()
	if record.Status == "" {
		record.Status = "pending"
	}
	if record.Requirements == nil {
		record.Requirements = []string{}
	}
	record.ID = primitive.NilObjectID
	record.LastChecked = nil
	record.Evidence = []models.Evidence{}
	record.CreatedAt = now
	record.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every compliance record, nearest due date first.
func (s *ComplianceStore) List(ctx context.Context) ([]models.Compliance, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	records := []models.Compliance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one compliance record by id, or ErrNotFound.
func (s *ComplianceStore) Get(ctx context.Context, id string) (*models.Compliance, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var record models.Compliance
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdateStatus sets the compliance status and stamps the check time. When
// evidence text is supplied it is appended to the evidence log.
func (s *ComplianceStore) UpdateStatus(ctx context.Context, id, status, evidence string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":       status,
			"last_checked": now,
			"updated_at":   now,
		},
	}
	if evidence != "" {
		update["$push"] = bson.M{
			"evidence": models.Evidence{
				Description: evidence,
				Timestamp:   now,
			},
		}
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Overdue returns records whose due date has passed and which are still in an
// actionable status. The stored status field is never auto-transitioned;
// overdue detection happens only at read time.
func (s *ComplianceStore) Overdue(ctx context.Context) ([]models.Compliance, error) {
	cursor, err := s.coll.Find(ctx, bson.M{
		"due_date": bson.M{"$lt": time.Now().UTC()},
		"status":   bson.M{"$in": bson.A{"pending", "overdue"}},
	})
	if err != nil {
		return nil, err
	}
	records := []models.Compliance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Update merges the given partial document into the compliance record.
func (s *ComplianceStore) Update(ctx context.Context, id string, update bson.M) error {
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

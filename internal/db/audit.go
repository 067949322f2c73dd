package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// AuditStore wraps the audits collection.
type AuditStore struct {
	coll *mongo.Collection
}

// NewAuditStore creates an audit store backed by the given database.
func NewAuditStore(database *mongo.Database) *AuditStore {
	return &AuditStore{coll: database.Collection(CollAudits)}
}

// Create inserts a new audit and returns its id in hex form. When the caller
// supplies no audit number, one is generated so the unique index stays
// meaningful.
func (s *AuditStore) Create(ctx context.Context, audit models.Audit) (string, error) {
	now := time.Now().UTC()
	if audit.AuditNumber == "" {
		audit.AuditNumber = fmt.Sprintf("AUD-%s", uuid.NewString()[:8])
	}
	if audit.Status == "" {
		audit.Status = "scheduled"
	}
	if audit.Checklist == nil {
		audit.Checklist = []string{}
	}
	audit.ID = primitive.NilObjectID
	audit.CompletedDate = nil
	audit.Findings = []models.Finding{}
	audit.Score = nil
	audit.Recommendation = ""
	audit.CreatedAt = now
	audit.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, audit)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every audit, newest first.
func (s *AuditStore) List(ctx context.Context) ([]models.Audit, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	audits := []models.Audit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, err
	}
	return audits, nil
}

// Get returns one audit by id, or ErrNotFound.
func (s *AuditStore) Get(ctx context.Context, id string) (*models.Audit, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var audit models.Audit
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&audit); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &audit, nil
}

// AddFinding appends an entry to the audit's findings log.
func (s *AuditStore) AddFinding(ctx context.Context, id string, finding models.Finding) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	finding.Timestamp = time.Now().UTC()
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"findings": finding},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete marks an audit as completed, recording its score and
// recommendation. The completion date and score are set here, once.
func (s *AuditStore) Complete(ctx context.Context, id string, score float64, recommendation string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":         "completed",
			"completed_date": now,
			"score":          score,
			"recommendation": recommendation,
			"updated_at":     now,
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

// Update merges the given partial document into the audit.
func (s *AuditStore) Update(ctx context.Context, id string, update bson.M) error {
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

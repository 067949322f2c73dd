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

// HistoryStore wraps the maintenance_history collection. Records are
// append-only: there is no update or delete.
type HistoryStore struct {
	coll *mongo.Collection
}

// NewHistoryStore creates a history store backed by the given database.
func NewHistoryStore(database *mongo.Database) *HistoryStore {
	return &HistoryStore{coll: database.Collection(CollHistory)}
}

// Create inserts a new history record and returns its id in hex form.
func (s *HistoryStore) Create(ctx context.Context, record models.MaintenanceHistory) (string, error) {
	now := time.Now().UTC()
	if record.PerformedAt.IsZero() {
		record.PerformedAt = now
	}
	if record.Outcome == "" {
		record.Outcome = "success"
	}
	if record.PartsUsed == nil {
		record.PartsUsed = []models.PartUsed{}
	}
	if record.Attachments == nil {
		record.Attachments = []string{}
	}
	record.ID = primitive.NilObjectID
	record.CreatedAt = now

	res, err := s.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// ByMachine returns up to limit history records for a machine, newest first.
func (s *HistoryStore) ByMachine(ctx context.Context, machineID string, limit int) ([]models.MaintenanceHistory, error) {
	return s.find(ctx, bson.M{"machine_id": machineID}, limit)
}

// ByComponent returns up to limit history records for a component, newest first.
func (s *HistoryStore) ByComponent(ctx context.Context, componentID string, limit int) ([]models.MaintenanceHistory, error) {
	return s.find(ctx, bson.M{"component_id": componentID}, limit)
}

func (s *HistoryStore) find(ctx context.Context, query bson.M, limit int) ([]models.MaintenanceHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "performed_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	records := []models.MaintenanceHistory{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

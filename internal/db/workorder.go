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

// WorkOrderStore wraps the work_orders collection.
type WorkOrderStore struct {
	coll *mongo.Collection
}

// NewWorkOrderStore creates a work order store backed by the given database.
func NewWorkOrderStore(database *mongo.Database) *WorkOrderStore {
	return &WorkOrderStore{coll: database.Collection(CollWorkOrders)}
}

// WorkOrderFilter narrows List results. Empty fields are ignored.
type WorkOrderFilter struct {
	Status    string
	Priority  string
	MachineID string
}

// Create inserts a new work order and returns its id in hex form. When the
// caller supplies no order number, one is generated so the unique index
// stays meaningful.
func (s *WorkOrderStore) Create(ctx context.Context, order models.WorkOrder) (string, error) {
	now := time.Now().UTC()
	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("WO-%s", uuid.NewString()[:8])
	}
	if order.Priority == "" {
		order.Priority = "medium"
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	if order.Type == "" {
		order.Type = "corrective"
	}
	if order.Notes == nil {
		order.Notes = []models.WorkOrderNote{}
	}
	order.ID = primitive.NilObjectID
	order.ActualHours = 0
	order.StartedAt = nil
	order.CompletedAt = nil
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns work orders matching the filter, newest first.
func (s *WorkOrderStore) List(ctx context.Context, filter WorkOrderFilter) ([]models.WorkOrder, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.MachineID != "" {
		query["machine_id"] = filter.MachineID
	}

	cursor, err := s.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orders := []models.WorkOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one work order by id, or ErrNotFound.
func (s *WorkOrderStore) Get(ctx context.Context, id string) (*models.WorkOrder, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var order models.WorkOrder
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus transitions a work order's status. started_at is stamped once,
// on the first transition to in_progress; completed_at on completion.
func (s *WorkOrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update := bson.M{
		"status":     status,
		"updated_at": now,
	}
	switch {
	case status == "in_progress" && order.StartedAt == nil:
		update["started_at"] = now
	case status == "completed":
		update["completed_at"] = now
	}

	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddNote appends an entry to the work order's note log.
func (s *WorkOrderStore) AddNote(ctx context.Context, id, content, author string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{
			"notes": models.WorkOrderNote{
				Content:   content,
				Author:    author,
				Timestamp: time.Now().UTC(),
			},
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Update merges the given partial document into the work order.
func (s *WorkOrderStore) Update(ctx context.Context, id string, update bson.M) error {
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

// Delete removes a work order by id.
func (s *WorkOrderStore) Delete(ctx context.Context, id string) error {
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

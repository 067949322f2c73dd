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

// InventoryStore wraps the inventory collection.
type InventoryStore struct {
	coll *mongo.Collection
}

// NewInventoryStore creates an inventory store backed by the given database.
func NewInventoryStore(database *mongo.Database) *InventoryStore {
	return &InventoryStore{coll: database.Collection(CollInventory)}
}

// Create inserts a new inventory item and returns its id in hex form.
func (s *InventoryStore) Create(ctx context.Context, item models.InventoryItem) (string, error) {
	now := time.Now().UTC()
	if item.CompatibleMachines == nil {
		item.CompatibleMachines = []string{}
	}
	if item.CompatibleComponents == nil {
		item.CompatibleComponents = []string{}
	}
	item.ID = primitive.NilObjectID
	item.LastRestock = nil
	item.Transactions = []models.Transaction{}
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every inventory item.
func (s *InventoryStore) List(ctx context.Context) ([]models.InventoryItem, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "part_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []models.InventoryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns one inventory item by id, or ErrNotFound.
func (s *InventoryStore) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var item models.InventoryItem
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// applyAdjustment validates a stock delta against the quantity that was read
// and builds the resulting field updates and ledger entry. Stock can never go
// negative: a delta that would take the quantity below zero is rejected with
// ErrInsufficientStock. A restock ("in") additionally stamps last_restock.
func applyAdjustment(item *models.InventoryItem, delta int, transactionType, notes string, now time.Time) (bson.M, models.Transaction, error) {
	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		return nil, models.Transaction{}, ErrInsufficientStock
	}

	transaction := models.Transaction{
		Type:             transactionType,
		QuantityChange:   delta,
		PreviousQuantity: item.Quantity,
		NewQuantity:      newQuantity,
		Notes:            notes,
		Timestamp:        now,
	}

	update := bson.M{
		"quantity":   newQuantity,
		"updated_at": now,
	}
	if transactionType == "in" {
		update["last_restock"] = now
	}
	return update, transaction, nil
}

// AdjustQuantity applies a stock delta and appends an immutable ledger entry.
// A delta that would take the quantity below zero is rejected and nothing is
// written.
//
// The read and the write are not isolated from concurrent adjustments; each
// call enforces non-negativity only against the quantity it read.
func (s *InventoryStore) AdjustQuantity(ctx context.Context, id string, delta int, transactionType, notes string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	update, transaction, err := applyAdjustment(item, delta, transactionType, notes, time.Now().UTC())
	if err != nil {
		return err
	}

	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set":  update,
		"$push": bson.M{"transactions": transaction},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// LowStock returns every item at or below its minimum stock threshold.
func (s *InventoryStore) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	cursor, err := s.coll.Find(ctx, bson.M{
		"$expr": bson.M{"$lte": bson.A{"$quantity", "$min_stock"}},
	})
	if err != nil {
		return nil, err
	}
	items := []models.InventoryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update merges the given partial document into the inventory item.
func (s *InventoryStore) Update(ctx context.Context, id string, update bson.M) error {
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

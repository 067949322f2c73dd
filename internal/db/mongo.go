package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/plant-maintenance/internal/config"
)

// Connect opens a MongoDB client using the configured URI and verifies the
// connection with a ping.
func Connect(cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Collection names, one per resource.
const (
	CollMachines   = "machines"
	CollComponents = "components"
	CollWorkOrders = "work_orders"
	CollSchedules  = "maintenance_schedules"
	CollHistory    = "maintenance_history"
	CollAudits     = "audits"
	CollCompliance = "compliance"
	CollInventory  = "inventory"
)

// EnsureIndexes creates the unique and secondary indexes the API relies on.
// Uniqueness of serial numbers, order numbers, audit numbers and part numbers
// is enforced here by the store, not by the handlers.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		CollMachines: {
			{Keys: bson.D{{Key: "serial_number", Value: 1}}, Options: unique},
		},
		CollComponents: {
			{Keys: bson.D{{Key: "machine_id", Value: 1}}},
			{Keys: bson.D{{Key: "part_number", Value: 1}}},
		},
		CollWorkOrders: {
			{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "machine_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollSchedules: {
			{Keys: bson.D{{Key: "machine_id", Value: 1}}},
			{Keys: bson.D{{Key: "next_scheduled", Value: 1}}},
		},
		CollHistory: {
			{Keys: bson.D{{Key: "machine_id", Value: 1}}},
			{Keys: bson.D{{Key: "component_id", Value: 1}}},
			{Keys: bson.D{{Key: "performed_at", Value: 1}}},
		},
		CollAudits: {
			{Keys: bson.D{{Key: "audit_number", Value: 1}}, Options: unique},
		},
		CollCompliance: {
			{Keys: bson.D{{Key: "due_date", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollInventory: {
			{Keys: bson.D{{Key: "part_number", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range indexes {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

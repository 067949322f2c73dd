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

// MachineStore wraps the machines collection.
type MachineStore struct {
	coll *mongo.Collection
}

// NewMachineStore creates a machine store backed by the given database.
func NewMachineStore(database *mongo.Database) *MachineStore {
	return &MachineStore{coll: database.Collection(CollMachines)}
}

// Create inserts a new machine and returns its id in hex form.
func (s *MachineStore) Create(ctx context.Context, machine models.Machine) (string, error) {
	now := time.Now().UTC()
	if machine.Status == "" {
		machine.Status = "operational"
	}
	if machine.InstallationDate.IsZero() {
		machine.InstallationDate = now
	}
	if machine.Components == nil {
		machine.Components = []string{}
	}
	machine.ID = primitive.NilObjectID
	machine.LastMaintenance = nil
	machine.NextMaintenance = nil
	machine.CreatedAt = now
	machine.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, machine)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every machine.
func (s *MachineStore) List(ctx context.Context) ([]models.Machine, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	machines := []models.Machine{}
	if err := cursor.All(ctx, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

// Get returns one machine by id, or ErrNotFound.
func (s *MachineStore) Get(ctx context.Context, id string) (*models.Machine, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var machine models.Machine
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&machine); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &machine, nil
}

// Update merges the given partial document into the machine.
func (s *MachineStore) Update(ctx context.Context, id string, update bson.M) error {
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

// Delete removes a machine by id.
func (s *MachineStore) Delete(ctx context.Context, id string) error {
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

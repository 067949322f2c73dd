package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Machine represents a production machine tracked by the system.
type Machine struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Model            string             `bson:"model" json:"model"`
	SerialNumber     string             `bson:"serial_number" json:"serial_number"`
	Status           string             `bson:"status" json:"status"` // "operational", "maintenance", "broken"
	Location         string             `bson:"location" json:"location"`
	InstallationDate time.Time          `bson:"installation_date" json:"installation_date"`
	LastMaintenance  *time.Time         `bson:"last_maintenance" json:"last_maintenance"`
	NextMaintenance  *time.Time         `bson:"next_maintenance" json:"next_maintenance"`
	Components       []string           `bson:"components" json:"components"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Component represents a machine component.
type Component struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MachineID        string             `bson:"machine_id" json:"machine_id"`
	Name             string             `bson:"name" json:"name"`
	PartNumber       string             `bson:"part_number" json:"part_number"`
	Condition        string             `bson:"condition" json:"condition"` // "good", "fair", "poor", "critical"
	Status           string             `bson:"status" json:"status"`       // "active", "inactive", "replaced"
	InstallationDate time.Time          `bson:"installation_date" json:"installation_date"`
	LastInspection   *time.Time         `bson:"last_inspection" json:"last_inspection"`
	NextInspection   *time.Time         `bson:"next_inspection" json:"next_inspection"`
	LifespanHours    float64            `bson:"lifespan_hours" json:"lifespan_hours"`
	CurrentHours     float64            `bson:"current_hours" json:"current_hours"`
	Specifications   map[string]any     `bson:"specifications" json:"specifications"`
	ConditionHistory []ConditionEntry   `bson:"condition_history" json:"condition_history"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// ConditionEntry is one entry in a component's append-only condition log.
type ConditionEntry struct {
	Condition string    `bson:"condition" json:"condition"`
	Notes     string    `bson:"notes" json:"notes"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

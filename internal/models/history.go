package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceHistory is an immutable record of maintenance that was performed.
type MaintenanceHistory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MachineID       string             `bson:"machine_id" json:"machine_id"`
	ComponentID     string             `bson:"component_id,omitempty" json:"component_id,omitempty"`
	WorkOrderID     string             `bson:"work_order_id,omitempty" json:"work_order_id,omitempty"`
	MaintenanceType string             `bson:"maintenance_type" json:"maintenance_type"` // "preventive", "corrective", "predictive", "emergency"
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	PerformedBy     string             `bson:"performed_by" json:"performed_by"`
	PerformedAt     time.Time          `bson:"performed_at" json:"performed_at"`
	DurationHours   float64            `bson:"duration_hours" json:"duration_hours"`
	PartsUsed       []PartUsed         `bson:"parts_used" json:"parts_used"`
	Cost            float64            `bson:"cost" json:"cost"`
	Outcome         string             `bson:"outcome" json:"outcome"` // "success", "partial", "failed"
	Notes           string             `bson:"notes" json:"notes"`
	Attachments     []string           `bson:"attachments" json:"attachments"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// PartUsed records one spare part consumed during maintenance.
type PartUsed struct {
	PartNumber string `bson:"part_number" json:"part_number"`
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
}

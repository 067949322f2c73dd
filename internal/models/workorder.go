package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkOrder represents a maintenance work order for a machine or component.
type WorkOrder struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber    string             `bson:"order_number" json:"order_number"`
	MachineID      string             `bson:"machine_id" json:"machine_id"`
	ComponentID    string             `bson:"component_id,omitempty" json:"component_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Priority       string             `bson:"priority" json:"priority"` // "low", "medium", "high", "critical"
	Status         string             `bson:"status" json:"status"`     // "pending", "in_progress", "completed", "cancelled"
	Type           string             `bson:"type" json:"type"`         // "preventive", "corrective", "predictive"
	AssignedTo     string             `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	EstimatedHours float64            `bson:"estimated_hours" json:"estimated_hours"`
	ActualHours    float64            `bson:"actual_hours" json:"actual_hours"`
	ScheduledDate  *time.Time         `bson:"scheduled_date" json:"scheduled_date"`
	StartedAt      *time.Time         `bson:"started_at" json:"started_at"`
	CompletedAt    *time.Time         `bson:"completed_at" json:"completed_at"`
	Notes          []WorkOrderNote    `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// WorkOrderNote is one entry in a work order's append-only note log.
type WorkOrderNote struct {
	Content   string    `bson:"content" json:"content"`
	Author    string    `bson:"author" json:"author"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

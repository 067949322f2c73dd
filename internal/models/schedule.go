package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceSchedule represents a planned maintenance task, optionally recurring.
type MaintenanceSchedule struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MachineID         string             `bson:"machine_id" json:"machine_id"`
	ComponentID       string             `bson:"component_id,omitempty" json:"component_id,omitempty"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Frequency         string             `bson:"frequency" json:"frequency"` // "daily", "weekly", "monthly", "quarterly", "yearly"
	FrequencyValue    int                `bson:"frequency_value" json:"frequency_value"`
	ScheduledDate     time.Time          `bson:"scheduled_date" json:"scheduled_date"`
	EstimatedDuration float64            `bson:"estimated_duration" json:"estimated_duration"`
	TaskList          []string           `bson:"task_list" json:"task_list"`
	AssignedTo        string             `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Status            string             `bson:"status" json:"status"` // "scheduled", "completed", "skipped", "overdue"
	IsRecurring       bool               `bson:"is_recurring" json:"is_recurring"`
	LastCompleted     *time.Time         `bson:"last_completed" json:"last_completed"`
	NextScheduled     time.Time          `bson:"next_scheduled" json:"next_scheduled"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit represents a scheduled or completed equipment audit.
type Audit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuditNumber    string             `bson:"audit_number" json:"audit_number"`
	Title          string             `bson:"title" json:"title"`
	AuditType      string             `bson:"audit_type" json:"audit_type"` // "safety", "quality", "compliance", "performance"
	MachineID      string             `bson:"machine_id,omitempty" json:"machine_id,omitempty"`
	Auditor        string             `bson:"auditor" json:"auditor"`
	ScheduledDate  time.Time          `bson:"scheduled_date" json:"scheduled_date"`
	CompletedDate  *time.Time         `bson:"completed_date" json:"completed_date"`
	Status         string             `bson:"status" json:"status"` // "scheduled", "in_progress", "completed"
	Checklist      []string           `bson:"checklist" json:"checklist"`
	Findings       []Finding          `bson:"findings" json:"findings"`
	Score          *float64           `bson:"score" json:"score"`
	Recommendation string             `bson:"recommendation" json:"recommendation"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Finding is one entry in an audit's append-only findings log.
type Finding struct {
	Title          string    `bson:"title" json:"title"`
	Severity       string    `bson:"severity" json:"severity"` // "low", "medium", "high", "critical"
	Description    string    `bson:"description" json:"description"`
	Recommendation string    `bson:"recommendation" json:"recommendation"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
}

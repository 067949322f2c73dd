package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compliance represents a regulatory requirement the plant must satisfy.
type Compliance struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Regulation       string             `bson:"regulation" json:"regulation"`
	Category         string             `bson:"category" json:"category"` // "safety", "environmental", "quality", "labor"
	Description      string             `bson:"description" json:"description"`
	Requirements     []string           `bson:"requirements" json:"requirements"`
	ResponsibleParty string             `bson:"responsible_party" json:"responsible_party"`
	Frequency        string             `bson:"frequency" json:"frequency"` // "monthly", "quarterly", "annually"
	DueDate          time.Time          `bson:"due_date" json:"due_date"`
	Status           string             `bson:"status" json:"status"` // "pending", "compliant", "non_compliant", "overdue"
	LastChecked      *time.Time         `bson:"last_checked" json:"last_checked"`
	Evidence         []Evidence         `bson:"evidence" json:"evidence"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// Evidence is one entry in a compliance record's append-only evidence log.
type Evidence struct {
	Description string    `bson:"description" json:"description"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

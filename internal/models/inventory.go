package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem represents a spare part, tool or consumable held in stock.
type InventoryItem struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PartNumber           string             `bson:"part_number" json:"part_number"`
	Name                 string             `bson:"name" json:"name"`
	Description          string             `bson:"description" json:"description"`
	Category             string             `bson:"category" json:"category"` // "spare_parts", "tools", "consumables"
	Quantity             int                `bson:"quantity" json:"quantity"`
	Unit                 string             `bson:"unit" json:"unit"`
	MinStock             int                `bson:"min_stock" json:"min_stock"`
	MaxStock             int                `bson:"max_stock" json:"max_stock"`
	Location             string             `bson:"location" json:"location"`
	Supplier             string             `bson:"supplier" json:"supplier"`
	UnitPrice            float64            `bson:"unit_price" json:"unit_price"`
	CompatibleMachines   []string           `bson:"compatible_machines" json:"compatible_machines"`
	CompatibleComponents []string           `bson:"compatible_components" json:"compatible_components"`
	LastRestock          *time.Time         `bson:"last_restock" json:"last_restock"`
	Transactions         []Transaction      `bson:"transactions" json:"transactions"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}

// Transaction is one entry in an inventory item's append-only stock ledger.
type Transaction struct {
	Type             string    `bson:"type" json:"type"` // "in", "out", "adjustment"
	QuantityChange   int       `bson:"quantity_change" json:"quantity_change"`
	PreviousQuantity int       `bson:"previous_quantity" json:"previous_quantity"`
	NewQuantity      int       `bson:"new_quantity" json:"new_quantity"`
	Notes            string    `bson:"notes" json:"notes"`
	Timestamp        time.Time `bson:"timestamp" json:"timestamp"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// InventoryHandler serves the /api/inventory routes.
type InventoryHandler struct {
	inventory db.InventoryCollection
}

// NewInventoryHandler creates an inventory handler.
func NewInventoryHandler(inventory db.InventoryCollection) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List returns all inventory items.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, items)
}

// Create inserts a new inventory item.
func (h *InventoryHandler) Create(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.inventory.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"item_id": id})
}

// Get returns one inventory item by id.
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.inventory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Item not found")
		return
	}
	respondData(c, http.StatusOK, item)
}

// AdjustQuantity applies a stock delta and records a ledger transaction. A
// delta that would take stock negative is rejected with a 400.
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	var body struct {
		QuantityChange  int    `json:"quantity_change"`
		TransactionType string `json:"transaction_type"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	err := h.inventory.AdjustQuantity(c.Request.Context(), c.Param("id"),
		body.QuantityChange, body.TransactionType, body.Notes)
	if err != nil {
		respondStoreError(c, err, "Item not found or insufficient stock")
		return
	}
	respondMessage(c, "Quantity updated")
}

// LowStock returns every item at or below its minimum stock threshold.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventory.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, items)
}

// Update applies a partial update to an inventory item.
func (h *InventoryHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.inventory.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Item not found")
		return
	}
	respondMessage(c, "Item updated")
}

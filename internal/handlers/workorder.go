package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// WorkOrderHandler serves the /api/work-orders routes.
type WorkOrderHandler struct {
	orders db.WorkOrderCollection
}

// NewWorkOrderHandler creates a work order handler.
func NewWorkOrderHandler(orders db.WorkOrderCollection) *WorkOrderHandler {
	return &WorkOrderHandler{orders: orders}
}

// List returns work orders, optionally filtered by status, priority or
// machine via query parameters.
func (h *WorkOrderHandler) List(c *gin.Context) {
	filter := db.WorkOrderFilter{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		MachineID: c.Query("machine_id"),
	}
	orders, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, orders)
}

// Create inserts a new work order.
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var order models.WorkOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.orders.Create(c.Request.Context(), order)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"work_order_id": id})
}

// Get returns one work order by id.
func (h *WorkOrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Work order not found")
		return
	}
	respondData(c, http.StatusOK, order)
}

// UpdateStatus transitions a work order's status.
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		respondStoreError(c, err, "Work order not found")
		return
	}
	respondMessage(c, "Status updated")
}

// AddNote appends a note to a work order.
func (h *WorkOrderHandler) AddNote(c *gin.Context) {
	var body struct {
		Note   string `json:"note"`
		Author string `json:"author"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.orders.AddNote(c.Request.Context(), c.Param("id"), body.Note, body.Author); err != nil {
		respondStoreError(c, err, "Work order not found")
		return
	}
	respondMessage(c, "Note added")
}

// Update applies a partial update to a work order.
func (h *WorkOrderHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.orders.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Work order not found")
		return
	}
	respondMessage(c, "Work order updated")
}

// Delete removes a work order by id.
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Work order not found")
		return
	}
	respondMessage(c, "Work order deleted")
}

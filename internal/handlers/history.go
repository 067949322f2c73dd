package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// HistoryHandler serves the /api/history routes.
type HistoryHandler struct {
	history db.HistoryCollection
}

// NewHistoryHandler creates a history handler.
func NewHistoryHandler(history db.HistoryCollection) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Create inserts a new maintenance history record.
func (h *HistoryHandler) Create(c *gin.Context) {
	var record models.MaintenanceHistory
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.history.Create(c.Request.Context(), record)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"history_id": id})
}

// ByMachine returns maintenance history for a machine.
func (h *HistoryHandler) ByMachine(c *gin.Context) {
	records, err := h.history.ByMachine(c.Request.Context(), c.Param("machine_id"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, records)
}

// ByComponent returns maintenance history for a component.
func (h *HistoryHandler) ByComponent(c *gin.Context) {
	records, err := h.history.ByComponent(c.Request.Context(), c.Param("component_id"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, records)
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		return 50
	}
	return limit
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// ComplianceHandler serves the /api/compliance routes.
type ComplianceHandler struct {
	compliance db.ComplianceCollection
}

// NewComplianceHandler creates a compliance handler.
func NewComplianceHandler(compliance db.ComplianceCollection) *ComplianceHandler {
	return &ComplianceHandler{compliance: compliance}
}

// List returns all compliance records.
func (h *ComplianceHandler) List(c *gin.Context) {
	records, err := h.compliance.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, records)
}

// Create inserts a new compliance record.
func (h *ComplianceHandler) Create(c *gin.Context) {
	var record models.Compliance
	if err := c.ShouldBindJSON(&record); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.compliance.Create(c.Request.Context(), record)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"compliance_id": id})
}

// Get returns one compliance record by id.
func (h *ComplianceHandler) Get(c *gin.Context) {
	record, err := h.compliance.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Compliance not found")
		return
	}
	respondData(c, http.StatusOK, record)
}

// UpdateStatus sets a compliance record's status, optionally attaching
// evidence.
func (h *ComplianceHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status   string `json:"status"`
		Evidence string `json:"evidence"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.compliance.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status, body.Evidence); err != nil {
		respondStoreError(c, err, "Compliance not found")
		return
	}
	respondMessage(c, "Compliance status updated")
}

// Overdue returns compliance records whose due date has passed.
func (h *ComplianceHandler) Overdue(c *gin.Context) {
	records, err := h.compliance.Overdue(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, records)
}

// Update applies a partial update to a compliance record.
func (h *ComplianceHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.compliance.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Compliance not found")
		return
	}
	respondMessage(c, "Compliance updated")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// AuditHandler serves the /api/audits routes.
type AuditHandler struct {
	audits db.AuditCollection
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(audits db.AuditCollection) *AuditHandler {
	return &AuditHandler{audits: audits}
}

// List returns all audits.
func (h *AuditHandler) List(c *gin.Context) {
	audits, err := h.audits.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, audits)
}

// Create inserts a new audit.
func (h *AuditHandler) Create(c *gin.Context) {
	var audit models.Audit
	if err := c.ShouldBindJSON(&audit); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.audits.Create(c.Request.Context(), audit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"audit_id": id})
}

// Get returns one audit by id.
func (h *AuditHandler) Get(c *gin.Context) {
	audit, err := h.audits.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Audit not found")
		return
	}
	respondData(c, http.StatusOK, audit)
}

// AddFinding appends a finding to an audit.
func (h *AuditHandler) AddFinding(c *gin.Context) {
	var finding models.Finding
	if err := c.ShouldBindJSON(&finding); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.audits.AddFinding(c.Request.Context(), c.Param("id"), finding); err != nil {
		respondStoreError(c, err, "Audit not found")
		return
	}
	respondMessage(c, "Finding added")
}

// Complete marks an audit as completed with its score and recommendation.
func (h *AuditHandler) Complete(c *gin.Context) {
	var body struct {
		Score          float64 `json:"score"`
		Recommendation string  `json:"recommendation"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.audits.Complete(c.Request.Context(), c.Param("id"), body.Score, body.Recommendation); err != nil {
		respondStoreError(c, err, "Audit not found")
		return
	}
	respondMessage(c, "Audit completed")
}

// Update applies a partial update to an audit.
func (h *AuditHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.audits.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Audit not found")
		return
	}
	respondMessage(c, "Audit updated")
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/plant-maintenance/internal/db"
)

// ReportHandler serves the read-only /api/reports routes.
type ReportHandler struct {
	reports db.ReportCollection
}

// NewReportHandler creates a report handler.
func NewReportHandler(reports db.ReportCollection) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns the headline dashboard counts.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, stats)
}

// MaintenanceSummary returns history grouped by maintenance type over the
// trailing N days (default 30).
func (h *ReportHandler) MaintenanceSummary(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		days = 30
	}
	summary, err := h.reports.MaintenanceSummary(c.Request.Context(), days)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, summary)
}

// MachineHealth returns a health score per machine.
func (h *ReportHandler) MachineHealth(c *gin.Context) {
	report, err := h.reports.MachineHealth(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, report)
}

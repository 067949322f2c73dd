package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// ScheduleHandler serves the /api/schedules routes.
type ScheduleHandler struct {
	schedules db.ScheduleCollection
}

// NewScheduleHandler creates a schedule handler.
func NewScheduleHandler(schedules db.ScheduleCollection) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// List returns all schedules.
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.schedules.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, schedules)
}

// Create inserts a new maintenance schedule.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var schedule models.MaintenanceSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.schedules.Create(c.Request.Context(), schedule)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"schedule_id": id})
}

// Get returns one schedule by id.
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.schedules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Schedule not found")
		return
	}
	respondData(c, http.StatusOK, schedule)
}

// Upcoming returns schedules due within the next N days (default 30).
func (h *ScheduleHandler) Upcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		days = 30
	}
	schedules, err := h.schedules.Upcoming(c.Request.Context(), days)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, schedules)
}

// MarkCompleted records a schedule completion, rolling recurring schedules
// forward to their next occurrence.
func (h *ScheduleHandler) MarkCompleted(c *gin.Context) {
	if err := h.schedules.MarkCompleted(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Schedule not found")
		return
	}
	respondMessage(c, "Schedule marked as completed")
}

// Update applies a partial update to a schedule.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.schedules.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Schedule not found")
		return
	}
	respondMessage(c, "Schedule updated")
}

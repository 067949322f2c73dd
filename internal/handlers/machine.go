package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// MachineHandler serves the /api/machines routes.
type MachineHandler struct {
	machines db.MachineCollection
}

// NewMachineHandler creates a machine handler.
func NewMachineHandler(machines db.MachineCollection) *MachineHandler {
	return &MachineHandler{machines: machines}
}

// List returns all machines.
func (h *MachineHandler) List(c *gin.Context) {
	machines, err := h.machines.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, machines)
}

// Create inserts a new machine.
func (h *MachineHandler) Create(c *gin.Context) {
	var machine models.Machine
	if err := c.ShouldBindJSON(&machine); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.machines.Create(c.Request.Context(), machine)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"machine_id": id})
}

// Get returns one machine by id.
func (h *MachineHandler) Get(c *gin.Context) {
	machine, err := h.machines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Machine not found")
		return
	}
	respondData(c, http.StatusOK, machine)
}

// Update applies a partial update to a machine.
func (h *MachineHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.machines.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Machine not found")
		return
	}
	respondMessage(c, "Machine updated")
}

// Delete removes a machine by id.
func (h *MachineHandler) Delete(c *gin.Context) {
	if err := h.machines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Machine not found")
		return
	}
	respondMessage(c, "Machine deleted")
}

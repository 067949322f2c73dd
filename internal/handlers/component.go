package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/db"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// ComponentHandler serves the /api/components routes.
type ComponentHandler struct {
	components db.ComponentCollection
}

// NewComponentHandler creates a component handler.
func NewComponentHandler(components db.ComponentCollection) *ComponentHandler {
	return &ComponentHandler{components: components}
}

// ListByMachine returns the components installed on a machine.
func (h *ComponentHandler) ListByMachine(c *gin.Context) {
	components, err := h.components.ListByMachine(c.Request.Context(), c.Param("machine_id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, components)
}

// Create inserts a new component.
func (h *ComponentHandler) Create(c *gin.Context) {
	var component models.Component
	if err := c.ShouldBindJSON(&component); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := h.components.Create(c.Request.Context(), component)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"component_id": id})
}

// Get returns one component by id.
func (h *ComponentHandler) Get(c *gin.Context) {
	component, err := h.components.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Component not found")
		return
	}
	respondData(c, http.StatusOK, component)
}

// Update applies a partial update to a component.
func (h *ComponentHandler) Update(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.components.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		respondStoreError(c, err, "Component not found")
		return
	}
	respondMessage(c, "Component updated")
}

// UpdateCondition sets a component's condition and appends to its
// condition history.
func (h *ComponentHandler) UpdateCondition(c *gin.Context) {
	var body struct {
		Condition string `json:"condition"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.components.UpdateCondition(c.Request.Context(), c.Param("id"), body.Condition, body.Notes); err != nil {
		respondStoreError(c, err, "Component not found")
		return
	}
	respondMessage(c, "Condition updated")
}

// Delete removes a component by id.
func (h *ComponentHandler) Delete(c *gin.Context) {
	if err := h.components.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "Component not found")
		return
	}
	respondMessage(c, "Component deleted")
}

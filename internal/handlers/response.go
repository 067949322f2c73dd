package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/plant-maintenance/internal/db"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: message})
}

// respondStoreError maps the store's error taxonomy onto status codes:
// not-found is a soft 404, insufficient stock a soft 400, anything else a 500
// carrying the raw failure message.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, db.ErrInsufficientStock):
		respondError(c, http.StatusBadRequest, "Item not found or insufficient stock")
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

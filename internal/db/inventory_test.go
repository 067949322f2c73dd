package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/plant-maintenance/internal/models"
)

func TestApplyAdjustment_RejectsNegativeStock(t *testing.T) {
	item := &models.InventoryItem{Quantity: 3}

	update, _, err := applyAdjustment(item, -5, "out", "", time.Now().UTC())

	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, update)
	assert.Equal(t, 3, item.Quantity, "rejected adjustment must not mutate the item")
}

func TestApplyAdjustment_Restock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	item := &models.InventoryItem{Quantity: 3}

	update, tx, err := applyAdjustment(item, 5, "in", "weekly delivery", now)
	require.NoError(t, err)

	assert.Equal(t, 8, update["quantity"])
	assert.Equal(t, now, update["last_restock"], "restock must stamp last_restock")

	assert.Equal(t, "in", tx.Type)
	assert.Equal(t, 5, tx.QuantityChange)
	assert.Equal(t, 3, tx.PreviousQuantity)
	assert.Equal(t, 8, tx.NewQuantity)
	assert.Equal(t, "weekly delivery", tx.Notes)
	assert.Equal(t, now, tx.Timestamp)
}

func TestApplyAdjustment_Issue(t *testing.T) {
	item := &models.InventoryItem{Quantity: 10}

	update, tx, err := applyAdjustment(item, -4, "out", "", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 6, update["quantity"])
	assert.Equal(t, 10, tx.PreviousQuantity)
	assert.Equal(t, 6, tx.NewQuantity)

	_, restocked := update["last_restock"]
	assert.False(t, restocked, "issuing stock must not stamp last_restock")
}

func TestApplyAdjustment_ExactDrain(t *testing.T) {
	item := &models.InventoryItem{Quantity: 4}

	update, _, err := applyAdjustment(item, -4, "out", "", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, update["quantity"], "draining to exactly zero is allowed")
}

func TestApplyAdjustment_ManualCorrection(t *testing.T) {
	item := &models.InventoryItem{Quantity: 7}

	update, tx, err := applyAdjustment(item, 2, "adjustment", "stocktake correction", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 9, update["quantity"])
	assert.Equal(t, "adjustment", tx.Type)

	_, restocked := update["last_restock"]
	assert.False(t, restocked, "only type \"in\" stamps last_restock")
}

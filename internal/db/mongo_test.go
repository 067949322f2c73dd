package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/plant-maintenance/internal/config"
	"github.com/ukydev/plant-maintenance/internal/models"
)

func TestConnect_BadURI(t *testing.T) {
	cfg := &config.Config{MongoURI: "mongodb://bad-host-that-does-not-exist:1"}
	client, err := Connect(cfg)
	if err == nil {
		t.Error("expected error for unreachable URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

// integrationDB connects to a real MongoDB instance, or skips the test when
// MONGO_URI is not set.
func integrationDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}
	cfg := &config.Config{MongoURI: uri, MongoDB: "plant_maintenance_test"}
	client, err := Connect(cfg)
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client.Database(cfg.MongoDB)
}

func TestMachineRoundtrip_Integration(t *testing.T) {
	database := integrationDB(t)
	store := NewMachineStore(database)
	ctx := context.Background()

	serial := fmt.Sprintf("SN-TEST-%d", time.Now().UnixNano())
	id, err := store.Create(ctx, models.Machine{
		Name:         "Press Line A",
		Model:        "HX-400",
		SerialNumber: serial,
		Location:     "Hall 2",
	})
	require.NoError(t, err)

	machine, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Press Line A", machine.Name)
	assert.Equal(t, serial, machine.SerialNumber)
	assert.Equal(t, "operational", machine.Status, "status defaults to operational")
	assert.False(t, machine.CreatedAt.IsZero())

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMachineSerialUnique_Integration(t *testing.T) {
	database := integrationDB(t)
	require.NoError(t, EnsureIndexes(context.Background(), database))
	store := NewMachineStore(database)
	ctx := context.Background()

	serial := fmt.Sprintf("SN-DUP-%d", time.Now().UnixNano())
	id, err := store.Create(ctx, models.Machine{Name: "A", SerialNumber: serial})
	require.NoError(t, err)
	defer store.Delete(ctx, id)

	_, err = store.Create(ctx, models.Machine{Name: "B", SerialNumber: serial})
	require.Error(t, err, "duplicate serial_number must be rejected by the store")
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestScheduleRollover_Integration(t *testing.T) {
	database := integrationDB(t)
	store := NewScheduleStore(database)
	ctx := context.Background()

	id, err := store.Create(ctx, models.MaintenanceSchedule{
		MachineID:      "m1",
		Title:          "Weekly lube",
		Frequency:      "weekly",
		FrequencyValue: 2,
		ScheduledDate:  time.Now().UTC(),
		IsRecurring:    true,
	})
	require.NoError(t, err)

	before := time.Now().UTC()
	require.NoError(t, store.MarkCompleted(ctx, id))

	schedule, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", schedule.Status, "recurring schedules roll straight back to scheduled")
	require.NotNil(t, schedule.LastCompleted)
	assert.WithinDuration(t, before.AddDate(0, 0, 14), schedule.NextScheduled, time.Minute)
}

func TestAuditFindingsAppendOnly_Integration(t *testing.T) {
	database := integrationDB(t)
	store := NewAuditStore(database)
	ctx := context.Background()

	id, err := store.Create(ctx, models.Audit{
		Title:     "Quarterly safety walk",
		AuditType: "safety",
		Auditor:   "j.doe",
	})
	require.NoError(t, err)

	require.NoError(t, store.AddFinding(ctx, id, models.Finding{Title: "first", Severity: "low"}))
	require.NoError(t, store.AddFinding(ctx, id, models.Finding{Title: "second", Severity: "high"}))

	audit, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, audit.Findings, 2)
	assert.Equal(t, "first", audit.Findings[0].Title)
	assert.Equal(t, "second", audit.Findings[1].Title)
}

func TestInventoryLedger_Integration(t *testing.T) {
	database := integrationDB(t)
	store := NewInventoryStore(database)
	ctx := context.Background()

	id, err := store.Create(ctx, models.InventoryItem{
		PartNumber: fmt.Sprintf("PN-TEST-%d", time.Now().UnixNano()),
		Name:       "Drive Belt",
		Category:   "spare_parts",
		Quantity:   3,
		MinStock:   5,
	})
	require.NoError(t, err)

	err = store.AdjustQuantity(ctx, id, -5, "out", "")
	require.ErrorIs(t, err, ErrInsufficientStock)

	item, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity, "rejected adjustment must leave quantity unchanged")
	assert.Empty(t, item.Transactions)

	require.NoError(t, store.AdjustQuantity(ctx, id, 5, "in", "restock"))
	item, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8, item.Quantity)
	require.Len(t, item.Transactions, 1)
	assert.Equal(t, 3, item.Transactions[0].PreviousQuantity)
	assert.Equal(t, 8, item.Transactions[0].NewQuantity)
	assert.NotNil(t, item.LastRestock)
}

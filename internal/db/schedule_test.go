package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/plant-maintenance/internal/models"
)

func TestNextDue(t *testing.T) {
	from := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency string
		value     int
		wantDays  int
	}{
		{"daily", "daily", 1, 1},
		{"weekly", "weekly", 1, 7},
		{"weekly twice", "weekly", 2, 14},
		{"monthly", "monthly", 1, 30},
		{"quarterly", "quarterly", 1, 90},
		{"yearly", "yearly", 1, 365},
		{"yearly three", "yearly", 3, 1095},
		{"unknown frequency falls back to 30", "biweekly", 1, 30},
		{"zero value treated as 1", "weekly", 0, 7},
		{"negative value treated as 1", "daily", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextDue(tt.frequency, tt.value, from)
			assert.Equal(t, from.AddDate(0, 0, tt.wantDays), got)
		})
	}
}

func TestCompletionUpdate_Recurring(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	schedule := &models.MaintenanceSchedule{
		Frequency:      "weekly",
		FrequencyValue: 2,
		IsRecurring:    true,
		Status:         "scheduled",
	}

	update := completionUpdate(schedule, now)

	// A recurring schedule never rests in completed state: it rolls straight
	// back to scheduled with the next occurrence set.
	assert.Equal(t, "scheduled", update["status"])
	assert.Equal(t, now, update["last_completed"])
	assert.Equal(t, now.AddDate(0, 0, 14), update["next_scheduled"])
}

func TestCompletionUpdate_NonRecurring(t *testing.T) {
	now := time.Now().UTC()
	schedule := &models.MaintenanceSchedule{
		Frequency:      "monthly",
		FrequencyValue: 1,
		IsRecurring:    false,
		Status:         "scheduled",
	}

	update := completionUpdate(schedule, now)

	assert.Equal(t, "completed", update["status"])
	assert.Equal(t, now, update["last_completed"])

	_, touched := update["next_scheduled"]
	require.False(t, touched, "non-recurring completion must not touch next_scheduled")
}

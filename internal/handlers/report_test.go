package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/plant-maintenance/internal/models"
)

type fakeReports struct {
	dashboardFn func(ctx context.Context) (*models.DashboardStats, error)
	summaryFn   func(ctx context.Context, days int) ([]models.MaintenanceSummary, error)
	healthFn    func(ctx context.Context) ([]models.MachineHealth, error)
}

func (f *fakeReports) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return f.dashboardFn(ctx)
}

func (f *fakeReports) MaintenanceSummary(ctx context.Context, days int) ([]models.MaintenanceSummary, error) {
	return f.summaryFn(ctx, days)
}

func (f *fakeReports) MachineHealth(ctx context.Context) ([]models.MachineHealth, error) {
	return f.healthFn(ctx)
}

func reportRouter(fake *fakeReports) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, &Handlers{Reports: NewReportHandler(fake)})
	return router
}

func TestReportDashboard(t *testing.T) {
	fake := &fakeReports{
		dashboardFn: func(ctx context.Context) (*models.DashboardStats, error) {
			return &models.DashboardStats{TotalMachines: 12, ActiveWorkOrders: 3}, nil
		},
	}
	w := perform(reportRouter(fake), http.MethodGet, "/api/reports/dashboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), data["total_machines"])
	assert.Equal(t, float64(3), data["active_work_orders"])
}

func TestReportMaintenanceSummaryDays(t *testing.T) {
	var gotDays int
	fake := &fakeReports{
		summaryFn: func(ctx context.Context, days int) ([]models.MaintenanceSummary, error) {
			gotDays = days
			return []models.MaintenanceSummary{}, nil
		},
	}

	w := perform(reportRouter(fake), http.MethodGet, "/api/reports/maintenance-summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, gotDays, "days defaults to 30")

	w = perform(reportRouter(fake), http.MethodGet, "/api/reports/maintenance-summary?days=90", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 90, gotDays)

	w = perform(reportRouter(fake), http.MethodGet, "/api/reports/maintenance-summary?days=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, gotDays, "unparseable days falls back to 30")
}

func TestReportMachineHealth(t *testing.T) {
	fake := &fakeReports{
		healthFn: func(ctx context.Context) ([]models.MachineHealth, error) {
			return []models.MachineHealth{
				{MachineName: "CNC Mill", HealthScore: 62.5, TotalComponents: 4},
			}, nil
		},
	}
	w := perform(reportRouter(fake), http.MethodGet, "/api/reports/machine-health", "")

	require.Equal(t, http.StatusOK, w.Code)
	report, ok := decode(t, w).Data.([]any)
	require.True(t, ok)
	require.Len(t, report, 1)
	machine, ok := report[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 62.5, machine["health_score"])
}

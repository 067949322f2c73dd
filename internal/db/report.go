package db

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// ReportStore computes read-only aggregates across collections.
type ReportStore struct {
	database *mongo.Database
}

// NewReportStore creates a report store backed by the given database.
func NewReportStore(database *mongo.Database) *ReportStore {
	return &ReportStore{database: database}
}

// conditionWeights is the fixed health scoring policy. A machine whose
// components are all good scores 100; all critical scores 10.
var conditionWeights = map[string]float64{
	"good":     100,
	"fair":     70,
	"poor":     40,
	"critical": 10,
}

// healthScore tallies components per condition bucket and computes the
// weighted score, rounded to two decimals. A machine with no components is
// vacuously healthy and scores 100.
func healthScore(components []models.Component) (float64, map[string]int) {
	breakdown := map[string]int{
		"good":     0,
		"fair":     0,
		"poor":     0,
		"critical": 0,
	}
	for _, c := range components {
		condition := c.Condition
		if condition == "" {
			condition = "good"
		}
		breakdown[condition]++
	}

	if len(components) == 0 {
		return 100, breakdown
	}

	var total float64
	for condition, count := range breakdown {
		total += conditionWeights[condition] * float64(count)
	}
	score := total / float64(len(components))
	return math.Round(score*100) / 100, breakdown
}

// DashboardStats computes the six headline counts for the dashboard. Each is
// an independent filtered count; there are no joins.
func (s *ReportStore) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := time.Now().UTC()
	nextWeek := now.AddDate(0, 0, 7)

	count := func(coll string, filter bson.M) (int64, error) {
		n, err := s.database.Collection(coll).CountDocuments(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("count %s: %w", coll, err)
		}
		return n, nil
	}

	var stats models.DashboardStats
	var err error

	if stats.TotalMachines, err = count(CollMachines, bson.M{}); err != nil {
		return nil, err
	}
	if stats.ActiveWorkOrders, err = count(CollWorkOrders, bson.M{
		"status": bson.M{"$in": bson.A{"pending", "in_progress"}},
	}); err != nil {
		return nil, err
	}
	if stats.UpcomingMaintenance, err = count(CollSchedules, bson.M{
		"next_scheduled": bson.M{"$lte": nextWeek},
		"status":         "scheduled",
	}); err != nil {
		return nil, err
	}
	if stats.LowStockItems, err = count(CollInventory, bson.M{
		"$expr": bson.M{"$lte": bson.A{"$quantity", "$min_stock"}},
	}); err != nil {
		return nil, err
	}
	if stats.CriticalComponents, err = count(CollComponents, bson.M{"condition": "critical"}); err != nil {
		return nil, err
	}
	if stats.OverdueCompliance, err = count(CollCompliance, bson.M{
		"due_date": bson.M{"$lt": now},
		"status":   bson.M{"$in": bson.A{"pending", "overdue"}},
	}); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MaintenanceSummary groups history records performed within the trailing
// window by maintenance type, summing cost and duration.
func (s *ReportStore) MaintenanceSummary(ctx context.Context, days int) ([]models.MaintenanceSummary, error) {
	if days <= 0 {
		days = 30
	}
	start := time.Now().UTC().AddDate(0, 0, -days)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"performed_at": bson.M{"$gte": start}}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$maintenance_type",
			"count":       bson.M{"$sum": 1},
			"total_cost":  bson.M{"$sum": "$cost"},
			"total_hours": bson.M{"$sum": "$duration_hours"},
		}}},
	}

	cursor, err := s.database.Collection(CollHistory).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	summary := []models.MaintenanceSummary{}
	if err := cursor.All(ctx, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// MachineHealth scores every machine from the condition distribution of its
// components.
func (s *ReportStore) MachineHealth(ctx context.Context) ([]models.MachineHealth, error) {
	cursor, err := s.database.Collection(CollMachines).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	machines := []models.Machine{}
	if err := cursor.All(ctx, &machines); err != nil {
		return nil, err
	}

	components := s.database.Collection(CollComponents)
	report := []models.MachineHealth{}
	for _, machine := range machines {
		machineID := machine.ID.Hex()

		compCursor, err := components.Find(ctx, bson.M{"machine_id": machineID})
		if err != nil {
			return nil, err
		}
		machineComponents := []models.Component{}
		if err := compCursor.All(ctx, &machineComponents); err != nil {
			return nil, err
		}

		score, breakdown := healthScore(machineComponents)
		report = append(report, models.MachineHealth{
			MachineID:          machineID,
			MachineName:        machine.Name,
			HealthScore:        score,
			TotalComponents:    len(machineComponents),
			ConditionBreakdown: breakdown,
			Status:             machine.Status,
		})
	}
	return report, nil
}

package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// The handler layer depends on these interfaces rather than on the Mongo
// types directly, so it can be exercised against fakes in tests.

// MachineCollection defines machine data operations.
type MachineCollection interface {
	Create(ctx context.Context, machine models.Machine) (string, error)
	List(ctx context.Context) ([]models.Machine, error)
	Get(ctx context.Context, id string) (*models.Machine, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

// ComponentCollection defines component data operations.
type ComponentCollection interface {
	Create(ctx context.Context, component models.Component) (string, error)
	ListByMachine(ctx context.Context, machineID string) ([]models.Component, error)
	Get(ctx context.Context, id string) (*models.Component, error)
	Update(ctx context.Context, id string, update bson.M) error
	UpdateCondition(ctx context.Context, id, condition, notes string) error
	Delete(ctx context.Context, id string) error
}

// WorkOrderCollection defines work order data operations.
type WorkOrderCollection interface {
	Create(ctx context.Context, order models.WorkOrder) (string, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]models.WorkOrder, error)
	Get(ctx context.Context, id string) (*models.WorkOrder, error)
	Update(ctx context.Context, id string, update bson.M) error
	UpdateStatus(ctx context.Context, id, status string) error
	AddNote(ctx context.Context, id, content, author string) error
	Delete(ctx context.Context, id string) error
}

// ScheduleCollection defines maintenance schedule data operations.
type ScheduleCollection interface {
	Create(ctx context.Context, schedule models.MaintenanceSchedule) (string, error)
	List(ctx context.Context) ([]models.MaintenanceSchedule, error)
	Get(ctx context.Context, id string) (*models.MaintenanceSchedule, error)
	Upcoming(ctx context.Context, days int) ([]models.MaintenanceSchedule, error)
	MarkCompleted(ctx context.Context, id string) error
	Update(ctx context.Context, id string, update bson.M) error
}

// HistoryCollection defines maintenance history data operations.
type HistoryCollection interface {
	Create(ctx context.Context, record models.MaintenanceHistory) (string, error)
	ByMachine(ctx context.Context, machineID string, limit int) ([]models.MaintenanceHistory, error)
	ByComponent(ctx context.Context, componentID string, limit int) ([]models.MaintenanceHistory, error)
}

// AuditCollection defines audit data operations.
type AuditCollection interface {
	Create(ctx context.Context, audit models.Audit) (string, error)
	List(ctx context.Context) ([]models.Audit, error)
	Get(ctx context.Context, id string) (*models.Audit, error)
	AddFinding(ctx context.Context, id string, finding models.Finding) error
	Complete(ctx context.Context, id string, score float64, recommendation string) error
	Update(ctx context.Context, id string, update bson.M) error
}

// ComplianceCollection defines compliance data operations.
type ComplianceCollection interface {
	Create(ctx context.Context, record models.Compliance) (string, error)
	List(ctx context.Context) ([]models.Compliance, error)
	Get(ctx context.Context, id string) (*models.Compliance, error)
	UpdateStatus(ctx context.Context, id, status, evidence string) error
	Overdue(ctx context.Context) ([]models.Compliance, error)
	Update(ctx context.Context, id string, update bson.M) error
}

// InventoryCollection defines inventory data operations.
type InventoryCollection interface {
	Create(ctx context.Context, item models.InventoryItem) (string, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Get(ctx context.Context, id string) (*models.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id string, delta int, transactionType, notes string) error
	LowStock(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, id string, update bson.M) error
}

// ReportCollection defines the read-only reporting operations.
type ReportCollection interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	MaintenanceSummary(ctx context.Context, days int) ([]models.MaintenanceSummary, error)
	MachineHealth(ctx context.Context) ([]models.MachineHealth, error)
}

package db

import "go.mongodb.org/mongo-driver/mongo"

// Stores bundles every per-collection store over one database handle.
type Stores struct {
	Machines   *MachineStore
	Components *ComponentStore
	WorkOrders *WorkOrderStore
	Schedules  *ScheduleStore
	History    *HistoryStore
	Audits     *AuditStore
	Compliance *ComplianceStore
	Inventory  *InventoryStore
	Reports    *ReportStore
}

// NewStores creates all stores backed by the given database.
func NewStores(database *mongo.Database) *Stores {
	return &Stores{
		Machines:   NewMachineStore(database),
		Components: NewComponentStore(database),
		WorkOrders: NewWorkOrderStore(database),
		Schedules:  NewScheduleStore(database),
		History:    NewHistoryStore(database),
		Audits:     NewAuditStore(database),
		Compliance: NewComplianceStore(database),
		Inventory:  NewInventoryStore(database),
		Reports:    NewReportStore(database),
	}
}

package models

// DashboardStats holds the headline counts shown on the dashboard.
type DashboardStats struct {
	TotalMachines       int64 `bson:"total_machines" json:"total_machines"`
	ActiveWorkOrders    int64 `bson:"active_work_orders" json:"active_work_orders"`
	UpcomingMaintenance int64 `bson:"upcoming_maintenance" json:"upcoming_maintenance"`
	LowStockItems       int64 `bson:"low_stock_items" json:"low_stock_items"`
	CriticalComponents  int64 `bson:"critical_components" json:"critical_components"`
	OverdueCompliance   int64 `bson:"overdue_compliance" json:"overdue_compliance"`
}

// MaintenanceSummary is one aggregation bucket of maintenance history,
// grouped by maintenance type over a trailing window.
type MaintenanceSummary struct {
	MaintenanceType string  `bson:"_id" json:"maintenance_type"`
	Count           int64   `bson:"count" json:"count"`
	TotalCost       float64 `bson:"total_cost" json:"total_cost"`
	TotalHours      float64 `bson:"total_hours" json:"total_hours"`
}

// MachineHealth is the component-condition health report for one machine.
type MachineHealth struct {
	MachineID          string         `json:"machine_id"`
	MachineName        string         `json:"machine_name"`
	HealthScore        float64        `json:"health_score"`
	TotalComponents    int            `json:"total_components"`
	ConditionBreakdown map[string]int `json:"condition_breakdown"`
	Status             string         `json:"status"`
}

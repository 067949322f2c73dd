package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/plant-maintenance/internal/db"
)

// Handlers bundles every resource handler.
type Handlers struct {
	Machines   *MachineHandler
	Components *ComponentHandler
	WorkOrders *WorkOrderHandler
	Schedules  *ScheduleHandler
	History    *HistoryHandler
	Audits     *AuditHandler
	Compliance *ComplianceHandler
	Inventory  *InventoryHandler
	Reports    *ReportHandler
}

// New creates all handlers over the given stores.
func New(stores *db.Stores) *Handlers {
	return &Handlers{
		Machines:   NewMachineHandler(stores.Machines),
		Components: NewComponentHandler(stores.Components),
		WorkOrders: NewWorkOrderHandler(stores.WorkOrders),
		Schedules:  NewScheduleHandler(stores.Schedules),
		History:    NewHistoryHandler(stores.History),
		Audits:     NewAuditHandler(stores.Audits),
		Compliance: NewComplianceHandler(stores.Compliance),
		Inventory:  NewInventoryHandler(stores.Inventory),
		Reports:    NewReportHandler(stores.Reports),
	}
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Plant Maintenance API"})
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Plant Maintenance API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"machines":    "/api/machines",
				"components":  "/api/components",
				"work_orders": "/api/work-orders",
				"schedules":   "/api/schedules",
				"history":     "/api/history",
				"audits":      "/api/audits",
				"compliance":  "/api/compliance",
				"inventory":   "/api/inventory",
				"reports":     "/api/reports",
			},
		})
	})

	api := router.Group("/api")

	machines := api.Group("/machines")
	{
		machines.GET("", h.Machines.List)
		machines.POST("", h.Machines.Create)
		machines.GET("/:id", h.Machines.Get)
		machines.PUT("/:id", h.Machines.Update)
		machines.DELETE("/:id", h.Machines.Delete)
	}

	components := api.Group("/components")
	{
		components.GET("/machine/:machine_id", h.Components.ListByMachine)
		components.POST("", h.Components.Create)
		components.GET("/:id", h.Components.Get)
		components.PUT("/:id", h.Components.Update)
		components.PUT("/:id/condition", h.Components.UpdateCondition)
		components.DELETE("/:id", h.Components.Delete)
	}

	workOrders := api.Group("/work-orders")
	{
		workOrders.GET("", h.WorkOrders.List)
		workOrders.POST("", h.WorkOrders.Create)
		workOrders.GET("/:id", h.WorkOrders.Get)
		workOrders.PUT("/:id", h.WorkOrders.Update)
		workOrders.PUT("/:id/status", h.WorkOrders.UpdateStatus)
		workOrders.POST("/:id/notes", h.WorkOrders.AddNote)
		workOrders.DELETE("/:id", h.WorkOrders.Delete)
	}

	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.Schedules.List)
		schedules.POST("", h.Schedules.Create)
		schedules.GET("/upcoming", h.Schedules.Upcoming)
		schedules.GET("/:id", h.Schedules.Get)
		schedules.PUT("/:id", h.Schedules.Update)
		schedules.PUT("/:id/complete", h.Schedules.MarkCompleted)
	}

	history := api.Group("/history")
	{
		history.POST("", h.History.Create)
		history.GET("/machine/:machine_id", h.History.ByMachine)
		history.GET("/component/:component_id", h.History.ByComponent)
	}

	audits := api.Group("/audits")
	{
		audits.GET("", h.Audits.List)
		audits.POST("", h.Audits.Create)
		audits.GET("/:id", h.Audits.Get)
		audits.PUT("/:id", h.Audits.Update)
		audits.POST("/:id/findings", h.Audits.AddFinding)
		audits.PUT("/:id/complete", h.Audits.Complete)
	}

	compliance := api.Group("/compliance")
	{
		compliance.GET("", h.Compliance.List)
		compliance.POST("", h.Compliance.Create)
		compliance.GET("/overdue", h.Compliance.Overdue)
		compliance.GET("/:id", h.Compliance.Get)
		compliance.PUT("/:id", h.Compliance.Update)
		compliance.PUT("/:id/status", h.Compliance.UpdateStatus)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.PUT("/:id/quantity", h.Inventory.AdjustQuantity)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/dashboard", h.Reports.Dashboard)
		reports.GET("/maintenance-summary", h.Reports.MaintenanceSummary)
		reports.GET("/machine-health", h.Reports.MachineHealth)
	}
}

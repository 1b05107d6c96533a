// Package routes mounts every controller under /api.
package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/controllers"
	"equipment-system/internal/services"
)

func InitRouter(e *echo.Echo, reg *services.Registry, logger *zap.Logger) {
	apiGroup := e.Group("/api")

	// Reference entities get plain CRUD.
	controllers.NewResourceController(reg.Persons, logger).Register(apiGroup, "/persons")
	controllers.NewResourceController(reg.Teams, logger).Register(apiGroup, "/teams")
	controllers.NewResourceController(reg.TeamMembers, logger).Register(apiGroup, "/team-members")
	controllers.NewResourceController(reg.Buildings, logger).Register(apiGroup, "/buildings")
	controllers.NewResourceController(reg.Levels, logger).Register(apiGroup, "/levels")
	controllers.NewResourceController(reg.Locations, logger).Register(apiGroup, "/locations")
	controllers.NewResourceController(reg.EquipmentMedia, logger).Register(apiGroup, "/equipment-media")
	controllers.NewResourceController(reg.LocationMedia, logger).Register(apiGroup, "/location-media")

	equipment := controllers.NewEquipmentController(
		reg.EquipmentService, reg.LoanService, reg.IssueService, reg.PMService, logger)
	apiGroup.GET("/equipment", equipment.List)
	apiGroup.GET("/equipment/:id", equipment.Get)
	apiGroup.GET("/equipment/:id/details", equipment.GetDetails)
	apiGroup.GET("/equipment/:id/children", equipment.GetChildren)
	apiGroup.GET("/equipment/:id/loans", equipment.GetLoans)
	apiGroup.GET("/equipment/:id/issues", equipment.GetIssues)
	apiGroup.GET("/equipment/:id/pm-templates", equipment.GetPMTemplates)
	apiGroup.GET("/equipment/:id/pm-tasks", equipment.GetPMTasks)
	apiGroup.POST("/equipment", equipment.Create)
	apiGroup.PATCH("/equipment/:id", equipment.Update)
	apiGroup.DELETE("/equipment/:id", equipment.Delete)

	loans := controllers.NewLoanController(reg.LoanService, logger)
	apiGroup.GET("/loans", loans.List)
	apiGroup.GET("/loans/:id", loans.Get)
	apiGroup.POST("/loans", loans.Create)
	apiGroup.PATCH("/loans/:id", loans.Update)
	apiGroup.DELETE("/loans/:id", loans.Delete)

	issues := controllers.NewIssueController(reg.IssueService, logger)
	apiGroup.GET("/issues", issues.List)
	apiGroup.GET("/issues/:id", issues.Get)
	apiGroup.POST("/issues", issues.Create)
	apiGroup.PATCH("/issues/:id", issues.Update)
	apiGroup.GET("/issues/:id/notes", issues.GetNotes)
	apiGroup.POST("/issues/:id/notes", issues.AddNote)
	apiGroup.GET("/issues/:id/actions", issues.GetActions)
	apiGroup.POST("/issues/:id/actions", issues.CreateAction)
	apiGroup.POST("/actions/:actionId/complete", issues.CompleteAction)

	pm := controllers.NewPMController(reg.PMService, logger)
	apiGroup.GET("/pm/templates", pm.ListTemplates)
	apiGroup.GET("/pm/templates/:id", pm.GetTemplate)
	apiGroup.POST("/pm/templates", pm.CreateTemplate)
	apiGroup.PATCH("/pm/templates/:id", pm.UpdateTemplate)
	apiGroup.GET("/pm/templates/:id/items", pm.GetTemplateItems)
	apiGroup.POST("/pm/templates/:id/items", pm.AddTemplateItem)
	apiGroup.PATCH("/pm/template-items/:itemId", pm.UpdateTemplateItem)
	apiGroup.DELETE("/pm/template-items/:itemId", pm.DeleteTemplateItem)
	apiGroup.GET("/pm/tasks", pm.ListTasks)
	apiGroup.GET("/pm/tasks/:id", pm.GetTask)
	apiGroup.POST("/pm/tasks", pm.CreateTask)
	apiGroup.GET("/pm/tasks/:id/items", pm.GetTaskItems)
	apiGroup.PATCH("/pm/task-items/:itemId", pm.UpdateTaskItem)
	apiGroup.POST("/pm/tasks/:id/complete", pm.CompleteTask)

	reports := controllers.NewReportController(reg.ReportService, logger)
	apiGroup.GET("/reports/equipment", reports.ExportEquipment)

	logger.Info("routes registered")
}

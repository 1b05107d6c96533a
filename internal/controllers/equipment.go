package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/api"
)

type EquipmentController struct {
	equipmentService *services.EquipmentService
	loanService      *services.LoanService
	issueService     *services.IssueService
	pmService        *services.PMService
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService *services.EquipmentService,
	loanService *services.LoanService,
	issueService *services.IssueService,
	pmService *services.PMService,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		loanService:      loanService,
		issueService:     issueService,
		pmService:        pmService,
		logger:           logger,
	}
}

func (c *EquipmentController) List(ctx echo.Context) error {
	result, err := c.equipmentService.GetAll(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *EquipmentController) Get(ctx echo.Context) error {
	item, err := c.equipmentService.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

// GetDetails returns the equipment record with owner, contact, and home
// location references resolved.
func (c *EquipmentController) GetDetails(ctx echo.Context) error {
	details, err := c.equipmentService.GetWithDetails(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, details)
}

func (c *EquipmentController) GetChildren(ctx echo.Context) error {
	children, err := c.equipmentService.GetChildren(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, children)
}

func (c *EquipmentController) GetLoans(ctx echo.Context) error {
	loans, err := c.loanService.GetForEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, loans)
}

func (c *EquipmentController) GetIssues(ctx echo.Context) error {
	issues, err := c.issueService.GetIssuesForEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, issues)
}

func (c *EquipmentController) GetPMTemplates(ctx echo.Context) error {
	templates, err := c.pmService.GetTemplatesForEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, templates)
}

func (c *EquipmentController) GetPMTasks(ctx echo.Context) error {
	tasks, err := c.pmService.GetTasksForEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, tasks)
}

func (c *EquipmentController) Create(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.equipmentService.ValidateAndCreate(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, item)
}

// Update takes a partial patch. Absent keys stay untouched, explicit nulls
// clear the field.
func (c *EquipmentController) Update(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.equipmentService.ValidateAndUpdate(ctx.Request().Context(), ctx.Param("id"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

func (c *EquipmentController) Delete(ctx echo.Context) error {
	if err := c.equipmentService.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, struct{}{})
}

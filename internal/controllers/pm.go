package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/api"
)

type PMController struct {
	pmService *services.PMService
	logger    *zap.Logger
}

func NewPMController(pmService *services.PMService, logger *zap.Logger) *PMController {
	return &PMController{pmService: pmService, logger: logger}
}

func (c *PMController) ListTemplates(ctx echo.Context) error {
	result, err := c.pmService.GetTemplates(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *PMController) GetTemplate(ctx echo.Context) error {
	template, err := c.pmService.GetTemplateByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, template)
}

func (c *PMController) CreateTemplate(ctx echo.Context) error {
	var payload dto.CreatePMTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	template, err := c.pmService.CreateTemplate(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, template)
}

func (c *PMController) UpdateTemplate(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	template, err := c.pmService.UpdateTemplate(ctx.Request().Context(), ctx.Param("id"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, template)
}

func (c *PMController) GetTemplateItems(ctx echo.Context) error {
	items, err := c.pmService.GetTemplateItems(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, items)
}

func (c *PMController) AddTemplateItem(ctx echo.Context) error {
	var payload dto.CreatePMTemplateItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	payload.PMTemplateID = ctx.Param("id")
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.pmService.AddTemplateItem(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, item)
}

func (c *PMController) UpdateTemplateItem(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.pmService.UpdateTemplateItem(ctx.Request().Context(), ctx.Param("itemId"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

func (c *PMController) DeleteTemplateItem(ctx echo.Context) error {
	if err := c.pmService.DeleteTemplateItem(ctx.Request().Context(), ctx.Param("itemId")); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, struct{}{})
}

func (c *PMController) ListTasks(ctx echo.Context) error {
	result, err := c.pmService.GetTasks(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *PMController) GetTask(ctx echo.Context) error {
	task, err := c.pmService.GetTaskByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, task)
}

// CreateTask materializes a scheduled task, with checklist, from a template.
func (c *PMController) CreateTask(ctx echo.Context) error {
	var payload dto.CreatePMTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	task, err := c.pmService.CreateTaskFromTemplate(ctx.Request().Context(), payload.PMTemplateID, payload.ScheduledDate)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, task)
}

func (c *PMController) GetTaskItems(ctx echo.Context) error {
	items, err := c.pmService.GetTaskItems(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, items)
}

func (c *PMController) UpdateTaskItem(ctx echo.Context) error {
	var payload dto.UpdatePMTaskItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.pmService.UpdateTaskItem(ctx.Request().Context(), ctx.Param("itemId"), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

// CompleteTask closes the task, raises an issue for failed checklist items,
// and schedules the next occurrence for active templates.
func (c *PMController) CompleteTask(ctx echo.Context) error {
	var payload dto.CompletePMTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	completed, err := c.pmService.CompleteTask(ctx.Request().Context(), ctx.Param("id"), payload.CompletedByPersonID)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, completed)
}

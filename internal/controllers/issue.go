package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/services"
	"equipment-system/pkg/api"
)

type IssueController struct {
	issueService *services.IssueService
	logger       *zap.Logger
}

func NewIssueController(issueService *services.IssueService, logger *zap.Logger) *IssueController {
	return &IssueController{issueService: issueService, logger: logger}
}

func (c *IssueController) List(ctx echo.Context) error {
	result, err := c.issueService.GetIssues(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *IssueController) Get(ctx echo.Context) error {
	issue, err := c.issueService.GetIssueByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, issue)
}

func (c *IssueController) Create(ctx echo.Context) error {
	var payload dto.CreateIssueDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	created, err := c.issueService.CreateIssue(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, created)
}

func (c *IssueController) Update(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	issue, err := c.issueService.UpdateIssue(ctx.Request().Context(), ctx.Param("id"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, issue)
}

func (c *IssueController) GetNotes(ctx echo.Context) error {
	notes, err := c.issueService.GetNotesForIssue(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, notes)
}

func (c *IssueController) AddNote(ctx echo.Context) error {
	var payload dto.CreateIssueNoteDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	payload.IssueID = ctx.Param("id")
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	note, err := c.issueService.AddNote(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, note)
}

func (c *IssueController) GetActions(ctx echo.Context) error {
	actions, err := c.issueService.GetActionsForIssue(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, actions)
}

func (c *IssueController) CreateAction(ctx echo.Context) error {
	var payload dto.CreateCorrectiveActionDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	payload.IssueID = ctx.Param("id")
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	action, err := c.issueService.CreateAction(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, action)
}

// CompleteAction marks a corrective action done and optionally moves the
// parent issue's equipment to a new status.
func (c *IssueController) CompleteAction(ctx echo.Context) error {
	var payload dto.CompleteActionDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	var statusChange *entities.EquipmentStatus
	if payload.EquipmentStatusChange.Valid {
		status := entities.EquipmentStatus(payload.EquipmentStatusChange.String)
		statusChange = &status
	}
	action, err := c.issueService.CompleteAction(ctx.Request().Context(), ctx.Param("actionId"), statusChange)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, action)
}

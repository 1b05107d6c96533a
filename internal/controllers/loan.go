package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/api"
)

type LoanController struct {
	loanService *services.LoanService
	logger      *zap.Logger
}

func NewLoanController(loanService *services.LoanService, logger *zap.Logger) *LoanController {
	return &LoanController{loanService: loanService, logger: logger}
}

func (c *LoanController) List(ctx echo.Context) error {
	result, err := c.loanService.GetAll(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *LoanController) Get(ctx echo.Context) error {
	loan, err := c.loanService.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, loan)
}

func (c *LoanController) Create(ctx echo.Context) error {
	var payload dto.CreateLoanTransferDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	loan, err := c.loanService.ValidateAndCreate(ctx.Request().Context(), payload.ToFields())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, loan)
}

func (c *LoanController) Update(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	loan, err := c.loanService.ValidateAndUpdate(ctx.Request().Context(), ctx.Param("id"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, loan)
}

func (c *LoanController) Delete(ctx echo.Context) error {
	if err := c.loanService.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, struct{}{})
}

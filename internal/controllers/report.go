package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/services"
	"equipment-system/pkg/api"
)

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(reportService *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportEquipment streams the inventory workbook as an xlsx attachment.
func (c *ReportController) ExportEquipment(ctx echo.Context) error {
	f, err := c.reportService.ExportEquipment(ctx.Request().Context())
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition",
		"attachment; filename="+c.reportService.FileName())
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

// Package controllers exposes the data services over HTTP. Handlers bind and
// validate the request, call into the service layer, and translate failures
// through the shared response envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dataservice"
	"equipment-system/pkg/api"
)

// listOptions reads the standard query parameters shared by every list
// endpoint: filter, search, orderBy, top, skip.
func listOptions(ctx echo.Context) *dataservice.ListOptions {
	opts := &dataservice.ListOptions{
		Filter:  ctx.QueryParam("filter"),
		Search:  ctx.QueryParam("search"),
		OrderBy: ctx.QueryParam("orderBy"),
	}
	if top, err := strconv.Atoi(ctx.QueryParam("top")); err == nil && top > 0 {
		opts.Top = top
	}
	if skip, err := strconv.Atoi(ctx.QueryParam("skip")); err == nil && skip > 0 {
		opts.Skip = skip
	}
	return opts
}

// bindFields decodes the request body into a partial-record patch.
func bindFields(ctx echo.Context) (dataservice.Fields, error) {
	fields := dataservice.Fields{}
	if err := ctx.Bind(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ResourceController serves plain CRUD for one entity. Entities with domain
// behavior get their own controller on top of this.
type ResourceController[T any] struct {
	store  dataservice.DataService[T]
	logger *zap.Logger
}

func NewResourceController[T any](store dataservice.DataService[T], logger *zap.Logger) *ResourceController[T] {
	return &ResourceController[T]{store: store, logger: logger}
}

// Register mounts the five CRUD routes under the given path.
func (c *ResourceController[T]) Register(g *echo.Group, path string) {
	g.GET(path, c.List)
	g.GET(path+"/:id", c.Get)
	g.POST(path, c.Create)
	g.PATCH(path+"/:id", c.Update)
	g.DELETE(path+"/:id", c.Delete)
}

func (c *ResourceController[T]) List(ctx echo.Context) error {
	result, err := c.store.GetAll(ctx.Request().Context(), listOptions(ctx))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, result)
}

func (c *ResourceController[T]) Get(ctx echo.Context) error {
	item, err := c.store.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

func (c *ResourceController[T]) Create(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.store.Create(ctx.Request().Context(), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, item)
}

func (c *ResourceController[T]) Update(ctx echo.Context) error {
	fields, err := bindFields(ctx)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	item, err := c.store.Update(ctx.Request().Context(), ctx.Param("id"), fields)
	if err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, item)
}

func (c *ResourceController[T]) Delete(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.Error(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, struct{}{})
}

package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"equipment-system/internal/dataverse"
	"equipment-system/internal/routes"
	"equipment-system/internal/services"
	"equipment-system/pkg/api"
	"equipment-system/pkg/config"
	"equipment-system/pkg/customvalidator"
	"equipment-system/pkg/database/postgresql"
	applogger "equipment-system/pkg/logger"
	appmiddleware "equipment-system/pkg/middleware"
	"equipment-system/seeders"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				api.Error(c, err, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = customvalidator.New()

	ctx := context.Background()
	reg := buildRegistry(ctx, cfg, logger)

	if cfg.Store.SeedOnStart {
		if err := seeders.New(reg, logger).SeedAll(ctx); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
	}

	routes.InitRouter(e, reg, logger)

	logger.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("store", string(cfg.Store.Mode)))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// buildRegistry wires the data services for the configured backend.
func buildRegistry(ctx context.Context, cfg *config.Config, logger *zap.Logger) *services.Registry {
	switch cfg.Store.Mode {
	case config.StorePostgres:
		if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		return services.NewPostgresRegistry(pool, logger)

	case config.StoreDataverse:
		if cfg.Dataverse.EnvironmentURL == "" {
			logger.Fatal("DATAVERSE_URL is required for the dataverse store")
		}
		client := dataverse.NewHTTPClient(cfg.Dataverse.EnvironmentURL, cfg.Dataverse.AccessToken, logger)
		return services.NewDataverseRegistry(client, logger, nil)

	default:
		return services.NewMemoryRegistry(cfg.Store.MockLatency, logger)
	}
}

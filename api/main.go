package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/benchmarks"
	"github.com/tidepool-org/riskanalytics/config"
	"github.com/tidepool-org/riskanalytics/logger"
	"github.com/tidepool-org/riskanalytics/metrics"
	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			address := fmt.Sprintf(":%d", cfg.HttpPort)
			go func() {
				logger.Infow("starting http server", "address", address)
				if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorw("http server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// Lifecycle hooks run in topological order, so mongo and the repository
			// indexes are initialized before the service reports ready
			healthCheck.SetReady(true)
			return nil
		},
	})
}

// Dependencies returns the DI graph of the analytics service without the http server
// lifecycle hooks. It is shared with the operator tooling and the integration tests.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.Provider,
			store.NewConfig,
			store.NewClientFromConfig,
			store.NewDatabase,
			metrics.New,
			benchmarks.NewProvider,
			records.NewRepository,
			analytics.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(SetReady),
	}
}

func MainLoop() {
	fx.New(append(Dependencies(), fx.Invoke(Start))...).Run()
}

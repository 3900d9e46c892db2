package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"gestionpaquetes/internal/config"
	"gestionpaquetes/internal/repository"
	"gestionpaquetes/internal/service"
	httpt "gestionpaquetes/internal/transport/http"
	"gestionpaquetes/pkg/logger"
	"gestionpaquetes/pkg/metric"
	"gestionpaquetes/pkg/storage/postgres"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	shipmentService := initShipmentService(db, metrics, log)

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, shipmentService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
		postgres.MaxConnAttempts(cfg.ConnAttempts),
		postgres.BaseRetryDelay(cfg.BaseRetryDelay),
		postgres.MaxRetryDelay(cfg.MaxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initShipmentService(
	db *postgres.Postgres,
	metrics metric.Factory,
	log logger.Logger,
) *service.ShipmentService {
	shipmentRepo := repository.NewShipmentRepository(db, metrics.Storage())

	return service.NewShipmentService(
		shipmentRepo,
		log.With("component", "shipment service"),
	)
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	shipmentService *service.ShipmentService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewShipmentHandler(shipmentService, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return errors.Is(err, context.Canceled)
}

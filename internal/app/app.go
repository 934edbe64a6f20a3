package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/sales/internal/health"
	"github.com/vladislavdragonenkov/sales/internal/httpapi"
	"github.com/vladislavdragonenkov/sales/internal/service/catalog"
	"github.com/vladislavdragonenkov/sales/internal/service/checkout"
	"github.com/vladislavdragonenkov/sales/internal/storage/postgres"
	"github.com/vladislavdragonenkov/sales/internal/version"
)

// Run собирает зависимости и держит HTTP-серверы до отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	if err := cfg.Validate(); err != nil {
		return err
	}

	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close(logger)

	catalogSvc := catalog.NewService(deps.Products, deps.Customers, logger.WithField("layer", "catalog"))
	checkoutSvc := checkout.NewService(deps.Customers, deps.Products, deps.Orders,
		logger.WithField("layer", "checkout"))

	handlers := httpapi.NewHandlers(catalogSvc, checkoutSvc, deps.Orders, logger.WithField("layer", "httpapi"))
	router := httpapi.NewRouter(handlers, logger.WithField("layer", "http"))

	v, _, _ := version.Info()
	healthHandler := healthcheck.NewHandler(v)
	if deps.Store != nil {
		healthHandler.RegisterChecker("postgres", healthcheck.NewStoreChecker("postgres", deps.Store, 2*time.Second))
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func buildDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	switch cfg.StorageDriver {
	case StorageMemory:
		logger.Info("используем in-memory хранилище")
		return NewMemoryDependencies(), nil
	case StoragePostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if cfg.AutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
			logger.Info("миграции применены")
		}
		logger.Info("используем postgres хранилище")
		return NewPostgresDependencies(store), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.StorageDriver)
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez", addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/installdesk/installdesk/internal/app"
	"github.com/installdesk/installdesk/internal/customers"
	"github.com/installdesk/installdesk/internal/dashboard"
	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/observability"
	"github.com/installdesk/installdesk/internal/platform/cache"
	"github.com/installdesk/installdesk/internal/platform/db"
	"github.com/installdesk/installdesk/internal/projects"
	"github.com/installdesk/installdesk/internal/sequence"
	"github.com/installdesk/installdesk/internal/shared"
	"github.com/installdesk/installdesk/internal/workorders"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var (
		customerRepo  customers.Repository
		materialRepo  materials.Repository
		workOrderRepo workorders.Repository
		invoiceRepo   invoices.Repository
		projectRepo   projects.Repository
		auditor       workorders.Auditor
	)

	switch cfg.StorageDriver {
	case app.StoragePostgres:
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		customerRepo = customers.NewPostgresRepository(pool)
		materialRepo = materials.NewPostgresRepository(pool)
		workOrderRepo = workorders.NewPostgresRepository(pool)
		invoiceRepo = invoices.NewPostgresRepository(pool)
		projectRepo = projects.NewPostgresRepository(pool)
		auditor = shared.NewAuditLogger(pool)
	case app.StorageMemory:
		// All memory repos share one counter so code scopes stay
		// consistent process-wide.
		counter := sequence.NewCounter()
		customerRepo = customers.NewMemoryRepository(counter)
		materialRepo = materials.NewMemoryRepository(counter)
		workOrderRepo = workorders.NewMemoryRepository(counter)
		invoiceRepo = invoices.NewMemoryRepository(counter)
		projectRepo = projects.NewMemoryRepository()
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, dashboard cache disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	customerSvc := customers.NewService(customerRepo)
	materialSvc := materials.NewService(materialRepo)
	workOrderSvc := workorders.NewService(workOrderRepo, materialRepo, auditor, logger)
	invoiceSvc := invoices.NewService(invoiceRepo)
	projectSvc := projects.NewService(projectRepo)

	dashboardCache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	dashboardSvc := dashboard.NewService(customerSvc, materialSvc, workOrderSvc, invoiceSvc, projectSvc, dashboardCache)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CustomerHandler:  customers.NewHandler(logger, customerSvc),
		MaterialHandler:  materials.NewHandler(logger, materialSvc),
		WorkOrderHandler: workorders.NewHandler(logger, workOrderSvc),
		InvoiceHandler:   invoices.NewHandler(logger, invoiceSvc),
		ProjectHandler:   projects.NewHandler(logger, projectSvc),
		DashboardHandler: dashboard.NewHandler(logger, dashboardSvc),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/triage-kit/support-engine/internal/api/http"
	"github.com/triage-kit/support-engine/internal/api/http/handlers"
	"github.com/triage-kit/support-engine/internal/autoresponse"
	"github.com/triage-kit/support-engine/internal/classify"
	"github.com/triage-kit/support-engine/internal/config"
	"github.com/triage-kit/support-engine/internal/events"
	"github.com/triage-kit/support-engine/internal/observability"
	"github.com/triage-kit/support-engine/internal/registry"
	"github.com/triage-kit/support-engine/internal/service"
	"github.com/triage-kit/support-engine/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	catalog, responsePools, err := config.LoadCatalogs(cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to load catalogs", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	reg := registry.New()

	assigner := service.NewAssignmentService(service.AssignmentDependencies{
		Registry:   reg,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	lifecycle := service.NewLifecycleService(service.LifecycleDependencies{
		Registry:   reg,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	supportService := service.NewSupportService(service.SupportDependencies{
		Registry:   reg,
		Classifier: classify.NewKeywordClassifier(catalog),
		Responses:  autoresponse.NewStaticCatalog(responsePools),
		Assigner:   assigner,
		Lifecycle:  lifecycle,
		Reporting:  service.NewReportingService(reg),
		Budgets:    cfg.SLA.Budgets(),
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	sweeper, err := worker.StartSLAWorker(cfg.Sweep.Schedule, supportService, logger)
	if err != nil {
		logger.Fatal("failed to start sla worker", zap.Error(err))
	}

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Directory: handlers.NewDirectoryHandler(supportService),
		Tickets:   handlers.NewTicketsHandler(supportService),
		Reports:   handlers.NewReportsHandler(supportService),
		Metrics:   metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if sweeper != nil {
		sweeper.Stop()
	}
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

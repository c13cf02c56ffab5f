package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/triage-kit/support-engine/internal/api/http/handlers"
	"github.com/triage-kit/support-engine/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Directory *handlers.DirectoryHandler
	Tickets   *handlers.TicketsHandler
	Reports   *handlers.ReportsHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	app.Post("/agents", cfg.Directory.RegisterAgent)
	app.Get("/agents", cfg.Directory.ListAgents)
	app.Post("/clients", cfg.Directory.RegisterClient)
	app.Post("/assignments/rerun", cfg.Directory.Reassign)

	tickets := app.Group("/tickets")
	tickets.Post("", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Post("/:id/messages", cfg.Tickets.AppendMessage)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
	tickets.Post("/:id/satisfaction", cfg.Tickets.RecordSatisfaction)

	app.Get("/reports/performance", cfg.Reports.Performance)
}

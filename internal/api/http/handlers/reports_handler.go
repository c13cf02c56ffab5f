package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/triage-kit/support-engine/internal/service"
)

// ReportsHandler exposes aggregate statistics.
type ReportsHandler struct {
	service *service.SupportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(svc *service.SupportService) *ReportsHandler {
	return &ReportsHandler{service: svc}
}

// Performance GET /reports/performance.
func (h *ReportsHandler) Performance(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.PerformanceReport()})
}

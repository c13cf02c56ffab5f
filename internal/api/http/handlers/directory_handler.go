package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/triage-kit/support-engine/internal/api/dto"
	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/service"
	apperrors "github.com/triage-kit/support-engine/pkg/util"
)

// DirectoryHandler exposes agent and client registration.
type DirectoryHandler struct {
	service *service.SupportService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(svc *service.SupportService) *DirectoryHandler {
	return &DirectoryHandler{service: svc}
}

// RegisterAgent POST /agents.
func (h *DirectoryHandler) RegisterAgent(c *fiber.Ctx) error {
	var req dto.RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("id and name required", nil)
	}

	agent := domain.NewAgent(req.ID, req.Name, req.Email, time.Now())
	for _, label := range req.Specializations {
		agent.AddSpecialization(label)
	}
	if req.Available != nil {
		agent.Available = *req.Available
	}
	if err := h.service.RegisterAgent(agent); err != nil {
		return err
	}
	// A fresh agent may unblock tickets that found no candidate earlier.
	h.service.ReassignOpenTickets()
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAgentResponse(*agent)})
}

// ListAgents GET /agents.
func (h *DirectoryHandler) ListAgents(c *fiber.Ctx) error {
	agents := h.service.AgentSnapshots()
	items := make([]dto.AgentResponse, 0, len(agents))
	for _, agent := range agents {
		items = append(items, dto.NewAgentResponse(agent))
	}
	return c.JSON(fiber.Map{"data": items})
}

// RegisterClient POST /clients.
func (h *DirectoryHandler) RegisterClient(c *fiber.Ctx) error {
	var req dto.RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	client := h.service.RegisterClient(req.Name, req.Email)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// Reassign POST /assignments/rerun re-attempts assignment for open tickets,
// typically after agent availability changed out of band.
func (h *DirectoryHandler) Reassign(c *fiber.Ctx) error {
	assigned := h.service.ReassignOpenTickets()
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": assigned}})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/triage-kit/support-engine/internal/api/dto"
	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/service"
	apperrors "github.com/triage-kit/support-engine/pkg/util"
)

// TicketsHandler exposes ticket lifecycle endpoints.
type TicketsHandler struct {
	service *service.SupportService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(svc *service.SupportService) *TicketsHandler {
	return &TicketsHandler{service: svc}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientID == "" || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("client_id, title, description required", nil)
	}

	ticket, err := h.service.CreateTicket(req.ClientID, req.Title, req.Description)
	if err != nil {
		return err
	}
	snapshot, err := h.service.TicketSnapshot(ticket.ID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(snapshot)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	snapshot, err := h.service.TicketSnapshot(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(snapshot)})
}

// AppendMessage POST /tickets/:id/messages.
func (h *TicketsHandler) AppendMessage(c *fiber.Ctx) error {
	var req dto.AppendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.SenderID == "" || strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("sender_id and content required", nil)
	}

	responses, err := h.service.AppendMessage(c.Params("id"), req.SenderID, req.Content)
	if err != nil {
		return err
	}
	if responses == nil {
		responses = []string{}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AutoResponsesResponse{Responses: responses}})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}
	if !h.service.SetStatus(c.Params("id"), status, req.Comment) {
		return apperrors.NewTicketNotFound(c.Params("id"))
	}
	snapshot, err := h.service.TicketSnapshot(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(snapshot)})
}

// RecordSatisfaction POST /tickets/:id/satisfaction.
func (h *TicketsHandler) RecordSatisfaction(c *fiber.Ctx) error {
	var req dto.SatisfactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Score < 1 || req.Score > 5 {
		return apperrors.NewInvalidSatisfactionScore(req.Score)
	}
	if !h.service.RecordSatisfaction(c.Params("id"), req.Score, req.Comment) {
		return apperrors.NewTicketNotFound(c.Params("id"))
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

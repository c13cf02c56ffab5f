package dto

import (
	"time"

	"github.com/triage-kit/support-engine/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	ClientID    string `json:"client_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AppendMessageRequest payload.
type AppendMessageRequest struct {
	SenderID string `json:"sender_id"`
	Content  string `json:"content"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// SatisfactionRequest payload.
type SatisfactionRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// MessageResponse represents one thread entry.
type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	IsSystem   bool      `json:"is_system"`
}

// TicketResponse provides full ticket info.
type TicketResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Priority          string            `json:"priority"`
	Status            string            `json:"status"`
	ClientID          string            `json:"client_id"`
	AgentID           *string           `json:"agent_id"`
	Tags              []string          `json:"tags,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	LastUpdatedAt     time.Time         `json:"last_updated_at"`
	Messages          []MessageResponse `json:"messages"`
	FirstResponseTime *time.Duration    `json:"first_response_time,omitempty"`
	ResolutionTime    *time.Duration    `json:"resolution_time,omitempty"`
	SatisfactionScore *int              `json:"satisfaction_score,omitempty"`
}

// NewTicketResponse maps a ticket snapshot.
func NewTicketResponse(t domain.Ticket) TicketResponse {
	messages := make([]MessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		messages = append(messages, MessageResponse{
			ID:         m.ID,
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
			IsSystem:   m.IsSystem,
		})
	}
	return TicketResponse{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority.String(),
		Status:            string(t.Status),
		ClientID:          t.ClientID,
		AgentID:           t.AgentID,
		Tags:              t.Tags,
		CreatedAt:         t.CreatedAt,
		LastUpdatedAt:     t.LastUpdatedAt,
		Messages:          messages,
		FirstResponseTime: t.FirstResponseTime,
		ResolutionTime:    t.ResolutionTime,
		SatisfactionScore: t.SatisfactionScore,
	}
}

// AutoResponsesResponse carries the system-generated reply strings.
type AutoResponsesResponse struct {
	Responses []string `json:"responses"`
}

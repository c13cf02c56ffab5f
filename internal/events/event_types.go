package events

import (
	"time"

	"github.com/triage-kit/support-engine/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated         EventType = "ticket_created"
	EventTicketAssigned        EventType = "ticket_assigned"
	EventTicketStatusChanged   EventType = "ticket_status_changed"
	EventTicketPriorityChanged EventType = "ticket_priority_changed"
	EventTicketMessageAdded    EventType = "ticket_message_added"
	EventSatisfactionRecorded  EventType = "satisfaction_recorded"
	EventSLABreached           EventType = "sla_breached"
)

// Event represents a domain event emitted by the engine.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	TicketID  string    `json:"ticket_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	ClientID string                `json:"client_id"`
	Priority domain.TicketPriority `json:"priority"`
	Title    string                `json:"title"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AgentID string `json:"agent_id"`
	Score   int    `json:"score"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Comment   string              `json:"comment,omitempty"`
}

// TicketPriorityChangedPayload payload.
type TicketPriorityChangedPayload struct {
	OldPriority domain.TicketPriority `json:"old_priority"`
	NewPriority domain.TicketPriority `json:"new_priority"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	MessageID   string `json:"message_id"`
	SenderID    string `json:"sender_id"`
	BodyPreview string `json:"body_preview"`
}

// SatisfactionRecordedPayload payload.
type SatisfactionRecordedPayload struct {
	Score int `json:"score"`
}

// SLABreachedPayload payload.
type SLABreachedPayload struct {
	Priority    domain.TicketPriority `json:"priority"`
	IdleFor     time.Duration         `json:"idle_for"`
	DetectedVia string                `json:"detected_via"`
}

package domain

import (
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen           TicketStatus = "OPEN"
	TicketStatusAssigned       TicketStatus = "ASSIGNED"
	TicketStatusInProgress     TicketStatus = "IN_PROGRESS"
	TicketStatusPaused         TicketStatus = "PAUSED"
	TicketStatusAwaitingClient TicketStatus = "AWAITING_CLIENT"
	TicketStatusResolved       TicketStatus = "RESOLVED"
	TicketStatusClosed         TicketStatus = "CLOSED"
)

// ParseStatus resolves a status label. Unknown labels report ok=false.
func ParseStatus(label string) (TicketStatus, bool) {
	switch s := TicketStatus(strings.ToUpper(label)); s {
	case TicketStatusOpen, TicketStatusAssigned, TicketStatusInProgress,
		TicketStatusPaused, TicketStatusAwaitingClient, TicketStatusResolved,
		TicketStatusClosed:
		return s, true
	}
	return "", false
}

// Ticket is the aggregate for support requests. Agents and clients are
// referenced by id only; the registry resolves them.
type Ticket struct {
	ID                string
	Title             string
	Description       string
	Priority          TicketPriority
	Status            TicketStatus
	ClientID          string
	AgentID           *string
	Tags              []string
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
	Messages          []Message
	FirstResponseTime *time.Duration
	ResolutionTime    *time.Duration
	SatisfactionScore *int
}

// NewTicket creates an open ticket owned by the given client.
func NewTicket(id, title, description, clientID string, priority TicketPriority, now time.Time) *Ticket {
	return &Ticket{
		ID:            id,
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		Priority:      priority,
		Status:        TicketStatusOpen,
		ClientID:      clientID,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

// AppendMessage adds a message to the thread and bumps the update stamp.
// The thread is append-only; messages are never reordered or removed.
func (t *Ticket) AppendMessage(msg Message, now time.Time) {
	t.Messages = append(t.Messages, msg)
	t.LastUpdatedAt = now
}

// Terminal reports whether the ticket has reached a resting state.
func (t *Ticket) Terminal() bool {
	return t.Status == TicketStatusResolved || t.Status == TicketStatusClosed
}

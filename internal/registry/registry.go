// Package registry is the in-memory arena for agents, clients and tickets.
// Entities are keyed by id and insertion order is preserved: the assignment
// tie-break depends on first-seen iteration over agents. The registry is not
// synchronized; the coordinating service serializes all access.
package registry

import (
	"github.com/triage-kit/support-engine/internal/domain"
	apperrors "github.com/triage-kit/support-engine/pkg/util"
)

// Registry owns every entity in the system. All references between entities
// are ids resolved through it.
type Registry struct {
	agents     map[string]*domain.Agent
	agentOrder []string

	clients     map[string]*domain.Client
	clientOrder []string

	tickets     map[string]*domain.Ticket
	ticketOrder []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		agents:  make(map[string]*domain.Agent),
		clients: make(map[string]*domain.Client),
		tickets: make(map[string]*domain.Ticket),
	}
}

// AddAgent inserts an agent by id, rejecting duplicates.
func (r *Registry) AddAgent(agent *domain.Agent) error {
	if _, exists := r.agents[agent.ID]; exists {
		return apperrors.NewDuplicateID("agent", agent.ID)
	}
	r.agents[agent.ID] = agent
	r.agentOrder = append(r.agentOrder, agent.ID)
	return nil
}

// Agent resolves an agent id.
func (r *Registry) Agent(id string) (*domain.Agent, bool) {
	a, ok := r.agents[id]
	return a, ok
}

// AgentsInOrder returns agents in registration order.
func (r *Registry) AgentsInOrder() []*domain.Agent {
	out := make([]*domain.Agent, 0, len(r.agentOrder))
	for _, id := range r.agentOrder {
		out = append(out, r.agents[id])
	}
	return out
}

// AddClient inserts a client by id, rejecting duplicates.
func (r *Registry) AddClient(client *domain.Client) error {
	if _, exists := r.clients[client.ID]; exists {
		return apperrors.NewDuplicateID("client", client.ID)
	}
	r.clients[client.ID] = client
	r.clientOrder = append(r.clientOrder, client.ID)
	return nil
}

// Client resolves a client id.
func (r *Registry) Client(id string) (*domain.Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

// AddTicket inserts a ticket. Ticket ids are generated, so collisions are a
// programming error surfaced the same way as registrations.
func (r *Registry) AddTicket(ticket *domain.Ticket) error {
	if _, exists := r.tickets[ticket.ID]; exists {
		return apperrors.NewDuplicateID("ticket", ticket.ID)
	}
	r.tickets[ticket.ID] = ticket
	r.ticketOrder = append(r.ticketOrder, ticket.ID)
	return nil
}

// Ticket resolves a ticket id.
func (r *Registry) Ticket(id string) (*domain.Ticket, bool) {
	t, ok := r.tickets[id]
	return t, ok
}

// TicketsInOrder returns tickets in creation order.
func (r *Registry) TicketsInOrder() []*domain.Ticket {
	out := make([]*domain.Ticket, 0, len(r.ticketOrder))
	for _, id := range r.ticketOrder {
		out = append(out, r.tickets[id])
	}
	return out
}

// TicketCount returns the number of tickets ever created.
func (r *Registry) TicketCount() int {
	return len(r.ticketOrder)
}

// AgentCount returns the number of registered agents.
func (r *Registry) AgentCount() int {
	return len(r.agentOrder)
}

// ClientCount returns the number of registered clients.
func (r *Registry) ClientCount() int {
	return len(r.clientOrder)
}

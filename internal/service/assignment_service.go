package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/events"
	"github.com/triage-kit/support-engine/internal/observability"
	"github.com/triage-kit/support-engine/internal/registry"
)

// Workload ceiling for new assignments. Agents at or above it are never
// candidates; resolution frees a slot.
const maxAgentWorkload = 5

// AssignmentService picks the best-fit available agent for a ticket. It is
// invoked under the coordinator lock and mutates only the ticket and the
// selected agent.
type AssignmentService struct {
	registry   *registry.Registry
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// AssignmentDependencies bundles collaborators.
type AssignmentDependencies struct {
	Registry   *registry.Registry
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		registry:   deps.Registry,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Assign selects an agent for the ticket, or returns nil when no agent
// qualifies. A nil result is a normal steady state, not an error: the ticket
// stays as it was and the caller re-attempts when availability changes.
func (s *AssignmentService) Assign(ticket *domain.Ticket) *domain.Agent {
	specKey := ticket.Priority.SpecializationKey()

	var selected *domain.Agent
	var selectedScore int
	for _, agent := range s.registry.AgentsInOrder() {
		if !agent.Available || agent.Workload >= maxAgentWorkload {
			continue
		}
		score := scoreAgent(agent, specKey)
		// Strict comparison keeps the first-seen candidate on ties.
		if selected == nil || score > selectedScore {
			selected = agent
			selectedScore = score
		}
	}
	if selected == nil {
		s.metrics.RecordAssignment(false)
		s.logger.Debug("no agent available", zap.String("ticket_id", ticket.ID))
		return nil
	}

	now := s.now()
	agentID := selected.ID
	ticket.AgentID = &agentID
	ticket.Status = domain.TicketStatusAssigned
	selected.Workload++

	if ticket.FirstResponseTime == nil {
		firstResponse := now.Sub(ticket.CreatedAt)
		ticket.FirstResponseTime = &firstResponse
	}

	ticket.AppendMessage(domain.NewSystemMessage(
		uuid.NewString(),
		fmt.Sprintf("ticket assigned to %s", selected.Name),
		now,
	), now)

	s.metrics.RecordAssignment(true)
	s.logger.Info("ticket assigned",
		zap.String("ticket_id", ticket.ID),
		zap.String("agent_id", selected.ID),
		zap.Int("score", selectedScore),
		zap.Int("workload", selected.Workload))
	s.publish(events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketAssigned,
		TicketID:  ticket.ID,
		Timestamp: now,
		Payload: events.TicketAssignedPayload{
			AgentID: selected.ID,
			Score:   selectedScore,
		},
	})
	return selected
}

// scoreAgent applies the fixed scoring policy: a light workload is worth the
// most, a matching specialization adds a flat bonus, and experience adds one
// point per ten resolved tickets.
func scoreAgent(agent *domain.Agent, specKey string) int {
	score := 100 - agent.Workload*20
	if agent.Specialized(specKey) {
		score += 50
	}
	score += agent.ResolvedCount / 10
	return score
}

func (s *AssignmentService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}

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

// LifecycleService applies status transitions and satisfaction ratings,
// keeping agent workload and the rolling resolution average consistent.
// Invoked under the coordinator lock.
type LifecycleService struct {
	registry   *registry.Registry
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// LifecycleDependencies bundles collaborators.
type LifecycleDependencies struct {
	Registry   *registry.Registry
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewLifecycleService creates the service.
func NewLifecycleService(deps LifecycleDependencies) *LifecycleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleService{
		registry:   deps.Registry,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// SetStatus writes the new status, optionally recording a system comment.
// Returns false when the ticket does not exist; the caller decides how to
// surface that. Any status is reachable from any status, but resolution
// bookkeeping fires only on a transition into Resolved.
func (s *LifecycleService) SetStatus(ticketID string, newStatus domain.TicketStatus, comment string) bool {
	ticket, ok := s.registry.Ticket(ticketID)
	if !ok {
		return false
	}
	now := s.now()
	oldStatus := ticket.Status
	ticket.Status = newStatus

	if comment != "" {
		ticket.AppendMessage(domain.NewSystemMessage(
			uuid.NewString(),
			fmt.Sprintf("status changed to %s: %s", newStatus, comment),
			now,
		), now)
	}

	if newStatus == domain.TicketStatusResolved && oldStatus != domain.TicketStatusResolved {
		s.applyResolution(ticket, now)
	}

	s.publish(events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketStatusChanged,
		TicketID:  ticket.ID,
		Timestamp: now,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Comment:   comment,
		},
	})
	return true
}

// applyResolution releases the agent's workload slot and folds the new
// resolution duration into the incremental mean:
// avg_new = (avg_old*(n-1) + took) / n with n the post-increment count.
func (s *LifecycleService) applyResolution(ticket *domain.Ticket, now time.Time) {
	if ticket.AgentID == nil {
		return
	}
	agent, ok := s.registry.Agent(*ticket.AgentID)
	if !ok {
		return
	}

	agent.Workload--
	agent.ResolvedCount++
	took := now.Sub(ticket.CreatedAt)
	ticket.ResolutionTime = &took

	if agent.ResolvedCount == 1 {
		agent.AvgResolutionTime = took
	} else {
		n := time.Duration(agent.ResolvedCount)
		agent.AvgResolutionTime = (agent.AvgResolutionTime*(n-1) + took) / n
	}

	s.metrics.RecordResolution(took)
	s.logger.Info("ticket resolved",
		zap.String("ticket_id", ticket.ID),
		zap.String("agent_id", agent.ID),
		zap.Duration("resolution_time", took),
		zap.Int("resolved_count", agent.ResolvedCount))
}

// RecordSatisfaction stores a 1..5 rating. Returns false for an out-of-range
// score or an unknown ticket. A second call overwrites the previous rating.
func (s *LifecycleService) RecordSatisfaction(ticketID string, score int, comment string) bool {
	if score < 1 || score > 5 {
		return false
	}
	ticket, ok := s.registry.Ticket(ticketID)
	if !ok {
		return false
	}
	now := s.now()
	rating := score
	ticket.SatisfactionScore = &rating

	if comment != "" {
		ticket.AppendMessage(domain.NewSystemMessage(
			uuid.NewString(),
			fmt.Sprintf("client satisfaction: %d/5 - %s", score, comment),
			now,
		), now)
	}

	s.publish(events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSatisfactionRecorded,
		TicketID:  ticket.ID,
		Timestamp: now,
		Payload:   events.SatisfactionRecordedPayload{Score: score},
	})
	return true
}

func (s *LifecycleService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}

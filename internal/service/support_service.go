package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/triage-kit/support-engine/internal/autoresponse"
	"github.com/triage-kit/support-engine/internal/classify"
	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/events"
	"github.com/triage-kit/support-engine/internal/observability"
	"github.com/triage-kit/support-engine/internal/registry"
	"github.com/triage-kit/support-engine/internal/sla"
	apperrors "github.com/triage-kit/support-engine/pkg/util"
)

// slaWarning is returned among the auto-responses when a ticket sat idle past
// its priority budget. Both the reactive check and the sweep share the same
// breach predicate in the sla package.
const slaWarning = "warning: this ticket has exceeded its SLA window"

// Last non-system messages kept for the global history ring.
const globalHistoryLimit = 1000

// SupportService is the coordinator: it owns the registry behind a single
// mutex and every state-changing operation runs to completion under it.
// Assignment and resolution both read-then-write agent workload, so the
// coarse lock is what keeps them consistent.
type SupportService struct {
	mu sync.Mutex

	registry   *registry.Registry
	classifier classify.Classifier
	responses  autoresponse.Catalog
	assigner   *AssignmentService
	lifecycle  *LifecycleService
	reporting  *ReportingService
	budgets    sla.Budgets
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time

	globalHistory []domain.Message
}

// SupportDependencies bundles collaborators for the coordinator.
type SupportDependencies struct {
	Registry   *registry.Registry
	Classifier classify.Classifier
	Responses  autoresponse.Catalog
	Assigner   *AssignmentService
	Lifecycle  *LifecycleService
	Reporting  *ReportingService
	Budgets    sla.Budgets
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewSupportService constructs the coordinator.
func NewSupportService(deps SupportDependencies) *SupportService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	budgets := deps.Budgets
	if budgets == nil {
		budgets = sla.DefaultBudgets()
	}
	return &SupportService{
		registry:   deps.Registry,
		classifier: deps.Classifier,
		responses:  deps.Responses,
		assigner:   deps.Assigner,
		lifecycle:  deps.Lifecycle,
		reporting:  deps.Reporting,
		budgets:    budgets,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterAgent inserts an agent into the registry. Fails with DUPLICATE_ID
// when the id is already taken.
func (s *SupportService) RegisterAgent(agent *domain.Agent) error {
	if agent == nil || strings.TrimSpace(agent.ID) == "" {
		return apperrors.NewValidationError("agent id required", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.AddAgent(agent); err != nil {
		return err
	}
	s.logger.Info("agent registered",
		zap.String("agent_id", agent.ID),
		zap.Int("specializations", len(agent.Specializations)))
	return nil
}

// RegisterClient creates a client with a fresh id.
func (s *SupportService) RegisterClient(name, email string) *domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := domain.NewClient(uuid.NewString(), name, email)
	// Ids are freshly generated; a collision would be a uuid failure.
	_ = s.registry.AddClient(client)
	s.logger.Info("client registered", zap.String("client_id", client.ID))
	return client
}

// CreateTicket classifies the description, opens the ticket with a system
// message recording the priority, links it to the client and immediately
// attempts assignment. The ticket is returned whether or not an agent was
// found; an unassigned ticket simply stays Open.
func (s *SupportService) CreateTicket(clientID, title, description string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.registry.Client(clientID)
	if !ok {
		return nil, apperrors.NewNotFound("client", map[string]any{"client_id": clientID})
	}

	now := s.now()
	priority := s.classifier.ClassifyPriority(description)
	ticket := domain.NewTicket(uuid.NewString(), title, description, client.ID, priority, now)
	ticket.AppendMessage(domain.NewSystemMessage(
		uuid.NewString(),
		fmt.Sprintf("ticket created with priority %s", priority),
		now,
	), now)

	if err := s.registry.AddTicket(ticket); err != nil {
		return nil, err
	}
	client.OpenTicketIDs = append(client.OpenTicketIDs, ticket.ID)

	s.metrics.RecordTicketCreated()
	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("client_id", client.ID),
		zap.String("priority", priority.String()))
	s.publish(events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketCreated,
		TicketID:  ticket.ID,
		Timestamp: now,
		Payload: events.TicketCreatedPayload{
			ClientID: client.ID,
			Priority: priority,
			Title:    ticket.Title,
		},
	})

	s.assigner.Assign(ticket)
	return ticket, nil
}

// AppendMessage authorizes the sender, appends the message and runs the
// classification-driven side effects: a canned acknowledgement when the text
// reads as a problem report, a priority recompute when it reads as urgent,
// and the reactive SLA check. Returns the system-generated response strings.
//
// A priority change here does not re-run assignment: an escalated ticket
// keeps its agent and workload slot.
func (s *SupportService) AppendMessage(ticketID, senderID, content string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.registry.Ticket(ticketID)
	if !ok {
		return nil, apperrors.NewTicketNotFound(ticketID)
	}

	senderName, err := s.resolveSender(ticket, senderID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// The append below refreshes the update stamp, so the idle span for the
	// SLA check has to be captured first.
	idle := now.Sub(ticket.LastUpdatedAt)

	message := domain.NewMessage(uuid.NewString(), senderID, senderName, content, now)
	ticket.AppendMessage(message, now)
	s.recordGlobalHistory(message)
	s.metrics.RecordMessageAppended()

	var responses []string
	flags := s.classifier.ClassifyCategories(content)

	if flags[classify.CategoryProblem] {
		responses = append(responses, s.responses.Sample(autoresponse.KindProblem))
	}
	if flags[classify.CategoryUrgency] {
		if newPriority := s.classifier.ClassifyPriority(content); newPriority != ticket.Priority {
			oldPriority := ticket.Priority
			ticket.Priority = newPriority
			responses = append(responses, fmt.Sprintf("ticket priority updated to %s", newPriority))
			s.metrics.RecordPriorityEscalation()
			s.publish(events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventTicketPriorityChanged,
				TicketID:  ticket.ID,
				Timestamp: now,
				Payload: events.TicketPriorityChangedPayload{
					OldPriority: oldPriority,
					NewPriority: newPriority,
				},
			})
		}
	}

	// Reactive SLA check against the ticket's current priority budget.
	if sla.Exceeded(s.budgets, ticket.Priority, idle) {
		responses = append(responses, slaWarning)
		s.metrics.RecordSLAWarning("message")
		s.publish(events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSLABreached,
			TicketID:  ticket.ID,
			Timestamp: now,
			Payload: events.SLABreachedPayload{
				Priority:    ticket.Priority,
				IdleFor:     idle,
				DetectedVia: "message",
			},
		})
	}

	s.publish(events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketMessageAdded,
		TicketID:  ticket.ID,
		Timestamp: now,
		Payload: events.TicketMessageAddedPayload{
			MessageID:   message.ID,
			SenderID:    senderID,
			BodyPreview: stringPreview(content, 120),
		},
	})
	return responses, nil
}

// SetStatus applies a status transition. Returns false when the ticket does
// not exist.
func (s *SupportService) SetStatus(ticketID string, status domain.TicketStatus, comment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.SetStatus(ticketID, status, comment)
}

// RecordSatisfaction stores a client rating. Returns false for an invalid
// score or an unknown ticket.
func (s *SupportService) RecordSatisfaction(ticketID string, score int, comment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.RecordSatisfaction(ticketID, score, comment)
}

// ReassignOpenTickets re-runs assignment for every non-terminal, unassigned
// ticket. Callers invoke it after agent availability changes; tickets that
// found no agent at creation are picked up here.
func (s *SupportService) ReassignOpenTickets() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := 0
	for _, ticket := range s.registry.TicketsInOrder() {
		if ticket.Status != domain.TicketStatusOpen || ticket.AgentID != nil {
			continue
		}
		if s.assigner.Assign(ticket) != nil {
			assigned++
		}
	}
	return assigned
}

// PerformanceReport aggregates current registry state.
func (s *SupportService) PerformanceReport() PerformanceReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reporting.Report()
}

// SweepSLA scans non-terminal tickets for budget breaches. It never mutates
// tickets, so repeated sweeps converge: each breach is logged, counted and
// published, and the on-message check still answers identically.
func (s *SupportService) SweepSLA() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	breached := 0
	for _, ticket := range s.registry.TicketsInOrder() {
		if ticket.Terminal() {
			continue
		}
		if !sla.Breached(s.budgets, ticket, now) {
			continue
		}
		breached++
		idle := now.Sub(ticket.LastUpdatedAt)
		s.metrics.RecordSLAWarning("sweep")
		s.logger.Warn("sla breached",
			zap.String("ticket_id", ticket.ID),
			zap.String("priority", ticket.Priority.String()),
			zap.Duration("idle", idle))
		s.publish(events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSLABreached,
			TicketID:  ticket.ID,
			Timestamp: now,
			Payload: events.SLABreachedPayload{
				Priority:    ticket.Priority,
				IdleFor:     idle,
				DetectedVia: "sweep",
			},
		})
	}
	return breached
}

// TicketSnapshot returns a copy of the ticket safe to read outside the lock.
func (s *SupportService) TicketSnapshot(ticketID string) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.registry.Ticket(ticketID)
	if !ok {
		return domain.Ticket{}, apperrors.NewTicketNotFound(ticketID)
	}
	snapshot := *ticket
	snapshot.Messages = append([]domain.Message(nil), ticket.Messages...)
	snapshot.Tags = append([]string(nil), ticket.Tags...)
	return snapshot, nil
}

// AgentSnapshots returns copies of all agents in registration order.
func (s *SupportService) AgentSnapshots() []domain.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()

	agents := s.registry.AgentsInOrder()
	out := make([]domain.Agent, 0, len(agents))
	for _, agent := range agents {
		out = append(out, *agent)
	}
	return out
}

// resolveSender authorizes the sender against the ticket: only the owning
// client or the currently assigned agent may post.
func (s *SupportService) resolveSender(ticket *domain.Ticket, senderID string) (string, error) {
	if senderID == ticket.ClientID {
		if client, ok := s.registry.Client(ticket.ClientID); ok {
			return client.Name, nil
		}
	}
	if ticket.AgentID != nil && senderID == *ticket.AgentID {
		if agent, ok := s.registry.Agent(*ticket.AgentID); ok {
			return agent.Name, nil
		}
	}
	return "", apperrors.NewSenderNotAuthorized(ticket.ID, senderID)
}

// recordGlobalHistory keeps the last globalHistoryLimit client/agent messages.
func (s *SupportService) recordGlobalHistory(message domain.Message) {
	s.globalHistory = append(s.globalHistory, message)
	if len(s.globalHistory) > globalHistoryLimit {
		s.globalHistory = s.globalHistory[len(s.globalHistory)-globalHistoryLimit:]
	}
}

func (s *SupportService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}

package service

import (
	"sort"
	"time"

	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/registry"
)

// AgentStanding summarizes one agent for the performance report.
type AgentStanding struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	ResolvedCount     int           `json:"resolved_count"`
	AvgResolutionTime time.Duration `json:"avg_resolution_time"`
}

// PerformanceReport is a point-in-time aggregation over the registry.
type PerformanceReport struct {
	TotalTickets      int             `json:"total_tickets"`
	ResolvedTickets   int             `json:"resolved_tickets"`
	ResolutionRate    float64         `json:"resolution_rate"`
	AvgResolutionTime time.Duration   `json:"avg_resolution_time"`
	AvgSatisfaction   float64         `json:"avg_satisfaction"`
	TopAgents         []AgentStanding `json:"top_agents"`
}

const topAgentCount = 3

// ReportingService derives aggregate statistics by scanning registry state.
// Read-only, recomputed fully on every call; invoked under the coordinator
// lock.
type ReportingService struct {
	registry *registry.Registry
}

// NewReportingService creates the service.
func NewReportingService(reg *registry.Registry) *ReportingService {
	return &ReportingService{registry: reg}
}

// Report builds the performance report. All divisions are zero-guarded so an
// empty registry yields a zero report.
func (s *ReportingService) Report() PerformanceReport {
	tickets := s.registry.TicketsInOrder()

	report := PerformanceReport{TotalTickets: len(tickets)}
	var resolutionSum time.Duration
	var satisfactionSum, ratedCount int

	for _, ticket := range tickets {
		if ticket.Status == domain.TicketStatusResolved {
			report.ResolvedTickets++
		}
		if ticket.ResolutionTime != nil {
			resolutionSum += *ticket.ResolutionTime
		}
		if ticket.SatisfactionScore != nil {
			satisfactionSum += *ticket.SatisfactionScore
			ratedCount++
		}
	}

	if report.TotalTickets > 0 {
		report.ResolutionRate = float64(report.ResolvedTickets) / float64(report.TotalTickets) * 100
	}
	if report.ResolvedTickets > 0 {
		report.AvgResolutionTime = resolutionSum / time.Duration(report.ResolvedTickets)
	}
	if ratedCount > 0 {
		report.AvgSatisfaction = float64(satisfactionSum) / float64(ratedCount)
	}

	report.TopAgents = s.topAgents()
	return report
}

// topAgents ranks agents by resolved count, registration order breaking ties.
func (s *ReportingService) topAgents() []AgentStanding {
	agents := s.registry.AgentsInOrder()
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].ResolvedCount > agents[j].ResolvedCount
	})

	limit := topAgentCount
	if len(agents) < limit {
		limit = len(agents)
	}
	standings := make([]AgentStanding, 0, limit)
	for _, agent := range agents[:limit] {
		standings = append(standings, AgentStanding{
			ID:                agent.ID,
			Name:              agent.Name,
			ResolvedCount:     agent.ResolvedCount,
			AvgResolutionTime: agent.AvgResolutionTime,
		})
	}
	return standings
}

// Package sla holds the service-level budgets and the single breach predicate
// shared by the on-message check and the background sweep, so both paths
// always agree on what counts as a breach.
package sla

import (
	"time"

	"github.com/triage-kit/support-engine/internal/domain"
)

// Budgets maps a priority to the maximum time a ticket may sit without an
// update before it is flagged.
type Budgets map[domain.TicketPriority]time.Duration

// DefaultBudgets returns the fixed production budgets.
func DefaultBudgets() Budgets {
	return Budgets{
		domain.PriorityCritical: time.Hour,
		domain.PriorityHigh:     4 * time.Hour,
		domain.PriorityMedium:   12 * time.Hour,
		domain.PriorityLow:      24 * time.Hour,
	}
}

// For returns the budget for a priority, falling back to the Low budget for
// priorities missing from the table.
func (b Budgets) For(p domain.TicketPriority) time.Duration {
	if d, ok := b[p]; ok {
		return d
	}
	return b[domain.PriorityLow]
}

// Exceeded reports whether an idle span blows the budget for the priority.
func Exceeded(b Budgets, p domain.TicketPriority, idle time.Duration) bool {
	return idle > b.For(p)
}

// Breached evaluates a ticket against its current priority budget using its
// last update stamp.
func Breached(b Budgets, t *domain.Ticket, now time.Time) bool {
	return Exceeded(b, t.Priority, now.Sub(t.LastUpdatedAt))
}

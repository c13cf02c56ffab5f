package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/triage-kit/support-engine/internal/domain"
)

func TestDefaultBudgets(t *testing.T) {
	b := DefaultBudgets()

	assert.Equal(t, time.Hour, b.For(domain.PriorityCritical))
	assert.Equal(t, 4*time.Hour, b.For(domain.PriorityHigh))
	assert.Equal(t, 12*time.Hour, b.For(domain.PriorityMedium))
	assert.Equal(t, 24*time.Hour, b.For(domain.PriorityLow))
}

func TestForFallsBackToLowBudget(t *testing.T) {
	b := DefaultBudgets()

	assert.Equal(t, b[domain.PriorityLow], b.For(domain.TicketPriority(99)))
}

func TestExceededIsStrict(t *testing.T) {
	b := DefaultBudgets()

	assert.False(t, Exceeded(b, domain.PriorityCritical, time.Hour))
	assert.True(t, Exceeded(b, domain.PriorityCritical, time.Hour+time.Nanosecond))
	assert.False(t, Exceeded(b, domain.PriorityLow, 23*time.Hour))
}

func TestBreachedUsesLastUpdate(t *testing.T) {
	b := DefaultBudgets()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ticket := domain.NewTicket("t1", "title", "desc", "c1", domain.PriorityHigh, now)

	assert.False(t, Breached(b, ticket, now.Add(4*time.Hour)))
	assert.True(t, Breached(b, ticket, now.Add(4*time.Hour+time.Minute)))

	// A fresh update resets the idle span.
	ticket.AppendMessage(domain.NewSystemMessage("m1", "note", now.Add(4*time.Hour)), now.Add(4*time.Hour))
	assert.False(t, Breached(b, ticket, now.Add(5*time.Hour)))
}

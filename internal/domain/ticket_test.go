package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func TestNewTicketTrimsAndOpens(t *testing.T) {
	now := testTime(t)
	ticket := NewTicket("t1", "  login broken  ", "  cannot sign in ", "c1", PriorityMedium, now)

	assert.Equal(t, "login broken", ticket.Title)
	assert.Equal(t, "cannot sign in", ticket.Description)
	assert.Equal(t, TicketStatusOpen, ticket.Status)
	assert.Nil(t, ticket.AgentID)
	assert.Equal(t, now, ticket.CreatedAt)
	assert.Equal(t, now, ticket.LastUpdatedAt)
}

func TestAppendMessageKeepsOrderAndBumpsStamp(t *testing.T) {
	now := testTime(t)
	ticket := NewTicket("t1", "title", "desc", "c1", PriorityLow, now)

	later := now.Add(time.Minute)
	ticket.AppendMessage(NewMessage("m1", "c1", "Ana", "first", now), now)
	ticket.AppendMessage(NewSystemMessage("m2", "note", later), later)

	require.Len(t, ticket.Messages, 2)
	assert.Equal(t, "m1", ticket.Messages[0].ID)
	assert.Equal(t, "m2", ticket.Messages[1].ID)
	assert.True(t, ticket.Messages[1].IsSystem)
	assert.Equal(t, later, ticket.LastUpdatedAt)
}

func TestTerminal(t *testing.T) {
	ticket := NewTicket("t1", "title", "desc", "c1", PriorityLow, testTime(t))

	assert.False(t, ticket.Terminal())
	ticket.Status = TicketStatusResolved
	assert.True(t, ticket.Terminal())
	ticket.Status = TicketStatusClosed
	assert.True(t, ticket.Terminal())
	ticket.Status = TicketStatusPaused
	assert.False(t, ticket.Terminal())
}

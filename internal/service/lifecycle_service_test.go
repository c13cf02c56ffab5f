package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triage-kit/support-engine/internal/domain"
)

// createAssignedTicket routes a fresh ticket through the coordinator so it
// lands on the given agent.
func createAssignedTicket(env *testEnv, t *testing.T) *domain.Ticket {
	t.Helper()
	client := env.registerClient(t, "Ana")
	ticket, err := env.svc.CreateTicket(client.ID, "pedido", "solicitação de rotina")
	require.NoError(t, err)
	require.NotNil(t, ticket.AgentID)
	return ticket
}

func TestSetStatusUnknownTicket(t *testing.T) {
	env := newTestEnv(t)
	assert.False(t, env.lifecycle.SetStatus("missing", domain.TicketStatusClosed, ""))
}

func TestSetStatusRecordsComment(t *testing.T) {
	env := newTestEnv(t)
	env.registerAgent(t, "a1", "João")
	ticket := createAssignedTicket(env, t)
	before := len(ticket.Messages)

	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusInProgress, "digging in"))

	assert.Equal(t, domain.TicketStatusInProgress, ticket.Status)
	require.Len(t, ticket.Messages, before+1)
	last := ticket.Messages[len(ticket.Messages)-1]
	assert.True(t, last.IsSystem)
	assert.Equal(t, "status changed to IN_PROGRESS: digging in", last.Content)

	// Without a comment no message is appended.
	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusPaused, ""))
	assert.Len(t, ticket.Messages, before+1)
}

func TestResolutionUpdatesAgentAverages(t *testing.T) {
	env := newTestEnv(t)
	agent := env.registerAgent(t, "a1", "João")

	for i, took := range []time.Duration{10 * time.Minute, 20 * time.Minute, 30 * time.Minute} {
		ticket := createAssignedTicket(env, t)
		env.clock.Advance(took)
		require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusResolved, ""))

		assert.Equal(t, i+1, agent.ResolvedCount)
		assert.Equal(t, 0, agent.Workload)
		require.NotNil(t, ticket.ResolutionTime)
		assert.Equal(t, took, *ticket.ResolutionTime)
	}

	assert.Equal(t, 20*time.Minute, agent.AvgResolutionTime)
}

func TestResolutionBookkeepingFiresOnceAcrossReResolve(t *testing.T) {
	env := newTestEnv(t)
	agent := env.registerAgent(t, "a1", "João")
	ticket := createAssignedTicket(env, t)

	env.clock.Advance(10 * time.Minute)
	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusResolved, ""))
	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusResolved, ""))

	assert.Equal(t, 1, agent.ResolvedCount)
	assert.Equal(t, 0, agent.Workload)

	// Reopening and resolving again counts as a second resolution.
	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusInProgress, ""))
	env.clock.Advance(10 * time.Minute)
	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusResolved, ""))
	assert.Equal(t, 2, agent.ResolvedCount)
}

func TestResolvingUnassignedTicketSkipsBookkeeping(t *testing.T) {
	env := newTestEnv(t)
	client := env.registerClient(t, "Ana")
	ticket, err := env.svc.CreateTicket(client.ID, "pedido", "solicitação de rotina")
	require.NoError(t, err)
	require.Nil(t, ticket.AgentID)

	require.True(t, env.lifecycle.SetStatus(ticket.ID, domain.TicketStatusResolved, ""))

	assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
	assert.Nil(t, ticket.ResolutionTime)
}

func TestRecordSatisfactionValidatesRange(t *testing.T) {
	env := newTestEnv(t)
	env.registerAgent(t, "a1", "João")
	ticket := createAssignedTicket(env, t)

	assert.False(t, env.lifecycle.RecordSatisfaction(ticket.ID, 0, ""))
	assert.False(t, env.lifecycle.RecordSatisfaction(ticket.ID, 6, ""))
	assert.Nil(t, ticket.SatisfactionScore)

	assert.False(t, env.lifecycle.RecordSatisfaction("missing", 3, ""))

	require.True(t, env.lifecycle.RecordSatisfaction(ticket.ID, 3, "ok"))
	require.NotNil(t, ticket.SatisfactionScore)
	assert.Equal(t, 3, *ticket.SatisfactionScore)
	last := ticket.Messages[len(ticket.Messages)-1]
	assert.Equal(t, "client satisfaction: 3/5 - ok", last.Content)

	// Re-rating overwrites.
	require.True(t, env.lifecycle.RecordSatisfaction(ticket.ID, 5, ""))
	assert.Equal(t, 5, *ticket.SatisfactionScore)
}

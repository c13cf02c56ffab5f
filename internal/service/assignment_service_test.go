package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triage-kit/support-engine/internal/domain"
)

func newOpenTicket(env *testEnv, t *testing.T, id string, priority domain.TicketPriority) *domain.Ticket {
	t.Helper()
	ticket := domain.NewTicket(id, "title", "desc", "c1", priority, env.clock.Now())
	require.NoError(t, env.registry.AddTicket(ticket))
	return ticket
}

func TestAssignPrefersSpecialist(t *testing.T) {
	env := newTestEnv(t)
	env.registerAgent(t, "generalist", "Gen")
	specialist := env.registerAgent(t, "specialist", "Spec", "critica")

	ticket := newOpenTicket(env, t, "t1", domain.PriorityCritical)
	picked := env.assigner.Assign(ticket)

	require.NotNil(t, picked)
	assert.Equal(t, specialist.ID, picked.ID)
	assert.Equal(t, domain.TicketStatusAssigned, ticket.Status)
	assert.Equal(t, 1, specialist.Workload)
}

func TestAssignTieGoesToFirstRegistered(t *testing.T) {
	env := newTestEnv(t)
	first := env.registerAgent(t, "a1", "First")
	env.registerAgent(t, "a2", "Second")

	picked := env.assigner.Assign(newOpenTicket(env, t, "t1", domain.PriorityLow))

	require.NotNil(t, picked)
	assert.Equal(t, first.ID, picked.ID)
}

func TestAssignWorkloadOutweighsSpecialization(t *testing.T) {
	env := newTestEnv(t)
	specialist := env.registerAgent(t, "spec", "Spec", "alta")
	specialist.Workload = 3 // 100-60+50 = 90
	idle := env.registerAgent(t, "idle", "Idle")
	idle.Workload = 0 // 100

	picked := env.assigner.Assign(newOpenTicket(env, t, "t1", domain.PriorityHigh))

	require.NotNil(t, picked)
	assert.Equal(t, idle.ID, picked.ID)
}

func TestAssignExperienceBreaksNearTies(t *testing.T) {
	env := newTestEnv(t)
	rookie := env.registerAgent(t, "rookie", "Rookie")
	veteran := env.registerAgent(t, "veteran", "Veteran")
	rookie.ResolvedCount = 5  // +0
	veteran.ResolvedCount = 30 // +3

	picked := env.assigner.Assign(newOpenTicket(env, t, "t1", domain.PriorityLow))

	require.NotNil(t, picked)
	assert.Equal(t, veteran.ID, picked.ID)
}

func TestAssignSkipsUnavailableAndLoadedAgents(t *testing.T) {
	env := newTestEnv(t)
	away := env.registerAgent(t, "away", "Away", "baixa")
	away.Available = false
	busy := env.registerAgent(t, "busy", "Busy", "baixa")
	busy.Workload = maxAgentWorkload
	free := env.registerAgent(t, "free", "Free")

	picked := env.assigner.Assign(newOpenTicket(env, t, "t1", domain.PriorityLow))

	require.NotNil(t, picked)
	assert.Equal(t, free.ID, picked.ID)
}

func TestAssignNoCandidatesLeavesTicketUntouched(t *testing.T) {
	env := newTestEnv(t)
	loaded := env.registerAgent(t, "busy", "Busy")
	loaded.Workload = maxAgentWorkload

	ticket := newOpenTicket(env, t, "t1", domain.PriorityLow)
	assert.Nil(t, env.assigner.Assign(ticket))

	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Nil(t, ticket.AgentID)
	assert.Nil(t, ticket.FirstResponseTime)
	assert.Empty(t, ticket.Messages)
}

func TestAssignSetsFirstResponseTimeOnce(t *testing.T) {
	env := newTestEnv(t)
	env.registerAgent(t, "a1", "First")
	ticket := newOpenTicket(env, t, "t1", domain.PriorityLow)

	env.clock.Advance(30 * time.Minute)
	require.NotNil(t, env.assigner.Assign(ticket))
	require.NotNil(t, ticket.FirstResponseTime)
	assert.Equal(t, 30*time.Minute, *ticket.FirstResponseTime)

	// A later reassignment must not rewrite the recorded first response.
	ticket.Status = domain.TicketStatusOpen
	ticket.AgentID = nil
	env.clock.Advance(2 * time.Hour)
	require.NotNil(t, env.assigner.Assign(ticket))
	assert.Equal(t, 30*time.Minute, *ticket.FirstResponseTime)
}

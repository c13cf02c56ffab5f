package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/triage-kit/support-engine/internal/autoresponse"
	"github.com/triage-kit/support-engine/internal/classify"
	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/events"
	"github.com/triage-kit/support-engine/internal/observability"
	"github.com/triage-kit/support-engine/internal/registry"
	"github.com/triage-kit/support-engine/internal/sla"
)

// fakeClock makes duration math in tests exact.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type testEnv struct {
	clock     *fakeClock
	registry  *registry.Registry
	svc       *SupportService
	assigner  *AssignmentService
	lifecycle *LifecycleService
	reporting *ReportingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	reg := registry.New()
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	assigner := NewAssignmentService(AssignmentDependencies{
		Registry:   reg,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	assigner.now = clock.Now

	lifecycle := NewLifecycleService(LifecycleDependencies{
		Registry:   reg,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	lifecycle.now = clock.Now

	reporting := NewReportingService(reg)

	svc := NewSupportService(SupportDependencies{
		Registry:   reg,
		Classifier: classify.NewKeywordClassifier(classify.DefaultCatalog()),
		Responses:  autoresponse.NewStaticCatalog(autoresponse.DefaultResponses()),
		Assigner:   assigner,
		Lifecycle:  lifecycle,
		Reporting:  reporting,
		Budgets:    sla.DefaultBudgets(),
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	svc.now = clock.Now

	return &testEnv{
		clock:     clock,
		registry:  reg,
		svc:       svc,
		assigner:  assigner,
		lifecycle: lifecycle,
		reporting: reporting,
	}
}

func (e *testEnv) registerAgent(t *testing.T, id, name string, specializations ...string) *domain.Agent {
	t.Helper()
	agent := domain.NewAgent(id, name, id+"@example.com", e.clock.Now())
	for _, label := range specializations {
		agent.AddSpecialization(label)
	}
	require.NoError(t, e.svc.RegisterAgent(agent))
	return agent
}

func (e *testEnv) registerClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	return e.svc.RegisterClient(name, name+"@example.com")
}

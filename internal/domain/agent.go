package domain

import (
	"strings"
	"time"
)

// Agent models a human operator tickets are routed to. Workload and the
// resolution counters are mutated only by the assignment and lifecycle
// engines, never by the registry itself.
type Agent struct {
	ID                string
	Name              string
	Email             string
	Workload          int
	Specializations   map[string]struct{}
	Available         bool
	LastLogin         time.Time
	ResolvedCount     int
	AvgResolutionTime time.Duration
}

// NewAgent creates an available agent with no specializations.
func NewAgent(id, name, email string, now time.Time) *Agent {
	return &Agent{
		ID:              id,
		Name:            name,
		Email:           email,
		Specializations: make(map[string]struct{}),
		Available:       true,
		LastLogin:       now,
	}
}

// AddSpecialization records an affinity label. Labels are lowercased so they
// compare against TicketPriority.SpecializationKey.
func (a *Agent) AddSpecialization(label string) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return
	}
	if a.Specializations == nil {
		a.Specializations = make(map[string]struct{})
	}
	a.Specializations[label] = struct{}{}
}

// Specialized reports whether the agent carries the given label.
func (a *Agent) Specialized(label string) bool {
	_, ok := a.Specializations[label]
	return ok
}

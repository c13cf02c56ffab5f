package dto

import (
	"sort"
	"time"

	"github.com/triage-kit/support-engine/internal/domain"
)

// RegisterAgentRequest payload.
type RegisterAgentRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Specializations []string `json:"specializations"`
	Available       *bool    `json:"available,omitempty"`
}

// AgentResponse summary.
type AgentResponse struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Workload          int           `json:"workload"`
	Specializations   []string      `json:"specializations"`
	Available         bool          `json:"available"`
	ResolvedCount     int           `json:"resolved_count"`
	AvgResolutionTime time.Duration `json:"avg_resolution_time"`
}

// NewAgentResponse maps an agent snapshot.
func NewAgentResponse(a domain.Agent) AgentResponse {
	specializations := make([]string, 0, len(a.Specializations))
	for label := range a.Specializations {
		specializations = append(specializations, label)
	}
	sort.Strings(specializations)
	return AgentResponse{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		Workload:          a.Workload,
		Specializations:   specializations,
		Available:         a.Available,
		ResolvedCount:     a.ResolvedCount,
		AvgResolutionTime: a.AvgResolutionTime,
	}
}

// RegisterClientRequest payload.
type RegisterClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ClientResponse summary.
type ClientResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	OpenTicketIDs []string `json:"open_ticket_ids"`
}

// NewClientResponse maps a client.
func NewClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		OpenTicketIDs: append([]string(nil), c.OpenTicketIDs...),
	}
}

package api

import (
	"time"

	"github.com/omoi-os/omoios/pkg/models"
)

// SubmitTicketRequest is the HTTP request body for POST /api/v1/tickets.
type SubmitTicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PhaseID     string  `json:"phase_id"`
	Priority    string  `json:"priority,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	Estimate    *string `json:"estimate,omitempty"`
}

// UpdateTicketRequest is the HTTP request body for PATCH /api/v1/tickets/:id.
// Absent fields are left untouched.
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Estimate    *string `json:"estimate,omitempty"`
}

// SubmitTaskRequest is the HTTP request body for POST /api/v1/tasks.
type SubmitTaskRequest struct {
	TicketID             string               `json:"ticket_id"`
	PhaseID              string               `json:"phase_id,omitempty"`
	TaskType             string               `json:"task_type"`
	Description          string               `json:"description,omitempty"`
	Priority             string               `json:"priority,omitempty"`
	Deadline             *time.Time           `json:"deadline,omitempty"`
	DependsOn            []string             `json:"depends_on,omitempty"`
	RequiredCapabilities []string             `json:"required_capabilities,omitempty"`
	RequiredResources    []models.ResourceRef `json:"required_resources,omitempty"`
}

// RegisterAgentRequest is the HTTP request body for POST /api/v1/agents.
type RegisterAgentRequest struct {
	AgentType      string   `json:"agent_type"`
	PhaseID        *string  `json:"phase_id,omitempty"`
	Capabilities   []string `json:"capabilities,omitempty"`
	WorkspaceDir   *string  `json:"workspace_dir,omitempty"`
	PersistenceDir *string  `json:"persistence_dir,omitempty"`
}

// HeartbeatRequest is the HTTP request body for
// POST /api/v1/agents/:id/heartbeat.
type HeartbeatRequest struct {
	Metrics models.HealthMetrics `json:"health_metrics"`
}

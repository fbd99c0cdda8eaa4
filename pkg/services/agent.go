package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/models"
)

// HeartbeatSink receives heartbeat samples for health scoring; the
// monitor registry implements it.
type HeartbeatSink interface {
	ReportHeartbeat(agentID string, metrics models.HealthMetrics)
}

// AgentService owns agent registration and heartbeats.
type AgentService struct {
	client    *ent.Client
	publisher *events.Publisher
	sink      HeartbeatSink
}

// NewAgentService creates an AgentService. sink may be nil.
func NewAgentService(client *ent.Client, publisher *events.Publisher, sink HeartbeatSink) *AgentService {
	return &AgentService{client: client, publisher: publisher, sink: sink}
}

// RegisterAgentInput carries the register-agent operation's fields.
// PersistenceDir is where the agent's runtime persists conversation
// state; without it the conversation-resume delivery route is skipped.
type RegisterAgentInput struct {
	AgentType      string
	PhaseID        *string
	Capabilities   []string
	WorkspaceDir   *string
	PersistenceDir *string
}

// AgentFilters narrows List.
type AgentFilters struct {
	Status    string
	AgentType string
	PhaseID   string
}

// Register creates an idle agent and publishes agent.registered.
func (s *AgentService) Register(ctx context.Context, input RegisterAgentInput) (*ent.Agent, error) {
	if input.AgentType == "" {
		return nil, NewValidationError("agent_type", "agent_type is required")
	}

	create := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType(input.AgentType).
		SetLastIdleSince(time.Now())
	if input.PhaseID != nil {
		create.SetPhaseID(*input.PhaseID)
	}
	if len(input.Capabilities) > 0 {
		create.SetCapabilities(input.Capabilities)
	}
	if input.WorkspaceDir != nil {
		create.SetWorkspaceDir(*input.WorkspaceDir)
	}
	if input.PersistenceDir != nil {
		create.SetPersistenceDir(*input.PersistenceDir)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	s.publisher.MustPublish(ctx, events.EventAgentRegistered, events.EntityAgent, row.ID,
		map[string]interface{}{
			"agent_id":     row.ID,
			"agent_type":   row.AgentType,
			"capabilities": row.Capabilities,
		})
	return row, nil
}

// Heartbeat records a liveness sample. A degraded agent that heartbeats
// again is restored to idle unless it still owns in-flight work; the
// health metrics feed the anomaly path through the sink.
func (s *AgentService) Heartbeat(ctx context.Context, agentID string, metrics models.HealthMetrics) error {
	current, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}

	update := s.client.Agent.UpdateOneID(agentID).
		SetLastHeartbeat(time.Now())
	if current.Status == agent.StatusDegraded {
		inFlight, err := s.client.Task.Query().
			Where(
				task.AssignedAgentIDEQ(agentID),
				task.StatusIn(task.StatusAssigned, task.StatusRunning),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check open work: %w", err)
		}
		if inFlight {
			update.SetStatus(agent.StatusRunning)
		} else {
			update.SetStatus(agent.StatusIdle).SetLastIdleSince(time.Now())
		}
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}

	if s.sink != nil {
		s.sink.ReportHeartbeat(agentID, metrics)
	}
	return nil
}

// Get returns one agent.
func (s *AgentService) Get(ctx context.Context, agentID string) (*ent.Agent, error) {
	row, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return row, nil
}

// List returns agents, newest registration first.
func (s *AgentService) List(ctx context.Context, filters AgentFilters) ([]*ent.Agent, error) {
	query := s.client.Agent.Query()
	if filters.Status != "" {
		status := agent.Status(filters.Status)
		if err := agent.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query.Where(agent.StatusEQ(status))
	}
	if filters.AgentType != "" {
		query.Where(agent.AgentTypeEQ(filters.AgentType))
	}
	if filters.PhaseID != "" {
		query.Where(agent.PhaseIDEQ(filters.PhaseID))
	}
	rows, err := query.Order(ent.Desc(agent.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return rows, nil
}

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/models"
)

type recordingSink struct {
	mu      sync.Mutex
	samples map[string]int
}

func (r *recordingSink) ReportHeartbeat(agentID string, _ models.HealthMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.samples == nil {
		r.samples = make(map[string]int)
	}
	r.samples[agentID]++
}

func TestRegisterAgentPublishesEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.bus.Subscribe("test", events.EventAgentRegistered)

	phase := "implementation"
	row, err := f.agents.Register(ctx, RegisterAgentInput{
		AgentType:    "coder",
		PhaseID:      &phase,
		Capabilities: []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, row.Status)
	require.NotNil(t, row.LastIdleSince)

	select {
	case evt := <-sub.C():
		assert.Equal(t, row.ID, evt.EntityID)
		assert.Equal(t, "coder", evt.Payload["agent_type"])
	case <-time.After(time.Second):
		t.Fatal("expected agent.registered")
	}

	_, err = f.agents.Register(ctx, RegisterAgentInput{})
	assert.True(t, IsValidationError(err))
}

func TestRegisterAgentStoresDeliveryPaths(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	workspace := "/work/a"
	persistence := "/var/agents/a"
	row, err := f.agents.Register(ctx, RegisterAgentInput{
		AgentType:      "coder",
		WorkspaceDir:   &workspace,
		PersistenceDir: &persistence,
	})
	require.NoError(t, err)
	require.NotNil(t, row.WorkspaceDir)
	assert.Equal(t, workspace, *row.WorkspaceDir)
	require.NotNil(t, row.PersistenceDir)
	assert.Equal(t, persistence, *row.PersistenceDir)

	// Both optional.
	bare, err := f.agents.Register(ctx, RegisterAgentInput{AgentType: "coder"})
	require.NoError(t, err)
	assert.Nil(t, bare.PersistenceDir)
}

func TestHeartbeatUnknownAgent(t *testing.T) {
	f := newFixture(t)
	err := f.agents.Heartbeat(context.Background(), "missing", models.HealthMetrics{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestHeartbeatRestoresDegradedAgent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sink := &recordingSink{}
	agents := NewAgentService(f.client, f.publisher, sink)

	row, err := agents.Register(ctx, RegisterAgentInput{AgentType: "coder"})
	require.NoError(t, err)
	require.NoError(t, f.client.Agent.UpdateOneID(row.ID).SetStatus(agent.StatusDegraded).Exec(ctx))

	require.NoError(t, agents.Heartbeat(ctx, row.ID, models.HealthMetrics{}))

	got, err := f.client.Agent.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, got.Status)
	assert.NotNil(t, got.LastHeartbeat)
	assert.Equal(t, 1, sink.samples[row.ID])
}

func TestHeartbeatRestoresDegradedAgentWithOpenWorkToRunning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	row, err := f.agents.Register(ctx, RegisterAgentInput{AgentType: "coder"})
	require.NoError(t, err)
	tk := f.createTicket(t)
	_, err = f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("build").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(row.ID).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, f.client.Agent.UpdateOneID(row.ID).SetStatus(agent.StatusDegraded).Exec(ctx))

	require.NoError(t, f.agents.Heartbeat(ctx, row.ID, models.HealthMetrics{}))

	got, err := f.client.Agent.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusRunning, got.Status)
}

func TestListAgentsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phase := "design"
	_, err := f.agents.Register(ctx, RegisterAgentInput{AgentType: "coder", PhaseID: &phase})
	require.NoError(t, err)
	_, err = f.agents.Register(ctx, RegisterAgentInput{AgentType: "reviewer"})
	require.NoError(t, err)

	coders, err := f.agents.List(ctx, AgentFilters{AgentType: "coder"})
	require.NoError(t, err)
	assert.Len(t, coders, 1)

	idle, err := f.agents.List(ctx, AgentFilters{Status: "idle"})
	require.NoError(t, err)
	assert.Len(t, idle, 2)
}

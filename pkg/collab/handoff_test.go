package collab

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/services"
)

type handoffFixture struct {
	*collabFixture
	from *ent.Agent
	to   *ent.Agent
	task *ent.Task
}

func newHandoffFixture(t *testing.T) *handoffFixture {
	f := newCollabFixture(t)
	ctx := context.Background()

	from := f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusRunning) })
	to := f.createAgent(t, func(c *ent.AgentCreate) { c.SetLastIdleSince(time.Now()) })

	tk, err := f.client.Ticket.Create().SetID(uuid.New().String()).SetTitle("T").Save(ctx)
	require.NoError(t, err)
	tsk, err := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(from.ID).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	return &handoffFixture{collabFixture: f, from: from, to: to, task: tsk}
}

func TestHandoffAcceptReassignsTask(t *testing.T) {
	f := newHandoffFixture(t)
	ctx := context.Background()

	sub := f.evtBus.Subscribe("test", "agent.handoff.")

	thread, err := f.bus.RequestHandoff(ctx, f.from.ID, f.to.ID, f.task.ID, "wrong expertise",
		map[string]interface{}{"progress": "half done"})
	require.NoError(t, err)
	assert.Equal(t, collaborationthread.ThreadTypeHandoff, thread.ThreadType)
	assert.Equal(t, []string{f.from.ID, f.to.ID}, thread.Participants)

	require.NoError(t, f.bus.AcceptHandoff(ctx, thread.ID, f.to.ID))

	// Task moved, agent states swapped.
	tsk, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	require.NotNil(t, tsk.AssignedAgentID)
	assert.Equal(t, f.to.ID, *tsk.AssignedAgentID)
	assert.Equal(t, task.StatusRunning, tsk.Status)

	prev, err := f.client.Agent.Get(ctx, f.from.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, prev.Status)
	next, err := f.client.Agent.Get(ctx, f.to.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusRunning, next.Status)

	// Thread settled, both protocol events published.
	settled, err := f.client.CollaborationThread.Get(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, collaborationthread.StatusResolved, settled.Status)

	types := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		select {
		case evt := <-sub.C():
			types = append(types, evt.Type)
		case <-time.After(time.Second):
			t.Fatal("missing handoff event")
		}
	}
	assert.ElementsMatch(t, []string{events.EventHandoffRequested, events.EventHandoffAccepted}, types)

	// A settled handoff cannot be answered again.
	err = f.bus.AcceptHandoff(ctx, thread.ID, f.to.ID)
	assert.True(t, services.IsValidationError(err))
}

func TestHandoffDeclineLeavesTaskAlone(t *testing.T) {
	f := newHandoffFixture(t)
	ctx := context.Background()

	thread, err := f.bus.RequestHandoff(ctx, f.from.ID, f.to.ID, f.task.ID, "overloaded", nil)
	require.NoError(t, err)

	require.NoError(t, f.bus.DeclineHandoff(ctx, thread.ID, f.to.ID, "busy too"))

	tsk, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	require.NotNil(t, tsk.AssignedAgentID)
	assert.Equal(t, f.from.ID, *tsk.AssignedAgentID)

	settled, err := f.client.CollaborationThread.Get(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, collaborationthread.StatusResolved, settled.Status)

	msgs, err := f.bus.Messages(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, MessageHandoffRequest, msgs[0].MessageType)
	assert.Equal(t, MessageHandoffDeclined, msgs[1].MessageType)
}

func TestHandoffRequestValidatesOwnership(t *testing.T) {
	f := newHandoffFixture(t)
	ctx := context.Background()

	// The target agent does not own the task.
	_, err := f.bus.RequestHandoff(ctx, f.to.ID, f.from.ID, f.task.ID, "nope", nil)
	assert.True(t, services.IsValidationError(err))
}

func TestHandoffAcceptRejectsNonParticipant(t *testing.T) {
	f := newHandoffFixture(t)
	ctx := context.Background()

	stranger := f.createAgent(t, nil)
	thread, err := f.bus.RequestHandoff(ctx, f.from.ID, f.to.ID, f.task.ID, "reason", nil)
	require.NoError(t, err)

	err = f.bus.AcceptHandoff(ctx, thread.ID, stranger.ID)
	assert.True(t, services.IsValidationError(err))
	err = f.bus.AcceptHandoff(ctx, thread.ID, f.from.ID)
	assert.True(t, services.IsValidationError(err))
}

package collab

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/dispatch"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/services"
	"github.com/omoi-os/omoios/test/util"
)

type fakeSandbox struct {
	mu       sync.Mutex
	injected map[string][]string // sandbox_id -> texts
	failNext bool
}

func newFakeSandbox() *fakeSandbox {
	return &fakeSandbox{injected: make(map[string][]string)}
}

func (f *fakeSandbox) Spawn(context.Context, string, map[string]string) (string, error) {
	return "", errors.New("not implemented")
}
func (f *fakeSandbox) Exec(context.Context, string, string) (string, int, error) {
	return "", 0, errors.New("not implemented")
}
func (f *fakeSandbox) GetPreviewURL(context.Context, string, int) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeSandbox) InjectMessage(_ context.Context, sandboxID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return errors.New("sandbox unreachable")
	}
	f.injected[sandboxID] = append(f.injected[sandboxID], text)
	return nil
}

type fakeConversationRuntime struct {
	mu      sync.Mutex
	resumed map[string][]string // conversation_id -> texts
}

func newFakeConversationRuntime() *fakeConversationRuntime {
	return &fakeConversationRuntime{resumed: make(map[string][]string)}
}

func (f *fakeConversationRuntime) Start(context.Context, *ent.Task, *ent.Agent) (dispatch.Handle, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeConversationRuntime) InjectMessage(context.Context, dispatch.Handle, string) (bool, error) {
	return false, errors.New("not implemented")
}
func (f *fakeConversationRuntime) Cancel(context.Context, dispatch.Handle) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeConversationRuntime) ResumeConversation(_ context.Context, conversationID, _, text string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumed[conversationID] = append(f.resumed[conversationID], text)
	return true, nil
}

type collabFixture struct {
	client  *ent.Client
	bus     *Bus
	evtBus  *events.Bus
	sandbox *fakeSandbox
	runtime *fakeConversationRuntime
}

func newCollabFixture(t *testing.T) *collabFixture {
	client, _ := util.SetupTestDatabase(t)
	evtBus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(evtBus.Close)
	publisher := events.NewPublisher(client, evtBus)
	sandbox := newFakeSandbox()
	runtime := newFakeConversationRuntime()
	delivery := NewDelivery(client, sandbox, runtime, 30*time.Second)
	return &collabFixture{
		client:  client,
		bus:     NewBus(client, publisher, delivery),
		evtBus:  evtBus,
		sandbox: sandbox,
		runtime: runtime,
	}
}

func (f *collabFixture) createAgent(t *testing.T, mutate func(*ent.AgentCreate)) *ent.Agent {
	create := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("w")
	if mutate != nil {
		mutate(create)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestSendMessagePersistsAndPublishes(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)
	b := f.createAgent(t, nil)

	sub := f.evtBus.Subscribe("test", events.EventAgentMessageSent)

	thread, err := f.bus.CreateThread(ctx, collaborationthread.ThreadTypeReview, []string{a.ID, b.ID}, "", "")
	require.NoError(t, err)

	msg, err := f.bus.SendMessage(ctx, thread.ID, a.ID, &b.ID, "question", "does this look right?", nil)
	require.NoError(t, err)
	require.NotNil(t, msg.ToAgentID)
	assert.Equal(t, b.ID, *msg.ToAgentID)

	select {
	case evt := <-sub.C():
		assert.Equal(t, msg.ID, evt.EntityID)
		assert.Equal(t, a.ID, evt.Payload["from_agent_id"])
	case <-time.After(time.Second):
		t.Fatal("expected agent.message.sent event")
	}

	msgs, err := f.bus.Messages(ctx, thread.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSendMessageRejectsClosedThread(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)
	thread, err := f.bus.CreateThread(ctx, collaborationthread.ThreadTypeReview, []string{a.ID}, "", "")
	require.NoError(t, err)

	_, err = f.bus.CloseThread(ctx, thread.ID)
	require.NoError(t, err)

	_, err = f.bus.SendMessage(ctx, thread.ID, a.ID, nil, "note", "too late", nil)
	assert.True(t, services.IsValidationError(err))
}

func TestBroadcastDelivery(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	sender := f.createAgent(t, nil)
	// B: no live route at all.
	plain := f.createAgent(t, nil)
	// C: resumable conversation.
	conv := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetConversationID("conv-c").SetPersistenceDir("/var/agents/c")
	})
	// D: running task backed by a sandbox.
	sandboxed := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusRunning)
	})
	tk, err := f.client.Ticket.Create().SetID(uuid.New().String()).SetTitle("T").Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(sandboxed.ID).
		SetSandboxID("sbx-d").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	// Quarantined agents are not recipients.
	f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusQuarantined) })

	msg, err := f.bus.Broadcast(ctx, sender.ID, "hello", "info")
	require.NoError(t, err)

	// One message row, unaddressed, counting the three recipients.
	assert.Nil(t, msg.ToAgentID)
	assert.Equal(t, true, msg.Metadata["broadcast"])
	assert.EqualValues(t, 3, msg.Metadata["recipient_count"])

	thread, err := f.client.CollaborationThread.Get(ctx, msg.ThreadID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{sender.ID, plain.ID, conv.ID, sandboxed.ID}, thread.Participants)

	// D got a sandbox injection, C a conversation resume, B nothing.
	require.Len(t, f.sandbox.injected["sbx-d"], 1)
	assert.Contains(t, f.sandbox.injected["sbx-d"][0], "BROADCAST")
	assert.Contains(t, f.sandbox.injected["sbx-d"][0], "hello")
	require.Len(t, f.runtime.resumed["conv-c"], 1)

	// A second broadcast reuses the same thread.
	msg2, err := f.bus.Broadcast(ctx, sender.ID, "again", "info")
	require.NoError(t, err)
	assert.Equal(t, msg.ThreadID, msg2.ThreadID)
}

func TestDeliveryFailureDoesNotFailSend(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)
	b := f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusRunning) })
	tk, err := f.client.Ticket.Create().SetID(uuid.New().String()).SetTitle("T").Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(b.ID).
		SetSandboxID("sbx-b").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	f.sandbox.failNext = true

	thread, err := f.bus.CreateThread(ctx, collaborationthread.ThreadTypeConsultation, []string{a.ID, b.ID}, "", "")
	require.NoError(t, err)
	msg, err := f.bus.SendMessage(ctx, thread.ID, a.ID, &b.ID, "note", "still persisted", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}

func TestRegisteredAgentIsReachableByConversationResume(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)

	// Recipient comes in through the registration operation; the
	// dispatcher later records the conversation id when its session
	// starts.
	agents := services.NewAgentService(f.client, events.NewPublisher(f.client, f.evtBus), nil)
	persistence := "/var/agents/b"
	b, err := agents.Register(ctx, services.RegisterAgentInput{
		AgentType:      "w",
		PersistenceDir: &persistence,
	})
	require.NoError(t, err)
	_, err = f.client.Agent.UpdateOneID(b.ID).SetConversationID("conv-b").Save(ctx)
	require.NoError(t, err)

	thread, err := f.bus.CreateThread(ctx, collaborationthread.ThreadTypeConsultation, []string{a.ID, b.ID}, "", "")
	require.NoError(t, err)
	_, err = f.bus.SendMessage(ctx, thread.ID, a.ID, &b.ID, "note", "resume me", nil)
	require.NoError(t, err)

	require.Len(t, f.runtime.resumed["conv-b"], 1)
	assert.Contains(t, f.runtime.resumed["conv-b"][0], "resume me")
}

func TestDirectedDeliveryFormat(t *testing.T) {
	f := newCollabFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)
	b := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetConversationID("conv-b").SetPersistenceDir("/var/agents/b")
	})

	thread, err := f.bus.CreateThread(ctx, collaborationthread.ThreadTypeConsultation, []string{a.ID, b.ID}, "", "")
	require.NoError(t, err)
	_, err = f.bus.SendMessage(ctx, thread.ID, a.ID, &b.ID, "note", "ping", nil)
	require.NoError(t, err)

	require.Len(t, f.runtime.resumed["conv-b"], 1)
	text := f.runtime.resumed["conv-b"][0]
	assert.Contains(t, text, "[AGENT "+a.ID[:8])
	assert.Contains(t, text, "→ AGENT "+b.ID[:8])
	assert.Contains(t, text, "ping")
}

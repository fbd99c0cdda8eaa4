package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/models"
	"github.com/omoi-os/omoios/test/util"
)

type fakeHandle struct {
	conversationID string
	sandboxID      string
	events         chan RuntimeEvent
}

func (h *fakeHandle) ConversationID() string      { return h.conversationID }
func (h *fakeHandle) SandboxID() string           { return h.sandboxID }
func (h *fakeHandle) Events() <-chan RuntimeEvent { return h.events }

type fakeRuntime struct {
	mu        sync.Mutex
	handle    *fakeHandle
	injected  []string
	cancelled int
}

func (r *fakeRuntime) Start(_ context.Context, _ *ent.Task, _ *ent.Agent) (Handle, error) {
	return r.handle, nil
}

func (r *fakeRuntime) InjectMessage(_ context.Context, _ Handle, text string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.injected = append(r.injected, text)
	return true, nil
}

func (r *fakeRuntime) Cancel(_ context.Context, _ Handle) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled++
	return true, nil
}

func (r *fakeRuntime) ResumeConversation(_ context.Context, _, _, _ string) (bool, error) {
	return true, nil
}

func (r *fakeRuntime) cancelCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}

type transitionCall struct {
	kind   string
	taskID string
	detail string
	result map[string]interface{}
}

type fakeTransitions struct {
	calls chan transitionCall
}

func newFakeTransitions() *fakeTransitions {
	return &fakeTransitions{calls: make(chan transitionCall, 16)}
}

func (f *fakeTransitions) MarkRunning(_ context.Context, taskID, sandboxID string) error {
	f.calls <- transitionCall{kind: "running", taskID: taskID, detail: sandboxID}
	return nil
}

func (f *fakeTransitions) Complete(_ context.Context, taskID string, result map[string]interface{}) error {
	f.calls <- transitionCall{kind: "complete", taskID: taskID, result: result}
	return nil
}

func (f *fakeTransitions) Fail(_ context.Context, taskID, errMsg string) error {
	f.calls <- transitionCall{kind: "fail", taskID: taskID, detail: errMsg}
	return nil
}

func (f *fakeTransitions) HeartbeatTimeout(_ context.Context, taskID string) error {
	f.calls <- transitionCall{kind: "heartbeat_timeout", taskID: taskID}
	return nil
}

func (f *fakeTransitions) next(t *testing.T) transitionCall {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no transition call observed")
		return transitionCall{}
	}
}

type recordingSink struct {
	mu      sync.Mutex
	reports []models.HealthMetrics
}

func (s *recordingSink) ReportHeartbeat(_ string, metrics models.HealthMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, metrics)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

type dispatchFixture struct {
	manager     *Manager
	runtime     *fakeRuntime
	transitions *fakeTransitions
	sink        *recordingSink
	task        *ent.Task
	agent       *ent.Agent
}

func newDispatchFixture(t *testing.T, cfg config.DispatcherConfig) *dispatchFixture {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tk, err := client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTitle("T").
		Save(ctx)
	require.NoError(t, err)
	task, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		Save(ctx)
	require.NoError(t, err)
	agent, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("w").
		Save(ctx)
	require.NoError(t, err)

	runtime := &fakeRuntime{handle: &fakeHandle{
		conversationID: "conv-1",
		sandboxID:      "sbx-1",
		events:         make(chan RuntimeEvent, 16),
	}}
	transitions := newFakeTransitions()
	sink := &recordingSink{}
	manager := NewManager(client, runtime, transitions, sink, &cfg)
	t.Cleanup(manager.Stop)

	return &dispatchFixture{
		manager:     manager,
		runtime:     runtime,
		transitions: transitions,
		sink:        sink,
		task:        task,
		agent:       agent,
	}
}

func relaxedConfig() config.DispatcherConfig {
	return config.DispatcherConfig{
		DefaultTaskTimeout: time.Minute,
		HeartbeatInterval:  time.Minute,
		HeartbeatMissLimit: 3,
		CancelGracePeriod:  time.Second,
	}
}

func TestCompletionForwardedToOrchestrator(t *testing.T) {
	f := newDispatchFixture(t, relaxedConfig())
	ctx := context.Background()

	f.manager.Dispatch(ctx, f.task, f.agent)

	running := f.transitions.next(t)
	assert.Equal(t, "running", running.kind)
	assert.Equal(t, "sbx-1", running.detail)

	f.runtime.handle.events <- RuntimeEvent{
		Kind:   RuntimeCompletion,
		Result: map[string]interface{}{"ok": true},
	}

	done := f.transitions.next(t)
	assert.Equal(t, "complete", done.kind)
	assert.Equal(t, f.task.ID, done.taskID)
	assert.Equal(t, true, done.result["ok"])

	// The event stream is released once the session is over.
	require.Eventually(t, func() bool { return f.runtime.cancelCount() >= 1 },
		time.Second, 5*time.Millisecond)
}

func TestFailureForwardedToOrchestrator(t *testing.T) {
	f := newDispatchFixture(t, relaxedConfig())
	ctx := context.Background()

	f.manager.Dispatch(ctx, f.task, f.agent)
	_ = f.transitions.next(t) // running

	f.runtime.handle.events <- RuntimeEvent{Kind: RuntimeFailure, Error: "tool crashed"}

	fail := f.transitions.next(t)
	assert.Equal(t, "fail", fail.kind)
	assert.Equal(t, "tool crashed", fail.detail)

	require.Eventually(t, func() bool { return f.runtime.cancelCount() >= 1 },
		time.Second, 5*time.Millisecond)
}

func TestHeartbeatsFeedSinkAndResetWatchdog(t *testing.T) {
	cfg := relaxedConfig()
	cfg.HeartbeatInterval = 30 * time.Millisecond
	cfg.HeartbeatMissLimit = 2
	f := newDispatchFixture(t, cfg)
	ctx := context.Background()

	f.manager.Dispatch(ctx, f.task, f.agent)
	_ = f.transitions.next(t) // running

	// Heartbeats well inside the 60 ms budget keep the session alive.
	lat := 5.0
	for i := 0; i < 5; i++ {
		f.runtime.handle.events <- RuntimeEvent{
			Kind:    RuntimeHeartbeat,
			Metrics: models.HealthMetrics{LatencyMs: &lat},
		}
		time.Sleep(20 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, f.sink.count(), 5)

	// Then silence: the watchdog fires.
	timeout := f.transitions.next(t)
	assert.Equal(t, "heartbeat_timeout", timeout.kind)
	assert.Equal(t, f.task.ID, timeout.taskID)
}

func TestDeadlineCancelsThenFails(t *testing.T) {
	cfg := relaxedConfig()
	cfg.DefaultTaskTimeout = 30 * time.Millisecond
	cfg.CancelGracePeriod = 20 * time.Millisecond
	f := newDispatchFixture(t, cfg)
	ctx := context.Background()

	f.manager.Dispatch(ctx, f.task, f.agent)
	_ = f.transitions.next(t) // running

	fail := f.transitions.next(t)
	assert.Equal(t, "fail", fail.kind)
	assert.Equal(t, "task deadline exceeded", fail.detail)
	assert.GreaterOrEqual(t, f.runtime.cancelCount(), 1)
}

func TestInjectToAgentOnlyDuringSession(t *testing.T) {
	f := newDispatchFixture(t, relaxedConfig())
	ctx := context.Background()

	assert.False(t, f.manager.InjectToAgent(ctx, f.agent.ID, "hello"))

	f.manager.Dispatch(ctx, f.task, f.agent)
	_ = f.transitions.next(t) // running

	require.Eventually(t, func() bool { return f.manager.HasSession(f.agent.ID) },
		time.Second, 5*time.Millisecond)
	assert.True(t, f.manager.InjectToAgent(ctx, f.agent.ID, "hello"))

	f.runtime.handle.events <- RuntimeEvent{Kind: RuntimeCompletion}
	_ = f.transitions.next(t) // complete

	require.Eventually(t, func() bool { return !f.manager.HasSession(f.agent.ID) },
		time.Second, 5*time.Millisecond)
	assert.False(t, f.manager.InjectToAgent(ctx, f.agent.ID, "again"))
}

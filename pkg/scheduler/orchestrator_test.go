package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/event"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/ent/ticket"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/models"
	"github.com/omoi-os/omoios/test/util"
)

type orchestratorFixture struct {
	client  *ent.Client
	orch    *Orchestrator
	lockMgr *locks.Manager
	bus     *events.Bus
}

func newFixture(t *testing.T) *orchestratorFixture {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultConfig()
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(client, bus)
	lockMgr := locks.NewManager(client, publisher, cfg.Locks)
	orch := NewOrchestrator(client, publisher, lockMgr, NewScorer(cfg.Scheduler), nil, cfg.Scheduler)
	return &orchestratorFixture{client: client, orch: orch, lockMgr: lockMgr, bus: bus}
}

func (f *orchestratorFixture) createTicket(t *testing.T) *ent.Ticket {
	row, err := f.client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTitle("T").
		SetPhaseID("P").
		SetPriority(ticket.PriorityHigh).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

type taskOpts struct {
	phase     string
	priority  task.Priority
	caps      []string
	deps      []string
	resources []models.ResourceRef
	createdAt time.Time
}

func (f *orchestratorFixture) createTask(t *testing.T, tk *ent.Ticket, opts taskOpts) *ent.Task {
	create := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x")
	if opts.phase != "" {
		create.SetPhaseID(opts.phase)
	}
	if opts.priority != "" {
		create.SetPriority(opts.priority)
	}
	if opts.caps != nil {
		create.SetRequiredCapabilities(opts.caps)
	}
	if opts.deps != nil {
		create.SetDependsOn(opts.deps)
	}
	if opts.resources != nil {
		create.SetRequiredResources(opts.resources)
	}
	if !opts.createdAt.IsZero() {
		create.SetCreatedAt(opts.createdAt)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func (f *orchestratorFixture) createAgent(t *testing.T, phase string, caps []string) *ent.Agent {
	create := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("w").
		SetCapabilities(caps).
		SetLastIdleSince(time.Now())
	if phase != "" {
		create.SetPhaseID(phase)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func (f *orchestratorFixture) reloadTask(t *testing.T, id string) *ent.Task {
	row, err := f.client.Task.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

func (f *orchestratorFixture) reloadAgent(t *testing.T, id string) *ent.Agent {
	row, err := f.client.Agent.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

func (f *orchestratorFixture) countEvents(t *testing.T, eventType, entityID string) int {
	n, err := f.client.Event.Query().
		Where(
			event.EventTypeEQ(eventType),
			event.EntityIDEQ(entityID),
		).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestBasicAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{phase: "P", caps: []string{"x"}})
	ag := f.createAgent(t, "P", []string{"x"})

	require.NoError(t, f.orch.Tick(ctx))

	got := f.reloadTask(t, tsk.ID)
	assert.Equal(t, task.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, ag.ID, *got.AssignedAgentID)

	assert.Equal(t, agent.StatusRunning, f.reloadAgent(t, ag.ID).Status)
	assert.Equal(t, 1, f.countEvents(t, events.EventTaskAssigned, tsk.ID))
}

func TestNoAgentMatchLeavesTaskPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{phase: "P", caps: []string{"x"}})
	// Wrong phase, then missing capability.
	f.createAgent(t, "Q", []string{"x"})
	f.createAgent(t, "P", []string{"y"})

	require.NoError(t, f.orch.Tick(ctx))

	assert.Equal(t, task.StatusPending, f.reloadTask(t, tsk.ID).Status)
	assert.Equal(t, 0, f.countEvents(t, events.EventTaskAssigned, tsk.ID))
}

func TestLockConflictDefersSecondTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := []models.ResourceRef{{ResourceType: "file", ResourceID: "/a.txt"}}
	tk := f.createTicket(t)
	t1 := f.createTask(t, tk, taskOpts{resources: res})
	t2 := f.createTask(t, tk, taskOpts{resources: res})
	f.createAgent(t, "", nil)
	f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))

	first := f.reloadTask(t, t1.ID)
	second := f.reloadTask(t, t2.ID)
	statuses := []task.Status{first.Status, second.Status}
	assert.Contains(t, statuses, task.StatusAssigned)
	assert.Contains(t, statuses, task.StatusPending)

	winner, loser := first, second
	if second.Status == task.StatusAssigned {
		winner, loser = second, first
	}

	// Completing the winner releases the lock; the loser assigns next tick.
	require.NoError(t, f.orch.Complete(ctx, winner.ID, nil))
	require.NoError(t, f.orch.Tick(ctx))

	assert.Equal(t, task.StatusAssigned, f.reloadTask(t, loser.ID).Status)

	locked, err := f.lockMgr.IsLocked(ctx, "file", "/a.txt")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestDependencyGating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	t1 := f.createTask(t, tk, taskOpts{})
	t2 := f.createTask(t, tk, taskOpts{deps: []string{t1.ID}})
	f.createAgent(t, "", nil)

	// Tick 1: only T1 is ready.
	require.NoError(t, f.orch.Tick(ctx))
	assert.Equal(t, task.StatusAssigned, f.reloadTask(t, t1.ID).Status)
	assert.Equal(t, task.StatusPending, f.reloadTask(t, t2.ID).Status)

	// While T1 is in flight T2 stays gated even with a free agent around.
	f.createAgent(t, "", nil)
	require.NoError(t, f.orch.Tick(ctx))
	assert.Equal(t, task.StatusPending, f.reloadTask(t, t2.ID).Status)

	require.NoError(t, f.orch.Complete(ctx, t1.ID, map[string]interface{}{"ok": true}))
	require.NoError(t, f.orch.Tick(ctx))
	assert.Equal(t, task.StatusAssigned, f.reloadTask(t, t2.ID).Status)
}

func TestStarvedLowPriorityWinsOverFreshHigh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	starved := f.createTask(t, tk, taskOpts{
		priority:  task.PriorityLow,
		createdAt: time.Now().Add(-7201 * time.Second),
	})
	fresh := f.createTask(t, tk, taskOpts{priority: task.PriorityHigh})
	f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))

	assert.Equal(t, task.StatusAssigned, f.reloadTask(t, starved.ID).Status)
	assert.Equal(t, task.StatusPending, f.reloadTask(t, fresh.ID).Status)

	got := f.reloadTask(t, starved.ID)
	assert.Equal(t, 0.6, got.PriorityScore)
}

func TestCompleteFreesAgentAndLocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := []models.ResourceRef{{ResourceType: "file", ResourceID: "/b.txt"}}
	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{resources: res})
	ag := f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))
	require.NoError(t, f.orch.MarkRunning(ctx, tsk.ID, "sbx-1"))
	require.NoError(t, f.orch.Complete(ctx, tsk.ID, map[string]interface{}{"answer": 42}))

	got := f.reloadTask(t, tsk.ID)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, float64(42), got.Result["answer"])

	assert.Equal(t, agent.StatusIdle, f.reloadAgent(t, ag.ID).Status)

	locked, err := f.lockMgr.IsLocked(ctx, "file", "/b.txt")
	require.NoError(t, err)
	assert.False(t, locked)

	assert.Equal(t, 1, f.countEvents(t, events.EventTaskCompleted, tsk.ID))

	// Duplicate terminal report is a no-op.
	require.NoError(t, f.orch.Complete(ctx, tsk.ID, nil))
	assert.Equal(t, 1, f.countEvents(t, events.EventTaskCompleted, tsk.ID))
}

func TestFailRequeuesUntilRetryBudgetExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{})
	ag := f.createAgent(t, "", nil)

	// max_retries=3: two failures requeue, the third is final.
	for i := 1; i <= 3; i++ {
		require.NoError(t, f.orch.Tick(ctx))
		require.Equal(t, task.StatusAssigned, f.reloadTask(t, tsk.ID).Status, "attempt %d", i)
		require.NoError(t, f.orch.Fail(ctx, tsk.ID, "boom"))

		got := f.reloadTask(t, tsk.ID)
		assert.Equal(t, i, got.RetryCount)
		if i < 3 {
			assert.Equal(t, task.StatusPending, got.Status)
			assert.Nil(t, got.AssignedAgentID)
		} else {
			assert.Equal(t, task.StatusFailed, got.Status)
			assert.NotNil(t, got.CompletedAt)
		}
		assert.Equal(t, agent.StatusIdle, f.reloadAgent(t, ag.ID).Status)
	}

	assert.Equal(t, 3, f.countEvents(t, events.EventTaskFailed, tsk.ID))
}

func TestHeartbeatTimeoutIsFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{})
	f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))
	require.NoError(t, f.orch.HeartbeatTimeout(ctx, tsk.ID))

	got := f.reloadTask(t, tsk.ID)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, "heartbeat timeout", got.Result["error"])
}

func TestRecoverOrphansRequeuesInFlightWork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	tsk := f.createTask(t, tk, taskOpts{
		resources: []models.ResourceRef{{ResourceType: "file", ResourceID: "/c.txt"}},
	})
	ag := f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))
	require.NoError(t, f.orch.MarkRunning(ctx, tsk.ID, ""))

	// Simulate a restart with the task still in flight.
	require.NoError(t, f.orch.RecoverOrphans(ctx))

	got := f.reloadTask(t, tsk.ID)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Nil(t, got.AssignedAgentID)
	assert.Nil(t, got.StartedAt)

	assert.Equal(t, agent.StatusIdle, f.reloadAgent(t, ag.ID).Status)

	locked, err := f.lockMgr.IsLocked(ctx, "file", "/c.txt")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestEqualScoresGoToOldestTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.createTicket(t)
	older := f.createTask(t, tk, taskOpts{createdAt: time.Now().Add(-2 * time.Second)})
	newer := f.createTask(t, tk, taskOpts{})
	f.createAgent(t, "", nil)

	require.NoError(t, f.orch.Tick(ctx))

	assert.Equal(t, task.StatusAssigned, f.reloadTask(t, older.ID).Status)
	assert.Equal(t, task.StatusPending, f.reloadTask(t, newer.ID).Status)
}

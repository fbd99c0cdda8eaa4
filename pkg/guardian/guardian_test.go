package guardian

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/anomaly"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/models"
	"github.com/omoi-os/omoios/pkg/scheduler"
	"github.com/omoi-os/omoios/test/util"
)

type recordingResetter struct {
	mu     sync.Mutex
	forgot []string
}

func (r *recordingResetter) Forget(agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forgot = append(r.forgot, agentID)
}

type guardianFixture struct {
	client   *ent.Client
	bus      *events.Bus
	guardian *Guardian
	learner  *anomaly.BaselineLearner
	resetter *recordingResetter
	cfg      *config.Config
}

func newGuardianFixture(t *testing.T) *guardianFixture {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultConfig()
	cfg.Guardian.SweepInterval = 20 * time.Millisecond

	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(client, bus)
	lockMgr := locks.NewManager(client, publisher, cfg.Locks)
	orch := scheduler.NewOrchestrator(client, publisher, lockMgr, scheduler.NewScorer(cfg.Scheduler), nil, cfg.Scheduler)
	learner := anomaly.NewBaselineLearner(client, cfg.Anomaly)
	resetter := &recordingResetter{}

	return &guardianFixture{
		client:   client,
		bus:      bus,
		guardian: New(client, publisher, learner, orch, cfg.Guardian, resetter),
		learner:  learner,
		resetter: resetter,
		cfg:      cfg,
	}
}

func (f *guardianFixture) createAgent(t *testing.T, mutate func(*ent.AgentCreate)) *ent.Agent {
	create := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("worker")
	if mutate != nil {
		mutate(create)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func (f *guardianFixture) createRunningTask(t *testing.T, agentID string) *ent.Task {
	ctx := context.Background()
	tk, err := f.client.Ticket.Create().SetID(uuid.New().String()).SetTitle("T").Save(ctx)
	require.NoError(t, err)
	tsk, err := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("build").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(agentID).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	return tsk
}

func waitEvent(t *testing.T, sub *events.Subscription) events.Event {
	t.Helper()
	select {
	case evt := <-sub.C():
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

func TestQuarantineFailsRunningTaskAndRequeues(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusRunning) })
	tsk := f.createRunningTask(t, a.ID)

	quarantineSub := f.bus.Subscribe("test-q", events.EventAgentQuarantined)
	failSub := f.bus.Subscribe("test-f", events.EventTaskFailed)

	require.NoError(t, f.guardian.Quarantine(ctx, a.ID, 0.91))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusQuarantined, got.Status)
	require.NotNil(t, got.LastQuarantinedAt)

	// The task is failed back into the queue with one retry burned, and
	// the agent is not returned to the idle pool.
	reloaded, err := f.client.Task.Get(ctx, tsk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reloaded.Status)
	assert.Equal(t, 1, reloaded.RetryCount)
	assert.Nil(t, reloaded.AssignedAgentID)

	evt := waitEvent(t, quarantineSub)
	assert.Equal(t, a.ID, evt.EntityID)
	assert.Equal(t, tsk.ID, evt.Payload["task_id"])
	assert.InDelta(t, 0.91, evt.Payload["anomaly_score"].(float64), 1e-9)

	failEvt := waitEvent(t, failSub)
	assert.Equal(t, tsk.ID, failEvt.EntityID)
	assert.Equal(t, "agent quarantined", failEvt.Payload["error"])
	assert.Equal(t, true, failEvt.Payload["will_retry"])

	// Quarantining an already-quarantined agent is a no-op.
	require.NoError(t, f.guardian.Quarantine(ctx, a.ID, 0.95))
	count, err := f.client.Agent.Query().Where(agent.StatusEQ(agent.StatusQuarantined)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestQuarantineWithoutOpenTask(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, nil)
	require.NoError(t, f.guardian.Quarantine(ctx, a.ID, 0.85))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusQuarantined, got.Status)
}

func TestRepeatQuarantinePromotesDead(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	recently := time.Now().Add(-time.Minute)
	a := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusRunning).SetLastQuarantinedAt(recently)
	})

	deadSub := f.bus.Subscribe("test-dead", events.EventAgentDead)

	require.NoError(t, f.guardian.Quarantine(ctx, a.ID, 0.88))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusDead, got.Status)

	evt := waitEvent(t, deadSub)
	assert.Equal(t, a.ID, evt.EntityID)
}

func TestOldQuarantineDoesNotPromoteDead(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	longAgo := time.Now().Add(-f.cfg.Guardian.DeadPromotionWindow - time.Hour)
	a := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusRunning).SetLastQuarantinedAt(longAgo)
	})

	require.NoError(t, f.guardian.Quarantine(ctx, a.ID, 0.88))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusQuarantined, got.Status)
}

func TestResurrectionAfterCooldown(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	past := time.Now().Add(-f.cfg.Guardian.ResurrectionCooldown - time.Minute)
	a := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusQuarantined).
			SetLastQuarantinedAt(past).
			SetAnomalyScore(0.9).
			SetConsecutiveAnomalousReadings(3)
	})
	// A baseline to decay on resurrection.
	_, err := f.learner.Learn(ctx, a.AgentType, "", models.HealthMetrics{LatencyMs: fp(100)})
	require.NoError(t, err)

	sub := f.bus.Subscribe("test-res", events.EventAgentResurrected)

	require.NoError(t, f.guardian.ResurrectEligible(ctx))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, got.Status)
	assert.Equal(t, 0, got.ConsecutiveAnomalousReadings)
	assert.Zero(t, got.AnomalyScore)
	require.NotNil(t, got.LastIdleSince)

	baseline, err := f.learner.Get(ctx, a.AgentType, "")
	require.NoError(t, err)
	require.NotNil(t, baseline)
	assert.InDelta(t, 100*f.cfg.Anomaly.DecayFactor, baseline.LatencyMs, 1e-9)

	assert.Equal(t, []string{a.ID}, f.resetter.forgot)

	evt := waitEvent(t, sub)
	assert.Equal(t, a.ID, evt.EntityID)
}

func TestResurrectionRespectsCooldown(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	a := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusQuarantined).SetLastQuarantinedAt(time.Now())
	})

	require.NoError(t, f.guardian.ResurrectEligible(ctx))

	got, err := f.client.Agent.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusQuarantined, got.Status)
	assert.Empty(t, f.resetter.forgot)
}

func TestAnomalyEventTriggersQuarantine(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	flagged := f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusRunning) })
	spared := f.createAgent(t, func(c *ent.AgentCreate) { c.SetStatus(agent.StatusRunning) })

	f.guardian.Start(ctx)
	defer f.guardian.Stop()

	// Below-threshold readings are ignored; only should_quarantine acts.
	f.bus.Publish(events.Event{
		Type:     events.EventMonitorAgentAnomaly,
		EntityID: spared.ID,
		Payload:  map[string]any{"score": 0.92, "should_quarantine": false},
	})
	f.bus.Publish(events.Event{
		Type:     events.EventMonitorAgentAnomaly,
		EntityID: flagged.ID,
		Payload:  map[string]any{"score": 0.92, "should_quarantine": true},
	})

	require.Eventually(t, func() bool {
		got, err := f.client.Agent.Get(ctx, flagged.ID)
		return err == nil && got.Status == agent.StatusQuarantined
	}, 2*time.Second, 10*time.Millisecond)

	got, err := f.client.Agent.Get(ctx, spared.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusRunning, got.Status)
}

func TestSweepLoopResurrects(t *testing.T) {
	f := newGuardianFixture(t)
	ctx := context.Background()

	past := time.Now().Add(-f.cfg.Guardian.ResurrectionCooldown - time.Minute)
	a := f.createAgent(t, func(c *ent.AgentCreate) {
		c.SetStatus(agent.StatusQuarantined).SetLastQuarantinedAt(past)
	})

	f.guardian.Start(ctx)
	defer f.guardian.Stop()

	require.Eventually(t, func() bool {
		got, err := f.client.Agent.Get(ctx, a.ID)
		return err == nil && got.Status == agent.StatusIdle
	}, 2*time.Second, 10*time.Millisecond)
}

func fp(v float64) *float64 { return &v }

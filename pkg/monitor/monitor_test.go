package monitor

import (
	"context"
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
	"github.com/omoi-os/omoios/pkg/models"
	"github.com/omoi-os/omoios/test/util"
)

func fp(v float64) *float64 { return &v }

type monitorFixture struct {
	client   *ent.Client
	monitor  *Monitor
	registry *Registry
	bus      *events.Bus
}

func newMonitorFixture(t *testing.T) *monitorFixture {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultConfig()
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(client, bus)
	registry := NewRegistry()
	m := New(client, publisher,
		anomaly.NewBaselineLearner(client, cfg.Anomaly),
		anomaly.NewScorer(cfg.Anomaly),
		registry, nil, cfg.Monitor, cfg.Anomaly)
	return &monitorFixture{client: client, monitor: m, registry: registry, bus: bus}
}

func (f *monitorFixture) createAgent(t *testing.T, status agent.Status) *ent.Agent {
	row, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("worker").
		SetPhaseID("build").
		SetStatus(status).
		SetLastHeartbeat(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func (f *monitorFixture) seedBaseline(t *testing.T) {
	_, err := f.client.AgentBaseline.Create().
		SetID(uuid.New().String()).
		SetAgentType("worker").
		SetPhaseID("build").
		SetLatencyMs(100).
		SetLatencyStd(10).
		SetErrorRate(0.05).
		SetCPUUsagePercent(50).
		SetSampleCount(20).
		SetLastUpdated(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
}

func TestThreeAnomalousReadingsFlagQuarantine(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	f.seedBaseline(t)
	ag := f.createAgent(t, agent.StatusRunning)

	sub := f.bus.Subscribe("test", events.EventMonitorAgentAnomaly)

	// Latency 30 sigma out, error rate 10x baseline, CPU doubled.
	bad := models.HealthMetrics{LatencyMs: fp(400), ErrorRate: fp(0.5), CPUPercent: fp(100)}

	for reading := 1; reading <= 3; reading++ {
		f.registry.ReportHeartbeat(ag.ID, bad)
		require.NoError(t, f.monitor.Tick(ctx))

		got, err := f.client.Agent.Get(ctx, ag.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.AnomalyScore, 0.8, "reading %d", reading)
		assert.Equal(t, reading, got.ConsecutiveAnomalousReadings)

		select {
		case evt := <-sub.C():
			assert.Equal(t, ag.ID, evt.EntityID)
			assert.Equal(t, reading >= 3, evt.Payload["should_quarantine"], "reading %d", reading)
		case <-time.After(time.Second):
			t.Fatalf("missing anomaly event for reading %d", reading)
		}
	}

	// The anomalous samples must not have polluted the baseline.
	baseline, err := f.monitor.learner.Get(ctx, "worker", "build")
	require.NoError(t, err)
	require.NotNil(t, baseline)
	assert.InDelta(t, 100, baseline.LatencyMs, 1e-9)
}

func TestHealthyReadingResetsConsecutiveCount(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	f.seedBaseline(t)
	ag := f.createAgent(t, agent.StatusIdle)

	f.registry.ReportHeartbeat(ag.ID, models.HealthMetrics{LatencyMs: fp(400), ErrorRate: fp(0.5), CPUPercent: fp(100)})
	require.NoError(t, f.monitor.Tick(ctx))

	got, err := f.client.Agent.Get(ctx, ag.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.ConsecutiveAnomalousReadings)

	// Back to normal: the streak resets.
	f.registry.ReportHeartbeat(ag.ID, models.HealthMetrics{LatencyMs: fp(100), ErrorRate: fp(0.0), CPUPercent: fp(50)})
	require.NoError(t, f.monitor.Tick(ctx))

	got, err = f.client.Agent.Get(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ConsecutiveAnomalousReadings)
	assert.Less(t, got.AnomalyScore, 0.8)
}

func TestAgentWithoutBaselineScoresZero(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	ag := f.createAgent(t, agent.StatusIdle)
	f.registry.ReportHeartbeat(ag.ID, models.HealthMetrics{LatencyMs: fp(100000), CPUPercent: fp(100)})
	require.NoError(t, f.monitor.Tick(ctx))

	got, err := f.client.Agent.Get(ctx, ag.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AnomalyScore)
	assert.Zero(t, got.ConsecutiveAnomalousReadings)
}

func TestStaleHeartbeatDegradesAgent(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	stale, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("worker").
		SetStatus(agent.StatusIdle).
		SetLastHeartbeat(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	fresh := f.createAgent(t, agent.StatusIdle)
	// Never heartbeated: left alone.
	silent, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetAgentType("worker").
		SetStatus(agent.StatusIdle).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.monitor.Tick(ctx))

	for id, want := range map[string]agent.Status{
		stale.ID:  agent.StatusDegraded,
		fresh.ID:  agent.StatusIdle,
		silent.ID: agent.StatusIdle,
	} {
		got, err := f.client.Agent.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
}

func TestBlockingCountsWeightCriticalDouble(t *testing.T) {
	f := newMonitorFixture(t)
	ctx := context.Background()

	ag := f.createAgent(t, agent.StatusRunning)

	tk, err := f.client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTitle("T").
		Save(ctx)
	require.NoError(t, err)

	inflight, err := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID(ag.ID).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetDependsOn([]string{inflight.ID}).
		Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Task.Create().
		SetID(uuid.New().String()).
		SetTicketID(tk.ID).
		SetTaskType("x").
		SetPriority(task.PriorityCritical).
		SetDependsOn([]string{inflight.ID, inflight.ID}).
		Save(ctx)
	require.NoError(t, err)

	counts, err := f.monitor.blockingCounts(ctx)
	require.NoError(t, err)
	// One normal dependent (1) plus one critical dependent (2), the
	// duplicated dep entry counted once.
	assert.InDelta(t, 3.0, counts[ag.ID], 1e-9)
}

func TestRegistryOutcomeRatioResetsOnRead(t *testing.T) {
	r := NewRegistry()

	r.ReportOutcome("a", true)
	r.ReportOutcome("a", true)
	r.ReportOutcome("a", false)
	r.ReportOutcome("a", false)

	_, _, ratio := r.Snapshot("a")
	assert.InDelta(t, 0.5, ratio, 1e-9)

	// Counters drain on read.
	_, _, ratio = r.Snapshot("a")
	assert.Zero(t, ratio)
}

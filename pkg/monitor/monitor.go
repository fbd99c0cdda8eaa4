package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/anomaly"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
)

// Monitor collects platform metrics on a fixed cadence, detects
// statistical deviations against rolling windows, and scores every
// active agent's behavior against its learned baseline.
type Monitor struct {
	client     *ent.Client
	publisher  *events.Publisher
	learner    *anomaly.BaselineLearner
	scorer     *anomaly.Scorer
	registry   *Registry
	windows    *Windows
	metrics    *Metrics
	cfg        *config.MonitorConfig
	anomalyCfg *config.AnomalyConfig

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New wires a monitor. metrics may be nil when Prometheus export is not
// wanted (tests).
func New(client *ent.Client, publisher *events.Publisher, learner *anomaly.BaselineLearner, scorer *anomaly.Scorer, registry *Registry, metrics *Metrics, cfg *config.MonitorConfig, anomalyCfg *config.AnomalyConfig) *Monitor {
	return &Monitor{
		client:     client,
		publisher:  publisher,
		learner:    learner,
		scorer:     scorer,
		registry:   registry,
		windows:    NewWindows(cfg.HistoryCap, cfg.MinSamples, cfg.Sensitivity),
		metrics:    metrics,
		cfg:        cfg,
		anomalyCfg: anomalyCfg,
	}
}

// Start launches the collection loop and the task-outcome consumer.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{}, 2)
	m.running = true

	sub := m.publisher.Bus().Subscribe("monitor-outcomes", "TASK_")
	go m.consumeOutcomes(runCtx, sub)
	go m.run(runCtx)
	slog.Info("Monitor started", "tick_interval", m.cfg.TickInterval)
}

// Stop terminates both goroutines and waits for them.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel, done := m.cancel, m.done
	m.running = false
	m.mu.Unlock()

	cancel()
	m.publisher.Bus().Unsubscribe("monitor-outcomes")
	<-done
	<-done
	slog.Info("Monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer func() { m.done <- struct{}{} }()

	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Tick(ctx); err != nil {
				slog.Error("Monitor tick failed", "error", err)
			}
		}
	}
}

// consumeOutcomes feeds terminal task results into the registry so the
// next tick can compute per-agent failure ratios.
func (m *Monitor) consumeOutcomes(ctx context.Context, sub *events.Subscription) {
	defer func() { m.done <- struct{}{} }()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-sub.C():
			if !ok {
				return
			}
			agentID, _ := evt.Payload["agent_id"].(string)
			switch evt.Type {
			case events.EventTaskCompleted:
				m.registry.ReportOutcome(agentID, false)
			case events.EventTaskFailed:
				m.registry.ReportOutcome(agentID, true)
			}
		}
	}
}

// Tick runs one full collection pass.
func (m *Monitor) Tick(ctx context.Context) error {
	if err := m.collectTaskMetrics(ctx); err != nil {
		return err
	}
	if err := m.collectAgentMetrics(ctx); err != nil {
		return err
	}
	if err := m.collectLockMetrics(ctx); err != nil {
		return err
	}
	return m.scoreAgents(ctx)
}

func (m *Monitor) collectTaskMetrics(ctx context.Context) error {
	var byStatus []struct {
		Status task.Status `json:"status"`
		Count  int         `json:"count"`
	}
	if err := m.client.Task.Query().
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &byStatus); err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	for _, row := range byStatus {
		m.observe(ctx, "task_count", map[string]string{"status": string(row.Status)}, float64(row.Count))
		if m.metrics != nil {
			m.metrics.TasksByStatus.WithLabelValues(string(row.Status)).Set(float64(row.Count))
		}
	}

	// Average duration of tasks completed in the trailing window.
	completed, err := m.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusCompleted),
			task.CompletedAtGTE(time.Now().Add(-m.cfg.TaskDurationWindow)),
			task.StartedAtNotNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load completed tasks: %w", err)
	}
	if len(completed) > 0 {
		var total time.Duration
		for _, t := range completed {
			total += t.CompletedAt.Sub(*t.StartedAt)
		}
		avg := total.Seconds() / float64(len(completed))
		m.observe(ctx, "task_duration_avg_seconds", nil, avg)
		if m.metrics != nil {
			m.metrics.AvgTaskDuration.Set(avg)
		}
	}
	return nil
}

func (m *Monitor) collectAgentMetrics(ctx context.Context) error {
	var byStatus []struct {
		Status agent.Status `json:"status"`
		Count  int          `json:"count"`
	}
	if err := m.client.Agent.Query().
		GroupBy(agent.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &byStatus); err != nil {
		return fmt.Errorf("failed to count agents: %w", err)
	}
	for _, row := range byStatus {
		m.observe(ctx, "agent_count", map[string]string{"status": string(row.Status)}, float64(row.Count))
		if m.metrics != nil {
			m.metrics.AgentsByStatus.WithLabelValues(string(row.Status)).Set(float64(row.Count))
		}
	}

	return m.markStaleAgents(ctx)
}

// markStaleAgents degrades idle/running agents whose heartbeat has gone
// stale. The heartbeat handler promotes them back once they report in.
func (m *Monitor) markStaleAgents(ctx context.Context) error {
	if m.cfg.HeartbeatStaleAfter <= 0 {
		return nil
	}
	cutoff := time.Now().Add(-m.cfg.HeartbeatStaleAfter)
	stale, err := m.client.Agent.Update().
		Where(
			agent.StatusIn(agent.StatusIdle, agent.StatusRunning),
			agent.LastHeartbeatNotNil(),
			agent.LastHeartbeatLT(cutoff),
		).
		SetStatus(agent.StatusDegraded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to degrade stale agents: %w", err)
	}
	if stale > 0 {
		slog.Warn("Degraded agents with stale heartbeats", "count", stale)
	}
	return nil
}

func (m *Monitor) collectLockMetrics(ctx context.Context) error {
	var rows []struct {
		ResourceType string                `json:"resource_type"`
		LockMode     resourcelock.LockMode `json:"lock_mode"`
		Count        int                   `json:"count"`
	}
	if err := m.client.ResourceLock.Query().
		Where(resourcelock.ReleasedAtIsNil()).
		GroupBy(resourcelock.FieldResourceType, resourcelock.FieldLockMode).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return fmt.Errorf("failed to count locks: %w", err)
	}
	for _, row := range rows {
		labels := map[string]string{"resource_type": row.ResourceType, "mode": string(row.LockMode)}
		m.observe(ctx, "active_locks", labels, float64(row.Count))
		if m.metrics != nil {
			m.metrics.ActiveLocks.WithLabelValues(row.ResourceType, string(row.LockMode)).Set(float64(row.Count))
		}
	}
	return nil
}

// observe pushes a sample into its rolling window and handles any
// resulting deviation: persist the anomaly row, then publish.
func (m *Monitor) observe(ctx context.Context, metric string, labels map[string]string, value float64) {
	dev := m.windows.Observe(metric, labels, value)
	if dev == nil {
		return
	}

	row, err := m.client.MonitorAnomaly.Create().
		SetID(uuid.New().String()).
		SetMetricName(dev.MetricName).
		SetAnomalyType(dev.AnomalyType).
		SetSeverity(dev.Severity).
		SetBaselineValue(dev.BaselineValue).
		SetObservedValue(dev.ObservedValue).
		SetDeviationPercent(dev.DeviationPercent).
		SetLabels(dev.Labels).
		SetDetectedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to persist anomaly", "metric", dev.MetricName, "error", err)
		return
	}

	if m.metrics != nil {
		m.metrics.AnomaliesTotal.WithLabelValues(string(dev.Severity)).Inc()
	}
	m.publisher.MustPublish(ctx, events.EventMonitorAnomalyDetected, events.EntityMetric, row.ID,
		events.MetricAnomalyPayload{
			AnomalyID:        row.ID,
			MetricName:       dev.MetricName,
			AnomalyType:      string(dev.AnomalyType),
			Severity:         string(dev.Severity),
			BaselineValue:    dev.BaselineValue,
			ObservedValue:    dev.ObservedValue,
			DeviationPercent: dev.DeviationPercent,
			Labels:           dev.Labels,
		})
}

// scoreAgents computes the composite anomaly score for every active
// agent, persists it, and emits monitor.agent.anomaly at or above the
// threshold.
func (m *Monitor) scoreAgents(ctx context.Context) error {
	active, err := m.client.Agent.Query().
		Where(agent.StatusIn(agent.StatusIdle, agent.StatusRunning, agent.StatusDegraded)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active agents: %w", err)
	}
	if len(active) == 0 {
		return nil
	}

	blocking, err := m.blockingCounts(ctx)
	if err != nil {
		return err
	}

	for _, a := range active {
		if err := m.scoreAgent(ctx, a, blocking[a.ID]); err != nil {
			slog.Error("Failed to score agent", "agent_id", a.ID, "error", err)
		}
	}
	return nil
}

func (m *Monitor) scoreAgent(ctx context.Context, a *ent.Agent, blockingCount float64) error {
	metrics, fresh, failureRatio := m.registry.Snapshot(a.ID)
	// A self-reported error rate takes precedence over the ratio derived
	// from observed task outcomes.
	if metrics.ErrorRate != nil {
		failureRatio = *metrics.ErrorRate
	}

	phase := ""
	if a.PhaseID != nil {
		phase = *a.PhaseID
	}
	baseline, err := m.learner.Get(ctx, a.AgentType, phase)
	if err != nil {
		return err
	}

	b := m.scorer.Score(anomaly.Sample{
		AgentID:       a.ID,
		Metrics:       metrics,
		Baseline:      baseline,
		FailureRatio:  failureRatio,
		BlockingCount: blockingCount,
	})

	// Anomalous samples are kept out of the baseline so a misbehaving
	// agent cannot drag its own reference toward the misbehavior.
	if fresh && b.Composite < m.anomalyCfg.Threshold {
		if _, err := m.learner.Learn(ctx, a.AgentType, phase, metrics); err != nil {
			return err
		}
	}

	readings := 0
	if b.Composite >= m.anomalyCfg.Threshold {
		readings = a.ConsecutiveAnomalousReadings + 1
	}
	if err := m.client.Agent.UpdateOneID(a.ID).
		SetAnomalyScore(b.Composite).
		SetConsecutiveAnomalousReadings(readings).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist agent score: %w", err)
	}

	if m.metrics != nil {
		m.metrics.AgentScores.WithLabelValues(a.ID).Set(b.Composite)
	}

	if b.Composite < m.anomalyCfg.Threshold {
		return nil
	}

	shouldQuarantine := readings >= m.anomalyCfg.QuarantineReadings
	if shouldQuarantine && m.metrics != nil {
		m.metrics.QuarantinesTotal.Inc()
	}
	slog.Warn("Agent anomaly detected",
		"agent_id", a.ID, "score", b.Composite,
		"consecutive_readings", readings, "should_quarantine", shouldQuarantine)

	m.publisher.MustPublish(ctx, events.EventMonitorAgentAnomaly, events.EntityAgent, a.ID,
		events.AgentAnomalyPayload{
			AgentID:             a.ID,
			Score:               b.Composite,
			ConsecutiveReadings: readings,
			ShouldQuarantine:    shouldQuarantine,
		})
	return nil
}

// blockingCounts computes, per agent, the weighted number of distinct
// pending tasks gated behind that agent's in-flight work. Critical
// dependents count double.
func (m *Monitor) blockingCounts(ctx context.Context) (map[string]float64, error) {
	inflight, err := m.client.Task.Query().
		Where(
			task.StatusIn(task.StatusAssigned, task.StatusRunning),
			task.AssignedAgentIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load in-flight tasks: %w", err)
	}
	if len(inflight) == 0 {
		return nil, nil
	}
	taskOwner := make(map[string]string, len(inflight))
	for _, t := range inflight {
		taskOwner[t.ID] = *t.AssignedAgentID
	}

	pending, err := m.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending tasks: %w", err)
	}

	out := make(map[string]float64)
	for _, p := range pending {
		weight := 1.0
		if p.Priority == task.PriorityCritical {
			weight = 2.0
		}
		// Count each pending task at most once per blocking agent.
		counted := make(map[string]bool)
		for _, dep := range p.DependsOn {
			owner, ok := taskOwner[dep]
			if !ok || counted[owner] {
				continue
			}
			counted[owner] = true
			out[owner] += weight
		}
	}
	return out, nil
}

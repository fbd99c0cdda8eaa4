// Package guardian reacts to agent anomaly events: it quarantines
// misbehaving agents, fails their in-flight work back into the queue,
// resurrects them after a cooldown, and promotes repeat offenders to
// dead.
package guardian

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/anomaly"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
)

// TaskFailer is the orchestrator entry point the guardian routes a
// quarantined agent's open task through.
type TaskFailer interface {
	Fail(ctx context.Context, taskID, errMsg string) error
}

// ScoreResetter drops an agent's in-memory scoring state on
// resurrection.
type ScoreResetter interface {
	Forget(agentID string)
}

// Guardian subscribes to monitor.agent.anomaly and applies quarantine
// policy. A periodic sweep resurrects agents whose cooldown has lapsed.
type Guardian struct {
	client    *ent.Client
	publisher *events.Publisher
	learner   *anomaly.BaselineLearner
	failer    TaskFailer
	resetters []ScoreResetter
	cfg       *config.GuardianConfig

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New wires a guardian. resetters receive Forget on resurrection; pass
// the anomaly scorer and the monitor registry.
func New(client *ent.Client, publisher *events.Publisher, learner *anomaly.BaselineLearner, failer TaskFailer, cfg *config.GuardianConfig, resetters ...ScoreResetter) *Guardian {
	return &Guardian{
		client:    client,
		publisher: publisher,
		learner:   learner,
		failer:    failer,
		resetters: resetters,
		cfg:       cfg,
	}
}

// Start subscribes to anomaly events and launches the resurrection
// sweep.
func (g *Guardian) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.done = make(chan struct{}, 2)
	g.running = true

	sub := g.publisher.Bus().Subscribe("guardian", events.EventMonitorAgentAnomaly)
	go g.consume(runCtx, sub)
	go g.sweepLoop(runCtx)
	slog.Info("Guardian started",
		"resurrection_cooldown", g.cfg.ResurrectionCooldown,
		"dead_promotion_window", g.cfg.DeadPromotionWindow)
}

// Stop terminates both goroutines and waits for them.
func (g *Guardian) Stop() {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return
	}
	cancel, done := g.cancel, g.done
	g.running = false
	g.mu.Unlock()

	cancel()
	g.publisher.Bus().Unsubscribe("guardian")
	<-done
	<-done
	slog.Info("Guardian stopped")
}

func (g *Guardian) consume(ctx context.Context, sub *events.Subscription) {
	defer func() { g.done <- struct{}{} }()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-sub.C():
			if !ok {
				return
			}
			shouldQuarantine, _ := evt.Payload["should_quarantine"].(bool)
			if !shouldQuarantine {
				continue
			}
			score, _ := evt.Payload["score"].(float64)
			if err := g.Quarantine(ctx, evt.EntityID, score); err != nil {
				slog.Error("Quarantine failed", "agent_id", evt.EntityID, "error", err)
			}
		}
	}
}

func (g *Guardian) sweepLoop(ctx context.Context) {
	defer func() { g.done <- struct{}{} }()

	ticker := time.NewTicker(g.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := g.ResurrectEligible(ctx); err != nil {
				slog.Error("Resurrection sweep failed", "error", err)
			}
		}
	}
}

// Quarantine takes an agent out of rotation. A repeat quarantine inside
// the dead-promotion window marks the agent dead instead; replacement
// provisioning is an external concern reacting to agent.dead.
func (g *Guardian) Quarantine(ctx context.Context, agentID string, score float64) error {
	now := time.Now()

	tx, err := g.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := tx.Agent.Query().
		Where(agent.IDEQ(agentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load agent: %w", err)
	}
	switch a.Status {
	case agent.StatusIdle, agent.StatusRunning, agent.StatusDegraded:
	default:
		// Already quarantined or dead.
		return nil
	}

	promoteDead := a.LastQuarantinedAt != nil && now.Sub(*a.LastQuarantinedAt) < g.cfg.DeadPromotionWindow

	newStatus := agent.StatusQuarantined
	eventType := events.EventAgentQuarantined
	if promoteDead {
		newStatus = agent.StatusDead
		eventType = events.EventAgentDead
	}

	if err := tx.Agent.UpdateOneID(agentID).
		SetStatus(newStatus).
		SetLastQuarantinedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update agent status: %w", err)
	}

	openTaskID, err := g.openTask(ctx, tx, agentID)
	if err != nil {
		return err
	}

	emit, err := g.publisher.PublishTx(ctx, tx, eventType, events.EntityAgent, agentID,
		events.AgentQuarantinedPayload{
			AgentID:      agentID,
			AnomalyScore: score,
			TaskID:       openTaskID,
		})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quarantine: %w", err)
	}
	emit()

	slog.Warn("Agent quarantined",
		"agent_id", agentID, "score", score, "promoted_dead", promoteDead)

	// The agent is out of rotation now, so the failure path will not
	// return it to the idle pool; the retry budget requeues the task.
	if openTaskID != "" {
		if err := g.failer.Fail(ctx, openTaskID, "agent quarantined"); err != nil {
			return fmt.Errorf("failed to fail open task %s: %w", openTaskID, err)
		}
	}
	return nil
}

func (g *Guardian) openTask(ctx context.Context, tx *ent.Tx, agentID string) (string, error) {
	open, err := tx.Task.Query().
		Where(
			task.AssignedAgentIDEQ(agentID),
			task.StatusIn(task.StatusAssigned, task.StatusRunning),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find open task: %w", err)
	}
	return open.ID, nil
}

// ResurrectEligible returns every quarantined agent whose cooldown has
// lapsed to the idle pool, decaying its baseline so the restarted agent
// is not judged against pre-restart behavior at full weight.
func (g *Guardian) ResurrectEligible(ctx context.Context) error {
	cutoff := time.Now().Add(-g.cfg.ResurrectionCooldown)
	eligible, err := g.client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusQuarantined),
			agent.LastQuarantinedAtNotNil(),
			agent.LastQuarantinedAtLTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load quarantined agents: %w", err)
	}

	for _, a := range eligible {
		if err := g.resurrect(ctx, a); err != nil {
			slog.Error("Resurrection failed", "agent_id", a.ID, "error", err)
		}
	}
	return nil
}

func (g *Guardian) resurrect(ctx context.Context, a *ent.Agent) error {
	phase := ""
	if a.PhaseID != nil {
		phase = *a.PhaseID
	}
	if err := g.learner.Decay(ctx, a.AgentType, phase); err != nil {
		return err
	}

	n, err := g.client.Agent.Update().
		Where(
			agent.IDEQ(a.ID),
			agent.StatusEQ(agent.StatusQuarantined),
		).
		SetStatus(agent.StatusIdle).
		SetConsecutiveAnomalousReadings(0).
		SetAnomalyScore(0).
		SetLastIdleSince(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resurrect agent: %w", err)
	}
	if n == 0 {
		return nil
	}

	for _, r := range g.resetters {
		r.Forget(a.ID)
	}

	slog.Info("Agent resurrected", "agent_id", a.ID)
	g.publisher.MustPublish(ctx, events.EventAgentResurrected, events.EntityAgent, a.ID,
		map[string]interface{}{"agent_id": a.ID})
	return nil
}

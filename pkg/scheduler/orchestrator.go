package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/models"
)

// Dispatcher starts a runtime session for an assigned (task, agent)
// pairing. The orchestrator calls it after the assignment commits.
type Dispatcher interface {
	Dispatch(ctx context.Context, task *ent.Task, agent *ent.Agent)
}

// Orchestrator runs the assignment loop. A single instance owns all
// pending→assigned transitions and all terminal transitions; dispatchers
// funnel their results back through Complete/Fail/HeartbeatTimeout so
// one owner applies every final state change.
type Orchestrator struct {
	client     *ent.Client
	publisher  *events.Publisher
	lockMgr    *locks.Manager
	scorer     *Scorer
	dispatcher Dispatcher
	cfg        *config.SchedulerConfig

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	running  bool
	lastTick time.Time
}

// NewOrchestrator wires the orchestrator. dispatcher may be nil, in
// which case assignments commit but no runtime is started (used by
// tests driving ticks by hand).
func NewOrchestrator(client *ent.Client, publisher *events.Publisher, lockMgr *locks.Manager, scorer *Scorer, dispatcher Dispatcher, cfg *config.SchedulerConfig) *Orchestrator {
	return &Orchestrator{
		client:     client,
		publisher:  publisher,
		lockMgr:    lockMgr,
		scorer:     scorer,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// SetDispatcher installs the dispatch hook. Must be called before
// Start; the dispatcher itself needs the orchestrator as its
// transitions sink, so the two are wired in this order.
func (o *Orchestrator) SetDispatcher(d Dispatcher) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dispatcher = d
}

// Start recovers orphaned work and launches the tick loop.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return nil
	}

	if err := o.RecoverOrphans(ctx); err != nil {
		return fmt.Errorf("orphan recovery failed: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.done = make(chan struct{})
	o.running = true

	go o.run(runCtx)
	slog.Info("Orchestrator started", "tick_interval", o.cfg.TickInterval)
	return nil
}

// Stop halts the tick loop. The loop is never interrupted mid-tick; the
// shutdown flag is checked between ticks.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if !o.running {
		o.mu.Unlock()
		return
	}
	cancel, done := o.cancel, o.done
	o.running = false
	o.mu.Unlock()

	cancel()
	<-done
	slog.Info("Orchestrator stopped")
}

func (o *Orchestrator) run(ctx context.Context) {
	defer close(o.done)

	ticker := time.NewTicker(o.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := o.Tick(ctx); err != nil {
				slog.Error("Orchestrator tick failed", "error", err)
			}
		}
	}
}

// Tick runs one assignment pass: refresh scores, compute the ready set,
// and greedily match tasks to idle agents in score order.
func (o *Orchestrator) Tick(ctx context.Context) error {
	now := time.Now()

	pending, err := o.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending tasks: %w", err)
	}
	if len(pending) == 0 {
		o.setLastTick(now)
		return nil
	}

	if err := o.refreshScores(ctx, pending, now); err != nil {
		return err
	}

	ready, err := o.readySet(ctx, pending)
	if err != nil {
		return err
	}
	if len(ready) == 0 {
		o.setLastTick(now)
		return nil
	}

	// Strict score order; equal scores go to the oldest task.
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].PriorityScore != ready[j].PriorityScore {
			return ready[i].PriorityScore > ready[j].PriorityScore
		}
		return ready[i].CreatedAt.Before(ready[j].CreatedAt)
	})

	idle, err := o.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusIdle)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load idle agents: %w", err)
	}

	for _, t := range ready {
		if len(idle) == 0 {
			break
		}
		candidate := pickAgent(t, idle)
		if candidate == nil {
			continue
		}
		assigned, err := o.assign(ctx, t, candidate)
		if err != nil {
			slog.Error("Assignment failed", "task_id", t.ID, "agent_id", candidate.ID, "error", err)
			continue
		}
		if !assigned {
			// Lock conflict or lost race; reschedule next tick.
			continue
		}
		idle = slices.DeleteFunc(idle, func(a *ent.Agent) bool { return a.ID == candidate.ID })
	}

	o.setLastTick(now)
	return nil
}

// refreshScores recomputes priority scores for the top-K candidates by
// stored score plus any task touched since the last tick.
func (o *Orchestrator) refreshScores(ctx context.Context, pending []*ent.Task, now time.Time) error {
	o.mu.Lock()
	since := o.lastTick
	o.mu.Unlock()

	byScore := make([]*ent.Task, len(pending))
	copy(byScore, pending)
	sort.Slice(byScore, func(i, j int) bool { return byScore[i].PriorityScore > byScore[j].PriorityScore })

	refresh := make(map[string]*ent.Task)
	for i, t := range byScore {
		if i >= o.cfg.TopK {
			break
		}
		refresh[t.ID] = t
	}
	for _, t := range pending {
		if t.UpdatedAt.After(since) {
			refresh[t.ID] = t
		}
	}

	dependents := countDependents(pending)

	for _, t := range refresh {
		score := o.scorer.Score(ScoreInput{
			Priority:   t.Priority,
			CreatedAt:  t.CreatedAt,
			Deadline:   t.Deadline,
			Dependents: dependents[t.ID],
			RetryCount: t.RetryCount,
		}, now)
		if score == t.PriorityScore {
			continue
		}
		if err := o.client.Task.UpdateOneID(t.ID).
			SetPriorityScore(score).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to persist score for task %s: %w", t.ID, err)
		}
		t.PriorityScore = score
	}
	return nil
}

// readySet filters pending tasks down to those whose dependencies have
// all completed. Unknown dependency IDs gate the task forever; they are
// the submitter's defect to fix.
func (o *Orchestrator) readySet(ctx context.Context, pending []*ent.Task) ([]*ent.Task, error) {
	depIDs := make([]string, 0)
	for _, t := range pending {
		depIDs = append(depIDs, t.DependsOn...)
	}

	completed := make(map[string]bool, len(depIDs))
	if len(depIDs) > 0 {
		done, err := o.client.Task.Query().
			Where(
				task.IDIn(depIDs...),
				task.StatusEQ(task.StatusCompleted),
			).
			Select(task.FieldID).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		for _, id := range done {
			completed[id] = true
		}
	}

	ready := make([]*ent.Task, 0, len(pending))
	for _, t := range pending {
		ok := true
		for _, dep := range t.DependsOn {
			if !completed[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, t)
		}
	}
	return ready, nil
}

// countDependents returns, per task ID, how many pending tasks directly
// depend on it.
func countDependents(pending []*ent.Task) map[string]int {
	out := make(map[string]int)
	for _, t := range pending {
		for _, dep := range t.DependsOn {
			out[dep]++
		}
	}
	return out
}

// pickAgent selects the matching idle agent for a task: capability
// superset, phase equality when the task declares one, and longest-idle
// wins among equals.
func pickAgent(t *ent.Task, idle []*ent.Agent) *ent.Agent {
	var best *ent.Agent
	for _, a := range idle {
		if t.PhaseID != "" && (a.PhaseID == nil || *a.PhaseID != t.PhaseID) {
			continue
		}
		if !hasCapabilities(a.Capabilities, t.RequiredCapabilities) {
			continue
		}
		if best == nil || idleSince(a).Before(idleSince(best)) {
			best = a
		}
	}
	return best
}

func idleSince(a *ent.Agent) time.Time {
	if a.LastIdleSince != nil {
		return *a.LastIdleSince
	}
	return a.CreatedAt
}

func hasCapabilities(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// assign executes the assignment transaction for one (task, agent)
// pairing. Returns false when the pairing lost a race or a resource
// lock conflicted; both cases retry on a later tick.
func (o *Orchestrator) assign(ctx context.Context, t *ent.Task, candidate *ent.Agent) (bool, error) {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-read both rows with row locks so concurrent ticks cannot
	// double-assign.
	current, err := tx.Task.Query().
		Where(task.IDEQ(t.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to re-read task: %w", err)
	}
	if current.Status != task.StatusPending {
		return false, nil
	}

	agentRow, err := tx.Agent.Query().
		Where(agent.IDEQ(candidate.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to re-read agent: %w", err)
	}
	if agentRow.Status != agent.StatusIdle {
		return false, nil
	}

	emits, ok, err := o.acquireResources(ctx, tx, current, agentRow)
	if err != nil {
		return false, err
	}
	if !ok {
		// Partial acquisitions roll back with the transaction.
		return false, nil
	}

	if err := tx.Task.UpdateOneID(current.ID).
		SetStatus(task.StatusAssigned).
		SetAssignedAgentID(agentRow.ID).
		AddVersion(1).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to mark task assigned: %w", err)
	}
	if err := tx.Agent.UpdateOneID(agentRow.ID).
		SetStatus(agent.StatusRunning).
		ClearLastIdleSince().
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to mark agent running: %w", err)
	}

	emit, err := o.publisher.PublishTx(ctx, tx, events.EventTaskAssigned, events.EntityTask, current.ID,
		events.TaskAssignedPayload{
			TaskID:        current.ID,
			TicketID:      current.TicketID,
			AgentID:       agentRow.ID,
			TaskType:      current.TaskType,
			PriorityScore: current.PriorityScore,
		})
	if err != nil {
		return false, err
	}
	emits = append(emits, emit)

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit assignment: %w", err)
	}
	for _, fn := range emits {
		fn()
	}

	slog.Info("Task assigned", "task_id", current.ID, "agent_id", agentRow.ID, "score", current.PriorityScore)

	if o.dispatcher != nil {
		o.dispatcher.Dispatch(ctx, current, agentRow)
	}
	return true, nil
}

// acquireResources takes the task's declared locks inside the assignment
// transaction, in deterministic (resource_type, resource_id) order so
// concurrent assignments cannot form wait-for cycles.
func (o *Orchestrator) acquireResources(ctx context.Context, tx *ent.Tx, t *ent.Task, a *ent.Agent) ([]func(), bool, error) {
	refs := make([]models.ResourceRef, len(t.RequiredResources))
	copy(refs, t.RequiredResources)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].ResourceType != refs[j].ResourceType {
			return refs[i].ResourceType < refs[j].ResourceType
		}
		return refs[i].ResourceID < refs[j].ResourceID
	})

	emits := make([]func(), 0, len(refs))
	for _, ref := range refs {
		mode := resourcelock.LockModeExclusive
		if ref.Mode == models.LockModeShared {
			mode = resourcelock.LockModeShared
		}
		lock, emit, err := o.lockMgr.AcquireInTx(ctx, tx, locks.AcquireRequest{
			ResourceType: ref.ResourceType,
			ResourceID:   ref.ResourceID,
			TaskID:       t.ID,
			AgentID:      a.ID,
			Mode:         mode,
		})
		if err != nil {
			return nil, false, err
		}
		if lock == nil {
			return nil, false, nil
		}
		emits = append(emits, emit)
	}
	return emits, true, nil
}

func (o *Orchestrator) setLastTick(t time.Time) {
	o.mu.Lock()
	o.lastTick = t
	o.mu.Unlock()
}

// LastTick reports when the last scheduling pass finished (zero before
// the first pass). Exposed on the health surface.
func (o *Orchestrator) LastTick() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastTick
}

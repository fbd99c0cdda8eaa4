package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/database"
	"github.com/omoi-os/omoios/pkg/events"
)

// MarkRunning records that the runtime session for an assigned task has
// started. sandboxID is optional.
func (o *Orchestrator) MarkRunning(ctx context.Context, taskID, sandboxID string) error {
	return database.WithRetry(ctx, func(ctx context.Context) error {
		tx, err := o.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		current, err := tx.Task.Query().
			Where(task.IDEQ(taskID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to load task: %w", err)
		}
		if current.Status != task.StatusAssigned {
			return nil
		}

		update := tx.Task.UpdateOneID(taskID).
			SetStatus(task.StatusRunning).
			SetStartedAt(time.Now()).
			AddVersion(1)
		if sandboxID != "" {
			update.SetSandboxID(sandboxID)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark task running: %w", err)
		}
		return tx.Commit()
	})
}

// Complete applies the terminal completed transition: the task closes,
// its locks release, and its agent returns to the idle pool.
func (o *Orchestrator) Complete(ctx context.Context, taskID string, result map[string]interface{}) error {
	return o.finish(ctx, taskID, func(tx *ent.Tx, current *ent.Task) (func(), error) {
		update := tx.Task.UpdateOneID(current.ID).
			SetStatus(task.StatusCompleted).
			SetCompletedAt(time.Now()).
			AddVersion(1)
		if result != nil {
			update.SetResult(result)
		}
		if err := update.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark task completed: %w", err)
		}

		var durationMs int64
		if current.StartedAt != nil {
			durationMs = time.Since(*current.StartedAt).Milliseconds()
		}
		return o.publisher.PublishTx(ctx, tx, events.EventTaskCompleted, events.EntityTask, current.ID,
			events.TaskCompletedPayload{
				TaskID:     current.ID,
				TicketID:   current.TicketID,
				AgentID:    assignedAgent(current),
				DurationMs: durationMs,
			})
	})
}

// Fail applies the terminal failed transition. The retry counter is
// bumped first; while budget remains the task is requeued as pending,
// otherwise it is failed for good. Either way locks release and the
// agent is freed.
func (o *Orchestrator) Fail(ctx context.Context, taskID, errMsg string) error {
	return o.finish(ctx, taskID, func(tx *ent.Tx, current *ent.Task) (func(), error) {
		retryCount := current.RetryCount + 1
		willRetry := retryCount < o.cfg.MaxRetries

		result := current.Result
		if result == nil {
			result = make(map[string]interface{})
		}
		result["error"] = errMsg

		update := tx.Task.UpdateOneID(current.ID).
			SetRetryCount(retryCount).
			SetResult(result).
			AddVersion(1)
		if willRetry {
			update.SetStatus(task.StatusPending).
				ClearAssignedAgentID().
				ClearSandboxID().
				ClearStartedAt()
		} else {
			update.SetStatus(task.StatusFailed).
				SetCompletedAt(time.Now())
		}
		if err := update.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark task failed: %w", err)
		}

		return o.publisher.PublishTx(ctx, tx, events.EventTaskFailed, events.EntityTask, current.ID,
			events.TaskFailedPayload{
				TaskID:     current.ID,
				TicketID:   current.TicketID,
				AgentID:    assignedAgent(current),
				Error:      errMsg,
				RetryCount: retryCount,
				WillRetry:  willRetry,
			})
	})
}

// HeartbeatTimeout is the dispatcher's entry point when an agent stops
// heartbeating; it is a failure with a fixed error.
func (o *Orchestrator) HeartbeatTimeout(ctx context.Context, taskID string) error {
	return o.Fail(ctx, taskID, "heartbeat timeout")
}

// finish runs the shared terminal-transition skeleton: row-lock the
// task, apply the mutation, free the agent, commit, then release the
// task's locks. Tasks already in a terminal state are left untouched.
// A dispatcher's terminal report must not be lost to a dropped
// connection or a serialization conflict, so the transaction retries
// transient store failures.
func (o *Orchestrator) finish(ctx context.Context, taskID string, mutate func(*ent.Tx, *ent.Task) (func(), error)) error {
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		tx, err := o.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		current, err := tx.Task.Query().
			Where(task.IDEQ(taskID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("failed to load task: %w", err)
		}
		switch current.Status {
		case task.StatusAssigned, task.StatusRunning:
		default:
			// Already terminal (or requeued); a duplicate report is a no-op.
			return nil
		}

		emit, err := mutate(tx, current)
		if err != nil {
			return err
		}

		if current.AssignedAgentID != nil {
			if err := o.freeAgent(ctx, tx, *current.AssignedAgentID); err != nil {
				return err
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit terminal transition: %w", err)
		}
		emit()
		return nil
	})
	if err != nil {
		return err
	}

	if _, err := o.lockMgr.ReleaseTaskLocks(ctx, taskID); err != nil {
		slog.Error("Failed to release task locks", "task_id", taskID, "error", err)
	}
	return nil
}

// freeAgent returns a running agent to the idle pool. Agents in other
// states (quarantined, dead) keep their state; the Guardian owns those.
func (o *Orchestrator) freeAgent(ctx context.Context, tx *ent.Tx, agentID string) error {
	agentRow, err := tx.Agent.Query().
		Where(agent.IDEQ(agentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if agentRow.Status != agent.StatusRunning {
		return nil
	}
	if err := tx.Agent.UpdateOneID(agentID).
		SetStatus(agent.StatusIdle).
		SetLastIdleSince(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to free agent: %w", err)
	}
	return nil
}

// RecoverOrphans requeues tasks stranded in assigned/running by a
// previous process. Dispatchers live in-process, so after a restart no
// session can still be driving these tasks.
func (o *Orchestrator) RecoverOrphans(ctx context.Context) error {
	orphans, err := o.client.Task.Query().
		Where(task.StatusIn(task.StatusAssigned, task.StatusRunning)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orphaned tasks: %w", err)
	}

	for _, t := range orphans {
		if err := o.requeueOrphan(ctx, t); err != nil {
			slog.Error("Failed to requeue orphaned task", "task_id", t.ID, "error", err)
		}
	}

	// Agents left in running with no dispatcher go back to idle.
	n, err := o.client.Agent.Update().
		Where(agent.StatusEQ(agent.StatusRunning)).
		SetStatus(agent.StatusIdle).
		SetLastIdleSince(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset running agents: %w", err)
	}
	if len(orphans) > 0 || n > 0 {
		slog.Info("Recovered orphaned work", "tasks_requeued", len(orphans), "agents_reset", n)
	}
	return nil
}

func (o *Orchestrator) requeueOrphan(ctx context.Context, t *ent.Task) error {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusPending).
		ClearAssignedAgentID().
		ClearSandboxID().
		ClearStartedAt().
		AddVersion(1).
		Exec(ctx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	if _, err := o.lockMgr.ReleaseTaskLocks(ctx, t.ID); err != nil {
		slog.Error("Failed to release orphan locks", "task_id", t.ID, "error", err)
	}
	return nil
}

func assignedAgent(t *ent.Task) string {
	if t.AssignedAgentID != nil {
		return *t.AssignedAgentID
	}
	return ""
}

package collab

import (
	"context"
	"fmt"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/services"
)

// Handoff message types exchanged on a handoff thread.
const (
	MessageHandoffRequest  = "handoff_request"
	MessageHandoffAccepted = "handoff_accepted"
	MessageHandoffDeclined = "handoff_declined"
)

// RequestHandoff opens a handoff thread between two agents for a task
// and sends the handoff_request message carrying the reason and any
// transfer context.
func (b *Bus) RequestHandoff(ctx context.Context, from, to, taskID, reason string, transferContext map[string]interface{}) (*ent.CollaborationThread, error) {
	t, err := b.client.Task.Query().
		Where(task.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	if t.AssignedAgentID == nil || *t.AssignedAgentID != from {
		return nil, services.NewValidationError("from", "task is not assigned to the requesting agent")
	}

	thread, err := b.CreateThread(ctx, collaborationthread.ThreadTypeHandoff, []string{from, to}, t.TicketID, taskID)
	if err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{"reason": reason}
	for k, v := range transferContext {
		metadata[k] = v
	}
	if _, err := b.SendMessage(ctx, thread.ID, from, &to, MessageHandoffRequest, reason, metadata); err != nil {
		return nil, err
	}

	b.publisher.MustPublish(ctx, events.EventHandoffRequested, events.EntityThread, thread.ID,
		events.HandoffPayload{
			ThreadID:    thread.ID,
			TaskID:      taskID,
			FromAgentID: from,
			ToAgentID:   to,
			Reason:      reason,
		})
	return thread, nil
}

// AcceptHandoff records the acceptance and reassigns the task: the new
// agent takes over the running work and the previous owner returns to
// the idle pool.
func (b *Bus) AcceptHandoff(ctx context.Context, threadID, acceptingAgentID string) error {
	thread, from, err := b.loadHandoffThread(ctx, threadID, acceptingAgentID)
	if err != nil {
		return err
	}
	if thread.TaskID == nil {
		return services.NewValidationError("thread_id", "handoff thread carries no task")
	}
	taskID := *thread.TaskID

	if _, err := b.SendMessage(ctx, threadID, acceptingAgentID, &from, MessageHandoffAccepted, "accepted", nil); err != nil {
		return err
	}

	if err := b.reassignTask(ctx, taskID, from, acceptingAgentID); err != nil {
		return err
	}

	if _, err := b.CloseThread(ctx, threadID); err != nil {
		return err
	}

	b.publisher.MustPublish(ctx, events.EventHandoffAccepted, events.EntityThread, threadID,
		events.HandoffPayload{
			ThreadID:    threadID,
			TaskID:      taskID,
			FromAgentID: from,
			ToAgentID:   acceptingAgentID,
		})
	return nil
}

// DeclineHandoff records the decline; the task stays with its owner.
func (b *Bus) DeclineHandoff(ctx context.Context, threadID, decliningAgentID, reason string) error {
	thread, from, err := b.loadHandoffThread(ctx, threadID, decliningAgentID)
	if err != nil {
		return err
	}
	taskID := ""
	if thread.TaskID != nil {
		taskID = *thread.TaskID
	}

	if _, err := b.SendMessage(ctx, threadID, decliningAgentID, &from, MessageHandoffDeclined, reason,
		map[string]interface{}{"reason": reason}); err != nil {
		return err
	}

	if _, err := b.CloseThread(ctx, threadID); err != nil {
		return err
	}

	b.publisher.MustPublish(ctx, events.EventHandoffDeclined, events.EntityThread, threadID,
		events.HandoffPayload{
			ThreadID:    threadID,
			TaskID:      taskID,
			FromAgentID: from,
			ToAgentID:   decliningAgentID,
			Reason:      reason,
		})
	return nil
}

// loadHandoffThread validates that the responder is the thread's second
// participant and returns the thread plus the requesting agent's ID.
func (b *Bus) loadHandoffThread(ctx context.Context, threadID, responderID string) (*ent.CollaborationThread, string, error) {
	thread, err := b.client.CollaborationThread.Query().
		Where(collaborationthread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", fmt.Errorf("thread %s: %w", threadID, services.ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to load thread: %w", err)
	}
	if thread.ThreadType != collaborationthread.ThreadTypeHandoff {
		return nil, "", services.NewValidationError("thread_id", "not a handoff thread")
	}
	if thread.Status != collaborationthread.StatusActive {
		return nil, "", services.NewValidationError("thread_id", "handoff already settled")
	}
	if len(thread.Participants) != 2 {
		return nil, "", services.NewValidationError("thread_id", "malformed handoff thread")
	}

	from := thread.Participants[0]
	if responderID == from {
		return nil, "", services.NewValidationError("agent_id", "requester cannot settle its own handoff")
	}
	if responderID != thread.Participants[1] {
		return nil, "", services.NewValidationError("agent_id", "agent is not a participant of this handoff")
	}
	return thread, from, nil
}

// reassignTask moves the in-flight task to the accepting agent and swaps
// the two agents' run states in one transaction.
func (b *Bus) reassignTask(ctx context.Context, taskID, fromAgentID, toAgentID string) error {
	tx, err := b.client.Tx(ctx)
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
		return fmt.Errorf("task %s is not in flight: %w", taskID, services.ErrConcurrentModification)
	}
	if current.AssignedAgentID == nil || *current.AssignedAgentID != fromAgentID {
		return fmt.Errorf("task %s changed owner: %w", taskID, services.ErrConcurrentModification)
	}

	newOwner, err := tx.Agent.Query().
		Where(agent.IDEQ(toAgentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accepting agent: %w", err)
	}
	if newOwner.Status != agent.StatusIdle {
		return fmt.Errorf("accepting agent is not idle: %w", services.ErrConcurrentModification)
	}

	if err := tx.Task.UpdateOneID(taskID).
		SetAssignedAgentID(toAgentID).
		AddVersion(1).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to reassign task: %w", err)
	}
	if err := tx.Agent.UpdateOneID(toAgentID).
		SetStatus(agent.StatusRunning).
		ClearLastIdleSince().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark new owner running: %w", err)
	}
	if err := tx.Agent.UpdateOneID(fromAgentID).
		SetStatus(agent.StatusIdle).
		SetLastIdleSince(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to idle previous owner: %w", err)
	}

	return tx.Commit()
}

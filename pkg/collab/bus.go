package collab

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/agentmessage"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/services"
)

// Bus is the collaboration service: it owns threads and messages and
// drives best-effort delivery into live sessions.
type Bus struct {
	client    *ent.Client
	publisher *events.Publisher
	delivery  *Delivery
}

// NewBus wires the collaboration bus. delivery may be nil; messages then
// persist without out-of-band delivery.
func NewBus(client *ent.Client, publisher *events.Publisher, delivery *Delivery) *Bus {
	return &Bus{client: client, publisher: publisher, delivery: delivery}
}

// CreateThread opens a collaboration thread.
func (b *Bus) CreateThread(ctx context.Context, threadType collaborationthread.ThreadType, participants []string, ticketID, taskID string) (*ent.CollaborationThread, error) {
	if len(participants) == 0 {
		return nil, services.NewValidationError("participants", "at least one participant required")
	}

	create := b.client.CollaborationThread.Create().
		SetID(uuid.New().String()).
		SetThreadType(threadType).
		SetParticipants(participants)
	if ticketID != "" {
		create.SetTicketID(ticketID)
	}
	if taskID != "" {
		create.SetTaskID(taskID)
	}
	thread, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return thread, nil
}

// SendMessage persists a message in a thread, publishes
// agent.message.sent, and attempts out-of-band delivery when the message
// is addressed. A nil to means broadcast within the thread.
func (b *Bus) SendMessage(ctx context.Context, threadID, from string, to *string, messageType, content string, metadata map[string]interface{}) (*ent.AgentMessage, error) {
	thread, err := b.client.CollaborationThread.Query().
		Where(collaborationthread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("thread %s: %w", threadID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	if thread.Status != collaborationthread.StatusActive {
		return nil, services.NewValidationError("thread_id", "thread is not active")
	}

	create := b.client.AgentMessage.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetFromAgentID(from).
		SetMessageType(messageType).
		SetContent(content)
	if to != nil {
		create.SetToAgentID(*to)
	}
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	toID := ""
	if to != nil {
		toID = *to
	}
	b.publisher.MustPublish(ctx, events.EventAgentMessageSent, events.EntityMessage, msg.ID,
		events.MessageSentPayload{
			MessageID:   msg.ID,
			ThreadID:    threadID,
			FromAgentID: from,
			ToAgentID:   toID,
			MessageType: messageType,
		})

	if to != nil {
		b.deliverTo(ctx, from, *to, content, false)
	}
	return msg, nil
}

// Broadcast sends one message to every currently-active agent other than
// the sender: a single row with to=null and the recipient count in its
// metadata, delivered best-effort to each recipient's live session.
func (b *Bus) Broadcast(ctx context.Context, from, content, messageType string) (*ent.AgentMessage, error) {
	sender, err := b.client.Agent.Query().
		Where(agent.IDEQ(from)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", from, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}

	recipients, err := b.client.Agent.Query().
		Where(
			agent.StatusIn(agent.StatusIdle, agent.StatusRunning, agent.StatusDegraded),
			agent.IDNEQ(from),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active agents: %w", err)
	}

	participants := make([]string, 0, len(recipients)+1)
	participants = append(participants, from)
	for _, r := range recipients {
		participants = append(participants, r.ID)
	}

	thread, err := b.locateBroadcastThread(ctx, participants)
	if err != nil {
		return nil, err
	}

	msg, err := b.SendMessage(ctx, thread.ID, from, nil, messageType, content,
		map[string]interface{}{
			"broadcast":       true,
			"recipient_count": len(recipients),
		})
	if err != nil {
		return nil, err
	}

	if b.delivery != nil {
		for _, r := range recipients {
			if ok := b.delivery.Attempt(ctx, sender, r, content, true); !ok {
				slog.Debug("No live route to broadcast recipient", "agent_id", r.ID)
			}
		}
	}
	return msg, nil
}

// CloseThread resolves a thread. Closing an already closed thread is a
// no-op.
func (b *Bus) CloseThread(ctx context.Context, threadID string) (*ent.CollaborationThread, error) {
	thread, err := b.client.CollaborationThread.Query().
		Where(collaborationthread.IDEQ(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("thread %s: %w", threadID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	if thread.Status != collaborationthread.StatusActive {
		return thread, nil
	}
	thread, err = thread.Update().
		SetStatus(collaborationthread.StatusResolved).
		SetClosedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close thread: %w", err)
	}
	return thread, nil
}

// Messages returns a thread's messages in send order.
func (b *Bus) Messages(ctx context.Context, threadID string) ([]*ent.AgentMessage, error) {
	msgs, err := b.client.AgentMessage.Query().
		Where(agentmessage.ThreadIDEQ(threadID)).
		Order(ent.Asc(agentmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// locateBroadcastThread reuses the active consultation thread covering
// exactly this participant set, creating one when none exists.
func (b *Bus) locateBroadcastThread(ctx context.Context, participants []string) (*ent.CollaborationThread, error) {
	candidates, err := b.client.CollaborationThread.Query().
		Where(
			collaborationthread.ThreadTypeEQ(collaborationthread.ThreadTypeConsultation),
			collaborationthread.StatusEQ(collaborationthread.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}

	want := make([]string, len(participants))
	copy(want, participants)
	slices.Sort(want)
	for _, c := range candidates {
		have := make([]string, len(c.Participants))
		copy(have, c.Participants)
		slices.Sort(have)
		if slices.Equal(have, want) {
			return c, nil
		}
	}

	return b.CreateThread(ctx, collaborationthread.ThreadTypeConsultation, participants, "", "")
}

// deliverTo resolves the recipient and fires the delivery path.
func (b *Bus) deliverTo(ctx context.Context, fromID, toID, content string, broadcast bool) {
	if b.delivery == nil {
		return
	}
	sender, err := b.client.Agent.Get(ctx, fromID)
	if err != nil {
		slog.Warn("Delivery skipped: unknown sender", "agent_id", fromID)
		return
	}
	recipient, err := b.client.Agent.Get(ctx, toID)
	if err != nil {
		slog.Warn("Delivery skipped: unknown recipient", "agent_id", toID)
		return
	}
	if ok := b.delivery.Attempt(ctx, sender, recipient, content, broadcast); !ok {
		slog.Debug("No live route to recipient", "agent_id", toID)
	}
}

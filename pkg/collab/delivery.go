// Package collab implements agent-to-agent collaboration: threads,
// messages, broadcasts, out-of-band delivery into live sessions, and
// the task handoff protocol.
package collab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/dispatch"
)

// Delivery attempts out-of-band message delivery into a recipient's live
// session. Messages persist regardless; delivery is strictly best-effort
// and failures are logged, never surfaced.
type Delivery struct {
	client  *ent.Client
	sandbox dispatch.SandboxExecutor
	runtime dispatch.AgentRuntime
	timeout time.Duration
}

// NewDelivery wires the delivery path. sandbox and runtime may each be
// nil; absent backends simply skip their delivery route.
func NewDelivery(client *ent.Client, sandbox dispatch.SandboxExecutor, runtime dispatch.AgentRuntime, timeout time.Duration) *Delivery {
	return &Delivery{client: client, sandbox: sandbox, runtime: runtime, timeout: timeout}
}

// Attempt tries to deliver content to the recipient: first via its
// in-flight task's sandbox, then by resuming its persisted conversation.
// Returns true when a route accepted the message.
func (d *Delivery) Attempt(ctx context.Context, from, to *ent.Agent, content string, broadcast bool) bool {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text := formatInjection(from, to, content, broadcast)

	if sandboxID := d.liveSandbox(ctx, to.ID); sandboxID != "" && d.sandbox != nil {
		if err := d.sandbox.InjectMessage(ctx, sandboxID, text); err != nil {
			slog.Warn("Sandbox delivery failed",
				"to_agent_id", to.ID, "sandbox_id", sandboxID, "error", err)
		} else {
			return true
		}
	}

	if d.runtime != nil && to.ConversationID != nil && to.PersistenceDir != nil {
		ok, err := d.runtime.ResumeConversation(ctx, *to.ConversationID, *to.PersistenceDir, text)
		if err != nil {
			slog.Warn("Conversation delivery failed",
				"to_agent_id", to.ID, "conversation_id", *to.ConversationID, "error", err)
			return false
		}
		return ok
	}

	return false
}

// liveSandbox returns the sandbox backing the recipient's in-flight
// task, if any.
func (d *Delivery) liveSandbox(ctx context.Context, agentID string) string {
	inflight, err := d.client.Task.Query().
		Where(
			task.AssignedAgentIDEQ(agentID),
			task.StatusIn(task.StatusAssigned, task.StatusRunning),
			task.SandboxIDNotNil(),
		).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to look up in-flight task", "agent_id", agentID, "error", err)
		}
		return ""
	}
	return *inflight.SandboxID
}

func formatInjection(from, to *ent.Agent, content string, broadcast bool) string {
	if broadcast {
		return fmt.Sprintf("[BROADCAST from AGENT %s]: %s", shortID(from.ID), content)
	}
	return fmt.Sprintf("[AGENT %s → AGENT %s]: %s", shortID(from.ID), shortID(to.ID), content)
}

// shortID trims an agent ID down to a readable prefix for injected text.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

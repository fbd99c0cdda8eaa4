// Package dispatch owns the lifecycle of one (task, agent) pairing: it
// starts the external runtime session, relays heartbeats, enforces the
// per-task deadline, and funnels the terminal result back into the
// orchestrator's transition entry points.
package dispatch

import (
	"context"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/models"
)

// RuntimeEventKind enumerates the asynchronous events a runtime session
// produces.
type RuntimeEventKind string

const (
	RuntimeHeartbeat  RuntimeEventKind = "heartbeat"
	RuntimeToolUse    RuntimeEventKind = "tool_use"
	RuntimeCompletion RuntimeEventKind = "completion"
	RuntimeFailure    RuntimeEventKind = "failure"
)

// RuntimeEvent is one asynchronous report from a running session.
type RuntimeEvent struct {
	Kind    RuntimeEventKind
	Metrics models.HealthMetrics   // heartbeat
	Tool    string                 // tool_use
	Result  map[string]interface{} // completion
	Error   string                 // failure
}

// Handle identifies a live runtime session.
type Handle interface {
	// ConversationID is the durable conversation identifier; it survives
	// the session and supports later resume.
	ConversationID() string
	// SandboxID is the sandbox backing the session, if any.
	SandboxID() string
	// Events streams the session's asynchronous reports. The runtime
	// closes the channel when the session ends.
	Events() <-chan RuntimeEvent
}

// AgentRuntime is the outbound contract to the external agent runtime.
type AgentRuntime interface {
	Start(ctx context.Context, task *ent.Task, agent *ent.Agent) (Handle, error)
	InjectMessage(ctx context.Context, handle Handle, text string) (bool, error)
	Cancel(ctx context.Context, handle Handle) (bool, error)
	// ResumeConversation reopens a persisted conversation just long
	// enough to inject one message.
	ResumeConversation(ctx context.Context, conversationID, persistenceDir, text string) (bool, error)
}

// SandboxExecutor is the optional outbound contract to a sandbox
// provider.
type SandboxExecutor interface {
	Spawn(ctx context.Context, image string, resources map[string]string) (string, error)
	Exec(ctx context.Context, sandboxID, cmd string) (stdout string, exitCode int, err error)
	GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error)
	InjectMessage(ctx context.Context, sandboxID, text string) error
}

// Transitions is the slice of the orchestrator the dispatcher reports
// terminal results through.
type Transitions interface {
	MarkRunning(ctx context.Context, taskID, sandboxID string) error
	Complete(ctx context.Context, taskID string, result map[string]interface{}) error
	Fail(ctx context.Context, taskID, errMsg string) error
	HeartbeatTimeout(ctx context.Context, taskID string) error
}

// HeartbeatSink receives health metrics relayed from runtime heartbeats.
type HeartbeatSink interface {
	ReportHeartbeat(agentID string, metrics models.HealthMetrics)
}

// Package events provides the domain event vocabulary, the durable
// publisher, and the in-process bus.
//
// Every state transition is recorded twice: the Event row in the store is
// the canonical audit trail and is always written first; the in-process
// bus delivery on top is best-effort (bounded buffers, drop-oldest).
// Subscribers that miss events can catch up from the events table using
// the auto-increment row ID as cursor.
package events

import "time"

// Task and ticket lifecycle events (legacy upper-case names are part of
// the external vocabulary).
const (
	EventTaskAssigned  = "TASK_ASSIGNED"
	EventTaskCompleted = "TASK_COMPLETED"
	EventTaskFailed    = "TASK_FAILED"
	EventTicketCreated = "TICKET_CREATED"
	EventTicketUpdated = "TICKET_UPDATED"
)

// Agent lifecycle events.
const (
	EventAgentRegistered  = "agent.registered"
	EventAgentQuarantined = "agent.quarantined"
	EventAgentResurrected = "agent.resurrected"
	EventAgentDead        = "agent.dead"
)

// Collaboration events.
const (
	EventAgentMessageSent = "agent.message.sent"
	EventHandoffRequested = "agent.handoff.requested"
	EventHandoffAccepted  = "agent.handoff.accepted"
	EventHandoffDeclined  = "agent.handoff.declined"
)

// Lock events.
const (
	EventLockAcquired = "lock.acquired"
	EventLockReleased = "lock.released"
	EventLockExpired  = "lock.expired"
)

// Monitor events.
const (
	EventMonitorAnomalyDetected = "monitor.anomaly.detected"
	EventMonitorAgentAnomaly    = "monitor.agent.anomaly"
)

// Entity type labels used in Event rows.
const (
	EntityTask    = "task"
	EntityTicket  = "ticket"
	EntityAgent   = "agent"
	EntityLock    = "lock"
	EntityThread  = "thread"
	EntityMessage = "message"
	EntityMetric  = "metric"
)

// Event is the in-process representation of a persisted domain event.
// ID is the events table row ID (0 for events that failed to persist but
// were still fanned out).
type Event struct {
	ID         int            `json:"id"`
	Type       string         `json:"type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentBaseline is the predicate function for agentbaseline builders.
type AgentBaseline func(*sql.Selector)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// CollaborationThread is the predicate function for collaborationthread builders.
type CollaborationThread func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// MonitorAnomaly is the predicate function for monitoranomaly builders.
type MonitorAnomaly func(*sql.Selector)

// ResourceLock is the predicate function for resourcelock builders.
type ResourceLock func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

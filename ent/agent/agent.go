// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldAnomalyScore holds the string denoting the anomaly_score field in the database.
	FieldAnomalyScore = "anomaly_score"
	// FieldConsecutiveAnomalousReadings holds the string denoting the consecutive_anomalous_readings field in the database.
	FieldConsecutiveAnomalousReadings = "consecutive_anomalous_readings"
	// FieldWorkspaceDir holds the string denoting the workspace_dir field in the database.
	FieldWorkspaceDir = "workspace_dir"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldPersistenceDir holds the string denoting the persistence_dir field in the database.
	FieldPersistenceDir = "persistence_dir"
	// FieldLastIdleSince holds the string denoting the last_idle_since field in the database.
	FieldLastIdleSince = "last_idle_since"
	// FieldLastQuarantinedAt holds the string denoting the last_quarantined_at field in the database.
	FieldLastQuarantinedAt = "last_quarantined_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldPhaseID,
	FieldStatus,
	FieldCapabilities,
	FieldLastHeartbeat,
	FieldAnomalyScore,
	FieldConsecutiveAnomalousReadings,
	FieldWorkspaceDir,
	FieldConversationID,
	FieldPersistenceDir,
	FieldLastIdleSince,
	FieldLastQuarantinedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAnomalyScore holds the default value on creation for the "anomaly_score" field.
	DefaultAnomalyScore float64
	// DefaultConsecutiveAnomalousReadings holds the default value on creation for the "consecutive_anomalous_readings" field.
	DefaultConsecutiveAnomalousReadings int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle        Status = "idle"
	StatusRunning     Status = "running"
	StatusDegraded    Status = "degraded"
	StatusQuarantined Status = "quarantined"
	StatusDead        Status = "dead"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusRunning, StatusDegraded, StatusQuarantined, StatusDead:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByAnomalyScore orders the results by the anomaly_score field.
func ByAnomalyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyScore, opts...).ToFunc()
}

// ByConsecutiveAnomalousReadings orders the results by the consecutive_anomalous_readings field.
func ByConsecutiveAnomalousReadings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveAnomalousReadings, opts...).ToFunc()
}

// ByWorkspaceDir orders the results by the workspace_dir field.
func ByWorkspaceDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceDir, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByPersistenceDir orders the results by the persistence_dir field.
func ByPersistenceDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersistenceDir, opts...).ToFunc()
}

// ByLastIdleSince orders the results by the last_idle_since field.
func ByLastIdleSince(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastIdleSince, opts...).ToFunc()
}

// ByLastQuarantinedAt orders the results by the last_quarantined_at field.
func ByLastQuarantinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuarantinedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package agentbaseline

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentbaseline type in the database.
	Label = "agent_baseline"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "baseline_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldLatencyStd holds the string denoting the latency_std field in the database.
	FieldLatencyStd = "latency_std"
	// FieldErrorRate holds the string denoting the error_rate field in the database.
	FieldErrorRate = "error_rate"
	// FieldCPUUsagePercent holds the string denoting the cpu_usage_percent field in the database.
	FieldCPUUsagePercent = "cpu_usage_percent"
	// FieldMemoryUsageMB holds the string denoting the memory_usage_mb field in the database.
	FieldMemoryUsageMB = "memory_usage_mb"
	// FieldAdditionalMetrics holds the string denoting the additional_metrics field in the database.
	FieldAdditionalMetrics = "additional_metrics"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the agentbaseline in the database.
	Table = "agent_baselines"
)

// Columns holds all SQL columns for agentbaseline fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldPhaseID,
	FieldLatencyMs,
	FieldLatencyStd,
	FieldErrorRate,
	FieldCPUUsagePercent,
	FieldMemoryUsageMB,
	FieldAdditionalMetrics,
	FieldSampleCount,
	FieldLastUpdated,
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
	// DefaultPhaseID holds the default value on creation for the "phase_id" field.
	DefaultPhaseID string
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs float64
	// DefaultLatencyStd holds the default value on creation for the "latency_std" field.
	DefaultLatencyStd float64
	// DefaultErrorRate holds the default value on creation for the "error_rate" field.
	DefaultErrorRate float64
	// DefaultCPUUsagePercent holds the default value on creation for the "cpu_usage_percent" field.
	DefaultCPUUsagePercent float64
	// DefaultMemoryUsageMB holds the default value on creation for the "memory_usage_mb" field.
	DefaultMemoryUsageMB float64
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the AgentBaseline queries.
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

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByLatencyStd orders the results by the latency_std field.
func ByLatencyStd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyStd, opts...).ToFunc()
}

// ByErrorRate orders the results by the error_rate field.
func ByErrorRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRate, opts...).ToFunc()
}

// ByCPUUsagePercent orders the results by the cpu_usage_percent field.
func ByCPUUsagePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUUsagePercent, opts...).ToFunc()
}

// ByMemoryUsageMB orders the results by the memory_usage_mb field.
func ByMemoryUsageMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryUsageMB, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package agentbaseline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldAgentType, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldPhaseID, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyStd applies equality check predicate on the "latency_std" field. It's identical to LatencyStdEQ.
func LatencyStd(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyStd, v))
}

// ErrorRate applies equality check predicate on the "error_rate" field. It's identical to ErrorRateEQ.
func ErrorRate(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldErrorRate, v))
}

// CPUUsagePercent applies equality check predicate on the "cpu_usage_percent" field. It's identical to CPUUsagePercentEQ.
func CPUUsagePercent(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUUsagePercent, v))
}

// MemoryUsageMB applies equality check predicate on the "memory_usage_mb" field. It's identical to MemoryUsageMBEQ.
func MemoryUsageMB(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemoryUsageMB, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldSampleCount, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLastUpdated, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContainsFold(FieldAgentType, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContainsFold(FieldPhaseID, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyStdEQ applies the EQ predicate on the "latency_std" field.
func LatencyStdEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyStd, v))
}

// LatencyStdNEQ applies the NEQ predicate on the "latency_std" field.
func LatencyStdNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldLatencyStd, v))
}

// LatencyStdIn applies the In predicate on the "latency_std" field.
func LatencyStdIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldLatencyStd, vs...))
}

// LatencyStdNotIn applies the NotIn predicate on the "latency_std" field.
func LatencyStdNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldLatencyStd, vs...))
}

// LatencyStdGT applies the GT predicate on the "latency_std" field.
func LatencyStdGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldLatencyStd, v))
}

// LatencyStdGTE applies the GTE predicate on the "latency_std" field.
func LatencyStdGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldLatencyStd, v))
}

// LatencyStdLT applies the LT predicate on the "latency_std" field.
func LatencyStdLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldLatencyStd, v))
}

// LatencyStdLTE applies the LTE predicate on the "latency_std" field.
func LatencyStdLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldLatencyStd, v))
}

// ErrorRateEQ applies the EQ predicate on the "error_rate" field.
func ErrorRateEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldErrorRate, v))
}

// ErrorRateNEQ applies the NEQ predicate on the "error_rate" field.
func ErrorRateNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldErrorRate, v))
}

// ErrorRateIn applies the In predicate on the "error_rate" field.
func ErrorRateIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldErrorRate, vs...))
}

// ErrorRateNotIn applies the NotIn predicate on the "error_rate" field.
func ErrorRateNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldErrorRate, vs...))
}

// ErrorRateGT applies the GT predicate on the "error_rate" field.
func ErrorRateGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldErrorRate, v))
}

// ErrorRateGTE applies the GTE predicate on the "error_rate" field.
func ErrorRateGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldErrorRate, v))
}

// ErrorRateLT applies the LT predicate on the "error_rate" field.
func ErrorRateLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldErrorRate, v))
}

// ErrorRateLTE applies the LTE predicate on the "error_rate" field.
func ErrorRateLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldErrorRate, v))
}

// CPUUsagePercentEQ applies the EQ predicate on the "cpu_usage_percent" field.
func CPUUsagePercentEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUUsagePercent, v))
}

// CPUUsagePercentNEQ applies the NEQ predicate on the "cpu_usage_percent" field.
func CPUUsagePercentNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldCPUUsagePercent, v))
}

// CPUUsagePercentIn applies the In predicate on the "cpu_usage_percent" field.
func CPUUsagePercentIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldCPUUsagePercent, vs...))
}

// CPUUsagePercentNotIn applies the NotIn predicate on the "cpu_usage_percent" field.
func CPUUsagePercentNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldCPUUsagePercent, vs...))
}

// CPUUsagePercentGT applies the GT predicate on the "cpu_usage_percent" field.
func CPUUsagePercentGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldCPUUsagePercent, v))
}

// CPUUsagePercentGTE applies the GTE predicate on the "cpu_usage_percent" field.
func CPUUsagePercentGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldCPUUsagePercent, v))
}

// CPUUsagePercentLT applies the LT predicate on the "cpu_usage_percent" field.
func CPUUsagePercentLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldCPUUsagePercent, v))
}

// CPUUsagePercentLTE applies the LTE predicate on the "cpu_usage_percent" field.
func CPUUsagePercentLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldCPUUsagePercent, v))
}

// MemoryUsageMBEQ applies the EQ predicate on the "memory_usage_mb" field.
func MemoryUsageMBEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemoryUsageMB, v))
}

// MemoryUsageMBNEQ applies the NEQ predicate on the "memory_usage_mb" field.
func MemoryUsageMBNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldMemoryUsageMB, v))
}

// MemoryUsageMBIn applies the In predicate on the "memory_usage_mb" field.
func MemoryUsageMBIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldMemoryUsageMB, vs...))
}

// MemoryUsageMBNotIn applies the NotIn predicate on the "memory_usage_mb" field.
func MemoryUsageMBNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldMemoryUsageMB, vs...))
}

// MemoryUsageMBGT applies the GT predicate on the "memory_usage_mb" field.
func MemoryUsageMBGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldMemoryUsageMB, v))
}

// MemoryUsageMBGTE applies the GTE predicate on the "memory_usage_mb" field.
func MemoryUsageMBGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldMemoryUsageMB, v))
}

// MemoryUsageMBLT applies the LT predicate on the "memory_usage_mb" field.
func MemoryUsageMBLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldMemoryUsageMB, v))
}

// MemoryUsageMBLTE applies the LTE predicate on the "memory_usage_mb" field.
func MemoryUsageMBLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldMemoryUsageMB, v))
}

// AdditionalMetricsIsNil applies the IsNil predicate on the "additional_metrics" field.
func AdditionalMetricsIsNil() predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIsNull(FieldAdditionalMetrics))
}

// AdditionalMetricsNotNil applies the NotNil predicate on the "additional_metrics" field.
func AdditionalMetricsNotNil() predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotNull(FieldAdditionalMetrics))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldSampleCount, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.NotPredicates(p))
}

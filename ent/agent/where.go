// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPhaseID, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// AnomalyScore applies equality check predicate on the "anomaly_score" field. It's identical to AnomalyScoreEQ.
func AnomalyScore(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAnomalyScore, v))
}

// ConsecutiveAnomalousReadings applies equality check predicate on the "consecutive_anomalous_readings" field. It's identical to ConsecutiveAnomalousReadingsEQ.
func ConsecutiveAnomalousReadings(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveAnomalousReadings, v))
}

// WorkspaceDir applies equality check predicate on the "workspace_dir" field. It's identical to WorkspaceDirEQ.
func WorkspaceDir(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkspaceDir, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConversationID, v))
}

// PersistenceDir applies equality check predicate on the "persistence_dir" field. It's identical to PersistenceDirEQ.
func PersistenceDir(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersistenceDir, v))
}

// LastIdleSince applies equality check predicate on the "last_idle_since" field. It's identical to LastIdleSinceEQ.
func LastIdleSince(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastIdleSince, v))
}

// LastQuarantinedAt applies equality check predicate on the "last_quarantined_at" field. It's identical to LastQuarantinedAtEQ.
func LastQuarantinedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastQuarantinedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAgentType, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDIsNil applies the IsNil predicate on the "phase_id" field.
func PhaseIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPhaseID))
}

// PhaseIDNotNil applies the NotNil predicate on the "phase_id" field.
func PhaseIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPhaseID))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldPhaseID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCapabilities))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastHeartbeat))
}

// AnomalyScoreEQ applies the EQ predicate on the "anomaly_score" field.
func AnomalyScoreEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAnomalyScore, v))
}

// AnomalyScoreNEQ applies the NEQ predicate on the "anomaly_score" field.
func AnomalyScoreNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAnomalyScore, v))
}

// AnomalyScoreIn applies the In predicate on the "anomaly_score" field.
func AnomalyScoreIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAnomalyScore, vs...))
}

// AnomalyScoreNotIn applies the NotIn predicate on the "anomaly_score" field.
func AnomalyScoreNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAnomalyScore, vs...))
}

// AnomalyScoreGT applies the GT predicate on the "anomaly_score" field.
func AnomalyScoreGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAnomalyScore, v))
}

// AnomalyScoreGTE applies the GTE predicate on the "anomaly_score" field.
func AnomalyScoreGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAnomalyScore, v))
}

// AnomalyScoreLT applies the LT predicate on the "anomaly_score" field.
func AnomalyScoreLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAnomalyScore, v))
}

// AnomalyScoreLTE applies the LTE predicate on the "anomaly_score" field.
func AnomalyScoreLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAnomalyScore, v))
}

// ConsecutiveAnomalousReadingsEQ applies the EQ predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsNEQ applies the NEQ predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsIn applies the In predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldConsecutiveAnomalousReadings, vs...))
}

// ConsecutiveAnomalousReadingsNotIn applies the NotIn predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldConsecutiveAnomalousReadings, vs...))
}

// ConsecutiveAnomalousReadingsGT applies the GT predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsGTE applies the GTE predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsLT applies the LT predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsLTE applies the LTE predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldConsecutiveAnomalousReadings, v))
}

// WorkspaceDirEQ applies the EQ predicate on the "workspace_dir" field.
func WorkspaceDirEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirNEQ applies the NEQ predicate on the "workspace_dir" field.
func WorkspaceDirNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirIn applies the In predicate on the "workspace_dir" field.
func WorkspaceDirIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirNotIn applies the NotIn predicate on the "workspace_dir" field.
func WorkspaceDirNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirGT applies the GT predicate on the "workspace_dir" field.
func WorkspaceDirGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldWorkspaceDir, v))
}

// WorkspaceDirGTE applies the GTE predicate on the "workspace_dir" field.
func WorkspaceDirGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldWorkspaceDir, v))
}

// WorkspaceDirLT applies the LT predicate on the "workspace_dir" field.
func WorkspaceDirLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldWorkspaceDir, v))
}

// WorkspaceDirLTE applies the LTE predicate on the "workspace_dir" field.
func WorkspaceDirLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldWorkspaceDir, v))
}

// WorkspaceDirContains applies the Contains predicate on the "workspace_dir" field.
func WorkspaceDirContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldWorkspaceDir, v))
}

// WorkspaceDirHasPrefix applies the HasPrefix predicate on the "workspace_dir" field.
func WorkspaceDirHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldWorkspaceDir, v))
}

// WorkspaceDirHasSuffix applies the HasSuffix predicate on the "workspace_dir" field.
func WorkspaceDirHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldWorkspaceDir, v))
}

// WorkspaceDirIsNil applies the IsNil predicate on the "workspace_dir" field.
func WorkspaceDirIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldWorkspaceDir))
}

// WorkspaceDirNotNil applies the NotNil predicate on the "workspace_dir" field.
func WorkspaceDirNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldWorkspaceDir))
}

// WorkspaceDirEqualFold applies the EqualFold predicate on the "workspace_dir" field.
func WorkspaceDirEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldWorkspaceDir, v))
}

// WorkspaceDirContainsFold applies the ContainsFold predicate on the "workspace_dir" field.
func WorkspaceDirContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldWorkspaceDir, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldConversationID, v))
}

// PersistenceDirEQ applies the EQ predicate on the "persistence_dir" field.
func PersistenceDirEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersistenceDir, v))
}

// PersistenceDirNEQ applies the NEQ predicate on the "persistence_dir" field.
func PersistenceDirNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPersistenceDir, v))
}

// PersistenceDirIn applies the In predicate on the "persistence_dir" field.
func PersistenceDirIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPersistenceDir, vs...))
}

// PersistenceDirNotIn applies the NotIn predicate on the "persistence_dir" field.
func PersistenceDirNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPersistenceDir, vs...))
}

// PersistenceDirGT applies the GT predicate on the "persistence_dir" field.
func PersistenceDirGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPersistenceDir, v))
}

// PersistenceDirGTE applies the GTE predicate on the "persistence_dir" field.
func PersistenceDirGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPersistenceDir, v))
}

// PersistenceDirLT applies the LT predicate on the "persistence_dir" field.
func PersistenceDirLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPersistenceDir, v))
}

// PersistenceDirLTE applies the LTE predicate on the "persistence_dir" field.
func PersistenceDirLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPersistenceDir, v))
}

// PersistenceDirContains applies the Contains predicate on the "persistence_dir" field.
func PersistenceDirContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldPersistenceDir, v))
}

// PersistenceDirHasPrefix applies the HasPrefix predicate on the "persistence_dir" field.
func PersistenceDirHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldPersistenceDir, v))
}

// PersistenceDirHasSuffix applies the HasSuffix predicate on the "persistence_dir" field.
func PersistenceDirHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldPersistenceDir, v))
}

// PersistenceDirIsNil applies the IsNil predicate on the "persistence_dir" field.
func PersistenceDirIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPersistenceDir))
}

// PersistenceDirNotNil applies the NotNil predicate on the "persistence_dir" field.
func PersistenceDirNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPersistenceDir))
}

// PersistenceDirEqualFold applies the EqualFold predicate on the "persistence_dir" field.
func PersistenceDirEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldPersistenceDir, v))
}

// PersistenceDirContainsFold applies the ContainsFold predicate on the "persistence_dir" field.
func PersistenceDirContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldPersistenceDir, v))
}

// LastIdleSinceEQ applies the EQ predicate on the "last_idle_since" field.
func LastIdleSinceEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastIdleSince, v))
}

// LastIdleSinceNEQ applies the NEQ predicate on the "last_idle_since" field.
func LastIdleSinceNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastIdleSince, v))
}

// LastIdleSinceIn applies the In predicate on the "last_idle_since" field.
func LastIdleSinceIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastIdleSince, vs...))
}

// LastIdleSinceNotIn applies the NotIn predicate on the "last_idle_since" field.
func LastIdleSinceNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastIdleSince, vs...))
}

// LastIdleSinceGT applies the GT predicate on the "last_idle_since" field.
func LastIdleSinceGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastIdleSince, v))
}

// LastIdleSinceGTE applies the GTE predicate on the "last_idle_since" field.
func LastIdleSinceGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastIdleSince, v))
}

// LastIdleSinceLT applies the LT predicate on the "last_idle_since" field.
func LastIdleSinceLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastIdleSince, v))
}

// LastIdleSinceLTE applies the LTE predicate on the "last_idle_since" field.
func LastIdleSinceLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastIdleSince, v))
}

// LastIdleSinceIsNil applies the IsNil predicate on the "last_idle_since" field.
func LastIdleSinceIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastIdleSince))
}

// LastIdleSinceNotNil applies the NotNil predicate on the "last_idle_since" field.
func LastIdleSinceNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastIdleSince))
}

// LastQuarantinedAtEQ applies the EQ predicate on the "last_quarantined_at" field.
func LastQuarantinedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtNEQ applies the NEQ predicate on the "last_quarantined_at" field.
func LastQuarantinedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtIn applies the In predicate on the "last_quarantined_at" field.
func LastQuarantinedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastQuarantinedAt, vs...))
}

// LastQuarantinedAtNotIn applies the NotIn predicate on the "last_quarantined_at" field.
func LastQuarantinedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastQuarantinedAt, vs...))
}

// LastQuarantinedAtGT applies the GT predicate on the "last_quarantined_at" field.
func LastQuarantinedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtGTE applies the GTE predicate on the "last_quarantined_at" field.
func LastQuarantinedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtLT applies the LT predicate on the "last_quarantined_at" field.
func LastQuarantinedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtLTE applies the LTE predicate on the "last_quarantined_at" field.
func LastQuarantinedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastQuarantinedAt, v))
}

// LastQuarantinedAtIsNil applies the IsNil predicate on the "last_quarantined_at" field.
func LastQuarantinedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastQuarantinedAt))
}

// LastQuarantinedAtNotNil applies the NotNil predicate on the "last_quarantined_at" field.
func LastQuarantinedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastQuarantinedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}

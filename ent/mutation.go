// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/ent/agentmessage"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/event"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/ent/predicate"
	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/ent/ticket"
	"github.com/omoi-os/omoios/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent               = "Agent"
	TypeAgentBaseline       = "AgentBaseline"
	TypeAgentMessage        = "AgentMessage"
	TypeCollaborationThread = "CollaborationThread"
	TypeEvent               = "Event"
	TypeMonitorAnomaly      = "MonitorAnomaly"
	TypeResourceLock        = "ResourceLock"
	TypeTask                = "Task"
	TypeTicket              = "Ticket"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                                Op
	typ                               string
	id                                *string
	agent_type                        *string
	phase_id                          *string
	status                            *agent.Status
	capabilities                      *[]string
	appendcapabilities                []string
	last_heartbeat                    *time.Time
	anomaly_score                     *float64
	addanomaly_score                  *float64
	consecutive_anomalous_readings    *int
	addconsecutive_anomalous_readings *int
	workspace_dir                     *string
	conversation_id                   *string
	persistence_dir                   *string
	last_idle_since                   *time.Time
	last_quarantined_at               *time.Time
	created_at                        *time.Time
	updated_at                        *time.Time
	clearedFields                     map[string]struct{}
	done                              bool
	oldValue                          func(context.Context) (*Agent, error)
	predicates                        []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *AgentMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *AgentMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPhaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ClearPhaseID clears the value of the "phase_id" field.
func (m *AgentMutation) ClearPhaseID() {
	m.phase_id = nil
	m.clearedFields[agent.FieldPhaseID] = struct{}{}
}

// PhaseIDCleared returns if the "phase_id" field was cleared in this mutation.
func (m *AgentMutation) PhaseIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPhaseID]
	return ok
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *AgentMutation) ResetPhaseID() {
	m.phase_id = nil
	delete(m.clearedFields, agent.FieldPhaseID)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agent.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agent.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agent.FieldCapabilities)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *AgentMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *AgentMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *AgentMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[agent.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *AgentMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, agent.FieldLastHeartbeat)
}

// SetAnomalyScore sets the "anomaly_score" field.
func (m *AgentMutation) SetAnomalyScore(f float64) {
	m.anomaly_score = &f
	m.addanomaly_score = nil
}

// AnomalyScore returns the value of the "anomaly_score" field in the mutation.
func (m *AgentMutation) AnomalyScore() (r float64, exists bool) {
	v := m.anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyScore returns the old "anomaly_score" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAnomalyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyScore: %w", err)
	}
	return oldValue.AnomalyScore, nil
}

// AddAnomalyScore adds f to the "anomaly_score" field.
func (m *AgentMutation) AddAnomalyScore(f float64) {
	if m.addanomaly_score != nil {
		*m.addanomaly_score += f
	} else {
		m.addanomaly_score = &f
	}
}

// AddedAnomalyScore returns the value that was added to the "anomaly_score" field in this mutation.
func (m *AgentMutation) AddedAnomalyScore() (r float64, exists bool) {
	v := m.addanomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnomalyScore resets all changes to the "anomaly_score" field.
func (m *AgentMutation) ResetAnomalyScore() {
	m.anomaly_score = nil
	m.addanomaly_score = nil
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (m *AgentMutation) SetConsecutiveAnomalousReadings(i int) {
	m.consecutive_anomalous_readings = &i
	m.addconsecutive_anomalous_readings = nil
}

// ConsecutiveAnomalousReadings returns the value of the "consecutive_anomalous_readings" field in the mutation.
func (m *AgentMutation) ConsecutiveAnomalousReadings() (r int, exists bool) {
	v := m.consecutive_anomalous_readings
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveAnomalousReadings returns the old "consecutive_anomalous_readings" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConsecutiveAnomalousReadings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveAnomalousReadings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveAnomalousReadings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveAnomalousReadings: %w", err)
	}
	return oldValue.ConsecutiveAnomalousReadings, nil
}

// AddConsecutiveAnomalousReadings adds i to the "consecutive_anomalous_readings" field.
func (m *AgentMutation) AddConsecutiveAnomalousReadings(i int) {
	if m.addconsecutive_anomalous_readings != nil {
		*m.addconsecutive_anomalous_readings += i
	} else {
		m.addconsecutive_anomalous_readings = &i
	}
}

// AddedConsecutiveAnomalousReadings returns the value that was added to the "consecutive_anomalous_readings" field in this mutation.
func (m *AgentMutation) AddedConsecutiveAnomalousReadings() (r int, exists bool) {
	v := m.addconsecutive_anomalous_readings
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveAnomalousReadings resets all changes to the "consecutive_anomalous_readings" field.
func (m *AgentMutation) ResetConsecutiveAnomalousReadings() {
	m.consecutive_anomalous_readings = nil
	m.addconsecutive_anomalous_readings = nil
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (m *AgentMutation) SetWorkspaceDir(s string) {
	m.workspace_dir = &s
}

// WorkspaceDir returns the value of the "workspace_dir" field in the mutation.
func (m *AgentMutation) WorkspaceDir() (r string, exists bool) {
	v := m.workspace_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceDir returns the old "workspace_dir" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWorkspaceDir(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceDir: %w", err)
	}
	return oldValue.WorkspaceDir, nil
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (m *AgentMutation) ClearWorkspaceDir() {
	m.workspace_dir = nil
	m.clearedFields[agent.FieldWorkspaceDir] = struct{}{}
}

// WorkspaceDirCleared returns if the "workspace_dir" field was cleared in this mutation.
func (m *AgentMutation) WorkspaceDirCleared() bool {
	_, ok := m.clearedFields[agent.FieldWorkspaceDir]
	return ok
}

// ResetWorkspaceDir resets all changes to the "workspace_dir" field.
func (m *AgentMutation) ResetWorkspaceDir() {
	m.workspace_dir = nil
	delete(m.clearedFields, agent.FieldWorkspaceDir)
}

// SetConversationID sets the "conversation_id" field.
func (m *AgentMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *AgentMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *AgentMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[agent.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *AgentMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *AgentMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, agent.FieldConversationID)
}

// SetPersistenceDir sets the "persistence_dir" field.
func (m *AgentMutation) SetPersistenceDir(s string) {
	m.persistence_dir = &s
}

// PersistenceDir returns the value of the "persistence_dir" field in the mutation.
func (m *AgentMutation) PersistenceDir() (r string, exists bool) {
	v := m.persistence_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldPersistenceDir returns the old "persistence_dir" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPersistenceDir(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersistenceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersistenceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersistenceDir: %w", err)
	}
	return oldValue.PersistenceDir, nil
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (m *AgentMutation) ClearPersistenceDir() {
	m.persistence_dir = nil
	m.clearedFields[agent.FieldPersistenceDir] = struct{}{}
}

// PersistenceDirCleared returns if the "persistence_dir" field was cleared in this mutation.
func (m *AgentMutation) PersistenceDirCleared() bool {
	_, ok := m.clearedFields[agent.FieldPersistenceDir]
	return ok
}

// ResetPersistenceDir resets all changes to the "persistence_dir" field.
func (m *AgentMutation) ResetPersistenceDir() {
	m.persistence_dir = nil
	delete(m.clearedFields, agent.FieldPersistenceDir)
}

// SetLastIdleSince sets the "last_idle_since" field.
func (m *AgentMutation) SetLastIdleSince(t time.Time) {
	m.last_idle_since = &t
}

// LastIdleSince returns the value of the "last_idle_since" field in the mutation.
func (m *AgentMutation) LastIdleSince() (r time.Time, exists bool) {
	v := m.last_idle_since
	if v == nil {
		return
	}
	return *v, true
}

// OldLastIdleSince returns the old "last_idle_since" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastIdleSince(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastIdleSince is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastIdleSince requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastIdleSince: %w", err)
	}
	return oldValue.LastIdleSince, nil
}

// ClearLastIdleSince clears the value of the "last_idle_since" field.
func (m *AgentMutation) ClearLastIdleSince() {
	m.last_idle_since = nil
	m.clearedFields[agent.FieldLastIdleSince] = struct{}{}
}

// LastIdleSinceCleared returns if the "last_idle_since" field was cleared in this mutation.
func (m *AgentMutation) LastIdleSinceCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastIdleSince]
	return ok
}

// ResetLastIdleSince resets all changes to the "last_idle_since" field.
func (m *AgentMutation) ResetLastIdleSince() {
	m.last_idle_since = nil
	delete(m.clearedFields, agent.FieldLastIdleSince)
}

// SetLastQuarantinedAt sets the "last_quarantined_at" field.
func (m *AgentMutation) SetLastQuarantinedAt(t time.Time) {
	m.last_quarantined_at = &t
}

// LastQuarantinedAt returns the value of the "last_quarantined_at" field in the mutation.
func (m *AgentMutation) LastQuarantinedAt() (r time.Time, exists bool) {
	v := m.last_quarantined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastQuarantinedAt returns the old "last_quarantined_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastQuarantinedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastQuarantinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastQuarantinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastQuarantinedAt: %w", err)
	}
	return oldValue.LastQuarantinedAt, nil
}

// ClearLastQuarantinedAt clears the value of the "last_quarantined_at" field.
func (m *AgentMutation) ClearLastQuarantinedAt() {
	m.last_quarantined_at = nil
	m.clearedFields[agent.FieldLastQuarantinedAt] = struct{}{}
}

// LastQuarantinedAtCleared returns if the "last_quarantined_at" field was cleared in this mutation.
func (m *AgentMutation) LastQuarantinedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastQuarantinedAt]
	return ok
}

// ResetLastQuarantinedAt resets all changes to the "last_quarantined_at" field.
func (m *AgentMutation) ResetLastQuarantinedAt() {
	m.last_quarantined_at = nil
	delete(m.clearedFields, agent.FieldLastQuarantinedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.agent_type != nil {
		fields = append(fields, agent.FieldAgentType)
	}
	if m.phase_id != nil {
		fields = append(fields, agent.FieldPhaseID)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.anomaly_score != nil {
		fields = append(fields, agent.FieldAnomalyScore)
	}
	if m.consecutive_anomalous_readings != nil {
		fields = append(fields, agent.FieldConsecutiveAnomalousReadings)
	}
	if m.workspace_dir != nil {
		fields = append(fields, agent.FieldWorkspaceDir)
	}
	if m.conversation_id != nil {
		fields = append(fields, agent.FieldConversationID)
	}
	if m.persistence_dir != nil {
		fields = append(fields, agent.FieldPersistenceDir)
	}
	if m.last_idle_since != nil {
		fields = append(fields, agent.FieldLastIdleSince)
	}
	if m.last_quarantined_at != nil {
		fields = append(fields, agent.FieldLastQuarantinedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentType:
		return m.AgentType()
	case agent.FieldPhaseID:
		return m.PhaseID()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case agent.FieldAnomalyScore:
		return m.AnomalyScore()
	case agent.FieldConsecutiveAnomalousReadings:
		return m.ConsecutiveAnomalousReadings()
	case agent.FieldWorkspaceDir:
		return m.WorkspaceDir()
	case agent.FieldConversationID:
		return m.ConversationID()
	case agent.FieldPersistenceDir:
		return m.PersistenceDir()
	case agent.FieldLastIdleSince:
		return m.LastIdleSince()
	case agent.FieldLastQuarantinedAt:
		return m.LastQuarantinedAt()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentType:
		return m.OldAgentType(ctx)
	case agent.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case agent.FieldAnomalyScore:
		return m.OldAnomalyScore(ctx)
	case agent.FieldConsecutiveAnomalousReadings:
		return m.OldConsecutiveAnomalousReadings(ctx)
	case agent.FieldWorkspaceDir:
		return m.OldWorkspaceDir(ctx)
	case agent.FieldConversationID:
		return m.OldConversationID(ctx)
	case agent.FieldPersistenceDir:
		return m.OldPersistenceDir(ctx)
	case agent.FieldLastIdleSince:
		return m.OldLastIdleSince(ctx)
	case agent.FieldLastQuarantinedAt:
		return m.OldLastQuarantinedAt(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agent.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case agent.FieldAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyScore(v)
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveAnomalousReadings(v)
		return nil
	case agent.FieldWorkspaceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceDir(v)
		return nil
	case agent.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case agent.FieldPersistenceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersistenceDir(v)
		return nil
	case agent.FieldLastIdleSince:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastIdleSince(v)
		return nil
	case agent.FieldLastQuarantinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastQuarantinedAt(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addanomaly_score != nil {
		fields = append(fields, agent.FieldAnomalyScore)
	}
	if m.addconsecutive_anomalous_readings != nil {
		fields = append(fields, agent.FieldConsecutiveAnomalousReadings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAnomalyScore:
		return m.AddedAnomalyScore()
	case agent.FieldConsecutiveAnomalousReadings:
		return m.AddedConsecutiveAnomalousReadings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnomalyScore(v)
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveAnomalousReadings(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldPhaseID) {
		fields = append(fields, agent.FieldPhaseID)
	}
	if m.FieldCleared(agent.FieldCapabilities) {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.FieldCleared(agent.FieldLastHeartbeat) {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.FieldCleared(agent.FieldWorkspaceDir) {
		fields = append(fields, agent.FieldWorkspaceDir)
	}
	if m.FieldCleared(agent.FieldConversationID) {
		fields = append(fields, agent.FieldConversationID)
	}
	if m.FieldCleared(agent.FieldPersistenceDir) {
		fields = append(fields, agent.FieldPersistenceDir)
	}
	if m.FieldCleared(agent.FieldLastIdleSince) {
		fields = append(fields, agent.FieldLastIdleSince)
	}
	if m.FieldCleared(agent.FieldLastQuarantinedAt) {
		fields = append(fields, agent.FieldLastQuarantinedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldPhaseID:
		m.ClearPhaseID()
		return nil
	case agent.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agent.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case agent.FieldWorkspaceDir:
		m.ClearWorkspaceDir()
		return nil
	case agent.FieldConversationID:
		m.ClearConversationID()
		return nil
	case agent.FieldPersistenceDir:
		m.ClearPersistenceDir()
		return nil
	case agent.FieldLastIdleSince:
		m.ClearLastIdleSince()
		return nil
	case agent.FieldLastQuarantinedAt:
		m.ClearLastQuarantinedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agent.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case agent.FieldAnomalyScore:
		m.ResetAnomalyScore()
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		m.ResetConsecutiveAnomalousReadings()
		return nil
	case agent.FieldWorkspaceDir:
		m.ResetWorkspaceDir()
		return nil
	case agent.FieldConversationID:
		m.ResetConversationID()
		return nil
	case agent.FieldPersistenceDir:
		m.ResetPersistenceDir()
		return nil
	case agent.FieldLastIdleSince:
		m.ResetLastIdleSince()
		return nil
	case agent.FieldLastQuarantinedAt:
		m.ResetLastQuarantinedAt()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentBaselineMutation represents an operation that mutates the AgentBaseline nodes in the graph.
type AgentBaselineMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_type           *string
	phase_id             *string
	latency_ms           *float64
	addlatency_ms        *float64
	latency_std          *float64
	addlatency_std       *float64
	error_rate           *float64
	adderror_rate        *float64
	cpu_usage_percent    *float64
	addcpu_usage_percent *float64
	memory_usage_mb      *float64
	addmemory_usage_mb   *float64
	additional_metrics   *map[string]float64
	sample_count         *int
	addsample_count      *int
	last_updated         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AgentBaseline, error)
	predicates           []predicate.AgentBaseline
}

var _ ent.Mutation = (*AgentBaselineMutation)(nil)

// agentbaselineOption allows management of the mutation configuration using functional options.
type agentbaselineOption func(*AgentBaselineMutation)

// newAgentBaselineMutation creates new mutation for the AgentBaseline entity.
func newAgentBaselineMutation(c config, op Op, opts ...agentbaselineOption) *AgentBaselineMutation {
	m := &AgentBaselineMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentBaseline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentBaselineID sets the ID field of the mutation.
func withAgentBaselineID(id string) agentbaselineOption {
	return func(m *AgentBaselineMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentBaseline
		)
		m.oldValue = func(ctx context.Context) (*AgentBaseline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentBaseline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentBaseline sets the old AgentBaseline of the mutation.
func withAgentBaseline(node *AgentBaseline) agentbaselineOption {
	return func(m *AgentBaselineMutation) {
		m.oldValue = func(context.Context) (*AgentBaseline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentBaselineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentBaselineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentBaseline entities.
func (m *AgentBaselineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentBaselineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentBaselineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentBaseline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentBaselineMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentBaselineMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentBaselineMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *AgentBaselineMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *AgentBaselineMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *AgentBaselineMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AgentBaselineMutation) SetLatencyMs(f float64) {
	m.latency_ms = &f
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AgentBaselineMutation) LatencyMs() (r float64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds f to the "latency_ms" field.
func (m *AgentBaselineMutation) AddLatencyMs(f float64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += f
	} else {
		m.addlatency_ms = &f
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AgentBaselineMutation) AddedLatencyMs() (r float64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AgentBaselineMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetLatencyStd sets the "latency_std" field.
func (m *AgentBaselineMutation) SetLatencyStd(f float64) {
	m.latency_std = &f
	m.addlatency_std = nil
}

// LatencyStd returns the value of the "latency_std" field in the mutation.
func (m *AgentBaselineMutation) LatencyStd() (r float64, exists bool) {
	v := m.latency_std
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyStd returns the old "latency_std" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldLatencyStd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyStd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyStd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyStd: %w", err)
	}
	return oldValue.LatencyStd, nil
}

// AddLatencyStd adds f to the "latency_std" field.
func (m *AgentBaselineMutation) AddLatencyStd(f float64) {
	if m.addlatency_std != nil {
		*m.addlatency_std += f
	} else {
		m.addlatency_std = &f
	}
}

// AddedLatencyStd returns the value that was added to the "latency_std" field in this mutation.
func (m *AgentBaselineMutation) AddedLatencyStd() (r float64, exists bool) {
	v := m.addlatency_std
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyStd resets all changes to the "latency_std" field.
func (m *AgentBaselineMutation) ResetLatencyStd() {
	m.latency_std = nil
	m.addlatency_std = nil
}

// SetErrorRate sets the "error_rate" field.
func (m *AgentBaselineMutation) SetErrorRate(f float64) {
	m.error_rate = &f
	m.adderror_rate = nil
}

// ErrorRate returns the value of the "error_rate" field in the mutation.
func (m *AgentBaselineMutation) ErrorRate() (r float64, exists bool) {
	v := m.error_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRate returns the old "error_rate" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldErrorRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRate: %w", err)
	}
	return oldValue.ErrorRate, nil
}

// AddErrorRate adds f to the "error_rate" field.
func (m *AgentBaselineMutation) AddErrorRate(f float64) {
	if m.adderror_rate != nil {
		*m.adderror_rate += f
	} else {
		m.adderror_rate = &f
	}
}

// AddedErrorRate returns the value that was added to the "error_rate" field in this mutation.
func (m *AgentBaselineMutation) AddedErrorRate() (r float64, exists bool) {
	v := m.adderror_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRate resets all changes to the "error_rate" field.
func (m *AgentBaselineMutation) ResetErrorRate() {
	m.error_rate = nil
	m.adderror_rate = nil
}

// SetCPUUsagePercent sets the "cpu_usage_percent" field.
func (m *AgentBaselineMutation) SetCPUUsagePercent(f float64) {
	m.cpu_usage_percent = &f
	m.addcpu_usage_percent = nil
}

// CPUUsagePercent returns the value of the "cpu_usage_percent" field in the mutation.
func (m *AgentBaselineMutation) CPUUsagePercent() (r float64, exists bool) {
	v := m.cpu_usage_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUUsagePercent returns the old "cpu_usage_percent" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldCPUUsagePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUUsagePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUUsagePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUUsagePercent: %w", err)
	}
	return oldValue.CPUUsagePercent, nil
}

// AddCPUUsagePercent adds f to the "cpu_usage_percent" field.
func (m *AgentBaselineMutation) AddCPUUsagePercent(f float64) {
	if m.addcpu_usage_percent != nil {
		*m.addcpu_usage_percent += f
	} else {
		m.addcpu_usage_percent = &f
	}
}

// AddedCPUUsagePercent returns the value that was added to the "cpu_usage_percent" field in this mutation.
func (m *AgentBaselineMutation) AddedCPUUsagePercent() (r float64, exists bool) {
	v := m.addcpu_usage_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUUsagePercent resets all changes to the "cpu_usage_percent" field.
func (m *AgentBaselineMutation) ResetCPUUsagePercent() {
	m.cpu_usage_percent = nil
	m.addcpu_usage_percent = nil
}

// SetMemoryUsageMB sets the "memory_usage_mb" field.
func (m *AgentBaselineMutation) SetMemoryUsageMB(f float64) {
	m.memory_usage_mb = &f
	m.addmemory_usage_mb = nil
}

// MemoryUsageMB returns the value of the "memory_usage_mb" field in the mutation.
func (m *AgentBaselineMutation) MemoryUsageMB() (r float64, exists bool) {
	v := m.memory_usage_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryUsageMB returns the old "memory_usage_mb" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldMemoryUsageMB(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryUsageMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryUsageMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryUsageMB: %w", err)
	}
	return oldValue.MemoryUsageMB, nil
}

// AddMemoryUsageMB adds f to the "memory_usage_mb" field.
func (m *AgentBaselineMutation) AddMemoryUsageMB(f float64) {
	if m.addmemory_usage_mb != nil {
		*m.addmemory_usage_mb += f
	} else {
		m.addmemory_usage_mb = &f
	}
}

// AddedMemoryUsageMB returns the value that was added to the "memory_usage_mb" field in this mutation.
func (m *AgentBaselineMutation) AddedMemoryUsageMB() (r float64, exists bool) {
	v := m.addmemory_usage_mb
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryUsageMB resets all changes to the "memory_usage_mb" field.
func (m *AgentBaselineMutation) ResetMemoryUsageMB() {
	m.memory_usage_mb = nil
	m.addmemory_usage_mb = nil
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (m *AgentBaselineMutation) SetAdditionalMetrics(value map[string]float64) {
	m.additional_metrics = &value
}

// AdditionalMetrics returns the value of the "additional_metrics" field in the mutation.
func (m *AgentBaselineMutation) AdditionalMetrics() (r map[string]float64, exists bool) {
	v := m.additional_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalMetrics returns the old "additional_metrics" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldAdditionalMetrics(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalMetrics: %w", err)
	}
	return oldValue.AdditionalMetrics, nil
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (m *AgentBaselineMutation) ClearAdditionalMetrics() {
	m.additional_metrics = nil
	m.clearedFields[agentbaseline.FieldAdditionalMetrics] = struct{}{}
}

// AdditionalMetricsCleared returns if the "additional_metrics" field was cleared in this mutation.
func (m *AgentBaselineMutation) AdditionalMetricsCleared() bool {
	_, ok := m.clearedFields[agentbaseline.FieldAdditionalMetrics]
	return ok
}

// ResetAdditionalMetrics resets all changes to the "additional_metrics" field.
func (m *AgentBaselineMutation) ResetAdditionalMetrics() {
	m.additional_metrics = nil
	delete(m.clearedFields, agentbaseline.FieldAdditionalMetrics)
}

// SetSampleCount sets the "sample_count" field.
func (m *AgentBaselineMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *AgentBaselineMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *AgentBaselineMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *AgentBaselineMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *AgentBaselineMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *AgentBaselineMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *AgentBaselineMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *AgentBaselineMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the AgentBaselineMutation builder.
func (m *AgentBaselineMutation) Where(ps ...predicate.AgentBaseline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentBaselineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentBaselineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentBaseline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentBaselineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentBaselineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentBaseline).
func (m *AgentBaselineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentBaselineMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent_type != nil {
		fields = append(fields, agentbaseline.FieldAgentType)
	}
	if m.phase_id != nil {
		fields = append(fields, agentbaseline.FieldPhaseID)
	}
	if m.latency_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyMs)
	}
	if m.latency_std != nil {
		fields = append(fields, agentbaseline.FieldLatencyStd)
	}
	if m.error_rate != nil {
		fields = append(fields, agentbaseline.FieldErrorRate)
	}
	if m.cpu_usage_percent != nil {
		fields = append(fields, agentbaseline.FieldCPUUsagePercent)
	}
	if m.memory_usage_mb != nil {
		fields = append(fields, agentbaseline.FieldMemoryUsageMB)
	}
	if m.additional_metrics != nil {
		fields = append(fields, agentbaseline.FieldAdditionalMetrics)
	}
	if m.sample_count != nil {
		fields = append(fields, agentbaseline.FieldSampleCount)
	}
	if m.last_updated != nil {
		fields = append(fields, agentbaseline.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentBaselineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentbaseline.FieldAgentType:
		return m.AgentType()
	case agentbaseline.FieldPhaseID:
		return m.PhaseID()
	case agentbaseline.FieldLatencyMs:
		return m.LatencyMs()
	case agentbaseline.FieldLatencyStd:
		return m.LatencyStd()
	case agentbaseline.FieldErrorRate:
		return m.ErrorRate()
	case agentbaseline.FieldCPUUsagePercent:
		return m.CPUUsagePercent()
	case agentbaseline.FieldMemoryUsageMB:
		return m.MemoryUsageMB()
	case agentbaseline.FieldAdditionalMetrics:
		return m.AdditionalMetrics()
	case agentbaseline.FieldSampleCount:
		return m.SampleCount()
	case agentbaseline.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentBaselineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentbaseline.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentbaseline.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case agentbaseline.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case agentbaseline.FieldLatencyStd:
		return m.OldLatencyStd(ctx)
	case agentbaseline.FieldErrorRate:
		return m.OldErrorRate(ctx)
	case agentbaseline.FieldCPUUsagePercent:
		return m.OldCPUUsagePercent(ctx)
	case agentbaseline.FieldMemoryUsageMB:
		return m.OldMemoryUsageMB(ctx)
	case agentbaseline.FieldAdditionalMetrics:
		return m.OldAdditionalMetrics(ctx)
	case agentbaseline.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case agentbaseline.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown AgentBaseline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentBaselineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentbaseline.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentbaseline.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case agentbaseline.FieldLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case agentbaseline.FieldLatencyStd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyStd(v)
		return nil
	case agentbaseline.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRate(v)
		return nil
	case agentbaseline.FieldCPUUsagePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUUsagePercent(v)
		return nil
	case agentbaseline.FieldMemoryUsageMB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryUsageMB(v)
		return nil
	case agentbaseline.FieldAdditionalMetrics:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalMetrics(v)
		return nil
	case agentbaseline.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case agentbaseline.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentBaselineMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyMs)
	}
	if m.addlatency_std != nil {
		fields = append(fields, agentbaseline.FieldLatencyStd)
	}
	if m.adderror_rate != nil {
		fields = append(fields, agentbaseline.FieldErrorRate)
	}
	if m.addcpu_usage_percent != nil {
		fields = append(fields, agentbaseline.FieldCPUUsagePercent)
	}
	if m.addmemory_usage_mb != nil {
		fields = append(fields, agentbaseline.FieldMemoryUsageMB)
	}
	if m.addsample_count != nil {
		fields = append(fields, agentbaseline.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentBaselineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentbaseline.FieldLatencyMs:
		return m.AddedLatencyMs()
	case agentbaseline.FieldLatencyStd:
		return m.AddedLatencyStd()
	case agentbaseline.FieldErrorRate:
		return m.AddedErrorRate()
	case agentbaseline.FieldCPUUsagePercent:
		return m.AddedCPUUsagePercent()
	case agentbaseline.FieldMemoryUsageMB:
		return m.AddedMemoryUsageMB()
	case agentbaseline.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentBaselineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentbaseline.FieldLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case agentbaseline.FieldLatencyStd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyStd(v)
		return nil
	case agentbaseline.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRate(v)
		return nil
	case agentbaseline.FieldCPUUsagePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUUsagePercent(v)
		return nil
	case agentbaseline.FieldMemoryUsageMB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryUsageMB(v)
		return nil
	case agentbaseline.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentBaselineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentbaseline.FieldAdditionalMetrics) {
		fields = append(fields, agentbaseline.FieldAdditionalMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentBaselineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentBaselineMutation) ClearField(name string) error {
	switch name {
	case agentbaseline.FieldAdditionalMetrics:
		m.ClearAdditionalMetrics()
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentBaselineMutation) ResetField(name string) error {
	switch name {
	case agentbaseline.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentbaseline.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case agentbaseline.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case agentbaseline.FieldLatencyStd:
		m.ResetLatencyStd()
		return nil
	case agentbaseline.FieldErrorRate:
		m.ResetErrorRate()
		return nil
	case agentbaseline.FieldCPUUsagePercent:
		m.ResetCPUUsagePercent()
		return nil
	case agentbaseline.FieldMemoryUsageMB:
		m.ResetMemoryUsageMB()
		return nil
	case agentbaseline.FieldAdditionalMetrics:
		m.ResetAdditionalMetrics()
		return nil
	case agentbaseline.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case agentbaseline.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentBaselineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentBaselineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentBaselineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentBaselineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentBaselineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentBaselineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentBaselineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentBaseline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentBaselineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentBaseline edge %s", name)
}

// AgentMessageMutation represents an operation that mutates the AgentMessage nodes in the graph.
type AgentMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	from_agent_id *string
	to_agent_id   *string
	message_type  *string
	content       *string
	metadata      *map[string]interface{}
	read_at       *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	thread        *string
	clearedthread bool
	done          bool
	oldValue      func(context.Context) (*AgentMessage, error)
	predicates    []predicate.AgentMessage
}

var _ ent.Mutation = (*AgentMessageMutation)(nil)

// agentmessageOption allows management of the mutation configuration using functional options.
type agentmessageOption func(*AgentMessageMutation)

// newAgentMessageMutation creates new mutation for the AgentMessage entity.
func newAgentMessageMutation(c config, op Op, opts ...agentmessageOption) *AgentMessageMutation {
	m := &AgentMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMessageID sets the ID field of the mutation.
func withAgentMessageID(id string) agentmessageOption {
	return func(m *AgentMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMessage
		)
		m.oldValue = func(ctx context.Context) (*AgentMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMessage sets the old AgentMessage of the mutation.
func withAgentMessage(node *AgentMessage) agentmessageOption {
	return func(m *AgentMessageMutation) {
		m.oldValue = func(context.Context) (*AgentMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentMessage entities.
func (m *AgentMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *AgentMessageMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *AgentMessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *AgentMessageMutation) ResetThreadID() {
	m.thread = nil
}

// SetFromAgentID sets the "from_agent_id" field.
func (m *AgentMessageMutation) SetFromAgentID(s string) {
	m.from_agent_id = &s
}

// FromAgentID returns the value of the "from_agent_id" field in the mutation.
func (m *AgentMessageMutation) FromAgentID() (r string, exists bool) {
	v := m.from_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgentID returns the old "from_agent_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldFromAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgentID: %w", err)
	}
	return oldValue.FromAgentID, nil
}

// ResetFromAgentID resets all changes to the "from_agent_id" field.
func (m *AgentMessageMutation) ResetFromAgentID() {
	m.from_agent_id = nil
}

// SetToAgentID sets the "to_agent_id" field.
func (m *AgentMessageMutation) SetToAgentID(s string) {
	m.to_agent_id = &s
}

// ToAgentID returns the value of the "to_agent_id" field in the mutation.
func (m *AgentMessageMutation) ToAgentID() (r string, exists bool) {
	v := m.to_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgentID returns the old "to_agent_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldToAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgentID: %w", err)
	}
	return oldValue.ToAgentID, nil
}

// ClearToAgentID clears the value of the "to_agent_id" field.
func (m *AgentMessageMutation) ClearToAgentID() {
	m.to_agent_id = nil
	m.clearedFields[agentmessage.FieldToAgentID] = struct{}{}
}

// ToAgentIDCleared returns if the "to_agent_id" field was cleared in this mutation.
func (m *AgentMessageMutation) ToAgentIDCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldToAgentID]
	return ok
}

// ResetToAgentID resets all changes to the "to_agent_id" field.
func (m *AgentMessageMutation) ResetToAgentID() {
	m.to_agent_id = nil
	delete(m.clearedFields, agentmessage.FieldToAgentID)
}

// SetMessageType sets the "message_type" field.
func (m *AgentMessageMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *AgentMessageMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldMessageType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *AgentMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *AgentMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentMessageMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentmessage.FieldMetadata)
}

// SetReadAt sets the "read_at" field.
func (m *AgentMessageMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *AgentMessageMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *AgentMessageMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[agentmessage.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *AgentMessageMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *AgentMessageMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, agentmessage.FieldReadAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the CollaborationThread entity.
func (m *AgentMessageMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[agentmessage.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the CollaborationThread entity was cleared.
func (m *AgentMessageMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *AgentMessageMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *AgentMessageMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the AgentMessageMutation builder.
func (m *AgentMessageMutation) Where(ps ...predicate.AgentMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMessage).
func (m *AgentMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.thread != nil {
		fields = append(fields, agentmessage.FieldThreadID)
	}
	if m.from_agent_id != nil {
		fields = append(fields, agentmessage.FieldFromAgentID)
	}
	if m.to_agent_id != nil {
		fields = append(fields, agentmessage.FieldToAgentID)
	}
	if m.message_type != nil {
		fields = append(fields, agentmessage.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, agentmessage.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, agentmessage.FieldMetadata)
	}
	if m.read_at != nil {
		fields = append(fields, agentmessage.FieldReadAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldThreadID:
		return m.ThreadID()
	case agentmessage.FieldFromAgentID:
		return m.FromAgentID()
	case agentmessage.FieldToAgentID:
		return m.ToAgentID()
	case agentmessage.FieldMessageType:
		return m.MessageType()
	case agentmessage.FieldContent:
		return m.Content()
	case agentmessage.FieldMetadata:
		return m.Metadata()
	case agentmessage.FieldReadAt:
		return m.ReadAt()
	case agentmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmessage.FieldThreadID:
		return m.OldThreadID(ctx)
	case agentmessage.FieldFromAgentID:
		return m.OldFromAgentID(ctx)
	case agentmessage.FieldToAgentID:
		return m.OldToAgentID(ctx)
	case agentmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case agentmessage.FieldContent:
		return m.OldContent(ctx)
	case agentmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case agentmessage.FieldReadAt:
		return m.OldReadAt(ctx)
	case agentmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case agentmessage.FieldFromAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgentID(v)
		return nil
	case agentmessage.FieldToAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgentID(v)
		return nil
	case agentmessage.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case agentmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agentmessage.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case agentmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmessage.FieldToAgentID) {
		fields = append(fields, agentmessage.FieldToAgentID)
	}
	if m.FieldCleared(agentmessage.FieldMetadata) {
		fields = append(fields, agentmessage.FieldMetadata)
	}
	if m.FieldCleared(agentmessage.FieldReadAt) {
		fields = append(fields, agentmessage.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMessageMutation) ClearField(name string) error {
	switch name {
	case agentmessage.FieldToAgentID:
		m.ClearToAgentID()
		return nil
	case agentmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	case agentmessage.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMessageMutation) ResetField(name string) error {
	switch name {
	case agentmessage.FieldThreadID:
		m.ResetThreadID()
		return nil
	case agentmessage.FieldFromAgentID:
		m.ResetFromAgentID()
		return nil
	case agentmessage.FieldToAgentID:
		m.ResetToAgentID()
		return nil
	case agentmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case agentmessage.FieldContent:
		m.ResetContent()
		return nil
	case agentmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agentmessage.FieldReadAt:
		m.ResetReadAt()
		return nil
	case agentmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, agentmessage.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentmessage.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, agentmessage.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case agentmessage.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMessageMutation) ClearEdge(name string) error {
	switch name {
	case agentmessage.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMessageMutation) ResetEdge(name string) error {
	switch name {
	case agentmessage.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage edge %s", name)
}

// CollaborationThreadMutation represents an operation that mutates the CollaborationThread nodes in the graph.
type CollaborationThreadMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	thread_type        *collaborationthread.ThreadType
	participants       *[]string
	appendparticipants []string
	ticket_id          *string
	task_id            *string
	status             *collaborationthread.Status
	closed_at          *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	messages           map[string]struct{}
	removedmessages    map[string]struct{}
	clearedmessages    bool
	done               bool
	oldValue           func(context.Context) (*CollaborationThread, error)
	predicates         []predicate.CollaborationThread
}

var _ ent.Mutation = (*CollaborationThreadMutation)(nil)

// collaborationthreadOption allows management of the mutation configuration using functional options.
type collaborationthreadOption func(*CollaborationThreadMutation)

// newCollaborationThreadMutation creates new mutation for the CollaborationThread entity.
func newCollaborationThreadMutation(c config, op Op, opts ...collaborationthreadOption) *CollaborationThreadMutation {
	m := &CollaborationThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeCollaborationThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollaborationThreadID sets the ID field of the mutation.
func withCollaborationThreadID(id string) collaborationthreadOption {
	return func(m *CollaborationThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *CollaborationThread
		)
		m.oldValue = func(ctx context.Context) (*CollaborationThread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollaborationThread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollaborationThread sets the old CollaborationThread of the mutation.
func withCollaborationThread(node *CollaborationThread) collaborationthreadOption {
	return func(m *CollaborationThreadMutation) {
		m.oldValue = func(context.Context) (*CollaborationThread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollaborationThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollaborationThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollaborationThread entities.
func (m *CollaborationThreadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollaborationThreadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollaborationThreadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollaborationThread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadType sets the "thread_type" field.
func (m *CollaborationThreadMutation) SetThreadType(ct collaborationthread.ThreadType) {
	m.thread_type = &ct
}

// ThreadType returns the value of the "thread_type" field in the mutation.
func (m *CollaborationThreadMutation) ThreadType() (r collaborationthread.ThreadType, exists bool) {
	v := m.thread_type
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadType returns the old "thread_type" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldThreadType(ctx context.Context) (v collaborationthread.ThreadType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadType: %w", err)
	}
	return oldValue.ThreadType, nil
}

// ResetThreadType resets all changes to the "thread_type" field.
func (m *CollaborationThreadMutation) ResetThreadType() {
	m.thread_type = nil
}

// SetParticipants sets the "participants" field.
func (m *CollaborationThreadMutation) SetParticipants(s []string) {
	m.participants = &s
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *CollaborationThreadMutation) Participants() (r []string, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldParticipants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds s to the "participants" field.
func (m *CollaborationThreadMutation) AppendParticipants(s []string) {
	m.appendparticipants = append(m.appendparticipants, s...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *CollaborationThreadMutation) AppendedParticipants() ([]string, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ResetParticipants resets all changes to the "participants" field.
func (m *CollaborationThreadMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
}

// SetTicketID sets the "ticket_id" field.
func (m *CollaborationThreadMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *CollaborationThreadMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldTicketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *CollaborationThreadMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[collaborationthread.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *CollaborationThreadMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[collaborationthread.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *CollaborationThreadMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, collaborationthread.FieldTicketID)
}

// SetTaskID sets the "task_id" field.
func (m *CollaborationThreadMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CollaborationThreadMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *CollaborationThreadMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[collaborationthread.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *CollaborationThreadMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[collaborationthread.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CollaborationThreadMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, collaborationthread.FieldTaskID)
}

// SetStatus sets the "status" field.
func (m *CollaborationThreadMutation) SetStatus(c collaborationthread.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CollaborationThreadMutation) Status() (r collaborationthread.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldStatus(ctx context.Context) (v collaborationthread.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CollaborationThreadMutation) ResetStatus() {
	m.status = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *CollaborationThreadMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *CollaborationThreadMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *CollaborationThreadMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[collaborationthread.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *CollaborationThreadMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[collaborationthread.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *CollaborationThreadMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, collaborationthread.FieldClosedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CollaborationThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollaborationThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollaborationThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CollaborationThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CollaborationThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CollaborationThread entity.
// If the CollaborationThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollaborationThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CollaborationThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by ids.
func (m *CollaborationThreadMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the AgentMessage entity.
func (m *CollaborationThreadMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the AgentMessage entity was cleared.
func (m *CollaborationThreadMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the AgentMessage entity by IDs.
func (m *CollaborationThreadMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the AgentMessage entity.
func (m *CollaborationThreadMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *CollaborationThreadMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *CollaborationThreadMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the CollaborationThreadMutation builder.
func (m *CollaborationThreadMutation) Where(ps ...predicate.CollaborationThread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollaborationThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollaborationThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollaborationThread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollaborationThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollaborationThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollaborationThread).
func (m *CollaborationThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollaborationThreadMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.thread_type != nil {
		fields = append(fields, collaborationthread.FieldThreadType)
	}
	if m.participants != nil {
		fields = append(fields, collaborationthread.FieldParticipants)
	}
	if m.ticket_id != nil {
		fields = append(fields, collaborationthread.FieldTicketID)
	}
	if m.task_id != nil {
		fields = append(fields, collaborationthread.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, collaborationthread.FieldStatus)
	}
	if m.closed_at != nil {
		fields = append(fields, collaborationthread.FieldClosedAt)
	}
	if m.created_at != nil {
		fields = append(fields, collaborationthread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, collaborationthread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollaborationThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collaborationthread.FieldThreadType:
		return m.ThreadType()
	case collaborationthread.FieldParticipants:
		return m.Participants()
	case collaborationthread.FieldTicketID:
		return m.TicketID()
	case collaborationthread.FieldTaskID:
		return m.TaskID()
	case collaborationthread.FieldStatus:
		return m.Status()
	case collaborationthread.FieldClosedAt:
		return m.ClosedAt()
	case collaborationthread.FieldCreatedAt:
		return m.CreatedAt()
	case collaborationthread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollaborationThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collaborationthread.FieldThreadType:
		return m.OldThreadType(ctx)
	case collaborationthread.FieldParticipants:
		return m.OldParticipants(ctx)
	case collaborationthread.FieldTicketID:
		return m.OldTicketID(ctx)
	case collaborationthread.FieldTaskID:
		return m.OldTaskID(ctx)
	case collaborationthread.FieldStatus:
		return m.OldStatus(ctx)
	case collaborationthread.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case collaborationthread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collaborationthread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CollaborationThread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollaborationThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collaborationthread.FieldThreadType:
		v, ok := value.(collaborationthread.ThreadType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadType(v)
		return nil
	case collaborationthread.FieldParticipants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case collaborationthread.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case collaborationthread.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case collaborationthread.FieldStatus:
		v, ok := value.(collaborationthread.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case collaborationthread.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case collaborationthread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collaborationthread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CollaborationThread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollaborationThreadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollaborationThreadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollaborationThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CollaborationThread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollaborationThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collaborationthread.FieldTicketID) {
		fields = append(fields, collaborationthread.FieldTicketID)
	}
	if m.FieldCleared(collaborationthread.FieldTaskID) {
		fields = append(fields, collaborationthread.FieldTaskID)
	}
	if m.FieldCleared(collaborationthread.FieldClosedAt) {
		fields = append(fields, collaborationthread.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollaborationThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollaborationThreadMutation) ClearField(name string) error {
	switch name {
	case collaborationthread.FieldTicketID:
		m.ClearTicketID()
		return nil
	case collaborationthread.FieldTaskID:
		m.ClearTaskID()
		return nil
	case collaborationthread.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown CollaborationThread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollaborationThreadMutation) ResetField(name string) error {
	switch name {
	case collaborationthread.FieldThreadType:
		m.ResetThreadType()
		return nil
	case collaborationthread.FieldParticipants:
		m.ResetParticipants()
		return nil
	case collaborationthread.FieldTicketID:
		m.ResetTicketID()
		return nil
	case collaborationthread.FieldTaskID:
		m.ResetTaskID()
		return nil
	case collaborationthread.FieldStatus:
		m.ResetStatus()
		return nil
	case collaborationthread.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case collaborationthread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collaborationthread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CollaborationThread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollaborationThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, collaborationthread.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollaborationThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collaborationthread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollaborationThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, collaborationthread.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollaborationThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case collaborationthread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollaborationThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, collaborationthread.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollaborationThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case collaborationthread.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollaborationThreadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CollaborationThread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollaborationThreadMutation) ResetEdge(name string) error {
	switch name {
	case collaborationthread.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown CollaborationThread edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_type    *string
	entity_type   *string
	entity_id     *string
	payload       *map[string]interface{}
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EventMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EventMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EventMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EventMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EventMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EventMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.entity_type != nil {
		fields = append(fields, event.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, event.FieldEntityID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventType:
		return m.EventType()
	case event.FieldEntityType:
		return m.EntityType()
	case event.FieldEntityID:
		return m.EntityID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldEntityType:
		return m.OldEntityType(ctx)
	case event.FieldEntityID:
		return m.OldEntityID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case event.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldEntityType:
		m.ResetEntityType()
		return nil
	case event.FieldEntityID:
		m.ResetEntityID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// MonitorAnomalyMutation represents an operation that mutates the MonitorAnomaly nodes in the graph.
type MonitorAnomalyMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	metric_name          *string
	anomaly_type         *monitoranomaly.AnomalyType
	severity             *monitoranomaly.Severity
	baseline_value       *float64
	addbaseline_value    *float64
	observed_value       *float64
	addobserved_value    *float64
	deviation_percent    *float64
	adddeviation_percent *float64
	labels               *map[string]string
	detected_at          *time.Time
	acknowledged_at      *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*MonitorAnomaly, error)
	predicates           []predicate.MonitorAnomaly
}

var _ ent.Mutation = (*MonitorAnomalyMutation)(nil)

// monitoranomalyOption allows management of the mutation configuration using functional options.
type monitoranomalyOption func(*MonitorAnomalyMutation)

// newMonitorAnomalyMutation creates new mutation for the MonitorAnomaly entity.
func newMonitorAnomalyMutation(c config, op Op, opts ...monitoranomalyOption) *MonitorAnomalyMutation {
	m := &MonitorAnomalyMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitorAnomaly,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitorAnomalyID sets the ID field of the mutation.
func withMonitorAnomalyID(id string) monitoranomalyOption {
	return func(m *MonitorAnomalyMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitorAnomaly
		)
		m.oldValue = func(ctx context.Context) (*MonitorAnomaly, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitorAnomaly.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitorAnomaly sets the old MonitorAnomaly of the mutation.
func withMonitorAnomaly(node *MonitorAnomaly) monitoranomalyOption {
	return func(m *MonitorAnomalyMutation) {
		m.oldValue = func(context.Context) (*MonitorAnomaly, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitorAnomalyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitorAnomalyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitorAnomaly entities.
func (m *MonitorAnomalyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitorAnomalyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitorAnomalyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitorAnomaly.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMetricName sets the "metric_name" field.
func (m *MonitorAnomalyMutation) SetMetricName(s string) {
	m.metric_name = &s
}

// MetricName returns the value of the "metric_name" field in the mutation.
func (m *MonitorAnomalyMutation) MetricName() (r string, exists bool) {
	v := m.metric_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricName returns the old "metric_name" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldMetricName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricName: %w", err)
	}
	return oldValue.MetricName, nil
}

// ResetMetricName resets all changes to the "metric_name" field.
func (m *MonitorAnomalyMutation) ResetMetricName() {
	m.metric_name = nil
}

// SetAnomalyType sets the "anomaly_type" field.
func (m *MonitorAnomalyMutation) SetAnomalyType(mt monitoranomaly.AnomalyType) {
	m.anomaly_type = &mt
}

// AnomalyType returns the value of the "anomaly_type" field in the mutation.
func (m *MonitorAnomalyMutation) AnomalyType() (r monitoranomaly.AnomalyType, exists bool) {
	v := m.anomaly_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyType returns the old "anomaly_type" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldAnomalyType(ctx context.Context) (v monitoranomaly.AnomalyType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyType: %w", err)
	}
	return oldValue.AnomalyType, nil
}

// ResetAnomalyType resets all changes to the "anomaly_type" field.
func (m *MonitorAnomalyMutation) ResetAnomalyType() {
	m.anomaly_type = nil
}

// SetSeverity sets the "severity" field.
func (m *MonitorAnomalyMutation) SetSeverity(value monitoranomaly.Severity) {
	m.severity = &value
}

// Severity returns the value of the "severity" field in the mutation.
func (m *MonitorAnomalyMutation) Severity() (r monitoranomaly.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldSeverity(ctx context.Context) (v monitoranomaly.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *MonitorAnomalyMutation) ResetSeverity() {
	m.severity = nil
}

// SetBaselineValue sets the "baseline_value" field.
func (m *MonitorAnomalyMutation) SetBaselineValue(f float64) {
	m.baseline_value = &f
	m.addbaseline_value = nil
}

// BaselineValue returns the value of the "baseline_value" field in the mutation.
func (m *MonitorAnomalyMutation) BaselineValue() (r float64, exists bool) {
	v := m.baseline_value
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineValue returns the old "baseline_value" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldBaselineValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineValue: %w", err)
	}
	return oldValue.BaselineValue, nil
}

// AddBaselineValue adds f to the "baseline_value" field.
func (m *MonitorAnomalyMutation) AddBaselineValue(f float64) {
	if m.addbaseline_value != nil {
		*m.addbaseline_value += f
	} else {
		m.addbaseline_value = &f
	}
}

// AddedBaselineValue returns the value that was added to the "baseline_value" field in this mutation.
func (m *MonitorAnomalyMutation) AddedBaselineValue() (r float64, exists bool) {
	v := m.addbaseline_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineValue resets all changes to the "baseline_value" field.
func (m *MonitorAnomalyMutation) ResetBaselineValue() {
	m.baseline_value = nil
	m.addbaseline_value = nil
}

// SetObservedValue sets the "observed_value" field.
func (m *MonitorAnomalyMutation) SetObservedValue(f float64) {
	m.observed_value = &f
	m.addobserved_value = nil
}

// ObservedValue returns the value of the "observed_value" field in the mutation.
func (m *MonitorAnomalyMutation) ObservedValue() (r float64, exists bool) {
	v := m.observed_value
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedValue returns the old "observed_value" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldObservedValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedValue: %w", err)
	}
	return oldValue.ObservedValue, nil
}

// AddObservedValue adds f to the "observed_value" field.
func (m *MonitorAnomalyMutation) AddObservedValue(f float64) {
	if m.addobserved_value != nil {
		*m.addobserved_value += f
	} else {
		m.addobserved_value = &f
	}
}

// AddedObservedValue returns the value that was added to the "observed_value" field in this mutation.
func (m *MonitorAnomalyMutation) AddedObservedValue() (r float64, exists bool) {
	v := m.addobserved_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservedValue resets all changes to the "observed_value" field.
func (m *MonitorAnomalyMutation) ResetObservedValue() {
	m.observed_value = nil
	m.addobserved_value = nil
}

// SetDeviationPercent sets the "deviation_percent" field.
func (m *MonitorAnomalyMutation) SetDeviationPercent(f float64) {
	m.deviation_percent = &f
	m.adddeviation_percent = nil
}

// DeviationPercent returns the value of the "deviation_percent" field in the mutation.
func (m *MonitorAnomalyMutation) DeviationPercent() (r float64, exists bool) {
	v := m.deviation_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviationPercent returns the old "deviation_percent" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldDeviationPercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviationPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviationPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviationPercent: %w", err)
	}
	return oldValue.DeviationPercent, nil
}

// AddDeviationPercent adds f to the "deviation_percent" field.
func (m *MonitorAnomalyMutation) AddDeviationPercent(f float64) {
	if m.adddeviation_percent != nil {
		*m.adddeviation_percent += f
	} else {
		m.adddeviation_percent = &f
	}
}

// AddedDeviationPercent returns the value that was added to the "deviation_percent" field in this mutation.
func (m *MonitorAnomalyMutation) AddedDeviationPercent() (r float64, exists bool) {
	v := m.adddeviation_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeviationPercent resets all changes to the "deviation_percent" field.
func (m *MonitorAnomalyMutation) ResetDeviationPercent() {
	m.deviation_percent = nil
	m.adddeviation_percent = nil
}

// SetLabels sets the "labels" field.
func (m *MonitorAnomalyMutation) SetLabels(value map[string]string) {
	m.labels = &value
}

// Labels returns the value of the "labels" field in the mutation.
func (m *MonitorAnomalyMutation) Labels() (r map[string]string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// ClearLabels clears the value of the "labels" field.
func (m *MonitorAnomalyMutation) ClearLabels() {
	m.labels = nil
	m.clearedFields[monitoranomaly.FieldLabels] = struct{}{}
}

// LabelsCleared returns if the "labels" field was cleared in this mutation.
func (m *MonitorAnomalyMutation) LabelsCleared() bool {
	_, ok := m.clearedFields[monitoranomaly.FieldLabels]
	return ok
}

// ResetLabels resets all changes to the "labels" field.
func (m *MonitorAnomalyMutation) ResetLabels() {
	m.labels = nil
	delete(m.clearedFields, monitoranomaly.FieldLabels)
}

// SetDetectedAt sets the "detected_at" field.
func (m *MonitorAnomalyMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *MonitorAnomalyMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *MonitorAnomalyMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *MonitorAnomalyMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *MonitorAnomalyMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the MonitorAnomaly entity.
// If the MonitorAnomaly object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitorAnomalyMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *MonitorAnomalyMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[monitoranomaly.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *MonitorAnomalyMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[monitoranomaly.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *MonitorAnomalyMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, monitoranomaly.FieldAcknowledgedAt)
}

// Where appends a list predicates to the MonitorAnomalyMutation builder.
func (m *MonitorAnomalyMutation) Where(ps ...predicate.MonitorAnomaly) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitorAnomalyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitorAnomalyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitorAnomaly, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitorAnomalyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitorAnomalyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitorAnomaly).
func (m *MonitorAnomalyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitorAnomalyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.metric_name != nil {
		fields = append(fields, monitoranomaly.FieldMetricName)
	}
	if m.anomaly_type != nil {
		fields = append(fields, monitoranomaly.FieldAnomalyType)
	}
	if m.severity != nil {
		fields = append(fields, monitoranomaly.FieldSeverity)
	}
	if m.baseline_value != nil {
		fields = append(fields, monitoranomaly.FieldBaselineValue)
	}
	if m.observed_value != nil {
		fields = append(fields, monitoranomaly.FieldObservedValue)
	}
	if m.deviation_percent != nil {
		fields = append(fields, monitoranomaly.FieldDeviationPercent)
	}
	if m.labels != nil {
		fields = append(fields, monitoranomaly.FieldLabels)
	}
	if m.detected_at != nil {
		fields = append(fields, monitoranomaly.FieldDetectedAt)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, monitoranomaly.FieldAcknowledgedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitorAnomalyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoranomaly.FieldMetricName:
		return m.MetricName()
	case monitoranomaly.FieldAnomalyType:
		return m.AnomalyType()
	case monitoranomaly.FieldSeverity:
		return m.Severity()
	case monitoranomaly.FieldBaselineValue:
		return m.BaselineValue()
	case monitoranomaly.FieldObservedValue:
		return m.ObservedValue()
	case monitoranomaly.FieldDeviationPercent:
		return m.DeviationPercent()
	case monitoranomaly.FieldLabels:
		return m.Labels()
	case monitoranomaly.FieldDetectedAt:
		return m.DetectedAt()
	case monitoranomaly.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitorAnomalyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoranomaly.FieldMetricName:
		return m.OldMetricName(ctx)
	case monitoranomaly.FieldAnomalyType:
		return m.OldAnomalyType(ctx)
	case monitoranomaly.FieldSeverity:
		return m.OldSeverity(ctx)
	case monitoranomaly.FieldBaselineValue:
		return m.OldBaselineValue(ctx)
	case monitoranomaly.FieldObservedValue:
		return m.OldObservedValue(ctx)
	case monitoranomaly.FieldDeviationPercent:
		return m.OldDeviationPercent(ctx)
	case monitoranomaly.FieldLabels:
		return m.OldLabels(ctx)
	case monitoranomaly.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case monitoranomaly.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitorAnomalyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoranomaly.FieldMetricName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricName(v)
		return nil
	case monitoranomaly.FieldAnomalyType:
		v, ok := value.(monitoranomaly.AnomalyType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyType(v)
		return nil
	case monitoranomaly.FieldSeverity:
		v, ok := value.(monitoranomaly.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case monitoranomaly.FieldBaselineValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineValue(v)
		return nil
	case monitoranomaly.FieldObservedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedValue(v)
		return nil
	case monitoranomaly.FieldDeviationPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviationPercent(v)
		return nil
	case monitoranomaly.FieldLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case monitoranomaly.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case monitoranomaly.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitorAnomalyMutation) AddedFields() []string {
	var fields []string
	if m.addbaseline_value != nil {
		fields = append(fields, monitoranomaly.FieldBaselineValue)
	}
	if m.addobserved_value != nil {
		fields = append(fields, monitoranomaly.FieldObservedValue)
	}
	if m.adddeviation_percent != nil {
		fields = append(fields, monitoranomaly.FieldDeviationPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitorAnomalyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monitoranomaly.FieldBaselineValue:
		return m.AddedBaselineValue()
	case monitoranomaly.FieldObservedValue:
		return m.AddedObservedValue()
	case monitoranomaly.FieldDeviationPercent:
		return m.AddedDeviationPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitorAnomalyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monitoranomaly.FieldBaselineValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineValue(v)
		return nil
	case monitoranomaly.FieldObservedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservedValue(v)
		return nil
	case monitoranomaly.FieldDeviationPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeviationPercent(v)
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitorAnomalyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoranomaly.FieldLabels) {
		fields = append(fields, monitoranomaly.FieldLabels)
	}
	if m.FieldCleared(monitoranomaly.FieldAcknowledgedAt) {
		fields = append(fields, monitoranomaly.FieldAcknowledgedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitorAnomalyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitorAnomalyMutation) ClearField(name string) error {
	switch name {
	case monitoranomaly.FieldLabels:
		m.ClearLabels()
		return nil
	case monitoranomaly.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitorAnomalyMutation) ResetField(name string) error {
	switch name {
	case monitoranomaly.FieldMetricName:
		m.ResetMetricName()
		return nil
	case monitoranomaly.FieldAnomalyType:
		m.ResetAnomalyType()
		return nil
	case monitoranomaly.FieldSeverity:
		m.ResetSeverity()
		return nil
	case monitoranomaly.FieldBaselineValue:
		m.ResetBaselineValue()
		return nil
	case monitoranomaly.FieldObservedValue:
		m.ResetObservedValue()
		return nil
	case monitoranomaly.FieldDeviationPercent:
		m.ResetDeviationPercent()
		return nil
	case monitoranomaly.FieldLabels:
		m.ResetLabels()
		return nil
	case monitoranomaly.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case monitoranomaly.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitorAnomaly field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitorAnomalyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitorAnomalyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitorAnomalyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitorAnomalyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitorAnomalyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitorAnomalyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitorAnomalyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MonitorAnomaly unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitorAnomalyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MonitorAnomaly edge %s", name)
}

// ResourceLockMutation represents an operation that mutates the ResourceLock nodes in the graph.
type ResourceLockMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	resource_type      *string
	resource_id        *string
	locked_by_task_id  *string
	locked_by_agent_id *string
	lock_mode          *resourcelock.LockMode
	acquired_at        *time.Time
	expires_at         *time.Time
	released_at        *time.Time
	version            *int
	addversion         *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ResourceLock, error)
	predicates         []predicate.ResourceLock
}

var _ ent.Mutation = (*ResourceLockMutation)(nil)

// resourcelockOption allows management of the mutation configuration using functional options.
type resourcelockOption func(*ResourceLockMutation)

// newResourceLockMutation creates new mutation for the ResourceLock entity.
func newResourceLockMutation(c config, op Op, opts ...resourcelockOption) *ResourceLockMutation {
	m := &ResourceLockMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceLockID sets the ID field of the mutation.
func withResourceLockID(id string) resourcelockOption {
	return func(m *ResourceLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceLock
		)
		m.oldValue = func(ctx context.Context) (*ResourceLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceLock sets the old ResourceLock of the mutation.
func withResourceLock(node *ResourceLock) resourcelockOption {
	return func(m *ResourceLockMutation) {
		m.oldValue = func(context.Context) (*ResourceLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResourceLock entities.
func (m *ResourceLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResourceType sets the "resource_type" field.
func (m *ResourceLockMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ResourceLockMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ResourceLockMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *ResourceLockMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *ResourceLockMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *ResourceLockMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetLockedByTaskID sets the "locked_by_task_id" field.
func (m *ResourceLockMutation) SetLockedByTaskID(s string) {
	m.locked_by_task_id = &s
}

// LockedByTaskID returns the value of the "locked_by_task_id" field in the mutation.
func (m *ResourceLockMutation) LockedByTaskID() (r string, exists bool) {
	v := m.locked_by_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedByTaskID returns the old "locked_by_task_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldLockedByTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedByTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedByTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedByTaskID: %w", err)
	}
	return oldValue.LockedByTaskID, nil
}

// ResetLockedByTaskID resets all changes to the "locked_by_task_id" field.
func (m *ResourceLockMutation) ResetLockedByTaskID() {
	m.locked_by_task_id = nil
}

// SetLockedByAgentID sets the "locked_by_agent_id" field.
func (m *ResourceLockMutation) SetLockedByAgentID(s string) {
	m.locked_by_agent_id = &s
}

// LockedByAgentID returns the value of the "locked_by_agent_id" field in the mutation.
func (m *ResourceLockMutation) LockedByAgentID() (r string, exists bool) {
	v := m.locked_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedByAgentID returns the old "locked_by_agent_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldLockedByAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedByAgentID: %w", err)
	}
	return oldValue.LockedByAgentID, nil
}

// ClearLockedByAgentID clears the value of the "locked_by_agent_id" field.
func (m *ResourceLockMutation) ClearLockedByAgentID() {
	m.locked_by_agent_id = nil
	m.clearedFields[resourcelock.FieldLockedByAgentID] = struct{}{}
}

// LockedByAgentIDCleared returns if the "locked_by_agent_id" field was cleared in this mutation.
func (m *ResourceLockMutation) LockedByAgentIDCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldLockedByAgentID]
	return ok
}

// ResetLockedByAgentID resets all changes to the "locked_by_agent_id" field.
func (m *ResourceLockMutation) ResetLockedByAgentID() {
	m.locked_by_agent_id = nil
	delete(m.clearedFields, resourcelock.FieldLockedByAgentID)
}

// SetLockMode sets the "lock_mode" field.
func (m *ResourceLockMutation) SetLockMode(rm resourcelock.LockMode) {
	m.lock_mode = &rm
}

// LockMode returns the value of the "lock_mode" field in the mutation.
func (m *ResourceLockMutation) LockMode() (r resourcelock.LockMode, exists bool) {
	v := m.lock_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLockMode returns the old "lock_mode" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldLockMode(ctx context.Context) (v resourcelock.LockMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockMode: %w", err)
	}
	return oldValue.LockMode, nil
}

// ResetLockMode resets all changes to the "lock_mode" field.
func (m *ResourceLockMutation) ResetLockMode() {
	m.lock_mode = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ResourceLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ResourceLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ResourceLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ResourceLockMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ResourceLockMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ResourceLockMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[resourcelock.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ResourceLockMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ResourceLockMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, resourcelock.FieldExpiresAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *ResourceLockMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ResourceLockMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ResourceLockMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[resourcelock.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ResourceLockMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ResourceLockMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, resourcelock.FieldReleasedAt)
}

// SetVersion sets the "version" field.
func (m *ResourceLockMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ResourceLockMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ResourceLockMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ResourceLockMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ResourceLockMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the ResourceLockMutation builder.
func (m *ResourceLockMutation) Where(ps ...predicate.ResourceLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceLock).
func (m *ResourceLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceLockMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.resource_type != nil {
		fields = append(fields, resourcelock.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, resourcelock.FieldResourceID)
	}
	if m.locked_by_task_id != nil {
		fields = append(fields, resourcelock.FieldLockedByTaskID)
	}
	if m.locked_by_agent_id != nil {
		fields = append(fields, resourcelock.FieldLockedByAgentID)
	}
	if m.lock_mode != nil {
		fields = append(fields, resourcelock.FieldLockMode)
	}
	if m.acquired_at != nil {
		fields = append(fields, resourcelock.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, resourcelock.FieldExpiresAt)
	}
	if m.released_at != nil {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	if m.version != nil {
		fields = append(fields, resourcelock.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldResourceType:
		return m.ResourceType()
	case resourcelock.FieldResourceID:
		return m.ResourceID()
	case resourcelock.FieldLockedByTaskID:
		return m.LockedByTaskID()
	case resourcelock.FieldLockedByAgentID:
		return m.LockedByAgentID()
	case resourcelock.FieldLockMode:
		return m.LockMode()
	case resourcelock.FieldAcquiredAt:
		return m.AcquiredAt()
	case resourcelock.FieldExpiresAt:
		return m.ExpiresAt()
	case resourcelock.FieldReleasedAt:
		return m.ReleasedAt()
	case resourcelock.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourcelock.FieldResourceType:
		return m.OldResourceType(ctx)
	case resourcelock.FieldResourceID:
		return m.OldResourceID(ctx)
	case resourcelock.FieldLockedByTaskID:
		return m.OldLockedByTaskID(ctx)
	case resourcelock.FieldLockedByAgentID:
		return m.OldLockedByAgentID(ctx)
	case resourcelock.FieldLockMode:
		return m.OldLockMode(ctx)
	case resourcelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case resourcelock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case resourcelock.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case resourcelock.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case resourcelock.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case resourcelock.FieldLockedByTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedByTaskID(v)
		return nil
	case resourcelock.FieldLockedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedByAgentID(v)
		return nil
	case resourcelock.FieldLockMode:
		v, ok := value.(resourcelock.LockMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockMode(v)
		return nil
	case resourcelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case resourcelock.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case resourcelock.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case resourcelock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceLockMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, resourcelock.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceLockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resourcelock.FieldLockedByAgentID) {
		fields = append(fields, resourcelock.FieldLockedByAgentID)
	}
	if m.FieldCleared(resourcelock.FieldExpiresAt) {
		fields = append(fields, resourcelock.FieldExpiresAt)
	}
	if m.FieldCleared(resourcelock.FieldReleasedAt) {
		fields = append(fields, resourcelock.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceLockMutation) ClearField(name string) error {
	switch name {
	case resourcelock.FieldLockedByAgentID:
		m.ClearLockedByAgentID()
		return nil
	case resourcelock.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case resourcelock.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceLockMutation) ResetField(name string) error {
	switch name {
	case resourcelock.FieldResourceType:
		m.ResetResourceType()
		return nil
	case resourcelock.FieldResourceID:
		m.ResetResourceID()
		return nil
	case resourcelock.FieldLockedByTaskID:
		m.ResetLockedByTaskID()
		return nil
	case resourcelock.FieldLockedByAgentID:
		m.ResetLockedByAgentID()
		return nil
	case resourcelock.FieldLockMode:
		m.ResetLockMode()
		return nil
	case resourcelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case resourcelock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case resourcelock.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case resourcelock.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	phase_id                    *string
	task_type                   *string
	description                 *string
	priority                    *task.Priority
	status                      *task.Status
	assigned_agent_id           *string
	sandbox_id                  *string
	started_at                  *time.Time
	completed_at                *time.Time
	deadline                    *time.Time
	retry_count                 *int
	addretry_count              *int
	result                      *map[string]interface{}
	depends_on                  *[]string
	appenddepends_on            []string
	required_capabilities       *[]string
	appendrequired_capabilities []string
	required_resources          *[]models.ResourceRef
	appendrequired_resources    []models.ResourceRef
	priority_score              *float64
	addpriority_score           *float64
	version                     *int
	addversion                  *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	ticket                      *string
	clearedticket               bool
	done                        bool
	oldValue                    func(context.Context) (*Task, error)
	predicates                  []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TaskMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TaskMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TaskMutation) ResetTicketID() {
	m.ticket = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *TaskMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *TaskMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ClearPhaseID clears the value of the "phase_id" field.
func (m *TaskMutation) ClearPhaseID() {
	m.phase_id = nil
	m.clearedFields[task.FieldPhaseID] = struct{}{}
}

// PhaseIDCleared returns if the "phase_id" field was cleared in this mutation.
func (m *TaskMutation) PhaseIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPhaseID]
	return ok
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *TaskMutation) ResetPhaseID() {
	m.phase_id = nil
	delete(m.clearedFields, task.FieldPhaseID)
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *TaskMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *TaskMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSandboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *TaskMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[task.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *TaskMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[task.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *TaskMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, task.FieldSandboxID)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetDeadline sets the "deadline" field.
func (m *TaskMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *TaskMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *TaskMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[task.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *TaskMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[task.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *TaskMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, task.FieldDeadline)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[task.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[task.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, task.FieldDependsOn)
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (m *TaskMutation) SetRequiredCapabilities(s []string) {
	m.required_capabilities = &s
	m.appendrequired_capabilities = nil
}

// RequiredCapabilities returns the value of the "required_capabilities" field in the mutation.
func (m *TaskMutation) RequiredCapabilities() (r []string, exists bool) {
	v := m.required_capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapabilities returns the old "required_capabilities" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiredCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapabilities: %w", err)
	}
	return oldValue.RequiredCapabilities, nil
}

// AppendRequiredCapabilities adds s to the "required_capabilities" field.
func (m *TaskMutation) AppendRequiredCapabilities(s []string) {
	m.appendrequired_capabilities = append(m.appendrequired_capabilities, s...)
}

// AppendedRequiredCapabilities returns the list of values that were appended to the "required_capabilities" field in this mutation.
func (m *TaskMutation) AppendedRequiredCapabilities() ([]string, bool) {
	if len(m.appendrequired_capabilities) == 0 {
		return nil, false
	}
	return m.appendrequired_capabilities, true
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (m *TaskMutation) ClearRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	m.clearedFields[task.FieldRequiredCapabilities] = struct{}{}
}

// RequiredCapabilitiesCleared returns if the "required_capabilities" field was cleared in this mutation.
func (m *TaskMutation) RequiredCapabilitiesCleared() bool {
	_, ok := m.clearedFields[task.FieldRequiredCapabilities]
	return ok
}

// ResetRequiredCapabilities resets all changes to the "required_capabilities" field.
func (m *TaskMutation) ResetRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	delete(m.clearedFields, task.FieldRequiredCapabilities)
}

// SetRequiredResources sets the "required_resources" field.
func (m *TaskMutation) SetRequiredResources(mr []models.ResourceRef) {
	m.required_resources = &mr
	m.appendrequired_resources = nil
}

// RequiredResources returns the value of the "required_resources" field in the mutation.
func (m *TaskMutation) RequiredResources() (r []models.ResourceRef, exists bool) {
	v := m.required_resources
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredResources returns the old "required_resources" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiredResources(ctx context.Context) (v []models.ResourceRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredResources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredResources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredResources: %w", err)
	}
	return oldValue.RequiredResources, nil
}

// AppendRequiredResources adds mr to the "required_resources" field.
func (m *TaskMutation) AppendRequiredResources(mr []models.ResourceRef) {
	m.appendrequired_resources = append(m.appendrequired_resources, mr...)
}

// AppendedRequiredResources returns the list of values that were appended to the "required_resources" field in this mutation.
func (m *TaskMutation) AppendedRequiredResources() ([]models.ResourceRef, bool) {
	if len(m.appendrequired_resources) == 0 {
		return nil, false
	}
	return m.appendrequired_resources, true
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (m *TaskMutation) ClearRequiredResources() {
	m.required_resources = nil
	m.appendrequired_resources = nil
	m.clearedFields[task.FieldRequiredResources] = struct{}{}
}

// RequiredResourcesCleared returns if the "required_resources" field was cleared in this mutation.
func (m *TaskMutation) RequiredResourcesCleared() bool {
	_, ok := m.clearedFields[task.FieldRequiredResources]
	return ok
}

// ResetRequiredResources resets all changes to the "required_resources" field.
func (m *TaskMutation) ResetRequiredResources() {
	m.required_resources = nil
	m.appendrequired_resources = nil
	delete(m.clearedFields, task.FieldRequiredResources)
}

// SetPriorityScore sets the "priority_score" field.
func (m *TaskMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *TaskMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *TaskMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *TaskMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *TaskMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetVersion sets the "version" field.
func (m *TaskMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TaskMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TaskMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TaskMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TaskMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TaskMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[task.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TaskMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TaskMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.ticket != nil {
		fields = append(fields, task.FieldTicketID)
	}
	if m.phase_id != nil {
		fields = append(fields, task.FieldPhaseID)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.sandbox_id != nil {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.deadline != nil {
		fields = append(fields, task.FieldDeadline)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.required_capabilities != nil {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.required_resources != nil {
		fields = append(fields, task.FieldRequiredResources)
	}
	if m.priority_score != nil {
		fields = append(fields, task.FieldPriorityScore)
	}
	if m.version != nil {
		fields = append(fields, task.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTicketID:
		return m.TicketID()
	case task.FieldPhaseID:
		return m.PhaseID()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldSandboxID:
		return m.SandboxID()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldDeadline:
		return m.Deadline()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldResult:
		return m.Result()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldRequiredCapabilities:
		return m.RequiredCapabilities()
	case task.FieldRequiredResources:
		return m.RequiredResources()
	case task.FieldPriorityScore:
		return m.PriorityScore()
	case task.FieldVersion:
		return m.Version()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTicketID:
		return m.OldTicketID(ctx)
	case task.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldDeadline:
		return m.OldDeadline(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldRequiredCapabilities:
		return m.OldRequiredCapabilities(ctx)
	case task.FieldRequiredResources:
		return m.OldRequiredResources(ctx)
	case task.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case task.FieldVersion:
		return m.OldVersion(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case task.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldRequiredCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapabilities(v)
		return nil
	case task.FieldRequiredResources:
		v, ok := value.([]models.ResourceRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredResources(v)
		return nil
	case task.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addpriority_score != nil {
		fields = append(fields, task.FieldPriorityScore)
	}
	if m.addversion != nil {
		fields = append(fields, task.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldPriorityScore:
		return m.AddedPriorityScore()
	case task.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldPhaseID) {
		fields = append(fields, task.FieldPhaseID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldSandboxID) {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldDeadline) {
		fields = append(fields, task.FieldDeadline)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldDependsOn) {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.FieldCleared(task.FieldRequiredCapabilities) {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.FieldCleared(task.FieldRequiredResources) {
		fields = append(fields, task.FieldRequiredResources)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldPhaseID:
		m.ClearPhaseID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldDeadline:
		m.ClearDeadline()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case task.FieldRequiredCapabilities:
		m.ClearRequiredCapabilities()
		return nil
	case task.FieldRequiredResources:
		m.ClearRequiredResources()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTicketID:
		m.ResetTicketID()
		return nil
	case task.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldDeadline:
		m.ResetDeadline()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldRequiredCapabilities:
		m.ResetRequiredCapabilities()
		return nil
	case task.FieldRequiredResources:
		m.ResetRequiredResources()
		return nil
	case task.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case task.FieldVersion:
		m.ResetVersion()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, task.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, task.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	description   *string
	phase_id      *string
	status        *ticket.Status
	priority      *ticket.Priority
	project_id    *string
	estimate      *ticket.Estimate
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Ticket, error)
	predicates    []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TicketMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ticket.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TicketMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ticket.FieldDescription)
}

// SetPhaseID sets the "phase_id" field.
func (m *TicketMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *TicketMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *TicketMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(t ticket.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r ticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v ticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(t ticket.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r ticket.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v ticket.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TicketMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TicketMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, ticket.FieldProjectID)
}

// SetEstimate sets the "estimate" field.
func (m *TicketMutation) SetEstimate(t ticket.Estimate) {
	m.estimate = &t
}

// Estimate returns the value of the "estimate" field in the mutation.
func (m *TicketMutation) Estimate() (r ticket.Estimate, exists bool) {
	v := m.estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimate returns the old "estimate" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldEstimate(ctx context.Context) (v *ticket.Estimate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimate: %w", err)
	}
	return oldValue.Estimate, nil
}

// ClearEstimate clears the value of the "estimate" field.
func (m *TicketMutation) ClearEstimate() {
	m.estimate = nil
	m.clearedFields[ticket.FieldEstimate] = struct{}{}
}

// EstimateCleared returns if the "estimate" field was cleared in this mutation.
func (m *TicketMutation) EstimateCleared() bool {
	_, ok := m.clearedFields[ticket.FieldEstimate]
	return ok
}

// ResetEstimate resets all changes to the "estimate" field.
func (m *TicketMutation) ResetEstimate() {
	m.estimate = nil
	delete(m.clearedFields, ticket.FieldEstimate)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *TicketMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *TicketMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *TicketMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *TicketMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *TicketMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TicketMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TicketMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.phase_id != nil {
		fields = append(fields, ticket.FieldPhaseID)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.project_id != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.estimate != nil {
		fields = append(fields, ticket.FieldEstimate)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldPhaseID:
		return m.PhaseID()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldEstimate:
		return m.Estimate()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldEstimate:
		return m.OldEstimate(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(ticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(ticket.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldEstimate:
		v, ok := value.(ticket.Estimate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimate(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldDescription) {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.FieldCleared(ticket.FieldProjectID) {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.FieldCleared(ticket.FieldEstimate) {
		fields = append(fields, ticket.FieldEstimate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldDescription:
		m.ClearDescription()
		return nil
	case ticket.FieldProjectID:
		m.ClearProjectID()
		return nil
	case ticket.FieldEstimate:
		m.ClearEstimate()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldEstimate:
		m.ResetEstimate()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}

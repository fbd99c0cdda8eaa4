// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agent"
	"github.com/omoi-os/omoios/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdate) SetAgentType(v string) *AgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentType(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *AgentUpdate) SetPhaseID(v string) *AgentUpdate {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePhaseID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *AgentUpdate) ClearPhaseID() *AgentUpdate {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdate) SetCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdate) AppendCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdate) ClearCapabilities() *AgentUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdate) SetLastHeartbeat(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeat(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdate) ClearLastHeartbeat() *AgentUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_u *AgentUpdate) SetAnomalyScore(v float64) *AgentUpdate {
	_u.mutation.ResetAnomalyScore()
	_u.mutation.SetAnomalyScore(v)
	return _u
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAnomalyScore(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetAnomalyScore(*v)
	}
	return _u
}

// AddAnomalyScore adds value to the "anomaly_score" field.
func (_u *AgentUpdate) AddAnomalyScore(v float64) *AgentUpdate {
	_u.mutation.AddAnomalyScore(v)
	return _u
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_u *AgentUpdate) SetConsecutiveAnomalousReadings(v int) *AgentUpdate {
	_u.mutation.ResetConsecutiveAnomalousReadings()
	_u.mutation.SetConsecutiveAnomalousReadings(v)
	return _u
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableConsecutiveAnomalousReadings(v *int) *AgentUpdate {
	if v != nil {
		_u.SetConsecutiveAnomalousReadings(*v)
	}
	return _u
}

// AddConsecutiveAnomalousReadings adds value to the "consecutive_anomalous_readings" field.
func (_u *AgentUpdate) AddConsecutiveAnomalousReadings(v int) *AgentUpdate {
	_u.mutation.AddConsecutiveAnomalousReadings(v)
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *AgentUpdate) SetWorkspaceDir(v string) *AgentUpdate {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableWorkspaceDir(v *string) *AgentUpdate {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (_u *AgentUpdate) ClearWorkspaceDir() *AgentUpdate {
	_u.mutation.ClearWorkspaceDir()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *AgentUpdate) SetConversationID(v string) *AgentUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableConversationID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *AgentUpdate) ClearConversationID() *AgentUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_u *AgentUpdate) SetPersistenceDir(v string) *AgentUpdate {
	_u.mutation.SetPersistenceDir(v)
	return _u
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePersistenceDir(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPersistenceDir(*v)
	}
	return _u
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (_u *AgentUpdate) ClearPersistenceDir() *AgentUpdate {
	_u.mutation.ClearPersistenceDir()
	return _u
}

// SetLastIdleSince sets the "last_idle_since" field.
func (_u *AgentUpdate) SetLastIdleSince(v time.Time) *AgentUpdate {
	_u.mutation.SetLastIdleSince(v)
	return _u
}

// SetNillableLastIdleSince sets the "last_idle_since" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastIdleSince(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastIdleSince(*v)
	}
	return _u
}

// ClearLastIdleSince clears the value of the "last_idle_since" field.
func (_u *AgentUpdate) ClearLastIdleSince() *AgentUpdate {
	_u.mutation.ClearLastIdleSince()
	return _u
}

// SetLastQuarantinedAt sets the "last_quarantined_at" field.
func (_u *AgentUpdate) SetLastQuarantinedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastQuarantinedAt(v)
	return _u
}

// SetNillableLastQuarantinedAt sets the "last_quarantined_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastQuarantinedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastQuarantinedAt(*v)
	}
	return _u
}

// ClearLastQuarantinedAt clears the value of the "last_quarantined_at" field.
func (_u *AgentUpdate) ClearLastQuarantinedAt() *AgentUpdate {
	_u.mutation.ClearLastQuarantinedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(agent.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnomalyScore(); ok {
		_spec.AddField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveAnomalousReadings(); ok {
		_spec.AddField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(agent.FieldWorkspaceDir, field.TypeString, value)
	}
	if _u.mutation.WorkspaceDirCleared() {
		_spec.ClearField(agent.FieldWorkspaceDir, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(agent.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(agent.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.PersistenceDir(); ok {
		_spec.SetField(agent.FieldPersistenceDir, field.TypeString, value)
	}
	if _u.mutation.PersistenceDirCleared() {
		_spec.ClearField(agent.FieldPersistenceDir, field.TypeString)
	}
	if value, ok := _u.mutation.LastIdleSince(); ok {
		_spec.SetField(agent.FieldLastIdleSince, field.TypeTime, value)
	}
	if _u.mutation.LastIdleSinceCleared() {
		_spec.ClearField(agent.FieldLastIdleSince, field.TypeTime)
	}
	if value, ok := _u.mutation.LastQuarantinedAt(); ok {
		_spec.SetField(agent.FieldLastQuarantinedAt, field.TypeTime, value)
	}
	if _u.mutation.LastQuarantinedAtCleared() {
		_spec.ClearField(agent.FieldLastQuarantinedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdateOne) SetAgentType(v string) *AgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentType(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *AgentUpdateOne) SetPhaseID(v string) *AgentUpdateOne {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePhaseID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *AgentUpdateOne) ClearPhaseID() *AgentUpdateOne {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdateOne) SetCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdateOne) AppendCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdateOne) ClearCapabilities() *AgentUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdateOne) SetLastHeartbeat(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeat(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdateOne) ClearLastHeartbeat() *AgentUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_u *AgentUpdateOne) SetAnomalyScore(v float64) *AgentUpdateOne {
	_u.mutation.ResetAnomalyScore()
	_u.mutation.SetAnomalyScore(v)
	return _u
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAnomalyScore(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetAnomalyScore(*v)
	}
	return _u
}

// AddAnomalyScore adds value to the "anomaly_score" field.
func (_u *AgentUpdateOne) AddAnomalyScore(v float64) *AgentUpdateOne {
	_u.mutation.AddAnomalyScore(v)
	return _u
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_u *AgentUpdateOne) SetConsecutiveAnomalousReadings(v int) *AgentUpdateOne {
	_u.mutation.ResetConsecutiveAnomalousReadings()
	_u.mutation.SetConsecutiveAnomalousReadings(v)
	return _u
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableConsecutiveAnomalousReadings(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetConsecutiveAnomalousReadings(*v)
	}
	return _u
}

// AddConsecutiveAnomalousReadings adds value to the "consecutive_anomalous_readings" field.
func (_u *AgentUpdateOne) AddConsecutiveAnomalousReadings(v int) *AgentUpdateOne {
	_u.mutation.AddConsecutiveAnomalousReadings(v)
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *AgentUpdateOne) SetWorkspaceDir(v string) *AgentUpdateOne {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableWorkspaceDir(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (_u *AgentUpdateOne) ClearWorkspaceDir() *AgentUpdateOne {
	_u.mutation.ClearWorkspaceDir()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *AgentUpdateOne) SetConversationID(v string) *AgentUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableConversationID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *AgentUpdateOne) ClearConversationID() *AgentUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_u *AgentUpdateOne) SetPersistenceDir(v string) *AgentUpdateOne {
	_u.mutation.SetPersistenceDir(v)
	return _u
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePersistenceDir(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPersistenceDir(*v)
	}
	return _u
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (_u *AgentUpdateOne) ClearPersistenceDir() *AgentUpdateOne {
	_u.mutation.ClearPersistenceDir()
	return _u
}

// SetLastIdleSince sets the "last_idle_since" field.
func (_u *AgentUpdateOne) SetLastIdleSince(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastIdleSince(v)
	return _u
}

// SetNillableLastIdleSince sets the "last_idle_since" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastIdleSince(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastIdleSince(*v)
	}
	return _u
}

// ClearLastIdleSince clears the value of the "last_idle_since" field.
func (_u *AgentUpdateOne) ClearLastIdleSince() *AgentUpdateOne {
	_u.mutation.ClearLastIdleSince()
	return _u
}

// SetLastQuarantinedAt sets the "last_quarantined_at" field.
func (_u *AgentUpdateOne) SetLastQuarantinedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastQuarantinedAt(v)
	return _u
}

// SetNillableLastQuarantinedAt sets the "last_quarantined_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastQuarantinedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastQuarantinedAt(*v)
	}
	return _u
}

// ClearLastQuarantinedAt clears the value of the "last_quarantined_at" field.
func (_u *AgentUpdateOne) ClearLastQuarantinedAt() *AgentUpdateOne {
	_u.mutation.ClearLastQuarantinedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(agent.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnomalyScore(); ok {
		_spec.AddField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveAnomalousReadings(); ok {
		_spec.AddField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(agent.FieldWorkspaceDir, field.TypeString, value)
	}
	if _u.mutation.WorkspaceDirCleared() {
		_spec.ClearField(agent.FieldWorkspaceDir, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(agent.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(agent.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.PersistenceDir(); ok {
		_spec.SetField(agent.FieldPersistenceDir, field.TypeString, value)
	}
	if _u.mutation.PersistenceDirCleared() {
		_spec.ClearField(agent.FieldPersistenceDir, field.TypeString)
	}
	if value, ok := _u.mutation.LastIdleSince(); ok {
		_spec.SetField(agent.FieldLastIdleSince, field.TypeTime, value)
	}
	if _u.mutation.LastIdleSinceCleared() {
		_spec.ClearField(agent.FieldLastIdleSince, field.TypeTime)
	}
	if value, ok := _u.mutation.LastQuarantinedAt(); ok {
		_spec.SetField(agent.FieldLastQuarantinedAt, field.TypeTime, value)
	}
	if _u.mutation.LastQuarantinedAtCleared() {
		_spec.ClearField(agent.FieldLastQuarantinedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

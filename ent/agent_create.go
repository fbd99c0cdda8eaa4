// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentCreate) SetAgentType(v string) *AgentCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *AgentCreate) SetPhaseID(v string) *AgentCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePhaseID(v *string) *AgentCreate {
	if v != nil {
		_c.SetPhaseID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentCreate) SetLastHeartbeat(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeat(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_c *AgentCreate) SetAnomalyScore(v float64) *AgentCreate {
	_c.mutation.SetAnomalyScore(v)
	return _c
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAnomalyScore(v *float64) *AgentCreate {
	if v != nil {
		_c.SetAnomalyScore(*v)
	}
	return _c
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_c *AgentCreate) SetConsecutiveAnomalousReadings(v int) *AgentCreate {
	_c.mutation.SetConsecutiveAnomalousReadings(v)
	return _c
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_c *AgentCreate) SetNillableConsecutiveAnomalousReadings(v *int) *AgentCreate {
	if v != nil {
		_c.SetConsecutiveAnomalousReadings(*v)
	}
	return _c
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_c *AgentCreate) SetWorkspaceDir(v string) *AgentCreate {
	_c.mutation.SetWorkspaceDir(v)
	return _c
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_c *AgentCreate) SetNillableWorkspaceDir(v *string) *AgentCreate {
	if v != nil {
		_c.SetWorkspaceDir(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *AgentCreate) SetConversationID(v string) *AgentCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableConversationID(v *string) *AgentCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_c *AgentCreate) SetPersistenceDir(v string) *AgentCreate {
	_c.mutation.SetPersistenceDir(v)
	return _c
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePersistenceDir(v *string) *AgentCreate {
	if v != nil {
		_c.SetPersistenceDir(*v)
	}
	return _c
}

// SetLastIdleSince sets the "last_idle_since" field.
func (_c *AgentCreate) SetLastIdleSince(v time.Time) *AgentCreate {
	_c.mutation.SetLastIdleSince(v)
	return _c
}

// SetNillableLastIdleSince sets the "last_idle_since" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastIdleSince(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastIdleSince(*v)
	}
	return _c
}

// SetLastQuarantinedAt sets the "last_quarantined_at" field.
func (_c *AgentCreate) SetLastQuarantinedAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastQuarantinedAt(v)
	return _c
}

// SetNillableLastQuarantinedAt sets the "last_quarantined_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastQuarantinedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastQuarantinedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AnomalyScore(); !ok {
		v := agent.DefaultAnomalyScore
		_c.mutation.SetAnomalyScore(v)
	}
	if _, ok := _c.mutation.ConsecutiveAnomalousReadings(); !ok {
		v := agent.DefaultConsecutiveAnomalousReadings
		_c.mutation.SetConsecutiveAnomalousReadings(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Agent.agent_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnomalyScore(); !ok {
		return &ValidationError{Name: "anomaly_score", err: errors.New(`ent: missing required field "Agent.anomaly_score"`)}
	}
	if _, ok := _c.mutation.ConsecutiveAnomalousReadings(); !ok {
		return &ValidationError{Name: "consecutive_anomalous_readings", err: errors.New(`ent: missing required field "Agent.consecutive_anomalous_readings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
		_node.AnomalyScore = value
	}
	if value, ok := _c.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
		_node.ConsecutiveAnomalousReadings = value
	}
	if value, ok := _c.mutation.WorkspaceDir(); ok {
		_spec.SetField(agent.FieldWorkspaceDir, field.TypeString, value)
		_node.WorkspaceDir = &value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(agent.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.PersistenceDir(); ok {
		_spec.SetField(agent.FieldPersistenceDir, field.TypeString, value)
		_node.PersistenceDir = &value
	}
	if value, ok := _c.mutation.LastIdleSince(); ok {
		_spec.SetField(agent.FieldLastIdleSince, field.TypeTime, value)
		_node.LastIdleSince = &value
	}
	if value, ok := _c.mutation.LastQuarantinedAt(); ok {
		_spec.SetField(agent.FieldLastQuarantinedAt, field.TypeTime, value)
		_node.LastQuarantinedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agentbaseline"
)

// AgentBaselineCreate is the builder for creating a AgentBaseline entity.
type AgentBaselineCreate struct {
	config
	mutation *AgentBaselineMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentBaselineCreate) SetAgentType(v string) *AgentBaselineCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *AgentBaselineCreate) SetPhaseID(v string) *AgentBaselineCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillablePhaseID(v *string) *AgentBaselineCreate {
	if v != nil {
		_c.SetPhaseID(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AgentBaselineCreate) SetLatencyMs(v float64) *AgentBaselineCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableLatencyMs(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetLatencyStd sets the "latency_std" field.
func (_c *AgentBaselineCreate) SetLatencyStd(v float64) *AgentBaselineCreate {
	_c.mutation.SetLatencyStd(v)
	return _c
}

// SetNillableLatencyStd sets the "latency_std" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableLatencyStd(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetLatencyStd(*v)
	}
	return _c
}

// SetErrorRate sets the "error_rate" field.
func (_c *AgentBaselineCreate) SetErrorRate(v float64) *AgentBaselineCreate {
	_c.mutation.SetErrorRate(v)
	return _c
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableErrorRate(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetErrorRate(*v)
	}
	return _c
}

// SetCPUUsagePercent sets the "cpu_usage_percent" field.
func (_c *AgentBaselineCreate) SetCPUUsagePercent(v float64) *AgentBaselineCreate {
	_c.mutation.SetCPUUsagePercent(v)
	return _c
}

// SetNillableCPUUsagePercent sets the "cpu_usage_percent" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableCPUUsagePercent(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetCPUUsagePercent(*v)
	}
	return _c
}

// SetMemoryUsageMB sets the "memory_usage_mb" field.
func (_c *AgentBaselineCreate) SetMemoryUsageMB(v float64) *AgentBaselineCreate {
	_c.mutation.SetMemoryUsageMB(v)
	return _c
}

// SetNillableMemoryUsageMB sets the "memory_usage_mb" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableMemoryUsageMB(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetMemoryUsageMB(*v)
	}
	return _c
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_c *AgentBaselineCreate) SetAdditionalMetrics(v map[string]float64) *AgentBaselineCreate {
	_c.mutation.SetAdditionalMetrics(v)
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *AgentBaselineCreate) SetSampleCount(v int) *AgentBaselineCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableSampleCount(v *int) *AgentBaselineCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *AgentBaselineCreate) SetLastUpdated(v time.Time) *AgentBaselineCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableLastUpdated(v *time.Time) *AgentBaselineCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentBaselineCreate) SetID(v string) *AgentBaselineCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_c *AgentBaselineCreate) Mutation() *AgentBaselineMutation {
	return _c.mutation
}

// Save creates the AgentBaseline in the database.
func (_c *AgentBaselineCreate) Save(ctx context.Context) (*AgentBaseline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentBaselineCreate) SaveX(ctx context.Context) *AgentBaseline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentBaselineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentBaselineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentBaselineCreate) defaults() {
	if _, ok := _c.mutation.PhaseID(); !ok {
		v := agentbaseline.DefaultPhaseID
		_c.mutation.SetPhaseID(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := agentbaseline.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.LatencyStd(); !ok {
		v := agentbaseline.DefaultLatencyStd
		_c.mutation.SetLatencyStd(v)
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		v := agentbaseline.DefaultErrorRate
		_c.mutation.SetErrorRate(v)
	}
	if _, ok := _c.mutation.CPUUsagePercent(); !ok {
		v := agentbaseline.DefaultCPUUsagePercent
		_c.mutation.SetCPUUsagePercent(v)
	}
	if _, ok := _c.mutation.MemoryUsageMB(); !ok {
		v := agentbaseline.DefaultMemoryUsageMB
		_c.mutation.SetMemoryUsageMB(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := agentbaseline.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := agentbaseline.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentBaselineCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentBaseline.agent_type"`)}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "AgentBaseline.phase_id"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AgentBaseline.latency_ms"`)}
	}
	if _, ok := _c.mutation.LatencyStd(); !ok {
		return &ValidationError{Name: "latency_std", err: errors.New(`ent: missing required field "AgentBaseline.latency_std"`)}
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		return &ValidationError{Name: "error_rate", err: errors.New(`ent: missing required field "AgentBaseline.error_rate"`)}
	}
	if _, ok := _c.mutation.CPUUsagePercent(); !ok {
		return &ValidationError{Name: "cpu_usage_percent", err: errors.New(`ent: missing required field "AgentBaseline.cpu_usage_percent"`)}
	}
	if _, ok := _c.mutation.MemoryUsageMB(); !ok {
		return &ValidationError{Name: "memory_usage_mb", err: errors.New(`ent: missing required field "AgentBaseline.memory_usage_mb"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "AgentBaseline.sample_count"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "AgentBaseline.last_updated"`)}
	}
	return nil
}

func (_c *AgentBaselineCreate) sqlSave(ctx context.Context) (*AgentBaseline, error) {
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
			return nil, fmt.Errorf("unexpected AgentBaseline.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentBaselineCreate) createSpec() (*AgentBaseline, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentBaseline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentbaseline.Table, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentbaseline.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(agentbaseline.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMs, field.TypeFloat64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.LatencyStd(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStd, field.TypeFloat64, value)
		_node.LatencyStd = value
	}
	if value, ok := _c.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
		_node.ErrorRate = value
	}
	if value, ok := _c.mutation.CPUUsagePercent(); ok {
		_spec.SetField(agentbaseline.FieldCPUUsagePercent, field.TypeFloat64, value)
		_node.CPUUsagePercent = value
	}
	if value, ok := _c.mutation.MemoryUsageMB(); ok {
		_spec.SetField(agentbaseline.FieldMemoryUsageMB, field.TypeFloat64, value)
		_node.MemoryUsageMB = value
	}
	if value, ok := _c.mutation.AdditionalMetrics(); ok {
		_spec.SetField(agentbaseline.FieldAdditionalMetrics, field.TypeJSON, value)
		_node.AdditionalMetrics = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(agentbaseline.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// AgentBaselineCreateBulk is the builder for creating many AgentBaseline entities in bulk.
type AgentBaselineCreateBulk struct {
	config
	err      error
	builders []*AgentBaselineCreate
}

// Save creates the AgentBaseline entities in the database.
func (_c *AgentBaselineCreateBulk) Save(ctx context.Context) ([]*AgentBaseline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentBaseline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentBaselineMutation)
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
func (_c *AgentBaselineCreateBulk) SaveX(ctx context.Context) []*AgentBaseline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentBaselineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentBaselineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

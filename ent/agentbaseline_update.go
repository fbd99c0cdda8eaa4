// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/ent/predicate"
)

// AgentBaselineUpdate is the builder for updating AgentBaseline entities.
type AgentBaselineUpdate struct {
	config
	hooks    []Hook
	mutation *AgentBaselineMutation
}

// Where appends a list predicates to the AgentBaselineUpdate builder.
func (_u *AgentBaselineUpdate) Where(ps ...predicate.AgentBaseline) *AgentBaselineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentBaselineUpdate) SetLatencyMs(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableLatencyMs(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentBaselineUpdate) AddLatencyMs(v float64) *AgentBaselineUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetLatencyStd sets the "latency_std" field.
func (_u *AgentBaselineUpdate) SetLatencyStd(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetLatencyStd()
	_u.mutation.SetLatencyStd(v)
	return _u
}

// SetNillableLatencyStd sets the "latency_std" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableLatencyStd(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetLatencyStd(*v)
	}
	return _u
}

// AddLatencyStd adds value to the "latency_std" field.
func (_u *AgentBaselineUpdate) AddLatencyStd(v float64) *AgentBaselineUpdate {
	_u.mutation.AddLatencyStd(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AgentBaselineUpdate) SetErrorRate(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableErrorRate(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AgentBaselineUpdate) AddErrorRate(v float64) *AgentBaselineUpdate {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetCPUUsagePercent sets the "cpu_usage_percent" field.
func (_u *AgentBaselineUpdate) SetCPUUsagePercent(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetCPUUsagePercent()
	_u.mutation.SetCPUUsagePercent(v)
	return _u
}

// SetNillableCPUUsagePercent sets the "cpu_usage_percent" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableCPUUsagePercent(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetCPUUsagePercent(*v)
	}
	return _u
}

// AddCPUUsagePercent adds value to the "cpu_usage_percent" field.
func (_u *AgentBaselineUpdate) AddCPUUsagePercent(v float64) *AgentBaselineUpdate {
	_u.mutation.AddCPUUsagePercent(v)
	return _u
}

// SetMemoryUsageMB sets the "memory_usage_mb" field.
func (_u *AgentBaselineUpdate) SetMemoryUsageMB(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetMemoryUsageMB()
	_u.mutation.SetMemoryUsageMB(v)
	return _u
}

// SetNillableMemoryUsageMB sets the "memory_usage_mb" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableMemoryUsageMB(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetMemoryUsageMB(*v)
	}
	return _u
}

// AddMemoryUsageMB adds value to the "memory_usage_mb" field.
func (_u *AgentBaselineUpdate) AddMemoryUsageMB(v float64) *AgentBaselineUpdate {
	_u.mutation.AddMemoryUsageMB(v)
	return _u
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_u *AgentBaselineUpdate) SetAdditionalMetrics(v map[string]float64) *AgentBaselineUpdate {
	_u.mutation.SetAdditionalMetrics(v)
	return _u
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (_u *AgentBaselineUpdate) ClearAdditionalMetrics() *AgentBaselineUpdate {
	_u.mutation.ClearAdditionalMetrics()
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *AgentBaselineUpdate) SetSampleCount(v int) *AgentBaselineUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableSampleCount(v *int) *AgentBaselineUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *AgentBaselineUpdate) AddSampleCount(v int) *AgentBaselineUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentBaselineUpdate) SetLastUpdated(v time.Time) *AgentBaselineUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableLastUpdated(v *time.Time) *AgentBaselineUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_u *AgentBaselineUpdate) Mutation() *AgentBaselineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentBaselineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentBaselineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentBaselineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentBaselineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentBaselineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentbaseline.Table, agentbaseline.Columns, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyStd(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyStd(); ok {
		_spec.AddField(agentbaseline.FieldLatencyStd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUUsagePercent(); ok {
		_spec.SetField(agentbaseline.FieldCPUUsagePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUUsagePercent(); ok {
		_spec.AddField(agentbaseline.FieldCPUUsagePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryUsageMB(); ok {
		_spec.SetField(agentbaseline.FieldMemoryUsageMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryUsageMB(); ok {
		_spec.AddField(agentbaseline.FieldMemoryUsageMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdditionalMetrics(); ok {
		_spec.SetField(agentbaseline.FieldAdditionalMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalMetricsCleared() {
		_spec.ClearField(agentbaseline.FieldAdditionalMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(agentbaseline.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentbaseline.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentbaseline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentBaselineUpdateOne is the builder for updating a single AgentBaseline entity.
type AgentBaselineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentBaselineMutation
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentBaselineUpdateOne) SetLatencyMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableLatencyMs(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentBaselineUpdateOne) AddLatencyMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetLatencyStd sets the "latency_std" field.
func (_u *AgentBaselineUpdateOne) SetLatencyStd(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetLatencyStd()
	_u.mutation.SetLatencyStd(v)
	return _u
}

// SetNillableLatencyStd sets the "latency_std" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableLatencyStd(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetLatencyStd(*v)
	}
	return _u
}

// AddLatencyStd adds value to the "latency_std" field.
func (_u *AgentBaselineUpdateOne) AddLatencyStd(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddLatencyStd(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AgentBaselineUpdateOne) SetErrorRate(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableErrorRate(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AgentBaselineUpdateOne) AddErrorRate(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetCPUUsagePercent sets the "cpu_usage_percent" field.
func (_u *AgentBaselineUpdateOne) SetCPUUsagePercent(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetCPUUsagePercent()
	_u.mutation.SetCPUUsagePercent(v)
	return _u
}

// SetNillableCPUUsagePercent sets the "cpu_usage_percent" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableCPUUsagePercent(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetCPUUsagePercent(*v)
	}
	return _u
}

// AddCPUUsagePercent adds value to the "cpu_usage_percent" field.
func (_u *AgentBaselineUpdateOne) AddCPUUsagePercent(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddCPUUsagePercent(v)
	return _u
}

// SetMemoryUsageMB sets the "memory_usage_mb" field.
func (_u *AgentBaselineUpdateOne) SetMemoryUsageMB(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetMemoryUsageMB()
	_u.mutation.SetMemoryUsageMB(v)
	return _u
}

// SetNillableMemoryUsageMB sets the "memory_usage_mb" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableMemoryUsageMB(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetMemoryUsageMB(*v)
	}
	return _u
}

// AddMemoryUsageMB adds value to the "memory_usage_mb" field.
func (_u *AgentBaselineUpdateOne) AddMemoryUsageMB(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddMemoryUsageMB(v)
	return _u
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_u *AgentBaselineUpdateOne) SetAdditionalMetrics(v map[string]float64) *AgentBaselineUpdateOne {
	_u.mutation.SetAdditionalMetrics(v)
	return _u
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (_u *AgentBaselineUpdateOne) ClearAdditionalMetrics() *AgentBaselineUpdateOne {
	_u.mutation.ClearAdditionalMetrics()
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *AgentBaselineUpdateOne) SetSampleCount(v int) *AgentBaselineUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableSampleCount(v *int) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *AgentBaselineUpdateOne) AddSampleCount(v int) *AgentBaselineUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentBaselineUpdateOne) SetLastUpdated(v time.Time) *AgentBaselineUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableLastUpdated(v *time.Time) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_u *AgentBaselineUpdateOne) Mutation() *AgentBaselineMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentBaselineUpdate builder.
func (_u *AgentBaselineUpdateOne) Where(ps ...predicate.AgentBaseline) *AgentBaselineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentBaselineUpdateOne) Select(field string, fields ...string) *AgentBaselineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentBaseline entity.
func (_u *AgentBaselineUpdateOne) Save(ctx context.Context) (*AgentBaseline, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentBaselineUpdateOne) SaveX(ctx context.Context) *AgentBaseline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentBaselineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentBaselineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentBaselineUpdateOne) sqlSave(ctx context.Context) (_node *AgentBaseline, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentbaseline.Table, agentbaseline.Columns, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentBaseline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentbaseline.FieldID)
		for _, f := range fields {
			if !agentbaseline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentbaseline.FieldID {
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
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyStd(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyStd(); ok {
		_spec.AddField(agentbaseline.FieldLatencyStd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUUsagePercent(); ok {
		_spec.SetField(agentbaseline.FieldCPUUsagePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUUsagePercent(); ok {
		_spec.AddField(agentbaseline.FieldCPUUsagePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryUsageMB(); ok {
		_spec.SetField(agentbaseline.FieldMemoryUsageMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryUsageMB(); ok {
		_spec.AddField(agentbaseline.FieldMemoryUsageMB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdditionalMetrics(); ok {
		_spec.SetField(agentbaseline.FieldAdditionalMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalMetricsCleared() {
		_spec.ClearField(agentbaseline.FieldAdditionalMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(agentbaseline.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentbaseline.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &AgentBaseline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentbaseline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

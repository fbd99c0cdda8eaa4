// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
)

// MonitorAnomalyCreate is the builder for creating a MonitorAnomaly entity.
type MonitorAnomalyCreate struct {
	config
	mutation *MonitorAnomalyMutation
	hooks    []Hook
}

// SetMetricName sets the "metric_name" field.
func (_c *MonitorAnomalyCreate) SetMetricName(v string) *MonitorAnomalyCreate {
	_c.mutation.SetMetricName(v)
	return _c
}

// SetAnomalyType sets the "anomaly_type" field.
func (_c *MonitorAnomalyCreate) SetAnomalyType(v monitoranomaly.AnomalyType) *MonitorAnomalyCreate {
	_c.mutation.SetAnomalyType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *MonitorAnomalyCreate) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetBaselineValue sets the "baseline_value" field.
func (_c *MonitorAnomalyCreate) SetBaselineValue(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetBaselineValue(v)
	return _c
}

// SetObservedValue sets the "observed_value" field.
func (_c *MonitorAnomalyCreate) SetObservedValue(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetObservedValue(v)
	return _c
}

// SetDeviationPercent sets the "deviation_percent" field.
func (_c *MonitorAnomalyCreate) SetDeviationPercent(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetDeviationPercent(v)
	return _c
}

// SetLabels sets the "labels" field.
func (_c *MonitorAnomalyCreate) SetLabels(v map[string]string) *MonitorAnomalyCreate {
	_c.mutation.SetLabels(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *MonitorAnomalyCreate) SetDetectedAt(v time.Time) *MonitorAnomalyCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *MonitorAnomalyCreate) SetNillableDetectedAt(v *time.Time) *MonitorAnomalyCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *MonitorAnomalyCreate) SetAcknowledgedAt(v time.Time) *MonitorAnomalyCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *MonitorAnomalyCreate) SetNillableAcknowledgedAt(v *time.Time) *MonitorAnomalyCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitorAnomalyCreate) SetID(v string) *MonitorAnomalyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_c *MonitorAnomalyCreate) Mutation() *MonitorAnomalyMutation {
	return _c.mutation
}

// Save creates the MonitorAnomaly in the database.
func (_c *MonitorAnomalyCreate) Save(ctx context.Context) (*MonitorAnomaly, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitorAnomalyCreate) SaveX(ctx context.Context) *MonitorAnomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitorAnomalyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitorAnomalyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitorAnomalyCreate) defaults() {
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := monitoranomaly.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitorAnomalyCreate) check() error {
	if _, ok := _c.mutation.MetricName(); !ok {
		return &ValidationError{Name: "metric_name", err: errors.New(`ent: missing required field "MonitorAnomaly.metric_name"`)}
	}
	if _, ok := _c.mutation.AnomalyType(); !ok {
		return &ValidationError{Name: "anomaly_type", err: errors.New(`ent: missing required field "MonitorAnomaly.anomaly_type"`)}
	}
	if v, ok := _c.mutation.AnomalyType(); ok {
		if err := monitoranomaly.AnomalyTypeValidator(v); err != nil {
			return &ValidationError{Name: "anomaly_type", err: fmt.Errorf(`ent: validator failed for field "MonitorAnomaly.anomaly_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "MonitorAnomaly.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := monitoranomaly.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitorAnomaly.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaselineValue(); !ok {
		return &ValidationError{Name: "baseline_value", err: errors.New(`ent: missing required field "MonitorAnomaly.baseline_value"`)}
	}
	if _, ok := _c.mutation.ObservedValue(); !ok {
		return &ValidationError{Name: "observed_value", err: errors.New(`ent: missing required field "MonitorAnomaly.observed_value"`)}
	}
	if _, ok := _c.mutation.DeviationPercent(); !ok {
		return &ValidationError{Name: "deviation_percent", err: errors.New(`ent: missing required field "MonitorAnomaly.deviation_percent"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "MonitorAnomaly.detected_at"`)}
	}
	return nil
}

func (_c *MonitorAnomalyCreate) sqlSave(ctx context.Context) (*MonitorAnomaly, error) {
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
			return nil, fmt.Errorf("unexpected MonitorAnomaly.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonitorAnomalyCreate) createSpec() (*MonitorAnomaly, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitorAnomaly{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoranomaly.Table, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MetricName(); ok {
		_spec.SetField(monitoranomaly.FieldMetricName, field.TypeString, value)
		_node.MetricName = value
	}
	if value, ok := _c.mutation.AnomalyType(); ok {
		_spec.SetField(monitoranomaly.FieldAnomalyType, field.TypeEnum, value)
		_node.AnomalyType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(monitoranomaly.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.BaselineValue(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineValue, field.TypeFloat64, value)
		_node.BaselineValue = value
	}
	if value, ok := _c.mutation.ObservedValue(); ok {
		_spec.SetField(monitoranomaly.FieldObservedValue, field.TypeFloat64, value)
		_node.ObservedValue = value
	}
	if value, ok := _c.mutation.DeviationPercent(); ok {
		_spec.SetField(monitoranomaly.FieldDeviationPercent, field.TypeFloat64, value)
		_node.DeviationPercent = value
	}
	if value, ok := _c.mutation.Labels(); ok {
		_spec.SetField(monitoranomaly.FieldLabels, field.TypeJSON, value)
		_node.Labels = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(monitoranomaly.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(monitoranomaly.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	return _node, _spec
}

// MonitorAnomalyCreateBulk is the builder for creating many MonitorAnomaly entities in bulk.
type MonitorAnomalyCreateBulk struct {
	config
	err      error
	builders []*MonitorAnomalyCreate
}

// Save creates the MonitorAnomaly entities in the database.
func (_c *MonitorAnomalyCreateBulk) Save(ctx context.Context) ([]*MonitorAnomaly, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitorAnomaly, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitorAnomalyMutation)
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
func (_c *MonitorAnomalyCreateBulk) SaveX(ctx context.Context) []*MonitorAnomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitorAnomalyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitorAnomalyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

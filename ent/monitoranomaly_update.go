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
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/ent/predicate"
)

// MonitorAnomalyUpdate is the builder for updating MonitorAnomaly entities.
type MonitorAnomalyUpdate struct {
	config
	hooks    []Hook
	mutation *MonitorAnomalyMutation
}

// Where appends a list predicates to the MonitorAnomalyUpdate builder.
func (_u *MonitorAnomalyUpdate) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *MonitorAnomalyUpdate) SetAcknowledgedAt(v time.Time) *MonitorAnomalyUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableAcknowledgedAt(v *time.Time) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *MonitorAnomalyUpdate) ClearAcknowledgedAt() *MonitorAnomalyUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_u *MonitorAnomalyUpdate) Mutation() *MonitorAnomalyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitorAnomalyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitorAnomalyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitorAnomalyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitorAnomalyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MonitorAnomalyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(monitoranomaly.Table, monitoranomaly.Columns, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(monitoranomaly.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(monitoranomaly.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(monitoranomaly.FieldAcknowledgedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoranomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitorAnomalyUpdateOne is the builder for updating a single MonitorAnomaly entity.
type MonitorAnomalyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitorAnomalyMutation
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *MonitorAnomalyUpdateOne) SetAcknowledgedAt(v time.Time) *MonitorAnomalyUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *MonitorAnomalyUpdateOne) ClearAcknowledgedAt() *MonitorAnomalyUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_u *MonitorAnomalyUpdateOne) Mutation() *MonitorAnomalyMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonitorAnomalyUpdate builder.
func (_u *MonitorAnomalyUpdateOne) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitorAnomalyUpdateOne) Select(field string, fields ...string) *MonitorAnomalyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitorAnomaly entity.
func (_u *MonitorAnomalyUpdateOne) Save(ctx context.Context) (*MonitorAnomaly, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitorAnomalyUpdateOne) SaveX(ctx context.Context) *MonitorAnomaly {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitorAnomalyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitorAnomalyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MonitorAnomalyUpdateOne) sqlSave(ctx context.Context) (_node *MonitorAnomaly, err error) {
	_spec := sqlgraph.NewUpdateSpec(monitoranomaly.Table, monitoranomaly.Columns, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitorAnomaly.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoranomaly.FieldID)
		for _, f := range fields {
			if !monitoranomaly.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoranomaly.FieldID {
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
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(monitoranomaly.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(monitoranomaly.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(monitoranomaly.FieldAcknowledgedAt, field.TypeTime)
	}
	_node = &MonitorAnomaly{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoranomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/ent/predicate"
)

// MonitorAnomalyDelete is the builder for deleting a MonitorAnomaly entity.
type MonitorAnomalyDelete struct {
	config
	hooks    []Hook
	mutation *MonitorAnomalyMutation
}

// Where appends a list predicates to the MonitorAnomalyDelete builder.
func (_d *MonitorAnomalyDelete) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonitorAnomalyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitorAnomalyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonitorAnomalyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monitoranomaly.Table, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MonitorAnomalyDeleteOne is the builder for deleting a single MonitorAnomaly entity.
type MonitorAnomalyDeleteOne struct {
	_d *MonitorAnomalyDelete
}

// Where appends a list predicates to the MonitorAnomalyDelete builder.
func (_d *MonitorAnomalyDeleteOne) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonitorAnomalyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monitoranomaly.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitorAnomalyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

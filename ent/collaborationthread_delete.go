// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/predicate"
)

// CollaborationThreadDelete is the builder for deleting a CollaborationThread entity.
type CollaborationThreadDelete struct {
	config
	hooks    []Hook
	mutation *CollaborationThreadMutation
}

// Where appends a list predicates to the CollaborationThreadDelete builder.
func (_d *CollaborationThreadDelete) Where(ps ...predicate.CollaborationThread) *CollaborationThreadDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CollaborationThreadDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollaborationThreadDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CollaborationThreadDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collaborationthread.Table, sqlgraph.NewFieldSpec(collaborationthread.FieldID, field.TypeString))
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

// CollaborationThreadDeleteOne is the builder for deleting a single CollaborationThread entity.
type CollaborationThreadDeleteOne struct {
	_d *CollaborationThreadDelete
}

// Where appends a list predicates to the CollaborationThreadDelete builder.
func (_d *CollaborationThreadDeleteOne) Where(ps ...predicate.CollaborationThread) *CollaborationThreadDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CollaborationThreadDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collaborationthread.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollaborationThreadDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

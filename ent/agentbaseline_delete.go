// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/ent/predicate"
)

// AgentBaselineDelete is the builder for deleting a AgentBaseline entity.
type AgentBaselineDelete struct {
	config
	hooks    []Hook
	mutation *AgentBaselineMutation
}

// Where appends a list predicates to the AgentBaselineDelete builder.
func (_d *AgentBaselineDelete) Where(ps ...predicate.AgentBaseline) *AgentBaselineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentBaselineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentBaselineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentBaselineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentbaseline.Table, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeString))
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

// AgentBaselineDeleteOne is the builder for deleting a single AgentBaseline entity.
type AgentBaselineDeleteOne struct {
	_d *AgentBaselineDelete
}

// Where appends a list predicates to the AgentBaselineDelete builder.
func (_d *AgentBaselineDeleteOne) Where(ps ...predicate.AgentBaseline) *AgentBaselineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentBaselineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentbaseline.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentBaselineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

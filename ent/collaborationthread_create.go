// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agentmessage"
	"github.com/omoi-os/omoios/ent/collaborationthread"
)

// CollaborationThreadCreate is the builder for creating a CollaborationThread entity.
type CollaborationThreadCreate struct {
	config
	mutation *CollaborationThreadMutation
	hooks    []Hook
}

// SetThreadType sets the "thread_type" field.
func (_c *CollaborationThreadCreate) SetThreadType(v collaborationthread.ThreadType) *CollaborationThreadCreate {
	_c.mutation.SetThreadType(v)
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *CollaborationThreadCreate) SetParticipants(v []string) *CollaborationThreadCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *CollaborationThreadCreate) SetTicketID(v string) *CollaborationThreadCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableTicketID(v *string) *CollaborationThreadCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *CollaborationThreadCreate) SetTaskID(v string) *CollaborationThreadCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableTaskID(v *string) *CollaborationThreadCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CollaborationThreadCreate) SetStatus(v collaborationthread.Status) *CollaborationThreadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableStatus(v *collaborationthread.Status) *CollaborationThreadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *CollaborationThreadCreate) SetClosedAt(v time.Time) *CollaborationThreadCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableClosedAt(v *time.Time) *CollaborationThreadCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollaborationThreadCreate) SetCreatedAt(v time.Time) *CollaborationThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableCreatedAt(v *time.Time) *CollaborationThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CollaborationThreadCreate) SetUpdatedAt(v time.Time) *CollaborationThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CollaborationThreadCreate) SetNillableUpdatedAt(v *time.Time) *CollaborationThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollaborationThreadCreate) SetID(v string) *CollaborationThreadCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_c *CollaborationThreadCreate) AddMessageIDs(ids ...string) *CollaborationThreadCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_c *CollaborationThreadCreate) AddMessages(v ...*AgentMessage) *CollaborationThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the CollaborationThreadMutation object of the builder.
func (_c *CollaborationThreadCreate) Mutation() *CollaborationThreadMutation {
	return _c.mutation
}

// Save creates the CollaborationThread in the database.
func (_c *CollaborationThreadCreate) Save(ctx context.Context) (*CollaborationThread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollaborationThreadCreate) SaveX(ctx context.Context) *CollaborationThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollaborationThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollaborationThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollaborationThreadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := collaborationthread.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collaborationthread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := collaborationthread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollaborationThreadCreate) check() error {
	if _, ok := _c.mutation.ThreadType(); !ok {
		return &ValidationError{Name: "thread_type", err: errors.New(`ent: missing required field "CollaborationThread.thread_type"`)}
	}
	if v, ok := _c.mutation.ThreadType(); ok {
		if err := collaborationthread.ThreadTypeValidator(v); err != nil {
			return &ValidationError{Name: "thread_type", err: fmt.Errorf(`ent: validator failed for field "CollaborationThread.thread_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Participants(); !ok {
		return &ValidationError{Name: "participants", err: errors.New(`ent: missing required field "CollaborationThread.participants"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CollaborationThread.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := collaborationthread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollaborationThread.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollaborationThread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CollaborationThread.updated_at"`)}
	}
	return nil
}

func (_c *CollaborationThreadCreate) sqlSave(ctx context.Context) (*CollaborationThread, error) {
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
			return nil, fmt.Errorf("unexpected CollaborationThread.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CollaborationThreadCreate) createSpec() (*CollaborationThread, *sqlgraph.CreateSpec) {
	var (
		_node = &CollaborationThread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collaborationthread.Table, sqlgraph.NewFieldSpec(collaborationthread.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ThreadType(); ok {
		_spec.SetField(collaborationthread.FieldThreadType, field.TypeEnum, value)
		_node.ThreadType = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(collaborationthread.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(collaborationthread.FieldTicketID, field.TypeString, value)
		_node.TicketID = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(collaborationthread.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(collaborationthread.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(collaborationthread.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collaborationthread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(collaborationthread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   collaborationthread.MessagesTable,
			Columns: []string{collaborationthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CollaborationThreadCreateBulk is the builder for creating many CollaborationThread entities in bulk.
type CollaborationThreadCreateBulk struct {
	config
	err      error
	builders []*CollaborationThreadCreate
}

// Save creates the CollaborationThread entities in the database.
func (_c *CollaborationThreadCreateBulk) Save(ctx context.Context) ([]*CollaborationThread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollaborationThread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollaborationThreadMutation)
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
func (_c *CollaborationThreadCreateBulk) SaveX(ctx context.Context) []*CollaborationThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollaborationThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollaborationThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

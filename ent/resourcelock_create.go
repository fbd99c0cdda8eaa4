// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/resourcelock"
)

// ResourceLockCreate is the builder for creating a ResourceLock entity.
type ResourceLockCreate struct {
	config
	mutation *ResourceLockMutation
	hooks    []Hook
}

// SetResourceType sets the "resource_type" field.
func (_c *ResourceLockCreate) SetResourceType(v string) *ResourceLockCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *ResourceLockCreate) SetResourceID(v string) *ResourceLockCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetLockedByTaskID sets the "locked_by_task_id" field.
func (_c *ResourceLockCreate) SetLockedByTaskID(v string) *ResourceLockCreate {
	_c.mutation.SetLockedByTaskID(v)
	return _c
}

// SetLockedByAgentID sets the "locked_by_agent_id" field.
func (_c *ResourceLockCreate) SetLockedByAgentID(v string) *ResourceLockCreate {
	_c.mutation.SetLockedByAgentID(v)
	return _c
}

// SetNillableLockedByAgentID sets the "locked_by_agent_id" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableLockedByAgentID(v *string) *ResourceLockCreate {
	if v != nil {
		_c.SetLockedByAgentID(*v)
	}
	return _c
}

// SetLockMode sets the "lock_mode" field.
func (_c *ResourceLockCreate) SetLockMode(v resourcelock.LockMode) *ResourceLockCreate {
	_c.mutation.SetLockMode(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *ResourceLockCreate) SetAcquiredAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableAcquiredAt(v *time.Time) *ResourceLockCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ResourceLockCreate) SetExpiresAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableExpiresAt(v *time.Time) *ResourceLockCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *ResourceLockCreate) SetReleasedAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableReleasedAt(v *time.Time) *ResourceLockCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ResourceLockCreate) SetVersion(v int) *ResourceLockCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableVersion(v *int) *ResourceLockCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceLockCreate) SetID(v string) *ResourceLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_c *ResourceLockCreate) Mutation() *ResourceLockMutation {
	return _c.mutation
}

// Save creates the ResourceLock in the database.
func (_c *ResourceLockCreate) Save(ctx context.Context) (*ResourceLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceLockCreate) SaveX(ctx context.Context) *ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceLockCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := resourcelock.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := resourcelock.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceLockCreate) check() error {
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "ResourceLock.resource_type"`)}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "ResourceLock.resource_id"`)}
	}
	if _, ok := _c.mutation.LockedByTaskID(); !ok {
		return &ValidationError{Name: "locked_by_task_id", err: errors.New(`ent: missing required field "ResourceLock.locked_by_task_id"`)}
	}
	if _, ok := _c.mutation.LockMode(); !ok {
		return &ValidationError{Name: "lock_mode", err: errors.New(`ent: missing required field "ResourceLock.lock_mode"`)}
	}
	if v, ok := _c.mutation.LockMode(); ok {
		if err := resourcelock.LockModeValidator(v); err != nil {
			return &ValidationError{Name: "lock_mode", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.lock_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "ResourceLock.acquired_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ResourceLock.version"`)}
	}
	return nil
}

func (_c *ResourceLockCreate) sqlSave(ctx context.Context) (*ResourceLock, error) {
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
			return nil, fmt.Errorf("unexpected ResourceLock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResourceLockCreate) createSpec() (*ResourceLock, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourcelock.Table, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(resourcelock.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(resourcelock.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.LockedByTaskID(); ok {
		_spec.SetField(resourcelock.FieldLockedByTaskID, field.TypeString, value)
		_node.LockedByTaskID = value
	}
	if value, ok := _c.mutation.LockedByAgentID(); ok {
		_spec.SetField(resourcelock.FieldLockedByAgentID, field.TypeString, value)
		_node.LockedByAgentID = value
	}
	if value, ok := _c.mutation.LockMode(); ok {
		_spec.SetField(resourcelock.FieldLockMode, field.TypeEnum, value)
		_node.LockMode = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(resourcelock.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(resourcelock.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	return _node, _spec
}

// ResourceLockCreateBulk is the builder for creating many ResourceLock entities in bulk.
type ResourceLockCreateBulk struct {
	config
	err      error
	builders []*ResourceLockCreate
}

// Save creates the ResourceLock entities in the database.
func (_c *ResourceLockCreateBulk) Save(ctx context.Context) ([]*ResourceLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceLockMutation)
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
func (_c *ResourceLockCreateBulk) SaveX(ctx context.Context) []*ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/omoi-os/omoios/ent/predicate"
	"github.com/omoi-os/omoios/ent/resourcelock"
)

// ResourceLockUpdate is the builder for updating ResourceLock entities.
type ResourceLockUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceLockMutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdate) Where(ps ...predicate.ResourceLock) *ResourceLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdate) SetExpiresAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ResourceLockUpdate) ClearExpiresAt() *ResourceLockUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceLockUpdate) SetReleasedAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableReleasedAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceLockUpdate) ClearReleasedAt() *ResourceLockUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResourceLockUpdate) SetVersion(v int) *ResourceLockUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableVersion(v *int) *ResourceLockUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResourceLockUpdate) AddVersion(v int) *ResourceLockUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdate) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResourceLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.LockedByAgentIDCleared() {
		_spec.ClearField(resourcelock.FieldLockedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(resourcelock.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourcelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourcelock.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceLockUpdateOne is the builder for updating a single ResourceLock entity.
type ResourceLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceLockMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdateOne) SetExpiresAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ResourceLockUpdateOne) ClearExpiresAt() *ResourceLockUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceLockUpdateOne) SetReleasedAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableReleasedAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceLockUpdateOne) ClearReleasedAt() *ResourceLockUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResourceLockUpdateOne) SetVersion(v int) *ResourceLockUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableVersion(v *int) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResourceLockUpdateOne) AddVersion(v int) *ResourceLockUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdateOne) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdateOne) Where(ps ...predicate.ResourceLock) *ResourceLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceLockUpdateOne) Select(field string, fields ...string) *ResourceLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceLock entity.
func (_u *ResourceLockUpdateOne) Save(ctx context.Context) (*ResourceLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) SaveX(ctx context.Context) *ResourceLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResourceLockUpdateOne) sqlSave(ctx context.Context) (_node *ResourceLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourcelock.FieldID)
		for _, f := range fields {
			if !resourcelock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourcelock.FieldID {
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
	if _u.mutation.LockedByAgentIDCleared() {
		_spec.ClearField(resourcelock.FieldLockedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(resourcelock.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourcelock.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourcelock.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resourcelock.FieldVersion, field.TypeInt, value)
	}
	_node = &ResourceLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

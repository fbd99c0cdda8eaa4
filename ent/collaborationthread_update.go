// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/omoi-os/omoios/ent/agentmessage"
	"github.com/omoi-os/omoios/ent/collaborationthread"
	"github.com/omoi-os/omoios/ent/predicate"
)

// CollaborationThreadUpdate is the builder for updating CollaborationThread entities.
type CollaborationThreadUpdate struct {
	config
	hooks    []Hook
	mutation *CollaborationThreadMutation
}

// Where appends a list predicates to the CollaborationThreadUpdate builder.
func (_u *CollaborationThreadUpdate) Where(ps ...predicate.CollaborationThread) *CollaborationThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *CollaborationThreadUpdate) SetParticipants(v []string) *CollaborationThreadUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *CollaborationThreadUpdate) AppendParticipants(v []string) *CollaborationThreadUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *CollaborationThreadUpdate) SetTicketID(v string) *CollaborationThreadUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *CollaborationThreadUpdate) SetNillableTicketID(v *string) *CollaborationThreadUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *CollaborationThreadUpdate) ClearTicketID() *CollaborationThreadUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CollaborationThreadUpdate) SetTaskID(v string) *CollaborationThreadUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CollaborationThreadUpdate) SetNillableTaskID(v *string) *CollaborationThreadUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *CollaborationThreadUpdate) ClearTaskID() *CollaborationThreadUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollaborationThreadUpdate) SetStatus(v collaborationthread.Status) *CollaborationThreadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollaborationThreadUpdate) SetNillableStatus(v *collaborationthread.Status) *CollaborationThreadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CollaborationThreadUpdate) SetClosedAt(v time.Time) *CollaborationThreadUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CollaborationThreadUpdate) SetNillableClosedAt(v *time.Time) *CollaborationThreadUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CollaborationThreadUpdate) ClearClosedAt() *CollaborationThreadUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollaborationThreadUpdate) SetUpdatedAt(v time.Time) *CollaborationThreadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *CollaborationThreadUpdate) AddMessageIDs(ids ...string) *CollaborationThreadUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *CollaborationThreadUpdate) AddMessages(v ...*AgentMessage) *CollaborationThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the CollaborationThreadMutation object of the builder.
func (_u *CollaborationThreadUpdate) Mutation() *CollaborationThreadMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *CollaborationThreadUpdate) ClearMessages() *CollaborationThreadUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *CollaborationThreadUpdate) RemoveMessageIDs(ids ...string) *CollaborationThreadUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *CollaborationThreadUpdate) RemoveMessages(v ...*AgentMessage) *CollaborationThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollaborationThreadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollaborationThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollaborationThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollaborationThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollaborationThreadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collaborationthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollaborationThreadUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collaborationthread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollaborationThread.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollaborationThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collaborationthread.Table, collaborationthread.Columns, sqlgraph.NewFieldSpec(collaborationthread.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(collaborationthread.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, collaborationthread.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(collaborationthread.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(collaborationthread.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(collaborationthread.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(collaborationthread.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collaborationthread.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(collaborationthread.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(collaborationthread.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collaborationthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collaborationthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollaborationThreadUpdateOne is the builder for updating a single CollaborationThread entity.
type CollaborationThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollaborationThreadMutation
}

// SetParticipants sets the "participants" field.
func (_u *CollaborationThreadUpdateOne) SetParticipants(v []string) *CollaborationThreadUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *CollaborationThreadUpdateOne) AppendParticipants(v []string) *CollaborationThreadUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *CollaborationThreadUpdateOne) SetTicketID(v string) *CollaborationThreadUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *CollaborationThreadUpdateOne) SetNillableTicketID(v *string) *CollaborationThreadUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *CollaborationThreadUpdateOne) ClearTicketID() *CollaborationThreadUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CollaborationThreadUpdateOne) SetTaskID(v string) *CollaborationThreadUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CollaborationThreadUpdateOne) SetNillableTaskID(v *string) *CollaborationThreadUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *CollaborationThreadUpdateOne) ClearTaskID() *CollaborationThreadUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollaborationThreadUpdateOne) SetStatus(v collaborationthread.Status) *CollaborationThreadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollaborationThreadUpdateOne) SetNillableStatus(v *collaborationthread.Status) *CollaborationThreadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *CollaborationThreadUpdateOne) SetClosedAt(v time.Time) *CollaborationThreadUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *CollaborationThreadUpdateOne) SetNillableClosedAt(v *time.Time) *CollaborationThreadUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *CollaborationThreadUpdateOne) ClearClosedAt() *CollaborationThreadUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollaborationThreadUpdateOne) SetUpdatedAt(v time.Time) *CollaborationThreadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the AgentMessage entity by IDs.
func (_u *CollaborationThreadUpdateOne) AddMessageIDs(ids ...string) *CollaborationThreadUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the AgentMessage entity.
func (_u *CollaborationThreadUpdateOne) AddMessages(v ...*AgentMessage) *CollaborationThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the CollaborationThreadMutation object of the builder.
func (_u *CollaborationThreadUpdateOne) Mutation() *CollaborationThreadMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the AgentMessage entity.
func (_u *CollaborationThreadUpdateOne) ClearMessages() *CollaborationThreadUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to AgentMessage entities by IDs.
func (_u *CollaborationThreadUpdateOne) RemoveMessageIDs(ids ...string) *CollaborationThreadUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to AgentMessage entities.
func (_u *CollaborationThreadUpdateOne) RemoveMessages(v ...*AgentMessage) *CollaborationThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the CollaborationThreadUpdate builder.
func (_u *CollaborationThreadUpdateOne) Where(ps ...predicate.CollaborationThread) *CollaborationThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollaborationThreadUpdateOne) Select(field string, fields ...string) *CollaborationThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollaborationThread entity.
func (_u *CollaborationThreadUpdateOne) Save(ctx context.Context) (*CollaborationThread, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollaborationThreadUpdateOne) SaveX(ctx context.Context) *CollaborationThread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollaborationThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollaborationThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollaborationThreadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collaborationthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollaborationThreadUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collaborationthread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollaborationThread.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollaborationThreadUpdateOne) sqlSave(ctx context.Context) (_node *CollaborationThread, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collaborationthread.Table, collaborationthread.Columns, sqlgraph.NewFieldSpec(collaborationthread.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollaborationThread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collaborationthread.FieldID)
		for _, f := range fields {
			if !collaborationthread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collaborationthread.FieldID {
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
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(collaborationthread.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, collaborationthread.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(collaborationthread.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(collaborationthread.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(collaborationthread.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(collaborationthread.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collaborationthread.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(collaborationthread.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(collaborationthread.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collaborationthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CollaborationThread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collaborationthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

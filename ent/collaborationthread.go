// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/collaborationthread"
)

// CollaborationThread is the model entity for the CollaborationThread schema.
type CollaborationThread struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadType holds the value of the "thread_type" field.
	ThreadType collaborationthread.ThreadType `json:"thread_type,omitempty"`
	// Participants holds the value of the "participants" field.
	Participants []string `json:"participants,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID *string `json:"ticket_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *string `json:"task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status collaborationthread.Status `json:"status,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollaborationThreadQuery when eager-loading is set.
	Edges        CollaborationThreadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollaborationThreadEdges holds the relations/edges for other nodes in the graph.
type CollaborationThreadEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*AgentMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e CollaborationThreadEdges) MessagesOrErr() ([]*AgentMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollaborationThread) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collaborationthread.FieldParticipants:
			values[i] = new([]byte)
		case collaborationthread.FieldID, collaborationthread.FieldThreadType, collaborationthread.FieldTicketID, collaborationthread.FieldTaskID, collaborationthread.FieldStatus:
			values[i] = new(sql.NullString)
		case collaborationthread.FieldClosedAt, collaborationthread.FieldCreatedAt, collaborationthread.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollaborationThread fields.
func (_m *CollaborationThread) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collaborationthread.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case collaborationthread.FieldThreadType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_type", values[i])
			} else if value.Valid {
				_m.ThreadType = collaborationthread.ThreadType(value.String)
			}
		case collaborationthread.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case collaborationthread.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = new(string)
				*_m.TicketID = value.String
			}
		case collaborationthread.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case collaborationthread.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = collaborationthread.Status(value.String)
			}
		case collaborationthread.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		case collaborationthread.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collaborationthread.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollaborationThread.
// This includes values selected through modifiers, order, etc.
func (_m *CollaborationThread) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the CollaborationThread entity.
func (_m *CollaborationThread) QueryMessages() *AgentMessageQuery {
	return NewCollaborationThreadClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this CollaborationThread.
// Note that you need to call CollaborationThread.Unwrap() before calling this method if this CollaborationThread
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollaborationThread) Update() *CollaborationThreadUpdateOne {
	return NewCollaborationThreadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollaborationThread entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollaborationThread) Unwrap() *CollaborationThread {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollaborationThread is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollaborationThread) String() string {
	var builder strings.Builder
	builder.WriteString("CollaborationThread(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThreadType))
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	if v := _m.TicketID; v != nil {
		builder.WriteString("ticket_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CollaborationThreads is a parsable slice of CollaborationThread.
type CollaborationThreads []*CollaborationThread

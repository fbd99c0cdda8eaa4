// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/resourcelock"
)

// ResourceLock is the model entity for the ResourceLock schema.
type ResourceLock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ResourceType holds the value of the "resource_type" field.
	ResourceType string `json:"resource_type,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID string `json:"resource_id,omitempty"`
	// LockedByTaskID holds the value of the "locked_by_task_id" field.
	LockedByTaskID string `json:"locked_by_task_id,omitempty"`
	// LockedByAgentID holds the value of the "locked_by_agent_id" field.
	LockedByAgentID string `json:"locked_by_agent_id,omitempty"`
	// LockMode holds the value of the "lock_mode" field.
	LockMode resourcelock.LockMode `json:"lock_mode,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// Version holds the value of the "version" field.
	Version      int `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResourceLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldVersion:
			values[i] = new(sql.NullInt64)
		case resourcelock.FieldID, resourcelock.FieldResourceType, resourcelock.FieldResourceID, resourcelock.FieldLockedByTaskID, resourcelock.FieldLockedByAgentID, resourcelock.FieldLockMode:
			values[i] = new(sql.NullString)
		case resourcelock.FieldAcquiredAt, resourcelock.FieldExpiresAt, resourcelock.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResourceLock fields.
func (_m *ResourceLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case resourcelock.FieldResourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_type", values[i])
			} else if value.Valid {
				_m.ResourceType = value.String
			}
		case resourcelock.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case resourcelock.FieldLockedByTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_by_task_id", values[i])
			} else if value.Valid {
				_m.LockedByTaskID = value.String
			}
		case resourcelock.FieldLockedByAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_by_agent_id", values[i])
			} else if value.Valid {
				_m.LockedByAgentID = value.String
			}
		case resourcelock.FieldLockMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lock_mode", values[i])
			} else if value.Valid {
				_m.LockMode = resourcelock.LockMode(value.String)
			}
		case resourcelock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case resourcelock.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case resourcelock.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case resourcelock.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResourceLock.
// This includes values selected through modifiers, order, etc.
func (_m *ResourceLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResourceLock.
// Note that you need to call ResourceLock.Unwrap() before calling this method if this ResourceLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResourceLock) Update() *ResourceLockUpdateOne {
	return NewResourceLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResourceLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResourceLock) Unwrap() *ResourceLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResourceLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResourceLock) String() string {
	var builder strings.Builder
	builder.WriteString("ResourceLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("resource_type=")
	builder.WriteString(_m.ResourceType)
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("locked_by_task_id=")
	builder.WriteString(_m.LockedByTaskID)
	builder.WriteString(", ")
	builder.WriteString("locked_by_agent_id=")
	builder.WriteString(_m.LockedByAgentID)
	builder.WriteString(", ")
	builder.WriteString("lock_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.LockMode))
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// ResourceLocks is a parsable slice of ResourceLock.
type ResourceLocks []*ResourceLock

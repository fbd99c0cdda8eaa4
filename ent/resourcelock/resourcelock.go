// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resourcelock type in the database.
	Label = "resource_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_id"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldLockedByTaskID holds the string denoting the locked_by_task_id field in the database.
	FieldLockedByTaskID = "locked_by_task_id"
	// FieldLockedByAgentID holds the string denoting the locked_by_agent_id field in the database.
	FieldLockedByAgentID = "locked_by_agent_id"
	// FieldLockMode holds the string denoting the lock_mode field in the database.
	FieldLockMode = "lock_mode"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the resourcelock in the database.
	Table = "resource_locks"
)

// Columns holds all SQL columns for resourcelock fields.
var Columns = []string{
	FieldID,
	FieldResourceType,
	FieldResourceID,
	FieldLockedByTaskID,
	FieldLockedByAgentID,
	FieldLockMode,
	FieldAcquiredAt,
	FieldExpiresAt,
	FieldReleasedAt,
	FieldVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
)

// LockMode defines the type for the "lock_mode" enum field.
type LockMode string

// LockMode values.
const (
	LockModeExclusive LockMode = "exclusive"
	LockModeShared    LockMode = "shared"
)

func (lm LockMode) String() string {
	return string(lm)
}

// LockModeValidator is a validator for the "lock_mode" field enum values. It is called by the builders before save.
func LockModeValidator(lm LockMode) error {
	switch lm {
	case LockModeExclusive, LockModeShared:
		return nil
	default:
		return fmt.Errorf("resourcelock: invalid enum value for lock_mode field: %q", lm)
	}
}

// OrderOption defines the ordering options for the ResourceLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByLockedByTaskID orders the results by the locked_by_task_id field.
func ByLockedByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedByTaskID, opts...).ToFunc()
}

// ByLockedByAgentID orders the results by the locked_by_agent_id field.
func ByLockedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedByAgentID, opts...).ToFunc()
}

// ByLockMode orders the results by the lock_mode field.
func ByLockMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockMode, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

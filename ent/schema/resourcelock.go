package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceLock holds the schema definition for the ResourceLock entity.
// Active locks are rows with released_at IS NULL. Compatibility (at most
// one exclusive OR any number of shared per resource) is enforced by the
// LockManager's transactional acquire path; a partial unique index backs
// the exclusive half so a phantom insert cannot slip past FOR UPDATE.
type ResourceLock struct {
	ent.Schema
}

// Fields of the ResourceLock.
func (ResourceLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_id").
			Unique().
			Immutable(),
		field.String("resource_type").
			Immutable(),
		field.String("resource_id").
			Immutable(),
		field.String("locked_by_task_id").
			Immutable(),
		field.String("locked_by_agent_id").
			Optional().
			Immutable(),
		field.Enum("lock_mode").
			Values("exclusive", "shared").
			Immutable(),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Int("version").
			Default(0),
	}
}

// Indexes of the ResourceLock.
func (ResourceLock) Indexes() []ent.Index {
	return []ent.Index{
		// Active-lock lookups
		index.Fields("resource_type", "resource_id").
			Annotations(entsql.IndexWhere("released_at IS NULL")),
		// One active exclusive lock per resource
		index.Fields("resource_type", "resource_id").
			Unique().
			StorageKey("resourcelock_exclusive_active").
			Annotations(entsql.IndexWhere("released_at IS NULL AND lock_mode = 'exclusive'")),
		index.Fields("locked_by_task_id"),
		// Expiry sweep
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("released_at IS NULL")),
	}
}

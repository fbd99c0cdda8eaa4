package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the append-only
// audit trail of domain events. The row is persisted before any in-process
// publication; the auto-increment ID doubles as the catchup cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The implicit auto-increment int ID is kept — it doubles as the
// monotonic catchup cursor.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
		index.Fields("entity_type", "entity_id"),
		index.Fields("timestamp"),
	}
}

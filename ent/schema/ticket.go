package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// A ticket is the user-submitted unit of work; the consumer breaks it
// down into one or more tasks.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("phase_id").
			Comment("Lifecycle phase (requirements, design, ...) — opaque to the scheduler"),
		field.Enum("status").
			Values("pending", "in_progress", "blocked", "done", "archived").
			Default("pending"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("project_id").
			Optional().
			Nillable(),
		field.Enum("estimate").
			Values("xs", "s", "m", "l", "xl").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("phase_id"),
		index.Fields("status", "created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollaborationThread holds the schema definition for the
// CollaborationThread entity. Threads group related agent messages
// (handoffs, reviews, consultations).
type CollaborationThread struct {
	ent.Schema
}

// Fields of the CollaborationThread.
func (CollaborationThread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.Enum("thread_type").
			Values("handoff", "review", "consultation").
			Immutable(),
		field.JSON("participants", []string{}),
		field.String("ticket_id").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("active", "resolved", "abandoned").
			Default("active"),
		field.Time("closed_at").
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

// Edges of the CollaborationThread.
func (CollaborationThread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CollaborationThread.
func (CollaborationThread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("thread_type", "status"),
		index.Fields("task_id"),
	}
}

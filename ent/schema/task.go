package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/omoi-os/omoios/pkg/models"
)

// Task holds the schema definition for the Task entity.
// A task is the atomic assignable unit dispatched to a single agent.
//
// Dependencies are stored as IDs on the depending task only; the inverse
// ("blocks") relation is derived by index lookup, never stored.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("phase_id").
			Optional().
			Comment("Must equal the assigned agent's phase when set"),
		field.String("task_type"),
		field.Text("description").
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("status").
			Values("pending", "assigned", "running", "completed", "failed", "blocked", "cancelled").
			Default("pending"),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.String("sandbox_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Terminal result or error detail"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Task IDs that must complete before this task is schedulable"),
		field.JSON("required_capabilities", []string{}).
			Optional(),
		field.JSON("required_resources", []models.ResourceRef{}).
			Optional().
			Comment("Locks to acquire at assignment, in deterministic order"),
		field.Float("priority_score").
			Default(0),
		field.Int("version").
			Default(0).
			Comment("Optimistic locking counter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("tasks").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Ready-set scan: pending tasks ordered by score
		index.Fields("status", "priority_score"),
		// Per-agent open work
		index.Fields("assigned_agent_id", "status"),
		index.Fields("ticket_id"),
		index.Fields("status", "created_at"),
	}
}

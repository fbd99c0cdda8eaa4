package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An agent is a long-lived execution principal backed by an external
// runtime; "dead" is terminal for an incarnation.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("agent_type"),
		field.String("phase_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("idle", "running", "degraded", "quarantined", "dead").
			Default("idle"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.Float("anomaly_score").
			Default(0).
			Comment("Composite score in [0,1], written only by the Monitor"),
		field.Int("consecutive_anomalous_readings").
			Default(0),
		field.String("workspace_dir").
			Optional().
			Nillable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("persistence_dir").
			Optional().
			Nillable().
			Comment("Conversation persistence root for out-of-band message delivery"),
		field.Time("last_idle_since").
			Optional().
			Nillable().
			Comment("For longest-idle tie-breaking in assignment"),
		field.Time("last_quarantined_at").
			Optional().
			Nillable().
			Comment("For dead-promotion window tracking"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_type"),
		index.Fields("status", "phase_id"),
	}
}

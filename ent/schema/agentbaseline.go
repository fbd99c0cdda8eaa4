package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentBaseline holds the schema definition for the AgentBaseline entity.
// One row per (agent_type, phase_id), mutated only by the BaselineLearner
// via exponential moving averages.
type AgentBaseline struct {
	ent.Schema
}

// Fields of the AgentBaseline.
func (AgentBaseline) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("baseline_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Immutable(),
		field.String("phase_id").
			Default("").
			Immutable(),
		field.Float("latency_ms").
			Default(0),
		field.Float("latency_std").
			Default(0),
		field.Float("error_rate").
			Default(0),
		field.Float("cpu_usage_percent").
			Default(0),
		field.Float("memory_usage_mb").
			Default(0),
		field.JSON("additional_metrics", map[string]float64{}).
			Optional(),
		field.Int("sample_count").
			Default(0),
		field.Time("last_updated").
			Default(time.Now),
	}
}

// Indexes of the AgentBaseline.
func (AgentBaseline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "phase_id").
			Unique(),
	}
}

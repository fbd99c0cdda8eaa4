package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitorAnomaly holds the schema definition for the MonitorAnomaly entity.
// Append-only; only acknowledged_at is ever updated.
type MonitorAnomaly struct {
	ent.Schema
}

// Fields of the MonitorAnomaly.
func (MonitorAnomaly) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("anomaly_id").
			Unique().
			Immutable(),
		field.String("metric_name").
			Immutable(),
		field.Enum("anomaly_type").
			Values("spike", "drop").
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Immutable(),
		field.Float("baseline_value").
			Immutable(),
		field.Float("observed_value").
			Immutable(),
		field.Float("deviation_percent").
			Immutable(),
		field.JSON("labels", map[string]string{}).
			Optional().
			Immutable(),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MonitorAnomaly.
func (MonitorAnomaly) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("metric_name"),
		index.Fields("detected_at"),
		index.Fields("severity", "detected_at"),
	}
}

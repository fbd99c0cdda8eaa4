// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/agentbaseline"
)

// AgentBaseline is the model entity for the AgentBaseline schema.
type AgentBaseline struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType string `json:"agent_type,omitempty"`
	// PhaseID holds the value of the "phase_id" field.
	PhaseID string `json:"phase_id,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs float64 `json:"latency_ms,omitempty"`
	// LatencyStd holds the value of the "latency_std" field.
	LatencyStd float64 `json:"latency_std,omitempty"`
	// ErrorRate holds the value of the "error_rate" field.
	ErrorRate float64 `json:"error_rate,omitempty"`
	// CPUUsagePercent holds the value of the "cpu_usage_percent" field.
	CPUUsagePercent float64 `json:"cpu_usage_percent,omitempty"`
	// MemoryUsageMB holds the value of the "memory_usage_mb" field.
	MemoryUsageMB float64 `json:"memory_usage_mb,omitempty"`
	// AdditionalMetrics holds the value of the "additional_metrics" field.
	AdditionalMetrics map[string]float64 `json:"additional_metrics,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int `json:"sample_count,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentBaseline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentbaseline.FieldAdditionalMetrics:
			values[i] = new([]byte)
		case agentbaseline.FieldLatencyMs, agentbaseline.FieldLatencyStd, agentbaseline.FieldErrorRate, agentbaseline.FieldCPUUsagePercent, agentbaseline.FieldMemoryUsageMB:
			values[i] = new(sql.NullFloat64)
		case agentbaseline.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case agentbaseline.FieldID, agentbaseline.FieldAgentType, agentbaseline.FieldPhaseID:
			values[i] = new(sql.NullString)
		case agentbaseline.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentBaseline fields.
func (_m *AgentBaseline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentbaseline.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentbaseline.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case agentbaseline.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = value.String
			}
		case agentbaseline.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Float64
			}
		case agentbaseline.FieldLatencyStd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_std", values[i])
			} else if value.Valid {
				_m.LatencyStd = value.Float64
			}
		case agentbaseline.FieldErrorRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_rate", values[i])
			} else if value.Valid {
				_m.ErrorRate = value.Float64
			}
		case agentbaseline.FieldCPUUsagePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_usage_percent", values[i])
			} else if value.Valid {
				_m.CPUUsagePercent = value.Float64
			}
		case agentbaseline.FieldMemoryUsageMB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_usage_mb", values[i])
			} else if value.Valid {
				_m.MemoryUsageMB = value.Float64
			}
		case agentbaseline.FieldAdditionalMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalMetrics); err != nil {
					return fmt.Errorf("unmarshal field additional_metrics: %w", err)
				}
			}
		case agentbaseline.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case agentbaseline.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentBaseline.
// This includes values selected through modifiers, order, etc.
func (_m *AgentBaseline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentBaseline.
// Note that you need to call AgentBaseline.Unwrap() before calling this method if this AgentBaseline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentBaseline) Update() *AgentBaselineUpdateOne {
	return NewAgentBaselineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentBaseline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentBaseline) Unwrap() *AgentBaseline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentBaseline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentBaseline) String() string {
	var builder strings.Builder
	builder.WriteString("AgentBaseline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("phase_id=")
	builder.WriteString(_m.PhaseID)
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("latency_std=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyStd))
	builder.WriteString(", ")
	builder.WriteString("error_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRate))
	builder.WriteString(", ")
	builder.WriteString("cpu_usage_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUUsagePercent))
	builder.WriteString(", ")
	builder.WriteString("memory_usage_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryUsageMB))
	builder.WriteString(", ")
	builder.WriteString("additional_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalMetrics))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentBaselines is a parsable slice of AgentBaseline.
type AgentBaselines []*AgentBaseline

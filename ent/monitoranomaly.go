// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
)

// MonitorAnomaly is the model entity for the MonitorAnomaly schema.
type MonitorAnomaly struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MetricName holds the value of the "metric_name" field.
	MetricName string `json:"metric_name,omitempty"`
	// AnomalyType holds the value of the "anomaly_type" field.
	AnomalyType monitoranomaly.AnomalyType `json:"anomaly_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity monitoranomaly.Severity `json:"severity,omitempty"`
	// BaselineValue holds the value of the "baseline_value" field.
	BaselineValue float64 `json:"baseline_value,omitempty"`
	// ObservedValue holds the value of the "observed_value" field.
	ObservedValue float64 `json:"observed_value,omitempty"`
	// DeviationPercent holds the value of the "deviation_percent" field.
	DeviationPercent float64 `json:"deviation_percent,omitempty"`
	// Labels holds the value of the "labels" field.
	Labels map[string]string `json:"labels,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// AcknowledgedAt holds the value of the "acknowledged_at" field.
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitorAnomaly) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoranomaly.FieldLabels:
			values[i] = new([]byte)
		case monitoranomaly.FieldBaselineValue, monitoranomaly.FieldObservedValue, monitoranomaly.FieldDeviationPercent:
			values[i] = new(sql.NullFloat64)
		case monitoranomaly.FieldID, monitoranomaly.FieldMetricName, monitoranomaly.FieldAnomalyType, monitoranomaly.FieldSeverity:
			values[i] = new(sql.NullString)
		case monitoranomaly.FieldDetectedAt, monitoranomaly.FieldAcknowledgedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitorAnomaly fields.
func (_m *MonitorAnomaly) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoranomaly.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case monitoranomaly.FieldMetricName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_name", values[i])
			} else if value.Valid {
				_m.MetricName = value.String
			}
		case monitoranomaly.FieldAnomalyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly_type", values[i])
			} else if value.Valid {
				_m.AnomalyType = monitoranomaly.AnomalyType(value.String)
			}
		case monitoranomaly.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = monitoranomaly.Severity(value.String)
			}
		case monitoranomaly.FieldBaselineValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_value", values[i])
			} else if value.Valid {
				_m.BaselineValue = value.Float64
			}
		case monitoranomaly.FieldObservedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed_value", values[i])
			} else if value.Valid {
				_m.ObservedValue = value.Float64
			}
		case monitoranomaly.FieldDeviationPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field deviation_percent", values[i])
			} else if value.Valid {
				_m.DeviationPercent = value.Float64
			}
		case monitoranomaly.FieldLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Labels); err != nil {
					return fmt.Errorf("unmarshal field labels: %w", err)
				}
			}
		case monitoranomaly.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		case monitoranomaly.FieldAcknowledgedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_at", values[i])
			} else if value.Valid {
				_m.AcknowledgedAt = new(time.Time)
				*_m.AcknowledgedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonitorAnomaly.
// This includes values selected through modifiers, order, etc.
func (_m *MonitorAnomaly) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MonitorAnomaly.
// Note that you need to call MonitorAnomaly.Unwrap() before calling this method if this MonitorAnomaly
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitorAnomaly) Update() *MonitorAnomalyUpdateOne {
	return NewMonitorAnomalyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitorAnomaly entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitorAnomaly) Unwrap() *MonitorAnomaly {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonitorAnomaly is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitorAnomaly) String() string {
	var builder strings.Builder
	builder.WriteString("MonitorAnomaly(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("metric_name=")
	builder.WriteString(_m.MetricName)
	builder.WriteString(", ")
	builder.WriteString("anomaly_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnomalyType))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("baseline_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineValue))
	builder.WriteString(", ")
	builder.WriteString("observed_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObservedValue))
	builder.WriteString(", ")
	builder.WriteString("deviation_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviationPercent))
	builder.WriteString(", ")
	builder.WriteString("labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Labels))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AcknowledgedAt; v != nil {
		builder.WriteString("acknowledged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MonitorAnomalies is a parsable slice of MonitorAnomaly.
type MonitorAnomalies []*MonitorAnomaly

// Code generated by ent, DO NOT EDIT.

package monitoranomaly

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the monitoranomaly type in the database.
	Label = "monitor_anomaly"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "anomaly_id"
	// FieldMetricName holds the string denoting the metric_name field in the database.
	FieldMetricName = "metric_name"
	// FieldAnomalyType holds the string denoting the anomaly_type field in the database.
	FieldAnomalyType = "anomaly_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldBaselineValue holds the string denoting the baseline_value field in the database.
	FieldBaselineValue = "baseline_value"
	// FieldObservedValue holds the string denoting the observed_value field in the database.
	FieldObservedValue = "observed_value"
	// FieldDeviationPercent holds the string denoting the deviation_percent field in the database.
	FieldDeviationPercent = "deviation_percent"
	// FieldLabels holds the string denoting the labels field in the database.
	FieldLabels = "labels"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// FieldAcknowledgedAt holds the string denoting the acknowledged_at field in the database.
	FieldAcknowledgedAt = "acknowledged_at"
	// Table holds the table name of the monitoranomaly in the database.
	Table = "monitor_anomalies"
)

// Columns holds all SQL columns for monitoranomaly fields.
var Columns = []string{
	FieldID,
	FieldMetricName,
	FieldAnomalyType,
	FieldSeverity,
	FieldBaselineValue,
	FieldObservedValue,
	FieldDeviationPercent,
	FieldLabels,
	FieldDetectedAt,
	FieldAcknowledgedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// AnomalyType defines the type for the "anomaly_type" enum field.
type AnomalyType string

// AnomalyType values.
const (
	AnomalyTypeSpike AnomalyType = "spike"
	AnomalyTypeDrop  AnomalyType = "drop"
)

func (at AnomalyType) String() string {
	return string(at)
}

// AnomalyTypeValidator is a validator for the "anomaly_type" field enum values. It is called by the builders before save.
func AnomalyTypeValidator(at AnomalyType) error {
	switch at {
	case AnomalyTypeSpike, AnomalyTypeDrop:
		return nil
	default:
		return fmt.Errorf("monitoranomaly: invalid enum value for anomaly_type field: %q", at)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("monitoranomaly: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the MonitorAnomaly queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMetricName orders the results by the metric_name field.
func ByMetricName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricName, opts...).ToFunc()
}

// ByAnomalyType orders the results by the anomaly_type field.
func ByAnomalyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByBaselineValue orders the results by the baseline_value field.
func ByBaselineValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineValue, opts...).ToFunc()
}

// ByObservedValue orders the results by the observed_value field.
func ByObservedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedValue, opts...).ToFunc()
}

// ByDeviationPercent orders the results by the deviation_percent field.
func ByDeviationPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviationPercent, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}

// ByAcknowledgedAt orders the results by the acknowledged_at field.
func ByAcknowledgedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedAt, opts...).ToFunc()
}

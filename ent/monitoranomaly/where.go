// Code generated by ent, DO NOT EDIT.

package monitoranomaly

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omoi-os/omoios/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldID, id))
}

// MetricName applies equality check predicate on the "metric_name" field. It's identical to MetricNameEQ.
func MetricName(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldMetricName, v))
}

// BaselineValue applies equality check predicate on the "baseline_value" field. It's identical to BaselineValueEQ.
func BaselineValue(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineValue, v))
}

// ObservedValue applies equality check predicate on the "observed_value" field. It's identical to ObservedValueEQ.
func ObservedValue(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldObservedValue, v))
}

// DeviationPercent applies equality check predicate on the "deviation_percent" field. It's identical to DeviationPercentEQ.
func DeviationPercent(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDeviationPercent, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDetectedAt, v))
}

// AcknowledgedAt applies equality check predicate on the "acknowledged_at" field. It's identical to AcknowledgedAtEQ.
func AcknowledgedAt(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// MetricNameEQ applies the EQ predicate on the "metric_name" field.
func MetricNameEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldMetricName, v))
}

// MetricNameNEQ applies the NEQ predicate on the "metric_name" field.
func MetricNameNEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldMetricName, v))
}

// MetricNameIn applies the In predicate on the "metric_name" field.
func MetricNameIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldMetricName, vs...))
}

// MetricNameNotIn applies the NotIn predicate on the "metric_name" field.
func MetricNameNotIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldMetricName, vs...))
}

// MetricNameGT applies the GT predicate on the "metric_name" field.
func MetricNameGT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldMetricName, v))
}

// MetricNameGTE applies the GTE predicate on the "metric_name" field.
func MetricNameGTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldMetricName, v))
}

// MetricNameLT applies the LT predicate on the "metric_name" field.
func MetricNameLT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldMetricName, v))
}

// MetricNameLTE applies the LTE predicate on the "metric_name" field.
func MetricNameLTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldMetricName, v))
}

// MetricNameContains applies the Contains predicate on the "metric_name" field.
func MetricNameContains(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContains(FieldMetricName, v))
}

// MetricNameHasPrefix applies the HasPrefix predicate on the "metric_name" field.
func MetricNameHasPrefix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasPrefix(FieldMetricName, v))
}

// MetricNameHasSuffix applies the HasSuffix predicate on the "metric_name" field.
func MetricNameHasSuffix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasSuffix(FieldMetricName, v))
}

// MetricNameEqualFold applies the EqualFold predicate on the "metric_name" field.
func MetricNameEqualFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldMetricName, v))
}

// MetricNameContainsFold applies the ContainsFold predicate on the "metric_name" field.
func MetricNameContainsFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldMetricName, v))
}

// AnomalyTypeEQ applies the EQ predicate on the "anomaly_type" field.
func AnomalyTypeEQ(v AnomalyType) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldAnomalyType, v))
}

// AnomalyTypeNEQ applies the NEQ predicate on the "anomaly_type" field.
func AnomalyTypeNEQ(v AnomalyType) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldAnomalyType, v))
}

// AnomalyTypeIn applies the In predicate on the "anomaly_type" field.
func AnomalyTypeIn(vs ...AnomalyType) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldAnomalyType, vs...))
}

// AnomalyTypeNotIn applies the NotIn predicate on the "anomaly_type" field.
func AnomalyTypeNotIn(vs ...AnomalyType) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldAnomalyType, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldSeverity, vs...))
}

// BaselineValueEQ applies the EQ predicate on the "baseline_value" field.
func BaselineValueEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineValue, v))
}

// BaselineValueNEQ applies the NEQ predicate on the "baseline_value" field.
func BaselineValueNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldBaselineValue, v))
}

// BaselineValueIn applies the In predicate on the "baseline_value" field.
func BaselineValueIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldBaselineValue, vs...))
}

// BaselineValueNotIn applies the NotIn predicate on the "baseline_value" field.
func BaselineValueNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldBaselineValue, vs...))
}

// BaselineValueGT applies the GT predicate on the "baseline_value" field.
func BaselineValueGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldBaselineValue, v))
}

// BaselineValueGTE applies the GTE predicate on the "baseline_value" field.
func BaselineValueGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldBaselineValue, v))
}

// BaselineValueLT applies the LT predicate on the "baseline_value" field.
func BaselineValueLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldBaselineValue, v))
}

// BaselineValueLTE applies the LTE predicate on the "baseline_value" field.
func BaselineValueLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldBaselineValue, v))
}

// ObservedValueEQ applies the EQ predicate on the "observed_value" field.
func ObservedValueEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldObservedValue, v))
}

// ObservedValueNEQ applies the NEQ predicate on the "observed_value" field.
func ObservedValueNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldObservedValue, v))
}

// ObservedValueIn applies the In predicate on the "observed_value" field.
func ObservedValueIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldObservedValue, vs...))
}

// ObservedValueNotIn applies the NotIn predicate on the "observed_value" field.
func ObservedValueNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldObservedValue, vs...))
}

// ObservedValueGT applies the GT predicate on the "observed_value" field.
func ObservedValueGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldObservedValue, v))
}

// ObservedValueGTE applies the GTE predicate on the "observed_value" field.
func ObservedValueGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldObservedValue, v))
}

// ObservedValueLT applies the LT predicate on the "observed_value" field.
func ObservedValueLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldObservedValue, v))
}

// ObservedValueLTE applies the LTE predicate on the "observed_value" field.
func ObservedValueLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldObservedValue, v))
}

// DeviationPercentEQ applies the EQ predicate on the "deviation_percent" field.
func DeviationPercentEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDeviationPercent, v))
}

// DeviationPercentNEQ applies the NEQ predicate on the "deviation_percent" field.
func DeviationPercentNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldDeviationPercent, v))
}

// DeviationPercentIn applies the In predicate on the "deviation_percent" field.
func DeviationPercentIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldDeviationPercent, vs...))
}

// DeviationPercentNotIn applies the NotIn predicate on the "deviation_percent" field.
func DeviationPercentNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldDeviationPercent, vs...))
}

// DeviationPercentGT applies the GT predicate on the "deviation_percent" field.
func DeviationPercentGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldDeviationPercent, v))
}

// DeviationPercentGTE applies the GTE predicate on the "deviation_percent" field.
func DeviationPercentGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldDeviationPercent, v))
}

// DeviationPercentLT applies the LT predicate on the "deviation_percent" field.
func DeviationPercentLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldDeviationPercent, v))
}

// DeviationPercentLTE applies the LTE predicate on the "deviation_percent" field.
func DeviationPercentLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldDeviationPercent, v))
}

// LabelsIsNil applies the IsNil predicate on the "labels" field.
func LabelsIsNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIsNull(FieldLabels))
}

// LabelsNotNil applies the NotNil predicate on the "labels" field.
func LabelsNotNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotNull(FieldLabels))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldDetectedAt, v))
}

// AcknowledgedAtEQ applies the EQ predicate on the "acknowledged_at" field.
func AcknowledgedAtEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtNEQ applies the NEQ predicate on the "acknowledged_at" field.
func AcknowledgedAtNEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIn applies the In predicate on the "acknowledged_at" field.
func AcknowledgedAtIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtNotIn applies the NotIn predicate on the "acknowledged_at" field.
func AcknowledgedAtNotIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtGT applies the GT predicate on the "acknowledged_at" field.
func AcknowledgedAtGT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtGTE applies the GTE predicate on the "acknowledged_at" field.
func AcknowledgedAtGTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLT applies the LT predicate on the "acknowledged_at" field.
func AcknowledgedAtLT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLTE applies the LTE predicate on the "acknowledged_at" field.
func AcknowledgedAtLTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIsNil applies the IsNil predicate on the "acknowledged_at" field.
func AcknowledgedAtIsNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIsNull(FieldAcknowledgedAt))
}

// AcknowledgedAtNotNil applies the NotNil predicate on the "acknowledged_at" field.
func AcknowledgedAtNotNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotNull(FieldAcknowledgedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.NotPredicates(p))
}

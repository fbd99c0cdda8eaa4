package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the monitor's view of the platform to Prometheus.
type Metrics struct {
	TasksByStatus    *prometheus.GaugeVec
	AgentsByStatus   *prometheus.GaugeVec
	ActiveLocks      *prometheus.GaugeVec
	AvgTaskDuration  prometheus.Gauge
	AnomaliesTotal   *prometheus.CounterVec
	AgentScores      *prometheus.GaugeVec
	QuarantinesTotal prometheus.Counter
}

// NewMetrics registers the monitor metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TasksByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "omoios",
			Name:      "tasks",
			Help:      "Task counts by status.",
		}, []string{"status"}),
		AgentsByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "omoios",
			Name:      "agents",
			Help:      "Agent counts by status.",
		}, []string{"status"}),
		ActiveLocks: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "omoios",
			Name:      "active_locks",
			Help:      "Active resource locks by type and mode.",
		}, []string{"resource_type", "mode"}),
		AvgTaskDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "omoios",
			Name:      "avg_task_duration_seconds",
			Help:      "Average duration of tasks completed in the trailing window.",
		}),
		AnomaliesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "omoios",
			Name:      "anomalies_total",
			Help:      "Statistical metric anomalies detected, by severity.",
		}, []string{"severity"}),
		AgentScores: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "omoios",
			Name:      "agent_anomaly_score",
			Help:      "Latest composite anomaly score per agent.",
		}, []string{"agent_id"}),
		QuarantinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "omoios",
			Name:      "quarantine_signals_total",
			Help:      "Agent anomaly events emitted with should_quarantine set.",
		}),
	}
}

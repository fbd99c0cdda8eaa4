// Package models contains shared plain-data types exchanged between the
// API layer, the services, and the scheduler. These types are also
// embedded in ent JSON columns, so they must stay free of ent imports.
package models

// Lock modes carried on ResourceRef.
const (
	LockModeExclusive = "exclusive"
	LockModeShared    = "shared"
)

// ResourceRef names a resource a task must lock before it runs.
type ResourceRef struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Mode         string `json:"mode,omitempty"` // "exclusive" (default) or "shared"
}

// HealthMetrics is a heartbeat sample reported by an agent runtime.
// Nil fields are absent; the anomaly scorer treats absent components as 0.
type HealthMetrics struct {
	LatencyMs  *float64           `json:"latency_ms,omitempty"`
	ErrorRate  *float64           `json:"error_rate,omitempty"`
	CPUPercent *float64           `json:"cpu_usage_percent,omitempty"`
	MemoryMB   *float64           `json:"memory_usage_mb,omitempty"`
	Additional map[string]float64 `json:"additional,omitempty"`
}

// TaskDependencies pairs the stored depends_on list with the derived
// inverse relation for API responses.
type TaskDependencies struct {
	DependsOn []string `json:"depends_on"`
	Blocks    []string `json:"blocks"`
}

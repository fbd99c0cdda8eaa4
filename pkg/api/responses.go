package api

import "github.com/omoi-os/omoios/pkg/database"

// HealthCheck is one component's verdict inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Checks   map[string]HealthCheck `json:"checks"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// AckResponse acknowledges an operation with no payload of its own.
type AckResponse struct {
	Status string `json:"status"`
}

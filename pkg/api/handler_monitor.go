package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
)

// listBaselinesHandler handles GET /api/v1/baselines.
func (s *Server) listBaselinesHandler(c *echo.Context) error {
	query := s.dbClient.AgentBaseline.Query()
	if v := c.QueryParam("agent_type"); v != "" {
		query.Where(agentbaseline.AgentTypeEQ(v))
	}
	if v := c.QueryParam("phase_id"); v != "" {
		query.Where(agentbaseline.PhaseIDEQ(v))
	}

	rows, err := query.Order(ent.Asc(agentbaseline.FieldAgentType)).All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// listAnomaliesHandler handles GET /api/v1/anomalies, newest first.
func (s *Server) listAnomaliesHandler(c *echo.Context) error {
	query := s.dbClient.MonitorAnomaly.Query()
	if v := c.QueryParam("metric_name"); v != "" {
		query.Where(monitoranomaly.MetricNameEQ(v))
	}
	if v := c.QueryParam("severity"); v != "" {
		severity := monitoranomaly.Severity(v)
		if err := monitoranomaly.SeverityValidator(severity); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid severity: "+v)
		}
		query.Where(monitoranomaly.SeverityEQ(severity))
	}
	if c.QueryParam("unacknowledged") == "true" {
		query.Where(monitoranomaly.AcknowledgedAtIsNil())
	}

	rows, err := query.
		Order(ent.Desc(monitoranomaly.FieldDetectedAt)).
		Limit(200).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// acknowledgeAnomalyHandler handles POST /api/v1/anomalies/:id/acknowledge.
// Acknowledgement is the only mutation the append-only table permits.
func (s *Server) acknowledgeAnomalyHandler(c *echo.Context) error {
	anomalyID := c.Param("id")
	if anomalyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "anomaly id is required")
	}

	row, err := s.dbClient.MonitorAnomaly.UpdateOneID(anomalyID).
		SetAcknowledgedAt(time.Now()).
		Save(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

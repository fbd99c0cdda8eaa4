package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/pkg/services"
)

// registerAgentHandler handles POST /api/v1/agents.
func (s *Server) registerAgentHandler(c *echo.Context) error {
	var req RegisterAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.agentService.Register(c.Request().Context(), services.RegisterAgentInput{
		AgentType:      req.AgentType,
		PhaseID:        req.PhaseID,
		Capabilities:   req.Capabilities,
		WorkspaceDir:   req.WorkspaceDir,
		PersistenceDir: req.PersistenceDir,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// heartbeatHandler handles POST /api/v1/agents/:id/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.agentService.Heartbeat(c.Request().Context(), agentID, req.Metrics); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &AckResponse{Status: "ok"})
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	row, err := s.agentService.Get(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	rows, err := s.agentService.List(c.Request().Context(), services.AgentFilters{
		Status:    c.QueryParam("status"),
		AgentType: c.QueryParam("agent_type"),
		PhaseID:   c.QueryParam("phase_id"),
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/ent/resourcelock"
	"github.com/omoi-os/omoios/pkg/locks"
)

// listLocksHandler handles GET /api/v1/locks. Only active (unreleased)
// locks are returned.
func (s *Server) listLocksHandler(c *echo.Context) error {
	filters := locks.Filters{
		ResourceType: c.QueryParam("resource_type"),
		TaskID:       c.QueryParam("task_id"),
		AgentID:      c.QueryParam("agent_id"),
	}
	if v := c.QueryParam("mode"); v != "" {
		mode := resourcelock.LockMode(v)
		if err := resourcelock.LockModeValidator(mode); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid mode: "+v)
		}
		filters.Mode = mode
	}

	rows, err := s.lockManager.ListActive(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

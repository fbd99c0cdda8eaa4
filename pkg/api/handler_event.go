package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/pkg/services"
)

// listEventsHandler handles GET /api/v1/events?after_id=N — the catchup
// endpoint over the durable event trail.
func (s *Server) listEventsHandler(c *echo.Context) error {
	afterID := 0
	if v := c.QueryParam("after_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid after_id")
		}
		afterID = n
	}

	filters := services.EventFilters{
		EventType:  c.QueryParam("event_type"),
		EntityType: c.QueryParam("entity_type"),
		EntityID:   c.QueryParam("entity_id"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = n
	}

	rows, err := s.eventService.GetEventsSince(c.Request().Context(), afterID, filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/collaborationthread"
)

// listThreadsHandler handles GET /api/v1/threads.
func (s *Server) listThreadsHandler(c *echo.Context) error {
	query := s.dbClient.CollaborationThread.Query()
	if v := c.QueryParam("status"); v != "" {
		status := collaborationthread.Status(v)
		if err := collaborationthread.StatusValidator(status); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		query.Where(collaborationthread.StatusEQ(status))
	}
	if v := c.QueryParam("task_id"); v != "" {
		query.Where(collaborationthread.TaskIDEQ(v))
	}

	rows, err := query.
		Order(ent.Desc(collaborationthread.FieldCreatedAt)).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getThreadHandler handles GET /api/v1/threads/:id.
func (s *Server) getThreadHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	row, err := s.dbClient.CollaborationThread.Get(c.Request().Context(), threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// listThreadMessagesHandler handles GET /api/v1/threads/:id/messages.
func (s *Server) listThreadMessagesHandler(c *echo.Context) error {
	threadID := c.Param("id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	rows, err := s.collabBus.Messages(c.Request().Context(), threadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

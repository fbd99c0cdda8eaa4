package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/pkg/services"
)

// submitTaskHandler handles POST /api/v1/tasks.
func (s *Server) submitTaskHandler(c *echo.Context) error {
	var req SubmitTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TicketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket_id is required")
	}

	row, err := s.taskService.Submit(c.Request().Context(), services.SubmitTaskInput{
		TicketID:             req.TicketID,
		PhaseID:              req.PhaseID,
		TaskType:             req.TaskType,
		Description:          req.Description,
		Priority:             req.Priority,
		Deadline:             req.Deadline,
		DependsOn:            req.DependsOn,
		RequiredCapabilities: req.RequiredCapabilities,
		RequiredResources:    req.RequiredResources,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	row, err := s.taskService.Cancel(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	row, err := s.taskService.Get(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// taskDependenciesHandler handles GET /api/v1/tasks/:id/dependencies.
func (s *Server) taskDependenciesHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	deps, err := s.taskService.Dependencies(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, deps)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filters := services.TaskFilters{
		TicketID: c.QueryParam("ticket_id"),
		Status:   c.QueryParam("status"),
		AgentID:  c.QueryParam("agent_id"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = n
	}

	rows, err := s.taskService.List(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

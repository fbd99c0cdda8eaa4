package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/omoi-os/omoios/pkg/services"
)

// submitTicketHandler handles POST /api/v1/tickets.
func (s *Server) submitTicketHandler(c *echo.Context) error {
	var req SubmitTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.ticketService.Create(c.Request().Context(), services.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		PhaseID:     req.PhaseID,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		Estimate:    req.Estimate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, row)
}

// updateTicketHandler handles PATCH /api/v1/tickets/:id.
func (s *Server) updateTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	var req UpdateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.ticketService.Update(c.Request().Context(), ticketID, services.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Estimate:    req.Estimate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	row, err := s.ticketService.Get(c.Request().Context(), ticketID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// listTicketsHandler handles GET /api/v1/tickets.
func (s *Server) listTicketsHandler(c *echo.Context) error {
	filters := services.TicketFilters{
		Status:  c.QueryParam("status"),
		PhaseID: c.QueryParam("phase_id"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = n
	}

	rows, err := s.ticketService.List(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Package api exposes the inbound HTTP surface: ticket/task submission,
// agent registration and heartbeats, and list/get endpoints over every
// stored entity.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omoi-os/omoios/pkg/collab"
	"github.com/omoi-os/omoios/pkg/database"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/scheduler"
	"github.com/omoi-os/omoios/pkg/services"
)

// Server wires the HTTP routes to the domain services.
type Server struct {
	dbClient *database.Client

	ticketService *services.TicketService
	taskService   *services.TaskService
	agentService  *services.AgentService
	eventService  *services.EventService
	lockManager   *locks.Manager
	collabBus     *collab.Bus
	orchestrator  *scheduler.Orchestrator

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
// orchestrator and collabBus may be nil (reduced health/collab surface).
func NewServer(
	dbClient *database.Client,
	ticketService *services.TicketService,
	taskService *services.TaskService,
	agentService *services.AgentService,
	eventService *services.EventService,
	lockManager *locks.Manager,
	collabBus *collab.Bus,
	orchestrator *scheduler.Orchestrator,
	gatherer prometheus.Gatherer,
) *Server {
	s := &Server{
		dbClient:      dbClient,
		ticketService: ticketService,
		taskService:   taskService,
		agentService:  agentService,
		eventService:  eventService,
		lockManager:   lockManager,
		collabBus:     collabBus,
		orchestrator:  orchestrator,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/api/v1")

	v1.POST("/tickets", s.submitTicketHandler)
	v1.GET("/tickets", s.listTicketsHandler)
	v1.GET("/tickets/:id", s.getTicketHandler)
	v1.PATCH("/tickets/:id", s.updateTicketHandler)

	v1.POST("/tasks", s.submitTaskHandler)
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.GET("/tasks/:id/dependencies", s.taskDependenciesHandler)
	v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)

	v1.POST("/agents", s.registerAgentHandler)
	v1.GET("/agents", s.listAgentsHandler)
	v1.GET("/agents/:id", s.getAgentHandler)
	v1.POST("/agents/:id/heartbeat", s.heartbeatHandler)

	v1.GET("/locks", s.listLocksHandler)

	v1.GET("/baselines", s.listBaselinesHandler)
	v1.GET("/anomalies", s.listAnomaliesHandler)
	v1.POST("/anomalies/:id/acknowledge", s.acknowledgeAnomalyHandler)

	v1.GET("/threads", s.listThreadsHandler)
	v1.GET("/threads/:id", s.getThreadHandler)
	v1.GET("/threads/:id/messages", s.listThreadMessagesHandler)

	v1.GET("/events", s.listEventsHandler)

	v1.GET("/health", s.healthHandler)

	s.echo = e
	return s
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/collab"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/database"
	"github.com/omoi-os/omoios/pkg/events"
	"github.com/omoi-os/omoios/pkg/locks"
	"github.com/omoi-os/omoios/pkg/monitor"
	"github.com/omoi-os/omoios/pkg/services"
	"github.com/omoi-os/omoios/test/util"
)

type apiFixture struct {
	server *Server
	client *ent.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)

	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(entClient, bus)

	cfg := config.DefaultConfig()
	lockMgr := locks.NewManager(entClient, publisher, cfg.Locks)
	collabBus := collab.NewBus(entClient, publisher, nil)

	registry := prometheus.NewRegistry()
	monitor.NewMetrics(registry)

	server := NewServer(
		dbClient,
		services.NewTicketService(entClient, publisher),
		services.NewTaskService(entClient),
		services.NewAgentService(entClient, publisher, nil),
		services.NewEventService(entClient),
		lockMgr,
		collabBus,
		nil,
		registry,
	)
	return &apiFixture{server: server, client: entClient}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTicketAndTaskLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/tickets", SubmitTicketRequest{
		Title:    "Ship exports",
		PhaseID:  "implementation",
		Priority: "high",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ticket := decode[map[string]any](t, rec)
	ticketID := ticket["id"].(string)

	rec = f.do(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{
		TicketID: ticketID,
		TaskType: "build",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decode[map[string]any](t, rec)
	taskID := task["id"].(string)
	assert.Equal(t, "pending", task["status"])

	rec = f.do(t, http.MethodGet, "/api/v1/tasks?ticket_id="+ticketID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%s/cancel", taskID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decode[map[string]any](t, rec)["status"])

	// Cancelled is terminal.
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%s/cancel", taskID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitValidationErrorsOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/tickets", SubmitTicketRequest{PhaseID: "design"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{TicketID: "missing", TaskType: "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/tasks", SubmitTaskRequest{TaskType: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgentEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/agents", RegisterAgentRequest{
		AgentType:    "coder",
		Capabilities: []string{"go"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	agent := decode[map[string]any](t, rec)
	agentID := agent["id"].(string)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/agents/%s/heartbeat", agentID), HeartbeatRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[AckResponse](t, rec).Status)

	rec = f.do(t, http.MethodPost, "/api/v1/agents/unknown/heartbeat", HeartbeatRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/agents?status=idle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestEventCatchupEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	for i := 0; i < 3; i++ {
		rec := f.do(t, http.MethodPost, "/api/v1/tickets", SubmitTicketRequest{
			Title:   fmt.Sprintf("t%d", i),
			PhaseID: "design",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]map[string]any](t, rec)
	require.Len(t, all, 3)

	cursor := int(all[0]["id"].(float64))
	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/events?after_id=%d", cursor), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = f.do(t, http.MethodGet, "/api/v1/events?after_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, healthStatusHealthy, health.Checks["database"].Status)

	rec = f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "omoios_avg_task_duration_seconds")
}

package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent"
)

// fakeRuntimeServer stands in for the external agent-runtime service.
type fakeRuntimeServer struct {
	mu       sync.Mutex
	injected []string
	resumed  []string
	cancels  int
}

func (f *fakeRuntimeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		var req startSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(startSessionResponse{
			ConversationID: "conv-" + req.TaskID,
			SandboxID:      "sbx-" + req.TaskID,
		})
	})
	mux.HandleFunc("GET /v1/sessions/{id}/events", func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		lines := []string{
			`{"kind":"heartbeat","metrics":{"latency_ms":120}}`,
			`{"kind":"tool_use","tool":"bash"}`,
			`{"kind":"completion","result":{"exit":"ok"}}`,
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
			flusher.Flush()
		}
	})
	mux.HandleFunc("POST /v1/sessions/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.injected = append(f.injected, body["text"])
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /v1/sessions/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.cancels++
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /v1/conversations/{id}/resume", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.resumed = append(f.resumed, r.PathValue("id")+":"+body["text"])
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestHTTPRuntimeSessionLifecycle(t *testing.T) {
	fake := &fakeRuntimeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	runtime := NewHTTPRuntime(srv.URL)
	task := &ent.Task{ID: "t1", TaskType: "build"}
	agent := &ent.Agent{ID: "a1", AgentType: "coder"}

	handle, err := runtime.Start(context.Background(), task, agent)
	require.NoError(t, err)
	assert.Equal(t, "conv-t1", handle.ConversationID())
	assert.Equal(t, "sbx-t1", handle.SandboxID())

	var got []RuntimeEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-handle.Events():
			if !ok {
				goto done
			}
			got = append(got, evt)
		case <-timeout:
			t.Fatal("timed out waiting for event stream")
		}
	}
done:
	require.Len(t, got, 3)
	assert.Equal(t, RuntimeHeartbeat, got[0].Kind)
	require.NotNil(t, got[0].Metrics.LatencyMs)
	assert.Equal(t, 120.0, *got[0].Metrics.LatencyMs)
	assert.Equal(t, RuntimeToolUse, got[1].Kind)
	assert.Equal(t, "bash", got[1].Tool)
	assert.Equal(t, RuntimeCompletion, got[2].Kind)
	assert.Equal(t, map[string]interface{}{"exit": "ok"}, got[2].Result)

	ok, err := runtime.InjectMessage(context.Background(), handle, "status?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = runtime.Cancel(context.Background(), handle)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = runtime.ResumeConversation(context.Background(), "conv-t1", "/tmp/conv", "ping")
	require.NoError(t, err)
	assert.True(t, ok)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []string{"status?"}, fake.injected)
	assert.Equal(t, 1, fake.cancels)
	assert.Equal(t, []string{"conv-t1:ping"}, fake.resumed)
}

func TestHTTPRuntimeStartErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no capacity", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	runtime := NewHTTPRuntime(srv.URL)
	_, err := runtime.Start(context.Background(), &ent.Task{ID: "t1"}, &ent.Agent{ID: "a1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPSandboxOperations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sandboxes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"sandbox_id": "sbx-9"})
	})
	mux.HandleFunc("POST /v1/sandboxes/{id}/exec", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"stdout":    "ran: " + body["cmd"],
			"exit_code": 0,
		})
	})
	mux.HandleFunc("POST /v1/sandboxes/{id}/preview", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"url": fmt.Sprintf("https://%s-%d.preview.test", r.PathValue("id"), body["port"]),
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sandbox := NewHTTPSandbox(srv.URL)

	id, err := sandbox.Spawn(context.Background(), "omoios/agent:latest", map[string]string{"cpu": "2"})
	require.NoError(t, err)
	assert.Equal(t, "sbx-9", id)

	stdout, exitCode, err := sandbox.Exec(context.Background(), id, "make test")
	require.NoError(t, err)
	assert.Equal(t, "ran: make test", stdout)
	assert.Equal(t, 0, exitCode)

	url, err := sandbox.GetPreviewURL(context.Background(), id, 8080)
	require.NoError(t, err)
	assert.Equal(t, "https://sbx-9-8080.preview.test", url)
}

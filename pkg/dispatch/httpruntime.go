package dispatch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/models"
)

// HTTPRuntime speaks to an external agent-runtime service over HTTP.
// Sessions are opened with a POST; the session's asynchronous reports
// arrive on a newline-delimited JSON stream that maps 1:1 onto
// RuntimeEvent.
type HTTPRuntime struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRuntime creates a runtime client. The stream connection has no
// overall timeout (sessions are long-lived); control calls get their
// deadline from the caller's context.
func NewHTTPRuntime(baseURL string) *HTTPRuntime {
	return &HTTPRuntime{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type startSessionRequest struct {
	TaskID       string               `json:"task_id"`
	AgentID      string               `json:"agent_id"`
	AgentType    string               `json:"agent_type"`
	TaskType     string               `json:"task_type"`
	Description  string               `json:"description,omitempty"`
	WorkspaceDir string               `json:"workspace_dir,omitempty"`
	Resources    []models.ResourceRef `json:"required_resources,omitempty"`
}

type startSessionResponse struct {
	ConversationID string `json:"conversation_id"`
	SandboxID      string `json:"sandbox_id,omitempty"`
}

// wireEvent is one line of the session event stream.
type wireEvent struct {
	Kind    string                 `json:"kind"`
	Metrics models.HealthMetrics   `json:"metrics,omitempty"`
	Tool    string                 `json:"tool,omitempty"`
	Result  map[string]interface{} `json:"result,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

type httpHandle struct {
	conversationID string
	sandboxID      string
	events         chan RuntimeEvent
	cancelStream   context.CancelFunc
}

func (h *httpHandle) ConversationID() string      { return h.conversationID }
func (h *httpHandle) SandboxID() string           { return h.sandboxID }
func (h *httpHandle) Events() <-chan RuntimeEvent { return h.events }

// Start opens a session and begins consuming its event stream.
func (r *HTTPRuntime) Start(ctx context.Context, task *ent.Task, agent *ent.Agent) (Handle, error) {
	req := startSessionRequest{
		TaskID:      task.ID,
		AgentID:     agent.ID,
		AgentType:   agent.AgentType,
		TaskType:    task.TaskType,
		Description: task.Description,
		Resources:   task.RequiredResources,
	}
	if agent.WorkspaceDir != nil {
		req.WorkspaceDir = *agent.WorkspaceDir
	}

	var resp startSessionResponse
	if err := r.post(ctx, "/v1/sessions", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	if resp.ConversationID == "" {
		return nil, fmt.Errorf("runtime returned no conversation id for task %s", task.ID)
	}

	// The stream outlives the Start call; it is torn down by Cancel or
	// by the runtime closing its side.
	streamCtx, cancelStream := context.WithCancel(context.WithoutCancel(ctx))
	handle := &httpHandle{
		conversationID: resp.ConversationID,
		sandboxID:      resp.SandboxID,
		events:         make(chan RuntimeEvent, 16),
		cancelStream:   cancelStream,
	}

	streamURL := fmt.Sprintf("%s/v1/sessions/%s/events", r.baseURL, resp.ConversationID)
	streamReq, err := http.NewRequestWithContext(streamCtx, http.MethodGet, streamURL, nil)
	if err != nil {
		cancelStream()
		return nil, fmt.Errorf("failed to build stream request: %w", err)
	}
	streamResp, err := r.client.Do(streamReq)
	if err != nil {
		cancelStream()
		return nil, fmt.Errorf("failed to open event stream: %w", err)
	}
	if streamResp.StatusCode != http.StatusOK {
		_ = streamResp.Body.Close()
		cancelStream()
		return nil, fmt.Errorf("event stream returned status %d", streamResp.StatusCode)
	}

	go consumeStream(handle, streamResp.Body)
	return handle, nil
}

// consumeStream decodes newline-delimited JSON events until the runtime
// closes the connection, then closes the handle's channel.
func consumeStream(h *httpHandle, body io.ReadCloser) {
	defer close(h.events)
	defer func() { _ = body.Close() }()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var we wireEvent
		if err := json.Unmarshal(line, &we); err != nil {
			slog.Warn("Dropping malformed runtime event",
				"conversation_id", h.conversationID, "error", err)
			continue
		}
		h.events <- RuntimeEvent{
			Kind:    RuntimeEventKind(we.Kind),
			Metrics: we.Metrics,
			Tool:    we.Tool,
			Result:  we.Result,
			Error:   we.Error,
		}
	}
}

// InjectMessage delivers text into a live session.
func (r *HTTPRuntime) InjectMessage(ctx context.Context, handle Handle, text string) (bool, error) {
	path := fmt.Sprintf("/v1/sessions/%s/messages", handle.ConversationID())
	if err := r.post(ctx, path, map[string]string{"text": text}, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Cancel asks the runtime to stop the session and tears down the local
// stream.
func (r *HTTPRuntime) Cancel(ctx context.Context, handle Handle) (bool, error) {
	path := fmt.Sprintf("/v1/sessions/%s/cancel", handle.ConversationID())
	err := r.post(ctx, path, nil, nil)
	if h, ok := handle.(*httpHandle); ok {
		h.cancelStream()
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ResumeConversation reopens a persisted conversation for one message.
func (r *HTTPRuntime) ResumeConversation(ctx context.Context, conversationID, persistenceDir, text string) (bool, error) {
	path := fmt.Sprintf("/v1/conversations/%s/resume", conversationID)
	body := map[string]string{
		"persistence_dir": persistenceDir,
		"text":            text,
	}
	if err := r.post(ctx, path, body, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (r *HTTPRuntime) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("runtime returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// HTTPSandbox speaks to an external sandbox provider over HTTP. Every
// call is bounded by the caller's context; message injection callers
// apply the collaboration delivery timeout.
type HTTPSandbox struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSandbox creates a sandbox client.
func NewHTTPSandbox(baseURL string) *HTTPSandbox {
	return &HTTPSandbox{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Spawn provisions a sandbox and returns its ID.
func (s *HTTPSandbox) Spawn(ctx context.Context, image string, resources map[string]string) (string, error) {
	var resp struct {
		SandboxID string `json:"sandbox_id"`
	}
	body := map[string]any{"image": image, "resources": resources}
	if err := s.post(ctx, "/v1/sandboxes", body, &resp); err != nil {
		return "", fmt.Errorf("failed to spawn sandbox: %w", err)
	}
	return resp.SandboxID, nil
}

// Exec runs a command in the sandbox.
func (s *HTTPSandbox) Exec(ctx context.Context, sandboxID, cmd string) (string, int, error) {
	var resp struct {
		Stdout   string `json:"stdout"`
		ExitCode int    `json:"exit_code"`
	}
	path := fmt.Sprintf("/v1/sandboxes/%s/exec", sandboxID)
	if err := s.post(ctx, path, map[string]string{"cmd": cmd}, &resp); err != nil {
		return "", 0, fmt.Errorf("failed to exec in sandbox %s: %w", sandboxID, err)
	}
	return resp.Stdout, resp.ExitCode, nil
}

// GetPreviewURL returns the public URL for a port exposed by the sandbox.
func (s *HTTPSandbox) GetPreviewURL(ctx context.Context, sandboxID string, port int) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	path := fmt.Sprintf("/v1/sandboxes/%s/preview", sandboxID)
	if err := s.post(ctx, path, map[string]int{"port": port}, &resp); err != nil {
		return "", fmt.Errorf("failed to get preview url: %w", err)
	}
	return resp.URL, nil
}

// InjectMessage delivers text to the agent process inside the sandbox.
func (s *HTTPSandbox) InjectMessage(ctx context.Context, sandboxID, text string) error {
	path := fmt.Sprintf("/v1/sandboxes/%s/messages", sandboxID)
	return s.post(ctx, path, map[string]string{"text": text}, nil)
}

func (s *HTTPSandbox) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rawResp, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sandbox returned status %d: %s", resp.StatusCode, bytes.TrimSpace(rawResp))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

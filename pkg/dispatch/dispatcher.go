package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/config"
)

// Manager runs one dispatcher goroutine per in-flight (task, agent)
// pairing. It implements the orchestrator's Dispatcher hook.
type Manager struct {
	client      *ent.Client
	runtime     AgentRuntime
	transitions Transitions
	sink        HeartbeatSink
	cfg         *config.DispatcherConfig

	mu       sync.Mutex
	byTask   map[string]*session
	byAgent  map[string]*session
	wg       sync.WaitGroup
	shutdown bool
}

type session struct {
	taskID  string
	agentID string
	handle  Handle
	cancel  context.CancelFunc
}

// NewManager wires the dispatcher. sink may be nil when heartbeat relay
// is not wanted.
func NewManager(client *ent.Client, runtime AgentRuntime, transitions Transitions, sink HeartbeatSink, cfg *config.DispatcherConfig) *Manager {
	return &Manager{
		client:      client,
		runtime:     runtime,
		transitions: transitions,
		sink:        sink,
		cfg:         cfg,
		byTask:      make(map[string]*session),
		byAgent:     make(map[string]*session),
	}
}

// Dispatch starts a runtime session for the pairing and supervises it in
// the background. A start failure is reported as a task failure so the
// retry budget applies.
func (m *Manager) Dispatch(ctx context.Context, task *ent.Task, agent *ent.Agent) {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		m.run(context.WithoutCancel(ctx), task, agent)
	}()
}

// InjectToAgent delivers text into the agent's live session, if one
// exists.
func (m *Manager) InjectToAgent(ctx context.Context, agentID, text string) bool {
	m.mu.Lock()
	s := m.byAgent[agentID]
	m.mu.Unlock()
	if s == nil {
		return false
	}
	ok, err := m.runtime.InjectMessage(ctx, s.handle, text)
	if err != nil {
		slog.Warn("Message injection failed", "agent_id", agentID, "error", err)
		return false
	}
	return ok
}

// HasSession reports whether an agent has a live runtime session.
func (m *Manager) HasSession(agentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byAgent[agentID] != nil
}

// CancelTask requests agent-side cancellation of the task's session.
func (m *Manager) CancelTask(ctx context.Context, taskID string) bool {
	m.mu.Lock()
	s := m.byTask[taskID]
	m.mu.Unlock()
	if s == nil {
		return false
	}
	if _, err := m.runtime.Cancel(ctx, s.handle); err != nil {
		slog.Warn("Runtime cancel failed", "task_id", taskID, "error", err)
	}
	s.cancel()
	return true
}

// Stop cancels every live session and waits for supervisors to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	m.shutdown = true
	sessions := make([]*session, 0, len(m.byTask))
	for _, s := range m.byTask {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.cancel()
	}
	m.wg.Wait()
	slog.Info("Dispatcher stopped")
}

func (m *Manager) run(ctx context.Context, task *ent.Task, agent *ent.Agent) {
	log := slog.With("task_id", task.ID, "agent_id", agent.ID)

	handle, err := m.runtime.Start(ctx, task, agent)
	if err != nil {
		log.Error("Runtime start failed", "error", err)
		if err := m.transitions.Fail(ctx, task.ID, fmt.Sprintf("runtime start failed: %v", err)); err != nil {
			log.Error("Failed to report start failure", "error", err)
		}
		return
	}

	sessCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s := &session{taskID: task.ID, agentID: agent.ID, handle: handle, cancel: cancel}

	m.mu.Lock()
	m.byTask[task.ID] = s
	m.byAgent[agent.ID] = s
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.byTask, task.ID)
		delete(m.byAgent, agent.ID)
		m.mu.Unlock()
	}()

	if err := m.transitions.MarkRunning(ctx, task.ID, handle.SandboxID()); err != nil {
		log.Error("Failed to mark task running", "error", err)
	}
	if handle.ConversationID() != "" {
		if err := m.client.Agent.UpdateOneID(agent.ID).
			SetConversationID(handle.ConversationID()).
			Exec(ctx); err != nil {
			log.Warn("Failed to record conversation id", "error", err)
		}
	}

	m.supervise(sessCtx, log, task, agent, handle)
}

// supervise consumes runtime events until a terminal report, a missed
// heartbeat budget, or the task deadline.
func (m *Manager) supervise(ctx context.Context, log *slog.Logger, task *ent.Task, agent *ent.Agent, handle Handle) {
	deadline := time.NewTimer(m.taskDeadline(task))
	defer deadline.Stop()

	watchdogWindow := time.Duration(m.cfg.HeartbeatMissLimit) * m.cfg.HeartbeatInterval
	watchdog := time.NewTimer(watchdogWindow)
	defer watchdog.Stop()

	for {
		select {
		case <-ctx.Done():
			_, _ = m.runtime.Cancel(context.WithoutCancel(ctx), handle)
			return

		case <-watchdog.C:
			log.Warn("Heartbeat budget exhausted", "window", watchdogWindow)
			_, _ = m.runtime.Cancel(ctx, handle)
			if err := m.transitions.HeartbeatTimeout(ctx, task.ID); err != nil {
				log.Error("Failed to report heartbeat timeout", "error", err)
			}
			return

		case <-deadline.C:
			m.expireDeadline(ctx, log, task, handle)
			return

		case evt, ok := <-handle.Events():
			if !ok {
				// Session ended without a terminal report.
				if err := m.transitions.Fail(ctx, task.ID, "runtime session closed unexpectedly"); err != nil {
					log.Error("Failed to report session loss", "error", err)
				}
				return
			}
			switch evt.Kind {
			case RuntimeHeartbeat:
				if !watchdog.Stop() {
					<-watchdog.C
				}
				watchdog.Reset(watchdogWindow)
				m.recordHeartbeat(ctx, log, agent.ID, evt)

			case RuntimeToolUse:
				log.Debug("Tool use", "tool", evt.Tool)

			case RuntimeCompletion:
				if err := m.transitions.Complete(ctx, task.ID, evt.Result); err != nil {
					log.Error("Failed to report completion", "error", err)
				}
				// The session is over; release the event stream so its
				// reader goroutine exits instead of buffering forever.
				_, _ = m.runtime.Cancel(ctx, handle)
				return

			case RuntimeFailure:
				if err := m.transitions.Fail(ctx, task.ID, evt.Error); err != nil {
					log.Error("Failed to report failure", "error", err)
				}
				_, _ = m.runtime.Cancel(ctx, handle)
				return
			}
		}
	}
}

// expireDeadline requests agent-side cancellation, grants the grace
// period for a final report, then marks the task failed.
func (m *Manager) expireDeadline(ctx context.Context, log *slog.Logger, task *ent.Task, handle Handle) {
	log.Warn("Task deadline exceeded, cancelling")
	_, _ = m.runtime.Cancel(ctx, handle)

	grace := time.NewTimer(m.cfg.CancelGracePeriod)
	defer grace.Stop()
	for {
		select {
		case <-grace.C:
			if err := m.transitions.Fail(ctx, task.ID, "task deadline exceeded"); err != nil {
				log.Error("Failed to report deadline failure", "error", err)
			}
			return
		case evt, ok := <-handle.Events():
			if !ok {
				if err := m.transitions.Fail(ctx, task.ID, "task deadline exceeded"); err != nil {
					log.Error("Failed to report deadline failure", "error", err)
				}
				return
			}
			if evt.Kind == RuntimeCompletion {
				// Finished under the wire.
				if err := m.transitions.Complete(ctx, task.ID, evt.Result); err != nil {
					log.Error("Failed to report completion", "error", err)
				}
				return
			}
		}
	}
}

func (m *Manager) recordHeartbeat(ctx context.Context, log *slog.Logger, agentID string, evt RuntimeEvent) {
	if err := m.client.Agent.UpdateOneID(agentID).
		SetLastHeartbeat(time.Now()).
		Exec(ctx); err != nil {
		log.Warn("Failed to record heartbeat", "error", err)
	}
	if m.sink != nil {
		m.sink.ReportHeartbeat(agentID, evt.Metrics)
	}
}

// taskDeadline is the larger of the configured default timeout and the
// task's own deadline.
func (m *Manager) taskDeadline(task *ent.Task) time.Duration {
	d := m.cfg.DefaultTaskTimeout
	if task.Deadline != nil {
		if until := time.Until(*task.Deadline); until > d {
			d = until
		}
	}
	return d
}

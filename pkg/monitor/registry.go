package monitor

import (
	"sync"
	"time"

	"github.com/omoi-os/omoios/pkg/models"
)

// agentSample is the freshest heartbeat data held for one agent between
// monitor ticks.
type agentSample struct {
	metrics    models.HealthMetrics
	reportedAt time.Time
	consumed   bool // baseline already learned from this sample

	completed int
	failed    int
}

// Registry buffers heartbeat metrics and task outcomes between ticks.
// The API layer writes heartbeats into it; the monitor's bus subscriber
// writes outcomes; the monitor tick drains it. Baselines stay single-
// writer because only the tick folds samples into the learner.
type Registry struct {
	mu     sync.Mutex
	agents map[string]*agentSample
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]*agentSample)}
}

// ReportHeartbeat records the latest health metrics for an agent.
func (r *Registry) ReportHeartbeat(agentID string, metrics models.HealthMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sample(agentID)
	s.metrics = metrics
	s.reportedAt = time.Now()
	s.consumed = false
}

// ReportOutcome counts a terminal task result against its agent.
func (r *Registry) ReportOutcome(agentID string, failed bool) {
	if agentID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sample(agentID)
	if failed {
		s.failed++
	} else {
		s.completed++
	}
}

// Snapshot returns the agent's latest metrics, whether they are new
// since the last snapshot, and the failure ratio of outcomes seen since
// then. Outcome counters reset on read; metrics stay for scoring.
func (r *Registry) Snapshot(agentID string) (metrics models.HealthMetrics, fresh bool, failureRatio float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.agents[agentID]
	if !ok {
		return models.HealthMetrics{}, false, 0
	}

	fresh = !s.consumed && !s.reportedAt.IsZero()
	s.consumed = true

	if total := s.completed + s.failed; total > 0 {
		failureRatio = float64(s.failed) / float64(total)
	}
	s.completed, s.failed = 0, 0

	return s.metrics, fresh, failureRatio
}

// Forget drops all buffered state for an agent.
func (r *Registry) Forget(agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, agentID)
}

func (r *Registry) sample(agentID string) *agentSample {
	s, ok := r.agents[agentID]
	if !ok {
		s = &agentSample{}
		r.agents[agentID] = s
	}
	return s
}

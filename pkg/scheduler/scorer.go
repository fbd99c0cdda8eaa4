// Package scheduler contains the priority scorer and the orchestrator:
// the single serial loop that ranks pending tasks, matches them to idle
// agents, takes their resource locks, and dispatches.
package scheduler

import (
	"time"

	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/config"
)

// deadlineDecayWindow is how long past the SLA urgency window the
// deadline signal takes to decay linearly to zero.
const deadlineDecayWindow = time.Hour

// ScoreInput carries the signals the scorer reads for one pending task.
type ScoreInput struct {
	Priority   task.Priority
	CreatedAt  time.Time
	Deadline   *time.Time
	Dependents int // direct pending dependents
	RetryCount int
}

// Scorer computes priority scores for pending tasks. All component
// signals are normalized to [0,1] before weighting, and the final score
// stays in [0,1].
type Scorer struct {
	cfg *config.SchedulerConfig
}

// NewScorer creates a priority scorer with the given policy knobs.
func NewScorer(cfg *config.SchedulerConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the composite priority score at the given instant.
func (s *Scorer) Score(in ScoreInput, now time.Time) float64 {
	age := now.Sub(in.CreatedAt)

	deadline, slaUrgent := s.deadlineSignal(in.Deadline, now)

	w := s.cfg.Weights
	score := w.Priority*priorityBase(in.Priority) +
		w.Age*clip01(age.Seconds()/s.cfg.AgeCeiling.Seconds()) +
		w.Deadline*deadline +
		w.Blockers*clip01(float64(in.Dependents)/float64(s.cfg.BlockerCeiling)) +
		w.Retry*(1/(1+float64(in.RetryCount)))

	if slaUrgent {
		score *= s.cfg.SLABoost
	}
	score = clip01(score)

	if age >= s.cfg.StarvationLimit && score < s.cfg.StarvationFloor {
		score = s.cfg.StarvationFloor
	}
	return score
}

// deadlineSignal returns the normalized deadline component and whether
// the task is inside the SLA urgency window. No deadline means 0.
// Within the window (or past due) the signal is 1; beyond it, the signal
// decays linearly to 0 over the next hour.
func (s *Scorer) deadlineSignal(deadline *time.Time, now time.Time) (float64, bool) {
	if deadline == nil {
		return 0, false
	}
	until := deadline.Sub(now)
	if until <= s.cfg.SLAUrgencyWindow {
		return 1, true
	}
	over := until - s.cfg.SLAUrgencyWindow
	return clip01(1 - over.Seconds()/deadlineDecayWindow.Seconds()), false
}

func priorityBase(p task.Priority) float64 {
	switch p {
	case task.PriorityCritical:
		return 1.0
	case task.PriorityHigh:
		return 0.75
	case task.PriorityMedium:
		return 0.5
	case task.PriorityLow:
		return 0.25
	default:
		return 0.5
	}
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/omoi-os/omoios/ent/task"
	"github.com/omoi-os/omoios/pkg/config"
)

func testScorer() *Scorer {
	cfg := config.DefaultConfig()
	return NewScorer(cfg.Scheduler)
}

func TestScoreFreshTaskIsWeightedBase(t *testing.T) {
	s := testScorer()
	now := time.Now()

	// Fresh HIGH task, no deadline, no dependents, no retries:
	// 0.45*0.75 + 0.20*0 + 0.15*0 + 0.15*0 + 0.05*1 = 0.3875
	score := s.Score(ScoreInput{Priority: task.PriorityHigh, CreatedAt: now}, now)
	assert.InDelta(t, 0.3875, score, 1e-9)
}

func TestScoreStaysInBounds(t *testing.T) {
	s := testScorer()
	now := time.Now()
	soon := now.Add(time.Minute)

	// Everything maxed plus the SLA boost must still cap at 1.
	score := s.Score(ScoreInput{
		Priority:   task.PriorityCritical,
		CreatedAt:  now.Add(-10 * time.Hour),
		Deadline:   &soon,
		Dependents: 50,
	}, now)
	assert.Equal(t, 1.0, score)

	score = s.Score(ScoreInput{Priority: task.PriorityLow, CreatedAt: now, RetryCount: 1000}, now)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestDeadlineSignal(t *testing.T) {
	s := testScorer()
	now := time.Now()

	// No deadline contributes nothing.
	signal, urgent := s.deadlineSignal(nil, now)
	assert.Zero(t, signal)
	assert.False(t, urgent)

	// Inside the 900 s urgency window: full signal, boost applies.
	in5 := now.Add(5 * time.Minute)
	signal, urgent = s.deadlineSignal(&in5, now)
	assert.Equal(t, 1.0, signal)
	assert.True(t, urgent)

	// Past due counts as urgent too.
	past := now.Add(-time.Minute)
	signal, urgent = s.deadlineSignal(&past, now)
	assert.Equal(t, 1.0, signal)
	assert.True(t, urgent)

	// 30 min past the window: halfway through the hour-long decay.
	in45 := now.Add(45 * time.Minute)
	signal, urgent = s.deadlineSignal(&in45, now)
	assert.InDelta(t, 0.5, signal, 1e-9)
	assert.False(t, urgent)

	// Far out: fully decayed.
	tomorrow := now.Add(24 * time.Hour)
	signal, urgent = s.deadlineSignal(&tomorrow, now)
	assert.Zero(t, signal)
	assert.False(t, urgent)
}

func TestSLABoostMultiplies(t *testing.T) {
	s := testScorer()
	now := time.Now()
	soon := now.Add(5 * time.Minute)

	// MEDIUM with urgent deadline:
	// (0.45*0.5 + 0.15*1 + 0.05*1) * 1.25 = 0.425 * 1.25 = 0.53125
	score := s.Score(ScoreInput{Priority: task.PriorityMedium, CreatedAt: now, Deadline: &soon}, now)
	assert.InDelta(t, 0.53125, score, 1e-9)
}

func TestRetryPenaltyNeverReachesZero(t *testing.T) {
	s := testScorer()
	now := time.Now()

	fresh := s.Score(ScoreInput{Priority: task.PriorityMedium, CreatedAt: now}, now)
	once := s.Score(ScoreInput{Priority: task.PriorityMedium, CreatedAt: now, RetryCount: 1}, now)
	many := s.Score(ScoreInput{Priority: task.PriorityMedium, CreatedAt: now, RetryCount: 9}, now)

	assert.Greater(t, fresh, once)
	assert.Greater(t, once, many)
	// 0.45*0.5 = 0.225 floor from the base signal alone
	assert.Greater(t, many, 0.225)
}

func TestStarvationFloorBeatsFreshHighPriority(t *testing.T) {
	s := testScorer()
	now := time.Now()

	low := s.Score(ScoreInput{
		Priority:  task.PriorityLow,
		CreatedAt: now.Add(-7201 * time.Second),
	}, now)
	high := s.Score(ScoreInput{Priority: task.PriorityHigh, CreatedAt: now}, now)

	assert.Equal(t, 0.6, low)
	assert.Greater(t, low, high)
}

func TestBlockerSignalSaturates(t *testing.T) {
	s := testScorer()
	now := time.Now()

	few := s.Score(ScoreInput{Priority: task.PriorityLow, CreatedAt: now, Dependents: 5}, now)
	many := s.Score(ScoreInput{Priority: task.PriorityLow, CreatedAt: now, Dependents: 10}, now)
	more := s.Score(ScoreInput{Priority: task.PriorityLow, CreatedAt: now, Dependents: 100}, now)

	assert.Greater(t, many, few)
	assert.Equal(t, many, more)
}

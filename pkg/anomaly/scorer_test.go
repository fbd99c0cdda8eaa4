package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/models"
)

func fp(v float64) *float64 { return &v }

func testScorer() *Scorer {
	cfg := config.DefaultConfig()
	return NewScorer(cfg.Anomaly)
}

func TestScoreZeroForHealthyAgent(t *testing.T) {
	s := testScorer()
	baseline := &ent.AgentBaseline{LatencyMs: 100, LatencyStd: 10, ErrorRate: 0.05, CPUUsagePercent: 50, MemoryUsageMB: 512}

	b := s.Score(Sample{
		AgentID: "agent-1",
		Metrics: models.HealthMetrics{
			LatencyMs:  fp(100),
			CPUPercent: fp(50),
			MemoryMB:   fp(512),
		},
		Baseline:     baseline,
		FailureRatio: 0,
	})

	assert.Zero(t, b.Latency)
	assert.Zero(t, b.Error)
	assert.Zero(t, b.Resource)
	assert.Zero(t, b.Queue)
	assert.Zero(t, b.Composite)
}

func TestScoreMissingInputsContributeNothing(t *testing.T) {
	s := testScorer()

	// No baseline, no metrics: only the error EMA (raw) and queue remain.
	b := s.Score(Sample{AgentID: "agent-1", FailureRatio: 0.5, BlockingCount: 5})

	assert.Zero(t, b.Latency)
	assert.Zero(t, b.Resource)
	assert.InDelta(t, 0.5, b.Error, 1e-9)
	assert.InDelta(t, 0.5, b.Queue, 1e-9)
	assert.InDelta(t, 0.30*0.5+0.15*0.5, b.Composite, 1e-9)
}

func TestLatencyZScoreSaturatesAtThreeSigma(t *testing.T) {
	s := testScorer()
	baseline := &ent.AgentBaseline{LatencyMs: 100, LatencyStd: 10}

	// 1.5 sigma above the mean: |z|/3 = 0.5.
	b := s.Score(Sample{AgentID: "a", Metrics: models.HealthMetrics{LatencyMs: fp(115)}, Baseline: baseline})
	assert.InDelta(t, 0.5, b.Latency, 1e-9)

	// 10 sigma saturates to 1.
	b = s.Score(Sample{AgentID: "b", Metrics: models.HealthMetrics{LatencyMs: fp(200)}, Baseline: baseline})
	assert.InDelta(t, 1.0, b.Latency, 1e-9)

	// Unknown spread contributes nothing.
	b = s.Score(Sample{AgentID: "c", Metrics: models.HealthMetrics{LatencyMs: fp(200)}, Baseline: &ent.AgentBaseline{LatencyMs: 100}})
	assert.Zero(t, b.Latency)
}

func TestErrorComponentRelativeToBaseline(t *testing.T) {
	s := testScorer()
	baseline := &ent.AgentBaseline{ErrorRate: 0.1}

	// First observation seeds the EMA; 0.2 against a 0.1 baseline is a
	// 100% relative increase, clipped to 1.
	b := s.Score(Sample{AgentID: "agent-1", Baseline: baseline, FailureRatio: 0.2})
	assert.InDelta(t, 1.0, b.Error, 1e-9)

	// Below baseline clamps to zero rather than going negative.
	b = s.Score(Sample{AgentID: "agent-2", Baseline: baseline, FailureRatio: 0.05})
	assert.Zero(t, b.Error)
}

func TestErrorEMAAccumulatesPerAgent(t *testing.T) {
	s := testScorer()

	first := s.Score(Sample{AgentID: "agent-1", FailureRatio: 1.0})
	assert.InDelta(t, 1.0, first.Error, 1e-9)

	// alpha=0.1: 0.1*0 + 0.9*1.0 = 0.9
	second := s.Score(Sample{AgentID: "agent-1", FailureRatio: 0})
	assert.InDelta(t, 0.9, second.Error, 1e-9)

	// Other agents are unaffected.
	other := s.Score(Sample{AgentID: "agent-2", FailureRatio: 0})
	assert.Zero(t, other.Error)

	// Forget resets the history.
	s.Forget("agent-1")
	reset := s.Score(Sample{AgentID: "agent-1", FailureRatio: 0})
	assert.Zero(t, reset.Error)
}

func TestResourceSkewAveragesCPUAndMemory(t *testing.T) {
	s := testScorer()
	baseline := &ent.AgentBaseline{CPUUsagePercent: 50, MemoryUsageMB: 1000}

	// CPU doubled (skew 1.0 via |100-50|/50), memory on baseline (0).
	b := s.Score(Sample{
		AgentID:  "agent-1",
		Metrics:  models.HealthMetrics{CPUPercent: fp(100), MemoryMB: fp(1000)},
		Baseline: baseline,
	})
	assert.InDelta(t, 0.5, b.Resource, 1e-9)

	// Only CPU present: no dilution by the absent metric.
	b = s.Score(Sample{
		AgentID:  "agent-2",
		Metrics:  models.HealthMetrics{CPUPercent: fp(100)},
		Baseline: baseline,
	})
	assert.InDelta(t, 1.0, b.Resource, 1e-9)
}

func TestQueueImpactSaturatesAtTen(t *testing.T) {
	s := testScorer()

	b := s.Score(Sample{AgentID: "a", BlockingCount: 4})
	assert.InDelta(t, 0.4, b.Queue, 1e-9)

	b = s.Score(Sample{AgentID: "b", BlockingCount: 25})
	assert.InDelta(t, 1.0, b.Queue, 1e-9)
}

func TestCompositeWeighting(t *testing.T) {
	s := testScorer()
	baseline := &ent.AgentBaseline{LatencyMs: 100, LatencyStd: 10, CPUUsagePercent: 50, MemoryUsageMB: 1000}

	// Everything maxed out still lands exactly at 1.
	b := s.Score(Sample{
		AgentID:       "agent-1",
		Metrics:       models.HealthMetrics{LatencyMs: fp(1000), CPUPercent: fp(500), MemoryMB: fp(50000)},
		Baseline:      baseline,
		FailureRatio:  1.0,
		BlockingCount: 100,
	})
	assert.InDelta(t, 1.0, b.Composite, 1e-9)
}

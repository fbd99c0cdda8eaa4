package anomaly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/models"
	"github.com/omoi-os/omoios/test/util"
)

func newTestLearner(t *testing.T) *BaselineLearner {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultConfig()
	return NewBaselineLearner(client, cfg.Anomaly)
}

func TestLearnSeedsFirstObservation(t *testing.T) {
	learner := newTestLearner(t)
	ctx := context.Background()

	baseline, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{
		LatencyMs:  fp(120),
		ErrorRate:  fp(0.02),
		CPUPercent: fp(35),
		MemoryMB:   fp(800),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, baseline.SampleCount)
	assert.InDelta(t, 120, baseline.LatencyMs, 1e-9)
	assert.InDelta(t, 0.02, baseline.ErrorRate, 1e-9)
	assert.InDelta(t, 35, baseline.CPUUsagePercent, 1e-9)
	assert.InDelta(t, 800, baseline.MemoryUsageMB, 1e-9)
}

func TestLearnAppliesEMA(t *testing.T) {
	learner := newTestLearner(t)
	ctx := context.Background()

	_, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{LatencyMs: fp(100)})
	require.NoError(t, err)

	// alpha=0.1: 0.1*200 + 0.9*100 = 110
	baseline, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{LatencyMs: fp(200)})
	require.NoError(t, err)

	assert.Equal(t, 2, baseline.SampleCount)
	assert.InDelta(t, 110, baseline.LatencyMs, 1e-9)
	// Spread EMA: 0.1*|200-100| + 0.9*0 = 10
	assert.InDelta(t, 10, baseline.LatencyStd, 1e-9)
}

func TestLearnSkipsAbsentFields(t *testing.T) {
	learner := newTestLearner(t)
	ctx := context.Background()

	_, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{
		LatencyMs: fp(100),
		ErrorRate: fp(0.5),
	})
	require.NoError(t, err)

	// A latency-only update must not move the error rate toward zero.
	baseline, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{LatencyMs: fp(100)})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, baseline.ErrorRate, 1e-9)
}

func TestBaselinesKeyedByTypeAndPhase(t *testing.T) {
	learner := newTestLearner(t)
	ctx := context.Background()

	_, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{LatencyMs: fp(100)})
	require.NoError(t, err)
	_, err = learner.Learn(ctx, "worker", "review", models.HealthMetrics{LatencyMs: fp(500)})
	require.NoError(t, err)

	build, err := learner.Get(ctx, "worker", "build")
	require.NoError(t, err)
	require.NotNil(t, build)
	assert.InDelta(t, 100, build.LatencyMs, 1e-9)

	review, err := learner.Get(ctx, "worker", "review")
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.InDelta(t, 500, review.LatencyMs, 1e-9)

	missing, err := learner.Get(ctx, "planner", "build")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDecayShrinksEveryNumericField(t *testing.T) {
	learner := newTestLearner(t)
	ctx := context.Background()

	_, err := learner.Learn(ctx, "worker", "build", models.HealthMetrics{
		LatencyMs:  fp(100),
		ErrorRate:  fp(0.2),
		CPUPercent: fp(50),
		MemoryMB:   fp(1000),
		Additional: map[string]float64{"tokens_per_min": 3000},
	})
	require.NoError(t, err)

	require.NoError(t, learner.Decay(ctx, "worker", "build"))

	baseline, err := learner.Get(ctx, "worker", "build")
	require.NoError(t, err)
	require.NotNil(t, baseline)
	assert.InDelta(t, 90, baseline.LatencyMs, 1e-9)
	assert.InDelta(t, 0.18, baseline.ErrorRate, 1e-9)
	assert.InDelta(t, 45, baseline.CPUUsagePercent, 1e-9)
	assert.InDelta(t, 900, baseline.MemoryUsageMB, 1e-9)
	assert.InDelta(t, 2700, baseline.AdditionalMetrics["tokens_per_min"], 1e-9)

	// Decaying a baseline that does not exist is a no-op.
	require.NoError(t, learner.Decay(ctx, "planner", "build"))
}

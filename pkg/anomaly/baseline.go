// Package anomaly holds the behavioral baseline learner and the composite
// anomaly scorer used by the monitor to judge agent health.
package anomaly

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/agentbaseline"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/models"
)

// BaselineLearner maintains one EMA baseline row per (agent_type, phase_id).
// Only the learner mutates baselines; the scorer reads them.
type BaselineLearner struct {
	client *ent.Client
	alpha  float64
	decay  float64
}

// NewBaselineLearner creates a learner with the configured EMA alpha and
// post-resurrection decay factor.
func NewBaselineLearner(client *ent.Client, cfg *config.AnomalyConfig) *BaselineLearner {
	return &BaselineLearner{
		client: client,
		alpha:  cfg.BaselineAlpha,
		decay:  cfg.DecayFactor,
	}
}

// Learn folds an observation into the baseline for (agentType, phaseID).
// The first observation seeds the row verbatim; subsequent ones apply
// new = alpha*observed + (1-alpha)*current per numeric field present.
func (l *BaselineLearner) Learn(ctx context.Context, agentType, phaseID string, metrics models.HealthMetrics) (*ent.AgentBaseline, error) {
	now := time.Now()

	current, err := l.Get(ctx, agentType, phaseID)
	if err != nil {
		return nil, err
	}

	if current == nil {
		create := l.client.AgentBaseline.Create().
			SetID(uuid.New().String()).
			SetAgentType(agentType).
			SetPhaseID(phaseID).
			SetSampleCount(1).
			SetLastUpdated(now)
		if metrics.LatencyMs != nil {
			create.SetLatencyMs(*metrics.LatencyMs)
		}
		if metrics.ErrorRate != nil {
			create.SetErrorRate(*metrics.ErrorRate)
		}
		if metrics.CPUPercent != nil {
			create.SetCPUUsagePercent(*metrics.CPUPercent)
		}
		if metrics.MemoryMB != nil {
			create.SetMemoryUsageMB(*metrics.MemoryMB)
		}
		if len(metrics.Additional) > 0 {
			create.SetAdditionalMetrics(metrics.Additional)
		}
		baseline, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert baseline: %w", err)
		}
		return baseline, nil
	}

	update := current.Update().
		SetSampleCount(current.SampleCount + 1).
		SetLastUpdated(now)
	if metrics.LatencyMs != nil {
		mean := l.ema(*metrics.LatencyMs, current.LatencyMs)
		update.SetLatencyMs(mean)
		// Track spread as an EMA of absolute deviation from the running
		// mean, so the scorer has a sigma to normalize z-scores against.
		update.SetLatencyStd(l.ema(abs(*metrics.LatencyMs-current.LatencyMs), current.LatencyStd))
	}
	if metrics.ErrorRate != nil {
		update.SetErrorRate(l.ema(*metrics.ErrorRate, current.ErrorRate))
	}
	if metrics.CPUPercent != nil {
		update.SetCPUUsagePercent(l.ema(*metrics.CPUPercent, current.CPUUsagePercent))
	}
	if metrics.MemoryMB != nil {
		update.SetMemoryUsageMB(l.ema(*metrics.MemoryMB, current.MemoryUsageMB))
	}
	if len(metrics.Additional) > 0 {
		merged := make(map[string]float64, len(current.AdditionalMetrics)+len(metrics.Additional))
		for k, v := range current.AdditionalMetrics {
			merged[k] = v
		}
		for k, observed := range metrics.Additional {
			if prev, ok := merged[k]; ok {
				merged[k] = l.ema(observed, prev)
			} else {
				merged[k] = observed
			}
		}
		update.SetAdditionalMetrics(merged)
	}

	baseline, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update baseline: %w", err)
	}
	return baseline, nil
}

// Decay multiplies every numeric baseline field by the decay factor.
// Called when an agent is resurrected so the restarted agent is not
// judged against its pre-restart behavior at full weight.
func (l *BaselineLearner) Decay(ctx context.Context, agentType, phaseID string) error {
	current, err := l.Get(ctx, agentType, phaseID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	decayed := make(map[string]float64, len(current.AdditionalMetrics))
	for k, v := range current.AdditionalMetrics {
		decayed[k] = v * l.decay
	}

	_, err = current.Update().
		SetLatencyMs(current.LatencyMs * l.decay).
		SetLatencyStd(current.LatencyStd * l.decay).
		SetErrorRate(current.ErrorRate * l.decay).
		SetCPUUsagePercent(current.CPUUsagePercent * l.decay).
		SetMemoryUsageMB(current.MemoryUsageMB * l.decay).
		SetAdditionalMetrics(decayed).
		SetLastUpdated(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to decay baseline: %w", err)
	}
	return nil
}

// Get returns the baseline for (agentType, phaseID), or nil when none
// has been learned yet.
func (l *BaselineLearner) Get(ctx context.Context, agentType, phaseID string) (*ent.AgentBaseline, error) {
	baseline, err := l.client.AgentBaseline.Query().
		Where(
			agentbaseline.AgentTypeEQ(agentType),
			agentbaseline.PhaseIDEQ(phaseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	return baseline, nil
}

func (l *BaselineLearner) ema(observed, current float64) float64 {
	return l.alpha*observed + (1-l.alpha)*current
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

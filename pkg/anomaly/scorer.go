package anomaly

import (
	"math"
	"sync"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/pkg/config"
	"github.com/omoi-os/omoios/pkg/models"
)

// Component weights of the composite score.
const (
	weightLatency  = 0.35
	weightError    = 0.30
	weightResource = 0.20
	weightQueue    = 0.15

	// A |z| of 3 sigma saturates the latency component.
	latencySaturationZ = 3.0
	// Ten blocked dependents saturate the queue component.
	queueSaturation = 10.0
)

// Sample is one scoring observation for an agent. Missing pieces (nil
// baseline, absent metrics) contribute 0 to their component.
type Sample struct {
	AgentID  string
	Metrics  models.HealthMetrics
	Baseline *ent.AgentBaseline
	// FailureRatio is the agent's recent task failure ratio in [0,1],
	// folded into the per-agent error EMA.
	FailureRatio float64
	// BlockingCount is the weighted count of pending tasks blocked behind
	// this agent's assignments (critical dependents count double).
	BlockingCount float64
}

// Breakdown is a scored sample with its per-component contributions,
// each already in [0,1] before weighting.
type Breakdown struct {
	Latency   float64
	Error     float64
	Resource  float64
	Queue     float64
	Composite float64
}

// Scorer computes the composite anomaly score for an agent. It is pure
// apart from the per-agent error-rate EMA it carries between calls.
type Scorer struct {
	mu       sync.Mutex
	errEMA   map[string]float64
	emaAlpha float64
}

// NewScorer creates a scorer with the configured error-EMA alpha.
func NewScorer(cfg *config.AnomalyConfig) *Scorer {
	return &Scorer{
		errEMA:   make(map[string]float64),
		emaAlpha: cfg.ErrorEMAAlpha,
	}
}

// Score computes the weighted composite for one sample.
func (s *Scorer) Score(sample Sample) Breakdown {
	b := Breakdown{
		Latency:  s.latencyComponent(sample),
		Error:    s.errorComponent(sample),
		Resource: s.resourceComponent(sample),
		Queue:    clip01(sample.BlockingCount / queueSaturation),
	}
	b.Composite = clip01(weightLatency*b.Latency +
		weightError*b.Error +
		weightResource*b.Resource +
		weightQueue*b.Queue)
	return b
}

// Forget drops the error EMA for an agent. Called when an agent is
// resurrected so stale failure history does not follow it back.
func (s *Scorer) Forget(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errEMA, agentID)
}

// latencyComponent is min(1, |z|/3) with z = (observed - mean) / std.
func (s *Scorer) latencyComponent(sample Sample) float64 {
	if sample.Metrics.LatencyMs == nil || sample.Baseline == nil {
		return 0
	}
	std := sample.Baseline.LatencyStd
	if std <= 0 {
		return 0
	}
	z := (*sample.Metrics.LatencyMs - sample.Baseline.LatencyMs) / std
	return clip01(math.Abs(z) / latencySaturationZ)
}

// errorComponent folds the failure ratio into the agent's EMA and
// reports it relative to the learned baseline error rate when one
// exists, raw otherwise.
func (s *Scorer) errorComponent(sample Sample) float64 {
	s.mu.Lock()
	prev, seen := s.errEMA[sample.AgentID]
	var ema float64
	if seen {
		ema = s.emaAlpha*sample.FailureRatio + (1-s.emaAlpha)*prev
	} else {
		ema = sample.FailureRatio
	}
	s.errEMA[sample.AgentID] = ema
	s.mu.Unlock()

	if sample.Baseline != nil && sample.Baseline.ErrorRate > 0 {
		// Relative increase over the learned rate.
		return clip01((ema - sample.Baseline.ErrorRate) / sample.Baseline.ErrorRate)
	}
	return clip01(ema)
}

// resourceComponent averages CPU and memory skew against the baseline,
// each skew being min(1, |observed - baseline| / max(baseline, 1)).
func (s *Scorer) resourceComponent(sample Sample) float64 {
	if sample.Baseline == nil {
		return 0
	}
	var sum float64
	var n int
	if sample.Metrics.CPUPercent != nil {
		sum += skew(*sample.Metrics.CPUPercent, sample.Baseline.CPUUsagePercent)
		n++
	}
	if sample.Metrics.MemoryMB != nil {
		sum += skew(*sample.Metrics.MemoryMB, sample.Baseline.MemoryUsageMB)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func skew(observed, baseline float64) float64 {
	return clip01(math.Abs(observed-baseline) / math.Max(baseline, 1))
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

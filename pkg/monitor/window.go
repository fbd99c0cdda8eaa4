// Package monitor runs the periodic metric collection loop: rolling
// statistical anomaly detection over platform metrics and composite
// anomaly scoring for every active agent.
package monitor

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/omoi-os/omoios/ent/monitoranomaly"
)

// Deviation is a statistical anomaly detected by a rolling window.
type Deviation struct {
	MetricName       string
	Labels           map[string]string
	AnomalyType      monitoranomaly.AnomalyType
	Severity         monitoranomaly.Severity
	BaselineValue    float64
	ObservedValue    float64
	DeviationPercent float64
}

// window is a bounded sample history for one (metric, label-set) series.
type window struct {
	samples []float64
	cap     int
}

func (w *window) push(v float64) {
	w.samples = append(w.samples, v)
	if len(w.samples) > w.cap {
		w.samples = w.samples[len(w.samples)-w.cap:]
	}
}

func (w *window) stats() (mean, std float64) {
	n := float64(len(w.samples))
	for _, v := range w.samples {
		mean += v
	}
	mean /= n
	for _, v := range w.samples {
		std += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(std / n)
}

// Windows tracks rolling histories for all observed metric series.
type Windows struct {
	mu          sync.Mutex
	series      map[string]*window
	cap         int
	minSamples  int
	sensitivity float64
}

// NewWindows creates an empty rolling-window registry.
func NewWindows(cap, minSamples int, sensitivity float64) *Windows {
	return &Windows{
		series:      make(map[string]*window),
		cap:         cap,
		minSamples:  minSamples,
		sensitivity: sensitivity,
	}
}

// Observe appends a sample to the series for (metric, labels) and
// returns a Deviation when the value falls outside sensitivity·std of
// the rolling mean. Series with fewer than the minimum samples never
// report, whatever the value.
func (w *Windows) Observe(metric string, labels map[string]string, value float64) *Deviation {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := seriesKey(metric, labels)
	win, ok := w.series[key]
	if !ok {
		win = &window{cap: w.cap}
		w.series[key] = win
	}

	var dev *Deviation
	if len(win.samples) >= w.minSamples {
		mean, std := win.stats()
		if diff := math.Abs(value - mean); std > 0 && diff > w.sensitivity*std {
			anomalyType := monitoranomaly.AnomalyTypeSpike
			if value < mean {
				anomalyType = monitoranomaly.AnomalyTypeDrop
			}
			var pct float64
			if mean != 0 {
				pct = (value - mean) / math.Abs(mean) * 100
			}
			dev = &Deviation{
				MetricName:       metric,
				Labels:           labels,
				AnomalyType:      anomalyType,
				Severity:         severityFor(diff / std),
				BaselineValue:    mean,
				ObservedValue:    value,
				DeviationPercent: pct,
			}
		}
	}

	win.push(value)
	return dev
}

// severityFor maps a deviation in sigma units onto the severity ladder.
func severityFor(sigmas float64) monitoranomaly.Severity {
	switch {
	case sigmas > 3:
		return monitoranomaly.SeverityCritical
	case sigmas > 2.5:
		return monitoranomaly.SeverityError
	case sigmas > 2:
		return monitoranomaly.SeverityWarning
	default:
		return monitoranomaly.SeverityInfo
	}
}

func seriesKey(metric string, labels map[string]string) string {
	if len(labels) == 0 {
		return metric
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(metric)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	return b.String()
}

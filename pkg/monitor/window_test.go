package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoi-os/omoios/ent/monitoranomaly"
)

// seed fills a series with alternating 90/110 samples: mean 100, std 10.
func seed(w *Windows, metric string, n int) {
	for i := 0; i < n; i++ {
		v := 90.0
		if i%2 == 1 {
			v = 110.0
		}
		w.Observe(metric, nil, v)
	}
}

func TestNoAnomaliesBelowMinSamples(t *testing.T) {
	w := NewWindows(100, 10, 2.0)

	// Nine wildly different samples: still warming up, never reports.
	for i := 0; i < 9; i++ {
		assert.Nil(t, w.Observe("m", nil, float64(i*1000)))
	}
}

func TestSpikeAndDropDetection(t *testing.T) {
	w := NewWindows(100, 10, 2.0)
	seed(w, "m", 10)

	dev := w.Observe("m", nil, 150)
	require.NotNil(t, dev)
	assert.Equal(t, monitoranomaly.AnomalyTypeSpike, dev.AnomalyType)
	assert.InDelta(t, 100, dev.BaselineValue, 1e-9)
	assert.InDelta(t, 150, dev.ObservedValue, 1e-9)
	assert.InDelta(t, 50, dev.DeviationPercent, 1e-9)

	w2 := NewWindows(100, 10, 2.0)
	seed(w2, "m", 10)
	dev = w2.Observe("m", nil, 50)
	require.NotNil(t, dev)
	assert.Equal(t, monitoranomaly.AnomalyTypeDrop, dev.AnomalyType)
}

func TestWithinSensitivityIsQuiet(t *testing.T) {
	w := NewWindows(100, 10, 2.0)
	seed(w, "m", 10)

	// 1.5 sigma away: inside the 2 sigma envelope.
	assert.Nil(t, w.Observe("m", nil, 115))
}

func TestSeverityLadder(t *testing.T) {
	cases := []struct {
		value    float64
		severity monitoranomaly.Severity
	}{
		{121, monitoranomaly.SeverityWarning},  // 2.1 sigma
		{126, monitoranomaly.SeverityError},    // 2.6 sigma
		{131, monitoranomaly.SeverityCritical}, // 3.1 sigma
	}
	for _, tc := range cases {
		w := NewWindows(100, 10, 2.0)
		seed(w, "m", 10)
		dev := w.Observe("m", nil, tc.value)
		require.NotNil(t, dev, "value %.0f", tc.value)
		assert.Equal(t, tc.severity, dev.Severity, "value %.0f", tc.value)
	}
}

func TestSeriesAreIndependentPerLabelSet(t *testing.T) {
	w := NewWindows(100, 10, 2.0)
	seed(w, "m", 10)

	// Same metric name with labels is a fresh series still warming up.
	assert.Nil(t, w.Observe("m", map[string]string{"status": "pending"}, 10000))
	// The unlabeled series still detects.
	assert.NotNil(t, w.Observe("m", nil, 200))
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	w := NewWindows(10, 10, 2.0)
	seed(w, "m", 10)

	// Ten samples around 1000 push out the 90/110 era entirely.
	for i := 0; i < 10; i++ {
		w.Observe("m", nil, 1000+float64(i%2)*20)
	}

	// Against the new regime, 1010 is unremarkable.
	assert.Nil(t, w.Observe("m", nil, 1010))
}

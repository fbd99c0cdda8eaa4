package config

import "time"

// DefaultConfig returns the built-in defaults. User YAML values are
// merged over these.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: &SchedulerConfig{
			TickInterval:     5 * time.Second,
			TopK:             100,
			MaxRetries:       3,
			AgeCeiling:       time.Hour,
			SLAUrgencyWindow: 15 * time.Minute,
			StarvationLimit:  2 * time.Hour,
			StarvationFloor:  0.6,
			BlockerCeiling:   10,
			SLABoost:         1.25,
			Weights: ScoreWeights{
				Priority: 0.45,
				Age:      0.20,
				Deadline: 0.15,
				Blockers: 0.15,
				Retry:    0.05,
			},
		},
		Monitor: &MonitorConfig{
			TickInterval:        30 * time.Second,
			Sensitivity:         2.0,
			HistoryCap:          100,
			MinSamples:          10,
			TaskDurationWindow:  time.Hour,
			HeartbeatStaleAfter: 2 * time.Minute,
		},
		Anomaly: &AnomalyConfig{
			Threshold:          0.8,
			QuarantineReadings: 3,
			ErrorEMAAlpha:      0.1,
			BaselineAlpha:      0.1,
			DecayFactor:        0.9,
		},
		Guardian: &GuardianConfig{
			ResurrectionCooldown: 5 * time.Minute,
			DeadPromotionWindow:  30 * time.Minute,
			SweepInterval:        30 * time.Second,
		},
		Dispatcher: &DispatcherConfig{
			DefaultTaskTimeout:      15 * time.Minute,
			HeartbeatInterval:       10 * time.Second,
			HeartbeatMissLimit:      3,
			CancelGracePeriod:       30 * time.Second,
			GracefulShutdownTimeout: 60 * time.Second,
		},
		Collab: &CollabConfig{
			DeliveryTimeout: 30 * time.Second,
		},
		Locks: &LockConfig{
			DefaultTTL:    0,
			SweepInterval: 30 * time.Second,
		},
		Events: &EventsConfig{
			BufferSize: 256,
		},
		Retention: &RetentionConfig{
			EventTTL:        24 * time.Hour,
			AnomalyTTL:      7 * 24 * time.Hour,
			CleanupInterval: time.Hour,
		},
	}
}

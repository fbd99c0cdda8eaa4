// Package config loads and validates the OmoiOS core configuration.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and passed explicitly into every component constructor — there are no
// configuration singletons.
type Config struct {
	configDir string

	Scheduler  *SchedulerConfig  `yaml:"scheduler"`
	Monitor    *MonitorConfig    `yaml:"monitor"`
	Anomaly    *AnomalyConfig    `yaml:"anomaly"`
	Guardian   *GuardianConfig   `yaml:"guardian"`
	Dispatcher *DispatcherConfig `yaml:"dispatcher"`
	Collab     *CollabConfig     `yaml:"collab"`
	Locks      *LockConfig       `yaml:"locks"`
	Events     *EventsConfig     `yaml:"events"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// SchedulerConfig controls the orchestrator tick loop and the priority
// scorer.
type SchedulerConfig struct {
	// TickInterval is the cadence of the orchestrator scheduling loop.
	TickInterval time.Duration `yaml:"tick_interval"`

	// TopK bounds how many ready candidates are re-scored per tick.
	TopK int `yaml:"top_k"`

	// MaxRetries is the default retry budget for failed tasks.
	MaxRetries int `yaml:"max_retries"`

	// AgeCeiling saturates the age signal (age/AgeCeiling capped at 1).
	AgeCeiling time.Duration `yaml:"age_ceiling"`

	// SLAUrgencyWindow: deadlines within this window score 1.0 and
	// trigger the SLA boost multiplier.
	SLAUrgencyWindow time.Duration `yaml:"sla_urgency_window"`

	// StarvationLimit: tasks older than this are floored to
	// StarvationFloor regardless of their weighted score.
	StarvationLimit time.Duration `yaml:"starvation_limit"`

	// StarvationFloor is the minimum score for starved tasks.
	StarvationFloor float64 `yaml:"starvation_floor"`

	// BlockerCeiling saturates the direct-dependents signal.
	BlockerCeiling int `yaml:"blocker_ceiling"`

	// SLABoost multiplies the composite score for SLA-urgent tasks
	// (result capped at 1.0).
	SLABoost float64 `yaml:"sla_boost"`

	// Weights for the composite score. Must sum to 1.
	Weights ScoreWeights `yaml:"weights"`
}

// ScoreWeights are the priority-score component weights.
type ScoreWeights struct {
	Priority float64 `yaml:"priority"`
	Age      float64 `yaml:"age"`
	Deadline float64 `yaml:"deadline"`
	Blockers float64 `yaml:"blockers"`
	Retry    float64 `yaml:"retry"`
}

// MonitorConfig controls the metric collection and rolling-window
// anomaly detection loop.
type MonitorConfig struct {
	// TickInterval is the collection cadence.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Sensitivity is the sigma multiplier for rolling-stats anomalies.
	Sensitivity float64 `yaml:"sensitivity"`

	// HistoryCap bounds each metric's rolling sample window.
	HistoryCap int `yaml:"history_cap"`

	// MinSamples is the minimum window size before anomalies are emitted.
	MinSamples int `yaml:"min_samples"`

	// TaskDurationWindow is the lookback for average task duration.
	TaskDurationWindow time.Duration `yaml:"task_duration_window"`

	// HeartbeatStaleAfter marks agents degraded when their last
	// heartbeat is older than this.
	HeartbeatStaleAfter time.Duration `yaml:"heartbeat_stale_after"`
}

// AnomalyConfig controls the composite agent anomaly scorer.
type AnomalyConfig struct {
	// Threshold is the composite score at which a reading counts as
	// anomalous.
	Threshold float64 `yaml:"threshold"`

	// QuarantineReadings is the number of consecutive anomalous
	// readings before should_quarantine is flagged.
	QuarantineReadings int `yaml:"quarantine_readings"`

	// ErrorEMAAlpha is the smoothing factor of the in-memory
	// error-rate EMA.
	ErrorEMAAlpha float64 `yaml:"error_ema_alpha"`

	// BaselineAlpha is the EMA smoothing factor of the learner.
	BaselineAlpha float64 `yaml:"baseline_alpha"`

	// DecayFactor is applied to every baseline field on resurrection.
	DecayFactor float64 `yaml:"decay_factor"`
}

// GuardianConfig controls quarantine/resurrection policy.
type GuardianConfig struct {
	// ResurrectionCooldown is how long an agent stays quarantined
	// before it is resurrected.
	ResurrectionCooldown time.Duration `yaml:"resurrection_cooldown"`

	// DeadPromotionWindow: a second quarantine within this window of
	// the previous one promotes the agent to dead.
	DeadPromotionWindow time.Duration `yaml:"dead_promotion_window"`

	// SweepInterval is the cadence of the resurrection sweep.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DispatcherConfig controls per-task execution supervision.
type DispatcherConfig struct {
	// DefaultTaskTimeout applies when the task carries no deadline.
	DefaultTaskTimeout time.Duration `yaml:"default_task_timeout"`

	// HeartbeatInterval is the expected runtime heartbeat cadence.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// HeartbeatMissLimit: this many missed heartbeats in a row count
	// as a heartbeat timeout.
	HeartbeatMissLimit int `yaml:"heartbeat_miss_limit"`

	// CancelGracePeriod is how long to wait after requesting
	// agent-side cancellation before forcing failure.
	CancelGracePeriod time.Duration `yaml:"cancel_grace_period"`

	// GracefulShutdownTimeout bounds how long shutdown waits for live
	// sessions before giving up and leaving them to orphan recovery.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// CollabConfig controls out-of-band message delivery.
type CollabConfig struct {
	// DeliveryTimeout bounds each sandbox/conversation injection
	// attempt. Delivery is never retried — the persisted message row
	// is the durable record.
	DeliveryTimeout time.Duration `yaml:"delivery_timeout"`
}

// LockConfig controls the resource lock manager.
type LockConfig struct {
	// DefaultTTL applies to locks acquired without an explicit TTL.
	// Zero means no expiry.
	DefaultTTL time.Duration `yaml:"default_ttl"`

	// SweepInterval is the cadence of the expired-lock sweep.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// EventsConfig controls the in-process bus.
type EventsConfig struct {
	// BufferSize is the per-subscriber mailbox capacity.
	BufferSize int `yaml:"buffer_size"`
}

// RetentionConfig controls periodic pruning of append-only tables.
type RetentionConfig struct {
	// EventTTL is how long Event rows are kept.
	EventTTL time.Duration `yaml:"event_ttl"`

	// AnomalyTTL is how long acknowledged MonitorAnomaly rows are kept.
	AnomalyTTL time.Duration `yaml:"anomaly_ttl"`

	// CleanupInterval is the sweep cadence.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

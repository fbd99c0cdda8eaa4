package config

import (
	"fmt"
	"math"
)

// validate checks the merged configuration for values the runtime cannot
// operate with. Invalid configuration is fatal at startup.
func validate(cfg *Config) error {
	var errs []error

	s := cfg.Scheduler
	if s.TickInterval <= 0 {
		errs = append(errs, &FieldError{"scheduler", "tick_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if s.TopK <= 0 {
		errs = append(errs, &FieldError{"scheduler", "top_k", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if s.MaxRetries < 0 {
		errs = append(errs, &FieldError{"scheduler", "max_retries", fmt.Errorf("%w: must be >= 0", ErrInvalidValue)})
	}
	if s.StarvationFloor < 0 || s.StarvationFloor > 1 {
		errs = append(errs, &FieldError{"scheduler", "starvation_floor", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue)})
	}
	sum := s.Weights.Priority + s.Weights.Age + s.Weights.Deadline + s.Weights.Blockers + s.Weights.Retry
	if math.Abs(sum-1.0) > 1e-6 {
		errs = append(errs, &FieldError{"scheduler", "weights", fmt.Errorf("%w: must sum to 1.0, got %.4f", ErrInvalidValue, sum)})
	}

	m := cfg.Monitor
	if m.TickInterval <= 0 {
		errs = append(errs, &FieldError{"monitor", "tick_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if m.Sensitivity <= 0 {
		errs = append(errs, &FieldError{"monitor", "sensitivity", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if m.HistoryCap < m.MinSamples {
		errs = append(errs, &FieldError{"monitor", "history_cap", fmt.Errorf("%w: must be >= min_samples", ErrInvalidValue)})
	}

	a := cfg.Anomaly
	if a.Threshold <= 0 || a.Threshold > 1 {
		errs = append(errs, &FieldError{"anomaly", "threshold", fmt.Errorf("%w: must be in (0,1]", ErrInvalidValue)})
	}
	if a.QuarantineReadings < 1 {
		errs = append(errs, &FieldError{"anomaly", "quarantine_readings", fmt.Errorf("%w: must be >= 1", ErrInvalidValue)})
	}
	if a.ErrorEMAAlpha <= 0 || a.ErrorEMAAlpha >= 1 {
		errs = append(errs, &FieldError{"anomaly", "error_ema_alpha", fmt.Errorf("%w: must be in (0,1)", ErrInvalidValue)})
	}
	if a.BaselineAlpha <= 0 || a.BaselineAlpha >= 1 {
		errs = append(errs, &FieldError{"anomaly", "baseline_alpha", fmt.Errorf("%w: must be in (0,1)", ErrInvalidValue)})
	}
	if a.DecayFactor <= 0 || a.DecayFactor >= 1 {
		errs = append(errs, &FieldError{"anomaly", "decay_factor", fmt.Errorf("%w: must be in (0,1)", ErrInvalidValue)})
	}

	g := cfg.Guardian
	if g.ResurrectionCooldown <= 0 {
		errs = append(errs, &FieldError{"guardian", "resurrection_cooldown", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if g.DeadPromotionWindow <= 0 {
		errs = append(errs, &FieldError{"guardian", "dead_promotion_window", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}

	d := cfg.Dispatcher
	if d.DefaultTaskTimeout <= 0 {
		errs = append(errs, &FieldError{"dispatcher", "default_task_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if d.HeartbeatMissLimit < 1 {
		errs = append(errs, &FieldError{"dispatcher", "heartbeat_miss_limit", fmt.Errorf("%w: must be >= 1", ErrInvalidValue)})
	}

	if cfg.Collab.DeliveryTimeout <= 0 {
		errs = append(errs, &FieldError{"collab", "delivery_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}
	if cfg.Events.BufferSize <= 0 {
		errs = append(errs, &FieldError{"events", "buffer_size", fmt.Errorf("%w: must be positive", ErrInvalidValue)})
	}

	if len(errs) == 0 {
		return nil
	}
	err := ErrValidationFailed
	for _, e := range errs {
		err = fmt.Errorf("%w; %v", err, e)
	}
	return err
}

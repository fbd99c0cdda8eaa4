// Package cleanup prunes the append-only tables so the audit trail does
// not grow without bound.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omoi-os/omoios/ent"
	"github.com/omoi-os/omoios/ent/event"
	"github.com/omoi-os/omoios/ent/monitoranomaly"
	"github.com/omoi-os/omoios/pkg/config"
)

// Service deletes Event rows past their TTL and MonitorAnomaly rows past
// theirs on a fixed cadence.
type Service struct {
	client *ent.Client
	cfg    *config.RetentionConfig

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewService creates the retention sweeper.
func NewService(client *ent.Client, cfg *config.RetentionConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// Start launches the sweep loop.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.loop(runCtx)
	slog.Info("Retention cleanup started",
		"event_ttl", s.cfg.EventTTL,
		"anomaly_ttl", s.cfg.AnomalyTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop terminates the loop and waits for it.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.running = false
	s.mu.Unlock()

	cancel()
	<-done
	slog.Info("Retention cleanup stopped")
}

func (s *Service) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				slog.Error("Retention sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one pruning pass. Unacknowledged anomalies are kept past
// their TTL; someone still has to look at them.
func (s *Service) Sweep(ctx context.Context) error {
	now := time.Now()

	eventsDeleted, err := s.client.Event.Delete().
		Where(event.TimestampLT(now.Add(-s.cfg.EventTTL))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to prune events: %w", err)
	}

	anomaliesDeleted, err := s.client.MonitorAnomaly.Delete().
		Where(
			monitoranomaly.DetectedAtLT(now.Add(-s.cfg.AnomalyTTL)),
			monitoranomaly.AcknowledgedAtNotNil(),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to prune anomalies: %w", err)
	}

	if eventsDeleted > 0 || anomaliesDeleted > 0 {
		slog.Info("Retention sweep pruned rows",
			"events", eventsDeleted,
			"anomalies", anomaliesDeleted)
	}
	return nil
}

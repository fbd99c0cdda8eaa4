package locks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/omoi-os/omoios/pkg/config"
)

// Sweeper periodically releases expired locks in the background.
type Sweeper struct {
	manager  *Manager
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewSweeper creates a lock expiry sweeper.
func NewSweeper(manager *Manager, cfg *config.LockConfig) *Sweeper {
	return &Sweeper{manager: manager, interval: cfg.SweepInterval}
}

// Start launches the background sweep loop. No-op when already running.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(runCtx)
	slog.Info("Lock sweeper started", "interval", s.interval)
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
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
	slog.Info("Lock sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.manager.CleanupExpired(ctx)
			if err != nil {
				slog.Error("Lock expiry sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Released expired locks", "count", n)
			}
		}
	}
}

package groups

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper periodically evicts idle connections from a Registry. It catches
// connections whose transport died without reporting a disconnect.
type Sweeper struct {
	registry  *Registry
	logger    *slog.Logger
	interval  time.Duration
	threshold time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper creates a Sweeper that runs every interval and removes
// connections idle for longer than threshold.
func NewSweeper(registry *Registry, logger *slog.Logger, interval, threshold time.Duration) *Sweeper {
	return &Sweeper{
		registry:  registry,
		logger:    logger,
		interval:  interval,
		threshold: threshold,
	}
}

// Start launches the sweep loop in a background goroutine. It returns
// immediately. Calling Start on a running Sweeper is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "connection sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("stale_threshold", s.threshold),
	)

	for {
		select {
		case <-ticker.C:
			if n := s.registry.Sweep(s.threshold); n > 0 {
				s.logger.InfoContext(ctx, "evicted stale connections", slog.Int("count", n))
			}
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "connection sweeper stopped")
			return
		}
	}
}

// Stop cancels the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

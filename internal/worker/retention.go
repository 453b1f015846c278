package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// OrderCleaner removes orders older than the given number of days.
type OrderCleaner interface {
	CleanupOldOrders(ctx context.Context, days int) (int, error)
}

// RetentionSweeper trims the order history. It sweeps once on Start and then
// every interval while running; a zero interval means startup only.
type RetentionSweeper struct {
	cleaner  OrderCleaner
	days     int
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRetentionSweeper constructs the sweeper.
func NewRetentionSweeper(cleaner OrderCleaner, days int, interval time.Duration, logger *slog.Logger) *RetentionSweeper {
	if interval < 0 {
		interval = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetentionSweeper{
		cleaner:  cleaner,
		days:     days,
		interval: interval,
		logger:   logger,
	}
}

// Start performs the initial sweep and launches periodic sweeps when enabled.
// A failed sweep is logged and never stops the application.
func (s *RetentionSweeper) Start(ctx context.Context) {
	s.sweep(ctx)

	if s.interval == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The fx start context ends once startup completes.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop waits for the periodic loop to finish.
func (s *RetentionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *RetentionSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	removed, err := s.cleaner.CleanupOldOrders(ctx, s.days)
	if err != nil {
		s.logger.Error("order retention sweep failed", slog.Int("days", s.days), slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("order retention sweep", slog.Int("removed", removed), slog.Int("days", s.days))
	}
}

package session

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sweeper periodically expires idle sessions from a [Registry].
//
// All lifecycle methods (Start, Stop) are safe for concurrent use.
type Sweeper struct {
	registry *Registry
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewSweeper creates a [Sweeper] that sweeps r every interval.
func NewSweeper(r *Registry, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		registry: r,
		interval: interval,
		logger:   logger,
	}
}

// Start begins sweeping in a background goroutine until [Sweeper.Stop] is
// called or ctx is cancelled.
//
// Start is idempotent. If Stop was called before Start, Start is a no-op.
// A non-positive interval disables sweeping.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.stopped || s.interval <= 0 {
		s.mu.Unlock()
		return
	}
	s.started = true

	if ctx == nil {
		ctx = context.Background()
	}
	sweepCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-sweepCtx.Done():
				return
			case now := <-ticker.C:
				s.sweepSafe(now)
			}
		}
	}()
}

// Stop halts the sweeper and waits for the loop to exit. Stop is idempotent
// and safe to call before Start.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.cancel != nil {
			s.cancel()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// sweepSafe runs one sweep with panic recovery. A panic is logged with a
// correlation id and the loop keeps running.
func (s *Sweeper) sweepSafe(now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			s.logger.Error("session sweep panic",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("session sweep panic (correlation_id: %s)", correlationID)
		}
	}()

	if n := s.registry.Sweep(now); n > 0 {
		s.logger.Info("expired idle sessions", "count", n, "remaining", s.registry.Len())
	}
	return nil
}

package retry

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"custom-hats/core/metrics"

	"go.uber.org/zap"
)

// Attempt is one integration pass. Returning nil means "keep polling at the short interval",
// whether or not the pass achieved anything.
type Attempt func(ctx context.Context) error

// PanicError wraps a value recovered from a panicking attempt.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("attempt panicked: %v", e.Value)
}

// Stats is a snapshot of the scheduler's progress.
type Stats struct {
	Attempts    int       `json:"attempts"`
	Failures    int       `json:"failures"`
	LastError   string    `json:"last_error,omitempty"`
	LastAttempt time.Time `json:"last_attempt"`
	Running     bool      `json:"running"`
}

// Scheduler runs an Attempt in a loop with success/failure backoff.
type Scheduler struct {
	attempt Attempt
	cfg     Config
	logger  *zap.Logger

	// after is swapped in tests to avoid real sleeps.
	after func(time.Duration) <-chan time.Time

	mu    sync.RWMutex
	stats Stats
}

// New creates a scheduler for attempt.
func New(attempt Attempt, cfg Config, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		attempt: attempt,
		cfg:     cfg,
		logger:  logger,
		after:   time.After,
	}
}

// Run loops until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.setRunning(true)
	defer s.setRunning(false)

	s.logger.Info("Retry loop started",
		zap.Duration("success_interval", s.cfg.SuccessInterval),
		zap.Duration("failure_interval", s.cfg.FailureInterval))

	for {
		wait := s.cfg.SuccessInterval
		if err := s.Once(ctx); err != nil {
			wait = s.cfg.FailureInterval
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Retry loop stopped", zap.Error(ctx.Err()))
			return
		case <-s.after(wait):
		}

		if ctx.Err() != nil {
			s.logger.Info("Retry loop stopped", zap.Error(ctx.Err()))
			return
		}
	}
}

// Once runs a single isolated attempt and returns its failure, if any.
func (s *Scheduler) Once(ctx context.Context) error {
	err := s.protect(ctx)

	s.mu.Lock()
	s.stats.Attempts++
	s.stats.LastAttempt = time.Now()
	n := s.stats.Attempts
	if err != nil {
		s.stats.Failures++
		s.stats.LastError = err.Error()
	} else {
		s.stats.LastError = ""
	}
	s.mu.Unlock()

	if err == nil {
		metrics.Attempts.WithLabelValues("ok").Inc()
		return nil
	}

	metrics.Attempts.WithLabelValues("failed").Inc()
	fields := []zap.Field{zap.Int("attempt", n), zap.Error(err)}
	if p, ok := err.(*PanicError); ok {
		fields = append(fields, zap.ByteString("origin", p.Stack))
	}
	s.logger.Error("Failed to apply custom items", fields...)
	return err
}

// Stats returns a snapshot of the scheduler counters.
func (s *Scheduler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Scheduler) protect(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return s.attempt(ctx)
}

func (s *Scheduler) setRunning(running bool) {
	s.mu.Lock()
	s.stats.Running = running
	s.mu.Unlock()
}

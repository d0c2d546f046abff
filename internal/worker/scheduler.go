package worker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"sftp-checker/internal/domain"
	"sftp-checker/internal/transport"
)

// MinCheckInterval is the floor applied to any configured interval.
const MinCheckInterval = 30 * time.Second

type schedulerState int

const (
	stateIdle schedulerState = iota
	stateScheduled
	stateStopped
)

// Scheduler runs one target's check on a fixed cadence: once immediately on
// start, then once per effective interval. Triggers that arrive while a check
// is still in flight are dropped, never queued. A stopped scheduler cannot be
// restarted; a new instance must be built instead.
type Scheduler struct {
	target  domain.Target
	runner  Runner
	metrics domain.MetricsCollector
	logger  *zap.Logger

	interval time.Duration
	checking atomic.Bool

	mu     sync.Mutex
	state  schedulerState
	stopCh chan struct{}
}

func NewScheduler(
	target domain.Target,
	runner Runner,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		target: target,
		runner: runner,
		logger: logger.With(
			zap.String("component", "scheduler"),
			zap.String("target", target.DisplayName()),
		),
		metrics: metrics,
		stopCh:  make(chan struct{}),
	}
}

// EffectiveInterval applies the interval floor.
func EffectiveInterval(configured time.Duration) time.Duration {
	if configured < MinCheckInterval {
		return MinCheckInterval
	}
	return configured
}

// Start validates the target and begins ticking. The first check is
// dispatched immediately and asynchronously; Start does not wait for it.
func (s *Scheduler) Start() error {
	if err := transport.ValidateTarget(s.target); err != nil {
		return fmt.Errorf("invalid configuration for %s: %w", s.target.DisplayName(), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case stateScheduled:
		return fmt.Errorf("scheduler for %s already started", s.target.DisplayName())
	case stateStopped:
		return fmt.Errorf("scheduler for %s cannot be restarted once stopped", s.target.DisplayName())
	}
	s.state = stateScheduled
	s.interval = EffectiveInterval(s.target.CheckInterval)

	s.metrics.RecordSchedulerStart(s.target.DisplayName())
	s.logger.Info("scheduler started",
		zap.Duration("interval", s.interval))

	go s.loop()
	return nil
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.dispatch()

	for {
		select {
		case <-ticker.C:
			s.dispatch()
		case <-s.stopCh:
			s.logger.Debug("scheduler loop exiting")
			return
		}
	}
}

// dispatch hands one trigger to the runner on its own goroutine so the ticker
// loop never blocks on transport I/O. The flag is cleared unconditionally
// when the run finishes.
func (s *Scheduler) dispatch() {
	if !s.checking.CompareAndSwap(false, true) {
		s.logger.Debug("previous check still running, skipping tick",
			zap.String("DisplayName", s.target.DisplayName()))
		s.metrics.RecordSkippedTick(s.target.DisplayName())
		return
	}

	go func() {
		defer s.checking.Store(false)
		s.runner.Run()
	}()
}

// Stop cancels future ticks. Safe to call more than once; an in-flight check
// is left to finish on its own.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateScheduled {
		close(s.stopCh)
		s.metrics.RecordSchedulerStop(s.target.DisplayName())
		s.logger.Info("scheduler stopped")
	}
	s.state = stateStopped
}

func (s *Scheduler) IsHealthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateScheduled
}

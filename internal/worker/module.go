package worker

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"sftp-checker/internal/domain"
	"sftp-checker/internal/transport"
)

var Module = fx.Options(
	fx.Provide(NewSet),
	fx.Invoke(registerHooks),
)

// Set owns one scheduler per configured target.
type Set struct {
	schedulers []*Scheduler
	logger     *zap.Logger
}

func NewSet(
	targets []domain.Target,
	tr transport.Transport,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Set {
	schedulers := make([]*Scheduler, 0, len(targets))
	for _, t := range targets {
		executor := NewExecutor(t, tr, metrics, logger)
		schedulers = append(schedulers, NewScheduler(t, executor, metrics, logger))
	}
	return &Set{
		schedulers: schedulers,
		logger:     logger,
	}
}

// Start brings up every scheduler, aborting startup on the first invalid
// target.
func (s *Set) Start() error {
	for _, sched := range s.schedulers {
		if err := sched.Start(); err != nil {
			s.Stop()
			return err
		}
	}
	return nil
}

func (s *Set) Stop() {
	for _, sched := range s.schedulers {
		sched.Stop()
	}
}

func (s *Set) IsHealthy() bool {
	for _, sched := range s.schedulers {
		if !sched.IsHealthy() {
			return false
		}
	}
	return true
}

func registerHooks(lc fx.Lifecycle, set *Set) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return set.Start()
		},
		OnStop: func(ctx context.Context) error {
			set.Stop()
			return nil
		},
	})
}

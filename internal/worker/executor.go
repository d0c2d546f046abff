package worker

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"sftp-checker/internal/domain"
	"sftp-checker/internal/transport"
)

// Runner is one executable connectivity check. The scheduler depends on this
// rather than on the concrete executor.
type Runner interface {
	Run()
}

// Executor performs a single connectivity check end to end: build connection
// parameters, connect, optionally list the test directory, disconnect, and
// emit exactly one structured outcome record.
type Executor struct {
	target    domain.Target
	transport transport.Transport
	metrics   domain.MetricsCollector
	logger    *zap.Logger
}

func NewExecutor(
	target domain.Target,
	tr transport.Transport,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Executor {
	return &Executor{
		target:    target,
		transport: tr,
		metrics:   metrics,
		logger:    logger.With(zap.String("component", "executor")),
	}
}

// Run never panics and never returns an error; every failure mode ends up as
// exactly one error-level record. The scheduler must be able to trigger it
// blindly.
func (e *Executor) Run() {
	start := time.Now()
	outcome := domain.CheckOutcome{Target: e.target}

	func() {
		defer func() {
			if r := recover(); r != nil {
				outcome.Succeeded = false
				outcome.Err = NewCheckError("check", "panic during check", fmt.Errorf("%v", r))
			}
		}()
		e.check(start, &outcome)
	}()

	outcome.TotalDuration = time.Since(start)
	e.report(outcome)
	e.metrics.RecordCheck(outcome)
}

func (e *Executor) check(start time.Time, outcome *domain.CheckOutcome) {
	// Parameters are rebuilt per check so a rotated credential is picked up
	// on the next tick.
	params, err := transport.BuildParams(e.target)
	if err != nil {
		outcome.Err = NewCheckError("credentials", "failed to build connection parameters", err)
		return
	}

	conn, err := e.transport.Connect(params)
	if err != nil {
		outcome.Err = NewCheckError("connect", "connection failed", err)
		return
	}
	defer func() {
		// Best-effort cleanup; a failed disconnect is not a failed check.
		if err := conn.Disconnect(); err != nil {
			e.logger.Debug("disconnect failed",
				zap.String("DisplayName", e.target.DisplayName()),
				zap.Error(err))
		}
	}()

	if !conn.IsConnected() {
		outcome.Err = NewCheckError("connect", "reports not connected after connect call", nil)
		return
	}
	outcome.ConnectDuration = time.Since(start)

	if e.target.TestDirectory != "" {
		listStart := time.Now()
		entries, err := conn.ListDirectory(e.target.TestDirectory)
		if err != nil {
			outcome.Err = NewCheckError("list",
				fmt.Sprintf("failed to list directory %s", e.target.TestDirectory), err)
			return
		}
		outcome.Listed = true
		outcome.FileCount = len(entries)
		outcome.ListDuration = time.Since(listStart)
	}

	outcome.Succeeded = true
}

// report converts the outcome into its one structured record. Failures are
// always recorded; successes only when the target asks for them.
func (e *Executor) report(o domain.CheckOutcome) {
	fields := []zap.Field{
		zap.String("DisplayName", o.Target.DisplayName()),
		zap.String("SftpHost", o.Target.Host),
		zap.Int("SftpPort", o.Target.Port),
	}

	if !o.Succeeded {
		fields = append(fields,
			zap.Int64("DurationMs", o.TotalDuration.Milliseconds()),
			zap.String("ErrorMessage", o.Err.Error()),
			zap.Error(o.Err),
		)
		e.logger.Error("SFTP connectivity check failed", fields...)
		return
	}

	if !o.Target.LogSuccessfulChecks {
		return
	}

	fields = append(fields, zap.Int64("ConnectDurationMs", o.ConnectDuration.Milliseconds()))
	if o.Listed {
		fields = append(fields,
			zap.Int("FileCount", o.FileCount),
			zap.Int64("ListDurationMs", o.ListDuration.Milliseconds()),
		)
	}
	e.logger.Info("SFTP connectivity check succeeded", fields...)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"sftp-checker/internal/domain"
)

// Module provides the metrics collector
var Module = fx.Options(
	fx.Provide(NewCollector),
	fx.Provide(func(c *Collector) domain.MetricsCollector { return c }),
)

type Collector struct {
	logger          *zap.Logger
	checksTotal     *prometheus.CounterVec
	checkDuration   *prometheus.HistogramVec
	connectDuration *prometheus.HistogramVec
	lastCheckStatus *prometheus.GaugeVec
	listedFiles     *prometheus.GaugeVec
	skippedTicks    *prometheus.CounterVec
	schedulerUp     *prometheus.GaugeVec
}

func NewCollector(logger *zap.Logger) *Collector {
	return &Collector{
		logger: logger,
		checksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sftp_checks_total",
				Help: "Total number of SFTP connectivity checks performed",
			},
			[]string{"status", "target"},
		),
		checkDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sftp_check_duration_seconds",
				Help:    "Total duration of SFTP checks",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"target"},
		),
		connectDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sftp_connect_duration_seconds",
				Help:    "Time to an established SFTP session",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"target"},
		),
		lastCheckStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sftp_check_status",
				Help: "Latest check status (1 for success, 0 for failure)",
			},
			[]string{"target"},
		),
		listedFiles: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sftp_listed_files",
				Help: "Entry count from the latest test directory listing",
			},
			[]string{"target"},
		),
		skippedTicks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sftp_skipped_ticks_total",
				Help: "Ticks dropped because a check was still in flight",
			},
			[]string{"target"},
		),
		schedulerUp: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sftp_scheduler_up",
				Help: "Whether the target's scheduler is running",
			},
			[]string{"target"},
		),
	}
}

func (c *Collector) RecordCheck(outcome domain.CheckOutcome) {
	target := outcome.Target.DisplayName()

	status := "failure"
	statusValue := 0.0
	if outcome.Succeeded {
		status = "success"
		statusValue = 1.0
		c.connectDuration.WithLabelValues(target).Observe(outcome.ConnectDuration.Seconds())
	}
	c.checksTotal.WithLabelValues(status, target).Inc()
	c.checkDuration.WithLabelValues(target).Observe(outcome.TotalDuration.Seconds())
	c.lastCheckStatus.WithLabelValues(target).Set(statusValue)

	if outcome.Listed {
		c.listedFiles.WithLabelValues(target).Set(float64(outcome.FileCount))
	}
}

func (c *Collector) RecordSkippedTick(target string) {
	c.skippedTicks.WithLabelValues(target).Inc()
}

func (c *Collector) RecordSchedulerStart(target string) {
	c.schedulerUp.WithLabelValues(target).Set(1)
}

func (c *Collector) RecordSchedulerStop(target string) {
	c.schedulerUp.WithLabelValues(target).Set(0)
}

package domain

type MetricsCollector interface {
	RecordCheck(CheckOutcome)
	RecordSkippedTick(target string)
	RecordSchedulerStart(target string)
	RecordSchedulerStop(target string)
}

// NopMetrics discards all observations. Used in tests.
type NopMetrics struct{}

func (NopMetrics) RecordCheck(CheckOutcome)    {}
func (NopMetrics) RecordSkippedTick(string)    {}
func (NopMetrics) RecordSchedulerStart(string) {}
func (NopMetrics) RecordSchedulerStop(string)  {}

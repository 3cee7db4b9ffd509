package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// OutcomeLabel enumerates final run outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
	AddPages(kind string, n int)
	SetLastSuccess(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                 {}
func (NoopRecorder) AddPages(string, int)                       {}
func (NoopRecorder) SetLastSuccess(time.Time)                   {}

// TextfileWriter is implemented by recorders that can export their metrics
// for node_exporter's textfile collector.
type TextfileWriter interface {
	WriteTextfile(path string) error
}

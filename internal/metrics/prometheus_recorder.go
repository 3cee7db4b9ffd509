package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	runDuration   prom.Histogram
	runOutcome    *prom.CounterVec
	pages         *prom.CounterVec
	lastSuccess   prom.Gauge
}

// NewPrometheusRecorder constructs and registers the generator metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "seogen",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual generation stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "seogen",
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "seogen",
		Name:      "run_duration_seconds",
		Help:      "Total generation run duration",
		Buckets:   prom.DefBuckets,
	})
	pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "seogen",
		Name:      "run_outcomes_total",
		Help:      "Generation runs by final outcome",
	}, []string{"outcome"})
	pr.pages = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "seogen",
		Name:      "pages_generated_total",
		Help:      "Pages materialized by page kind",
	}, []string{"kind"})
	pr.lastSuccess = prom.NewGauge(prom.GaugeOpts{
		Namespace: "seogen",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful generation run",
	})
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.runDuration, pr.runOutcome, pr.pages, pr.lastSuccess)
	return pr
}

// Registry exposes the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all registered metrics to path in the text exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddPages(kind string, n int) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.WithLabelValues(kind).Add(float64(n))
}

func (p *PrometheusRecorder) SetLastSuccess(t time.Time) {
	if p == nil || p.lastSuccess == nil {
		return
	}
	p.lastSuccess.Set(float64(t.Unix()))
}

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var _ Recorder = (*PrometheusRecorder)(nil)
var _ Recorder = NoopRecorder{}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("render", 150*time.Millisecond)
	pr.IncStageResult("render", ResultSuccess)
	pr.ObserveRunDuration(500 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.AddPages("comparison", 10)
	pr.AddPages("industry", 75)
	pr.SetLastSuccess(time.Unix(1700000000, 0))

	require.Equal(t, 10.0, testutil.ToFloat64(pr.pages.WithLabelValues("comparison")))
	require.Equal(t, 75.0, testutil.ToFloat64(pr.pages.WithLabelValues("industry")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.runOutcome.WithLabelValues("success")))
	require.Equal(t, 1700000000.0, testutil.ToFloat64(pr.lastSuccess))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.AddPages("feature", 3)

	path := filepath.Join(t.TempDir(), "seogen.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `seogen_pages_generated_total{kind="feature"} 3`), string(data))
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.AddPages("x", 1)
	pr.IncRunOutcome(OutcomeFailed)
	pr.ObserveRunDuration(time.Second)
}

package generator

import (
	"context"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/metrics"
)

// StageName identifies a step of a generation run.
type StageName string

const (
	StageValidate     StageName = "validate"
	StagePlan         StageName = "plan"
	StageWritePages   StageName = "write_pages"
	StageWriteSitemap StageName = "write_sitemap"
)

type stageFunc func(ctx context.Context, rs *runState) error

type stageDef struct {
	name StageName
	fn   stageFunc
}

// runStages executes stages in order, recording timing, and stops on the first error.
func runStages(ctx context.Context, rs *runState, recorder metrics.Recorder, stages []stageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			recorder.IncStageResult(string(st.name), metrics.ResultFailed)
			return ferrors.RuntimeError("generation canceled").
				WithCause(err).
				WithContext("stage", string(st.name)).
				Build()
		}
		t0 := time.Now()
		err := st.fn(ctx, rs)
		dur := time.Since(t0)
		rs.report.StageDurations[st.name] = dur
		recorder.ObserveStageDuration(string(st.name), dur)
		if err != nil {
			recorder.IncStageResult(string(st.name), metrics.ResultFailed)
			return err
		}
		recorder.IncStageResult(string(st.name), metrics.ResultSuccess)
		slog.Debug("Stage complete",
			logfields.RunID(rs.report.RunID),
			logfields.Stage(string(st.name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

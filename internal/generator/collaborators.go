package generator

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/seogen/internal/ledger"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/metrics"
)

// The collaborators below run after the output tree is complete and
// consistent, so their failures are logged and never fail the run.

// recordLedger diffs the previous run's paths against this run, stores the
// run, and fills Report.Stale.
func (g *Generator) recordLedger(ctx context.Context, rs *runState) {
	if g.ledger == nil {
		return
	}
	report := rs.report
	current := outputPaths(rs.pages)

	_, previous, err := g.ledger.Latest(ctx)
	if err != nil {
		slog.Warn("Failed to read run ledger", logfields.RunID(report.RunID), logfields.Error(err))
	} else {
		report.Stale = ledger.Stale(previous, current)
		for _, p := range report.Stale {
			slog.Warn("Stale page left in output", logfields.RunID(report.RunID), logfields.Path(p))
		}
	}

	run := ledger.Run{ID: report.RunID, RunDate: report.RunDate, RecordedAt: report.End, Pages: report.Total}
	if err := g.ledger.RecordRun(ctx, run, current); err != nil {
		slog.Warn("Failed to record run", logfields.RunID(report.RunID), logfields.Error(err))
	}
}

func (g *Generator) exportMetrics() {
	path := g.cfg.Metrics.Textfile
	if path == "" {
		return
	}
	w, ok := g.recorder.(metrics.TextfileWriter)
	if !ok {
		return
	}
	if err := w.WriteTextfile(path); err != nil {
		slog.Warn("Failed to write metrics textfile", logfields.Path(path), logfields.Error(err))
	}
}

func (g *Generator) publish(ctx context.Context, report *Report) {
	if err := g.publisher.Publish(ctx, report.Event()); err != nil {
		slog.Warn("Failed to publish completion event", logfields.RunID(report.RunID), logfields.Error(err))
	}
}

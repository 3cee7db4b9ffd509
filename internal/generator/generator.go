package generator

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/seogen/internal/config"
	"git.home.luguber.info/inful/seogen/internal/dimensions"
	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/ledger"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/materialize"
	"git.home.luguber.info/inful/seogen/internal/metrics"
	"git.home.luguber.info/inful/seogen/internal/notify"
	"git.home.luguber.info/inful/seogen/internal/page"
	"git.home.luguber.info/inful/seogen/internal/urlplan"
)

// Generator runs generation passes for one configuration and dimension registry.
type Generator struct {
	cfg       *config.Config
	registry  *dimensions.Registry
	planner   *urlplan.Planner
	out       *materialize.Materializer
	recorder  metrics.Recorder
	ledger    ledger.Store
	publisher notify.Publisher
	now       func() time.Time
	newRunID  func() string
}

// runState carries data between the stages of one run.
type runState struct {
	report *Report
	pages  []page.Spec
}

// New builds a generator. The base URL and write concurrency are checked here
// so configuration defects surface before any run starts.
func New(cfg *config.Config, registry *dimensions.Registry, opts ...Option) (*Generator, error) {
	if cfg == nil || registry == nil {
		return nil, ferrors.InternalError("generator requires a configuration and a dimension registry").Build()
	}
	if cfg.Generation.Concurrency < 1 {
		return nil, ferrors.ConfigError("generation.concurrency must be at least 1").
			WithContext("field", "generation.concurrency").
			WithContext("value", cfg.Generation.Concurrency).
			Build()
	}
	planner, err := urlplan.New(cfg.Site.BaseURL)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:       cfg,
		registry:  registry,
		planner:   planner,
		out:       materialize.New(cfg.Output.Directory),
		recorder:  metrics.NoopRecorder{},
		publisher: notify.NoopPublisher{},
		now:       time.Now,
		newRunID:  defaultRunID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Run performs a full generation pass. On failure no report is returned.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	rs, err := g.newRunState()
	if err != nil {
		return nil, err
	}
	report := rs.report
	slog.Info("Generation started",
		logfields.RunID(report.RunID),
		logfields.RunDate(report.RunDate.Format(config.RunDateLayout)),
		logfields.OutputRoot(report.OutputRoot))

	stages := []stageDef{
		{StageValidate, g.stageValidate},
		{StagePlan, g.stagePlan},
		{StageWritePages, g.stageWritePages},
		{StageWriteSitemap, g.stageWriteSitemap},
	}
	if err := runStages(ctx, rs, g.recorder, stages); err != nil {
		report.finish(g.now())
		g.recorder.ObserveRunDuration(report.Duration())
		g.recorder.IncRunOutcome(metrics.OutcomeFailed)
		g.exportMetrics()
		slog.Error("Generation failed", logfields.RunID(report.RunID), logfields.Error(err))
		return nil, err
	}
	report.finish(g.now())

	g.recordLedger(ctx, rs)
	for _, kc := range report.Kinds {
		g.recorder.AddPages(string(kc.Kind), kc.Pages)
	}
	g.recorder.ObserveRunDuration(report.Duration())
	g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	g.recorder.SetLastSuccess(report.End)
	g.exportMetrics()
	g.publish(ctx, report)

	slog.Info("Generation complete",
		logfields.RunID(report.RunID),
		logfields.Pages(report.Total),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	return report, nil
}

// Plan validates the registry and renders every page without writing anything.
func (g *Generator) Plan(ctx context.Context) ([]page.Spec, error) {
	rs, err := g.newRunState()
	if err != nil {
		return nil, err
	}
	stages := []stageDef{
		{StageValidate, g.stageValidate},
		{StagePlan, g.stagePlan},
	}
	if err := runStages(ctx, rs, metrics.NoopRecorder{}, stages); err != nil {
		return nil, err
	}
	return rs.pages, nil
}

// Stale reports output paths recorded by the previous run that the current
// tables no longer plan. Without a ledger it reports nothing.
func (g *Generator) Stale(ctx context.Context) ([]string, error) {
	if g.ledger == nil {
		return nil, nil
	}
	pages, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}
	_, previous, err := g.ledger.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Stale(previous, outputPaths(pages)), nil
}

func (g *Generator) newRunState() (*runState, error) {
	start := g.now()
	runDate, err := g.cfg.Generation.ResolveRunDate(start)
	if err != nil {
		return nil, err
	}
	return &runState{report: newReport(g.newRunID(), runDate, g.out.Root(), start)}, nil
}

func (g *Generator) stageValidate(_ context.Context, _ *runState) error {
	return g.registry.Validate()
}

func outputPaths(pages []page.Spec) []string {
	paths := make([]string, len(pages))
	for i, p := range pages {
		paths[i] = p.OutputPath
	}
	return paths
}

package generator

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/seogen/internal/config"
	"git.home.luguber.info/inful/seogen/internal/notify"
	"git.home.luguber.info/inful/seogen/internal/page"
)

// KindCount is the number of pages produced for one kind.
type KindCount struct {
	Kind  page.Kind
	Pages int
}

// Report summarizes a successful run.
type Report struct {
	RunID          string
	RunDate        time.Time
	OutputRoot     string
	SitemapPath    string
	Kinds          []KindCount // in generation order
	Total          int
	Stale          []string // paths from the previous run no longer planned
	Start          time.Time
	End            time.Time
	StageDurations map[StageName]time.Duration
}

func newReport(runID string, runDate time.Time, outputRoot string, start time.Time) *Report {
	return &Report{
		RunID:          runID,
		RunDate:        runDate,
		OutputRoot:     outputRoot,
		Start:          start,
		StageDurations: make(map[StageName]time.Duration),
	}
}

func (r *Report) addKind(kind page.Kind, n int) {
	r.Kinds = append(r.Kinds, KindCount{Kind: kind, Pages: n})
	r.Total += n
}

func (r *Report) finish(end time.Time) { r.End = end }

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Count returns the number of pages of kind.
func (r *Report) Count(kind page.Kind) int {
	for _, kc := range r.Kinds {
		if kc.Kind == kind {
			return kc.Pages
		}
	}
	return 0
}

// Summary renders the human-readable run summary: the total followed by one
// line per kind.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated %d programmatic SEO pages\n", r.Total)
	for _, kc := range r.Kinds {
		fmt.Fprintf(&b, "   - %d %s pages\n", kc.Pages, kc.Kind.Profile().Label)
	}
	if len(r.Stale) > 0 {
		fmt.Fprintf(&b, "Stale pages from the previous run (not deleted): %d\n", len(r.Stale))
		for _, p := range r.Stale {
			fmt.Fprintf(&b, "   - %s\n", p)
		}
	}
	return b.String()
}

// Event converts the report into a completion notification.
func (r *Report) Event() notify.Event {
	kinds := make([]notify.KindCount, len(r.Kinds))
	for i, kc := range r.Kinds {
		kinds[i] = notify.KindCount{Kind: string(kc.Kind), Pages: kc.Pages}
	}
	return notify.Event{
		RunID:       r.RunID,
		RunDate:     r.RunDate.Format(config.RunDateLayout),
		OutputRoot:  r.OutputRoot,
		Sitemap:     r.SitemapPath,
		Total:       r.Total,
		Kinds:       kinds,
		Stale:       r.Stale,
		CompletedAt: r.End,
	}
}

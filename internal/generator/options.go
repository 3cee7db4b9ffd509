package generator

import (
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/seogen/internal/ledger"
	"git.home.luguber.info/inful/seogen/internal/metrics"
	"git.home.luguber.info/inful/seogen/internal/notify"
)

// Option customizes a Generator.
type Option func(*Generator)

// WithRecorder injects a metrics recorder. A nil recorder disables metrics.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r == nil {
			r = metrics.NoopRecorder{}
		}
		g.recorder = r
	}
}

// WithLedger enables run recording and stale page reports.
func WithLedger(s ledger.Store) Option {
	return func(g *Generator) { g.ledger = s }
}

// WithPublisher enables completion notifications.
func WithPublisher(p notify.Publisher) Option {
	return func(g *Generator) {
		if p == nil {
			p = notify.NoopPublisher{}
		}
		g.publisher = p
	}
}

// WithClock replaces time.Now, which resolves the run date when none is pinned.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRunIDs replaces the run id source.
func WithRunIDs(next func() string) Option {
	return func(g *Generator) { g.newRunID = next }
}

func defaultRunID() string { return uuid.NewString() }

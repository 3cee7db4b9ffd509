// Package ledger persists which output paths each generation run planned, so
// pages dropped from the dimension tables can be reported as stale.
package ledger

import (
	"context"
	"time"

	"git.home.luguber.info/inful/seogen/internal/util/sets"
)

// Run is one recorded generation run.
type Run struct {
	ID         string
	RunDate    time.Time
	RecordedAt time.Time
	Pages      int
}

// Store defines the interface for persisting and retrieving runs.
type Store interface {
	// RecordRun stores run together with every output path it materialized.
	RecordRun(ctx context.Context, run Run, paths []string) error

	// Latest returns the most recently recorded run and its paths, or nil when
	// nothing has been recorded yet.
	Latest(ctx context.Context) (*Run, []string, error)

	// Close closes the store and releases resources.
	Close() error
}

// Stale returns the paths in previous that are absent from current, sorted.
func Stale(previous, current []string) []string {
	return sets.Sorted(sets.New(previous...).Difference(sets.New(current...)))
}

// Package retry provides backoff policies for transient collaborator failures.
package retry

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/seogen/internal/foundation/normalization"
)

// Backoff selects how delays grow between attempts.
type Backoff string

const (
	BackoffFixed       Backoff = "fixed"
	BackoffLinear      Backoff = "linear"
	BackoffExponential Backoff = "exponential"
)

var backoffs = normalization.New(map[string]Backoff{
	"fixed":       BackoffFixed,
	"linear":      BackoffLinear,
	"exponential": BackoffExponential,
}, BackoffLinear)

// ParseBackoff folds raw into a Backoff; empty input selects linear.
func ParseBackoff(raw string) (Backoff, error) {
	return backoffs.Parse(raw)
}

// Policy encapsulates retry/backoff settings for transient failures.
// It is immutable after construction.
type Policy struct {
	Mode       Backoff
	Initial    time.Duration // base delay
	Max        time.Duration // cap for growth
	MaxRetries int           // retry attempts after the first failure
}

// DefaultPolicy returns linear backoff from 1s capped at 30s with 2 retries.
func DefaultPolicy() Policy {
	return Policy{Mode: BackoffLinear, Initial: time.Second, Max: 30 * time.Second, MaxRetries: 2}
}

// NewPolicy builds a policy from raw settings; zero or negative durations and
// unknown modes fall back to the defaults. A negative maxRetries keeps the default.
func NewPolicy(mode Backoff, initial, maxDelay time.Duration, maxRetries int) Policy {
	p := DefaultPolicy()
	if maxRetries >= 0 {
		p.MaxRetries = maxRetries
	}
	if initial > 0 {
		p.Initial = initial
	}
	if maxDelay > 0 {
		p.Max = maxDelay
	}
	switch mode {
	case BackoffFixed, BackoffLinear, BackoffExponential:
		p.Mode = mode
	}
	if p.Initial > p.Max {
		p.Initial = p.Max
	}
	return p
}

// Delay returns the backoff delay before retry number retryCount (1-based).
func (p Policy) Delay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	var d time.Duration
	switch p.Mode {
	case BackoffFixed:
		return p.Initial
	case BackoffExponential:
		if retryCount > 32 {
			return p.Max
		}
		d = p.Initial * (1 << (retryCount - 1))
	default:
		d = time.Duration(retryCount) * p.Initial
	}
	if d > p.Max || d <= 0 {
		return p.Max
	}
	return d
}

// Validate reports a policy that cannot be applied.
func (p Policy) Validate() error {
	if p.Initial <= 0 {
		return fmt.Errorf("initial delay must be > 0")
	}
	if p.Max <= 0 {
		return fmt.Errorf("max delay must be > 0")
	}
	if p.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	return nil
}

// Do calls fn until it succeeds, retryable reports false for its error, the
// retries are exhausted, or ctx ends. It returns the last error from fn, or
// the context error when canceled while waiting.
func (p Policy) Do(ctx context.Context, retryable func(error) bool, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= p.MaxRetries || !retryable(err) {
			return err
		}
		t := time.NewTimer(p.Delay(attempt + 1))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Package notify announces completed generation runs to downstream consumers
// such as a deploy step.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/retry"
)

// KindCount is the number of pages produced for one page kind.
type KindCount struct {
	Kind  string `json:"kind"`
	Pages int    `json:"pages"`
}

// Event is the payload published after a successful run.
type Event struct {
	RunID       string      `json:"run_id"`
	RunDate     string      `json:"run_date"`
	OutputRoot  string      `json:"output_root"`
	Sitemap     string      `json:"sitemap"`
	Total       int         `json:"total"`
	Kinds       []KindCount `json:"kinds"`
	Stale       []string    `json:"stale,omitempty"`
	CompletedAt time.Time   `json:"completed_at"`
}

// Publisher delivers completion events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher discards events (default when notification is not configured).
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

// conn is the subset of *nats.Conn used for publishing.
type conn interface {
	Publish(subject string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

const flushTimeout = 5 * time.Second

// NATSPublisher publishes events as JSON on a core NATS subject.
type NATSPublisher struct {
	conn    conn
	subject string
	policy  retry.Policy
}

// NewNATSPublisher connects to url and publishes on subject, retrying failed
// publishes according to policy.
func NewNATSPublisher(url, subject string, policy retry.Policy) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("seogen"), nats.Timeout(5*time.Second))
	if err != nil {
		return nil, foundationerrors.NetworkError("failed to connect to NATS").
			WithCause(err).
			WithContext("url", url).
			Build()
	}
	slog.Info("NATS publisher connected", logfields.URL(url), slog.String("subject", subject))
	return &NATSPublisher{conn: nc, subject: subject, policy: policy}, nil
}

// Publish marshals event and waits for the server to acknowledge the flush.
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return foundationerrors.InternalError("failed to marshal completion event").WithCause(err).Build()
	}
	err = p.policy.Do(ctx, foundationerrors.IsRetryable, func() error {
		if err := p.conn.Publish(p.subject, data); err != nil {
			return p.networkError("failed to publish completion event", err)
		}
		timeout := flushTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		if err := p.conn.FlushTimeout(timeout); err != nil {
			return p.networkError("failed to flush completion event", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("Published completion event", logfields.RunID(event.RunID), slog.String("subject", p.subject))
	return nil
}

// Close drops the connection.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

func (p *NATSPublisher) networkError(msg string, cause error) error {
	return foundationerrors.NetworkError(msg).
		WithCause(cause).
		WithContext("subject", p.subject).
		Build()
}

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	require.Equal(t, BackoffLinear, p.Mode)
	require.Equal(t, time.Second, p.Initial)
	require.Equal(t, 30*time.Second, p.Max)
	require.Equal(t, 2, p.MaxRetries)
	require.NoError(t, p.Validate())
}

func TestNewPolicyOverrides(t *testing.T) {
	p := NewPolicy(BackoffFixed, 5*time.Second, 2*time.Second, 5)
	require.Equal(t, 2*time.Second, p.Initial, "initial is clamped to max")
	require.Equal(t, 2*time.Second, p.Max)
	require.Equal(t, BackoffFixed, p.Mode)
	require.Equal(t, 5, p.MaxRetries)

	p = NewPolicy("bogus", 0, 0, -1)
	require.Equal(t, DefaultPolicy(), p)
}

func TestDelayModes(t *testing.T) {
	fixed := NewPolicy(BackoffFixed, 100*time.Millisecond, 500*time.Millisecond, 3)
	for i := 1; i <= 3; i++ {
		require.Equal(t, 100*time.Millisecond, fixed.Delay(i))
	}

	linear := NewPolicy(BackoffLinear, 100*time.Millisecond, 250*time.Millisecond, 5)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond},
		[]time.Duration{linear.Delay(1), linear.Delay(2), linear.Delay(3), linear.Delay(4)})

	exp := NewPolicy(BackoffExponential, 50*time.Millisecond, 160*time.Millisecond, 5)
	require.Equal(t, []time.Duration{50 * time.Millisecond, 100 * time.Millisecond, 160 * time.Millisecond, 160 * time.Millisecond},
		[]time.Duration{exp.Delay(1), exp.Delay(2), exp.Delay(3), exp.Delay(4)})
	require.Equal(t, 160*time.Millisecond, exp.Delay(64))

	require.Zero(t, linear.Delay(0))
}

func TestParseBackoff(t *testing.T) {
	b, err := ParseBackoff(" Exponential ")
	require.NoError(t, err)
	require.Equal(t, BackoffExponential, b)

	b, err = ParseBackoff("")
	require.NoError(t, err)
	require.Equal(t, BackoffLinear, b)

	_, err = ParseBackoff("random")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.Error(t, Policy{Initial: 0, Max: time.Second}.Validate())
	require.Error(t, Policy{Initial: time.Second, Max: 0}.Validate())
	require.Error(t, Policy{Initial: time.Second, Max: time.Second, MaxRetries: -1}.Validate())
}

var errTransient = errors.New("transient")

func always(error) bool { return true }

func TestDo_RetriesUntilSuccess(t *testing.T) {
	p := NewPolicy(BackoffFixed, time.Millisecond, time.Millisecond, 3)
	calls := 0
	err := p.Do(t.Context(), always, func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestDo_StopsAfterMaxRetries(t *testing.T) {
	p := NewPolicy(BackoffFixed, time.Millisecond, time.Millisecond, 2)
	calls := 0
	err := p.Do(t.Context(), always, func() error { calls++; return errTransient })
	require.ErrorIs(t, err, errTransient)
	require.Equal(t, 3, calls)
}

func TestDo_PermanentErrorIsNotRetried(t *testing.T) {
	p := NewPolicy(BackoffFixed, time.Millisecond, time.Millisecond, 5)
	calls := 0
	err := p.Do(t.Context(), func(error) bool { return false }, func() error { calls++; return errTransient })
	require.ErrorIs(t, err, errTransient)
	require.Equal(t, 1, calls)
}

func TestDo_CanceledWhileWaiting(t *testing.T) {
	p := NewPolicy(BackoffFixed, time.Hour, time.Hour, 5)
	ctx, cancel := context.WithCancel(t.Context())
	err := p.Do(ctx, always, func() error { cancel(); return errTransient })
	require.ErrorIs(t, err, context.Canceled)
}

// Package retry wraps remote operations with exponential backoff.
//
// Only failures classified as transient (apperrors.TransientDependencyError)
// are retried; every other failure propagates on first occurrence. The delay
// before retry attempt n (zero-based) is BaseDelay * 2^n.
package retry

import (
	"context"
	"time"

	apperrors "equipment-system/pkg/errors"

	"go.uber.org/zap"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 200 * time.Millisecond
)

// SleepFunc suspends for the given duration. Injectable so tests can record
// the exact delay sequence instead of waiting.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a retry loop. The zero value gives the defaults.
type Options struct {
	// MaxRetries caps the attempts after the first call. Zero selects
	// DefaultMaxRetries; a negative value disables retries entirely.
	MaxRetries int
	BaseDelay  time.Duration
	Sleep      SleepFunc
	Logger     *zap.Logger
}

func (o *Options) withDefaults() Options {
	out := Options{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		Sleep:      sleepWithContext,
		Logger:     zap.NewNop(),
	}
	if o == nil {
		return out
	}
	if o.MaxRetries > 0 {
		out.MaxRetries = o.MaxRetries
	} else if o.MaxRetries < 0 {
		out.MaxRetries = 0
	}
	if o.BaseDelay > 0 {
		out.BaseDelay = o.BaseDelay
	}
	if o.Sleep != nil {
		out.Sleep = o.Sleep
	}
	if o.Logger != nil {
		out.Logger = o.Logger
	}
	return out
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do executes op up to MaxRetries+1 times, sleeping BaseDelay * 2^attempt
// between transient failures. The last error is returned unwrapped so callers
// can inspect its taxonomy type.
func Do[T any](ctx context.Context, opts *Options, op func(ctx context.Context) (T, error)) (T, error) {
	cfg := opts.withDefaults()

	var zero T
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt >= cfg.MaxRetries || !apperrors.IsTransient(err) {
			return zero, err
		}

		delay := cfg.BaseDelay * (1 << attempt)
		cfg.Logger.Warn("transient failure, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("maxRetries", cfg.MaxRetries),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if sleepErr := cfg.Sleep(ctx, delay); sleepErr != nil {
			return zero, sleepErr
		}
	}

	return zero, lastErr
}

// Package retry re-runs flaky operations with exponential backoff.
// It exists for external commands that fail transiently (package mirror
// hiccups, GeoIP download timeouts), not for logic errors.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds retry behavior.
type Config struct {
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Option is a functional option for Do.
type Option func(*Config)

// WithAttempts sets the total number of attempts (including the first).
func WithAttempts(n int) Option {
	return func(c *Config) { c.Attempts = n }
}

// WithInitialDelay sets the delay before the second attempt.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) { c.InitialDelay = d }
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) { c.MaxDelay = d }
}

// Do runs op until it succeeds or the attempt budget is spent, doubling
// the delay between attempts. Context cancellation stops the wait.
func Do(ctx context.Context, op func() error, opts ...Option) error {
	cfg := &Config{
		Attempts:     3,
		InitialDelay: 2 * time.Second,
		MaxDelay:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if lastErr = op(); lastErr == nil {
			return nil
		}

		if attempt == cfg.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(delay):
			delay *= 2
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", cfg.Attempts, lastErr)
}

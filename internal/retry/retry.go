// Package retry implements the bounded exponential backoff used by the
// upstream API clients. Schema and logical not-found failures are never
// retried here; only transport-level conditions are.
package retry

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config configures the exponential backoff retry behavior.
type Config struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	MaxAttempts  int
	Multiplier   float64
}

// DefaultConfig returns sensible defaults for a single upstream request.
func DefaultConfig() Config {
	return Config{
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		MaxAttempts:  3,
		Multiplier:   2.0,
	}
}

// WithAttempts returns a copy of cfg with MaxAttempts set, keeping the
// defaults for everything else. Zero or negative attempts means one try.
func (c Config) WithAttempts(n int) Config {
	if n <= 0 {
		n = 1
	}
	c.MaxAttempts = n
	return c
}

// IsNetworkError checks if an error is likely due to network unavailability.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	var dnsErr *net.DNSError
	if errors.As(err, &netErr) || errors.As(err, &dnsErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	networkIndicators := []string{
		"connection refused",
		"no such host",
		"timeout",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"i/o timeout",
		"connection reset",
		"temporary failure in name resolution",
	}
	for _, indicator := range networkIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// Do executes fn with exponential backoff. An error is retried when the
// retryable predicate accepts it or it looks like a network error;
// everything else fails immediately.
func Do(ctx context.Context, name string, cfg Config, logger zerolog.Logger, retryable func(error) bool, fn func() error) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				logger.Debug().Str("operation", name).Int("attempt", attempt).Msg("request succeeded after retry")
			}
			return nil
		}

		lastErr = err

		if !IsNetworkError(err) && (retryable == nil || !retryable(err)) {
			return err
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		logger.Warn().
			Err(err).
			Str("operation", name).
			Int("attempt", attempt).
			Int("maxAttempts", cfg.MaxAttempts).
			Dur("nextRetryIn", delay).
			Msg("transient error, will retry")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	logger.Error().Err(lastErr).Str("operation", name).Int("attempts", cfg.MaxAttempts).
		Msg("request failed after all retries")
	return lastErr
}

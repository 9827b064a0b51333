// Package backend holds pieces shared by the three backend handles.
package backend

import (
	"context"
	"time"
)

const (
	DefaultConnectAttempts = 3
	DefaultConnectBackoff  = 500 * time.Millisecond
)

// RetryPolicy is the bounded retry budget a handle spends on one Connect
// call. The attempt count and backoff are explicit configuration rather
// than a client library's built-in retry, so the contract stays visible:
// after the last failed attempt the handle is left unavailable and no
// further attempts happen until Connect is called again.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: DefaultConnectAttempts,
		Backoff:  DefaultConnectBackoff,
	}
}

func (p RetryPolicy) attempts() int {
	if p.Attempts <= 0 {
		return DefaultConnectAttempts
	}
	return p.Attempts
}

func (p RetryPolicy) backoff() time.Duration {
	if p.Backoff <= 0 {
		return DefaultConnectBackoff
	}
	return p.Backoff
}

// Do runs op up to Attempts times, sleeping Backoff between attempts.
// The last error is returned once the budget is exhausted. Context
// cancellation cuts the budget short.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < p.attempts(); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.backoff()):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if lastErr = op(ctx); lastErr == nil {
			return nil
		}
	}

	return lastErr
}

package stores

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// transientError wraps failures worth retrying: transport errors and the
// gateway-flavored 5xx statuses.
type transientError struct {
	cause error
}

func (e *transientError) Error() string {
	return e.cause.Error()
}

func (e *transientError) Unwrap() error {
	return e.cause
}

func isTransientError(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// retryWithBackoff executes fn with exponential backoff on transient errors.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var err error
	baseDelay := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if !isTransientError(err) {
			return err
		}

		if attempt == maxRetries {
			return err
		}

		// Exponential backoff with jitter (up to 25% of the delay), capped
		// at 2 seconds.
		delay := baseDelay * time.Duration(1<<attempt)
		delay += time.Duration(rand.Int63n(int64(delay / 4)))
		if delay > 2*time.Second {
			delay = 2 * time.Second
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			// Continue to next retry
		}
	}

	return err
}

package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransientError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "wrapped transport error",
			err:      &transientError{cause: errors.New("connection refused")},
			expected: true,
		},
		{
			name:     "wrapped gateway error",
			err:      &transientError{cause: &upstreamError{status: 503, body: "down"}},
			expected: true,
		},
		{
			name:     "plain upstream error",
			err:      &upstreamError{status: 422, body: "bad"},
			expected: false,
		},
		{
			name:     "not found",
			err:      ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTransientError(tt.err))
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	transient := func() error {
		return &transientError{cause: errors.New("connection reset")}
	}

	t.Run("succeeds on first attempt", func(t *testing.T) {
		attempts := 0
		err := retryWithBackoff(context.Background(), 5, func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on transient error and succeeds", func(t *testing.T) {
		attempts := 0
		err := retryWithBackoff(context.Background(), 5, func() error {
			attempts++
			if attempts < 3 {
				return transient()
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("fails immediately on non-transient error", func(t *testing.T) {
		attempts := 0
		err := retryWithBackoff(context.Background(), 5, func() error {
			attempts++
			return ErrNotFound
		})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("exhausts all retries on persistent transient error", func(t *testing.T) {
		attempts := 0
		err := retryWithBackoff(context.Background(), 3, func() error {
			attempts++
			return transient()
		})
		require.Error(t, err)
		assert.Equal(t, 4, attempts) // 1 initial + 3 retries
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := retryWithBackoff(ctx, 10, func() error {
			attempts++
			return transient()
		})

		require.Error(t, err)
		require.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, attempts, 1)
		assert.Less(t, attempts, 10)
	})

	t.Run("zero retries means one attempt only", func(t *testing.T) {
		attempts := 0
		err := retryWithBackoff(context.Background(), 0, func() error {
			attempts++
			return transient()
		})
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

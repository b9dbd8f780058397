package upstream

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_SucceedsFirstAttempt(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	result, err := Call(ctx, func(_ context.Context) (int, error) {
		attempts++

		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, attempts)
}

func TestCall_RetriesOnceOnConnectivityFailure(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	result, err := Call(ctx, func(_ context.Context) (string, error) {
		attempts++
		if attempts == 1 {
			return "", Connectivity(errors.New("connection refused"))
		}

		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, attempts)
}

func TestCall_PersistentConnectivityFailureBecomesUnavailable(t *testing.T) {
	ctx := context.Background()
	attempts := 0
	cause := errors.New("connection refused")

	_, err := Call(ctx, func(_ context.Context) (int, error) {
		attempts++

		return 0, Connectivity(cause)
	})

	require.Error(t, err)
	assert.Equal(t, 2, attempts)
	assert.ErrorIs(t, err, ErrUnavailable)
	// The raw connectivity failure must not leak to the caller.
	assert.NotErrorIs(t, err, cause)
}

func TestCall_DomainErrorIsNeverRetried(t *testing.T) {
	ctx := context.Background()
	attempts := 0
	sentinel := errors.New("product not found")

	_, err := Call(ctx, func(_ context.Context) (int, error) {
		attempts++

		return 0, Domain(sentinel)
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, sentinel)
	assert.True(t, IsDomain(err))
}

func TestCall_UnclassifiedErrorPropagatesUnchanged(t *testing.T) {
	ctx := context.Background()
	plain := errors.New("boom")

	_, err := Call(ctx, func(_ context.Context) (int, error) {
		return 0, plain
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, plain)
	assert.False(t, IsDomain(err))
}

func TestCall_CancelledContextSkipsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	_, err := Call(ctx, func(_ context.Context) (int, error) {
		attempts++
		cancel()

		return 0, Connectivity(errors.New("connection reset"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallVoid_AppliesSamePolicy(t *testing.T) {
	ctx := context.Background()
	attempts := 0

	err := CallVoid(ctx, func(_ context.Context) error {
		attempts++
		if attempts == 1 {
			return Connectivity(errors.New("timeout"))
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

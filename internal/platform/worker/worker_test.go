package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchReturnsResult(t *testing.T) {
	pool := NewBlockingPool(2)

	val, err := pool.Dispatch(context.Background(), func() (interface{}, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestDispatchPropagatesError(t *testing.T) {
	pool := NewBlockingPool(1)
	boom := errors.New("boom")

	_, err := pool.Dispatch(context.Background(), func() (interface{}, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestDispatchRespectsContextCancellation(t *testing.T) {
	pool := NewBlockingPool(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Dispatch(ctx, func() (interface{}, error) {
		time.Sleep(50 * time.Millisecond)
		return nil, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatchRecoversPanic(t *testing.T) {
	pool := NewBlockingPool(1)

	_, err := pool.Dispatch(context.Background(), func() (interface{}, error) {
		panic("boom")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestDispatchRecoversPanicAndReleasesSemaphore(t *testing.T) {
	pool := NewBlockingPool(1)

	_, _ = pool.Dispatch(context.Background(), func() (interface{}, error) {
		panic("first call panics")
	})

	val, err := pool.Dispatch(context.Background(), func() (interface{}, error) {
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestWaitBoundsConcurrency(t *testing.T) {
	pool := NewBlockingPool(1)

	var running int32

	fn := func() (interface{}, error) {
		running++
		defer func() { running-- }()
		time.Sleep(10 * time.Millisecond)

		if running > 1 {
			return nil, errors.New("exceeded pool bound")
		}

		return nil, nil
	}

	_, err := Wait(context.Background(), pool, fn, fn, fn)
	assert.NoError(t, err)
}

func TestWaitReturnsFirstError(t *testing.T) {
	pool := NewBlockingPool(2)
	boom := errors.New("boom")

	_, err := Wait(context.Background(), pool,
		func() (interface{}, error) { return 1, nil },
		func() (interface{}, error) { return nil, boom },
	)

	assert.ErrorIs(t, err, boom)
}

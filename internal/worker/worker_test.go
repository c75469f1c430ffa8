package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPool_Submit(t *testing.T) {
	t.Parallel()

	pool := NewPool(2, 8, zap.NewNop())
	defer pool.Shutdown(context.Background())

	var ran atomic.Int32
	done := make(chan struct{})

	err := pool.Submit(func(ctx context.Context) error {
		ran.Add(1)
		close(done)
		return nil
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	assert.Equal(t, int32(1), ran.Load())
}

func TestPool_SubmitQueueFull(t *testing.T) {
	t.Parallel()

	// no workers, so the single queue slot never drains
	pool := &Pool{jobs: make(chan Job, 1), log: zap.NewNop()}

	require.NoError(t, pool.Submit(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, pool.Submit(func(ctx context.Context) error { return nil }), ErrQueueFull)
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	t.Parallel()

	pool := NewPool(1, 4, zap.NewNop())
	require.NoError(t, pool.Shutdown(context.Background()))

	err := pool.Submit(func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrStopped)
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	t.Parallel()

	pool := NewPool(1, 16, zap.NewNop())

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, pool.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}))
	}

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.Equal(t, int32(10), ran.Load())

	// repeated shutdown is a no-op
	require.NoError(t, pool.Shutdown(context.Background()))
}

func TestPool_JobErrorsDoNotStopWorkers(t *testing.T) {
	t.Parallel()

	pool := NewPool(1, 4, zap.NewNop())

	require.NoError(t, pool.Submit(func(ctx context.Context) error {
		return errors.New("job failed")
	}))

	done := make(chan struct{})
	require.NoError(t, pool.Submit(func(ctx context.Context) error {
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after a failing job")
	}

	require.NoError(t, pool.Shutdown(context.Background()))
}

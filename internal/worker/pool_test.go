package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShelterSim_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()

	var executed int32
	pool := NewPool(2, 1)
	pool.Start(ctx)

	job := &testJob{executed: &executed}
	for i := 0; i < 10; i++ {
		require.NoError(t, pool.Enqueue(ctx, job))
	}
	pool.Stop(ctx)

	assert.Equal(t, int32(10), atomic.LoadInt32(&executed))
	assert.Zero(t, pool.Failed())
	checker.Check(0)
}

func TestPool_CountsFailures(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(3, 0)
	pool.Start(ctx)

	boom := errors.New("boom")
	for i := 0; i < 6; i++ {
		fail := i%2 == 0
		require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error {
			if fail {
				return boom
			}
			return nil
		})))
	}
	pool.Stop(ctx)

	assert.Equal(t, 3, pool.Failed())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(1, 1)
	pool.Start(ctx)
	pool.Stop(ctx)

	err := pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)

	// second stop is a no-op
	pool.Stop(ctx)
}

func TestPool_EnqueueHonoursContext(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(1, 1)

	// not started, so the single slot stays occupied
	require.NoError(t, pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil })))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := pool.Enqueue(cancelled, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.Canceled)

	pool.Start(ctx)
	pool.Stop(ctx)
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool(0, 0)
	assert.Equal(t, 1, pool.workers)
	assert.Equal(t, DefaultQueueFactor, cap(pool.jobQueue))
}

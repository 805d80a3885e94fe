package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var count int32
	done := make(chan struct{}, 5)
	for i := 0; i < 5; i++ {
		pool.Enqueue(JobFunc(func(ctx context.Context) error {
			atomic.AddInt32(&count, 1)
			done <- struct{}{}
			return nil
		}))
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.Equal(t, int32(5), atomic.LoadInt32(&count))
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{}, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		return errors.New("job failure")
	}))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		done <- struct{}{}
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Worker did not survive a failing job")
	}
}

func TestPoolSurvivesPanickingJob(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{}, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		panic("job panic")
	}))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		done <- struct{}{}
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Worker did not survive a panicking job")
	}
}

func TestTryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// Pool not started, so the queue fills up

	ok := pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.True(t, ok)
	ok = pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.False(t, ok, "second enqueue should fail on a full queue")
}

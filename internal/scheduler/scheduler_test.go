package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DuelArena_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduleOnce(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 1)}
	start := time.Now()
	sched.ScheduleOnce(20*time.Millisecond, job)

	select {
	case <-job.Done:
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond, "job must not run before its delay")
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for one-shot job")
	}
}

func TestScheduleOnceCancel(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 1)}
	handle := sched.ScheduleOnce(50*time.Millisecond, job)

	assert.True(t, handle.Cancel())

	select {
	case <-job.Done:
		t.Fatal("Cancelled job should not run")
	case <-time.After(150 * time.Millisecond):
	}

	// Cancel after the fact is a no-op
	assert.False(t, handle.Cancel())
}

func TestScheduleOnceConcurrentTasks(t *testing.T) {
	pool := worker.NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	jobs := make([]*MockJob, 5)
	for i := range jobs {
		jobs[i] = &MockJob{Done: make(chan struct{}, 1)}
		sched.ScheduleOnce(10*time.Millisecond, jobs[i])
	}

	for i, job := range jobs {
		select {
		case <-job.Done:
		case <-time.After(time.Second):
			t.Fatalf("Timeout waiting for job %d", i)
		}
	}
}

func TestScheduleRecurring(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(500 * time.Millisecond)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for recurring job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestStopCancelsPendingTasks(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.ScheduleOnce(50*time.Millisecond, job)
	sched.Stop()

	select {
	case <-job.Done:
		t.Fatal("Pending task should not fire after Stop")
	case <-time.After(150 * time.Millisecond):
	}

	// Scheduling after Stop is a no-op rather than a panic
	handle := sched.ScheduleOnce(time.Millisecond, job)
	assert.False(t, handle.Cancel())
}

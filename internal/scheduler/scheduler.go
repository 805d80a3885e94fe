package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DuelArena_Go/internal/worker"
)

// Scheduler manages delayed and recurring jobs. One-shot jobs are handed
// to the worker pool once their delay elapses, so callbacks never run on
// the goroutine that scheduled them.
type Scheduler struct {
	workerPool *worker.Pool

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer

	quit    chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

// Handle identifies a scheduled one-shot task. Callers may use it to
// cancel the task; holding onto it is optional, and completed tasks make
// Cancel a no-op.
type Handle struct {
	id   uuid.UUID
	sked *Scheduler
}

// Cancel stops the task if it has not fired yet.
// Returns true if the task was cancelled before firing.
func (h Handle) Cancel() bool {
	if h.sked == nil {
		return false
	}
	h.sked.mu.Lock()
	defer h.sked.mu.Unlock()
	timer, ok := h.sked.timers[h.id]
	if !ok {
		return false
	}
	delete(h.sked.timers, h.id)
	return timer.Stop()
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		timers:     make(map[uuid.UUID]*time.Timer),
		quit:       make(chan struct{}),
	}
}

// ScheduleOnce registers a job to run once, no sooner than delay from now.
// The call returns immediately; the job later runs on a pool worker.
func (s *Scheduler) ScheduleOnce(delay time.Duration, job worker.Job) Handle {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return Handle{}
	}

	timer := time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, pending := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()
		if !pending {
			// Cancelled or shut down between firing and this check
			return
		}
		s.workerPool.Enqueue(job)
	})
	s.timers[id] = timer

	return Handle{id: id, sked: s}
}

// Schedule registers a job to run at a fixed interval until Stop is called
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop cancels pending one-shot tasks and stops recurring jobs.
// In-flight jobs already handed to the worker pool are unaffected.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	close(s.quit)
	s.wg.Wait()
}

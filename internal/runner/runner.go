// internal/runner/runner.go

// Package runner drives a sched.Scheduler from wall-clock time. The core
// scheduler is synchronous and unlocked by contract; the Runner owns the
// mutex that serializes every operation, so a process needs exactly one
// Runner per scheduler instance.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"fairq/internal/sched"
)

// OnComplete receives the ids of jobs that finished during one tick, in
// completion order. It runs on the Runner's goroutine and must not call
// back into the Runner.
type OnComplete func(ids []sched.JobID)

// Runner converts real elapsed time into logical Tick calls.
type Runner struct {
	mu         sync.Mutex
	s          *sched.Scheduler
	interval   time.Duration
	timeScale  float64 // logical time units per wall second
	onComplete OnComplete
	ticks      atomic.Int64
}

// New creates a runner ticking the scheduler every interval, advancing
// logical time by interval * timeScale each tick. A nil onComplete drops
// completion notifications.
func New(s *sched.Scheduler, interval time.Duration, timeScale float64, onComplete OnComplete) *Runner {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	if timeScale <= 0 {
		timeScale = 1.0
	}
	return &Runner{
		s:          s,
		interval:   interval,
		timeScale:  timeScale,
		onComplete: onComplete,
	}
}

// Run feeds wall ticks to the scheduler until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	delta := r.interval.Seconds() * r.timeScale
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.ticks.Add(1)
			r.mu.Lock()
			done := r.s.Tick(delta)
			r.mu.Unlock()
			if r.onComplete != nil && len(done) > 0 {
				r.onComplete(done)
			}
		}
	}
}

// Ticks returns how many wall ticks have been processed.
func (r *Runner) Ticks() int64 {
	return r.ticks.Load()
}

// Submit queues a job through the runner's lock.
func (r *Runner) Submit(weight, estimatedTime float64) (sched.JobID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Submit(weight, estimatedTime)
}

// SubmitNamed queues a named job through the runner's lock.
func (r *Runner) SubmitNamed(weight, estimatedTime float64, name string) (sched.JobID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.SubmitNamed(weight, estimatedTime, name)
}

// Cancel removes a job through the runner's lock.
func (r *Runner) Cancel(id sched.JobID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Cancel(id)
}

// Stats snapshots the scheduler's counters through the runner's lock.
// Safe to hand to a metrics collector scraped from another goroutine.
func (r *Runner) Stats() sched.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Stats()
}

// Evidence snapshots the next scheduling decision through the runner's lock.
func (r *Runner) Evidence() sched.Evidence {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Evidence()
}

// PeekNext snapshots the next job through the runner's lock.
func (r *Runner) PeekNext() *sched.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.PeekNext()
}

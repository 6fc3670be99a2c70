// internal/sched/scheduler.go

package sched

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Scheduler is a work-conserving single-server scheduler. Waiting jobs are
// ordered by Smith's rule (weight / remaining time) plus a linear aging
// term, so the queue behaves as weighted SRPT with a provable wait bound:
// any job's priority eventually exceeds any static priority.
//
// Every operation runs to completion on the caller's goroutine; there is no
// internal locking and logical time only moves when Tick is called. Callers
// that need concurrent access must serialize externally (see
// internal/runner).
type Scheduler struct {
	cfg     Config
	rbt     *redblacktree.Tree // waiting jobs, best entry at Left()
	current *Job               // in-service job, nil when idle
	now     float64            // logical clock, advanced only by Tick
	nextID  JobID
	stats   Stats

	// logging-related
	log eventLog
}

// New creates a new Scheduler instance with the given configuration.
func New(cfg Config) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		rbt:    redblacktree.NewWith(cmp),
		nextID: 1,
	}
}

// Config returns the configuration the scheduler was constructed with.
func (s *Scheduler) Config() Config { return s.cfg }

// Now returns the logical clock.
func (s *Scheduler) Now() float64 { return s.now }

// Submit queues a job with the given weight and estimated processing time.
// It returns (0, false) when the queue is at capacity; rejection is an
// ordinary outcome, not an error.
func (s *Scheduler) Submit(weight, estimatedTime float64) (JobID, bool) {
	return s.SubmitNamed(weight, estimatedTime, "")
}

// SubmitNamed queues a job carrying a cosmetic name.
func (s *Scheduler) SubmitNamed(weight, estimatedTime float64, name string) (JobID, bool) {
	if s.rbt.Size() >= s.cfg.MaxQueueSize {
		s.stats.TotalRejected++
		s.logEvent(EventReject, 0, 0)
		return 0, false
	}

	id := s.nextID
	s.nextID++

	job := NewJob(id, weight, estimatedTime)
	job.ArrivalTime = s.now
	job.Name = name

	priority := s.computePriority(&job)
	s.rbt.Put(entryKey{priority, job.ArrivalTime, job.ID}, &job)
	s.stats.TotalSubmitted++
	s.logEvent(EventSubmit, id, priority)

	// Submission never dispatches; it can only displace the in-service job.
	if s.cfg.Preemptive {
		s.maybePreempt()
	}

	return id, true
}

// Tick advances the logical clock by delta and spends it as processing
// budget. It returns the ids of jobs that completed during this call, in
// completion order. A zero or negative delta processes nothing but still
// moves the clock and processing-time counter by the given amount.
func (s *Scheduler) Tick(delta float64) []JobID {
	var completed []JobID

	budget := delta
	s.now += delta
	s.stats.TotalProcessingTime += delta

	for budget > 0 {
		job := s.current
		s.current = nil
		if job == nil {
			node := s.rbt.Left()
			if node == nil {
				break // idle: nothing resident
			}
			s.rbt.Remove(node.Key)
			job = node.Value.(*Job)
		}

		run := math.Min(budget, job.RemainingTime)
		job.RemainingTime -= run
		budget -= run

		if job.IsComplete() {
			response := s.now - job.ArrivalTime
			s.stats.TotalResponseTime += response
			s.stats.MaxResponseTime = math.Max(s.stats.MaxResponseTime, response)
			s.stats.TotalCompleted++
			completed = append(completed, job.ID)
			s.logEvent(EventComplete, job.ID, 0)
		} else {
			// Budget exhausted; resume this job on the next call.
			s.current = job
		}
	}

	// Aging shifted every resident job's priority; rebuild the queue so
	// ordering is consistent before the next call.
	s.refreshPriorities()

	return completed
}

// PeekNext returns a snapshot of the job that would run next, or nil when
// nothing is resident. It never mutates scheduler state; the copy keeps
// callers from bending RemainingTime behind the queue's back.
func (s *Scheduler) PeekNext() *Job {
	if s.current != nil {
		j := *s.current
		return &j
	}
	if node := s.rbt.Left(); node != nil {
		j := *node.Value.(*Job)
		return &j
	}
	return nil
}

// Evidence captures why the next job would be selected. Diagnostic only.
func (s *Scheduler) Evidence() Evidence {
	mean, max := s.waitStats()

	var reason SelectionReason
	switch {
	case s.current == nil && s.rbt.Empty():
		reason = ReasonQueueEmpty
	case s.current != nil:
		reason = ReasonContinuation
	default:
		head := s.rbt.Left().Value.(*Job)
		base := head.Weight / math.Max(head.RemainingTime, MinWeight)
		aging := s.cfg.AgingFactor * (s.now - head.ArrivalTime)
		switch {
		case aging > base*0.5:
			reason = ReasonAgingBoost
		case head.Weight > 1.0:
			reason = ReasonWeightedPriority
		default:
			reason = ReasonShortestRemaining
		}
	}

	var selected JobID
	if j := s.PeekNext(); j != nil {
		selected = j.ID
	}

	return Evidence{
		CurrentTime:   s.now,
		SelectedJobID: selected,
		QueueLength:   s.residentCount(),
		MeanWaitTime:  mean,
		MaxWaitTime:   max,
		Reason:        reason,
	}
}

// Stats returns the cumulative counters with a live queue length.
func (s *Scheduler) Stats() Stats {
	st := s.stats
	st.QueueLength = s.residentCount()
	return st
}

// Cancel removes the job with the given id, checking the in-service slot
// first. It reports whether anything was removed; cancelling an unknown or
// already-cancelled id is not an error. Cancelled jobs never count as
// completed.
func (s *Scheduler) Cancel(id JobID) bool {
	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.logEvent(EventCancel, id, 0)
		return true
	}

	// O(n) scan; ids are not part of the tree's lookup path.
	var key any
	it := s.rbt.Iterator()
	for it.Next() {
		if it.Value().(*Job).ID == id {
			key = it.Key()
			break
		}
	}
	if key == nil {
		return false
	}
	s.rbt.Remove(key)
	s.logEvent(EventCancel, id, 0)
	return true
}

// Clear drops all resident jobs. Cumulative statistics are preserved.
func (s *Scheduler) Clear() {
	s.rbt.Clear()
	s.current = nil
	s.logEvent(EventClear, 0, 0)
}

// Reset returns the scheduler to its freshly constructed state: no resident
// jobs, zeroed statistics, clock at zero, ids restarting from 1.
func (s *Scheduler) Reset() {
	s.rbt.Clear()
	s.current = nil
	s.now = 0
	s.nextID = 1
	s.stats = Stats{}
	s.logEvent(EventReset, 0, 0)
}

// computePriority applies Smith's rule plus linear aging. Both terms are
// finite by construction: weight and the divisor are floored at MinWeight,
// wait time at zero.
func (s *Scheduler) computePriority(j *Job) float64 {
	base := j.Weight / math.Max(j.RemainingTime, MinWeight)
	wait := math.Max(s.now-j.ArrivalTime, 0)
	return base + s.cfg.AgingFactor*wait
}

// maybePreempt returns the in-service job to the queue when the waiting
// head strictly outranks it. The slot then stays empty until the next Tick
// pops a job, which may validly re-select the same one.
func (s *Scheduler) maybePreempt() {
	if s.current == nil {
		return
	}
	node := s.rbt.Left()
	if node == nil {
		return
	}

	headPriority := node.Key.(entryKey).priority
	currentPriority := s.computePriority(s.current)
	if headPriority > currentPriority {
		old := s.current
		s.current = nil
		s.rbt.Put(entryKey{currentPriority, old.ArrivalTime, old.ID}, old)
		s.stats.TotalPreemptions++
		s.logEvent(EventPreempt, old.ID, currentPriority)
	}
}

// refreshPriorities rebuilds the whole tree against the current clock.
// O(n log n) per Tick, traded for a queue that is always correctly ordered
// under aging; the tree invariant does not tolerate keys changing in place.
func (s *Scheduler) refreshPriorities() {
	if s.rbt.Empty() {
		return
	}

	jobs := make([]*Job, 0, s.rbt.Size())
	it := s.rbt.Iterator()
	for it.Next() {
		jobs = append(jobs, it.Value().(*Job))
	}
	s.rbt.Clear()
	for _, j := range jobs {
		s.rbt.Put(entryKey{s.computePriority(j), j.ArrivalTime, j.ID}, j)
	}
}

// waitStats computes mean and max wait across all resident jobs.
func (s *Scheduler) waitStats() (mean, max float64) {
	var total float64
	var count int

	it := s.rbt.Iterator()
	for it.Next() {
		wait := math.Max(s.now-it.Value().(*Job).ArrivalTime, 0)
		total += wait
		max = math.Max(max, wait)
		count++
	}
	if s.current != nil {
		wait := math.Max(s.now-s.current.ArrivalTime, 0)
		total += wait
		max = math.Max(max, wait)
		count++
	}

	if count > 0 {
		mean = total / float64(count)
	}
	return mean, max
}

func (s *Scheduler) residentCount() int {
	n := s.rbt.Size()
	if s.current != nil {
		n++
	}
	return n
}

// entryKey orders the tree as a deterministic max-priority queue with FIFO
// tie-break.
type entryKey struct {
	priority float64
	arrival  float64
	id       JobID
}

// cmp puts higher priority first, then earlier arrival, then lower id.
func cmp(a, b any) int {
	ka, kb := a.(entryKey), b.(entryKey)
	switch {
	case ka.priority > kb.priority:
		return -1
	case ka.priority < kb.priority:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

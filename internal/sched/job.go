package sched

// MinWeight floors job weights and priority divisors so the Smith-rule
// ratio stays finite.
const MinWeight = 1e-6

// JobID uniquely identifies a job in the scheduler. IDs are assigned
// monotonically and never reused, not even after cancellation.
type JobID uint64

// Job represents one unit of schedulable work.
type Job struct {
	ID            JobID
	Weight        float64 // importance; higher wins, floored at MinWeight
	RemainingTime float64 // only decreases, via Tick
	TotalTime     float64 // fixed at creation
	ArrivalTime   float64 // logical time at submission
	Name          string  // cosmetic label, may be empty
}

// NewJob creates a job with clamped weight and estimated time.
// NOTE: ArrivalTime is zero in here. The scheduler stamps it at submission.
func NewJob(id JobID, weight, estimatedTime float64) Job {
	if weight < MinWeight {
		weight = MinWeight
	}
	if estimatedTime < 0 {
		estimatedTime = 0
	}
	return Job{
		ID:            id,
		Weight:        weight,
		RemainingTime: estimatedTime,
		TotalTime:     estimatedTime,
	}
}

// Progress reports the completed fraction in [0, 1]. A job with no
// processing time counts as fully complete.
func (j Job) Progress() float64 {
	if j.TotalTime <= 0 {
		return 1.0
	}
	p := 1.0 - j.RemainingTime/j.TotalTime
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IsComplete reports whether no processing time remains.
func (j Job) IsComplete() bool {
	return j.RemainingTime <= 0
}

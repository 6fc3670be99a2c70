package sched

// SelectionReason classifies why the next job would be chosen. It exists
// for logs and dashboards only and never feeds back into scheduling.
type SelectionReason int

const (
	// ReasonQueueEmpty means nothing is resident.
	ReasonQueueEmpty SelectionReason = iota
	// ReasonShortestRemaining means plain SRPT picked the job.
	ReasonShortestRemaining
	// ReasonWeightedPriority means the job's weight carried the decision.
	ReasonWeightedPriority
	// ReasonAgingBoost means accumulated wait time dominates the base priority.
	ReasonAgingBoost
	// ReasonContinuation means a partially processed job resumes.
	ReasonContinuation
)

func (r SelectionReason) String() string {
	switch r {
	case ReasonQueueEmpty:
		return "QueueEmpty"
	case ReasonShortestRemaining:
		return "ShortestRemaining"
	case ReasonWeightedPriority:
		return "WeightedPriority"
	case ReasonAgingBoost:
		return "AgingBoost"
	case ReasonContinuation:
		return "Continuation"
	default:
		return "Unknown"
	}
}

// Evidence is a read-only snapshot of the scheduler's next decision.
type Evidence struct {
	CurrentTime   float64
	SelectedJobID JobID // 0 when nothing is resident
	QueueLength   int   // queued plus in-service
	MeanWaitTime  float64
	MaxWaitTime   float64
	Reason        SelectionReason
}

// Stats holds the scheduler's cumulative counters.
type Stats struct {
	TotalSubmitted      uint64
	TotalCompleted      uint64
	TotalRejected       uint64
	TotalPreemptions    uint64
	TotalProcessingTime float64
	TotalResponseTime   float64
	MaxResponseTime     float64
	QueueLength         int // live, queued plus in-service
}

// MeanResponseTime averages response time over completed jobs.
func (s Stats) MeanResponseTime() float64 {
	if s.TotalCompleted == 0 {
		return 0
	}
	return s.TotalResponseTime / float64(s.TotalCompleted)
}

// Throughput is completed jobs per unit of processing time.
func (s Stats) Throughput() float64 {
	if s.TotalProcessingTime <= 0 {
		return 0
	}
	return float64(s.TotalCompleted) / s.TotalProcessingTime
}

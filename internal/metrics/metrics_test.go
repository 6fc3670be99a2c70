package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairq/internal/sched"
)

func TestCollectorExportsAllMetrics(t *testing.T) {
	s := sched.New(sched.DefaultConfig())
	c := NewCollector(s.Stats)

	assert.Equal(t, 9, testutil.CollectAndCount(c))
}

func TestCollectorTracksSchedulerActivity(t *testing.T) {
	s := sched.New(sched.DefaultConfig())
	s.Submit(1.0, 5.0)
	s.Submit(1.0, 10.0)
	s.Tick(5.0)

	c := NewCollector(s.Stats)

	expected := `
# HELP fairq_jobs_submitted_total Total number of jobs submitted.
# TYPE fairq_jobs_submitted_total counter
fairq_jobs_submitted_total 2
# HELP fairq_jobs_completed_total Total number of jobs completed.
# TYPE fairq_jobs_completed_total counter
fairq_jobs_completed_total 1
# HELP fairq_queue_length Current number of resident jobs, queued plus in-service.
# TYPE fairq_queue_length gauge
fairq_queue_length 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"fairq_jobs_submitted_total", "fairq_jobs_completed_total", "fairq_queue_length"))
}

func TestCollectorFollowsReset(t *testing.T) {
	s := sched.New(sched.DefaultConfig())
	s.Submit(1.0, 5.0)
	s.Tick(5.0)
	s.Reset()

	c := NewCollector(s.Stats)

	expected := `
# HELP fairq_jobs_completed_total Total number of jobs completed.
# TYPE fairq_jobs_completed_total counter
fairq_jobs_completed_total 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"fairq_jobs_completed_total"))
}

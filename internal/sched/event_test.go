package sched

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoggingRecordsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")

	s := New(testConfig())
	require.NoError(t, s.EnableCSVLogging(path))

	id, _ := s.Submit(1.0, 5.0)
	s.Tick(5.0)
	s.Cancel(id) // already completed; no event expected
	require.NoError(t, s.CloseLog())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"time", "event", "job_id", "priority", "queue_len"}, rows[0])
	assert.Equal(t, "Submit", rows[1][1])
	assert.Equal(t, "Complete", rows[2][1])
}

func TestCloseLogWithoutEnableIsNoop(t *testing.T) {
	s := New(testConfig())
	assert.NoError(t, s.CloseLog())
}

func TestEventKindStrings(t *testing.T) {
	cases := map[EventKind]string{
		EventSubmit:   "Submit",
		EventReject:   "Reject",
		EventPreempt:  "Preempt",
		EventComplete: "Complete",
		EventCancel:   "Cancel",
		EventClear:    "Clear",
		EventReset:    "Reset",
		EventKind(99): "Unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

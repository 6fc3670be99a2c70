// internal/sched/event.go

package sched

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EventKind represents the type of scheduler event.
type EventKind int

const (
	EventSubmit EventKind = iota
	EventReject
	EventPreempt
	EventComplete
	EventCancel
	EventClear
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventSubmit:
		return "Submit"
	case EventReject:
		return "Reject"
	case EventPreempt:
		return "Preempt"
	case EventComplete:
		return "Complete"
	case EventCancel:
		return "Cancel"
	case EventClear:
		return "Clear"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event records one state-changing scheduler action.
type Event struct {
	Time     float64
	Kind     EventKind
	JobID    JobID
	Priority float64
	QueueLen int
}

// eventLog holds the optional CSV sink. Logging stays synchronous: the
// core owns no goroutines, so events are written inline on the caller's
// stack.
type eventLog struct {
	csvFile   *os.File
	csvWriter *csv.Writer
}

// EnableCSVLogging opens the given file path for CSV logging of events.
// Call it before submitting work; the file stays open until CloseLog.
func (s *Scheduler) EnableCSVLogging(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"time", "event", "job_id", "priority", "queue_len"})
	w.Flush()
	s.log.csvFile = f
	s.log.csvWriter = w
	return nil
}

// CloseLog flushes and closes the CSV sink, if any.
func (s *Scheduler) CloseLog() error {
	if s.log.csvFile == nil {
		return nil
	}
	s.log.csvWriter.Flush()
	err := s.log.csvFile.Close()
	s.log.csvFile = nil
	s.log.csvWriter = nil
	return err
}

func (s *Scheduler) logEvent(kind EventKind, id JobID, priority float64) {
	if !s.cfg.EnableLogging && s.log.csvWriter == nil {
		return
	}

	ev := Event{
		Time:     s.now,
		Kind:     kind,
		JobID:    id,
		Priority: priority,
		QueueLen: s.rbt.Size(),
	}

	if s.cfg.EnableLogging {
		fmt.Printf("t=%010.3f [%s] job=%04d priority=%08.4f queued=%d\n",
			ev.Time, center(ev.Kind.String(), 10), ev.JobID, ev.Priority, ev.QueueLen)
	}

	if s.log.csvWriter != nil {
		s.log.csvWriter.Write([]string{
			strconv.FormatFloat(ev.Time, 'f', 4, 64),
			ev.Kind.String(),
			strconv.FormatUint(uint64(ev.JobID), 10),
			fmt.Sprintf("%.4f", ev.Priority),
			strconv.Itoa(ev.QueueLen),
		})
		s.log.csvWriter.Flush()
	}
}

// center pads the event kind so log columns line up.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}

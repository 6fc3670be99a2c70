package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"fairq/internal/metrics"
	"fairq/internal/runner"
	"fairq/internal/sched"
	"fairq/internal/workload"
)

var (
	configPath  string
	duration    float64
	step        float64
	csvPath     string
	metricsAddr string
	seed        int64
	jobCount    int
	realtime    bool
)

func main() {
	root := &cobra.Command{
		Use:   "fairsched",
		Short: "Drive the fair SRPT scheduler over a synthetic workload",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "config.yml", "scheduler config file (YAML)")
	root.Flags().Float64Var(&duration, "duration", 500, "logical time to simulate")
	root.Flags().Float64Var(&step, "step", 1.0, "logical time per tick")
	root.Flags().StringVar(&csvPath, "csv", "", "write scheduler events to this CSV file")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (realtime mode only)")
	root.Flags().Int64Var(&seed, "seed", 42, "workload seed")
	root.Flags().IntVar(&jobCount, "jobs", 50, "number of synthetic jobs")
	root.Flags().BoolVar(&realtime, "realtime", false, "drive the scheduler from wall-clock time")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := sched.Load(configPath)
	s := sched.New(cfg)

	if csvPath != "" {
		if err := s.EnableCSVLogging(csvPath); err != nil {
			return err
		}
		defer s.CloseLog()
	}

	rng := rand.New(rand.NewSource(seed))
	specs := workload.HeavyTail(jobCount, rng)

	if realtime {
		return runRealtime(s, specs)
	}
	return runSimulated(s, specs)
}

// runSimulated drives logical time directly: everything stays on one
// goroutine, so the scheduler is used bare.
func runSimulated(s *sched.Scheduler, specs []workload.Spec) error {
	for _, sp := range specs {
		if _, ok := s.SubmitNamed(sp.Weight, sp.Duration, sp.Name); !ok {
			fmt.Printf("rejected %q: queue full\n", sp.Name)
		}
	}

	var completed int
	for t := 0.0; t < duration; t += step {
		done := s.Tick(step)
		completed += len(done)
		if s.PeekNext() == nil {
			break
		}
	}

	ev := s.Evidence()
	fmt.Printf("evidence: t=%.1f selected=%d resident=%d mean_wait=%.2f max_wait=%.2f reason=%s\n",
		ev.CurrentTime, ev.SelectedJobID, ev.QueueLength, ev.MeanWaitTime, ev.MaxWaitTime, ev.Reason)
	printStats(s.Stats(), completed)
	return nil
}

// runRealtime wraps the scheduler in a Runner and lets wall time drive it
// until the workload drains or the user interrupts.
func runRealtime(s *sched.Scheduler, specs []workload.Spec) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var completed int
	total := 0
	r := runner.New(s, 10*time.Millisecond, step*100, func(ids []sched.JobID) {
		completed += len(ids)
		if completed >= total {
			cancel()
		}
	})

	for _, sp := range specs {
		if _, ok := r.SubmitNamed(sp.Weight, sp.Duration, sp.Name); ok {
			total++
		} else {
			fmt.Printf("rejected %q: queue full\n", sp.Name)
		}
	}

	if metricsAddr != "" {
		c := metrics.NewCollector(r.Stats)
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(c))
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go srv.ListenAndServe()
		defer srv.Close()
	}

	if err := r.Run(ctx); err != nil {
		return err
	}
	printStats(r.Stats(), completed)
	return nil
}

func printStats(st sched.Stats, completed int) {
	fmt.Printf("completed=%d submitted=%d rejected=%d preemptions=%d\n",
		completed, st.TotalSubmitted, st.TotalRejected, st.TotalPreemptions)
	fmt.Printf("mean_response=%.2f max_response=%.2f throughput=%.3f queued=%d\n",
		st.MeanResponseTime(), st.MaxResponseTime, st.Throughput(), st.QueueLength)
}

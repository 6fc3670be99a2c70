// Package metrics exposes scheduler statistics as Prometheus metrics.
//
// The collector is pull-based: it samples the given StatsFunc at scrape
// time and emits const metrics, so the exported values always agree with
// the scheduler's own counters, including across Reset.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fairq/internal/sched"
)

// StatsFunc supplies a stats snapshot. It is called from the scrape
// goroutine and must serialize access to the scheduler itself;
// runner.Runner.Stats is a ready-made candidate.
type StatsFunc func() sched.Stats

// Collector implements prometheus.Collector over a stats source.
type Collector struct {
	stats StatsFunc

	submitted      *prometheus.Desc
	completed      *prometheus.Desc
	rejected       *prometheus.Desc
	preemptions    *prometheus.Desc
	processingTime *prometheus.Desc
	meanResponse   *prometheus.Desc
	maxResponse    *prometheus.Desc
	throughput     *prometheus.Desc
	queueLength    *prometheus.Desc
}

// NewCollector creates a collector sampling the given stats source.
func NewCollector(stats StatsFunc) *Collector {
	return &Collector{
		stats: stats,
		submitted: prometheus.NewDesc(
			"fairq_jobs_submitted_total",
			"Total number of jobs submitted.",
			nil, nil),
		completed: prometheus.NewDesc(
			"fairq_jobs_completed_total",
			"Total number of jobs completed.",
			nil, nil),
		rejected: prometheus.NewDesc(
			"fairq_jobs_rejected_total",
			"Total number of jobs rejected because the queue was full.",
			nil, nil),
		preemptions: prometheus.NewDesc(
			"fairq_preemptions_total",
			"Total number of preemptions.",
			nil, nil),
		processingTime: prometheus.NewDesc(
			"fairq_processing_time_units_total",
			"Cumulative logical processing time.",
			nil, nil),
		meanResponse: prometheus.NewDesc(
			"fairq_mean_response_time_units",
			"Mean response time across completed jobs, in logical time units.",
			nil, nil),
		maxResponse: prometheus.NewDesc(
			"fairq_max_response_time_units",
			"Maximum response time observed, in logical time units.",
			nil, nil),
		throughput: prometheus.NewDesc(
			"fairq_throughput_jobs_per_unit",
			"Completed jobs per logical time unit.",
			nil, nil),
		queueLength: prometheus.NewDesc(
			"fairq_queue_length",
			"Current number of resident jobs, queued plus in-service.",
			nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.completed
	ch <- c.rejected
	ch <- c.preemptions
	ch <- c.processingTime
	ch <- c.meanResponse
	ch <- c.maxResponse
	ch <- c.throughput
	ch <- c.queueLength
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.stats()
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(st.TotalSubmitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(st.TotalCompleted))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(st.TotalRejected))
	ch <- prometheus.MustNewConstMetric(c.preemptions, prometheus.CounterValue, float64(st.TotalPreemptions))
	ch <- prometheus.MustNewConstMetric(c.processingTime, prometheus.CounterValue, st.TotalProcessingTime)
	ch <- prometheus.MustNewConstMetric(c.meanResponse, prometheus.GaugeValue, st.MeanResponseTime())
	ch <- prometheus.MustNewConstMetric(c.maxResponse, prometheus.GaugeValue, st.MaxResponseTime)
	ch <- prometheus.MustNewConstMetric(c.throughput, prometheus.GaugeValue, st.Throughput())
	ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(st.QueueLength))
}

// Handler serves the collector on a dedicated registry, keeping the
// process-global default registry out of the picture.
func Handler(c *Collector) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

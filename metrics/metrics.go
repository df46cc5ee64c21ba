// Package metrics exports collapse engine activity as Prometheus metrics.
//
// A Collector is a wfc.Observer: attach it with wfc.WithObserver. One
// Collector may be shared by engines running in parallel.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/tilewfc/wfc"
)

const namespace = "tilewfc"

// Collector counts steps, placements, contradictions and runs.
type Collector struct {
	steps          *prometheus.CounterVec
	placed         prometheus.Counter
	contradictions prometheus.Counter
	candidates     prometheus.Histogram
	runs           *prometheus.CounterVec
	failures       *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
}

// NewCollector registers the collector metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on one registry panics,
// as with any promauto metric.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Engine steps by outcome",
		}, []string{"outcome"}),
		placed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_placed_total",
			Help:      "Cells collapsed to a group",
		}),
		contradictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contradictions_total",
			Help:      "Cells left without candidates by propagation",
		}),
		candidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidates",
			Help:      "Candidate count of each collapsed cell",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs by result",
		}, []string{"result"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed runs by reason",
		}, []string{"reason"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one Run",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"result"}),
	}
}

// StepDone implements wfc.Observer.
func (c *Collector) StepDone(res wfc.StepResult) {
	c.steps.WithLabelValues(res.Outcome.String()).Inc()
	if res.Placed != nil {
		c.placed.Inc()
		c.candidates.Observe(float64(res.Candidates))
	}
	if res.Contradiction != nil {
		c.contradictions.Inc()
	}
}

// RunDone implements wfc.Observer. Failures are counted once per run, here,
// since a failed engine repeats its failure on every further Step.
func (c *Collector) RunDone(sum wfc.RunSummary) {
	result := "collapsed"
	if !sum.Collapsed {
		result = "failed"
	}
	c.runs.WithLabelValues(result).Inc()
	c.runDuration.WithLabelValues(result).Observe(sum.Duration.Seconds())
	if sum.Failure != nil {
		c.failures.WithLabelValues(sum.Failure.Reason.String()).Inc()
	}
}

var _ wfc.Observer = (*Collector)(nil)

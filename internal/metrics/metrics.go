// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the DDL pipeline.
//
// It exposes a narrow Backend interface focused on counters and timing data,
// and a global, pluggable backend that defaults to a no-op implementation, so
// metric calls are always safe even when no real backend is configured. The
// pattern mirrors the storage abstraction: the rest of the codebase depends
// only on this interface while concrete systems (Prometheus, Datadog) live in
// subpackages.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it.
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStep measures one pipeline step: latency plus a success/failure
// counter.
func RecordStep(job, step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"job":    job,
		"step":   step,
		"status": status,
	}

	backend.IncCounter("jsonddl_step_total", 1, lbls)
	backend.ObserveHistogram("jsonddl_step_duration_seconds", d.Seconds(), lbls)
}

// RecordDocument counts one processed document per routing outcome.
//
// Typical statuses mirror the processor routes plus runner-level outcomes:
//   - "success"
//   - "failure"
//   - "duplicate"
//   - "apply_error"
func RecordDocument(job, status string) {
	backend.IncCounter("jsonddl_docs_total", 1, Labels{
		"job":    job,
		"status": status,
	})
}

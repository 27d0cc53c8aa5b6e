// Package metrics defines the countdown's observability hooks. Recorder is the
// injection point; NoopRecorder is the default and PrometheusRecorder registers
// counters on a caller supplied registry.
package metrics

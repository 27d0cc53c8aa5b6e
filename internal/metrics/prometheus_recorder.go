package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	ticks       prom.Counter
	staleTicks  prom.Counter
	transitions *prom.CounterVec
	remaining   prom.Gauge
}

// NewPrometheusRecorder constructs and registers the countdown metrics on reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry, widgetID string) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	constLabels := prom.Labels{"widget_id": widgetID}
	pr := &PrometheusRecorder{
		ticks: prom.NewCounter(prom.CounterOpts{
			Namespace:   "pomodoro",
			Name:        "ticks_total",
			Help:        "Countdown ticks that decremented the remaining time",
			ConstLabels: constLabels,
		}),
		staleTicks: prom.NewCounter(prom.CounterOpts{
			Namespace:   "pomodoro",
			Name:        "stale_ticks_total",
			Help:        "Ticks that fired after a pause or reset and were discarded",
			ConstLabels: constLabels,
		}),
		transitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace:   "pomodoro",
			Name:        "transitions_total",
			Help:        "Countdown state transitions by name",
			ConstLabels: constLabels,
		}, []string{"transition"}),
		remaining: prom.NewGauge(prom.GaugeOpts{
			Namespace:   "pomodoro",
			Name:        "remaining_milliseconds",
			Help:        "Milliseconds left on the countdown",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(pr.ticks, pr.staleTicks, pr.transitions, pr.remaining)
	return pr
}

func (p *PrometheusRecorder) IncTick()      { p.ticks.Inc() }
func (p *PrometheusRecorder) IncStaleTick() { p.staleTicks.Inc() }

func (p *PrometheusRecorder) IncTransition(name string) {
	p.transitions.WithLabelValues(name).Inc()
}

func (p *PrometheusRecorder) SetRemaining(ms int64) {
	p.remaining.Set(float64(ms))
}

// WriteTextfile dumps the registry in the node-exporter textfile format
func WriteTextfile(reg *prom.Registry, path string) error {
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

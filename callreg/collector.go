package callreg

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes registry counts as Prometheus counters labelled by
// function identifier.
type Collector struct {
	reg   *Registry
	calls *prometheus.Desc
}

// NewCollector creates a collector for reg. A nil reg uses Default.
func NewCollector(reg *Registry) *Collector {
	if reg == nil {
		reg = Default()
	}
	return &Collector{
		reg: reg,
		calls: prometheus.NewDesc(
			"btmock_stub_calls_total",
			"Number of recorded stub invocations since the last reset.",
			[]string{"function"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.calls
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, n := range c.reg.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.calls, prometheus.CounterValue, float64(n), name)
	}
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters updated by the launcher.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FifosCreated   prometheus.Counter
	FifosSkipped   prometheus.Counter
	FifoFailures   prometheus.Counter
	NodesLaunched  prometheus.Counter
	LaunchFailures prometheus.Counter
	RingSize       prometheus.Gauge
}

// NewMetrics creates the launcher counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FifosCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringctl_fifos_created_total",
			Help: "Named pipes created by mkfifo.",
		}),
		FifosSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringctl_fifos_skipped_total",
			Help: "Existing named pipes reused without calling mkfifo.",
		}),
		FifoFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringctl_fifo_failures_total",
			Help: "mkfifo invocations that failed.",
		}),
		NodesLaunched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringctl_nodes_launched_total",
			Help: "Ring nodes started in a terminal.",
		}),
		LaunchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringctl_launch_failures_total",
			Help: "Ring nodes whose terminal failed to start.",
		}),
		RingSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ringctl_ring_size",
			Help: "Number of nodes in the last requested ring.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.FifosCreated, m.FifosSkipped, m.FifoFailures, m.NodesLaunched, m.LaunchFailures, m.RingSize)
	}
	return m
}

// FifoCreated records a successful mkfifo.
func (m *Metrics) FifoCreated() {
	if m != nil {
		m.FifosCreated.Inc()
	}
}

// FifoSkipped records a reused FIFO.
func (m *Metrics) FifoSkipped() {
	if m != nil {
		m.FifosSkipped.Inc()
	}
}

// FifoFailed records a failed mkfifo.
func (m *Metrics) FifoFailed() {
	if m != nil {
		m.FifoFailures.Inc()
	}
}

// NodeLaunched records a started terminal.
func (m *Metrics) NodeLaunched() {
	if m != nil {
		m.NodesLaunched.Inc()
	}
}

// LaunchFailed records a terminal that failed to start.
func (m *Metrics) LaunchFailed() {
	if m != nil {
		m.LaunchFailures.Inc()
	}
}

// SetRingSize records the requested node count.
func (m *Metrics) SetRingSize(n int) {
	if m != nil {
		m.RingSize.Set(float64(n))
	}
}

// WriteTextfile dumps everything gathered by g to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

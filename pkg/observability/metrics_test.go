package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.FifoCreated()
	m.FifoCreated()
	m.FifoFailed()
	m.FifoSkipped()
	m.NodeLaunched()
	m.LaunchFailed()
	m.SetRingSize(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FifosCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FifoFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FifosSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodesLaunched))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LaunchFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RingSize))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.FifoCreated()
		m.FifoFailed()
		m.FifoSkipped()
		m.NodeLaunched()
		m.LaunchFailed()
		m.SetRingSize(4)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.NodeLaunched()

	path := filepath.Join(t.TempDir(), "ringctl.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ringctl_nodes_launched_total 1")
}

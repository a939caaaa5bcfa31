package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/ringctl/pkg/launcher"
	"github.com/aretw0/ringctl/pkg/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlans() []launcher.NodePlan {
	return []launcher.NodePlan{
		{
			Link:    ring.Link{Name: 0, In: "/tmp/robot-fifo-0", Out: "/tmp/robot-fifo-1"},
			Command: `sh -c "run 0"`,
			Argv:    []string{"x-terminal-emulator", "-e", `sh -c "run 0"`},
		},
		{
			Link:    ring.Link{Name: 1, In: "/tmp/robot-fifo-1", Out: "/tmp/robot-fifo-0"},
			Command: `sh -c "run 1"`,
			Argv:    []string{"x-terminal-emulator", "-e", `sh -c "run 1"`},
		},
	}
}

func TestPlanMarkdown(t *testing.T) {
	md := PlanMarkdown(samplePlans())

	assert.Contains(t, md, "# Ring of 2 nodes")
	assert.Contains(t, md, "| 0 | `/tmp/robot-fifo-0` | `/tmp/robot-fifo-1` |")
	assert.Contains(t, md, "| 1 | `/tmp/robot-fifo-1` | `/tmp/robot-fifo-0` |")
	assert.Contains(t, md, `x-terminal-emulator -e 'sh -c "run 1"'`)
}

func TestRenderPlan_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlan(&buf, samplePlans(), false))
	assert.Equal(t, PlanMarkdown(samplePlans()), buf.String())
}

func TestRenderPlan_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlan(&buf, samplePlans(), true))
	assert.Contains(t, buf.String(), "robot-fifo-1")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, launcher.Report{
		Fifos:  launcher.FifoReport{Created: 2, Skipped: 1, Failed: 1},
		Launch: launcher.LaunchReport{Launched: 3},
	})
	out := buf.String()
	assert.Contains(t, out, "3 nodes launched")
	assert.Contains(t, out, "2 fifos created")
	assert.Contains(t, out, "1 reused")
	assert.Contains(t, out, "1 failures")
}

func TestShellJoin(t *testing.T) {
	assert.Equal(t, "a b", shellJoin([]string{"a", "b"}))
	assert.Equal(t, `a 'it'\''s'`, shellJoin([]string{"a", "it's"}))
	assert.Equal(t, "''", shellJoin([]string{""}))
}

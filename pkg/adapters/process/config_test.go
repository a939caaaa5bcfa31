package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/ringctl/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	t.Run("Missing File Yields Defaults", func(t *testing.T) {
		p, err := LoadProfile(filepath.Join(t.TempDir(), "ringctl.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultProfile(), p)
	})

	t.Run("Empty Path Yields Defaults", func(t *testing.T) {
		p, err := LoadProfile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultProfile(), p)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, "ringctl.yaml", `
terminal: [gnome-terminal, --]
fifo_prefix: /tmp/test-fifo-
loglevel: info
reuse_fifos: true
`)
		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"gnome-terminal", "--"}, p.Terminal)
		assert.Equal(t, "/tmp/test-fifo-", p.FifoPrefix)
		assert.Equal(t, "info", p.LogLevel)
		assert.True(t, p.ReuseFifos)
		// Untouched fields keep their defaults.
		assert.Equal(t, []string{"mkfifo"}, p.Mkfifo)
		assert.Equal(t, template.DefaultCommand, p.Command)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, "ringctl.json", `{"command": "echo {NAME}", "mkfifo": ["mkfifo", "-m", "0600"]}`)
		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "echo {NAME}", p.Command)
		assert.Equal(t, []string{"mkfifo", "-m", "0600"}, p.Mkfifo)
	})

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "ringctl.toml", `
terminal = "xterm -hold -e"
reuse_fifos = "true"
`)
		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"xterm", "-hold", "-e"}, p.Terminal)
		assert.True(t, p.ReuseFifos)
	})

	t.Run("Unknown Key Is Rejected", func(t *testing.T) {
		path := writeFile(t, "ringctl.yaml", "terminall: [xterm]\n")
		_, err := LoadProfile(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "terminall")
	})

	t.Run("Broken YAML", func(t *testing.T) {
		path := writeFile(t, "ringctl.yaml", "terminal: [xterm\n")
		_, err := LoadProfile(path)
		assert.Error(t, err)
	})
}

func TestProfile_ApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvTerminal:   "konsole -e",
		EnvFifoPrefix: "/run/ring-",
		EnvReuseFifos: "1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	p := DefaultProfile()
	require.NoError(t, p.ApplyEnv(lookup))
	assert.Equal(t, []string{"konsole", "-e"}, p.Terminal)
	assert.Equal(t, "/run/ring-", p.FifoPrefix)
	assert.True(t, p.ReuseFifos)
	assert.Equal(t, DefaultLogLevel, p.LogLevel)

	env[EnvReuseFifos] = "maybe"
	assert.Error(t, p.ApplyEnv(lookup))
}

func TestProfile_Validate(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())

	p := DefaultProfile()
	p.Terminal = nil
	assert.Error(t, p.Validate())

	p = DefaultProfile()
	p.Command = "run {PORT}"
	assert.ErrorIs(t, p.Validate(), template.ErrUnknownPlaceholder)

	p = DefaultProfile()
	p.FifoPrefix = ""
	assert.Error(t, p.Validate())
}

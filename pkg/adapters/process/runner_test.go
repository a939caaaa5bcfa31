package process

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/ringctl/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunAndEcho(t *testing.T) {
	testutils.RequirePOSIX(t)

	var echo, stderr bytes.Buffer
	runner := NewRunner(WithEcho(&echo), WithStderr(&stderr))

	t.Run("Echoes And Captures Stdout", func(t *testing.T) {
		echo.Reset()
		out, err := runner.RunAndEcho(context.Background(), []string{"sh", "-c", "echo hello"})
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out)
		assert.Equal(t, "sh -c echo hello\n", echo.String())
	})

	t.Run("Passes Stderr Through", func(t *testing.T) {
		stderr.Reset()
		out, err := runner.RunAndEcho(context.Background(), []string{"sh", "-c", "echo oops >&2; echo fine"})
		require.NoError(t, err)
		assert.Equal(t, "fine\n", out)
		assert.Equal(t, "oops\n", stderr.String())
	})

	t.Run("Reports Exit Failure", func(t *testing.T) {
		out, err := runner.RunAndEcho(context.Background(), []string{"sh", "-c", "echo partial; exit 3"})
		assert.Error(t, err)
		assert.Equal(t, "partial\n", out)
	})

	t.Run("Reports Missing Executable", func(t *testing.T) {
		_, err := runner.RunAndEcho(context.Background(), []string{"ringctl-does-not-exist"})
		assert.Error(t, err)
	})

	t.Run("Rejects Empty Command", func(t *testing.T) {
		_, err := runner.RunAndEcho(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestRunner_RunLine(t *testing.T) {
	testutils.RequirePOSIX(t)

	var echo bytes.Buffer
	runner := NewRunner(WithEcho(&echo), WithStderr(&bytes.Buffer{}))

	out, err := runner.RunLine(context.Background(), "  echo   a\tb  ")
	require.NoError(t, err)
	assert.Equal(t, "a b\n", out)
	assert.Equal(t, "echo a b\n", echo.String())
}

func TestRunner_Mkfifo(t *testing.T) {
	testutils.RequirePOSIX(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "robot-fifo-0")
	runner := NewRunner(WithEcho(nil), WithStderr(&bytes.Buffer{}))

	_, err := runner.RunAndEcho(context.Background(), []string{"mkfifo", path})
	require.NoError(t, err)

	testutils.RequireFifo(t, path)

	// Second creation fails the same way mkfifo does on the shell.
	_, err = runner.RunAndEcho(context.Background(), []string{"mkfifo", path})
	assert.Error(t, err)
}

func TestRunner_Spawn(t *testing.T) {
	testutils.RequirePOSIX(t)

	t.Run("Does Not Wait For Child", func(t *testing.T) {
		var echo bytes.Buffer
		runner := NewRunner(WithEcho(&echo), WithStdout(&testutils.SafeBuffer{}), WithStderr(&testutils.SafeBuffer{}))

		start := time.Now()
		err := runner.Spawn(context.Background(), []string{"sleep", "2"})
		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, "sleep 2\n", echo.String())
	})

	t.Run("Child Runs Detached", func(t *testing.T) {
		marker := filepath.Join(t.TempDir(), "spawned")
		runner := NewRunner(WithEcho(nil), WithStdout(&testutils.SafeBuffer{}), WithStderr(&testutils.SafeBuffer{}))

		require.NoError(t, runner.Spawn(context.Background(), []string{"touch", marker}))
		testutils.WaitForFile(t, marker)
	})

	t.Run("Reports Start Failure", func(t *testing.T) {
		runner := NewRunner(WithEcho(nil))
		err := runner.Spawn(context.Background(), []string{"ringctl-no-such-terminal", "-e", "true"})
		assert.Error(t, err)
	})

	t.Run("Refuses After Cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var echo bytes.Buffer
		runner := NewRunner(WithEcho(&echo))
		err := runner.Spawn(ctx, []string{"true"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, echo.String())
	})
}

package testutils

import (
	"bytes"
	"os"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequirePOSIX skips tests that need named pipes or a POSIX shell.
func RequirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX host")
	}
}

// RequireFifo fails the test unless path exists and is a named pipe.
func RequireFifo(t *testing.T, path string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "stat %s", path)
	require.True(t, info.Mode()&os.ModeNamedPipe != 0, "%s is not a fifo (mode %s)", path, info.Mode())
}

// WaitForFile waits until path exists. Spawned processes run detached, so
// their side effects show up some time after Spawn returns.
func WaitForFile(t *testing.T, path string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "waiting for %s", path)
}

// SafeBuffer is a bytes.Buffer safe for concurrent writers, such as the
// stdio copiers of detached children.
type SafeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *SafeBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

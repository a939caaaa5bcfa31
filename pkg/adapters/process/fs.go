package process

import (
	"io/fs"
	"os"

	"github.com/aretw0/ringctl/pkg/ports"
)

var _ ports.FileSystem = HostFS{}

// HostFS implements ports.FileSystem on the real filesystem.
type HostFS struct{}

// Stat does not follow a trailing symlink, so a link is never mistaken for a FIFO.
func (HostFS) Stat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (HostFS) Remove(path string) error {
	return os.Remove(path)
}

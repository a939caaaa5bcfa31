package ports

import (
	"context"
	"io/fs"
)

// CommandRunner executes host commands for the launcher.
type CommandRunner interface {
	// RunAndEcho runs argv to completion and returns its captured stdout.
	// Stderr is passed through, never captured.
	RunAndEcho(ctx context.Context, argv []string) (string, error)

	// Spawn starts argv and returns without waiting for it to exit.
	Spawn(ctx context.Context, argv []string) error
}

// FileSystem is the slice of the host filesystem the launcher inspects.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Remove(path string) error
}

package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aretw0/ringctl/pkg/ports"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner executes host commands on behalf of the launcher.
// Every command line is echoed before it runs so the operator can follow along.
type Runner struct {
	echo   io.Writer
	stdout io.Writer
	stderr io.Writer
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithEcho sets where command lines are traced. Nil disables the trace.
func WithEcho(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.echo = w
	}
}

// WithStdout sets the stdout inherited by spawned processes.
func WithStdout(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr sets where the stderr of every command is passed through.
func WithStderr(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stderr = w
	}
}

// NewRunner creates a Runner wired to the current process stdio.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		echo:   os.Stdout,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAndEcho runs argv to completion and returns its stdout as text.
// Stderr is not captured; it goes straight to the runner's stderr.
func (r *Runner) RunAndEcho(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}
	r.trace(argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%s: %w", argv[0], err)
	}
	return stdout.String(), nil
}

// RunLine splits line on whitespace and runs it like RunAndEcho.
// Quoting is not interpreted.
func (r *Runner) RunLine(ctx context.Context, line string) (string, error) {
	return r.RunAndEcho(ctx, strings.Fields(line))
}

// Spawn starts argv without waiting for it. The child inherits the runner's
// stdio and is detached from ringctl's process group; no handle is returned.
func (r *Runner) Spawn(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.trace(argv)

	// Not CommandContext: cancelling ringctl must not kill a launched node.
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	go func() {
		// Reap the child so it does not linger as a zombie while we keep running.
		_ = cmd.Wait()
	}()
	return nil
}

func (r *Runner) trace(argv []string) {
	if r.echo == nil {
		return
	}
	fmt.Fprintln(r.echo, strings.Join(argv, " "))
}

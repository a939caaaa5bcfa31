package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/aretw0/ringctl/pkg/ports"
)

var _ ports.CommandRunner = (*Runner)(nil)

// CallKind distinguishes captured runs from detached spawns.
type CallKind int

const (
	CallRun CallKind = iota
	CallSpawn
)

func (k CallKind) String() string {
	if k == CallSpawn {
		return "spawn"
	}
	return "run"
}

// Call is one command issued through a Runner.
type Call struct {
	Kind CallKind
	Argv []string
}

// Runner implements ports.CommandRunner without touching the host.
// It records every call, which makes it the backend for dry runs.
// Safe for concurrent use.
type Runner struct {
	mu    sync.Mutex
	calls []Call

	// FailRun, when set, decides the error returned for a captured run.
	FailRun func(argv []string) error
	// FailSpawn, when set, decides the error returned for a spawn.
	FailSpawn func(argv []string) error
}

// NewRunner creates an empty recording runner.
func NewRunner() *Runner {
	return &Runner{}
}

// RunAndEcho records argv and returns an empty stdout.
func (r *Runner) RunAndEcho(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}
	r.record(CallRun, argv)
	if r.FailRun != nil {
		return "", r.FailRun(argv)
	}
	return "", nil
}

// Spawn records argv.
func (r *Runner) Spawn(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.record(CallSpawn, argv)
	if r.FailSpawn != nil {
		return r.FailSpawn(argv)
	}
	return nil
}

func (r *Runner) record(kind CallKind, argv []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Kind: kind, Argv: slices.Clone(argv)})
}

// Calls returns a copy of everything recorded so far, in order.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	for i, c := range r.calls {
		out[i] = Call{Kind: c.Kind, Argv: slices.Clone(c.Argv)}
	}
	return out
}

// CallsOf filters recorded calls by kind.
func (r *Runner) CallsOf(kind CallKind) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

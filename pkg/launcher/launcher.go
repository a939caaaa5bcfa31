package launcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/aretw0/ringctl/pkg/adapters/process"
	"github.com/aretw0/ringctl/pkg/observability"
	"github.com/aretw0/ringctl/pkg/ports"
	"github.com/aretw0/ringctl/pkg/ring"
	"github.com/aretw0/ringctl/pkg/template"
)

// Launcher creates ring FIFOs and starts one terminal per node.
type Launcher struct {
	runner  ports.CommandRunner
	fs      ports.FileSystem
	profile process.Profile
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithProfile sets the terminal, mkfifo and template configuration.
func WithProfile(p process.Profile) Option {
	return func(l *Launcher) {
		l.profile = p
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithMetrics enables run counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(l *Launcher) {
		l.metrics = m
	}
}

// WithFileSystem replaces the host filesystem used for existence checks and cleanup.
func WithFileSystem(fsys ports.FileSystem) Option {
	return func(l *Launcher) {
		l.fs = fsys
	}
}

// New creates a Launcher that issues its commands through runner.
func New(runner ports.CommandRunner, opts ...Option) *Launcher {
	l := &Launcher{
		runner:  runner,
		fs:      process.HostFS{},
		profile: process.DefaultProfile(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Profile returns the active configuration.
func (l *Launcher) Profile() process.Profile {
	return l.profile
}

// Request describes one ring launch.
type Request struct {
	Count int
	// Template overrides the profile command when non-empty.
	Template string
	// LogLevel overrides the profile log level when non-empty.
	LogLevel  string
	ExtraArgs []string
}

func (l *Launcher) resolve(req Request) Request {
	if req.Template == "" {
		req.Template = l.profile.Command
	}
	if req.LogLevel == "" {
		req.LogLevel = l.profile.LogLevel
	}
	return req
}

// FifoReport summarizes the FIFO creation phase.
type FifoReport struct {
	Created int
	Skipped int
	Failed  int
}

// LaunchReport summarizes the node launch phase.
type LaunchReport struct {
	Launched int
	Failed   int
}

// Report is the outcome of a full run.
type Report struct {
	Fifos  FifoReport
	Launch LaunchReport
}

// NodePlan is the fully rendered launch of one node.
type NodePlan struct {
	ring.Link
	Command string
	Argv    []string
}

// CreateFifos issues one mkfifo per node, in index order.
// A failing mkfifo is logged and the loop moves on to the next node.
func (l *Launcher) CreateFifos(ctx context.Context, count int) (FifoReport, error) {
	var rep FifoReport

	paths, err := ring.Paths(count, l.profile.FifoPrefix)
	if err != nil {
		return rep, err
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		if l.profile.ReuseFifos && l.isFifo(path) {
			l.logger.Info("reusing fifo", "path", path)
			l.metrics.FifoSkipped()
			rep.Skipped++
			continue
		}

		argv := append(slices.Clone(l.profile.Mkfifo), path)
		if _, err := l.runner.RunAndEcho(ctx, argv); err != nil {
			l.logger.Warn("fifo creation failed", "path", path, "error", err)
			l.metrics.FifoFailed()
			rep.Failed++
			continue
		}
		l.logger.Debug("fifo created", "path", path)
		l.metrics.FifoCreated()
		rep.Created++
	}
	return rep, nil
}

// Plan renders the launch of every node without running anything.
func (l *Launcher) Plan(count int, tmpl, loglevel string, extraArgs []string) ([]NodePlan, error) {
	links, err := ring.Build(count, l.profile.FifoPrefix)
	if err != nil {
		return nil, err
	}

	plans := make([]NodePlan, 0, len(links))
	for _, link := range links {
		command, err := template.Render(tmpl, template.NodeValues(loglevel, extraArgs, link))
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", link.Name, err)
		}
		plans = append(plans, NodePlan{
			Link:    link,
			Command: command,
			Argv:    append(slices.Clone(l.profile.Terminal), command),
		})
	}
	return plans, nil
}

// LaunchRing opens one terminal per node. The terminals are not waited on.
// A template error aborts at the node where it occurs; a failed launch does not.
func (l *Launcher) LaunchRing(ctx context.Context, count int, tmpl, loglevel string, extraArgs []string) (LaunchReport, error) {
	var rep LaunchReport

	links, err := ring.Build(count, l.profile.FifoPrefix)
	if err != nil {
		return rep, err
	}

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		command, err := template.Render(tmpl, template.NodeValues(loglevel, extraArgs, link))
		if err != nil {
			return rep, fmt.Errorf("node %d: %w", link.Name, err)
		}

		argv := append(slices.Clone(l.profile.Terminal), command)
		if err := l.runner.Spawn(ctx, argv); err != nil {
			l.logger.Warn("node launch failed", "node", link.Name, "error", err)
			l.metrics.LaunchFailed()
			rep.Failed++
			continue
		}
		l.logger.Debug("node launched", "node", link.Name, "in", link.In, "out", link.Out)
		l.metrics.NodeLaunched()
		rep.Launched++
	}
	return rep, nil
}

// Run creates the FIFOs and launches the ring. The node count and the
// template are checked before any command is issued.
func (l *Launcher) Run(ctx context.Context, req Request) (Report, error) {
	var rep Report
	req = l.resolve(req)

	if err := ring.ValidateCount(req.Count); err != nil {
		return rep, err
	}
	if err := template.Check(req.Template); err != nil {
		return rep, fmt.Errorf("command template: %w", err)
	}
	l.metrics.SetRingSize(req.Count)

	l.logger.Info("creating fifos", "count", req.Count, "prefix", l.profile.FifoPrefix)
	fifos, err := l.CreateFifos(ctx, req.Count)
	rep.Fifos = fifos
	if err != nil {
		return rep, err
	}

	l.logger.Info("launching ring", "count", req.Count, "loglevel", req.LogLevel)
	launch, err := l.LaunchRing(ctx, req.Count, req.Template, req.LogLevel, req.ExtraArgs)
	rep.Launch = launch
	if err != nil {
		return rep, err
	}

	l.logger.Info("ring launched",
		"fifos_created", fifos.Created,
		"fifos_skipped", fifos.Skipped,
		"fifo_failures", fifos.Failed,
		"nodes_launched", launch.Launched,
		"launch_failures", launch.Failed,
	)
	return rep, nil
}

// PlanRequest renders req the same way Run would launch it.
func (l *Launcher) PlanRequest(req Request) ([]NodePlan, error) {
	req = l.resolve(req)
	return l.Plan(req.Count, req.Template, req.LogLevel, req.ExtraArgs)
}

// Clean removes the named pipes of a ring of count nodes.
// Missing paths are ignored and non-FIFO paths are left alone.
func (l *Launcher) Clean(ctx context.Context, count int) (int, error) {
	paths, err := ring.Paths(count, l.profile.FifoPrefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		info, err := l.fs.Stat(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		if info.Mode()&fs.ModeNamedPipe == 0 {
			l.logger.Warn("not a fifo, leaving it", "path", path)
			continue
		}
		if err := l.fs.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		l.logger.Debug("fifo removed", "path", path)
		removed++
	}
	return removed, errors.Join(errs...)
}

func (l *Launcher) isFifo(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.Mode()&fs.ModeNamedPipe != 0
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ringctl/internal/presentation/graph"
	"github.com/aretw0/ringctl/internal/presentation/tui"
	"github.com/aretw0/ringctl/pkg/adapters/memory"
	"github.com/aretw0/ringctl/pkg/adapters/process"
	"github.com/aretw0/ringctl/pkg/launcher"
	"github.com/aretw0/ringctl/pkg/observability"
	"github.com/aretw0/ringctl/pkg/ports"
	"github.com/aretw0/ringctl/pkg/ring"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

// RunLaunch provisions the ring described by args.
// Subprocess failures are reported but never turn into an error here.
func RunLaunch(ctx context.Context, opts Options, args []string) error {
	la, err := ParseLaunchArgs(args)
	if err != nil {
		return err
	}
	profile, err := LoadProfile(opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	if opts.Banner {
		tui.PrintBanner(opts.stdout())
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	var runner ports.CommandRunner
	var recorder *memory.Runner
	if opts.DryRun {
		recorder = memory.NewRunner()
		runner = recorder
	} else {
		runner = process.NewRunner(
			process.WithEcho(opts.stdout()),
			process.WithStdout(opts.stdout()),
			process.WithStderr(opts.stderr()),
		)
	}

	l := launcher.New(runner,
		launcher.WithProfile(profile),
		launcher.WithLogger(logger),
		launcher.WithMetrics(metrics),
	)

	rep, err := l.Run(ctx, launcher.Request{
		Count:     la.Count,
		LogLevel:  la.LogLevel,
		ExtraArgs: la.ExtraArgs,
	})

	if recorder != nil {
		for _, c := range recorder.Calls() {
			fmt.Fprintf(opts.stdout(), "[dry-run] %s: %s\n", c.Kind, strings.Join(c.Argv, " "))
		}
	}
	if err != nil {
		if sig := interruptedBy(ctx); sig != nil {
			logger.Warn("launch interrupted", "signal", sig.String(),
				"fifos_created", rep.Fifos.Created, "nodes_launched", rep.Launch.Launched)
		}
		return err
	}

	if opts.MetricsFile != "" {
		if werr := observability.WriteTextfile(opts.MetricsFile, reg); werr != nil {
			logger.Warn("failed to write metrics", "path", opts.MetricsFile, "error", werr)
		}
	}
	if !opts.DryRun {
		tui.PrintSummary(opts.stdout(), rep)
	}
	return nil
}

// RunPlan prints the ring that RunLaunch would provision.
func RunPlan(opts Options, args []string) error {
	la, err := ParseLaunchArgs(args)
	if err != nil {
		return err
	}
	profile, err := LoadProfile(opts)
	if err != nil {
		return err
	}

	l := launcher.New(memory.NewRunner(), launcher.WithProfile(profile))
	plans, err := l.PlanRequest(launcher.Request{
		Count:     la.Count,
		LogLevel:  la.LogLevel,
		ExtraArgs: la.ExtraArgs,
	})
	if err != nil {
		return err
	}

	switch opts.PlanFormat {
	case "", "markdown":
		return tui.RenderPlan(opts.stdout(), plans, isTerminal(opts.stdout()))
	case "mermaid":
		links := make([]ring.Link, len(plans))
		for i, p := range plans {
			links[i] = p.Link
		}
		_, err := io.WriteString(opts.stdout(), graph.GenerateMermaid(links))
		return err
	default:
		return fmt.Errorf("unknown plan format %q (supported: markdown, mermaid)", opts.PlanFormat)
	}
}

// RunClean removes the FIFOs of a ring of the given size.
func RunClean(ctx context.Context, opts Options, args []string) error {
	la, err := ParseLaunchArgs(args)
	if err != nil {
		return err
	}
	profile, err := LoadProfile(opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	l := launcher.New(process.NewRunner(), launcher.WithProfile(profile), launcher.WithLogger(logger))
	removed, err := l.Clean(ctx, la.Count)
	fmt.Fprintf(opts.stdout(), "removed %d fifos\n", removed)
	return err
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/ringctl/internal/logging"
	"github.com/aretw0/ringctl/pkg/adapters/process"
	"github.com/joho/godotenv"
)

// Options carries everything the commands read from flags.
type Options struct {
	ConfigPath  string
	EnvFile     string
	Terminal    string
	FifoPrefix  string
	Template    string
	ReuseFifos  bool
	DryRun      bool
	PlanFormat  string
	MetricsFile string
	LogLevel    string
	Banner      bool

	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o *Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

// LoadProfile resolves the launch profile: flags over RINGCTL_* environment
// (seeded from the env file) over the profile file over built-in defaults.
func LoadProfile(opts Options) (process.Profile, error) {
	if opts.EnvFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return process.Profile{}, fmt.Errorf("failed to load %s: %w", opts.EnvFile, err)
		}
	}

	p, err := process.LoadProfile(opts.ConfigPath)
	if err != nil {
		return p, err
	}
	if err := p.ApplyEnv(os.LookupEnv); err != nil {
		return p, err
	}

	if terminal := strings.Fields(opts.Terminal); len(terminal) > 0 {
		p.Terminal = terminal
	}
	if opts.FifoPrefix != "" {
		p.FifoPrefix = opts.FifoPrefix
	}
	if opts.Template != "" {
		p.Command = opts.Template
	}
	if opts.ReuseFifos {
		p.ReuseFifos = true
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func newLogger(opts Options) (*slog.Logger, error) {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(opts.stderr(), level), nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/ringctl/internal/cli"
	"github.com/spf13/cobra"
)

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:   "ringctl [flags] COUNT [LOGLEVEL] [CARGOARGS...]",
	Short: "Generate a ring of named pipes and launch one node per pipe",
	Long: `ringctl creates COUNT named pipes (FIFOs) and opens one terminal per node.
Node i reads from fifo i and writes to fifo (i+1) mod COUNT, closing the ring.

LOGLEVEL is handed to the nodes through RUST_LOG (default "trace").
Every argument after LOGLEVEL is forwarded to cargo.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()
		return cli.RunLaunch(sc, opts, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Everything after COUNT belongs to the nodes, including things that look like flags.
	rootCmd.Flags().SetInterspersed(false)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "ringctl.yaml", "Launch profile (yaml, json or toml)")
	pf.StringVar(&opts.EnvFile, "env-file", ".env", "Dotenv file seeding RINGCTL_* variables")
	pf.StringVar(&opts.Terminal, "terminal", "", "Terminal command prefix, split on whitespace (e.g. \"xterm -e\")")
	pf.StringVar(&opts.FifoPrefix, "fifo-prefix", "", "Path prefix of the ring FIFOs")
	pf.StringVar(&opts.Template, "template", "", "Node command template ({LOGLVL} {ARGS} {IN} {OUT} {NAME})")
	pf.BoolVar(&opts.ReuseFifos, "reuse-fifos", false, "Skip mkfifo for FIFOs that already exist")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "ringctl's own log level")

	rootCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the commands without running them")
	rootCmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write launch counters to this Prometheus textfile")
	rootCmd.Flags().BoolVar(&opts.Banner, "banner", false, "Print the banner before launching")
}

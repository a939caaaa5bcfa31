package main

import (
	"github.com/aretw0/ringctl/internal/cli"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan COUNT [LOGLEVEL] [CARGOARGS...]",
	Short: "Show the ring wiring and node commands without running anything",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPlan(opts, args)
	},
}

func init() {
	planCmd.Flags().SetInterspersed(false)
	planCmd.Flags().StringVar(&opts.PlanFormat, "format", "markdown", "Output format: markdown or mermaid")
	rootCmd.AddCommand(planCmd)
}

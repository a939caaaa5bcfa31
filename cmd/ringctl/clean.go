package main

import (
	"github.com/aretw0/ringctl/internal/cli"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean COUNT",
	Short: "Remove the FIFOs of a ring",
	Long:  `Removes the named pipes a launch of COUNT nodes created. Paths that are not FIFOs are left alone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()
		return cli.RunClean(sc, opts, args)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

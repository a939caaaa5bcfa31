package main

import (
	"fmt"

	"github.com/aretw0/ringctl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ringctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ringctl version %s\n", ringctl.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

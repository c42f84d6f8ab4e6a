package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Parametric steel building and solar canopy generator")
		fmt.Fprintln(out, "Load combinations after EN 1990 (Eurocode 0)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

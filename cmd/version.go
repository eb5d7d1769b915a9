package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofdn/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofdn",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Footing Bearing Pressure and Pier Embedment Tool")
		if version.BuildTime != "unknown" {
			fmt.Fprintf(out, "Built: %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

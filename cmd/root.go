package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/gofdn/internal/config"
	"github.com/alexiusacademia/gofdn/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg holds the settings loaded before every command
	cfg = config.Default()

	// logger writes progress messages to stderr when --verbose is set
	logger = log.New(io.Discard, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "gofdn",
	Short: "Footing Bearing Pressure and Pier Embedment Tool",
	Long: `gofdn - Go Foundation Calculator

A CLI tool for the check of shallow footings and pole foundations
in US customary units (ft, in, kips, psf).

This tool helps structural engineers perform:
  - Soil bearing pressure under eccentrically loaded spread footings
  - Partial contact (uplift) check with effective bearing dimension
  - Governing bearing pressure over ASCE 7 allowable stress combinations
  - Embedment depth of laterally loaded piers (constrained and non-constrained)

Settings are read from gofdn.env (or --config) and GOFDN_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger = log.New(io.Discard, "", 0)
		if verbose {
			logger = log.New(cmd.ErrOrStderr(), "gofdn: ", log.Ltime)
		}
		if cfg.Source != "" {
			logger.Printf("loaded settings from %s", cfg.Source)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gofdn v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Foundation Calculator                                ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for soil bearing pressure under spread footings")
		fmt.Fprintln(out, "  and embedment depth of laterally loaded piers.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Trapezoidal and triangular bearing pressure distributions")
		fmt.Fprintln(out, "    • Governing pressure over ASCE 7-16 ASD load combinations")
		fmt.Fprintln(out, "    • Pier embedment depth by bisection or fixed-step scan")
		fmt.Fprintln(out, "    • Calculation tables, diagrams, XLSX, DXF and PDF reports")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gofdn --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings env file (default gofdn.env when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/factory"
	"github.com/alexiusacademia/gosteel/internal/logging"
	"github.com/alexiusacademia/gosteel/internal/version"
)

var (
	// Global flags
	verbose    bool
	logFile    string
	jsonOutput bool

	appLog   *logging.Log
	registry *factory.Registry
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Parametric steel building and solar canopy generator",
	Long: `gosteel - Go Steel Building Estimator

A CLI tool that generates the structural model of light steel buildings
from a handful of dimensions and parameters.

Supported building types:
  - Single-pitch (monopente) sloped buildings: posts, rafters, purlins, rails
  - Flat photovoltaic parking canopies (ombrières): posts, beams, purlins,
    bracing, solar panels, mounting rails, inverters and cable trays

Each build reports member counts, surfaces, steel masses and, for canopies,
solar yield, parking capacity and climatic loads (Eurocode combinations).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appLog == nil {
			return nil
		}
		return appLog.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gosteel v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Steel Building Estimator                             ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Generates the structural model of light steel buildings")
		fmt.Fprintln(out, "  and photovoltaic parking canopies.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Sloped buildings and solar canopies from dimensions")
		fmt.Fprintln(out, "    • Built-in templates and YAML configuration files")
		fmt.Fprintln(out, "    • Solar layout optimisation and electrical sizing")
		fmt.Fprintln(out, "    • Plan and frame drawings (PNG, SVG, PDF)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gosteel --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every build stage")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append the log to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// setup builds the logger and the engine registry shared by all commands.
func setup(cmd *cobra.Command) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	b := logging.New().FromWriter(cmd.ErrOrStderr()).WithLevel(level).Console(true)
	if logFile != "" {
		b = b.FromPath(logFile)
	}
	log, err := b.Make()
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	appLog = log
	registry = factory.NewDefault(log.Logger)
	return nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/eurocode"
)

var (
	// Characteristic actions (kN/m²)
	loadPermanent float64
	loadSnow      float64
	loadWind      float64
	loadImposed   float64

	// Options
	loadsShowAll bool
	loadsService bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate the governing design load using EN 1990 combinations",
	Long: `Calculate the design load on a roof or panel field from characteristic
actions using the EN 1990 combinations applied by the canopy strategy.

Actions (kN/m²):
  G - permanent (self weight, panels)
  S - snow
  W - wind pressure, negative for uplift
  Q - maintenance imposed load

Examples:
  gosteel loads --permanent 0.25 --snow 0.45 --wind 0.6
  gosteel loads -g 0.25 -s 0.45 -w -0.8 --all
  gosteel loads -g 0.25 -s 0.45 --sls`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadPermanent, "permanent", "g", 0, "Permanent action G (kN/m²)")
	loadsCmd.Flags().Float64VarP(&loadSnow, "snow", "s", 0, "Snow action S (kN/m²)")
	loadsCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind action W (kN/m²)")
	loadsCmd.Flags().Float64VarP(&loadImposed, "imposed", "q", 0, "Imposed action Q (kN/m²)")

	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVar(&loadsService, "sls", false, "Use serviceability instead of ultimate combinations")
}

func runLoads(cmd *cobra.Command, args []string) error {
	loads := eurocode.Loads{
		Permanent: loadPermanent,
		Snow:      loadSnow,
		Wind:      loadWind,
		Imposed:   loadImposed,
	}
	if loads == (eurocode.Loads{}) {
		return errors.New("provide at least one characteristic action (see 'gosteel loads --help')")
	}

	combinations, state := eurocode.UltimateCombinations, "ULS"
	if loadsService {
		combinations, state = eurocode.ServiceCombinations, "SLS"
	}
	q, governing := eurocode.GoverningCombination(loads, combinations)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"limit_state": state,
			"design_load": q,
			"combination": governing.ID,
			"description": governing.Description,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "          EN 1990 DESIGN LOAD (%s)\n", state)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)

	w := section(out, "CHARACTERISTIC ACTIONS (kN/m²):")
	fmt.Fprintf(w, "  Permanent (G):\t%.3f\n", loads.Permanent)
	fmt.Fprintf(w, "  Snow (S):\t%.3f\n", loads.Snow)
	fmt.Fprintf(w, "  Wind (W):\t%.3f\n", loads.Wind)
	fmt.Fprintf(w, "  Imposed (Q):\t%.3f\n", loads.Imposed)
	w.Flush()
	fmt.Fprintln(out)

	if loadsShowAll {
		w = section(out, "LOAD COMBINATIONS:")
		fmt.Fprintf(w, "  #\tCombination\tq (kN/m²)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")
		for _, c := range combinations {
			marker := ""
			if c.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.3f%s\n", c.ID, c.Description, c.Factored(loads), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, lightRule)
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  DESIGN LOAD q = %.3f kN/m²  \n", q)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/solar"
)

var (
	layoutLength      float64
	layoutWidth       float64
	layoutPanel       string
	layoutMounting    string
	layoutOrientation string
	layoutObjective   string
	layoutRecommended bool
	layoutMarginLong  float64
	layoutMarginTrans float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Find the best solar panel grid for an area",
	Long: `Search every orientation, row and column count for the panel grid that
best fills a rectangular area under the mounting system constraints.

Objectives:
  quantity  - most panels
  coverage  - largest covered share of the area
  balanced  - panels × (1 + coverage/200)

Examples:
  gosteel layout --length 50000 --width 20000
  gosteel layout -l 30000 -w 10000 --panel generic-400 --objective coverage --recommended`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	f := layoutCmd.Flags()
	f.Float64VarP(&layoutLength, "length", "l", 0, "Available length (mm) [required]")
	f.Float64VarP(&layoutWidth, "width", "w", 0, "Available width (mm) [required]")
	f.StringVar(&layoutPanel, "panel", solar.DefaultPanel, "Panel catalogue key")
	f.StringVar(&layoutMounting, "mounting", solar.DefaultMountingSystem, "Mounting system catalogue key")
	f.StringVar(&layoutOrientation, "orientation", "", "Force an orientation (landscape, portrait)")
	f.StringVar(&layoutObjective, "objective", string(solar.MaximizeQuantity), "Ranking objective")
	f.BoolVar(&layoutRecommended, "recommended", false, "Use recommended instead of minimum spacing")
	f.Float64Var(&layoutMarginLong, "margin-long", -1, "Longitudinal edge margin (mm), default from the mounting system")
	f.Float64Var(&layoutMarginTrans, "margin-trans", -1, "Transverse edge margin (mm), default from the mounting system")

	layoutCmd.MarkFlagRequired("length")
	layoutCmd.MarkFlagRequired("width")
}

func runLayout(cmd *cobra.Command, args []string) error {
	panel, err := solar.LookupPanel(layoutPanel)
	if err != nil {
		return err
	}
	mounting, err := solar.LookupMountingSystem(layoutMounting)
	if err != nil {
		return err
	}

	opts := solar.LayoutOptions{
		Orientation:    solar.Orientation(layoutOrientation),
		UseRecommended: layoutRecommended,
		Objective:      solar.Objective(layoutObjective),
	}
	if opts.Orientation != "" && !opts.Orientation.Valid() {
		return fmt.Errorf("unknown orientation %q", layoutOrientation)
	}
	switch opts.Objective {
	case solar.MaximizeQuantity, solar.MaximizeCoverage, solar.Balanced:
	default:
		return fmt.Errorf("unknown objective %q", layoutObjective)
	}
	if layoutMarginLong >= 0 || layoutMarginTrans >= 0 {
		m := solar.Margins{Longitudinal: mounting.LongitudinalMargin, Transverse: mounting.TransverseMargin}
		if layoutMarginLong >= 0 {
			m.Longitudinal = layoutMarginLong
		}
		if layoutMarginTrans >= 0 {
			m.Transverse = layoutMarginTrans
		}
		opts.Margins = &m
	}

	res := solar.OptimalLayout(layoutLength, layoutWidth, panel, mounting, opts)
	appLog.Logger.Debug().
		Int("panels", res.TotalPanels).
		Str("orientation", string(res.Orientation)).
		Msg("layout optimised")
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out, "          SOLAR PANEL LAYOUT")
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)

	w := section(out, "INPUT DATA:")
	fmt.Fprintf(w, "  Area:\t%.0f × %.0f mm\n", layoutLength, layoutWidth)
	fmt.Fprintf(w, "  Panel:\t%s %s (%.0f Wc, %.0f × %.0f mm)\n", panel.Manufacturer, panel.Model, panel.PowerWc, panel.Length, panel.Width)
	fmt.Fprintf(w, "  Mounting:\t%s\n", mounting.Name)
	fmt.Fprintf(w, "  Objective:\t%s\n", opts.Objective)
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "RESULT:")
	fmt.Fprintf(w, "  Orientation:\t%s\n", res.Orientation)
	fmt.Fprintf(w, "  Grid:\t%d rows × %d columns\n", res.Rows, res.Columns)
	fmt.Fprintf(w, "  Panels:\t%d\n", res.TotalPanels)
	fmt.Fprintf(w, "  Peak power:\t%.2f kWc\n", res.PowerKwc)
	fmt.Fprintf(w, "  Used area:\t%.0f × %.0f mm\n", res.UsedLength, res.UsedWidth)
	fmt.Fprintf(w, "  Margins (L / R / F / B):\t%.0f / %.0f / %.0f / %.0f mm\n", res.MarginLeft, res.MarginRight, res.MarginFront, res.MarginBack)
	fmt.Fprintf(w, "  Coverage:\t%.1f %%\n", res.Coverage)
	w.Flush()
	fmt.Fprintln(out)

	for _, msg := range res.Warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", msg)
	}
	return nil
}

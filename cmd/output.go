package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/factory"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

var (
	// Drawing flags shared by the build commands
	showPlan   bool
	planImage  string
	frameImage string
)

func addDrawFlags(c *cobra.Command) {
	c.Flags().BoolVar(&showPlan, "plan", false, "Print an ASCII plan view")
	c.Flags().StringVarP(&planImage, "output", "o", "", "Export the plan view to an image (.png, .svg, .pdf)")
	c.Flags().StringVar(&frameImage, "frame", "", "Export the portal frame elevation to an image (sloped only)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func section(w io.Writer, title string) *tabwriter.Writer {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, lightRule)
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// render prints rep as text or JSON and exports the requested drawings.
func render(cmd *cobra.Command, rep *factory.Report) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(out, rep); err != nil {
			return err
		}
	} else {
		writeReport(out, rep)
		if showPlan {
			fmt.Fprint(out, diagram.DrawPlanView(rep.Building))
			fmt.Fprintln(out)
		}
	}
	return exportDrawings(out, rep.Building)
}

func exportDrawings(out io.Writer, b *building.Building) error {
	exports := []struct {
		file   string
		kind   string
		export func(*building.Building, string) error
	}{
		{planImage, "plan", diagram.ExportPlan},
		{frameImage, "frame", diagram.ExportFrameElevation},
	}
	for _, e := range exports {
		if e.file == "" {
			continue
		}
		if err := e.export(b, e.file); err != nil {
			return fmt.Errorf("exporting %s: %w", e.kind, err)
		}
		path := diagram.OutputPath(e.file)
		appLog.Logger.Info().Str("file", path).Str("drawing", e.kind).Msg("drawing exported")
		if !jsonOutput {
			fmt.Fprintf(out, "  %s drawing saved to: %s\n", e.kind, path)
		}
	}
	return nil
}

func writeReport(out io.Writer, rep *factory.Report) {
	b := rep.Building

	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "     %s BUILDING: %s\n", strings.ToUpper(string(b.Type)), b.Name)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox(b.Name, diagram.BuildingSummary(b)))
	fmt.Fprintln(out)

	if rep.Frame != nil {
		writeFrame(out, rep.Frame)
	}
	if rep.Solar != nil {
		writeSolar(out, rep.Solar)
	}
	writeValidation(out, rep)
}

func writeFrame(out io.Writer, f *strategy.FrameCalculations) {
	w := section(out, "FRAME:")
	fmt.Fprintf(w, "  Strategy:\t%s\n", f.Strategy)
	fmt.Fprintf(w, "  Post stations:\t%d (%d posts)\n", f.PostCount, f.PostElements)
	counts := []struct {
		label string
		n     int
	}{
		{"Rafters", f.RafterCount},
		{"Beams", f.BeamCount},
		{"Purlins", f.PurlinCount},
		{"Rails", f.RailCount},
		{"Bracing", f.BracingCount},
	}
	for _, c := range counts {
		if c.n > 0 {
			fmt.Fprintf(w, "  %s:\t%d\n", c.label, c.n)
		}
	}
	fmt.Fprintf(w, "  Wall height:\t%.0f mm\n", f.HeightWall)
	fmt.Fprintf(w, "  Ridge height:\t%.0f mm\n", f.HeightRidge)
	if f.RafterLength > 0 {
		fmt.Fprintf(w, "  Rafter length:\t%.1f mm\n", f.RafterLength)
	}
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "SURFACES:")
	fmt.Fprintf(w, "  Footprint:\t%.2f m²\n", f.FootprintArea)
	fmt.Fprintf(w, "  Roofing (gross / net):\t%.2f / %.2f m²\n", f.RoofingAreaGross, f.RoofingAreaNet)
	if f.CladdingAreaGross > 0 {
		fmt.Fprintf(w, "  Cladding (gross / net):\t%.2f / %.2f m²\n", f.CladdingAreaGross, f.CladdingAreaNet)
	}
	if f.OpeningArea > 0 {
		fmt.Fprintf(w, "  Openings:\t%.2f m²\n", f.OpeningArea)
	}
	w.Flush()
	fmt.Fprintln(out)

	m := f.Masses
	w = section(out, "STEEL:")
	masses := []struct {
		label string
		kg    float64
	}{
		{"Posts", m.Posts},
		{"Rafters", m.Rafters},
		{"Beams", m.Beams},
		{"Purlins", m.Purlins},
		{"Rails", m.Rails},
		{"Bracing", m.Bracing},
	}
	for _, e := range masses {
		if e.kg > 0 {
			fmt.Fprintf(w, "  %s:\t%.1f kg\n", e.label, e.kg)
		}
	}
	fmt.Fprintf(w, "  Total:\t%.1f kg\n", m.Total)
	fmt.Fprintf(w, "  Steel ratio:\t%.1f kg/m²\n", f.SteelRatio)
	w.Flush()
	fmt.Fprintln(out)
}

func writeSolar(out io.Writer, s *strategy.OmbriereCalculations) {
	w := section(out, "SOLAR:")
	fmt.Fprintf(w, "  Panels:\t%d × %s (%s)\n", s.TotalPanels, s.Array.Panel.Model, s.Array.Orientation)
	fmt.Fprintf(w, "  Grid:\t%d rows × %d columns\n", s.Array.Rows, s.Array.Columns)
	fmt.Fprintf(w, "  Peak power:\t%.2f kWc\n", s.TotalPowerKwc)
	fmt.Fprintf(w, "  Annual yield:\t%.0f kWh\n", s.AnnualYieldKwh)
	fmt.Fprintf(w, "  Specific yield:\t%.0f kWh/kWc\n", s.SpecificYield)
	fmt.Fprintf(w, "  Performance ratio:\t%.2f\n", s.PerformanceRatio)
	fmt.Fprintf(w, "  CO₂ offset:\t%.0f kg/year\n", s.Co2OffsetKg)
	fmt.Fprintf(w, "  Coverage:\t%.1f %%\n", s.CoverageRatio)
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "PARKING AND LOADS:")
	fmt.Fprintf(w, "  Parking spaces:\t%d (%.1f m²)\n", s.NumberOfParkingSpaces, s.ParkingArea)
	fmt.Fprintf(w, "  Permanent load:\t%.3f kN/m²\n", s.PermanentLoad)
	fmt.Fprintf(w, "  Snow load:\t%.3f kN/m² (μ = %.2f)\n", s.SnowLoad, s.SnowFactor)
	fmt.Fprintf(w, "  Wind load:\t%.3f kN/m² (c = %.2f)\n", s.WindLoad, s.WindFactor)
	fmt.Fprintf(w, "  Design load:\t%.3f kN/m² (%s)\n", s.DesignLoad, s.GoverningCombination)
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "ELECTRICAL:")
	fmt.Fprintf(w, "  Panels per string:\t%d\n", s.PanelsPerString)
	fmt.Fprintf(w, "  Strings:\t%d\n", s.StringCount)
	fmt.Fprintf(w, "  Inverters:\t%d\n", s.InverterCount)
	w.Flush()
	fmt.Fprintln(out)
}

func writeValidation(out io.Writer, rep *factory.Report) {
	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, lightRule)
	if rep.Validation.IsValid {
		fmt.Fprintln(out, "  ✓ Dimensions within the strategy limits")
	} else {
		fmt.Fprintln(out, "  ✗ Dimensions outside the strategy limits")
		for _, issue := range rep.Validation.Errors {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
	}

	var warnings []string
	for _, issue := range rep.Validation.Warnings {
		warnings = append(warnings, issue.String())
	}
	if rep.Frame != nil {
		warnings = append(warnings, rep.Frame.Warnings...)
	}
	if rep.Solar != nil {
		warnings = append(warnings, rep.Solar.Warnings...)
	}
	for _, msg := range warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", msg)
	}
	fmt.Fprintln(out)
}

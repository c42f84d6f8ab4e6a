package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/building"
)

var (
	// Dimensions
	slopedName   string
	slopedLength float64
	slopedWidth  float64
	slopedHeight float64
	slopedSlope  float64

	// Parameters
	slopedParams building.Parameters
)

var slopedCmd = &cobra.Command{
	Use:   "sloped",
	Short: "Generate a single-pitch (monopente) steel building",
	Long: `Generate the structure of a single-pitch steel building: a pair of
posts at every frame station, one inclined rafter per frame, purlins
along the roof slope and cladding rails on all four walls.

The report lists member counts, derived heights, roof and wall surfaces
and steel masses. Dimensions outside the strategy limits are reported
but never prevent the building from being generated.

Examples:
  # 20 × 12 m hangar, 6 m eaves, 10% roof slope
  gosteel sloped --length 20000 --width 12000 --height 6000 --slope 10

  # Closer frames, heavier rafters, and a PNG plan
  gosteel sloped -l 24000 -w 15000 --height 6000 --slope 8 \
      --post-spacing 4000 --rafter-profile IPE300 -o plan.png`,
	RunE: runSloped,
}

func init() {
	rootCmd.AddCommand(slopedCmd)

	f := slopedCmd.Flags()
	f.StringVarP(&slopedName, "name", "n", "Sloped building", "Building name")
	f.Float64VarP(&slopedLength, "length", "l", 0, "Building length (mm) [required]")
	f.Float64VarP(&slopedWidth, "width", "w", 0, "Building width / span (mm) [required]")
	f.Float64Var(&slopedHeight, "height", 0, "Eave height on the low side (mm) [required]")
	f.Float64VarP(&slopedSlope, "slope", "s", 10, "Roof slope (%)")

	f.Float64Var(&slopedParams.PostSpacing, "post-spacing", 0, "Frame spacing (mm)")
	f.Float64Var(&slopedParams.PurlinSpacing, "purlin-spacing", 0, "Purlin spacing along the slope (mm)")
	f.Float64Var(&slopedParams.RailSpacing, "rail-spacing", 0, "Cladding rail spacing (mm)")
	f.StringVar(&slopedParams.PostProfile, "post-profile", "", "Post profile designation")
	f.StringVar(&slopedParams.RafterProfile, "rafter-profile", "", "Rafter profile designation")
	f.StringVar(&slopedParams.PurlinProfile, "purlin-profile", "", "Purlin profile designation")
	f.StringVar(&slopedParams.RailProfile, "rail-profile", "", "Rail profile designation")
	f.StringVar(&slopedParams.SteelGrade, "grade", "", "Steel grade (S235 … S460)")
	addDrawFlags(slopedCmd)

	slopedCmd.MarkFlagRequired("length")
	slopedCmd.MarkFlagRequired("width")
	slopedCmd.MarkFlagRequired("height")
}

func runSloped(cmd *cobra.Command, args []string) error {
	cfg := building.Config{
		Name: slopedName,
		Type: building.TypeSloped,
		Dimensions: building.SlopedDimensions{
			Length:     slopedLength,
			Width:      slopedWidth,
			HeightWall: slopedHeight,
			Slope:      slopedSlope,
		},
		Parameters: slopedParams.Clone(),
	}
	rep, err := registry.Build(cfg, nil)
	if err != nil {
		return err
	}
	return render(cmd, rep)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/solar"
)

var (
	canopyName   string
	canopyDims   building.CanopyDimensions
	canopyParams building.Parameters

	// Solar array
	canopyPanel       string
	canopyMounting    string
	canopyOrientation string
	canopyRows        int
	canopyColumns     int

	// Site
	canopyIrradiation float64
	canopySnow        float64
	canopyWind        float64
)

var canopyCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Generate a flat photovoltaic parking canopy (ombrière)",
	Long: `Generate the structure of a flat solar parking canopy: posts, longitudinal
and transverse beams, purlins, cross-bracing, the panel field with its
mounting rails, string inverters and cable trays.

Leave --rows or --columns at 0 to let the layout optimizer fill the
canopy with as many panels as the mounting system allows.

Examples:
  # 50 × 20 m canopy with a 4 × 20 array of 540 Wc panels
  gosteel canopy --length 50000 --width 20000 --rows 4 --columns 20

  # Auto-sized portrait array, 15° tilt, site data for yield and loads
  gosteel canopy -l 30000 -w 10000 --tilt 15 --orientation portrait \
      --irradiation 1450 --snow 0.45 --wind 0.6 --plan`,
	RunE: runCanopy,
}

func init() {
	rootCmd.AddCommand(canopyCmd)

	f := canopyCmd.Flags()
	f.StringVarP(&canopyName, "name", "n", "Solar canopy", "Canopy name")
	f.Float64VarP(&canopyDims.Length, "length", "l", 0, "Canopy length (mm) [required]")
	f.Float64VarP(&canopyDims.Width, "width", "w", 0, "Canopy width (mm) [required]")
	f.Float64Var(&canopyDims.ClearHeight, "clear-height", 2500, "Clear height under the beams (mm)")
	f.Float64Var(&canopyDims.Tilt, "tilt", 10, "Panel tilt (degrees)")
	f.IntVar(&canopyDims.ParkingSpaces, "parking-spaces", 0, "Requested parking spaces (0 = no check)")

	f.Float64Var(&canopyParams.PostSpacing, "post-spacing", 0, "Post spacing (mm)")
	f.Float64Var(&canopyParams.PurlinSpacing, "purlin-spacing", 0, "Purlin spacing (mm)")
	f.StringVar(&canopyParams.PostProfile, "post-profile", "", "Post profile designation")
	f.StringVar(&canopyParams.BeamProfile, "beam-profile", "", "Beam profile designation")
	f.StringVar(&canopyParams.SteelGrade, "grade", "", "Steel grade (S235 … S460)")

	f.StringVar(&canopyPanel, "panel", solar.DefaultPanel, "Panel catalogue key")
	f.StringVar(&canopyMounting, "mounting", solar.DefaultMountingSystem, "Mounting system catalogue key")
	f.StringVar(&canopyOrientation, "orientation", string(solar.Landscape), "Panel orientation (landscape, portrait)")
	f.IntVar(&canopyRows, "rows", 0, "Panel rows (0 = auto)")
	f.IntVar(&canopyColumns, "columns", 0, "Panel columns (0 = auto)")

	f.Float64Var(&canopyIrradiation, "irradiation", 0, "Annual horizontal irradiation (kWh/m²/year)")
	f.Float64Var(&canopySnow, "snow", 0, "Characteristic ground snow load (kN/m²)")
	f.Float64Var(&canopyWind, "wind", 0, "Peak velocity pressure (kN/m²)")
	addDrawFlags(canopyCmd)

	canopyCmd.MarkFlagRequired("length")
	canopyCmd.MarkFlagRequired("width")
}

func runCanopy(cmd *cobra.Command, args []string) error {
	params := canopyParams.Clone()
	params.Solar = &solar.ArrayConfig{
		PanelKey:       canopyPanel,
		MountingSystem: canopyMounting,
		Orientation:    solar.Orientation(canopyOrientation),
		Rows:           canopyRows,
		Columns:        canopyColumns,
	}
	if canopyIrradiation > 0 || canopySnow > 0 || canopyWind > 0 {
		site := solar.Location{
			Name:              "command line",
			AnnualIrradiation: canopyIrradiation,
			SnowLoad:          canopySnow,
			WindPressure:      canopyWind,
		}.WithDefaults()
		params.Location = &site
	}

	cfg := building.Config{
		Name:       canopyName,
		Type:       building.TypeCanopy,
		Dimensions: canopyDims,
		Parameters: params,
	}
	rep, err := registry.Build(cfg, nil)
	if err != nil {
		return err
	}
	return render(cmd, rep)
}

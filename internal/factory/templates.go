package factory

import (
	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/solar"
)

// Template is a named, ready-to-build configuration.
type Template struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Config      building.Config `json:"config" yaml:"config"`
}

// BuiltinTemplates are registered in every registry created by NewDefault.
var BuiltinTemplates = []Template{
	{
		Name:        "small",
		Description: "12 × 8 m single-pitch storage shed",
		Config: building.Config{
			Name:       "Small shed",
			Type:       building.TypeSloped,
			Dimensions: building.SlopedDimensions{Length: 12000, Width: 8000, HeightWall: 4000, Slope: 10},
		},
	},
	{
		Name:        "medium",
		Description: "24 × 15 m single-pitch workshop",
		Config: building.Config{
			Name:       "Workshop",
			Type:       building.TypeSloped,
			Dimensions: building.SlopedDimensions{Length: 24000, Width: 15000, HeightWall: 6000, Slope: 8},
			Parameters: building.Parameters{PostSpacing: 6000, RafterProfile: "IPE270"},
			Openings: []building.Opening{
				{Kind: "sectional-door", Wall: building.WallFront, Width: 4000, Height: 4500, X: 2000},
				{Kind: "door", Wall: building.WallLeft, Width: 1000, Height: 2100, X: 1000},
			},
		},
	},
	{
		Name:        "large",
		Description: "48 × 25 m single-pitch warehouse",
		Config: building.Config{
			Name:       "Warehouse",
			Type:       building.TypeSloped,
			Dimensions: building.SlopedDimensions{Length: 48000, Width: 25000, HeightWall: 8000, Slope: 6},
			Parameters: building.Parameters{
				PostSpacing:   6000,
				PostProfile:   "IPE300",
				RafterProfile: "IPE400",
				PurlinProfile: "Z200",
				SteelGrade:    "S355",
			},
			Openings: []building.Opening{
				{Kind: "sectional-door", Wall: building.WallFront, Width: 5000, Height: 5000, X: 5000},
				{Kind: "sectional-door", Wall: building.WallFront, Width: 5000, Height: 5000, X: 20000},
				{Kind: "skylight", Wall: building.WallRoof, Width: 2000, Height: 6000, X: 12000},
			},
			Finishes: building.Finishes{Insulated: true},
		},
	},
	{
		Name:        "canopy-small",
		Description: "12-space photovoltaic parking canopy, array auto-sized",
		Config: building.Config{
			Name:       "Parking canopy",
			Type:       building.TypeCanopy,
			Dimensions: building.CanopyDimensions{Length: 15000, Width: 10000, ClearHeight: 2500, Tilt: 10},
		},
	},
	{
		Name:        "canopy-large",
		Description: "96-space photovoltaic parking canopy with 540 Wc panels",
		Config: building.Config{
			Name:       "Parking canopy",
			Type:       building.TypeCanopy,
			Dimensions: building.CanopyDimensions{Length: 60000, Width: 20000, ClearHeight: 2600, Tilt: 15},
			Parameters: building.Parameters{
				Solar: &solar.ArrayConfig{PanelKey: "generic-540", Orientation: solar.Landscape, Rows: 4, Columns: 24},
			},
		},
	},
}

// applyOverrides merges overrides onto base: dimensions and parameters
// field by field, anything else replaces when set.
func applyOverrides(base, overrides building.Config) building.Config {
	out := base.Clone()
	if overrides.Name != "" {
		out.Name = overrides.Name
	}
	if overrides.Type != "" {
		out.Type = overrides.Type
	}
	out.Dimensions = building.MergeDimensions(out.Dimensions, overrides.Dimensions)
	out.Parameters = out.Parameters.Merge(overrides.Parameters)
	if overrides.Openings != nil {
		out.Openings = append([]building.Opening(nil), overrides.Openings...)
	}
	if overrides.Finishes != (building.Finishes{}) {
		out.Finishes = overrides.Finishes
	}
	if overrides.Metadata != nil {
		out.Metadata = overrides.Clone().Metadata
	}
	return out
}

package solar

import (
	"fmt"
	"sort"
	"strings"
)

// MountingSystem is the constraint set of a racking system. It is read by
// the layout optimizer and never modified.
type MountingSystem struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Gaps between panels (mm)
	MinRowSpacing            float64 `json:"min_row_spacing" yaml:"min_row_spacing"`
	RecommendedRowSpacing    float64 `json:"recommended_row_spacing" yaml:"recommended_row_spacing"`
	MinColumnSpacing         float64 `json:"min_column_spacing" yaml:"min_column_spacing"`
	RecommendedColumnSpacing float64 `json:"recommended_column_spacing" yaml:"recommended_column_spacing"`

	// Edge margins (mm): longitudinal applies at both ends of the length,
	// transverse at both sides of the width
	LongitudinalMargin float64 `json:"longitudinal_margin" yaml:"longitudinal_margin"`
	TransverseMargin   float64 `json:"transverse_margin" yaml:"transverse_margin"`

	SupportedOrientations []Orientation `json:"supported_orientations" yaml:"supported_orientations"`
	MaxPanelWeight        float64       `json:"max_panel_weight" yaml:"max_panel_weight"` // kg, 0 = unlimited

	RailProfile string `json:"rail_profile" yaml:"rail_profile"`
}

// Spacing returns the row and column gaps for the chosen spacing mode.
func (m MountingSystem) Spacing(recommended bool) (row, column float64) {
	if recommended {
		return m.RecommendedRowSpacing, m.RecommendedColumnSpacing
	}
	return m.MinRowSpacing, m.MinColumnSpacing
}

// Supports reports whether the system accepts orientation o.
func (m MountingSystem) Supports(o Orientation) bool {
	for _, s := range m.SupportedOrientations {
		if s == o {
			return true
		}
	}
	return false
}

// MountingSystems is the built-in racking catalogue
var MountingSystems = map[string]MountingSystem{
	"rail-standard": {
		Name:                     "rail-standard",
		Description:              "Two aluminium rails per row, clamp fixing",
		MinRowSpacing:            20,
		RecommendedRowSpacing:    50,
		MinColumnSpacing:         20,
		RecommendedColumnSpacing: 20,
		LongitudinalMargin:       300,
		TransverseMargin:         300,
		SupportedOrientations:    []Orientation{Landscape, Portrait},
		MaxPanelWeight:           35,
		RailProfile:              "RAIL-SOLAR-40",
	},
	"rail-compact": {
		Name:                     "rail-compact",
		Description:              "Compact rail, portrait only",
		MinRowSpacing:            15,
		RecommendedRowSpacing:    20,
		MinColumnSpacing:         15,
		RecommendedColumnSpacing: 20,
		LongitudinalMargin:       150,
		TransverseMargin:         150,
		SupportedOrientations:    []Orientation{Portrait},
		MaxPanelWeight:           30,
		RailProfile:              "RAIL-SOLAR-40",
	},
	"east-west": {
		Name:                     "east-west",
		Description:              "Ballasted east-west tent layout",
		MinRowSpacing:            300,
		RecommendedRowSpacing:    400,
		MinColumnSpacing:         20,
		RecommendedColumnSpacing: 30,
		LongitudinalMargin:       500,
		TransverseMargin:         500,
		SupportedOrientations:    []Orientation{Landscape},
		MaxPanelWeight:           28,
		RailProfile:              "RAIL-SOLAR-60",
	},
}

// DefaultMountingSystem is the catalogue key used when none is configured
const DefaultMountingSystem = "rail-standard"

// LookupMountingSystem resolves a catalogue entry by key.
func LookupMountingSystem(key string) (MountingSystem, error) {
	m, ok := MountingSystems[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		keys := make([]string, 0, len(MountingSystems))
		for k := range MountingSystems {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return MountingSystem{}, fmt.Errorf("unknown mounting system %q (available: %s)", key, strings.Join(keys, ", "))
	}
	return m, nil
}

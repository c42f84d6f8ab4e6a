// Package strategy implements the calculation strategies that size,
// validate and report on a building's frame.
package strategy

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/building"
)

// Strategy computes frame metrics and validates dimensions for one
// building type.
type Strategy interface {
	Name() string
	Description() string
	// CalculateFrame fails with *InvalidDimensionsError when
	// ValidateDimensions reports invalid input.
	CalculateFrame(dims building.Dimensions, params building.Parameters, openings []building.Opening, opts Options) (*FrameCalculations, error)
	ValidateDimensions(dims building.Dimensions) building.ValidationResult
}

// Options tunes a frame calculation. The zero value is usable.
type Options struct {
	// HeavyStructureLimit is the steel ratio (kg/m² of footprint) above
	// which a heavy-structure warning is raised. 0 uses the strategy default.
	HeavyStructureLimit float64
	// SkipAdvisories suppresses advisory warnings.
	SkipAdvisories bool
}

func (o Options) heavyLimit(def float64) float64 {
	if o.HeavyStructureLimit > 0 {
		return o.HeavyStructureLimit
	}
	return def
}

// InvalidDimensionsError is returned by CalculateFrame for dimensions that
// fail validation.
type InvalidDimensionsError struct {
	Strategy string
	Result   building.ValidationResult
}

func (e *InvalidDimensionsError) Error() string {
	msgs := make([]string, 0, len(e.Result.Errors))
	for _, i := range e.Result.Errors {
		msgs = append(msgs, i.Field+": "+i.Message)
	}
	return fmt.Sprintf("%s: invalid dimensions: %s", e.Strategy, strings.Join(msgs, "; "))
}

// Masses are steel masses per member category (kg)
type Masses struct {
	Posts   float64 `json:"posts"`
	Rafters float64 `json:"rafters,omitempty"`
	Beams   float64 `json:"beams,omitempty"`
	Purlins float64 `json:"purlins"`
	Rails   float64 `json:"rails,omitempty"`
	Bracing float64 `json:"bracing,omitempty"`
	Total   float64 `json:"total"`
}

func (m *Masses) sum() {
	m.Total = m.Posts + m.Rafters + m.Beams + m.Purlins + m.Rails + m.Bracing
}

// FrameCalculations are the frame metrics of a building. They are
// recomputed on every call.
type FrameCalculations struct {
	Strategy string `json:"strategy"`

	// Counts. PostCount is the number of post stations (frames); each
	// station carries two posts, counted in PostElements.
	PostCount    int `json:"post_count"`
	PostElements int `json:"post_elements"`
	RafterCount  int `json:"rafter_count,omitempty"`
	BeamCount    int `json:"beam_count,omitempty"`
	PurlinCount  int `json:"purlin_count"`
	RailCount    int `json:"rail_count,omitempty"`
	BracingCount int `json:"bracing_count,omitempty"`

	// Derived lengths (mm)
	HeightWall   float64 `json:"height_wall"`
	HeightRidge  float64 `json:"height_ridge"`
	RafterLength float64 `json:"rafter_length,omitempty"`

	// Surfaces (m²)
	FootprintArea     float64 `json:"footprint_area"`
	RoofingAreaGross  float64 `json:"roofing_area_gross"`
	RoofingAreaNet    float64 `json:"roofing_area_net"`
	CladdingAreaGross float64 `json:"cladding_area_gross"`
	CladdingAreaNet   float64 `json:"cladding_area_net"`
	OpeningArea       float64 `json:"opening_area"`

	Masses     Masses  `json:"masses"`
	SteelRatio float64 `json:"steel_ratio"` // kg/m² of footprint

	Warnings []string `json:"warnings"`
}

func (f *FrameCalculations) warn(format string, args ...any) {
	f.Warnings = append(f.Warnings, fmt.Sprintf(format, args...))
}

// netArea deducts openings from a gross area, never going below zero.
func netArea(gross, openings float64) float64 {
	if net := gross - openings; net > 0 {
		return net
	}
	return 0
}

// splitOpenings returns the opening area (m²) on the roof and on the walls.
func splitOpenings(openings []building.Opening) (roof, walls float64) {
	for _, o := range openings {
		if o.Wall == building.WallRoof {
			roof += o.Area()
		} else {
			walls += o.Area()
		}
	}
	return roof, walls
}

// For returns the built-in strategy of building type t.
func For(t building.Type) (Strategy, bool) {
	switch t {
	case building.TypeSloped:
		return NewSloped(), true
	case building.TypeCanopy:
		return NewCanopy(DefaultSolarAssumptions), true
	default:
		return nil, false
	}
}

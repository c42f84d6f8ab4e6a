package solar

import (
	"fmt"
	"math"
)

// Objective selects how layout candidates are ranked
type Objective string

const (
	// MaximizeQuantity ranks by raw panel count
	MaximizeQuantity Objective = "quantity"
	// MaximizeCoverage ranks by covered percentage of the available area
	MaximizeCoverage Objective = "coverage"
	// Balanced ranks by count × (1 + coverage/200)
	Balanced Objective = "balanced"
)

// Margins are edge distances around a panel field (mm)
type Margins struct {
	Longitudinal float64 `json:"longitudinal"` // at each end of the length
	Transverse   float64 `json:"transverse"`   // at each side of the width
}

// LayoutOptions tunes OptimalLayout. The zero value uses the mounting
// system margins, minimum spacing, all supported orientations and the
// quantity objective.
type LayoutOptions struct {
	Orientation    Orientation // forces a single orientation when set
	UseRecommended bool        // recommended instead of minimum spacing
	Margins        *Margins    // overrides the mounting system margins
	Objective      Objective
}

// LayoutResult is the best panel grid found for an area
type LayoutResult struct {
	Orientation Orientation `json:"orientation"`
	Rows        int         `json:"rows"`
	Columns     int         `json:"columns"`
	TotalPanels int         `json:"total_panels"`

	RowSpacing    float64 `json:"row_spacing"`
	ColumnSpacing float64 `json:"column_spacing"`

	UsedLength float64 `json:"used_length"` // mm
	UsedWidth  float64 `json:"used_width"`  // mm

	// Residual margins around the centred field (mm)
	MarginLeft  float64 `json:"margin_left"`
	MarginRight float64 `json:"margin_right"`
	MarginFront float64 `json:"margin_front"`
	MarginBack  float64 `json:"margin_back"`

	Coverage float64  `json:"coverage"` // % of the available area
	PowerKwc float64  `json:"power_kwc"`
	Score    float64  `json:"score"`
	Warnings []string `json:"warnings,omitempty"`
}

// OptimalLayout searches orientation × rows × columns for the panel grid
// that best fills availableLength × availableWidth (mm) under the mounting
// system constraints. When nothing fits it returns a zero-panel result
// whose margins equal the input margins; that is not an error.
func OptimalLayout(availableLength, availableWidth float64, panel PanelSpec, mounting MountingSystem, opts LayoutOptions) LayoutResult {
	margins := Margins{Longitudinal: mounting.LongitudinalMargin, Transverse: mounting.TransverseMargin}
	if opts.Margins != nil {
		margins = *opts.Margins
	}
	objective := opts.Objective
	if objective == "" {
		objective = MaximizeQuantity
	}
	rowGap, colGap := mounting.Spacing(opts.UseRecommended)

	empty := LayoutResult{
		RowSpacing:    rowGap,
		ColumnSpacing: colGap,
		MarginLeft:    margins.Longitudinal,
		MarginRight:   margins.Longitudinal,
		MarginFront:   margins.Transverse,
		MarginBack:    margins.Transverse,
	}

	if panel.Length <= 0 || panel.Width <= 0 {
		empty.Warnings = append(empty.Warnings, "panel dimensions must be positive")
		return empty
	}
	if mounting.MaxPanelWeight > 0 && panel.Weight > mounting.MaxPanelWeight {
		empty.Warnings = append(empty.Warnings, fmt.Sprintf(
			"panel weight %.1f kg exceeds %s limit of %.1f kg", panel.Weight, mounting.Name, mounting.MaxPanelWeight))
		return empty
	}

	usableLength := availableLength - 2*margins.Longitudinal
	usableWidth := availableWidth - 2*margins.Transverse

	orientations := mounting.SupportedOrientations
	if opts.Orientation != "" {
		orientations = []Orientation{opts.Orientation}
		if len(mounting.SupportedOrientations) > 0 && !mounting.Supports(opts.Orientation) {
			empty.Warnings = append(empty.Warnings, fmt.Sprintf(
				"orientation %s not supported by %s", opts.Orientation, mounting.Name))
			return empty
		}
	}
	if len(orientations) == 0 {
		orientations = []Orientation{Landscape, Portrait}
	}

	availableArea := availableLength * availableWidth
	best := empty
	found := false

	for _, o := range orientations {
		fx, fy := panel.Footprint(o)
		cols := fitCount(usableLength, fx, colGap)
		rows := fitCount(usableWidth, fy, rowGap)
		total := rows * cols
		if total == 0 {
			continue
		}

		candidate := LayoutResult{
			Orientation:   o,
			Rows:          rows,
			Columns:       cols,
			TotalPanels:   total,
			RowSpacing:    rowGap,
			ColumnSpacing: colGap,
			UsedLength:    spanOf(cols, fx, colGap),
			UsedWidth:     spanOf(rows, fy, rowGap),
			PowerKwc:      float64(total) * panel.PowerWc / 1000,
		}
		if availableArea > 0 {
			candidate.Coverage = float64(total) * fx * fy / availableArea * 100
		}
		candidate.MarginLeft = margins.Longitudinal + (usableLength-candidate.UsedLength)/2
		candidate.MarginRight = candidate.MarginLeft
		candidate.MarginFront = margins.Transverse + (usableWidth-candidate.UsedWidth)/2
		candidate.MarginBack = candidate.MarginFront
		candidate.Score = score(objective, candidate)

		if !found || candidate.Score > best.Score {
			best = candidate
			found = true
		}
	}

	return best
}

// fitCount returns how many items of size s separated by gap fit in span.
func fitCount(span, s, gap float64) int {
	if span < s || s <= 0 {
		return 0
	}
	return int(math.Floor((span+gap)/(s+gap) + 1e-9))
}

// spanOf returns the extent of n items of size s separated by gap.
func spanOf(n int, s, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*s + float64(n-1)*gap
}

func score(objective Objective, r LayoutResult) float64 {
	switch objective {
	case MaximizeCoverage:
		return r.Coverage
	case Balanced:
		return float64(r.TotalPanels) * (1 + r.Coverage/200)
	default:
		return float64(r.TotalPanels)
	}
}

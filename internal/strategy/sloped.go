package strategy

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/eurocode"
	"github.com/alexiusacademia/gosteel/internal/geometry"
	"github.com/alexiusacademia/gosteel/internal/profiles"
)

// Validation ranges for single-pitch buildings (mm, %)
const (
	slopedMinLength     = 3000.0
	slopedMaxLength     = 100000.0
	slopedMinWidth      = 3000.0
	slopedMaxWidth      = 40000.0
	slopedMinHeightWall = 2000.0
	slopedMaxHeightWall = 15000.0
	slopedLongBuilding  = 50000.0
	slopedLowSlope      = 3.0
	slopedHighSlope     = 50.0

	slopedHeavyRatio = 45.0 // kg/m²
)

// Sloped is the strategy for single-pitch (monopente) buildings.
type Sloped struct{}

// NewSloped creates the single-pitch strategy.
func NewSloped() *Sloped { return &Sloped{} }

// Name implements Strategy.
func (*Sloped) Name() string { return "monopente" }

// Description implements Strategy.
func (*Sloped) Description() string {
	return "Single-pitch light-gauge steel frame: posts, inclined rafters, purlins and wall rails"
}

// ValidateDimensions implements Strategy.
func (*Sloped) ValidateDimensions(dims building.Dimensions) building.ValidationResult {
	r := building.NewValidationResult()
	d, ok := dims.(building.SlopedDimensions)
	if !ok {
		r.AddError("dimensions", "expected sloped dimensions, got %T", dims)
		return r
	}

	if d.Length < slopedMinLength || d.Length > slopedMaxLength {
		r.AddError("length", "must be between %.0f and %.0f m (got %.2f m)", slopedMinLength/1000, slopedMaxLength/1000, d.Length/1000)
	}
	if d.Width < slopedMinWidth || d.Width > slopedMaxWidth {
		r.AddError("width", "must be between %.0f and %.0f m (got %.2f m)", slopedMinWidth/1000, slopedMaxWidth/1000, d.Width/1000)
	}
	if d.HeightWall < slopedMinHeightWall || d.HeightWall > slopedMaxHeightWall {
		r.AddError("heightWall", "must be between %.0f and %.0f m (got %.2f m)", slopedMinHeightWall/1000, slopedMaxHeightWall/1000, d.HeightWall/1000)
	}
	if d.Slope < 0 {
		r.AddError("slope", "must not be negative (got %.1f%%)", d.Slope)
	}

	if d.Length > slopedLongBuilding {
		r.AddWarning("length", "building longer than %.0f m: plan an expansion joint", slopedLongBuilding/1000)
	}
	if d.Slope >= 0 && d.Slope < slopedLowSlope {
		r.AddWarning("slope", "slope below %.0f%% risks ponding (got %.1f%%)", slopedLowSlope, d.Slope)
	}
	if d.Slope > slopedHighSlope {
		r.AddWarning("slope", "slope above %.0f%% is unusual for a single pitch (got %.1f%%)", slopedHighSlope, d.Slope)
	}
	return r
}

// CalculateFrame implements Strategy.
func (s *Sloped) CalculateFrame(dims building.Dimensions, params building.Parameters, openings []building.Opening, opts Options) (*FrameCalculations, error) {
	v := s.ValidateDimensions(dims)
	if !v.IsValid {
		return nil, &InvalidDimensionsError{Strategy: s.Name(), Result: v}
	}
	d := dims.(building.SlopedDimensions)
	p := params.WithDefaults(building.DefaultSlopedParameters)

	heightRidge := geometry.RidgeHeight(d.HeightWall, d.Width, d.Slope)
	rafterLength := geometry.RafterLength(d.Width, d.Slope)
	stations := geometry.Stations(d.Length, p.PostSpacing)
	purlins := geometry.Stations(rafterLength, p.PurlinSpacing)

	lowCourses := geometry.Stations(d.HeightWall, p.RailSpacing)
	highCourses := geometry.Stations(heightRidge, p.RailSpacing)
	gableCourses := geometry.Stations((d.HeightWall+heightRidge)/2, p.RailSpacing)

	f := &FrameCalculations{
		Strategy:     s.Name(),
		PostCount:    stations,
		PostElements: 2 * stations,
		RafterCount:  stations,
		PurlinCount:  purlins,
		RailCount:    lowCourses + highCourses + 2*gableCourses,
		HeightWall:   d.HeightWall,
		HeightRidge:  heightRidge,
		RafterLength: rafterLength,
		Warnings:     []string{},
	}

	// Surfaces
	f.FootprintArea = d.Length * d.Width / 1e6
	f.RoofingAreaGross = d.Length * rafterLength / 1e6
	f.CladdingAreaGross = (d.Length*d.HeightWall + d.Length*heightRidge + d.Width*(d.HeightWall+heightRidge)) / 1e6
	roofOpenings, wallOpenings := splitOpenings(openings)
	f.OpeningArea = roofOpenings + wallOpenings
	f.RoofingAreaNet = netArea(f.RoofingAreaGross, roofOpenings)
	f.CladdingAreaNet = netArea(f.CladdingAreaGross, wallOpenings)

	// Masses
	n := float64(stations)
	f.Masses.Posts = n * (profiles.Weight(p.PostProfile, d.HeightWall) + profiles.Weight(p.PostProfile, heightRidge))
	f.Masses.Rafters = n * profiles.Weight(p.RafterProfile, rafterLength)
	f.Masses.Purlins = float64(purlins) * profiles.Weight(p.PurlinProfile, d.Length)
	f.Masses.Rails = float64(lowCourses+highCourses)*profiles.Weight(p.RailProfile, d.Length) +
		float64(2*gableCourses)*profiles.Weight(p.RailProfile, d.Width)
	f.Masses.sum()
	if f.FootprintArea > 0 {
		f.SteelRatio = f.Masses.Total / f.FootprintArea
	}

	for _, w := range v.Warnings {
		f.Warnings = append(f.Warnings, fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
	if !opts.SkipAdvisories {
		slopedAdvisories(f, p, openings, opts)
	}
	return f, nil
}

func slopedAdvisories(f *FrameCalculations, p building.Parameters, openings []building.Opening, opts Options) {
	if p.PostSpacing > 6000 {
		f.warn("post spacing %.0f mm exceeds 6 m: check purlin and rail spans", p.PostSpacing)
	}
	if p.PurlinSpacing > 2000 {
		f.warn("purlin spacing %.0f mm exceeds 2 m: check roof sheet span", p.PurlinSpacing)
	}
	if p.RailSpacing > 1500 {
		f.warn("rail spacing %.0f mm exceeds 1.5 m: check cladding span", p.RailSpacing)
	}
	if len(openings) == 0 {
		f.warn("no openings defined")
	}
	if f.OpeningArea > f.CladdingAreaGross+f.RoofingAreaGross {
		f.warn("openings (%.1f m²) exceed the envelope area", f.OpeningArea)
	}
	if limit := opts.heavyLimit(slopedHeavyRatio); f.SteelRatio > limit {
		f.warn("heavy structure: %.1f kg/m² exceeds %.0f kg/m²", f.SteelRatio, limit)
	}
	if _, ok := eurocode.LookupGrade(p.SteelGrade); !ok {
		f.warn("unknown steel grade %q", p.SteelGrade)
	}
	for _, profile := range []string{p.PostProfile, p.RafterProfile, p.PurlinProfile, p.RailProfile} {
		if !profiles.Known(profile) {
			f.warn("unknown profile %q: weight estimated at %.0f kg/m", profile, profiles.DefaultLinearMass)
		}
	}
}

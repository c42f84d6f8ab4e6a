package strategy

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/eurocode"
	"github.com/alexiusacademia/gosteel/internal/geometry"
	"github.com/alexiusacademia/gosteel/internal/profiles"
	"github.com/alexiusacademia/gosteel/internal/solar"
)

// Validation ranges for canopies (mm, degrees)
const (
	canopyMinLength      = 5000.0
	canopyMaxLength      = 100000.0
	canopyMinWidth       = 5000.0
	canopyMaxWidth       = 40000.0
	canopyMinClearHeight = 2000.0
	canopyMaxClearHeight = 4000.0
	canopyMinTilt        = 0.0
	canopyMaxTilt        = 30.0
	canopyVanClearance   = 2200.0

	canopyHeavyRatio = 35.0 // kg/m²
	gravity          = 9.81 // m/s²
)

// SolarAssumptions are the simplified sizing constants of the canopy
// strategy. They are engineering rules of thumb, not physical constants.
type SolarAssumptions struct {
	InverterRatedKw  float64 // AC rating of one inverter
	DCRatio          float64 // accepted DC/AC oversizing
	CarbonFactor     float64 // kgCO₂ avoided per kWh
	PerformanceRatio float64
	MaintenanceLoad  float64 // imposed load on the panel field (kN/m²)
}

// DefaultSolarAssumptions: 50 kW inverters, 10 % oversizing, 0.06 kgCO₂/kWh
var DefaultSolarAssumptions = SolarAssumptions{
	InverterRatedKw:  50,
	DCRatio:          1.1,
	CarbonFactor:     0.06,
	PerformanceRatio: 0.80,
	MaintenanceLoad:  0.0,
}

// SolarCalculator is implemented by strategies that size a photovoltaic
// array on top of the frame.
type SolarCalculator interface {
	Strategy
	Assumptions() SolarAssumptions
	CalculateSolarMetrics(dims building.Dimensions, params building.Parameters, array solar.ArrayConfig, loc *solar.Location) (*OmbriereCalculations, error)
}

// OmbriereCalculations layers solar, parking and climatic load metrics on
// top of the canopy frame metrics.
type OmbriereCalculations struct {
	Frame  FrameCalculations   `json:"frame"`
	Array  solar.ArrayConfig   `json:"array"`
	Layout *solar.LayoutResult `json:"layout,omitempty"`
	Site   solar.Location      `json:"site"`

	TotalPanels      int     `json:"total_panels"`
	TotalPowerKwc    float64 `json:"total_power_kwc"`
	PanelArea        float64 `json:"panel_area"` // m²
	AnnualYieldKwh   float64 `json:"annual_yield_kwh"`
	SpecificYield    float64 `json:"specific_yield"` // kWh/kWc
	PerformanceRatio float64 `json:"performance_ratio"`
	Co2OffsetKg      float64 `json:"co2_offset_kg"`

	NumberOfParkingSpaces int     `json:"number_of_parking_spaces"`
	ParkingArea           float64 `json:"parking_area"`   // m²
	CoverageRatio         float64 `json:"coverage_ratio"` // % of footprint under panels

	PanelWeight          float64 `json:"panel_weight"`   // kg
	PermanentLoad        float64 `json:"permanent_load"` // kN/m²
	SnowFactor           float64 `json:"snow_factor"`
	SnowLoad             float64 `json:"snow_load"` // kN/m²
	WindFactor           float64 `json:"wind_factor"`
	WindLoad             float64 `json:"wind_load"`   // kN/m²
	DesignLoad           float64 `json:"design_load"` // governing ULS, kN/m²
	GoverningCombination string  `json:"governing_combination"`

	PanelsPerString int `json:"panels_per_string"`
	StringCount     int `json:"string_count"`
	InverterCount   int `json:"inverter_count"`

	Warnings []string `json:"warnings"`
}

// Canopy is the strategy for flat photovoltaic parking canopies.
type Canopy struct {
	assumptions SolarAssumptions
}

// NewCanopy creates the canopy strategy with the given sizing assumptions.
// Unset assumption fields take their default.
func NewCanopy(a SolarAssumptions) *Canopy {
	if a.InverterRatedKw <= 0 {
		a.InverterRatedKw = DefaultSolarAssumptions.InverterRatedKw
	}
	if a.DCRatio <= 0 {
		a.DCRatio = DefaultSolarAssumptions.DCRatio
	}
	if a.CarbonFactor <= 0 {
		a.CarbonFactor = DefaultSolarAssumptions.CarbonFactor
	}
	if a.PerformanceRatio <= 0 {
		a.PerformanceRatio = DefaultSolarAssumptions.PerformanceRatio
	}
	return &Canopy{assumptions: a}
}

// Name implements Strategy.
func (*Canopy) Name() string { return "ombriere" }

// Description implements Strategy.
func (*Canopy) Description() string {
	return "Flat photovoltaic parking canopy: posts, beams, purlins, bracing and solar array"
}

// Assumptions implements SolarCalculator.
func (c *Canopy) Assumptions() SolarAssumptions { return c.assumptions }

// ParkingCapacity returns floor(length/spaceLength) × floor(width/spaceWidth).
func ParkingCapacity(d building.CanopyDimensions) int {
	l, w := d.ParkingSpaceSize()
	return int(math.Floor(d.Length/l)) * int(math.Floor(d.Width/w))
}

// ValidateDimensions implements Strategy.
func (*Canopy) ValidateDimensions(dims building.Dimensions) building.ValidationResult {
	r := building.NewValidationResult()
	d, ok := dims.(building.CanopyDimensions)
	if !ok {
		r.AddError("dimensions", "expected canopy dimensions, got %T", dims)
		return r
	}

	if d.Length < canopyMinLength || d.Length > canopyMaxLength {
		r.AddError("length", "must be between %.0f and %.0f m (got %.2f m)", canopyMinLength/1000, canopyMaxLength/1000, d.Length/1000)
	}
	if d.Width < canopyMinWidth || d.Width > canopyMaxWidth {
		r.AddError("width", "must be between %.0f and %.0f m (got %.2f m)", canopyMinWidth/1000, canopyMaxWidth/1000, d.Width/1000)
	}
	if d.ClearHeight < canopyMinClearHeight || d.ClearHeight > canopyMaxClearHeight {
		r.AddError("clearHeight", "must be between %.1f and %.1f m (got %.2f m)", canopyMinClearHeight/1000, canopyMaxClearHeight/1000, d.ClearHeight/1000)
	}
	if d.Tilt < canopyMinTilt || d.Tilt > canopyMaxTilt {
		r.AddError("tilt", "must be between %.0f° and %.0f° (got %.1f°)", canopyMinTilt, canopyMaxTilt, d.Tilt)
	}
	if d.ParkingSpaces > 0 {
		if capacity := ParkingCapacity(d); d.ParkingSpaces > capacity {
			r.AddError("parkingSpaces", "insufficient parking capacity: %d requested, %d fit", d.ParkingSpaces, capacity)
		}
	}

	if d.ClearHeight >= canopyMinClearHeight && d.ClearHeight < canopyVanClearance {
		r.AddWarning("clearHeight", "clear height below %.1f m excludes vans", canopyVanClearance/1000)
	}
	if d.Slope != 0 {
		r.AddWarning("slope", "canopy frames are flat: slope %.1f%% is ignored", d.Slope)
	}
	return r
}

// CalculateFrame implements Strategy.
func (c *Canopy) CalculateFrame(dims building.Dimensions, params building.Parameters, openings []building.Opening, opts Options) (*FrameCalculations, error) {
	v := c.ValidateDimensions(dims)
	if !v.IsValid {
		return nil, &InvalidDimensionsError{Strategy: c.Name(), Result: v}
	}
	d := dims.(building.CanopyDimensions)
	p := params.WithDefaults(building.DefaultCanopyParameters)

	stations := geometry.Stations(d.Length, p.PostSpacing)
	bays := stations - 1
	purlins := geometry.Stations(d.Width, p.PurlinSpacing)
	diagonal := geometry.Diagonal(p.PostSpacing, d.Width)

	f := &FrameCalculations{
		Strategy:     c.Name(),
		PostCount:    stations,
		PostElements: 2 * stations,
		BeamCount:    2*bays + stations,
		PurlinCount:  purlins,
		BracingCount: 2 * bays,
		HeightWall:   d.ClearHeight,
		HeightRidge:  d.ClearHeight,
		Warnings:     []string{},
	}

	f.FootprintArea = d.Length * d.Width / 1e6
	f.RoofingAreaGross = f.FootprintArea
	roofOpenings, wallOpenings := splitOpenings(openings)
	f.OpeningArea = roofOpenings + wallOpenings
	f.RoofingAreaNet = netArea(f.RoofingAreaGross, roofOpenings)

	f.Masses.Posts = float64(f.PostElements) * profiles.Weight(p.PostProfile, d.ClearHeight)
	f.Masses.Beams = float64(2*bays)*profiles.Weight(p.BeamProfile, p.PostSpacing) +
		float64(stations)*profiles.Weight(p.BeamProfile, d.Width)
	f.Masses.Purlins = float64(purlins) * profiles.Weight(p.PurlinProfile, d.Length)
	f.Masses.Bracing = float64(f.BracingCount) * profiles.Weight(p.BracingProfile, diagonal)
	f.Masses.sum()
	if f.FootprintArea > 0 {
		f.SteelRatio = f.Masses.Total / f.FootprintArea
	}

	for _, w := range v.Warnings {
		f.Warnings = append(f.Warnings, fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
	if !opts.SkipAdvisories {
		if p.PostSpacing > 8000 {
			f.warn("post spacing %.0f mm exceeds 8 m: check beam deflection", p.PostSpacing)
		}
		if p.PurlinSpacing > 3000 {
			f.warn("purlin spacing %.0f mm exceeds 3 m: check panel rail span", p.PurlinSpacing)
		}
		if limit := opts.heavyLimit(canopyHeavyRatio); f.SteelRatio > limit {
			f.warn("heavy structure: %.1f kg/m² exceeds %.0f kg/m²", f.SteelRatio, limit)
		}
		if _, ok := eurocode.LookupGrade(p.SteelGrade); !ok {
			f.warn("unknown steel grade %q", p.SteelGrade)
		}
	}
	return f, nil
}

// ResolveArray completes an array configuration against a canopy: it
// resolves the panel from the catalogue, applies default orientation,
// spacing, tilt and azimuth, and runs the layout optimizer when the grid
// size is not given.
func ResolveArray(d building.CanopyDimensions, array solar.ArrayConfig) (solar.ArrayConfig, *solar.LayoutResult, error) {
	if array.Panel.Length == 0 && array.Panel.Width == 0 {
		key := array.PanelKey
		if key == "" {
			key = solar.DefaultPanel
		}
		p, err := solar.LookupPanel(key)
		if err != nil {
			return array, nil, err
		}
		array.Panel = p
		array.PanelKey = key
	}
	if err := array.Panel.Validate(); err != nil {
		return array, nil, err
	}

	if array.MountingSystem == "" {
		array.MountingSystem = solar.DefaultMountingSystem
	}
	mounting, err := solar.LookupMountingSystem(array.MountingSystem)
	if err != nil {
		return array, nil, err
	}
	if array.Orientation != "" && !array.Orientation.Valid() {
		return array, nil, fmt.Errorf("unknown orientation %q", array.Orientation)
	}
	if array.Tilt == 0 {
		array.Tilt = d.Tilt
	}
	if array.Azimuth == nil {
		az := solar.DefaultAzimuth
		array.Azimuth = &az
	}

	var layout *solar.LayoutResult
	if !array.Resolved() {
		r := solar.OptimalLayout(d.Length, d.Width, array.Panel, mounting, solar.LayoutOptions{
			Orientation:    array.Orientation,
			UseRecommended: true,
			Objective:      solar.MaximizeQuantity,
		})
		layout = &r
		array.Rows, array.Columns = r.Rows, r.Columns
		if r.Orientation != "" {
			array.Orientation = r.Orientation
		}
		if array.RowSpacing == 0 {
			array.RowSpacing = r.RowSpacing
		}
		if array.ColumnSpacing == 0 {
			array.ColumnSpacing = r.ColumnSpacing
		}
	}

	if array.Orientation == "" {
		array.Orientation = solar.Landscape
	}
	if array.RowSpacing == 0 {
		array.RowSpacing = mounting.RecommendedRowSpacing
	}
	if array.ColumnSpacing == 0 {
		array.ColumnSpacing = mounting.RecommendedColumnSpacing
	}
	return array, layout, nil
}

// ArrayExtent returns the plan size (mm) of the panel grid.
func ArrayExtent(a solar.ArrayConfig) (float64, float64) {
	fx, fy := a.Panel.Footprint(a.Orientation)
	var x, y float64
	if a.Columns > 0 {
		x = float64(a.Columns)*fx + float64(a.Columns-1)*a.ColumnSpacing
	}
	if a.Rows > 0 {
		y = float64(a.Rows)*fy + float64(a.Rows-1)*a.RowSpacing
	}
	return x, y
}

// orientationFactor estimates the yield gain of tilt and the loss of
// azimuth away from south.
func orientationFactor(tilt, azimuth float64) float64 {
	t := math.Min(math.Max(tilt, 0), 35)
	tiltGain := 1 + 0.12*math.Sin(geometry.Radians(t*90/35))
	azimuthLoss := 0.3 * math.Abs(azimuth-180) / 180
	return tiltGain * (1 - azimuthLoss)
}

// CalculateSolarMetrics implements SolarCalculator.
func (c *Canopy) CalculateSolarMetrics(dims building.Dimensions, params building.Parameters, array solar.ArrayConfig, loc *solar.Location) (*OmbriereCalculations, error) {
	frame, err := c.CalculateFrame(dims, params, nil, Options{SkipAdvisories: true})
	if err != nil {
		return nil, err
	}
	d := dims.(building.CanopyDimensions)

	array, layout, err := ResolveArray(d, array)
	if err != nil {
		return nil, fmt.Errorf("resolving solar array: %w", err)
	}

	site := solar.DefaultLocation
	if loc != nil {
		site = loc.WithDefaults()
	}
	a := c.assumptions

	m := &OmbriereCalculations{
		Frame:            *frame,
		Array:            array,
		Layout:           layout,
		Site:             site,
		TotalPanels:      array.TotalPanels(),
		TotalPowerKwc:    array.PowerKwc(),
		PerformanceRatio: a.PerformanceRatio,
		Warnings:         []string{},
	}
	m.PanelArea = float64(m.TotalPanels) * array.Panel.Area()

	m.AnnualYieldKwh = m.TotalPowerKwc * site.AnnualIrradiation * a.PerformanceRatio * orientationFactor(array.Tilt, array.AzimuthDegrees())
	if m.TotalPowerKwc > 0 {
		m.SpecificYield = m.AnnualYieldKwh / m.TotalPowerKwc
	}
	m.Co2OffsetKg = m.AnnualYieldKwh * a.CarbonFactor

	spaceLength, spaceWidth := d.ParkingSpaceSize()
	m.NumberOfParkingSpaces = ParkingCapacity(d)
	m.ParkingArea = float64(m.NumberOfParkingSpaces) * spaceLength * spaceWidth / 1e6
	if frame.FootprintArea > 0 {
		m.CoverageRatio = m.PanelArea / frame.FootprintArea * 100
	}

	// Climatic loads on the panel field
	m.PanelWeight = float64(m.TotalPanels) * array.Panel.Weight
	if frame.FootprintArea > 0 {
		m.PermanentLoad = (m.PanelWeight + frame.Masses.Total) * gravity / 1000 / frame.FootprintArea
	}
	m.SnowFactor = SnowFactor(array.Tilt)
	m.SnowLoad = site.SnowLoad * m.SnowFactor
	m.WindFactor = WindFactor(array.Tilt)
	m.WindLoad = site.WindPressure * m.WindFactor
	design, combo := eurocode.GoverningCombination(eurocode.Loads{
		Permanent: m.PermanentLoad,
		Snow:      m.SnowLoad,
		Wind:      m.WindLoad,
		Imposed:   a.MaintenanceLoad,
	}, eurocode.UltimateCombinations)
	m.DesignLoad = design
	m.GoverningCombination = combo.Description

	// Electrical design
	m.PanelsPerString = solar.PanelsPerString(array.Panel)
	if m.TotalPanels > 0 {
		m.StringCount = int(math.Ceil(float64(m.TotalPanels) / float64(m.PanelsPerString)))
	}
	m.InverterCount = solar.InverterCount(m.TotalPowerKwc, a.InverterRatedKw, a.DCRatio)

	if x, y := ArrayExtent(array); x > d.Length || y > d.Width {
		m.warn("panel field %.0f × %.0f mm exceeds the canopy %.0f × %.0f mm", x, y, d.Length, d.Width)
	}
	if m.TotalPanels == 0 {
		m.warn("no panel fits on the canopy")
	}
	if layout != nil {
		m.Warnings = append(m.Warnings, layout.Warnings...)
	}
	return m, nil
}

func (m *OmbriereCalculations) warn(format string, args ...any) {
	m.Warnings = append(m.Warnings, fmt.Sprintf(format, args...))
}

package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/solar"
)

func scenarioA() building.SlopedDimensions {
	return building.SlopedDimensions{Length: 20000, Width: 12000, HeightWall: 6000, Slope: 10}
}

func scenarioB() building.CanopyDimensions {
	return building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2500, Tilt: 15}
}

func TestSlopedCalculateFrameScenarioA(t *testing.T) {
	f, err := NewSloped().CalculateFrame(scenarioA(), building.Parameters{}, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "monopente", f.Strategy)
	assert.Equal(t, 5, f.PostCount)
	assert.Equal(t, 10, f.PostElements)
	assert.Equal(t, 5, f.RafterCount)
	assert.Equal(t, 9, f.PurlinCount)
	assert.Equal(t, 6+7+2*6, f.RailCount)
	assert.InDelta(t, 7200, f.HeightRidge, 1e-9)
	assert.InDelta(t, 12059.8, f.RafterLength, 0.1)

	assert.InDelta(t, 240, f.FootprintArea, 1e-9)
	assert.InDelta(t, 20000*f.RafterLength/1e6, f.RoofingAreaGross, 1e-9)
	assert.InDelta(t, 422.4, f.CladdingAreaGross, 1e-9)
	assert.Equal(t, f.RoofingAreaGross, f.RoofingAreaNet)

	assert.InDelta(t, 1478.4, f.Masses.Posts, 1e-6)
	assert.InDelta(t, 792, f.Masses.Purlins, 1e-6)
	assert.InDelta(t, 1575.6, f.Masses.Rails, 1e-6)
	assert.InDelta(t, f.Masses.Posts+f.Masses.Rafters+f.Masses.Purlins+f.Masses.Rails, f.Masses.Total, 1e-9)
	assert.InDelta(t, f.Masses.Total/240, f.SteelRatio, 1e-9)

	assert.Contains(t, f.Warnings, "no openings defined")
}

func TestSlopedNetAreaFloorsAtZero(t *testing.T) {
	openings := []building.Opening{
		{Kind: "door", Wall: building.WallFront, Width: 100000, Height: 100000},
		{Kind: "skylight", Wall: building.WallRoof, Width: 100000, Height: 100000},
	}
	f, err := NewSloped().CalculateFrame(scenarioA(), building.Parameters{}, openings, Options{})
	require.NoError(t, err)

	assert.Zero(t, f.CladdingAreaNet)
	assert.Zero(t, f.RoofingAreaNet)
	assert.InDelta(t, 20000, f.OpeningArea, 1e-9)
	assert.NotContains(t, f.Warnings, "no openings defined")
}

func TestSlopedOpeningsDeducted(t *testing.T) {
	openings := []building.Opening{{Kind: "door", Wall: building.WallFront, Width: 4000, Height: 4500}}
	f, err := NewSloped().CalculateFrame(scenarioA(), building.Parameters{}, openings, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 422.4-18, f.CladdingAreaNet, 1e-9)
}

func TestSlopedCalculateFrameRejectsInvalidDimensions(t *testing.T) {
	_, err := NewSloped().CalculateFrame(building.SlopedDimensions{Length: 1000, Width: 12000, HeightWall: 6000}, building.Parameters{}, nil, Options{})

	var dimErr *InvalidDimensionsError
	require.True(t, errors.As(err, &dimErr))
	assert.False(t, dimErr.Result.IsValid)
	assert.Contains(t, err.Error(), "length")
}

func TestSlopedAdvisories(t *testing.T) {
	params := building.Parameters{PostSpacing: 7000, PurlinSpacing: 2500, PostProfile: "MYSTERY", SteelGrade: "S999"}
	f, err := NewSloped().CalculateFrame(scenarioA(), params, nil, Options{HeavyStructureLimit: 1})
	require.NoError(t, err)

	joined := ""
	for _, w := range f.Warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "post spacing 7000")
	assert.Contains(t, joined, "purlin spacing 2500")
	assert.Contains(t, joined, "heavy structure")
	assert.Contains(t, joined, `unknown steel grade "S999"`)
	assert.Contains(t, joined, `unknown profile "MYSTERY"`)

	quiet, err := NewSloped().CalculateFrame(scenarioA(), params, nil, Options{SkipAdvisories: true})
	require.NoError(t, err)
	assert.Empty(t, quiet.Warnings)
}

func TestSlopedValidateDimensions(t *testing.T) {
	s := NewSloped()
	tests := []struct {
		name     string
		dims     building.Dimensions
		valid    bool
		errField string
		warnings int
	}{
		{"scenario A", scenarioA(), true, "", 0},
		{"too short", building.SlopedDimensions{Length: 2000, Width: 12000, HeightWall: 6000, Slope: 10}, false, "length", 0},
		{"too wide", building.SlopedDimensions{Length: 20000, Width: 41000, HeightWall: 6000, Slope: 10}, false, "width", 0},
		{"too tall", building.SlopedDimensions{Length: 20000, Width: 12000, HeightWall: 16000, Slope: 10}, false, "heightWall", 0},
		{"negative slope", building.SlopedDimensions{Length: 20000, Width: 12000, HeightWall: 6000, Slope: -1}, false, "slope", 0},
		{"long and flat", building.SlopedDimensions{Length: 60000, Width: 12000, HeightWall: 6000, Slope: 2}, true, "", 2},
		{"steep", building.SlopedDimensions{Length: 20000, Width: 12000, HeightWall: 6000, Slope: 60}, true, "", 1},
		{"wrong variant", scenarioB(), false, "dimensions", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := s.ValidateDimensions(tt.dims)
			assert.Equal(t, tt.valid, r.IsValid)
			if tt.errField != "" {
				require.NotEmpty(t, r.Errors)
				assert.Equal(t, tt.errField, r.Errors[0].Field)
			}
			assert.Len(t, r.Warnings, tt.warnings)
		})
	}
}

func TestCanopyCalculateFrameScenarioB(t *testing.T) {
	f, err := NewCanopy(DefaultSolarAssumptions).CalculateFrame(scenarioB(), building.Parameters{}, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "ombriere", f.Strategy)
	assert.Equal(t, 7, f.PostCount)
	assert.Equal(t, 14, f.PostElements)
	assert.Equal(t, 2*6+7, f.BeamCount)
	assert.Equal(t, 9, f.PurlinCount)
	assert.Equal(t, 12, f.BracingCount)
	assert.Equal(t, 2500.0, f.HeightRidge)
	assert.InDelta(t, 1000, f.RoofingAreaGross, 1e-9)
	assert.Zero(t, f.CladdingAreaGross)
	assert.Greater(t, f.Masses.Total, 0.0)
	assert.InDelta(t, f.Masses.Posts+f.Masses.Beams+f.Masses.Purlins+f.Masses.Bracing, f.Masses.Total, 1e-9)
}

func TestCanopyNetRoofingIgnoresWallOpenings(t *testing.T) {
	openings := []building.Opening{
		{Kind: "door", Wall: building.WallFront, Width: 2000, Height: 3000},
		{Kind: "skylight", Wall: building.WallRoof, Width: 1000, Height: 1000},
	}
	f, err := NewCanopy(DefaultSolarAssumptions).CalculateFrame(scenarioB(), building.Parameters{}, openings, Options{})
	require.NoError(t, err)

	assert.InDelta(t, 7, f.OpeningArea, 1e-9)
	assert.InDelta(t, 1000, f.RoofingAreaGross, 1e-9)
	assert.InDelta(t, 999, f.RoofingAreaNet, 1e-9)
}

func TestCanopyValidateDimensions(t *testing.T) {
	c := NewCanopy(SolarAssumptions{})
	tests := []struct {
		name     string
		dims     building.CanopyDimensions
		valid    bool
		errField string
	}{
		{"scenario B", scenarioB(), true, ""},
		{"too narrow", building.CanopyDimensions{Length: 50000, Width: 4000, ClearHeight: 2500}, false, "width"},
		{"too high", building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 4500}, false, "clearHeight"},
		{"too tilted", building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2500, Tilt: 35}, false, "tilt"},
		{"parking fits", building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2500, ParkingSpaces: 80}, true, ""},
		{"parking overflow", building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2500, ParkingSpaces: 81}, false, "parkingSpaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.ValidateDimensions(tt.dims)
			assert.Equal(t, tt.valid, r.IsValid)
			if tt.errField != "" {
				require.NotEmpty(t, r.Errors)
				assert.Equal(t, tt.errField, r.Errors[0].Field)
			}
		})
	}

	low := c.ValidateDimensions(building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2100, Slope: 2})
	assert.True(t, low.IsValid)
	assert.Len(t, low.Warnings, 2)
}

func TestCanopySolarMetricsScenarioB(t *testing.T) {
	panel, err := solar.LookupPanel("generic-540")
	require.NoError(t, err)
	array := solar.ArrayConfig{Panel: panel, Rows: 4, Columns: 20}

	m, err := NewCanopy(DefaultSolarAssumptions).CalculateSolarMetrics(scenarioB(), building.Parameters{}, array, nil)
	require.NoError(t, err)

	assert.Equal(t, 80, m.TotalPanels)
	assert.Equal(t, m.Array.Rows*m.Array.Columns, m.TotalPanels)
	assert.InDelta(t, 43.2, m.TotalPowerKwc, 1e-9)
	assert.Equal(t, int(math.Floor(50000/5000))*int(math.Floor(20000/2500)), m.NumberOfParkingSpaces)
	assert.InDelta(t, 1000, m.ParkingArea, 1e-9)
	assert.InDelta(t, 80*2.583252, m.PanelArea, 1e-6)
	assert.InDelta(t, m.PanelArea/10, m.CoverageRatio, 1e-9)
	assert.InDelta(t, 80*27.5, m.PanelWeight, 1e-9)

	assert.Equal(t, 15.0, m.Array.Tilt)
	assert.Equal(t, 180.0, m.Array.AzimuthDegrees())
	assert.Equal(t, solar.Landscape, m.Array.Orientation)
	assert.InDelta(t, 0.8, m.SnowFactor, 1e-9)
	assert.InDelta(t, 0.45*0.8, m.SnowLoad, 1e-9)
	assert.InDelta(t, 1+15.0/90, m.WindFactor, 1e-9)
	assert.InDelta(t, 0.6*(1+15.0/90), m.WindLoad, 1e-9)
	assert.Greater(t, m.DesignLoad, 0.0)
	assert.NotEmpty(t, m.GoverningCombination)

	assert.Equal(t, 1, m.InverterCount)
	assert.Equal(t, 17, m.PanelsPerString)
	assert.Equal(t, 5, m.StringCount)

	assert.Greater(t, m.AnnualYieldKwh, 0.0)
	assert.InDelta(t, m.AnnualYieldKwh/43.2, m.SpecificYield, 1e-9)
	assert.InDelta(t, m.AnnualYieldKwh*0.06, m.Co2OffsetKg, 1e-9)
	assert.Nil(t, m.Layout)
	assert.Empty(t, m.Warnings)
}

func TestResolveArrayAzimuth(t *testing.T) {
	north, east := 0.0, 90.0
	tests := []struct {
		name    string
		azimuth *float64
		want    float64
	}{
		{"unset faces south", nil, 180},
		{"explicit north kept", &north, 0},
		{"explicit east kept", &east, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ResolveArray(scenarioB(), solar.ArrayConfig{Rows: 4, Columns: 20, Azimuth: tt.azimuth})
			require.NoError(t, err)
			require.NotNil(t, got.Azimuth)
			assert.Equal(t, tt.want, *got.Azimuth)
			assert.Equal(t, tt.want, got.AzimuthDegrees())
		})
	}
}

func TestCanopySolarMetricsNorthFacingYieldsLess(t *testing.T) {
	c := NewCanopy(DefaultSolarAssumptions)
	north := 0.0

	south, err := c.CalculateSolarMetrics(scenarioB(), building.Parameters{}, solar.ArrayConfig{Rows: 4, Columns: 20}, nil)
	require.NoError(t, err)
	facingNorth, err := c.CalculateSolarMetrics(scenarioB(), building.Parameters{}, solar.ArrayConfig{Rows: 4, Columns: 20, Azimuth: &north}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, facingNorth.Array.AzimuthDegrees())
	assert.Less(t, facingNorth.AnnualYieldKwh, south.AnnualYieldKwh)
}

func TestCanopySolarMetricsAutoLayout(t *testing.T) {
	m, err := NewCanopy(DefaultSolarAssumptions).CalculateSolarMetrics(scenarioB(), building.Parameters{}, solar.ArrayConfig{}, &solar.Location{SnowLoad: 1.0})
	require.NoError(t, err)

	require.NotNil(t, m.Layout)
	assert.Equal(t, m.Layout.TotalPanels, m.TotalPanels)
	assert.Greater(t, m.TotalPanels, 80)
	assert.Equal(t, "generic-540", m.Array.PanelKey)
	assert.Equal(t, 1.0, m.Site.SnowLoad)
	assert.Equal(t, solar.DefaultLocation.WindPressure, m.Site.WindPressure)
}

func TestCanopySolarMetricsOversizedArray(t *testing.T) {
	array := solar.ArrayConfig{PanelKey: "generic-540", Rows: 4, Columns: 30}
	m, err := NewCanopy(DefaultSolarAssumptions).CalculateSolarMetrics(scenarioB(), building.Parameters{}, array, nil)
	require.NoError(t, err)
	require.NotEmpty(t, m.Warnings)
	assert.Contains(t, m.Warnings[0], "exceeds the canopy")
}

func TestCanopySolarMetricsUnknownPanel(t *testing.T) {
	_, err := NewCanopy(DefaultSolarAssumptions).CalculateSolarMetrics(scenarioB(), building.Parameters{}, solar.ArrayConfig{PanelKey: "nope"}, nil)
	assert.ErrorContains(t, err, "unknown panel")
}

func TestCanopyAssumptionsDefaults(t *testing.T) {
	c := NewCanopy(SolarAssumptions{InverterRatedKw: 100})
	a := c.Assumptions()
	assert.Equal(t, 100.0, a.InverterRatedKw)
	assert.Equal(t, 1.1, a.DCRatio)
	assert.Equal(t, 0.06, a.CarbonFactor)
}

func TestTiltLoadFactors(t *testing.T) {
	tests := []struct {
		tilt       float64
		snow, wind float64
	}{
		{0, 0.8, 1},
		{10, 0.8, 1 + 10.0/90},
		{14.9, 0.8, 1 + 14.9/90},
		{15, 0.8, 1 + 15.0/90},
		{22.5, 0.6, 1.25},
		{30, 0.4, 1 + 30.0/90},
		{45, 0.4, 1.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.snow, SnowFactor(tt.tilt), 1e-9, "SnowFactor(%v)", tt.tilt)
		assert.InDelta(t, tt.wind, WindFactor(tt.tilt), 1e-9, "WindFactor(%v)", tt.tilt)
	}
	assert.InDelta(t, SnowFactor(0)/2, SnowFactor(31), 1e-9)
}

func TestFor(t *testing.T) {
	s, ok := For(building.TypeSloped)
	require.True(t, ok)
	assert.Equal(t, "monopente", s.Name())

	c, ok := For(building.TypeCanopy)
	require.True(t, ok)
	_, isSolar := c.(SolarCalculator)
	assert.True(t, isSolar)

	_, ok = For("dome")
	assert.False(t, ok)
}

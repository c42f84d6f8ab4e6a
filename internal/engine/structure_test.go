package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/solar"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

func TestSlopedStructureScenarioA(t *testing.T) {
	e := NewSloped(strategy.NewSloped(), testOptions("s")...)
	b, err := Create(e, slopedConfig())
	require.NoError(t, err)

	s, ok := b.Structure.(*building.SlopedStructure)
	require.True(t, ok)

	t.Run("posts", func(t *testing.T) {
		require.Len(t, s.Posts, 10)
		assert.Equal(t, 6000.0, s.Posts[0].Length)
		assert.Equal(t, 7200.0, s.Posts[1].Length)
		assert.Equal(t, 12000.0, s.Posts[1].Position.Y)
		assert.Equal(t, 20000.0, s.Posts[9].Position.X)
		assert.Equal(t, "POT-10", s.Posts[9].Reference)
		assert.Equal(t, "IPE200", s.Posts[0].Profile)
	})

	t.Run("rafters", func(t *testing.T) {
		require.Len(t, s.Rafters, 5)
		for i, r := range s.Rafters {
			assert.InDelta(t, 12059.8, r.Length, 0.1)
			assert.InDelta(t, math.Atan(0.1)*180/math.Pi, r.Rotation.X, 1e-9)
			assert.Equal(t, 6000.0, r.Position.Z)
			assert.Equal(t, float64(i)*5000, r.Position.X)
		}
		assert.Equal(t, "ARB-1", s.Rafters[0].Reference)
	})

	t.Run("purlins", func(t *testing.T) {
		require.Len(t, s.Purlins, 9)
		first, last := s.Purlins[0], s.Purlins[8]
		assert.Equal(t, 6000.0, first.Position.Z)
		assert.Zero(t, first.Position.Y)
		assert.InDelta(t, 12000*math.Cos(math.Atan(0.1)), last.Position.Y, 1e-6)
		assert.InDelta(t, 6000+12000*math.Sin(math.Atan(0.1)), last.Position.Z, 1e-6)
		assert.LessOrEqual(t, last.Position.Z, 7200.0)
		for _, p := range s.Purlins {
			assert.Equal(t, 20000.0, p.Length)
		}
	})

	t.Run("rails", func(t *testing.T) {
		require.Len(t, s.Rails, 6+7+6+6)
		assert.Equal(t, "LIS-25", s.Rails[24].Reference)
		gable := s.Rails[13]
		assert.Equal(t, 12000.0, gable.Length)
		assert.Equal(t, 90.0, gable.Rotation.Z)
		assert.Equal(t, 20000.0, s.Rails[24].Position.X)
		assert.Equal(t, 12000.0, s.Rails[6].Position.Y)
		assert.Equal(t, 7200.0, s.Rails[12].Position.Z)
	})

	t.Run("matches calculations", func(t *testing.T) {
		f, err := e.Calculate(b)
		require.NoError(t, err)
		assert.Equal(t, f.PostElements, len(s.Posts))
		assert.Equal(t, f.RafterCount, len(s.Rafters))
		assert.Equal(t, f.PurlinCount, len(s.Purlins))
		assert.Equal(t, f.RailCount, len(s.Rails))
		assert.InDelta(t, f.Masses.Posts, building.SumWeight(s.Posts), 1e-6)
		assert.InDelta(t, f.Masses.Total, building.SumWeight(s.Elements()), 1e-6)
	})
}

func TestSlopedPostCountFormula(t *testing.T) {
	for _, tt := range []struct {
		length, spacing float64
		stations        int
	}{
		{20000, 5000, 5},
		{21000, 5000, 5},
		{24999, 5000, 5},
		{25000, 5000, 6},
		{12000, 6000, 3},
	} {
		cfg := slopedConfig()
		cfg.Dimensions = building.SlopedDimensions{Length: tt.length, Width: 10000, HeightWall: 4000, Slope: 5}
		cfg.Parameters.PostSpacing = tt.spacing

		b, err := Create(NewSloped(nil), cfg)
		require.NoError(t, err)
		posts := b.Structure.(*building.SlopedStructure).Posts
		assert.Len(t, posts, 2*tt.stations, "length %v spacing %v", tt.length, tt.spacing)
	}
}

func canopyConfig() building.Config {
	panel, _ := solar.LookupPanel("generic-540")
	return building.Config{
		Name:       "Parking P1",
		Type:       building.TypeCanopy,
		Dimensions: building.CanopyDimensions{Length: 50000, Width: 20000, ClearHeight: 2500, Tilt: 15},
		Parameters: building.Parameters{
			Solar: &solar.ArrayConfig{Panel: panel, PanelKey: "generic-540", Rows: 4, Columns: 20},
		},
	}
}

func TestCanopyStructureScenarioB(t *testing.T) {
	e := NewCanopy(strategy.NewCanopy(strategy.DefaultSolarAssumptions), testOptions("c")...)
	b, err := Create(e, canopyConfig())
	require.NoError(t, err)

	s, ok := b.Structure.(*building.CanopyStructure)
	require.True(t, ok)

	t.Run("frame", func(t *testing.T) {
		require.Len(t, s.Posts, 14)
		for _, p := range s.Posts {
			assert.Equal(t, 2500.0, p.Length)
		}

		require.Len(t, s.Beams, 19)
		for _, beam := range s.Beams[:12] {
			assert.Equal(t, 7500.0, beam.Length)
			assert.Equal(t, 2500.0, beam.Position.Z)
		}
		assert.Equal(t, 20000.0, s.Beams[6].Position.Y)
		for _, beam := range s.Beams[12:] {
			assert.Equal(t, 20000.0, beam.Length)
			assert.Equal(t, 90.0, beam.Rotation.Z)
		}

		require.Len(t, s.Purlins, 9)
		assert.Equal(t, 2700.0, s.Purlins[0].Position.Z)
		assert.Equal(t, 20000.0, s.Purlins[8].Position.Y)

		require.Len(t, s.Bracing, 12)
		assert.InDelta(t, math.Hypot(7500, 20000), s.Bracing[0].Length, 1e-9)
		assert.InDelta(t, math.Atan2(20000, 7500)*180/math.Pi, s.Bracing[0].Rotation.Z, 1e-9)
		assert.Equal(t, -s.Bracing[0].Rotation.Z, s.Bracing[1].Rotation.Z)
		assert.Equal(t, "CTV-12", s.Bracing[11].Reference)
	})

	t.Run("panels", func(t *testing.T) {
		require.Len(t, s.SolarPanels, 80)
		first := s.SolarPanels[0]
		assert.Equal(t, "PV-1", first.Reference)
		assert.InDelta(t, 2030+2278.0/2, first.X, 1e-9)
		assert.InDelta(t, 7657+1134.0/2, first.Y, 1e-9)
		assert.Equal(t, 2800.0, first.Z)
		assert.Equal(t, 15.0, first.Tilt)
		assert.Equal(t, 180.0, first.Azimuth)
		assert.Equal(t, 540.0, first.PowerWc)

		last := s.SolarPanels[79]
		assert.Equal(t, "PV-80", last.Reference)
		assert.Equal(t, 3, last.Row)
		assert.Equal(t, 19, last.Column)
		assert.InDelta(t, 50000-2030-2278.0/2, last.X, 1e-6)
	})

	t.Run("electrical", func(t *testing.T) {
		assert.Equal(t, 1, s.SolarPanels[16].String)
		assert.Equal(t, 2, s.SolarPanels[17].String)
		assert.Equal(t, 5, s.SolarPanels[79].String)

		require.Len(t, s.Inverters, 1)
		inv := s.Inverters[0]
		assert.Equal(t, "OND-1", inv.Reference)
		assert.Equal(t, 50.0, inv.RatedPowerKw)
		assert.Equal(t, 5, inv.Strings)
		assert.Equal(t, 80, inv.Panels)
	})

	t.Run("framing and trays", func(t *testing.T) {
		require.Len(t, s.SolarFraming, 8)
		assert.Equal(t, building.ElementSolarRail, s.SolarFraming[0].Type)
		assert.InDelta(t, 45940, s.SolarFraming[0].Length, 1e-9)

		require.Len(t, s.CableTrays, 5)
		assert.Equal(t, "TRAY-200", s.CableTrays[0].Profile)
		assert.Equal(t, 50000.0, s.CableTrays[0].Length)
		assert.Equal(t, "TRAY-100", s.CableTrays[1].Profile)
	})

	t.Run("matches calculations", func(t *testing.T) {
		f, err := e.Calculate(b)
		require.NoError(t, err)
		assert.Equal(t, f.PostElements, len(s.Posts))
		assert.Equal(t, f.BeamCount, len(s.Beams))
		assert.Equal(t, f.PurlinCount, len(s.Purlins))
		assert.Equal(t, f.BracingCount, len(s.Bracing))
		assert.InDelta(t, f.Masses.Beams, building.SumWeight(s.Beams), 1e-6)
		assert.InDelta(t, f.Masses.Bracing, building.SumWeight(s.Bracing), 1e-6)

		m, err := e.SolarMetrics(b)
		require.NoError(t, err)
		assert.Equal(t, len(s.SolarPanels), m.TotalPanels)
		assert.InDelta(t, 43.2, m.TotalPowerKwc, 1e-9)
		assert.Equal(t, len(s.Inverters), m.InverterCount)
		assert.Equal(t, 80, m.NumberOfParkingSpaces)
	})
}

func TestCanopyAutoSizedArray(t *testing.T) {
	cfg := canopyConfig()
	cfg.Parameters.Solar = nil

	b, err := Create(NewCanopy(nil), cfg)
	require.NoError(t, err)
	s := b.Structure.(*building.CanopyStructure)
	require.NotEmpty(t, s.SolarPanels)

	d := cfg.Dimensions.(building.CanopyDimensions)
	for _, p := range s.SolarPanels {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, d.Length)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, d.Width)
	}
	assert.NotEmpty(t, s.Inverters)
	assert.Equal(t, 1+s.SolarPanels[len(s.SolarPanels)-1].Row+1, len(s.CableTrays))
}

func TestCanopySolarMetricsNeedsSolarStrategy(t *testing.T) {
	b, err := Create(NewCanopy(nil), canopyConfig())
	require.NoError(t, err)

	_, err = NewCanopy(nil).SolarMetrics(b)
	assert.ErrorIs(t, err, ErrStrategyMissing)

	_, err = NewCanopy(strategy.NewSloped()).SolarMetrics(b)
	assert.ErrorContains(t, err, "does not size solar arrays")
}

func TestCanopyInverterSizingFollowsAssumptions(t *testing.T) {
	small := strategy.NewCanopy(strategy.SolarAssumptions{InverterRatedKw: 10})
	b, err := Create(NewCanopy(small), canopyConfig())
	require.NoError(t, err)

	s := b.Structure.(*building.CanopyStructure)
	require.Len(t, s.Inverters, 4) // ceil(43.2 / 11)
	total := 0
	for _, inv := range s.Inverters {
		total += inv.Panels
		assert.Equal(t, 10.0, inv.RatedPowerKw)
	}
	assert.Equal(t, 80, total)
	assert.Equal(t, 2, s.Inverters[0].Strings)
	assert.Equal(t, 1, s.Inverters[3].Strings)
}

func TestCanopyRejectsNegativeGrid(t *testing.T) {
	cfg := canopyConfig()
	cfg.Parameters.Solar.Rows = -1

	_, err := Create(NewCanopy(nil), cfg)
	var cfgErr *building.InvalidConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "parameters.solar", cfgErr.Field)
}

func TestCanopyUnknownPanelFailsGeneration(t *testing.T) {
	cfg := canopyConfig()
	cfg.Parameters.Solar = &solar.ArrayConfig{PanelKey: "mystery"}

	_, err := Create(NewCanopy(nil), cfg)
	assert.ErrorContains(t, err, "resolving solar array")
}

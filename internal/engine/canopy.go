package engine

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/geometry"
	"github.com/alexiusacademia/gosteel/internal/ids"
	"github.com/alexiusacademia/gosteel/internal/solar"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

// Heights above the clear height (mm)
const (
	purlinOffset = 200.0
	railOffset   = 250.0
	panelOffset  = 300.0

	inverterHeight = 1500.0

	mainTrayProfile = "TRAY-200"
	rowTrayProfile  = "TRAY-100"
)

// Canopy generates flat photovoltaic parking canopies.
type Canopy struct {
	base
}

// NewCanopy creates a canopy engine bound to s. Binding a strategy that
// implements strategy.SolarCalculator also enables SolarMetrics and takes
// the inverter sizing from its assumptions.
func NewCanopy(s strategy.Strategy, opts ...Option) *Canopy {
	return &Canopy{base: newBase(s, opts)}
}

// Type implements Engine.
func (*Canopy) Type() building.Type { return building.TypeCanopy }

// WithStrategy implements Engine.
func (e *Canopy) WithStrategy(s strategy.Strategy) Engine {
	c := *e
	c.strategy = s
	return &c
}

// ValidateConfig implements Engine.
func (*Canopy) ValidateConfig(cfg building.Config) error {
	if err := validateConfig(building.TypeCanopy, cfg); err != nil {
		return err
	}
	if a := cfg.Parameters.Solar; a != nil && (a.Rows < 0 || a.Columns < 0) {
		return &building.InvalidConfigError{Field: "parameters.solar", Reason: "rows and columns must not be negative"}
	}
	return nil
}

// ApplyDefaults implements Engine.
func (*Canopy) ApplyDefaults(p building.Parameters) building.Parameters {
	return p.WithDefaults(building.DefaultCanopyParameters)
}

// CreateBaseBuilding implements Engine.
func (e *Canopy) CreateBaseBuilding(cfg building.Config, params building.Parameters) *building.Building {
	return e.newBuilding(building.TypeCanopy, cfg, params, &building.CanopyStructure{})
}

// GenerateStructure implements Engine. The solar array is resolved from
// the parameters on every call, so a dimension change resizes it.
func (e *Canopy) GenerateStructure(b *building.Building) error {
	d, ok := b.Dimensions.(building.CanopyDimensions)
	if !ok {
		return fmt.Errorf("%w: got %T", building.ErrDimensionMismatch, b.Dimensions)
	}
	p := b.Parameters
	seq := ids.NewSequencer(e.ids)

	s := &building.CanopyStructure{}
	s.Posts = GeneratePosts(seq, d.Length, d.Width, d.ClearHeight, d.ClearHeight, p.PostSpacing, p.PostProfile)

	stations := geometry.Stations(d.Length, p.PostSpacing)
	s.Beams = canopyBeams(seq, d, p, stations)

	purlins := geometry.Stations(d.Width, p.PurlinSpacing)
	s.Purlins = make([]building.StructuralElement, 0, purlins)
	for j := 0; j < purlins; j++ {
		pos := building.Vec3{Y: float64(j) * p.PurlinSpacing, Z: d.ClearHeight + purlinOffset}
		s.Purlins = append(s.Purlins, newElement(seq, building.ElementPurlin, building.RefPurlin, p.PurlinProfile, d.Length, pos, building.Vec3{}))
	}

	// One Saint Andrew's cross per bay
	diagonal := geometry.Diagonal(p.PostSpacing, d.Width)
	angle := geometry.Degrees(math.Atan2(d.Width, p.PostSpacing))
	for i := 0; i < stations-1; i++ {
		x := float64(i) * p.PostSpacing
		s.Bracing = append(s.Bracing,
			newElement(seq, building.ElementBracing, building.RefBracing, p.BracingProfile, diagonal, building.Vec3{X: x, Z: d.ClearHeight}, building.Vec3{Z: angle}),
			newElement(seq, building.ElementBracing, building.RefBracing, p.BracingProfile, diagonal, building.Vec3{X: x, Y: d.Width, Z: d.ClearHeight}, building.Vec3{Z: -angle}),
		)
	}

	array := solar.ArrayConfig{}
	if p.Solar != nil {
		array = *p.Solar
	}
	resolved, _, err := strategy.ResolveArray(d, array)
	if err != nil {
		return fmt.Errorf("resolving solar array: %w", err)
	}
	e.placeArray(seq, s, d, p, resolved)
	b.Structure = s

	e.log.Debug().
		Str("id", b.ID).
		Int("posts", len(s.Posts)).
		Int("beams", len(s.Beams)).
		Int("purlins", len(s.Purlins)).
		Int("bracing", len(s.Bracing)).
		Int("panels", len(s.SolarPanels)).
		Int("inverters", len(s.Inverters)).
		Msg("canopy structure generated")
	return nil
}

// canopyBeams returns the front and back longitudinal beams, one per bay,
// followed by one transverse beam per post station.
func canopyBeams(seq *ids.Sequencer, d building.CanopyDimensions, p building.Parameters, stations int) []building.StructuralElement {
	bays := stations - 1
	beams := make([]building.StructuralElement, 0, 2*bays+stations)
	for _, y := range []float64{0, d.Width} {
		for i := 0; i < bays; i++ {
			pos := building.Vec3{X: float64(i) * p.PostSpacing, Y: y, Z: d.ClearHeight}
			beams = append(beams, newElement(seq, building.ElementBeam, building.RefBeam, p.BeamProfile, p.PostSpacing, pos, building.Vec3{}))
		}
	}
	for i := 0; i < stations; i++ {
		pos := building.Vec3{X: float64(i) * p.PostSpacing, Z: d.ClearHeight}
		beams = append(beams, newElement(seq, building.ElementBeam, building.RefBeam, p.BeamProfile, d.Width, pos, building.Vec3{Z: 90}))
	}
	return beams
}

// placeArray centres the panel grid on the canopy, groups the panels into
// strings and inverters, and adds the mounting rails and cable trays.
func (e *Canopy) placeArray(seq *ids.Sequencer, s *building.CanopyStructure, d building.CanopyDimensions, p building.Parameters, a solar.ArrayConfig) {
	if a.TotalPanels() == 0 {
		return
	}
	fx, fy := a.Panel.Footprint(a.Orientation)
	extentX, extentY := strategy.ArrayExtent(a)
	x0 := (d.Length - extentX) / 2
	y0 := (d.Width - extentY) / 2

	s.SolarPanels = make([]solar.PlacedPanel, 0, a.TotalPanels())
	for r := 0; r < a.Rows; r++ {
		cy := y0 + float64(r)*(fy+a.RowSpacing) + fy/2
		for c := 0; c < a.Columns; c++ {
			id, ref := seq.Next(building.RefPanel)
			s.SolarPanels = append(s.SolarPanels, solar.PlacedPanel{
				ID:        id,
				Reference: ref,
				Row:       r,
				Column:    c,
				X:         x0 + float64(c)*(fx+a.ColumnSpacing) + fx/2,
				Y:         cy,
				Z:         d.ClearHeight + panelOffset,
				Tilt:      a.Tilt,
				Azimuth:   a.AzimuthDegrees(),
				PowerWc:   a.Panel.PowerWc,
				Weight:    a.Panel.Weight,
			})
		}

		// Two rails under each row, at the quarter points of the panel
		for _, dy := range []float64{-fy / 4, fy / 4} {
			pos := building.Vec3{X: x0, Y: cy + dy, Z: d.ClearHeight + railOffset}
			s.SolarFraming = append(s.SolarFraming, newElement(seq, building.ElementSolarRail, building.RefSolarRail, p.RailProfile, extentX, pos, building.Vec3{}))
		}
	}

	assumptions := e.solarAssumptions()
	inverters := solar.InverterCount(a.PowerKwc(), assumptions.InverterRatedKw, assumptions.DCRatio)
	stringCount := solar.AssignStrings(s.SolarPanels, solar.PanelsPerString(a.Panel), inverters)
	for i := 1; i <= inverters; i++ {
		inv := building.Inverter{
			RatedPowerKw: assumptions.InverterRatedKw,
			Position:     building.Vec3{X: float64(i) * d.Length / float64(inverters+1), Z: inverterHeight},
		}
		inv.ID, inv.Reference = seq.Next(building.RefInverter)
		for str := 0; str < stringCount; str++ {
			if str%inverters+1 == i {
				inv.Strings++
			}
		}
		for _, panel := range s.SolarPanels {
			if panel.Inverter == i {
				inv.Panels++
			}
		}
		s.Inverters = append(s.Inverters, inv)
	}

	s.CableTrays = append(s.CableTrays, newElement(seq, building.ElementCableTray, building.RefCableTray, mainTrayProfile, d.Length, building.Vec3{Z: d.ClearHeight}, building.Vec3{}))
	for r := 0; r < a.Rows; r++ {
		pos := building.Vec3{X: x0, Y: y0 + float64(r)*(fy+a.RowSpacing) + fy/2, Z: d.ClearHeight + purlinOffset}
		s.CableTrays = append(s.CableTrays, newElement(seq, building.ElementCableTray, building.RefCableTray, rowTrayProfile, extentX, pos, building.Vec3{}))
	}
}

func (e *Canopy) solarAssumptions() strategy.SolarAssumptions {
	if sc, ok := e.strategy.(strategy.SolarCalculator); ok {
		return sc.Assumptions()
	}
	return strategy.DefaultSolarAssumptions
}

// SolarMetrics computes the solar, parking and climatic load metrics of b.
// The bound strategy must implement strategy.SolarCalculator.
func (e *Canopy) SolarMetrics(b *building.Building) (*strategy.OmbriereCalculations, error) {
	if e.strategy == nil {
		return nil, ErrStrategyMissing
	}
	sc, ok := e.strategy.(strategy.SolarCalculator)
	if !ok {
		return nil, fmt.Errorf("engine: strategy %q does not size solar arrays", e.strategy.Name())
	}
	array := solar.ArrayConfig{}
	if b.Parameters.Solar != nil {
		array = *b.Parameters.Solar
	}
	return sc.CalculateSolarMetrics(b.Dimensions, b.Parameters, array, b.Parameters.Location)
}

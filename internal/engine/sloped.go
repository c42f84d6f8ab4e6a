package engine

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/geometry"
	"github.com/alexiusacademia/gosteel/internal/ids"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

// Sloped generates single-pitch buildings: a portal frame at every post
// station, purlins along the rafters and cladding rails on all four walls.
type Sloped struct {
	base
}

// NewSloped creates a sloped engine bound to s. s may be nil, in which case
// Calculate and Validate fail with ErrStrategyMissing.
func NewSloped(s strategy.Strategy, opts ...Option) *Sloped {
	return &Sloped{base: newBase(s, opts)}
}

// Type implements Engine.
func (*Sloped) Type() building.Type { return building.TypeSloped }

// WithStrategy implements Engine.
func (e *Sloped) WithStrategy(s strategy.Strategy) Engine {
	c := *e
	c.strategy = s
	return &c
}

// ValidateConfig implements Engine.
func (*Sloped) ValidateConfig(cfg building.Config) error {
	return validateConfig(building.TypeSloped, cfg)
}

// ApplyDefaults implements Engine.
func (*Sloped) ApplyDefaults(p building.Parameters) building.Parameters {
	return p.WithDefaults(building.DefaultSlopedParameters)
}

// CreateBaseBuilding implements Engine.
func (e *Sloped) CreateBaseBuilding(cfg building.Config, params building.Parameters) *building.Building {
	return e.newBuilding(building.TypeSloped, cfg, params, &building.SlopedStructure{})
}

// GenerateStructure implements Engine. Any previous structure is replaced.
func (e *Sloped) GenerateStructure(b *building.Building) error {
	d, ok := b.Dimensions.(building.SlopedDimensions)
	if !ok {
		return fmt.Errorf("%w: got %T", building.ErrDimensionMismatch, b.Dimensions)
	}
	p := b.Parameters
	seq := ids.NewSequencer(e.ids)

	heightRidge := CalculateHeightRidge(d.HeightWall, d.Width, d.Slope)
	rafterLength := CalculateRafterLength(d.Width, d.Slope)
	pitch := geometry.PitchDegrees(d.Slope)

	s := &building.SlopedStructure{}
	s.Posts = GeneratePosts(seq, d.Length, d.Width, d.HeightWall, heightRidge, p.PostSpacing, p.PostProfile)

	stations := geometry.Stations(d.Length, p.PostSpacing)
	s.Rafters = make([]building.StructuralElement, 0, stations)
	for i := 0; i < stations; i++ {
		pos := building.Vec3{X: float64(i) * p.PostSpacing, Z: d.HeightWall}
		s.Rafters = append(s.Rafters, newElement(seq, building.ElementRafter, building.RefRafter, p.RafterProfile, rafterLength, pos, building.Vec3{X: pitch}))
	}

	// Purlins follow the rafter top chord from the low eave.
	theta := geometry.Radians(pitch)
	purlins := geometry.Stations(rafterLength, p.PurlinSpacing)
	s.Purlins = make([]building.StructuralElement, 0, purlins)
	for j := 0; j < purlins; j++ {
		along := float64(j) * p.PurlinSpacing
		pos := building.Vec3{Y: along * math.Cos(theta), Z: d.HeightWall + along*math.Sin(theta)}
		s.Purlins = append(s.Purlins, newElement(seq, building.ElementPurlin, building.RefPurlin, p.PurlinProfile, d.Length, pos, building.Vec3{X: pitch}))
	}

	s.Rails = slopedRails(seq, d, heightRidge, p)
	b.Structure = s

	e.log.Debug().
		Str("id", b.ID).
		Int("posts", len(s.Posts)).
		Int("rafters", len(s.Rafters)).
		Int("purlins", len(s.Purlins)).
		Int("rails", len(s.Rails)).
		Msg("sloped structure generated")
	return nil
}

// slopedRails returns the cladding rails: the low eave wall, the high eave
// wall, then both gables with courses counted on the mean eave height.
func slopedRails(seq *ids.Sequencer, d building.SlopedDimensions, heightRidge float64, p building.Parameters) []building.StructuralElement {
	low := geometry.Stations(d.HeightWall, p.RailSpacing)
	high := geometry.Stations(heightRidge, p.RailSpacing)
	gable := geometry.Stations((d.HeightWall+heightRidge)/2, p.RailSpacing)

	rails := make([]building.StructuralElement, 0, low+high+2*gable)
	run := func(courses int, length float64, origin, rot building.Vec3) {
		for k := 0; k < courses; k++ {
			pos := origin
			pos.Z = float64(k) * p.RailSpacing
			rails = append(rails, newElement(seq, building.ElementRail, building.RefRail, p.RailProfile, length, pos, rot))
		}
	}
	gableRot := building.Vec3{Z: 90}
	run(low, d.Length, building.Vec3{}, building.Vec3{})
	run(high, d.Length, building.Vec3{Y: d.Width}, building.Vec3{})
	run(gable, d.Width, building.Vec3{}, gableRot)
	run(gable, d.Width, building.Vec3{X: d.Length}, gableRot)
	return rails
}
